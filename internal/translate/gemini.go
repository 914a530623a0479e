package translate

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"google.golang.org/genai"

	"github.com/voxdub/voxdub/internal/logger"
)

const translatePrompt = `Translate the following text from %s to %s. Return ONLY the translated text, with no commentary, no markdown, and the original whitespace preserved at the start and end.

Text:
%s`

// geminiClient is shared by the chat loop and the inbox watcher, so the key
// cursor is guarded.
type geminiClient struct {
	mu         sync.Mutex
	apiKeys    []string
	currentKey int
	model      string
	logger     logger.Logger
}

// NewGemini creates a Client backed by the Gemini API, rotating through the
// supplied API keys when one is rate limited.
func NewGemini(apiKeys []string, model string, log logger.Logger) Client {
	return &geminiClient{
		apiKeys: apiKeys,
		model:   model,
		logger:  log,
	}
}

// TranslateChunk sends one chunk to Gemini. Keys rotate only within this
// call on quota errors; a finished call is never re-issued.
func (c *geminiClient) TranslateChunk(ctx context.Context, text, sourceLang, targetLang string) (string, error) {
	prompt := fmt.Sprintf(translatePrompt, sourceLang, targetLang, text)

	attempts := len(c.apiKeys)
	var lastErr error

	for range attempts {
		key := c.key()

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  key,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			lastErr = fmt.Errorf("create client: %w", err)
			c.rotateKey()
			continue
		}

		result, err := client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), nil)
		if err != nil {
			errMsg := err.Error()
			if strings.Contains(errMsg, "429") || strings.Contains(errMsg, "quota") || strings.Contains(errMsg, "RESOURCE_EXHAUSTED") {
				c.logger.Warn(ctx, "Key rate limited, rotating...")
				c.rotateKey()
				lastErr = err
				continue
			}
			return "", fmt.Errorf("generate content: %w", err)
		}

		if result != nil && len(result.Candidates) > 0 && result.Candidates[0].Content != nil {
			var out string
			for _, part := range result.Candidates[0].Content.Parts {
				if part.Text != "" {
					out += part.Text
				}
			}
			return out, nil
		}

		return "", fmt.Errorf("empty response from Gemini")
	}

	return "", fmt.Errorf("all API keys exhausted: %w", lastErr)
}

func (c *geminiClient) key() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.apiKeys[c.currentKey]
}

func (c *geminiClient) rotateKey() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.currentKey = (c.currentKey + 1) % len(c.apiKeys)
}
