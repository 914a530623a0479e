package tts

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/voxdub/voxdub/internal/config"
)

type serverClient struct {
	baseURL    string
	speaker    string
	language   string
	httpClient *http.Client
}

// NewServerClient creates a Client for a Coqui-compatible TTS server. The
// speaker identity and target language are fixed per deployment.
func NewServerClient(cfg config.TTSConfig) Client {
	return &serverClient{
		baseURL:  strings.TrimSuffix(cfg.ServerURL, "/"),
		speaker:  cfg.Speaker,
		language: cfg.Language,
		httpClient: &http.Client{
			// Model inference is slow; a stuck server still blocks the
			// request until this expires.
			Timeout: 5 * time.Minute,
		},
	}
}

func (c *serverClient) Synthesize(ctx context.Context, text, outPath string) error {
	q := url.Values{}
	q.Set("text", text)
	q.Set("speaker_id", c.speaker)
	q.Set("language_id", c.language)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURL+"/api/tts?"+q.Encode(), nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("tts request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("tts server returned %s", resp.Status)
	}

	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("create clip file: %w", err)
	}
	defer out.Close()

	if _, err := io.Copy(out, resp.Body); err != nil {
		return fmt.Errorf("write clip file: %w", err)
	}

	return nil
}
