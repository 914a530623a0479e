package translate

import (
	"fmt"

	"github.com/voxdub/voxdub/internal/config"
	"github.com/voxdub/voxdub/internal/logger"
)

type implTranslator struct {
	cfg    config.TranslateConfig
	client Client
	logger logger.Logger
}

// New creates a new Translator instance
func New(cfg config.TranslateConfig, client Client, log logger.Logger) Translator {
	return &implTranslator{
		cfg:    cfg,
		client: client,
		logger: log,
	}
}

// NewClient builds the configured translation backend.
func NewClient(cfg config.TranslateConfig, creds *config.Credentials, log logger.Logger) (Client, error) {
	switch cfg.Provider {
	case "deepl":
		return NewDeepL(cfg.DeepLURL, creds.DeepLKey), nil
	case "gemini":
		if len(creds.GeminiKeys) == 0 {
			return nil, fmt.Errorf("GEMINI_API_KEYS must be set for the gemini provider")
		}
		return NewGemini(creds.GeminiKeys, cfg.GeminiModel, log), nil
	default:
		return nil, fmt.Errorf("unknown translation provider %q", cfg.Provider)
	}
}
