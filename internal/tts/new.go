package tts

import (
	"time"

	"github.com/voxdub/voxdub/internal/config"
	"github.com/voxdub/voxdub/internal/logger"
)

type implSynthesizer struct {
	client Client
	pause  time.Duration
	logger logger.Logger
}

// New creates a new Synthesizer instance
func New(cfg config.TTSConfig, client Client, log logger.Logger) Synthesizer {
	return &implSynthesizer{
		client: client,
		pause:  time.Duration(cfg.PauseMs) * time.Millisecond,
		logger: log,
	}
}
