package extract

import (
	"github.com/voxdub/voxdub/internal/config"
	"github.com/voxdub/voxdub/internal/logger"
	"github.com/voxdub/voxdub/pkg/executor"
)

type implExtractor struct {
	whisper  config.WhisperConfig
	executor executor.Executor
	logger   logger.Logger
}

// New creates a new Extractor instance
func New(whisper config.WhisperConfig, exec executor.Executor, log logger.Logger) Extractor {
	return &implExtractor{
		whisper:  whisper,
		executor: exec,
		logger:   log,
	}
}
