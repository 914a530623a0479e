package audio

import (
	"github.com/voxdub/voxdub/internal/config"
	"github.com/voxdub/voxdub/internal/logger"
	"github.com/voxdub/voxdub/pkg/executor"
)

type implAssembler struct {
	cfg      config.AudioConfig
	executor executor.Executor
	logger   logger.Logger
}

// New creates a new Assembler instance
func New(cfg config.AudioConfig, exec executor.Executor, log logger.Logger) Assembler {
	return &implAssembler{
		cfg:      cfg,
		executor: exec,
		logger:   log,
	}
}
