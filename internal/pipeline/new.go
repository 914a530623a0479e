package pipeline

import (
	"github.com/voxdub/voxdub/internal/audio"
	"github.com/voxdub/voxdub/internal/config"
	"github.com/voxdub/voxdub/internal/detect"
	"github.com/voxdub/voxdub/internal/extract"
	"github.com/voxdub/voxdub/internal/logger"
	"github.com/voxdub/voxdub/internal/transcript"
	"github.com/voxdub/voxdub/internal/translate"
	"github.com/voxdub/voxdub/internal/tts"
)

type implPipeline struct {
	cfg         *config.Config
	extractor   extract.Extractor
	classifier  detect.Classifier
	translator  translate.Translator
	synthesizer tts.Synthesizer
	assembler   audio.Assembler
	writer      transcript.Writer
	logger      logger.Logger
}

// New creates a new Pipeline instance
func New(
	cfg *config.Config,
	extractor extract.Extractor,
	classifier detect.Classifier,
	translator translate.Translator,
	synthesizer tts.Synthesizer,
	assembler audio.Assembler,
	writer transcript.Writer,
	log logger.Logger,
) Pipeline {
	return &implPipeline{
		cfg:         cfg,
		extractor:   extractor,
		classifier:  classifier,
		translator:  translator,
		synthesizer: synthesizer,
		assembler:   assembler,
		writer:      writer,
		logger:      log,
	}
}
