package audio

import (
	"context"

	"github.com/voxdub/voxdub/internal/tts"
)

// Assembler joins per-utterance clips into one encoded track.
type Assembler interface {
	// Assemble concatenates the clips in order, rendering each segment's
	// pause as silence between clips (never after the last one), and
	// exports the result to outPath as MP3.
	Assemble(ctx context.Context, segments []tts.Segment, outPath string) error
}
