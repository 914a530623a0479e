package tts

import (
	"context"
	"time"
)

// Segment is one synthesized utterance clip plus the pause that follows it.
// Modeling the pause as part of the segment keeps "a clip is always followed
// by its pause" structural instead of positional.
type Segment struct {
	Path  string
	Pause time.Duration
}

// SkippedUtterance records one sentence that failed to synthesize.
type SkippedUtterance struct {
	Index int
	Text  string
	Err   error
}

// Result carries the synthesized segments together with diagnostics for
// every utterance that was skipped.
type Result struct {
	Segments []Segment
	Skipped  []SkippedUtterance
}

// Synthesizer renders text as an ordered sequence of per-sentence clips.
type Synthesizer interface {
	Synthesize(ctx context.Context, text, workDir string) (Result, error)
}

// Client is the speech backend: it renders one utterance into a WAV file.
type Client interface {
	Synthesize(ctx context.Context, text, outPath string) error
}
