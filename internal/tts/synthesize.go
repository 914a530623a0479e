package tts

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/voxdub/voxdub/internal/errs"
)

// Synthesize renders every sentence-like unit of text as one clip with a
// fixed trailing pause. Per-unit failures are recorded and skipped so one
// bad sentence never aborts the request; zero successful units does.
func (s *implSynthesizer) Synthesize(ctx context.Context, text, workDir string) (Result, error) {
	units := splitUtterances(text)
	s.logger.Info(ctx, "Synthesizing %d utterance(s)", len(units))

	var res Result
	for i, unit := range units {
		clipPath := filepath.Join(workDir, fmt.Sprintf("utterance_%03d.wav", i))

		if err := s.client.Synthesize(ctx, unit, clipPath); err != nil {
			s.logger.Warn(ctx, "Skipping utterance %d: %v", i, err)
			res.Skipped = append(res.Skipped, SkippedUtterance{Index: i, Text: unit, Err: err})
			continue
		}

		res.Segments = append(res.Segments, Segment{Path: clipPath, Pause: s.pause})
	}

	if len(res.Segments) == 0 {
		return Result{}, &errs.SynthesisError{Utterances: len(units)}
	}

	if len(res.Skipped) > 0 {
		s.logger.Warn(ctx, "Synthesis degraded: %d of %d utterances skipped", len(res.Skipped), len(units))
	}

	return res, nil
}
