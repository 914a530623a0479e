package translate

import (
	"context"
	"strings"

	"github.com/voxdub/voxdub/internal/errs"
)

// Translate runs pivot-language text through the backend chunk by chunk.
// Any other source language bypasses the backend entirely. Chunk outputs are
// concatenated in order with no separator; a single chunk failure aborts the
// whole operation rather than returning a partial translation.
func (t *implTranslator) Translate(ctx context.Context, text, sourceTag string) (string, error) {
	if sourceTag != t.cfg.SourceLang {
		t.logger.Debug(ctx, "Source language %q is not %q, skipping translation", sourceTag, t.cfg.SourceLang)
		return text, nil
	}

	chunks := chunkText(text, t.cfg.ChunkSize)
	t.logger.Info(ctx, "Translating %d chunk(s) %s -> %s", len(chunks), t.cfg.SourceLang, t.cfg.TargetLang)

	var sb strings.Builder
	for i, chunk := range chunks {
		out, err := t.client.TranslateChunk(ctx, chunk, t.cfg.SourceLang, t.cfg.TargetLang)
		if err != nil {
			return "", &errs.TranslationServiceError{Chunk: i, Err: err}
		}
		sb.WriteString(out)
	}

	return sb.String(), nil
}
