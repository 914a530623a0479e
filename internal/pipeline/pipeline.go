package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/voxdub/voxdub/internal/errs"
)

const (
	transcriptBaseName = "النص_العربي"
	audioFileName      = "الدبلجة_البشرية.mp3"
)

// Process runs the whole request: extract, classify, translate, synthesize,
// assemble, deliver. All intermediate files live in one per-request work
// directory that is removed on every exit path.
func (p *implPipeline) Process(ctx context.Context, req Request) error {
	startTime := time.Now()

	workDir := filepath.Join(p.cfg.Paths.Work, uuid.NewString())
	if err := os.MkdirAll(workDir, 0755); err != nil {
		return fmt.Errorf("create work dir: %w", err)
	}
	defer func() {
		if err := os.RemoveAll(workDir); err != nil {
			p.logger.Warn(ctx, "Failed to remove work dir %s: %v", workDir, err)
		}
	}()

	text, err := p.extractText(ctx, req, workDir)
	if err != nil {
		return err
	}
	if strings.TrimSpace(text) == "" {
		return &errs.RetrievalError{Reason: "no text extracted"}
	}

	tag := p.classifier.Classify(text)
	p.logger.Info(ctx, "Detected language: %s", tag)

	if tag == p.cfg.Translate.SourceLang {
		req.Sink.Notify(ctx, "🔄 جاري الترجمة إلى العربية...")
	}
	translated, err := p.translator.Translate(ctx, text, tag)
	if err != nil {
		return err
	}

	transcriptPath, err := p.writer.Write(translated, workDir, transcriptBaseName)
	if err != nil {
		return err
	}

	req.Sink.Notify(ctx, "🎙️ جاري إنشاء الصوت البشري الاحترافي... (قد يستغرق 30-90 ثانية)")

	result, err := p.synthesizer.Synthesize(ctx, translated, workDir)
	if err != nil {
		return err
	}
	for _, skipped := range result.Skipped {
		p.logger.Warn(ctx, "Utterance %d skipped: %v", skipped.Index, skipped.Err)
	}

	audioPath := filepath.Join(workDir, audioFileName)
	if err := p.assembler.Assemble(ctx, result.Segments, audioPath); err != nil {
		return err
	}

	if err := req.Sink.SendDocument(ctx, transcriptPath, "📄 النص العربي المترجم"); err != nil {
		return fmt.Errorf("deliver transcript: %w", err)
	}
	if err := req.Sink.SendAudio(ctx, audioPath, "🎧 الصوت البشري الاحترافي"); err != nil {
		return fmt.Errorf("deliver audio: %w", err)
	}

	p.logger.Info(ctx, "Request completed in %s (%d segments, %d skipped)",
		time.Since(startTime), len(result.Segments), len(result.Skipped))
	return nil
}

func (p *implPipeline) extractText(ctx context.Context, req Request, workDir string) (string, error) {
	switch req.Kind {
	case KindLink:
		req.Sink.Notify(ctx, "🎥 جاري معالجة رابط يوتيوب...")
		return p.extractor.ExtractFromLink(ctx, req.URL, workDir)
	default:
		return p.extractor.Extract(ctx, req.Path, req.Name, workDir)
	}
}
