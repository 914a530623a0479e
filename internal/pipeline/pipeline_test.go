package pipeline

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/voxdub/voxdub/internal/config"
	"github.com/voxdub/voxdub/internal/errs"
	"github.com/voxdub/voxdub/internal/logger"
	"github.com/voxdub/voxdub/internal/transcript"
	"github.com/voxdub/voxdub/internal/translate"
	"github.com/voxdub/voxdub/internal/tts"
)

// fakeExtractor returns canned text per input.
type fakeExtractor struct {
	text    string
	linkErr error
}

func (f *fakeExtractor) Extract(ctx context.Context, path, name, workDir string) (string, error) {
	return f.text, nil
}

func (f *fakeExtractor) ExtractFromLink(ctx context.Context, url, workDir string) (string, error) {
	if f.linkErr != nil {
		return "", f.linkErr
	}
	return f.text, nil
}

type fakeClassifier struct{ tag string }

func (f *fakeClassifier) Classify(text string) string { return f.tag }

// arabicClient translates every chunk to a fixed Arabic text and counts calls.
type arabicClient struct{ calls int }

func (c *arabicClient) TranslateChunk(ctx context.Context, text, src, dst string) (string, error) {
	c.calls++
	return "مرحبا. كيف حالك؟", nil
}

// fakeSynthesizer splits on spaces after terminals like the real one would,
// writing one clip file per sentence.
type fakeSynthesizer struct {
	segments int
}

func (f *fakeSynthesizer) Synthesize(ctx context.Context, text, workDir string) (tts.Result, error) {
	if f.segments == 0 {
		return tts.Result{}, &errs.SynthesisError{Utterances: 0}
	}
	var res tts.Result
	for i := 0; i < f.segments; i++ {
		path := filepath.Join(workDir, "clip.wav")
		if err := os.WriteFile(path, []byte("RIFF"), 0644); err != nil {
			return tts.Result{}, err
		}
		res.Segments = append(res.Segments, tts.Segment{Path: path, Pause: 400 * time.Millisecond})
	}
	return res, nil
}

// fakeAssembler writes the output file and records how many segments it saw.
type fakeAssembler struct {
	segments int
}

func (f *fakeAssembler) Assemble(ctx context.Context, segments []tts.Segment, outPath string) error {
	f.segments = len(segments)
	return os.WriteFile(outPath, []byte("mp3"), 0644)
}

// recordingSink captures notifications and deliveries. Files are stat'd at
// delivery time, before the work dir is removed.
type recordingSink struct {
	notices   []string
	documents []string // transcript contents
	audios    []string // delivered audio paths (base names)
}

func (s *recordingSink) Notify(ctx context.Context, message string) {
	s.notices = append(s.notices, message)
}

func (s *recordingSink) SendDocument(ctx context.Context, path, caption string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	s.documents = append(s.documents, string(data))
	return nil
}

func (s *recordingSink) SendAudio(ctx context.Context, path, caption string) error {
	if _, err := os.Stat(path); err != nil {
		return err
	}
	s.audios = append(s.audios, filepath.Base(path))
	return nil
}

func testConfig(t *testing.T) *config.Config {
	cfg := &config.Config{
		Whisper: config.WhisperConfig{ModelPath: "m", BinaryPath: "w"},
		TTS:     config.TTSConfig{ServerURL: "http://localhost:5002"},
		Paths:   config.PathsConfig{Work: t.TempDir()},
	}
	if err := cfg.Validate(); err != nil {
		t.Fatal(err)
	}
	return cfg
}

func newTestPipeline(t *testing.T, cfg *config.Config, ex *fakeExtractor, tag string, client translate.Client, synth tts.Synthesizer, asm *fakeAssembler) Pipeline {
	log := logger.New("error")
	return New(
		cfg,
		ex,
		&fakeClassifier{tag: tag},
		translate.New(cfg.Translate, client, log),
		synth,
		asm,
		transcript.New(cfg.Transcript.Format),
		log,
	)
}

func TestProcessEnglishDocument(t *testing.T) {
	cfg := testConfig(t)
	client := &arabicClient{}
	asm := &fakeAssembler{}
	sink := &recordingSink{}

	p := newTestPipeline(t, cfg, &fakeExtractor{text: "Hello. How are you?"}, "en", client, &fakeSynthesizer{segments: 2}, asm)

	err := p.Process(context.Background(), Request{Kind: KindFile, Path: "in.txt", Name: "in.txt", Sink: sink})
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}

	if client.calls != 1 {
		t.Errorf("translation calls = %d, want 1", client.calls)
	}
	if asm.segments != 2 {
		t.Errorf("assembled segments = %d, want 2", asm.segments)
	}
	if len(sink.documents) != 1 || sink.documents[0] != "مرحبا. كيف حالك؟" {
		t.Errorf("delivered transcript = %q", sink.documents)
	}
	if len(sink.audios) != 1 || !strings.HasSuffix(sink.audios[0], ".mp3") {
		t.Errorf("delivered audio = %q, want one .mp3", sink.audios)
	}

	// Work directory is cleaned after delivery.
	entries, err := os.ReadDir(cfg.Paths.Work)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("work dir not cleaned: %v", entries)
	}
}

func TestProcessArabicBypassesTranslation(t *testing.T) {
	cfg := testConfig(t)
	client := &arabicClient{}
	sink := &recordingSink{}

	source := "نص عربي. لا يحتاج ترجمة."
	p := newTestPipeline(t, cfg, &fakeExtractor{text: source}, "ar", client, &fakeSynthesizer{segments: 2}, &fakeAssembler{})

	if err := p.Process(context.Background(), Request{Kind: KindFile, Path: "in.txt", Sink: sink}); err != nil {
		t.Fatalf("Process() error = %v", err)
	}

	if client.calls != 0 {
		t.Errorf("translation calls = %d, want 0 for non-pivot source", client.calls)
	}
	if len(sink.documents) != 1 || sink.documents[0] != source {
		t.Errorf("transcript = %q, want identical to input", sink.documents)
	}
}

func TestProcessLinkRetrievalFailure(t *testing.T) {
	cfg := testConfig(t)
	sink := &recordingSink{}

	ex := &fakeExtractor{linkErr: &errs.RetrievalError{Reason: "no audio track produced for link"}}
	p := newTestPipeline(t, cfg, ex, "en", &arabicClient{}, &fakeSynthesizer{segments: 1}, &fakeAssembler{})

	err := p.Process(context.Background(), Request{Kind: KindLink, URL: "https://youtu.be/xyz", Sink: sink})

	var re *errs.RetrievalError
	if !errors.As(err, &re) {
		t.Fatalf("Process() error = %v, want RetrievalError", err)
	}
	if len(sink.documents) != 0 || len(sink.audios) != 0 {
		t.Error("no attachments may be sent on retrieval failure")
	}
}

func TestProcessEmptyExtraction(t *testing.T) {
	cfg := testConfig(t)
	p := newTestPipeline(t, cfg, &fakeExtractor{text: "   "}, "en", &arabicClient{}, &fakeSynthesizer{segments: 1}, &fakeAssembler{})

	err := p.Process(context.Background(), Request{Kind: KindFile, Path: "x.zip", Sink: &recordingSink{}})

	var re *errs.RetrievalError
	if !errors.As(err, &re) {
		t.Errorf("Process() error = %v, want RetrievalError for empty text", err)
	}
}

func TestProcessSynthesisFailureCleansUp(t *testing.T) {
	cfg := testConfig(t)
	p := newTestPipeline(t, cfg, &fakeExtractor{text: "Some text."}, "en", &arabicClient{}, &fakeSynthesizer{segments: 0}, &fakeAssembler{})

	err := p.Process(context.Background(), Request{Kind: KindFile, Path: "a.txt", Sink: &recordingSink{}})

	var se *errs.SynthesisError
	if !errors.As(err, &se) {
		t.Fatalf("Process() error = %v, want SynthesisError", err)
	}

	entries, err2 := os.ReadDir(cfg.Paths.Work)
	if err2 != nil {
		t.Fatal(err2)
	}
	if len(entries) != 0 {
		t.Errorf("work dir not cleaned after failure: %v", entries)
	}
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"retrieval", &errs.RetrievalError{Reason: "x"}, "❌ لم يتم استخراج أي نص."},
		{"translation", &errs.TranslationServiceError{}, "❌ فشلت الترجمة، حاول مرة أخرى لاحقًا."},
		{"synthesis", &errs.SynthesisError{}, "❌ فشل توليد الصوت."},
		{"conversion", &errs.ConversionError{Op: "x"}, "❌ فشل تحويل الصوت."},
		{"unknown", errors.New("boom"), "❌ خطأ في المعالجة."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UserMessage(tt.err); got != tt.want {
				t.Errorf("UserMessage() = %q, want %q", got, tt.want)
			}
		})
	}
}
