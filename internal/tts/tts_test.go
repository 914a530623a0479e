package tts

import (
	"context"
	"errors"
	"os"
	"reflect"
	"testing"
	"time"

	"github.com/voxdub/voxdub/internal/config"
	"github.com/voxdub/voxdub/internal/errs"
	"github.com/voxdub/voxdub/internal/logger"
)

func TestSplitUtterances(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "two english sentences",
			text: "Hello. How are you?",
			want: []string{"Hello.", "How are you?"},
		},
		{
			name: "arabic terminals",
			text: "مرحبا، كيف حالك؟ أنا بخير.",
			want: []string{"مرحبا،", "كيف حالك؟", "أنا بخير."},
		},
		{
			name: "no terminal punctuation",
			text: "just one run of words",
			want: []string{"just one run of words"},
		},
		{
			name: "empty",
			text: "   ",
			want: nil,
		},
		{
			name: "abbreviation-ish dot mid-token is kept",
			text: "v1.2 is out. Enjoy!",
			want: []string{"v1.2 is out.", "Enjoy!"},
		},
		{
			name: "trailing whitespace runs collapse",
			text: "One.   \n  Two!  ",
			want: []string{"One.", "Two!"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := splitUtterances(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("splitUtterances() = %q, want %q", got, tt.want)
			}
		})
	}
}

// fakeClient fails for utterances listed in failTexts.
type fakeClient struct {
	failTexts map[string]bool
	failAll   bool
	rendered  []string
}

func (f *fakeClient) Synthesize(ctx context.Context, text, outPath string) error {
	if f.failAll || f.failTexts[text] {
		return errors.New("simulated synthesis failure")
	}
	f.rendered = append(f.rendered, text)
	return os.WriteFile(outPath, []byte("RIFFfake"), 0644)
}

func newTestSynthesizer(client Client) Synthesizer {
	cfg := config.TTSConfig{
		ServerURL: "http://127.0.0.1:5002",
		Speaker:   "Ana Florence",
		Language:  "ar",
		PauseMs:   400,
	}
	return New(cfg, client, logger.New("error"))
}

func TestSynthesize(t *testing.T) {
	dir := t.TempDir()
	client := &fakeClient{}
	s := newTestSynthesizer(client)

	res, err := s.Synthesize(context.Background(), "Hello. How are you?", dir)
	if err != nil {
		t.Fatalf("Synthesize() error = %v", err)
	}

	if len(res.Segments) != 2 {
		t.Fatalf("got %d segments, want 2", len(res.Segments))
	}
	if len(res.Skipped) != 0 {
		t.Errorf("got %d skipped, want 0", len(res.Skipped))
	}
	for _, seg := range res.Segments {
		if seg.Pause != 400*time.Millisecond {
			t.Errorf("segment pause = %v, want 400ms", seg.Pause)
		}
		if _, err := os.Stat(seg.Path); err != nil {
			t.Errorf("clip file missing: %v", err)
		}
	}
	if !reflect.DeepEqual(client.rendered, []string{"Hello.", "How are you?"}) {
		t.Errorf("rendered order = %q", client.rendered)
	}
}

func TestSynthesizePartialDegradation(t *testing.T) {
	dir := t.TempDir()
	client := &fakeClient{failTexts: map[string]bool{"Second.": true}}
	s := newTestSynthesizer(client)

	res, err := s.Synthesize(context.Background(), "First. Second. Third.", dir)
	if err != nil {
		t.Fatalf("Synthesize() error = %v", err)
	}

	if len(res.Segments) != 2 {
		t.Errorf("got %d segments, want 2", len(res.Segments))
	}
	if len(res.Skipped) != 1 {
		t.Fatalf("got %d skipped, want 1", len(res.Skipped))
	}
	if res.Skipped[0].Index != 1 || res.Skipped[0].Text != "Second." {
		t.Errorf("skipped = %+v", res.Skipped[0])
	}
	if res.Skipped[0].Err == nil {
		t.Error("skipped diagnostic should carry the cause")
	}
}

func TestSynthesizeAllFail(t *testing.T) {
	dir := t.TempDir()
	s := newTestSynthesizer(&fakeClient{failAll: true})

	_, err := s.Synthesize(context.Background(), "First. Second.", dir)

	var se *errs.SynthesisError
	if !errors.As(err, &se) {
		t.Fatalf("Synthesize() error = %v, want SynthesisError", err)
	}
	if se.Utterances != 2 {
		t.Errorf("Utterances = %d, want 2", se.Utterances)
	}
}
