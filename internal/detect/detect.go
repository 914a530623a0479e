// Package detect classifies the language of extracted text. Classification
// failures never propagate; the pipeline falls back to the pivot language
// and carries on.
package detect

import (
	"strings"

	"github.com/pemistahl/lingua-go"
)

const (
	// sampleLimit bounds how much text is fed to the classifier.
	sampleLimit = 3000

	// FallbackTag is returned whenever classification fails. A language tag
	// is never empty.
	FallbackTag = "en"
)

// Classifier returns a lowercase two-letter language tag for a text sample.
type Classifier interface {
	Classify(text string) string
}

type implClassifier struct {
	detector lingua.LanguageDetector
}

// New creates a new Classifier instance
func New() Classifier {
	return &implClassifier{
		detector: lingua.NewLanguageDetectorBuilder().
			FromAllLanguages().
			Build(),
	}
}

func (c *implClassifier) Classify(text string) string {
	sample := strings.TrimSpace(text)
	if sample == "" {
		return FallbackTag
	}

	runes := []rune(sample)
	if len(runes) > sampleLimit {
		sample = string(runes[:sampleLimit])
	}

	lang, ok := c.detector.DetectLanguageOf(sample)
	if !ok {
		return FallbackTag
	}

	tag := strings.ToLower(lang.IsoCode639_1().String())
	if tag == "" {
		return FallbackTag
	}
	return tag
}
