// Package transcript renders the translated text as a downloadable document.
package transcript

import (
	"fmt"
	"os"
	"path/filepath"
)

// Writer persists a transcript into a directory and returns the file path.
type Writer interface {
	Write(text, dir, baseName string) (string, error)
}

type implWriter struct {
	format string
}

// New creates a Writer for the configured format ("txt" or "docx").
func New(format string) Writer {
	return &implWriter{format: format}
}

func (w *implWriter) Write(text, dir, baseName string) (string, error) {
	switch w.format {
	case "docx":
		path := filepath.Join(dir, baseName+".docx")
		if err := textToDocx(baseName, text, path); err != nil {
			return "", fmt.Errorf("write docx transcript: %w", err)
		}
		return path, nil
	default:
		path := filepath.Join(dir, baseName+".txt")
		if err := os.WriteFile(path, []byte(text), 0644); err != nil {
			return "", fmt.Errorf("write txt transcript: %w", err)
		}
		return path, nil
	}
}
