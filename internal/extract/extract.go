package extract

import (
	"context"
	"os"
	"path/filepath"
	"strings"
)

var audioExtensions = map[string]bool{
	".mp3": true,
	".wav": true,
	".m4a": true,
	".ogg": true,
	".oga": true,
}

// Extract dispatches on the declared filename's extension. Audio payloads go
// through speech-to-text, documents through the matching parser. Anything
// unrecognized contributes no content and no error.
func (e *implExtractor) Extract(ctx context.Context, path, declaredName, workDir string) (string, error) {
	ext := strings.ToLower(filepath.Ext(declaredName))
	if ext == "" {
		ext = strings.ToLower(filepath.Ext(path))
	}

	// An empty payload carries no content for any format; parsers are not
	// given the chance to choke on it.
	if info, err := os.Stat(path); err == nil && info.Size() == 0 {
		return "", nil
	}

	switch {
	case audioExtensions[ext]:
		return e.transcribeFile(ctx, path, ext, workDir)
	case ext == ".pdf":
		return extractPDF(path)
	case ext == ".docx":
		return extractDocx(path)
	case ext == ".html" || ext == ".htm":
		return extractHTML(path)
	case ext == ".txt" || ext == ".md" || ext == ".rtf":
		return extractPlainText(path)
	default:
		e.logger.Debug(ctx, "Unsupported extension %q, no content extracted", ext)
		return "", nil
	}
}

// transcribeFile converts the payload to whisper's input format when needed,
// then runs speech-to-text. The source file is never written next to; all
// intermediates go into workDir.
func (e *implExtractor) transcribeFile(ctx context.Context, path, ext, workDir string) (string, error) {
	wavPath := path
	if ext != ".wav" {
		converted, err := e.toWAV(ctx, path, workDir)
		if err != nil {
			return "", err
		}
		wavPath = converted
	}

	return e.transcribe(ctx, wavPath, workDir)
}
