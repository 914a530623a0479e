package extract

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/voxdub/voxdub/internal/errs"
)

// ExtractFromLink downloads the best available audio track of a video link
// into workDir, transcodes it to WAV, and transcribes it. A link that
// produces no audio file is a retrieval failure, surfaced to the user and
// never retried.
func (e *implExtractor) ExtractFromLink(ctx context.Context, url, workDir string) (string, error) {
	e.logger.Info(ctx, "Downloading audio track: %s", url)

	args := []string{
		"-f", "bestaudio/best",
		"-x",
		"--audio-format", "wav",
		"-o", "audio.%(ext)s",
		"--no-playlist",
		"-q",
		url,
	}

	if _, err := e.executor.ExecuteInDir(ctx, workDir, "yt-dlp", args...); err != nil {
		return "", &errs.RetrievalError{Reason: "audio download failed", Err: err}
	}

	wavPath, err := findWAV(workDir)
	if err != nil {
		return "", err
	}

	return e.transcribe(ctx, wavPath, workDir)
}

func findWAV(dir string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", &errs.RetrievalError{Reason: "read download dir", Err: err}
	}

	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(strings.ToLower(entry.Name()), ".wav") {
			return filepath.Join(dir, entry.Name()), nil
		}
	}

	return "", &errs.RetrievalError{Reason: "no audio track produced for link"}
}
