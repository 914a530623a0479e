package extract

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/voxdub/voxdub/internal/errs"
)

// toWAV converts an audio container to 16kHz mono WAV, the format whisper
// expects. The converted file is placed in workDir, never beside the source.
func (e *implExtractor) toWAV(ctx context.Context, path, workDir string) (string, error) {
	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	wavPath := filepath.Join(workDir, base+"_converted.wav")

	e.logger.Info(ctx, "Converting audio to WAV: %s", path)

	// -ar 16000: 16kHz sample rate
	// -ac 1: mono
	// -c:a pcm_s16le: PCM 16-bit little-endian
	args := []string{
		"-i", path,
		"-ar", "16000",
		"-ac", "1",
		"-c:a", "pcm_s16le",
		"-y",
		wavPath,
	}

	if _, err := e.executor.Execute(ctx, "ffmpeg", args...); err != nil {
		return "", &errs.ConversionError{Op: "wav transcode", Err: err}
	}

	return wavPath, nil
}

// transcribe runs whisper on a WAV file and returns the plain transcript.
// The source language is fixed by configuration so whisper never guesses;
// whisper's output file lands in workDir.
func (e *implExtractor) transcribe(ctx context.Context, wavPath, workDir string) (string, error) {
	base := strings.TrimSuffix(filepath.Base(wavPath), filepath.Ext(wavPath))
	outputPrefix := filepath.Join(workDir, base)

	e.logger.Info(ctx, "Transcribing with %d threads: %s", e.whisper.Threads, wavPath)

	args := []string{
		"-m", e.whisper.ModelPath,
		"-f", wavPath,
		"-otxt",
		"-l", e.whisper.Language,
		"-t", strconv.Itoa(e.whisper.Threads),
		"--output-file", outputPrefix,
	}

	if _, err := e.executor.Execute(ctx, e.whisper.BinaryPath, args...); err != nil {
		return "", fmt.Errorf("whisper transcribe: %w", err)
	}

	txtPath := outputPrefix + ".txt"
	data, err := os.ReadFile(txtPath)
	if err != nil {
		return "", fmt.Errorf("read transcript %s: %w", txtPath, err)
	}
	defer os.Remove(txtPath)

	text := strings.TrimSpace(string(data))
	e.logger.Info(ctx, "Transcription completed: %d characters", len(text))
	return text, nil
}
