package watcher

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/voxdub/voxdub/internal/logger"
)

// DirSink delivers pipeline artifacts into an output directory instead of a
// chat. Notifications become log lines.
type DirSink struct {
	OutDir   string
	BaseName string
	Logger   logger.Logger
}

func (s *DirSink) Notify(ctx context.Context, message string) {
	s.Logger.Info(ctx, "[%s] %s", s.BaseName, message)
}

func (s *DirSink) SendDocument(ctx context.Context, path, caption string) error {
	return s.copyOut(path)
}

func (s *DirSink) SendAudio(ctx context.Context, path, caption string) error {
	return s.copyOut(path)
}

func (s *DirSink) copyOut(path string) error {
	if err := os.MkdirAll(s.OutDir, 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read artifact: %w", err)
	}

	name := stripExt(s.BaseName) + filepath.Ext(path)
	dest := filepath.Join(s.OutDir, name)
	if err := os.WriteFile(dest, data, 0644); err != nil {
		return fmt.Errorf("write artifact: %w", err)
	}

	return nil
}

func stripExt(name string) string {
	return strings.TrimSuffix(name, filepath.Ext(name))
}
