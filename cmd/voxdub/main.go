package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/voxdub/voxdub/internal/audio"
	"github.com/voxdub/voxdub/internal/config"
	"github.com/voxdub/voxdub/internal/detect"
	"github.com/voxdub/voxdub/internal/extract"
	"github.com/voxdub/voxdub/internal/logger"
	"github.com/voxdub/voxdub/internal/pipeline"
	"github.com/voxdub/voxdub/internal/telegram"
	"github.com/voxdub/voxdub/internal/transcript"
	"github.com/voxdub/voxdub/internal/translate"
	"github.com/voxdub/voxdub/internal/tts"
	"github.com/voxdub/voxdub/internal/watcher"
	"github.com/voxdub/voxdub/pkg/executor"
)

func main() {
	ctx := context.Background()

	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	cfg, err := config.Load("config.yaml")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	creds, err := config.LoadCredentials()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load credentials: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Logging.Level)
	log.Info(ctx, "========================================")
	log.Info(ctx, "VoxDub - Arabic Dubbing Bot")
	log.Info(ctx, "========================================")
	log.Info(ctx, "Translation provider: %s (%s -> %s)", cfg.Translate.Provider, cfg.Translate.SourceLang, cfg.Translate.TargetLang)
	log.Info(ctx, "TTS server: %s (speaker: %s)", cfg.TTS.ServerURL, cfg.TTS.Speaker)
	log.Info(ctx, "Transcript format: %s", cfg.Transcript.Format)

	if err := os.MkdirAll(cfg.Paths.Work, 0755); err != nil {
		log.Error(ctx, "Failed to create work directory: %v", err)
		os.Exit(1)
	}

	// Service objects are built once here and injected; nothing in the
	// pipeline holds ambient global state.
	exec := executor.New()
	translateClient, err := translate.NewClient(cfg.Translate, creds, log)
	if err != nil {
		log.Error(ctx, "Failed to create translation client: %v", err)
		os.Exit(1)
	}

	pipe := pipeline.New(
		cfg,
		extract.New(cfg.Whisper, exec, log),
		detect.New(),
		translate.New(cfg.Translate, translateClient, log),
		tts.New(cfg.TTS, tts.NewServerClient(cfg.TTS), log),
		audio.New(cfg.Audio, exec, log),
		transcript.New(cfg.Transcript.Format),
		log,
	)

	bot, err := telegram.New(creds.TelegramToken, cfg.Telegram, pipe, log)
	if err != nil {
		log.Error(ctx, "Failed to start bot: %v", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	errChan := make(chan error, 2)

	go func() {
		if err := bot.Run(ctx); err != nil && err != context.Canceled {
			errChan <- err
		}
	}()

	if cfg.Paths.Inbox != "" {
		w, err := startInboxWatcher(ctx, cfg, pipe, log, errChan)
		if err != nil {
			log.Error(ctx, "Failed to start inbox watcher: %v", err)
			os.Exit(1)
		}
		defer w.Stop()
	}

	log.Info(ctx, "Bot is ready. Press Ctrl+C to stop")

	select {
	case <-sigChan:
		log.Info(ctx, "Shutdown signal received")
	case err := <-errChan:
		log.Error(ctx, "Runtime error: %v", err)
	}

	log.Info(ctx, "Shutting down gracefully...")
	cancel()
	log.Info(ctx, "Bot stopped")
}

// startInboxWatcher wires the optional drop-folder intake to the pipeline.
func startInboxWatcher(ctx context.Context, cfg *config.Config, pipe pipeline.Pipeline, log logger.Logger, errChan chan<- error) (watcher.Watcher, error) {
	if err := os.MkdirAll(cfg.Paths.Inbox, 0755); err != nil {
		return nil, fmt.Errorf("create inbox directory: %w", err)
	}

	handler := func(ctx context.Context, filePath string) error {
		name := filepath.Base(filePath)
		return pipe.Process(ctx, pipeline.Request{
			Kind: pipeline.KindFile,
			Path: filePath,
			Name: name,
			Sink: &watcher.DirSink{OutDir: cfg.Paths.Outbox, BaseName: name, Logger: log},
		})
	}

	w, err := watcher.New(cfg.Paths.Inbox, handler, log, 1)
	if err != nil {
		return nil, err
	}

	go func() {
		if err := w.Start(ctx); err != nil && err != context.Canceled {
			errChan <- err
		}
	}()

	log.Info(ctx, "Inbox watcher enabled: %s -> %s", cfg.Paths.Inbox, cfg.Paths.Outbox)
	return w, nil
}
