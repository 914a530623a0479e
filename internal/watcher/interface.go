package watcher

import "context"

// Watcher monitors the inbox directory and feeds new files to the pipeline.
type Watcher interface {
	Start(ctx context.Context) error
	Stop() error
}

// EventHandler is a function that handles file events
type EventHandler func(ctx context.Context, filePath string) error
