package pipeline

import "context"

// Kind declares how a request's payload should be normalized.
type Kind int

const (
	// KindFile is a downloaded attachment (document, audio, or voice note).
	KindFile Kind = iota
	// KindLink is a video-sharing URL whose audio track must be fetched.
	KindLink
)

// Request is one dubbing job. Exactly one of Path/URL is set depending on
// Kind. Everything a request produces lives in its own work directory and is
// deleted when Process returns.
type Request struct {
	Kind Kind
	Path string // downloaded payload, KindFile
	Name string // declared filename, KindFile
	URL  string // video link, KindLink
	Sink Sink
}

// Sink receives progress notices and the final artifacts. The chat adapter
// implements it per conversation; the drop-folder intake implements it over
// the filesystem.
type Sink interface {
	Notify(ctx context.Context, message string)
	SendDocument(ctx context.Context, path, caption string) error
	SendAudio(ctx context.Context, path, caption string) error
}

// Pipeline runs one request end to end.
type Pipeline interface {
	Process(ctx context.Context, req Request) error
}
