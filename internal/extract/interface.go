package extract

import "context"

// Extractor turns an inbound payload into plain text.
type Extractor interface {
	// Extract reads a downloaded file and returns its textual content.
	// Intermediate files (audio conversions, transcripts) are confined to
	// workDir. Unsupported extensions yield an empty string, not an error.
	Extract(ctx context.Context, path, declaredName, workDir string) (string, error)

	// ExtractFromLink downloads the best audio track of a video link into
	// workDir and transcribes it.
	ExtractFromLink(ctx context.Context, url, workDir string) (string, error)
}
