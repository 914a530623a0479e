// Package errs defines the failure categories a dubbing request can end in.
// Each category maps to one short user-facing reply; anything else is
// reported as a generic processing failure.
package errs

import "fmt"

// RetrievalError means no content could be fetched or extracted from the
// user's input (e.g. a video link with no audio track).
type RetrievalError struct {
	Reason string
	Err    error
}

func (e *RetrievalError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("retrieval failed: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("retrieval failed: %s", e.Reason)
}

func (e *RetrievalError) Unwrap() error { return e.Err }

// TranslationServiceError means a translation call failed. The whole request
// aborts; partially translated chunk lists are never returned.
type TranslationServiceError struct {
	Chunk int
	Err   error
}

func (e *TranslationServiceError) Error() string {
	return fmt.Sprintf("translation failed on chunk %d: %v", e.Chunk, e.Err)
}

func (e *TranslationServiceError) Unwrap() error { return e.Err }

// SynthesisError means not a single utterance produced audio.
type SynthesisError struct {
	Utterances int
}

func (e *SynthesisError) Error() string {
	return fmt.Sprintf("synthesis produced no audio (%d utterances attempted)", e.Utterances)
}

// ConversionError means audio transcoding or encoding failed.
type ConversionError struct {
	Op  string
	Err error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("audio conversion failed during %s: %v", e.Op, e.Err)
}

func (e *ConversionError) Unwrap() error { return e.Err }
