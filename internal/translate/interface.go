package translate

import "context"

// Translator converts pivot-language text to the target language. Text in
// any other language passes through untouched.
type Translator interface {
	Translate(ctx context.Context, text, sourceTag string) (string, error)
}

// Client is one translation backend. It receives at most one chunk per call;
// the request-size ceiling of the remote service is enforced by the caller.
type Client interface {
	TranslateChunk(ctx context.Context, text, sourceLang, targetLang string) (string, error)
}
