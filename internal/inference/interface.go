package inference

import (
	"context"
	"fmt"

	"github.com/at-ishikawa/glossa/internal/dictionary"
)

//go:generate mockgen -source=interface.go -destination=../mocks/inference/mock_client.go -package=mock_inference

// Client defines the generative backend operations the application depends on.
//
// LookupWord is the only operation whose failure propagates to the caller.
// GenerateEntryImage and SynthesizeSpeech are best-effort: they absorb every
// failure and report absence instead of returning an error.
type Client interface {
	// LookupWord requests a structured dictionary entry for a word or phrase.
	// The returned entry is stamped with the requested language pair no matter
	// what the backend echoes back.
	LookupWord(ctx context.Context, query string, nativeLang, targetLang dictionary.Language) (dictionary.Entry, error)

	// GenerateEntryImage requests an illustrative image for a word. It returns
	// a data URI, or an empty string when generation failed or produced no
	// image. It never returns an error to the caller.
	GenerateEntryImage(ctx context.Context, word, definition string) string

	// SynthesizeSpeech requests synthesized speech for the text in the given
	// language and returns the raw 16-bit PCM payload, or nil when the request
	// failed or carried no audio.
	SynthesizeSpeech(ctx context.Context, text string, lang dictionary.Language) []byte

	// CreateStory combines the given words into a short narrative written in
	// the target language followed by a native-language translation. An empty
	// backend response yields an empty string.
	CreateStory(ctx context.Context, words []string, nativeLang, targetLang dictionary.Language) (string, error)

	// NewChatSession opens a conversational thread about a single entry. Prior
	// turns are retained for the lifetime of the returned session.
	NewChatSession(entry dictionary.Entry) ChatSession
}

// ChatSession is one conversational thread scoped to a dictionary entry.
type ChatSession interface {
	SendMessage(ctx context.Context, text string) (string, error)
}

// MalformedResponseError reports a lookup whose network round trip succeeded
// but whose payload did not parse as the expected schema. It is a distinct
// failure mode from a transport or provider error.
type MalformedResponseError struct {
	Payload string
	Err     error
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("malformed backend response: %v", e.Err)
}

func (e *MalformedResponseError) Unwrap() error {
	return e.Err
}
