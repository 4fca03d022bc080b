package audio

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/at-ishikawa/glossa/internal/dictionary"
	"github.com/at-ishikawa/glossa/internal/inference"
)

// Speaker turns a play request into sound. The cache stores raw undecoded
// bytes; decoding happens at play time, and a cache hit and a fresh fetch go
// through the same decode-then-play path.
type Speaker struct {
	client      inference.Client
	cache       *Cache
	sink        Sink
	sampleRate  int
	numChannels int
}

func NewSpeaker(client inference.Client, cache *Cache, sink Sink) *Speaker {
	return &Speaker{
		client:      client,
		cache:       cache,
		sink:        sink,
		sampleRate:  DefaultSampleRate,
		numChannels: 1,
	}
}

// Play speaks the clip cached under key, falling back to a synchronous fetch
// of text when the prefetch has not landed yet. A missing payload degrades to
// silence with a log line, never a user-visible failure.
func (speaker *Speaker) Play(ctx context.Context, key, text string, lang dictionary.Language) error {
	data, ok := speaker.cache.Get(key)
	if !ok {
		data = speaker.client.SynthesizeSpeech(ctx, text, lang)
	}
	if data == nil {
		slog.Default().Warn("no speech payload available",
			"key", key,
			"lang", lang,
		)
		return nil
	}

	buffer, err := DecodePCM16(data, speaker.sampleRate, speaker.numChannels)
	if err != nil {
		return fmt.Errorf("DecodePCM16 > %w", err)
	}
	if err := speaker.sink.Play(buffer); err != nil {
		return fmt.Errorf("sink.Play > %w", err)
	}
	return nil
}
