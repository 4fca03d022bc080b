// Package lookup orchestrates a word lookup and its enrichment fan-out.
package lookup

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/at-ishikawa/glossa/internal/audio"
	"github.com/at-ishikawa/glossa/internal/dictionary"
	"github.com/at-ishikawa/glossa/internal/inference"
)

// State is the phase of the single active query.
type State int

const (
	StateIdle State = iota
	StateLoading
	StateReady
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	default:
		return "idle"
	}
}

var (
	// ErrEmptyQuery is returned when the query is blank.
	ErrEmptyQuery = errors.New("empty query")
	// ErrLookupInProgress is returned when a lookup is already in flight.
	ErrLookupInProgress = errors.New("a lookup is already in progress")
)

// Searcher runs at most one lookup at a time. When the structured lookup
// resolves, the entry becomes available immediately and the searcher fans out
// independent prefetch requests for the image and every audio clip. Each
// completion merges exactly its own contribution, guarded by the generation
// the request was issued for, so a late arrival from an abandoned lookup can
// never touch a newer entry or its cache.
type Searcher struct {
	client inference.Client

	mu         sync.Mutex
	state      State
	generation uint64
	current    *dictionary.Entry
	cache      *audio.Cache

	enriching sync.WaitGroup
}

func NewSearcher(client inference.Client, cache *audio.Cache) *Searcher {
	return &Searcher{
		client: client,
		cache:  cache,
	}
}

// State returns the current phase.
func (s *Searcher) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Current returns a copy of the active entry, if one is displayed.
func (s *Searcher) Current() (dictionary.Entry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return dictionary.Entry{}, false
	}
	return *s.current, true
}

// Cache exposes the entry-scoped audio cache.
func (s *Searcher) Cache() *audio.Cache {
	return s.cache
}

// Search performs the structured lookup for query and, on success, starts the
// enrichment fan-out before returning. The returned entry has no image yet;
// call Wait to block until every prefetch has settled.
func (s *Searcher) Search(
	ctx context.Context,
	query string,
	nativeLang, targetLang dictionary.Language,
) (dictionary.Entry, error) {
	if strings.TrimSpace(query) == "" {
		return dictionary.Entry{}, ErrEmptyQuery
	}

	s.mu.Lock()
	if s.state == StateLoading {
		s.mu.Unlock()
		return dictionary.Entry{}, ErrLookupInProgress
	}
	s.state = StateLoading
	s.generation++
	generation := s.generation
	s.current = nil
	s.cache.Clear()
	s.mu.Unlock()

	entry, err := s.client.LookupWord(ctx, query, nativeLang, targetLang)
	if err != nil {
		s.mu.Lock()
		s.state = StateIdle
		s.mu.Unlock()
		return dictionary.Entry{}, fmt.Errorf("client.LookupWord > %w", err)
	}

	s.mu.Lock()
	result := entry
	s.current = &entry
	s.state = StateReady
	s.mu.Unlock()

	s.enrich(ctx, generation, result)
	return result, nil
}

// Wait blocks until every in-flight enrichment request has completed.
func (s *Searcher) Wait() {
	s.enriching.Wait()
}

// enrich issues the independent, fire-and-forget prefetch requests: one image,
// one clip for the headword, one for the definition, and two per example.
// None of them blocks the others, and arrival order is arbitrary.
func (s *Searcher) enrich(ctx context.Context, generation uint64, entry dictionary.Entry) {
	s.spawn(func() {
		if url := s.client.GenerateEntryImage(ctx, entry.Word, entry.Definition); url != "" {
			s.mergeImage(generation, url)
		}
	})
	s.prefetchSpeech(ctx, generation, entry.Word, entry.Word, entry.TargetLang)
	s.prefetchSpeech(ctx, generation, entry.Definition, entry.Definition, entry.NativeLang)
	for i, example := range entry.Examples {
		s.prefetchSpeech(ctx, generation, audio.ExampleTargetKey(i), example.Sentence, entry.TargetLang)
		s.prefetchSpeech(ctx, generation, audio.ExampleNativeKey(i), example.Translation, entry.NativeLang)
	}
}

func (s *Searcher) prefetchSpeech(ctx context.Context, generation uint64, key, text string, lang dictionary.Language) {
	s.spawn(func() {
		if data := s.client.SynthesizeSpeech(ctx, text, lang); data != nil {
			s.mergeAudio(generation, key, data)
		}
	})
}

func (s *Searcher) spawn(f func()) {
	s.enriching.Add(1)
	go func() {
		defer s.enriching.Done()
		f()
	}()
}

func (s *Searcher) mergeImage(generation uint64, url string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if generation != s.generation || s.current == nil {
		return
	}
	s.current.ImageURL = url
}

func (s *Searcher) mergeAudio(generation uint64, key string, data []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if generation != s.generation {
		return
	}
	s.cache.Put(key, data)
}
