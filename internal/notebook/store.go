// Package notebook persists the user's saved entries.
package notebook

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/at-ishikawa/glossa/internal/dictionary"
)

// Item is a saved entry. The entry is a value copy taken at save time; later
// changes to the active search entry do not reach an already-saved item.
type Item struct {
	dictionary.Entry
	ID   string `json:"id"`
	Date int64  `json:"date"`
}

// ErrItemNotFound is returned when removing an id that is not in the notebook.
var ErrItemNotFound = errors.New("notebook item not found")

// Store is the durable, ordered collection of saved entries. It is loaded once
// at startup and written back synchronously on every mutation.
type Store struct {
	path string

	mu    sync.Mutex
	items []Item

	now   func() time.Time
	newID func() string
}

// Open loads the notebook from path. A missing file yields an empty notebook.
// A corrupt payload is treated as empty rather than failing startup; the
// broken content is overwritten on the next mutation.
func Open(path string) (*Store, error) {
	store := &Store{
		path:  path,
		now:   time.Now,
		newID: uuid.NewString,
	}

	contents, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return store, nil
	}
	if err != nil {
		return nil, fmt.Errorf("os.ReadFile(%s) > %w", path, err)
	}

	if err := json.Unmarshal(contents, &store.items); err != nil {
		slog.Default().Warn("notebook file is corrupt, starting empty",
			"path", path,
			"error", err,
		)
		store.items = nil
	}
	return store, nil
}

// List returns the saved items, newest first.
func (store *Store) List() []Item {
	store.mu.Lock()
	defer store.mu.Unlock()
	items := make([]Item, len(store.items))
	copy(items, store.items)
	return items
}

// Words returns the saved headwords, newest first.
func (store *Store) Words() []string {
	store.mu.Lock()
	defer store.mu.Unlock()
	words := make([]string, 0, len(store.items))
	for _, item := range store.items {
		words = append(words, item.Word)
	}
	return words
}

// IsSaved reports whether an item with this (word, target language) identity
// is in the notebook.
func (store *Store) IsSaved(word string, targetLang dictionary.Language) bool {
	store.mu.Lock()
	defer store.mu.Unlock()
	return store.indexOf(word, targetLang) >= 0
}

// Toggle saves the entry when its (word, target language) identity is absent
// and removes every matching item when it is present. It reports whether the
// entry is saved after the call.
func (store *Store) Toggle(entry dictionary.Entry) (bool, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	if store.indexOf(entry.Word, entry.TargetLang) >= 0 {
		kept := store.items[:0]
		for _, item := range store.items {
			if item.Word == entry.Word && item.TargetLang == entry.TargetLang {
				continue
			}
			kept = append(kept, item)
		}
		store.items = kept
		if err := store.persist(); err != nil {
			return true, err
		}
		return false, nil
	}

	item := Item{
		Entry: entry,
		ID:    store.newID(),
		Date:  store.now().UnixMilli(),
	}
	store.items = append([]Item{item}, store.items...)
	if err := store.persist(); err != nil {
		return false, err
	}
	return true, nil
}

// Remove deletes the item with the given id.
//
// Note the asymmetry with Toggle: toggling keys on (word, target language)
// while removal keys on id. Items added through other paths could share the
// toggle identity; Toggle then removes all of them at once.
func (store *Store) Remove(id string) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	kept := store.items[:0]
	found := false
	for _, item := range store.items {
		if item.ID == id {
			found = true
			continue
		}
		kept = append(kept, item)
	}
	store.items = kept
	if !found {
		return fmt.Errorf("%w: %s", ErrItemNotFound, id)
	}
	return store.persist()
}

func (store *Store) indexOf(word string, targetLang dictionary.Language) int {
	for i, item := range store.items {
		if item.Word == word && item.TargetLang == targetLang {
			return i
		}
	}
	return -1
}

func (store *Store) persist() error {
	items := store.items
	if items == nil {
		items = []Item{}
	}
	contents, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("json.MarshalIndent > %w", err)
	}
	if dir := filepath.Dir(store.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("os.MkdirAll(%s) > %w", dir, err)
		}
	}
	if err := os.WriteFile(store.path, contents, 0644); err != nil {
		return fmt.Errorf("os.WriteFile(%s) > %w", store.path, err)
	}
	return nil
}
