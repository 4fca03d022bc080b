package audio

import (
	"fmt"
	"sort"
	"sync"
)

// ExampleTargetKey is the cache key of an example sentence's audio clip.
func ExampleTargetKey(index int) string {
	return fmt.Sprintf("ex-target-%d", index)
}

// ExampleNativeKey is the cache key of an example translation's audio clip.
func ExampleNativeKey(index int) string {
	return fmt.Sprintf("ex-native-%d", index)
}

// Cache maps a spoken-text or positional key to a raw, undecoded PCM payload.
// It is scoped to the active entry: it is cleared wholesale when a new lookup
// starts and repopulated as prefetch results arrive, in arbitrary order. Each
// Put merges exactly one key and never disturbs sibling keys.
type Cache struct {
	mu      sync.RWMutex
	buffers map[string][]byte
}

func NewCache() *Cache {
	return &Cache{
		buffers: map[string][]byte{},
	}
}

// Put stores one payload under one key, last write wins per key.
func (cache *Cache) Put(key string, data []byte) {
	cache.mu.Lock()
	defer cache.mu.Unlock()
	cache.buffers[key] = data
}

// Get returns the payload stored under key, if any.
func (cache *Cache) Get(key string) ([]byte, bool) {
	cache.mu.RLock()
	defer cache.mu.RUnlock()
	data, ok := cache.buffers[key]
	return data, ok
}

// Clear discards every stored payload.
func (cache *Cache) Clear() {
	cache.mu.Lock()
	defer cache.mu.Unlock()
	cache.buffers = map[string][]byte{}
}

// Len returns the number of stored payloads.
func (cache *Cache) Len() int {
	cache.mu.RLock()
	defer cache.mu.RUnlock()
	return len(cache.buffers)
}

// Keys returns the stored keys in sorted order.
func (cache *Cache) Keys() []string {
	cache.mu.RLock()
	defer cache.mu.RUnlock()
	keys := make([]string, 0, len(cache.buffers))
	for key := range cache.buffers {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
