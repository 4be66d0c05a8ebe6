package snapshot

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/enterprise220/RWA-Trade-Hub/config"
)

// MemoryBackend is an in-process Backend used in tests and when no redis is
// configured. Values round-trip through JSON so behavior matches the cache
// service exactly.
type MemoryBackend struct {
	mu      sync.RWMutex
	entries map[string][]byte
}

func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{entries: make(map[string][]byte)}
}

func (b *MemoryBackend) GetKey(key string, src interface{}) error {
	b.mu.RLock()
	raw, found := b.entries[key]
	b.mu.RUnlock()

	if !found {
		return config.ErrKeyNotFound
	}
	return json.Unmarshal(raw, src)
}

func (b *MemoryBackend) SetKey(key string, value interface{}, _ time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}

	b.mu.Lock()
	b.entries[key] = raw
	b.mu.Unlock()
	return nil
}
