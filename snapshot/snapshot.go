// Package snapshot persists the small named subset of UI/session state that
// survives a restart. Orders, trades and prices are session-transient and
// never pass through here.
package snapshot

import (
	"errors"
	"time"

	"github.com/enterprise220/RWA-Trade-Hub/config"
)

// Document is an opaque key/value record. Only whitelisted keys survive Save;
// unknown keys found on Load are ignored, which keeps old snapshots forward
// compatible.
type Document map[string]interface{}

const (
	KeySelectedMarket = "selected_market"
	KeyFeedConnected  = "feed_connected"
)

var whitelist = map[string]struct{}{
	KeySelectedMarket: {},
	KeyFeedConnected:  {},
}

const keyPrefix = "session:"

// DefaultMarket is what SelectedMarket falls back to before anything was
// saved.
const DefaultMarket = "BTC/USD"

// Backend is the KV persistence the store writes through. config.CacheService
// satisfies it; tests use MemoryBackend.
type Backend interface {
	GetKey(key string, src interface{}) error
	SetKey(key string, value interface{}, expiration time.Duration) error
}

type Store struct {
	backend Backend
}

func NewStore(backend Backend) *Store {
	return &Store{backend: backend}
}

// Save persists the whitelisted subset of state under the named key.
// Persistence is best-effort: backend failures are logged and swallowed so
// the state change that triggered the save is never aborted.
func (s *Store) Save(name string, state Document) {
	filtered := make(Document, len(whitelist))
	for key, value := range state {
		if _, ok := whitelist[key]; ok {
			filtered[key] = value
		}
	}

	if err := s.backend.SetKey(keyPrefix+name, filtered, 0); err != nil {
		config.Logger.Warnf("snapshot: saving %q failed: %v", name, err)
	}
}

// Load returns the last saved subset, or an empty document when nothing was
// saved or the backend failed.
func (s *Store) Load(name string) Document {
	var raw Document
	if err := s.backend.GetKey(keyPrefix+name, &raw); err != nil {
		if !errors.Is(err, config.ErrKeyNotFound) {
			config.Logger.Warnf("snapshot: loading %q failed: %v", name, err)
		}
		return Document{}
	}

	document := make(Document, len(whitelist))
	for key, value := range raw {
		if _, ok := whitelist[key]; ok {
			document[key] = value
		}
	}
	return document
}

// SelectedMarket reads the persisted market selection with its default.
func (d Document) SelectedMarket() string {
	if market, ok := d[KeySelectedMarket].(string); ok && market != "" {
		return market
	}
	return DefaultMarket
}
