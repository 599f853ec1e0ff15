// Package cache provides an in-memory TTL cache for adapter responses.
// Instances are created and injected explicitly; there is no package
// level shared state.
package cache

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/umputun/pulse/pkg/domain"
)

// Cache is a mutex-guarded map from request key to a cached item batch.
// An entry is valid iff now - timestamp < ttl; expired entries are
// treated as misses and overwritten on the next Set. Concurrent writers
// racing on the same key are fine, last writer wins.
type Cache struct {
	ttl time.Duration
	now func() time.Time

	mu      sync.Mutex
	entries map[string]entry
}

type entry struct {
	items []domain.ContentItem
	ts    time.Time
}

// Option configures the cache
type Option func(*Cache)

// WithClock overrides the time source, used in tests
func WithClock(now func() time.Time) Option {
	return func(c *Cache) { c.now = now }
}

// New creates a cache with the given TTL
func New(ttl time.Duration, opts ...Option) *Cache {
	c := &Cache{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]entry),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Key builds a cache key from an endpoint name and its parameters. The
// parameters are JSON-serialized so structurally equal requests map to
// the same key.
func Key(endpoint string, params any) string {
	data, err := json.Marshal(params)
	if err != nil {
		// marshalling plain request params never fails in practice,
		// fall back to the verbose representation
		return fmt.Sprintf("%s-%+v", endpoint, params)
	}
	return endpoint + "-" + string(data)
}

// Get returns the cached items for key if present and fresh
func (c *Cache) Get(key string) ([]domain.ContentItem, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok || c.now().Sub(e.ts) >= c.ttl {
		return nil, false
	}
	return e.items, true
}

// Set stores items under key with the current timestamp
func (c *Cache) Set(key string, items []domain.ContentItem) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = entry{items: items, ts: c.now()}
}

// Has reports whether a fresh entry exists for key
func (c *Cache) Has(key string) bool {
	_, ok := c.Get(key)
	return ok
}

// Len returns the number of stored entries, expired included
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
