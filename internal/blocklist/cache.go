package blocklist

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"slices"
	"sync"
)

// StorageKey is the storage entry holding the JSON array of blocked URLs.
const StorageKey = "blockedURLs"

// Storage is the key/value store the cache persists into.
// storage.Store satisfies it.
type Storage interface {
	GetItem(ctx context.Context, key string) (string, bool, error)
	SetItem(ctx context.Context, key, value string) error
}

// Cache is the in-memory mirror of the persisted blocked URL set.
// It is safe for concurrent use.
type Cache struct {
	mu     sync.RWMutex
	urls   []string
	index  map[string]struct{}
	store  Storage
	logger *slog.Logger
}

// Option configures a Cache.
type Option func(*Cache)

// WithLogger sets the logger used to report unreadable stored data.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Cache) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// Load reads the blocked URL set from store.
//
// A missing entry yields an empty cache. A stored value that is not a JSON
// array of strings is treated as empty and logged; it is overwritten by the
// next RecordBlocked. Only storage failures are returned as errors.
func Load(ctx context.Context, store Storage, opts ...Option) (*Cache, error) {
	c := &Cache{
		index:  make(map[string]struct{}),
		store:  store,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}

	raw, ok, err := store.GetItem(ctx, StorageKey)
	if err != nil {
		return nil, fmt.Errorf("failed to load blocked URLs: %w", err)
	}
	if !ok || raw == "" {
		return c, nil
	}

	var urls []string
	if err := json.Unmarshal([]byte(raw), &urls); err != nil {
		c.logger.Warn("ignoring unreadable blocked URL cache", "key", StorageKey, "error", err)
		return c, nil
	}
	for _, u := range urls {
		c.add(u)
	}
	return c, nil
}

// add inserts u if absent. Only Load calls it, before c is shared.
func (c *Cache) add(u string) {
	if _, ok := c.index[u]; ok {
		return
	}
	c.index[u] = struct{}{}
	c.urls = append(c.urls, u)
}

// IsBlocked reports whether u has been recorded as blocked.
func (c *Cache) IsBlocked(u string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.index[u]
	return ok
}

// RecordBlocked adds u to the set and persists it immediately.
// Recording a URL that is already present changes nothing. When the write
// fails the in-memory set is left unchanged, so a later call retries it.
func (c *Cache) RecordBlocked(ctx context.Context, u string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.index[u]; ok {
		return nil
	}

	candidate := append(slices.Clip(c.urls), u)
	data, err := json.Marshal(candidate)
	if err != nil {
		return fmt.Errorf("failed to encode blocked URLs: %w", err)
	}
	if err := c.store.SetItem(ctx, StorageKey, string(data)); err != nil {
		return fmt.Errorf("failed to persist blocked URLs: %w", err)
	}

	c.urls = candidate
	c.index[u] = struct{}{}
	c.logger.Debug("recorded blocked URL", "url", u, "total", len(c.urls))
	return nil
}

// URLs returns the blocked URLs in insertion order.
func (c *Cache) URLs() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]string, len(c.urls))
	copy(out, c.urls)
	return out
}

// Len returns the number of blocked URLs.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.urls)
}
