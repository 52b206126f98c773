// Package cache provides a small bounded in-memory TTL cache.
package cache

import (
	"log/slog"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

// Cache maps keys to values with a fixed time-to-live. Expired entries are
// treated as misses and reclaimed either lazily by EvictExpired or by the
// background eviction timer. The entry count never exceeds maxEntries.
type Cache[K comparable, V any] struct {
	mu         sync.RWMutex
	entries    map[K]entry[V]
	ttl        time.Duration
	maxEntries int
	clock      clockwork.Clock
}

type entry[V any] struct {
	value     V
	expiresAt time.Time
}

// New creates a cache holding at most maxEntries values for ttl each.
func New[K comparable, V any](ttl time.Duration, maxEntries int, clock clockwork.Clock) *Cache[K, V] {
	return &Cache[K, V]{
		entries:    make(map[K]entry[V]),
		ttl:        ttl,
		maxEntries: maxEntries,
		clock:      clock,
	}
}

// Get returns the cached value if present and not expired.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.entries[key]
	if !ok || c.clock.Now().After(e.expiresAt) {
		var zero V
		return zero, false
	}
	return e.value, true
}

// Set stores value under key. When the cache is full, expired entries are
// reclaimed first; if none are expired, an arbitrary entry is dropped to
// keep the bound without LRU bookkeeping.
func (c *Cache[K, V]) Set(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[key]; !exists && len(c.entries) >= c.maxEntries {
		c.evictExpiredLocked()
		if len(c.entries) >= c.maxEntries {
			for k := range c.entries {
				delete(c.entries, k)
				break
			}
		}
	}

	c.entries[key] = entry[V]{value: value, expiresAt: c.clock.Now().Add(c.ttl)}
}

// Invalidate removes a single entry.
func (c *Cache[K, V]) Invalidate(key K) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
}

// Len returns the current number of entries, including expired ones not yet
// reclaimed.
func (c *Cache[K, V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// EvictExpired removes all expired entries and returns the count evicted.
func (c *Cache[K, V]) EvictExpired() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.evictExpiredLocked()
}

func (c *Cache[K, V]) evictExpiredLocked() int {
	now := c.clock.Now()
	evicted := 0
	for k, e := range c.entries {
		if now.After(e.expiresAt) {
			delete(c.entries, k)
			evicted++
		}
	}
	return evicted
}

// StartEvictionTimer starts a background goroutine that periodically evicts
// expired entries. The returned stop function cleans up the goroutine.
func (c *Cache[K, V]) StartEvictionTimer(interval time.Duration) func() {
	ticker := c.clock.NewTicker(interval)
	done := make(chan struct{})

	go func() {
		for {
			select {
			case <-ticker.Chan():
				if evicted := c.EvictExpired(); evicted > 0 {
					slog.Debug("Evicted expired cache entries", "count", evicted, "remaining", c.Len())
				}
			case <-done:
				ticker.Stop()
				return
			}
		}
	}()

	return func() { close(done) }
}
