// Package cache provides the process-local ticker document cache.
// Entries are served while younger than the TTL; expired entries are ignored
// on lookup and overwritten by the next store, never merged.
package cache

import (
	"sync"
	"time"

	"github.com/aristath/tickerpulse/internal/domain"
	"github.com/jonboulle/clockwork"
)

// TickerCache is an unbounded, TTL-checked map of canonical ticker -> document.
// It is safe for concurrent use. Concurrent stores to the same key are last-writer-wins.
type TickerCache struct {
	mu      sync.RWMutex
	entries map[string]cacheEntry
	ttl     time.Duration
	clock   clockwork.Clock
}

type cacheEntry struct {
	record   domain.TickerRecord
	cachedAt time.Time
}

// NewTickerCache creates a cache with the given TTL.
// A nil clock uses the real wall clock.
func NewTickerCache(ttl time.Duration, clock clockwork.Clock) *TickerCache {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &TickerCache{
		entries: make(map[string]cacheEntry),
		ttl:     ttl,
		clock:   clock,
	}
}

// Lookup returns a copy of the cached document if present and not older than the TTL.
// Keys are normalized, so "gme" and "GME" address the same entry.
func (c *TickerCache) Lookup(ticker string) (domain.TickerRecord, bool) {
	key := domain.NormalizeTicker(ticker)

	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok {
		return domain.TickerRecord{}, false
	}

	// Expired entries stay in the map until overwritten or swept
	if c.clock.Since(entry.cachedAt) > c.ttl {
		return domain.TickerRecord{}, false
	}

	return entry.record.Clone(), true
}

// Store overwrites the entry for ticker with a copy of record, stamped now.
func (c *TickerCache) Store(ticker string, record domain.TickerRecord) {
	key := domain.NormalizeTicker(ticker)
	entry := cacheEntry{
		record:   record.Clone(),
		cachedAt: c.clock.Now(),
	}

	c.mu.Lock()
	c.entries[key] = entry
	c.mu.Unlock()
}

// Size returns the number of entries held, including expired ones.
func (c *TickerCache) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// TTL returns the configured time-to-live
func (c *TickerCache) TTL() time.Duration {
	return c.ttl
}

// EvictExpired removes all expired entries and returns how many were removed.
// Lookup results are unaffected: an expired entry is a miss either way.
func (c *TickerCache) EvictExpired() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.clock.Now()
	evicted := 0
	for key, entry := range c.entries {
		if now.Sub(entry.cachedAt) > c.ttl {
			delete(c.entries, key)
			evicted++
		}
	}

	return evicted
}
