// Package searchcounts tallies ticker information requests between drains.
package searchcounts

import (
	"sync"

	"github.com/aristath/tickerpulse/internal/domain"
	"github.com/aristath/tickerpulse/internal/metrics"
)

// Counter is the process-wide search tally.
// A single mutex guards the map so Drain observes every Increment exactly once.
type Counter struct {
	mu      sync.Mutex
	counts  map[string]int64
	metrics *metrics.SearchCountMetrics
}

// NewCounter creates an empty counter. m may be nil.
func NewCounter(m *metrics.SearchCountMetrics) *Counter {
	return &Counter{
		counts:  make(map[string]int64),
		metrics: m,
	}
}

// Increment records one search for ticker (normalized to its canonical form)
func (c *Counter) Increment(ticker string) {
	key := domain.NormalizeTicker(ticker)

	c.mu.Lock()
	c.counts[key]++
	c.mu.Unlock()

	if c.metrics != nil {
		c.metrics.Searches.Inc()
	}
}

// Drain returns the tallies accumulated since the previous drain and resets them.
// The returned map is owned by the caller.
func (c *Counter) Drain() map[string]int64 {
	c.mu.Lock()
	drained := c.counts
	c.counts = make(map[string]int64, len(drained))
	c.mu.Unlock()

	if c.metrics != nil {
		c.metrics.Drains.Inc()
	}

	return drained
}

// Pending returns how many distinct tickers have been searched since the last drain
func (c *Counter) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.counts)
}
