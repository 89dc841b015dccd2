package cache

import (
	"github.com/aristath/tickerpulse/internal/metrics"
	"github.com/rs/zerolog"
)

// SweepJob removes expired entries from the ticker cache.
// It is only scheduled when CACHE_SWEEP_SCHEDULE is set.
type SweepJob struct {
	cache   *TickerCache
	metrics *metrics.CacheMetrics
	log     zerolog.Logger
}

// NewSweepJob creates a new cache sweep job. m may be nil.
func NewSweepJob(cache *TickerCache, m *metrics.CacheMetrics, log zerolog.Logger) *SweepJob {
	return &SweepJob{
		cache:   cache,
		metrics: m,
		log:     log.With().Str("job", "ticker_cache_sweep").Logger(),
	}
}

// Run executes the sweep
func (j *SweepJob) Run() error {
	evicted := j.cache.EvictExpired()
	remaining := j.cache.Size()

	if j.metrics != nil {
		j.metrics.Evictions.Add(float64(evicted))
		j.metrics.Entries.Set(float64(remaining))
	}

	if evicted > 0 {
		j.log.Info().
			Int("evicted", evicted).
			Int("remaining", remaining).
			Msg("Swept expired ticker cache entries")
	}

	return nil
}

// Name returns the job name for scheduling and logging.
func (j *SweepJob) Name() string {
	return "ticker_cache_sweep"
}
