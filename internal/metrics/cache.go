package metrics

import "github.com/prometheus/client_golang/prometheus"

// CacheMetrics holds Prometheus metrics for the local ticker cache.
type CacheMetrics struct {
	Lookups   *prometheus.CounterVec
	Evictions prometheus.Counter
	Entries   prometheus.Gauge
}

// NewCacheMetrics creates and registers cache metrics on the given registry.
func NewCacheMetrics(reg prometheus.Registerer) *CacheMetrics {
	m := &CacheMetrics{
		Lookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "ticker_cache",
			Name:      "lookups_total",
			Help:      "Ticker information lookups, by where the answer came from.",
		}, []string{"source"}),
		Evictions: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "ticker_cache",
			Name:      "evictions_total",
			Help:      "Expired entries removed by the sweep job.",
		}),
		Entries: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "ticker_cache",
			Name:      "entries",
			Help:      "Entries currently held, including expired ones.",
		}),
	}

	reg.MustRegister(m.Lookups, m.Evictions, m.Entries)
	return m
}
