package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// StoreMetrics tracks document store latency and failures.
type StoreMetrics struct {
	QueryDuration *prometheus.HistogramVec
	QueryErrors   *prometheus.CounterVec
}

// NewStoreMetrics creates and registers document store metrics on the given registry.
func NewStoreMetrics(reg prometheus.Registerer) *StoreMetrics {
	m := &StoreMetrics{
		QueryDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "store",
			Name:      "query_duration_seconds",
			Help:      "Document store query duration in seconds.",
			Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"operation"}),
		QueryErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "store",
			Name:      "query_errors_total",
			Help:      "Document store queries that failed, not counting not-found.",
		}, []string{"operation"}),
	}

	reg.MustRegister(m.QueryDuration, m.QueryErrors)
	return m
}

// Observe records one query. Pass a nil error for not-found results.
func (m *StoreMetrics) Observe(operation string, start time.Time, err error) {
	m.QueryDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
	if err != nil {
		m.QueryErrors.WithLabelValues(operation).Inc()
	}
}
