package metrics

import "github.com/prometheus/client_golang/prometheus"

// SearchCountMetrics tracks the ticker search tally.
type SearchCountMetrics struct {
	Searches prometheus.Counter
	Drains   prometheus.Counter
}

// NewSearchCountMetrics creates and registers search tally metrics on the given registry.
func NewSearchCountMetrics(reg prometheus.Registerer) *SearchCountMetrics {
	m := &SearchCountMetrics{
		Searches: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "search_counts",
			Name:      "searches_total",
			Help:      "Ticker information requests counted since process start.",
		}),
		Drains: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "search_counts",
			Name:      "drains_total",
			Help:      "Number of times the tally was read and reset.",
		}),
	}

	reg.MustRegister(m.Searches, m.Drains)
	return m
}
