// Package metrics provides Prometheus instrumentation for the API.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "tickerpulse"

// Metrics groups every collector the service registers
type Metrics struct {
	Cache        *CacheMetrics
	Store        *StoreMetrics
	HTTP         *HTTPMetrics
	SearchCounts *SearchCountMetrics
}

// New creates and registers all collectors on reg
func New(reg prometheus.Registerer) *Metrics {
	return &Metrics{
		Cache:        NewCacheMetrics(reg),
		Store:        NewStoreMetrics(reg),
		HTTP:         NewHTTPMetrics(reg),
		SearchCounts: NewSearchCountMetrics(reg),
	}
}

// NewRegistry creates a Prometheus registry with Go runtime and process collectors.
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	return reg
}

// Handler returns an http.Handler that serves Prometheus metrics.
func Handler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}
