package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_RegistersAllCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	require.NotNil(t, m.Cache)
	require.NotNil(t, m.Store)
	require.NotNil(t, m.HTTP)
	require.NotNil(t, m.SearchCounts)

	// A second registration of the same collectors must fail
	assert.Panics(t, func() { New(reg) })
}

func TestCacheMetrics(t *testing.T) {
	m := NewCacheMetrics(prometheus.NewRegistry())

	m.Lookups.WithLabelValues("local_cache").Inc()
	m.Lookups.WithLabelValues("local_cache").Inc()
	m.Lookups.WithLabelValues("shallow").Inc()
	m.Evictions.Add(3)
	m.Entries.Set(7)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Lookups.WithLabelValues("local_cache")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Lookups.WithLabelValues("shallow")))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.Evictions))
	assert.Equal(t, 7.0, testutil.ToFloat64(m.Entries))
}

func TestStoreMetrics_Observe(t *testing.T) {
	m := NewStoreMetrics(prometheus.NewRegistry())

	m.Observe("get_ticker", time.Now(), nil)
	m.Observe("get_ticker", time.Now(), errors.New("boom"))

	assert.Equal(t, 1.0, testutil.ToFloat64(m.QueryErrors.WithLabelValues("get_ticker")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.QueryDuration))
}

func TestHTTPMetrics_Middleware(t *testing.T) {
	m := NewHTTPMetrics(prometheus.NewRegistry())

	r := chi.NewRouter()
	r.Use(m.Middleware)
	r.Get("/get_trending", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	r.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {})

	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/get_trending?limit=3", nil))
		require.Equal(t, http.StatusOK, w.Code)
	}
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, 2.0, testutil.ToFloat64(m.RequestsTotal.WithLabelValues("GET", "/get_trending", "200")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.InFlightGauge))
	assert.Equal(t, 1, testutil.CollectAndCount(m.RequestsTotal), "/metrics must not be recorded")
}
