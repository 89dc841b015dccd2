package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedSize int

func (f fixedSize) Size() int    { return int(f) }
func (f fixedSize) Pending() int { return int(f) }

type stubChecker struct{ err error }

func (s stubChecker) QuickCheck(ctx context.Context) error { return s.err }

func TestSystemHandlers_HandleHealth(t *testing.T) {
	h := NewSystemHandlers(zerolog.Nop(), stubChecker{}, fixedSize(3), fixedSize(2))
	h.statsFunc = func() (float64, float64) { return 12.5, 40 }

	w := httptest.NewRecorder()
	h.HandleHealth(w, httptest.NewRequest("GET", "/health", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var resp HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Equal(t, "healthy", resp.Status)
	assert.Equal(t, "tickerpulse", resp.Service)
	assert.Equal(t, "ok", resp.Database)
	assert.Equal(t, 3, resp.CacheEntries)
	assert.Equal(t, 2, resp.PendingSearchCounts)
	assert.Equal(t, 12.5, resp.CPUPercent)
	assert.Equal(t, 40.0, resp.RAMPercent)
	assert.GreaterOrEqual(t, resp.UptimeSeconds, 0.0)
}

func TestSystemHandlers_HandleHealthDatabaseDown(t *testing.T) {
	h := NewSystemHandlers(zerolog.Nop(), stubChecker{err: errors.New("sql: database is closed")}, fixedSize(1), fixedSize(0))
	h.statsFunc = func() (float64, float64) { return 0, 0 }

	w := httptest.NewRecorder()
	h.HandleHealth(w, httptest.NewRequest("GET", "/health", nil))
	require.Equal(t, http.StatusServiceUnavailable, w.Code)

	var resp HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Equal(t, "degraded", resp.Status)
	assert.Equal(t, "unavailable", resp.Database)
	assert.Equal(t, 1, resp.CacheEntries)
}

func TestSystemHandlers_GetSystemStats(t *testing.T) {
	h := NewSystemHandlers(zerolog.Nop(), stubChecker{}, fixedSize(0), fixedSize(0))

	cpuPercent, ramPercent := h.getSystemStats()
	assert.GreaterOrEqual(t, cpuPercent, 0.0)
	assert.LessOrEqual(t, cpuPercent, 100.0)
	assert.GreaterOrEqual(t, ramPercent, 0.0)
	assert.LessOrEqual(t, ramPercent, 100.0)
}
