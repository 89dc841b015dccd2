package server

import (
	"context"
	"net/http"
	"time"

	"github.com/aristath/tickerpulse/internal/utils"
	"github.com/rs/zerolog"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
)

// CacheSizer reports how many entries the ticker cache holds
type CacheSizer interface {
	Size() int
}

// PendingCounter reports how many tickers are waiting in the search tally
type PendingCounter interface {
	Pending() int
}

// HealthChecker verifies that the document database answers
type HealthChecker interface {
	QuickCheck(ctx context.Context) error
}

// SystemHandlers handles system-wide monitoring endpoints
type SystemHandlers struct {
	log         zerolog.Logger
	startupTime time.Time
	db          HealthChecker
	cache       CacheSizer
	counter     PendingCounter
	// statsFunc is swapped out in tests
	statsFunc func() (float64, float64)
}

// NewSystemHandlers creates a new system handlers instance
func NewSystemHandlers(log zerolog.Logger, db HealthChecker, cache CacheSizer, counter PendingCounter) *SystemHandlers {
	h := &SystemHandlers{
		log:         log.With().Str("handler", "system").Logger(),
		startupTime: time.Now(),
		db:          db,
		cache:       cache,
		counter:     counter,
	}
	h.statsFunc = h.getSystemStats
	return h
}

// HealthResponse is the /health payload
type HealthResponse struct {
	Status              string  `json:"status"`
	Service             string  `json:"service"`
	Database            string  `json:"database"`
	UptimeSeconds       float64 `json:"uptime_seconds"`
	CacheEntries        int     `json:"cache_entries"`
	PendingSearchCounts int     `json:"pending_search_counts"`
	CPUPercent          float64 `json:"cpu_percent"`
	RAMPercent          float64 `json:"ram_percent"`
}

// HandleHealth handles GET /health.
// A failing database check reports "degraded" with 503.
func (h *SystemHandlers) HandleHealth(w http.ResponseWriter, r *http.Request) {
	status, database, code := "healthy", "ok", http.StatusOK

	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()
	if err := h.db.QuickCheck(ctx); err != nil {
		h.log.Error().Err(err).Msg("Database health check failed")
		status, database, code = "degraded", "unavailable", http.StatusServiceUnavailable
	}

	cpuPercent, ramPercent := h.statsFunc()

	utils.WriteJSON(w, h.log, code, HealthResponse{
		Status:              status,
		Service:             "tickerpulse",
		Database:            database,
		UptimeSeconds:       time.Since(h.startupTime).Seconds(),
		CacheEntries:        h.cache.Size(),
		PendingSearchCounts: h.counter.Pending(),
		CPUPercent:          cpuPercent,
		RAMPercent:          ramPercent,
	})
}

// getSystemStats calculates CPU and RAM usage percentages.
// CPU is sampled over 100ms so health checks stay fast.
func (h *SystemHandlers) getSystemStats() (float64, float64) {
	cpuPercent, err := cpu.Percent(100*time.Millisecond, false)
	if err != nil {
		h.log.Warn().Err(err).Msg("Failed to get CPU percentage")
		cpuPercent = []float64{0}
	}

	memStat, err := mem.VirtualMemory()
	if err != nil {
		h.log.Warn().Err(err).Msg("Failed to get memory statistics")
		return 0, 0
	}

	cpuAvg := 0.0
	if len(cpuPercent) > 0 {
		cpuAvg = cpuPercent[0]
	}

	return cpuAvg, memStat.UsedPercent
}
