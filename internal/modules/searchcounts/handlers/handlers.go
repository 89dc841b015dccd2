// Package handlers provides HTTP handlers for the ticker search tally.
package handlers

import (
	"net/http"
	"time"

	"github.com/aristath/tickerpulse/internal/utils"
	"github.com/rs/zerolog"
)

// Drainer is the part of the search counter the handler needs
type Drainer interface {
	Drain() map[string]int64
}

// Handler handles search count HTTP requests
type Handler struct {
	counter Drainer
	log     zerolog.Logger
}

// NewHandler creates a new search count handler
func NewHandler(counter Drainer, log zerolog.Logger) *Handler {
	return &Handler{
		counter: counter,
		log:     log.With().Str("handler", "searchcounts").Logger(),
	}
}

// HandleGetAndRefresh handles GET /get_and_refresh_ticker_search_counts.
// It returns every tally since the previous call and resets them.
func (h *Handler) HandleGetAndRefresh(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	counts := h.counter.Drain()
	h.log.Debug().Int("tickers", len(counts)).Msg("Drained ticker search counts")

	utils.WriteJSON(w, h.log, http.StatusOK, utils.Success(start, utils.Response{
		"ticker_search_counts": counts,
	}))
}
