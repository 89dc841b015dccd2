// Package handlers provides HTTP handlers for ticker information and history.
package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/aristath/tickerpulse/internal/domain"
	"github.com/aristath/tickerpulse/internal/modules/tickers"
	"github.com/aristath/tickerpulse/internal/utils"
	"github.com/rs/zerolog"
)

// Client-facing messages
const (
	msgNoTicker        = "no ticker given - please provide a ticker in the request params"
	msgNoHistoryTicker = "please provide a ticker in the 'ticker' params"
	msgHistoryNotFound = "history not found - either the ticker does not exist or the history has not been calculated yet"
)

// TickerService is what the handlers need from tickers.Service
type TickerService interface {
	GetTickerInformation(ctx context.Context, ticker string) (tickers.Lookup, error)
	GetHistory(ctx context.Context, ticker string, metric domain.Metric) (interface{}, error)
}

// Handler handles ticker HTTP requests
type Handler struct {
	service TickerService
	log     zerolog.Logger
}

// NewHandler creates a new ticker handler
func NewHandler(service TickerService, log zerolog.Logger) *Handler {
	return &Handler{
		service: service,
		log:     log.With().Str("handler", "tickers").Logger(),
	}
}

// HandleGetTickerInformation handles GET /get_ticker_information?ticker=<symbol>
func (h *Handler) HandleGetTickerInformation(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	ticker, ok := utils.QueryString(r, "ticker")
	if !ok {
		utils.WriteJSON(w, h.log, http.StatusOK, utils.Failure(start, msgNoTicker))
		return
	}

	lookup, err := h.service.GetTickerInformation(r.Context(), ticker)
	if err != nil {
		utils.WriteInternalError(w, h.log.With().Str("ticker", ticker).Logger(), start, err)
		return
	}

	utils.WriteJSON(w, h.log, http.StatusOK, utils.Success(start, utils.Response{
		"type": string(lookup.Source),
		"info": lookup.Record.Info(),
	}))
}

// HandleGetHistory handles GET /get_history?ticker=<symbol>&metric=<metric>
func (h *Handler) HandleGetHistory(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	ticker, ok := utils.QueryString(r, "ticker")
	if !ok {
		utils.WriteJSON(w, h.log, http.StatusOK, utils.Failure(start, msgNoHistoryTicker))
		return
	}

	raw, _ := utils.QueryString(r, "metric")
	metric, ok := domain.AllMetrics.Parse(raw)
	if !ok {
		msg := fmt.Sprintf("please provided a permitted metric (one of %s)", domain.AllMetrics)
		utils.WriteJSON(w, h.log, http.StatusOK, utils.Failure(start, msg))
		return
	}

	history, err := h.service.GetHistory(r.Context(), ticker, metric)
	if errors.Is(err, domain.ErrNotFound) {
		utils.WriteJSON(w, h.log, http.StatusOK, utils.Failure(start, msgHistoryNotFound))
		return
	}
	if err != nil {
		utils.WriteInternalError(w, h.log.With().Str("ticker", ticker).Logger(), start, err)
		return
	}

	utils.WriteJSON(w, h.log, http.StatusOK, utils.Success(start, utils.Response{
		"result": history,
	}))
}
