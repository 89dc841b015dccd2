// Package handlers provides HTTP handlers for trending lists.
package handlers

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/aristath/tickerpulse/internal/domain"
	"github.com/aristath/tickerpulse/internal/modules/trending"
	"github.com/aristath/tickerpulse/internal/ranking"
	"github.com/aristath/tickerpulse/internal/utils"
	"github.com/rs/zerolog"
)

// Hot-list entry keys clients already depend on
const (
	keyMomentumValue = "AHI"
	keyRedditValue   = "reddit mentions"
	keyTwitterValue  = "tweets per second"
)

// TrendingService is what the handlers need from trending.Service
type TrendingService interface {
	GetTrending(ctx context.Context, q trending.Query) ([]ranking.RankedEntry, error)
	HotLists(ctx context.Context) (ranking.HotLists, error)
}

// Handler handles trending HTTP requests
type Handler struct {
	service TrendingService
	log     zerolog.Logger
}

// NewHandler creates a new trending handler
func NewHandler(service TrendingService, log zerolog.Logger) *Handler {
	return &Handler{
		service: service,
		log:     log.With().Str("handler", "trending").Logger(),
	}
}

// HandleGetTrending handles GET /get_trending.
// Query params: limit (default 6), metric (default AHI), threshold_metric and threshold.
// The threshold filter only applies when both threshold params are given.
func (h *Handler) HandleGetTrending(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	q, msg := parseTrendingQuery(r)
	if msg != "" {
		utils.WriteJSON(w, h.log, http.StatusOK, utils.Failure(start, msg))
		return
	}

	entries, err := h.service.GetTrending(r.Context(), q)
	if err != nil {
		utils.WriteInternalError(w, h.log, start, err)
		return
	}

	tickers := make([]map[string]interface{}, len(entries))
	for i, e := range entries {
		tickers[i] = map[string]interface{}{
			"ticker": e.Ticker,
			"rank":   e.Rank,
			"info":   e.Record.Info(),
		}
	}

	utils.WriteJSON(w, h.log, http.StatusOK, utils.Success(start, utils.Response{
		"quantity": len(tickers),
		"tickers":  tickers,
	}))
}

// parseTrendingQuery returns a client-facing message when the request is invalid
func parseTrendingQuery(r *http.Request) (trending.Query, string) {
	q := trending.Query{Metric: domain.MetricAHI}

	limit, err := utils.QueryInt(r, "limit", trending.DefaultLimit)
	if err != nil {
		return q, err.Error()
	}
	q.Limit = limit

	if raw, ok := utils.QueryString(r, "metric"); ok {
		metric, ok := domain.TrendingMetrics.Parse(raw)
		if !ok {
			return q, fmt.Sprintf("unrecognized metric, please choose one of %s", domain.TrendingMetrics)
		}
		q.Metric = metric
	}

	threshold, err := utils.QueryFloat(r, "threshold")
	if err != nil {
		return q, err.Error()
	}

	if raw, ok := utils.QueryString(r, "threshold_metric"); ok {
		metric, ok := domain.TrendingMetrics.Parse(raw)
		if !ok {
			return q, fmt.Sprintf("unrecognized threshold metric, please choose one of %s", domain.TrendingMetrics)
		}
		if threshold != nil {
			q.Threshold = &ranking.Threshold{Metric: metric, Value: *threshold}
		}
	}

	return q, ""
}

// HandleGetRedditPost handles GET /get_reddit_post
func (h *Handler) HandleGetRedditPost(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	lists, err := h.service.HotLists(r.Context())
	if err != nil {
		utils.WriteInternalError(w, h.log, start, err)
		return
	}

	utils.WriteJSON(w, h.log, http.StatusOK, utils.Success(start, utils.Response{
		"top_100":        hotList(lists.Momentum, domain.MetricAHI, keyMomentumValue),
		"top_50_reddit":  hotList(lists.Reddit, domain.MetricRedditCommentMentions, keyRedditValue),
		"top_50_twitter": hotList(lists.Twitter, domain.MetricTweetMentions, keyTwitterValue),
	}))
}

// hotList renders entries as {ticker, rank, <key>: stored metric value}
func hotList(entries []ranking.RankedEntry, metric domain.Metric, key string) []map[string]interface{} {
	out := make([]map[string]interface{}, len(entries))
	for i, e := range entries {
		out[i] = map[string]interface{}{
			"ticker": e.Ticker,
			"rank":   e.Rank,
			key:      e.Record.Fields[string(metric)],
		}
	}
	return out
}
