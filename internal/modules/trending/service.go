// Package trending ranks recent snapshots of the document store.
package trending

import (
	"context"
	"fmt"
	"time"

	"github.com/aristath/tickerpulse/internal/domain"
	"github.com/aristath/tickerpulse/internal/ranking"
	"github.com/rs/zerolog"
)

// DefaultLimit is how many tickers /get_trending returns when no limit is given
const DefaultLimit = 6

// Query describes one trending request
type Query struct {
	Threshold *ranking.Threshold
	Metric    domain.Metric
	Limit     int
}

// Service builds trending lists from store snapshots
type Service struct {
	gateway        domain.DocumentGateway
	recentWindow   time.Duration
	trendingWindow time.Duration
	log            zerolog.Logger
}

// NewService creates a trending service.
// recentWindow bounds the hot-list snapshot, trendingWindow the per-metric trending snapshot.
func NewService(gateway domain.DocumentGateway, recentWindow, trendingWindow time.Duration, log zerolog.Logger) *Service {
	return &Service{
		gateway:        gateway,
		recentWindow:   recentWindow,
		trendingWindow: trendingWindow,
		log:            log.With().Str("service", "trending").Logger(),
	}
}

// GetTrending ranks the trending documents written for q.Metric within the trending window
func (s *Service) GetTrending(ctx context.Context, q Query) ([]ranking.RankedEntry, error) {
	records, err := s.gateway.QueryTrending(ctx, q.Metric, s.trendingWindow)
	if err != nil {
		return nil, fmt.Errorf("failed to load trending snapshot for %s: %w", q.Metric, err)
	}

	entries := ranking.Rank(records, ranking.Options{
		Metric:    q.Metric,
		Limit:     q.Limit,
		Threshold: q.Threshold,
	})

	s.log.Debug().
		Str("metric", string(q.Metric)).
		Int("snapshot", len(records)).
		Int("returned", len(entries)).
		Msg("Ranked trending tickers")

	return entries, nil
}

// HotLists ranks the recently updated tickers by momentum, Reddit and Twitter activity
func (s *Service) HotLists(ctx context.Context) (ranking.HotLists, error) {
	records, err := s.gateway.QueryRecent(ctx, s.recentWindow)
	if err != nil {
		return ranking.HotLists{}, fmt.Errorf("failed to load recent snapshot: %w", err)
	}

	lists := ranking.BuildHotLists(records)

	s.log.Debug().
		Int("snapshot", len(records)).
		Int("momentum", len(lists.Momentum)).
		Int("reddit", len(lists.Reddit)).
		Int("twitter", len(lists.Twitter)).
		Msg("Built hot lists")

	return lists, nil
}
