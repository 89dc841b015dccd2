package store

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/aristath/tickerpulse/internal/domain"
)

// Fixture is a batch of documents to load into the store.
// Trending entries may omit timestamp; they are then stamped with the load time.
type Fixture struct {
	Tickers  []map[string]interface{}            `json:"tickers"`
	Trending map[string][]map[string]interface{} `json:"trending"`
	History  []HistoryFixture                    `json:"history"`
}

// HistoryFixture is one history series
type HistoryFixture struct {
	Ticker  string      `json:"ticker"`
	Metric  string      `json:"metric"`
	History interface{} `json:"history"`
}

// LoadSummary counts what a fixture load wrote
type LoadSummary struct {
	Tickers  int
	Trending int
	History  int
}

// DecodeFixture reads a JSON fixture
func DecodeFixture(r io.Reader) (Fixture, error) {
	var f Fixture
	if err := json.NewDecoder(r).Decode(&f); err != nil {
		return Fixture{}, fmt.Errorf("failed to decode fixture: %w", err)
	}
	return f, nil
}

// Load writes every document in f. It stops at the first failure.
func (s *DocumentStore) Load(ctx context.Context, f Fixture) (LoadSummary, error) {
	var summary LoadSummary
	now := s.clock.Now()

	for i, fields := range f.Tickers {
		ticker, _ := fields[domain.FieldTicker].(string)
		if err := s.PutTicker(ctx, domain.NewTickerRecord(ticker, fields, now)); err != nil {
			return summary, fmt.Errorf("tickers[%d]: %w", i, err)
		}
		summary.Tickers++
	}

	for name, docs := range f.Trending {
		metric, ok := domain.TrendingMetrics.Parse(name)
		if !ok {
			return summary, fmt.Errorf("trending: unknown metric %q", name)
		}
		for i, fields := range docs {
			ticker, _ := fields[domain.FieldTicker].(string)
			at := now
			if ts, ok := fields[domain.FieldTimestamp].(float64); ok {
				at = fromUnixSeconds(ts)
			}
			if _, err := s.PutTrending(ctx, metric, domain.NewTickerRecord(ticker, fields, now), at); err != nil {
				return summary, fmt.Errorf("trending[%s][%d]: %w", name, i, err)
			}
			summary.Trending++
		}
	}

	for i, h := range f.History {
		metric, ok := domain.AllMetrics.Parse(h.Metric)
		if !ok {
			return summary, fmt.Errorf("history[%d]: unknown metric %q", i, h.Metric)
		}
		if err := s.PutHistory(ctx, h.Ticker, metric, h.History); err != nil {
			return summary, fmt.Errorf("history[%d]: %w", i, err)
		}
		summary.History++
	}

	s.log.Info().
		Int("tickers", summary.Tickers).
		Int("trending", summary.Trending).
		Int("history", summary.History).
		Msg("Fixture loaded")

	return summary, nil
}
