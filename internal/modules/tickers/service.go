// Package tickers serves per-ticker documents through the local cache.
package tickers

import (
	"context"
	"errors"
	"fmt"

	"github.com/aristath/tickerpulse/internal/cache"
	"github.com/aristath/tickerpulse/internal/domain"
	"github.com/aristath/tickerpulse/internal/metrics"
	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"
)

// Source says where a ticker lookup was answered from
type Source string

const (
	// SourceLocalCache is a hit in the process-local cache
	SourceLocalCache Source = "local_cache"
	// SourceStore is a document store hit (reported to clients as "cached")
	SourceStore Source = "cached"
	// SourceShallow is a fallback record for a ticker the store does not have
	SourceShallow Source = "shallow"
)

// ErrEmptyTicker is returned when a lookup is attempted without a ticker
var ErrEmptyTicker = errors.New("empty ticker")

// SearchCounter records ticker lookups
type SearchCounter interface {
	Increment(ticker string)
}

// Lookup is the result of a ticker information request
type Lookup struct {
	Source Source
	Record domain.TickerRecord
}

// Service answers ticker information and history requests
type Service struct {
	gateway  domain.DocumentGateway
	cache    *cache.TickerCache
	counter  SearchCounter
	analyzer Analyzer
	metrics  *metrics.CacheMetrics
	flights  singleflight.Group
	log      zerolog.Logger
}

// NewService creates a ticker service. m may be nil.
func NewService(
	gateway domain.DocumentGateway,
	tickerCache *cache.TickerCache,
	counter SearchCounter,
	analyzer Analyzer,
	m *metrics.CacheMetrics,
	log zerolog.Logger,
) *Service {
	return &Service{
		gateway:  gateway,
		cache:    tickerCache,
		counter:  counter,
		analyzer: analyzer,
		metrics:  m,
		log:      log.With().Str("service", "tickers").Logger(),
	}
}

// GetTickerInformation returns the document for ticker.
//
// Every call is counted. The local cache is consulted first; on a miss the
// document store is read and, when it has nothing, the shallow analyzer
// fills in. Both store hits and fallback records are cached. Concurrent misses
// for the same ticker share a single store read, which keeps running when the
// caller that started it goes away.
func (s *Service) GetTickerInformation(ctx context.Context, ticker string) (Lookup, error) {
	ticker = domain.NormalizeTicker(ticker)
	if ticker == "" {
		return Lookup{}, ErrEmptyTicker
	}

	s.counter.Increment(ticker)

	if rec, ok := s.cache.Lookup(ticker); ok {
		s.observe(SourceLocalCache)
		return Lookup{Source: SourceLocalCache, Record: rec}, nil
	}

	// The shared load outlives any single caller; each caller only waits on its own context
	loadCtx := context.WithoutCancel(ctx)
	ch := s.flights.DoChan(ticker, func() (interface{}, error) {
		return s.load(loadCtx, ticker)
	})

	var res singleflight.Result
	select {
	case <-ctx.Done():
		return Lookup{}, ctx.Err()
	case res = <-ch:
	}
	if res.Err != nil {
		return Lookup{}, res.Err
	}

	lookup := res.Val.(Lookup)
	if res.Shared {
		// Every caller gets its own copy of the shared record
		lookup.Record = lookup.Record.Clone()
	}

	s.observe(lookup.Source)
	return lookup, nil
}

func (s *Service) load(ctx context.Context, ticker string) (Lookup, error) {
	rec, err := s.gateway.GetTicker(ctx, ticker)
	switch {
	case err == nil:
		s.cache.Store(ticker, rec)
		return Lookup{Source: SourceStore, Record: rec}, nil

	case errors.Is(err, domain.ErrNotFound):
		rec = s.analyzer.Analyze(ticker)
		s.cache.Store(ticker, rec)
		s.log.Debug().Str("ticker", ticker).Msg("Ticker not in store, using shallow analysis")
		return Lookup{Source: SourceShallow, Record: rec}, nil

	default:
		return Lookup{}, fmt.Errorf("failed to load ticker %s: %w", ticker, err)
	}
}

func (s *Service) observe(source Source) {
	if s.metrics == nil {
		return
	}
	s.metrics.Lookups.WithLabelValues(string(source)).Inc()
	s.metrics.Entries.Set(float64(s.cache.Size()))
}

// GetHistory returns the stored history series for ticker and metric.
// It returns domain.ErrNotFound when no history has been computed.
func (s *Service) GetHistory(ctx context.Context, ticker string, metric domain.Metric) (interface{}, error) {
	ticker = domain.NormalizeTicker(ticker)
	if ticker == "" {
		return nil, ErrEmptyTicker
	}

	history, err := s.gateway.GetHistory(ctx, ticker, metric)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to load %s history for %s: %w", metric, ticker, err)
	}
	return history, nil
}
