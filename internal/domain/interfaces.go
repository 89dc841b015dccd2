package domain

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned by a DocumentGateway when the requested document does not exist
var ErrNotFound = errors.New("document not found")

// DocumentGateway defines read access to the backing document store.
// This interface lets the ticker and trending services run against the SQLite
// store in production and against mocks in tests.
type DocumentGateway interface {
	// GetTicker returns the current document for a canonical ticker, or ErrNotFound
	GetTicker(ctx context.Context, ticker string) (TickerRecord, error)

	// QueryRecent returns tickers whose AHI was refreshed within maxAge
	QueryRecent(ctx context.Context, maxAge time.Duration) ([]TickerRecord, error)

	// QueryTrending returns trending documents sorted by metric that were written within window
	QueryTrending(ctx context.Context, metric Metric, window time.Duration) ([]TickerRecord, error)

	// GetHistory returns the stored history series for ticker/metric, or ErrNotFound
	GetHistory(ctx context.Context, ticker string, metric Metric) (interface{}, error)
}
