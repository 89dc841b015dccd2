// Package store implements the document store the API reads ticker metrics from.
// Documents are msgpack blobs in SQLite; the few fields that queries filter on
// are copied into indexed columns when a document is written.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/aristath/tickerpulse/internal/database"
	"github.com/aristath/tickerpulse/internal/domain"
	"github.com/aristath/tickerpulse/internal/metrics"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
)

// DocumentStore provides access to ticker, trending and history documents.
// It implements domain.DocumentGateway.
type DocumentStore struct {
	db      *sql.DB
	clock   clockwork.Clock
	metrics *metrics.StoreMetrics
	log     zerolog.Logger
}

var _ domain.DocumentGateway = (*DocumentStore)(nil)

// NewDocumentStore creates a store over an already migrated database.
// clock and m may be nil.
func NewDocumentStore(db *sql.DB, clock clockwork.Clock, m *metrics.StoreMetrics, log zerolog.Logger) *DocumentStore {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &DocumentStore{
		db:      db,
		clock:   clock,
		metrics: m,
		log:     log.With().Str("component", "document_store").Logger(),
	}
}

func (s *DocumentStore) observe(op string, start time.Time, err error) {
	if s.metrics == nil {
		return
	}
	if errors.Is(err, domain.ErrNotFound) {
		err = nil
	}
	s.metrics.Observe(op, start, err)
}

// cutoff returns now - window as fractional unix seconds, the unit documents store timestamps in
func (s *DocumentStore) cutoff(window time.Duration) float64 {
	return unixSeconds(s.clock.Now().Add(-window))
}

func unixSeconds(t time.Time) float64 {
	return float64(t.UnixNano()) / float64(time.Second)
}

func fromUnixSeconds(ts float64) time.Time {
	return time.Unix(0, int64(ts*float64(time.Second)))
}

// GetTicker returns the document for a canonical ticker
func (s *DocumentStore) GetTicker(ctx context.Context, ticker string) (rec domain.TickerRecord, err error) {
	start := time.Now()
	defer func() { s.observe("get_ticker", start, err) }()

	var data []byte
	var updatedAt int64
	err = s.db.QueryRowContext(ctx,
		"SELECT data, updated_at FROM tickers WHERE ticker = ?", ticker,
	).Scan(&data, &updatedAt)
	if err == sql.ErrNoRows {
		return domain.TickerRecord{}, domain.ErrNotFound
	}
	if err != nil {
		return domain.TickerRecord{}, fmt.Errorf("failed to get ticker %s: %w", ticker, err)
	}

	fields, err := decodeFields(data)
	if err != nil {
		return domain.TickerRecord{}, fmt.Errorf("ticker %s: %w", ticker, err)
	}

	return domain.NewTickerRecord(ticker, fields, time.Unix(updatedAt, 0)), nil
}

// QueryRecent returns tickers whose AHI_timestamp is newer than now - maxAge, ordered by ticker
func (s *DocumentStore) QueryRecent(ctx context.Context, maxAge time.Duration) (recs []domain.TickerRecord, err error) {
	start := time.Now()
	defer func() { s.observe("query_recent", start, err) }()

	rows, err := s.db.QueryContext(ctx, `
		SELECT ticker, data, updated_at
		FROM tickers
		WHERE ahi_timestamp > ?
		ORDER BY ticker
	`, s.cutoff(maxAge))
	if err != nil {
		return nil, fmt.Errorf("failed to query recent tickers: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var ticker string
		var data []byte
		var updatedAt int64
		if err := rows.Scan(&ticker, &data, &updatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan ticker: %w", err)
		}

		fields, err := decodeFields(data)
		if err != nil {
			return nil, fmt.Errorf("ticker %s: %w", ticker, err)
		}
		recs = append(recs, domain.NewTickerRecord(ticker, fields, time.Unix(updatedAt, 0)))
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating recent tickers: %w", err)
	}

	return recs, nil
}

// QueryTrending returns trending documents sorted by metric and written within window, in insertion order
func (s *DocumentStore) QueryTrending(ctx context.Context, metric domain.Metric, window time.Duration) (recs []domain.TickerRecord, err error) {
	start := time.Now()
	defer func() { s.observe("query_trending", start, err) }()

	rows, err := s.db.QueryContext(ctx, `
		SELECT ticker, data, timestamp
		FROM trending
		WHERE sorted_by = ? AND timestamp > ?
		ORDER BY seq
	`, string(metric), s.cutoff(window))
	if err != nil {
		return nil, fmt.Errorf("failed to query trending for %s: %w", metric, err)
	}
	defer rows.Close()

	for rows.Next() {
		var ticker string
		var data []byte
		var ts float64
		if err := rows.Scan(&ticker, &data, &ts); err != nil {
			return nil, fmt.Errorf("failed to scan trending document: %w", err)
		}

		fields, err := decodeFields(data)
		if err != nil {
			return nil, fmt.Errorf("trending %s: %w", ticker, err)
		}
		recs = append(recs, domain.NewTickerRecord(ticker, fields, fromUnixSeconds(ts)))
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating trending documents: %w", err)
	}

	return recs, nil
}

// GetHistory returns the history series stored for ticker/metric
func (s *DocumentStore) GetHistory(ctx context.Context, ticker string, metric domain.Metric) (history interface{}, err error) {
	start := time.Now()
	defer func() { s.observe("get_history", start, err) }()

	var data []byte
	err = s.db.QueryRowContext(ctx,
		"SELECT data FROM ticker_history WHERE ticker = ? AND metric = ?", ticker, string(metric),
	).Scan(&data)
	if err == sql.ErrNoRows {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get history %s/%s: %w", ticker, metric, err)
	}

	return decodeValue(data)
}

// PutTicker creates or replaces a ticker document. The ticker field is always
// set to the canonical ticker.
func (s *DocumentStore) PutTicker(ctx context.Context, rec domain.TickerRecord) (err error) {
	start := time.Now()
	defer func() { s.observe("put_ticker", start, err) }()

	ticker := domain.NormalizeTicker(rec.Ticker)
	if ticker == "" {
		return fmt.Errorf("ticker document has no ticker")
	}

	fields := rec.Info()
	fields[domain.FieldTicker] = ticker
	data, err := encodeDocument(fields)
	if err != nil {
		return err
	}

	var ahiTimestamp sql.NullFloat64
	if ts, ok := rec.Number(domain.FieldAHITimestamp); ok {
		ahiTimestamp = sql.NullFloat64{Float64: ts, Valid: true}
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO tickers (ticker, data, ahi_timestamp, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(ticker) DO UPDATE SET
			data = excluded.data,
			ahi_timestamp = excluded.ahi_timestamp,
			updated_at = excluded.updated_at
	`, ticker, data, ahiTimestamp, s.clock.Now().Unix())
	if err != nil {
		return fmt.Errorf("failed to put ticker %s: %w", ticker, err)
	}

	s.log.Debug().Str("ticker", ticker).Msg("Stored ticker document")
	return nil
}

// PutTrending appends a trending document for metric, stamped at the given time.
// It returns the new document ID.
func (s *DocumentStore) PutTrending(ctx context.Context, metric domain.Metric, rec domain.TickerRecord, at time.Time) (id string, err error) {
	start := time.Now()
	defer func() { s.observe("put_trending", start, err) }()

	ticker := domain.NormalizeTicker(rec.Ticker)
	if ticker == "" {
		return "", fmt.Errorf("trending document has no ticker")
	}

	ts := unixSeconds(at)
	fields := rec.Info()
	fields[domain.FieldTicker] = ticker
	fields[domain.FieldSortedBy] = string(metric)
	fields[domain.FieldTimestamp] = ts

	data, err := encodeDocument(fields)
	if err != nil {
		return "", err
	}

	id = uuid.New().String()
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO trending (id, seq, ticker, sorted_by, timestamp, data)
		VALUES (?, (SELECT COALESCE(MAX(seq), 0) + 1 FROM trending), ?, ?, ?, ?)
	`, id, ticker, string(metric), ts, data)
	if err != nil {
		return "", fmt.Errorf("failed to put trending %s/%s: %w", metric, ticker, err)
	}

	return id, nil
}

// PutHistory creates or replaces the history series for ticker/metric
func (s *DocumentStore) PutHistory(ctx context.Context, ticker string, metric domain.Metric, history interface{}) (err error) {
	start := time.Now()
	defer func() { s.observe("put_history", start, err) }()

	ticker = domain.NormalizeTicker(ticker)
	data, err := encodeDocument(history)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO ticker_history (ticker, metric, data, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(ticker, metric) DO UPDATE SET
			data = excluded.data,
			updated_at = excluded.updated_at
	`, ticker, string(metric), data, s.clock.Now().Unix())
	if err != nil {
		return fmt.Errorf("failed to put history %s/%s: %w", ticker, metric, err)
	}

	return nil
}

// PruneTrending deletes trending documents older than maxAge and returns how many were removed
func (s *DocumentStore) PruneTrending(ctx context.Context, maxAge time.Duration) (n int64, err error) {
	start := time.Now()
	defer func() { s.observe("prune_trending", start, err) }()

	var res sql.Result
	err = database.WithTransaction(s.db, func(tx *sql.Tx) error {
		var execErr error
		res, execErr = tx.ExecContext(ctx, "DELETE FROM trending WHERE timestamp <= ?", s.cutoff(maxAge))
		return execErr
	})
	if err != nil {
		return 0, fmt.Errorf("failed to prune trending documents: %w", err)
	}

	return res.RowsAffected()
}
