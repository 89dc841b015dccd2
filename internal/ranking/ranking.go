// Package ranking turns snapshots of ticker documents into ordered top-N lists.
package ranking

import (
	"math"
	"sort"

	"github.com/aristath/tickerpulse/internal/domain"
)

// NoLimit disables truncation
const NoLimit = -1

// absentThresholdValue is what a record without the threshold metric is compared as
const absentThresholdValue = -1.0

// RankedEntry is one position in a ranked list. Rank is 0-based.
type RankedEntry struct {
	Record   domain.TickerRecord
	Ticker   string
	Value    float64
	Rank     int
	HasValue bool
}

// Threshold keeps records whose Metric value is strictly greater than Value
type Threshold struct {
	Metric domain.Metric
	Value  float64
}

func (t Threshold) passes(r domain.TickerRecord) bool {
	v, ok := numeric(r, t.Metric)
	if !ok {
		v = absentThresholdValue
	}
	return v > t.Value
}

// Options controls a single ranking pass
type Options struct {
	Threshold *Threshold
	Metric    domain.Metric
	Limit     int
	// DropFalsy removes records whose Metric is missing, zero or non-numeric
	DropFalsy bool
}

// Rank filters, sorts by opts.Metric descending, truncates to opts.Limit and numbers the result.
//
// Ordering is a stable sort, so records with equal values keep their snapshot order.
// Records without a numeric value for the metric sort after every numeric one.
// The input slice is never reordered or modified.
func Rank(records []domain.TickerRecord, opts Options) []RankedEntry {
	entries := make([]RankedEntry, 0, len(records))
	for _, record := range records {
		if opts.DropFalsy && !record.Truthy(opts.Metric) {
			continue
		}
		if opts.Threshold != nil && !opts.Threshold.passes(record) {
			continue
		}

		v, ok := numeric(record, opts.Metric)
		entries = append(entries, RankedEntry{
			Record:   record,
			Ticker:   record.Ticker,
			Value:    v,
			HasValue: ok,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.HasValue != b.HasValue {
			return a.HasValue
		}
		return a.Value > b.Value
	})

	if opts.Limit >= 0 && len(entries) > opts.Limit {
		entries = entries[:opts.Limit]
	}

	for i := range entries {
		entries[i].Rank = i
	}

	return entries
}

// numeric treats NaN like a missing value so the sort order stays total
func numeric(r domain.TickerRecord, m domain.Metric) (float64, bool) {
	v, ok := r.Value(m)
	if !ok || math.IsNaN(v) {
		return 0, false
	}
	return v, true
}
