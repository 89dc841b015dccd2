package tickers

import (
	"time"

	"github.com/aristath/tickerpulse/internal/domain"
	"github.com/jonboulle/clockwork"
)

// AnalysisShallow marks records produced without a full analysis run
const AnalysisShallow = "shallow"

// Analyzer produces a best-effort record for a ticker the store does not know.
// Implementations must always return a record.
type Analyzer interface {
	Analyze(ticker string) domain.TickerRecord
}

// ShallowAnalyzer returns a placeholder record with every mention counter at zero
type ShallowAnalyzer struct {
	clock clockwork.Clock
}

// NewShallowAnalyzer creates a shallow analyzer. A nil clock uses the wall clock.
func NewShallowAnalyzer(clock clockwork.Clock) *ShallowAnalyzer {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &ShallowAnalyzer{clock: clock}
}

// Analyze builds the shallow record for ticker
func (a *ShallowAnalyzer) Analyze(ticker string) domain.TickerRecord {
	now := a.clock.Now()
	ticker = domain.NormalizeTicker(ticker)

	fields := map[string]interface{}{
		domain.FieldTicker:    ticker,
		"analysis":            AnalysisShallow,
		domain.FieldTimestamp: float64(now.UnixNano()) / float64(time.Second),
	}
	for _, m := range domain.MentionMetrics {
		fields[string(m)] = 0
	}

	return domain.NewTickerRecord(ticker, fields, now)
}
