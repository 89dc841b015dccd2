package testing

import (
	"time"

	"github.com/aristath/tickerpulse/internal/domain"
)

// NewRecord builds a ticker record from alternating field/value pairs,
// e.g. NewRecord("GME", "AHI", 9.5, "tweet_mentions", 3)
func NewRecord(ticker string, kv ...interface{}) domain.TickerRecord {
	fields := map[string]interface{}{domain.FieldTicker: domain.NormalizeTicker(ticker)}
	for i := 0; i+1 < len(kv); i += 2 {
		fields[kv[i].(string)] = kv[i+1]
	}
	return domain.NewTickerRecord(ticker, fields, time.Time{})
}

// NewTickerFixtures returns a small recently-updated snapshot covering the usual shapes:
// full records, a record without mention counters and one with a textual metric.
func NewTickerFixtures(now time.Time) []domain.TickerRecord {
	ts := float64(now.Add(-5*time.Minute).Unix())
	return []domain.TickerRecord{
		NewRecord("GME",
			"AHI", 9.1, "SGP", 2.4, "RHI", 1.3, "sentiment", 0.62,
			"reddit_comment_mentions", 120, "tweet_mentions", 4.5,
			domain.FieldAHITimestamp, ts),
		NewRecord("AMC",
			"AHI", 7.0, "SGP", 1.1, "RHI", 0.9, "sentiment", 0.41,
			"reddit_comment_mentions", 0, "tweet_mentions", 3.5,
			domain.FieldAHITimestamp, ts),
		NewRecord("TSLA",
			"AHI", 11.2, "SGP", 3.0, "RHI", 2.2, "sentiment", "bullish",
			"tweet_mentions", 9.25,
			domain.FieldAHITimestamp, ts),
		NewRecord("BB",
			"AHI", 1.0,
			"reddit_comment_mentions", 40,
			domain.FieldAHITimestamp, ts),
	}
}
