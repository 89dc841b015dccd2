package ranking

import "github.com/aristath/tickerpulse/internal/domain"

// Hot list sizes
const (
	MomentumListLimit = 100
	MentionsListLimit = 50
)

// HotLists are the three lists computed from one "recently updated" snapshot
type HotLists struct {
	// Momentum ranks by AHI, unfiltered
	Momentum []RankedEntry
	// Reddit ranks by reddit comment mentions, tickers without mentions dropped
	Reddit []RankedEntry
	// Twitter ranks by tweet mentions, tickers without mentions dropped
	Twitter []RankedEntry
}

// BuildHotLists ranks the same snapshot three independent ways
func BuildHotLists(records []domain.TickerRecord) HotLists {
	return HotLists{
		Momentum: Rank(records, Options{
			Metric: domain.MetricAHI,
			Limit:  MomentumListLimit,
		}),
		Reddit: Rank(records, Options{
			Metric:    domain.MetricRedditCommentMentions,
			Limit:     MentionsListLimit,
			DropFalsy: true,
		}),
		Twitter: Rank(records, Options{
			Metric:    domain.MetricTweetMentions,
			Limit:     MentionsListLimit,
			DropFalsy: true,
		}),
	}
}
