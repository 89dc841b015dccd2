package ranking

import (
	"fmt"
	"testing"

	"github.com/aristath/tickerpulse/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildHotLists(t *testing.T) {
	records := []domain.TickerRecord{
		rec("GME", map[string]interface{}{"AHI": 9, "reddit_comment_mentions": 120, "tweet_mentions": 0}),
		rec("AMC", map[string]interface{}{"AHI": 7, "reddit_comment_mentions": 0, "tweet_mentions": 3.5}),
		rec("TSLA", map[string]interface{}{"AHI": 11, "tweet_mentions": 9.25}),
		rec("BB", map[string]interface{}{"AHI": 1, "reddit_comment_mentions": 40}),
	}

	lists := BuildHotLists(records)

	assert.Equal(t, []string{"TSLA", "GME", "AMC", "BB"}, tickers(lists.Momentum))
	assert.Equal(t, []string{"GME", "BB"}, tickers(lists.Reddit))
	assert.Equal(t, []string{"TSLA", "AMC"}, tickers(lists.Twitter))

	assert.Equal(t, 120.0, lists.Reddit[0].Value)
	assert.Equal(t, 9.25, lists.Twitter[0].Value)

	// The snapshot itself is untouched
	assert.Equal(t, "GME", records[0].Ticker)
	assert.Equal(t, "BB", records[3].Ticker)
}

func TestBuildHotLists_Limits(t *testing.T) {
	records := make([]domain.TickerRecord, 0, 150)
	for i := 0; i < 150; i++ {
		records = append(records, rec(fmt.Sprintf("T%03d", i), map[string]interface{}{
			"AHI":                     i,
			"reddit_comment_mentions": i + 1,
			"tweet_mentions":          i + 1,
		}))
	}

	lists := BuildHotLists(records)

	require.Len(t, lists.Momentum, MomentumListLimit)
	require.Len(t, lists.Reddit, MentionsListLimit)
	require.Len(t, lists.Twitter, MentionsListLimit)
	assert.Equal(t, "T149", lists.Momentum[0].Ticker)
	assert.Equal(t, 99, lists.Momentum[99].Rank)
}

func TestBuildHotLists_Empty(t *testing.T) {
	lists := BuildHotLists(nil)

	assert.Empty(t, lists.Momentum)
	assert.Empty(t, lists.Reddit)
	assert.Empty(t, lists.Twitter)
}
