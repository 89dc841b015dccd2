package domain

import "strings"

// Metric is a sentiment metric name as stored on ticker documents
type Metric string

const (
	MetricAHI Metric = "AHI"
	MetricSGP Metric = "SGP"
	MetricRHI Metric = "RHI"

	MetricSentiment Metric = "sentiment"

	MetricTweetSentiment Metric = "tweet_sentiment"
	MetricTweetMentions  Metric = "tweet_mentions"

	MetricRedditPostSentiment    Metric = "reddit_post_sentiment"
	MetricRedditPostMentions     Metric = "reddit_post_mentions"
	MetricRedditCommentSentiment Metric = "reddit_comment_sentiment"
	MetricRedditCommentMentions  Metric = "reddit_comment_mentions"

	MetricStocktwitsPostSentiment Metric = "stocktwits_post_sentiment"
	MetricStocktwitsPostMentions  Metric = "stocktwits_post_mentions"

	MetricYahooFinanceCommentSentiment Metric = "yahoo_finance_comment_sentiment"
	MetricYahooFinanceCommentMentions  Metric = "yahoo_finance_comment_mentions"
)

// MetricSet is an ordered allow-list of metrics accepted by one endpoint
type MetricSet []Metric

// AllMetrics is every metric the API knows about. History lookups accept all of them.
var AllMetrics = MetricSet{
	MetricAHI,
	MetricSGP,
	MetricRHI,
	MetricSentiment,
	MetricTweetSentiment,
	MetricTweetMentions,
	MetricRedditPostSentiment,
	MetricRedditPostMentions,
	MetricRedditCommentSentiment,
	MetricRedditCommentMentions,
	MetricStocktwitsPostSentiment,
	MetricStocktwitsPostMentions,
	MetricYahooFinanceCommentSentiment,
	MetricYahooFinanceCommentMentions,
}

// TrendingMetrics is the narrower set trending lists are computed for.
// Per-source sentiment splits are not ranked.
var TrendingMetrics = MetricSet{
	MetricAHI,
	MetricSGP,
	MetricRHI,
	MetricSentiment,
	MetricTweetMentions,
	MetricRedditCommentMentions,
	MetricRedditPostMentions,
	MetricStocktwitsPostMentions,
	MetricYahooFinanceCommentMentions,
}

// MentionMetrics are the raw mention counters. A missing counter means zero.
var MentionMetrics = MetricSet{
	MetricTweetMentions,
	MetricRedditPostMentions,
	MetricRedditCommentMentions,
	MetricStocktwitsPostMentions,
	MetricYahooFinanceCommentMentions,
}

// Parse returns the metric named raw if it belongs to the set.
// Matching is exact: metric names are case sensitive on the wire.
func (s MetricSet) Parse(raw string) (Metric, bool) {
	for _, m := range s {
		if string(m) == raw {
			return m, true
		}
	}
	return "", false
}

// Contains reports whether m is part of the set
func (s MetricSet) Contains(m Metric) bool {
	_, ok := s.Parse(string(m))
	return ok
}

// Names returns the metric names in set order
func (s MetricSet) Names() []string {
	names := make([]string, len(s))
	for i, m := range s {
		names[i] = string(m)
	}
	return names
}

// String renders the set for client-facing error messages, e.g. "[AHI, SGP]"
func (s MetricSet) String() string {
	return "[" + strings.Join(s.Names(), ", ") + "]"
}
