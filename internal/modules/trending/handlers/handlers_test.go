package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/aristath/tickerpulse/internal/domain"
	"github.com/aristath/tickerpulse/internal/modules/trending"
	testingpkg "github.com/aristath/tickerpulse/internal/testing"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupRouter(t *testing.T) (*chi.Mux, *testingpkg.MockDocumentGateway) {
	t.Helper()

	gateway := &testingpkg.MockDocumentGateway{}
	t.Cleanup(func() { gateway.AssertExpectations(t) })

	service := trending.NewService(gateway, time.Hour, time.Hour, zerolog.Nop())
	router := chi.NewRouter()
	NewHandler(service, zerolog.Nop()).RegisterRoutes(router)
	return router, gateway
}

func get(t *testing.T, router http.Handler, target string) (int, map[string]interface{}) {
	t.Helper()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", target, nil))

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Contains(t, body, "time_taken")
	return w.Code, body
}

func snapshot() []domain.TickerRecord {
	return []domain.TickerRecord{
		testingpkg.NewRecord("A", "AHI", 5, "SGP", 1, "tweet_mentions", 0),
		testingpkg.NewRecord("B", "AHI", 9, "SGP", 3, "tweet_mentions", 7),
		testingpkg.NewRecord("C", "AHI", 1, "SGP", 2),
	}
}

func TestHandleGetTrending_RanksByMetric(t *testing.T) {
	router, gateway := setupRouter(t)
	gateway.On("QueryTrending", mock.Anything, domain.MetricAHI, time.Hour).Return(snapshot(), nil).Once()

	code, body := get(t, router, "/get_trending?metric=AHI&limit=2")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, 2.0, body["quantity"])

	tickers := body["tickers"].([]interface{})
	require.Len(t, tickers, 2)

	first := tickers[0].(map[string]interface{})
	assert.Equal(t, "B", first["ticker"])
	assert.Equal(t, 0.0, first["rank"])
	assert.Equal(t, 9.0, first["info"].(map[string]interface{})["AHI"])

	second := tickers[1].(map[string]interface{})
	assert.Equal(t, "A", second["ticker"])
	assert.Equal(t, 1.0, second["rank"])
	assert.Equal(t, 5.0, second["info"].(map[string]interface{})["AHI"])
}

func TestHandleGetTrending_Defaults(t *testing.T) {
	router, gateway := setupRouter(t)

	var records []domain.TickerRecord
	for i := 0; i < 10; i++ {
		records = append(records, testingpkg.NewRecord(string(rune('A'+i)), "AHI", float64(i)))
	}
	gateway.On("QueryTrending", mock.Anything, domain.MetricAHI, time.Hour).Return(records, nil).Once()

	_, body := get(t, router, "/get_trending")
	assert.Equal(t, float64(trending.DefaultLimit), body["quantity"])
	first := body["tickers"].([]interface{})[0].(map[string]interface{})
	assert.Equal(t, "J", first["ticker"])
}

func TestHandleGetTrending_EmptyMetricDefaultsToAHI(t *testing.T) {
	router, gateway := setupRouter(t)
	gateway.On("QueryTrending", mock.Anything, domain.MetricAHI, time.Hour).Return(snapshot(), nil).Once()

	_, body := get(t, router, "/get_trending?metric=&threshold_metric=")
	require.Equal(t, true, body["success"])
	assert.Equal(t, float64(3), body["quantity"])
}

func TestHandleGetTrending_Threshold(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		expected []string
	}{
		{"threshold applied", "threshold_metric=tweet_mentions&threshold=1", []string{"B"}},
		{"zero threshold applied", "threshold_metric=tweet_mentions&threshold=0", []string{"B"}},
		{"negative threshold keeps absent values", "threshold_metric=tweet_mentions&threshold=-2", []string{"B", "A", "C"}},
		{"threshold without metric ignored", "threshold=100", []string{"B", "A", "C"}},
		{"metric without threshold ignored", "threshold_metric=tweet_mentions", []string{"B", "A", "C"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, gateway := setupRouter(t)
			gateway.On("QueryTrending", mock.Anything, domain.MetricAHI, time.Hour).Return(snapshot(), nil).Once()

			_, body := get(t, router, "/get_trending?"+tt.query)
			require.Equal(t, true, body["success"])

			var got []string
			for _, e := range body["tickers"].([]interface{}) {
				got = append(got, e.(map[string]interface{})["ticker"].(string))
			}
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestHandleGetTrending_ClientErrors(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		contains string
	}{
		{"unknown metric", "metric=not_a_real_metric", "unrecognized metric"},
		{"metric outside trending set", "metric=tweet_sentiment", "unrecognized metric"},
		{"unknown threshold metric", "threshold_metric=bogus&threshold=1", "unrecognized threshold metric"},
		{"non-integer limit", "limit=abc", "'limit' must be an integer"},
		{"negative limit", "limit=-1", "'limit' must not be negative"},
		{"non-numeric threshold", "threshold_metric=AHI&threshold=high", "'threshold' must be a number"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, _ := setupRouter(t)

			code, body := get(t, router, "/get_trending?"+tt.query)
			assert.Equal(t, http.StatusOK, code)
			assert.Equal(t, false, body["success"])
			assert.Contains(t, body["error"], tt.contains)
		})
	}
}

func TestHandleGetTrending_ErrorNamesPermittedMetrics(t *testing.T) {
	router, _ := setupRouter(t)

	_, body := get(t, router, "/get_trending?metric=bogus")
	assert.Equal(t, "unrecognized metric, please choose one of "+domain.TrendingMetrics.String(), body["error"])
}

func TestHandleGetTrending_StoreFailure(t *testing.T) {
	router, gateway := setupRouter(t)
	gateway.On("QueryTrending", mock.Anything, domain.MetricAHI, time.Hour).Return(nil, errors.New("boom")).Once()

	code, body := get(t, router, "/get_trending")
	assert.Equal(t, http.StatusInternalServerError, code)
	assert.Equal(t, false, body["success"])
}

func TestHandleGetRedditPost(t *testing.T) {
	router, gateway := setupRouter(t)
	gateway.On("QueryRecent", mock.Anything, time.Hour).Return(testingpkg.NewTickerFixtures(time.Now()), nil).Once()

	code, body := get(t, router, "/get_reddit_post")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, true, body["success"])

	top100 := body["top_100"].([]interface{})
	require.Len(t, top100, 4)
	assert.Equal(t, map[string]interface{}{"ticker": "TSLA", "rank": 0.0, "AHI": 11.2}, top100[0])

	reddit := body["top_50_reddit"].([]interface{})
	require.Len(t, reddit, 2)
	assert.Equal(t, map[string]interface{}{"ticker": "GME", "rank": 0.0, "reddit mentions": 120.0}, reddit[0])
	assert.Equal(t, map[string]interface{}{"ticker": "BB", "rank": 1.0, "reddit mentions": 40.0}, reddit[1])

	twitter := body["top_50_twitter"].([]interface{})
	require.Len(t, twitter, 3)
	assert.Equal(t, map[string]interface{}{"ticker": "TSLA", "rank": 0.0, "tweets per second": 9.25}, twitter[0])
}

func TestHandleGetRedditPost_EmptySnapshot(t *testing.T) {
	router, gateway := setupRouter(t)
	gateway.On("QueryRecent", mock.Anything, time.Hour).Return([]domain.TickerRecord{}, nil).Once()

	_, body := get(t, router, "/get_reddit_post")
	assert.Equal(t, []interface{}{}, body["top_100"])
	assert.Equal(t, []interface{}{}, body["top_50_reddit"])
	assert.Equal(t, []interface{}{}, body["top_50_twitter"])
}

func TestHandleGetRedditPost_StoreFailure(t *testing.T) {
	router, gateway := setupRouter(t)
	gateway.On("QueryRecent", mock.Anything, time.Hour).Return(nil, errors.New("boom")).Once()

	code, _ := get(t, router, "/get_reddit_post")
	assert.Equal(t, http.StatusInternalServerError, code)
}
