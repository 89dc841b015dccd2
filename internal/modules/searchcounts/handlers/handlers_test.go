package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aristath/tickerpulse/internal/modules/searchcounts"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleGetAndRefresh(t *testing.T) {
	counter := searchcounts.NewCounter(nil)
	handler := NewHandler(counter, zerolog.Nop())

	counter.Increment("GME")
	counter.Increment("GME")
	counter.Increment("amc")

	decode := func() map[string]interface{} {
		req := httptest.NewRequest("GET", "/get_and_refresh_ticker_search_counts", nil)
		w := httptest.NewRecorder()
		handler.HandleGetAndRefresh(w, req)
		require.Equal(t, http.StatusOK, w.Code)

		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		return body
	}

	first := decode()
	assert.Equal(t, true, first["success"])
	assert.Equal(t, map[string]interface{}{"GME": 2.0, "AMC": 1.0}, first["ticker_search_counts"])
	assert.Contains(t, first, "time_taken")

	second := decode()
	assert.Equal(t, map[string]interface{}{}, second["ticker_search_counts"])
}

func TestRegisterRoutes(t *testing.T) {
	handler := NewHandler(searchcounts.NewCounter(nil), zerolog.Nop())
	router := chi.NewRouter()

	assert.NotPanics(t, func() {
		handler.RegisterRoutes(router)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/get_and_refresh_ticker_search_counts", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}
