package handlers

import "github.com/go-chi/chi/v5"

// RegisterRoutes registers the search count routes
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/get_and_refresh_ticker_search_counts", h.HandleGetAndRefresh)
}
