package handlers

import "github.com/go-chi/chi/v5"

// RegisterRoutes registers the ticker routes
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/get_ticker_information", h.HandleGetTickerInformation)
	r.Get("/get_history", h.HandleGetHistory)
}
