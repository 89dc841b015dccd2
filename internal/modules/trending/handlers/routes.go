package handlers

import "github.com/go-chi/chi/v5"

// RegisterRoutes registers the trending routes
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/get_trending", h.HandleGetTrending)
	r.Get("/get_reddit_post", h.HandleGetRedditPost)
}
