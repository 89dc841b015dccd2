package server

import (
	"net/http"

	"github.com/aristath/tickerpulse/internal/utils"
)

// handleRoot identifies the service
func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, s.log, http.StatusOK, map[string]string{
		"service": "web-facing",
	})
}
