// Package utils provides helpers shared by the HTTP handlers.
package utils

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// InternalErrorMessage is what clients see when the document store fails
const InternalErrorMessage = "internal error - please try again later"

// Response is the envelope every API endpoint answers with.
// Client input problems still answer HTTP 200 with Success=false.
type Response map[string]interface{}

// Elapsed returns seconds since start, the unit clients expect in time_taken
func Elapsed(start time.Time) float64 {
	return time.Since(start).Seconds()
}

// Success builds a success envelope carrying the given fields
func Success(start time.Time, fields Response) Response {
	resp := Response{"success": true}
	for k, v := range fields {
		resp[k] = v
	}
	resp["time_taken"] = Elapsed(start)
	return resp
}

// Failure builds an error envelope
func Failure(start time.Time, message string) Response {
	return Response{
		"success":    false,
		"error":      message,
		"time_taken": Elapsed(start),
	}
}

// WriteJSON writes a JSON response
func WriteJSON(w http.ResponseWriter, log zerolog.Logger, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}

// WriteInternalError logs err and answers HTTP 500 with the generic failure envelope
func WriteInternalError(w http.ResponseWriter, log zerolog.Logger, start time.Time, err error) {
	log.Error().Err(err).Msg("Request failed")
	WriteJSON(w, log, http.StatusInternalServerError, Failure(start, InternalErrorMessage))
}
