package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/kozaktomas/photo-booth/internal/compositor"
)

// respondJSON sends a JSON response.
func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

// respondError sends an error response.
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// statusForError maps compositor errors onto HTTP status codes: bad
// request parameters are the caller's to fix, undecodable uploads are
// unprocessable, anything else is on us.
func statusForError(err error) int {
	var invalid *compositor.InvalidInputError
	if errors.As(err, &invalid) {
		return http.StatusBadRequest
	}
	var decode *compositor.DecodeError
	if errors.As(err, &decode) {
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}

// HealthCheck handles the health check endpoint.
func HealthCheck(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status": "ok",
	})
}
