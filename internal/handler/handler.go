// Package handler provides HTTP request handlers.
package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/applytrack/applytrack/internal/service"
)

// Handler wraps the surface-level endpoints (root, 404, 405).
type Handler struct{}

// New creates a new Handler instance.
func New() *Handler {
	return &Handler{}
}

// Hello is the root info endpoint.
// GET /
func (h *Handler) Hello(w http.ResponseWriter, r *http.Request) {
	response := map[string]string{
		"message": "ApplyTrack API",
		"version": "1.0.0",
	}
	writeJSON(w, http.StatusOK, response)
}

// NotFound handles 404 responses.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusNotFound, "Route does not exist")
}

// MethodNotAllowed handles 405 responses.
func (h *Handler) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	// The status line is already written; nothing useful to do on an
	// encode failure here.
	_ = json.NewEncoder(w).Encode(data)
}

// writeError writes the uniform failure envelope {msg}.
func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"msg": msg})
}

// mapServiceError is the single boundary error-mapper: every thrown
// business error is translated to {msg, status} here, so all routes share
// one failure shape. Unmatched errors default to a generic 500.
func mapServiceError(w http.ResponseWriter, logger *slog.Logger, err error) {
	var ve *service.ValidationError

	switch {
	case errors.As(err, &ve):
		writeError(w, http.StatusBadRequest, ve.Error())
	case errors.Is(err, service.ErrMissingCredentials):
		writeError(w, http.StatusBadRequest, "Email and password are required fields")
	case errors.Is(err, service.ErrEmptyJobFields):
		writeError(w, http.StatusBadRequest, "Company or Position fields cannot be empty")
	case errors.Is(err, service.ErrInvalidCredentials):
		writeError(w, http.StatusUnauthorized, "Invalid Credentials")
	case errors.Is(err, service.ErrJobNotFound):
		writeError(w, http.StatusNotFound, "No job with the provided ID")
	case errors.Is(err, service.ErrDuplicateEmail):
		writeError(w, http.StatusConflict, "A unique value for the email field is required, the address provided already exists")
	default:
		logger.Error("internal_error", "error", err)
		writeError(w, http.StatusInternalServerError, "Something went wrong, please try again")
	}
}
