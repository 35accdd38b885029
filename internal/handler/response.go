// Package handler implements the HTTP layer: parse the request, call
// exactly one service method, serialize the result. Error translation to
// status codes happens in one place (writeError) so individual handlers
// never touch the mapping.
package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/desenroladireito/desenrola-direito/internal/apperror"
)

// ErrorResponse is the standard error envelope returned by every endpoint:
//
//	{"error": "not_found", "message": "category not found: x"}
//
// Validation errors additionally carry the offending field. The envelope
// never includes raw internal errors — those stay in the logs.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

// writeJSON sends a JSON response. Headers and status must be written
// before the body; once Encode writes, header changes are silently ignored.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			// Headers already went out; logging is all that's left.
			slog.Error("failed to encode JSON response", slog.String("error", err.Error()))
		}
	}
}

// writeError maps a domain error to HTTP. The service layer returns
// apperror sentinels; errors.Is walks the wrap chain so services are free
// to add context with fmt.Errorf("...: %w", err).
func writeError(w http.ResponseWriter, err error) {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		status := http.StatusInternalServerError
		errorType := "internal_error"

		switch {
		case errors.Is(err, apperror.ErrValidation):
			status = http.StatusBadRequest
			errorType = "validation_error"
		case errors.Is(err, apperror.ErrNotFound):
			status = http.StatusNotFound
			errorType = "not_found"
		case errors.Is(err, apperror.ErrConflict):
			status = http.StatusConflict
			errorType = "conflict"
		case errors.Is(err, apperror.ErrUnavailable):
			// External dependency failed. Still a 500 for the caller, with
			// an explicit retry hint instead of the provider's error.
			writeJSON(w, http.StatusInternalServerError, ErrorResponse{
				Error:   "unavailable",
				Message: "the message could not be sent, please try again later",
			})
			return
		}

		writeJSON(w, status, ErrorResponse{
			Error:   errorType,
			Message: appErr.Message,
			Field:   appErr.Field,
		})
		return
	}

	// Unknown error: generic 500. The raw error is never serialized into
	// the response (it may carry paths or provider details).
	writeJSON(w, http.StatusInternalServerError, ErrorResponse{
		Error:   "internal_error",
		Message: "an internal error occurred",
	})
}

// decodeJSON reads a JSON request body into dst, translating decode
// failures into a 400-mapped validation error.
func decodeJSON(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return apperror.ValidationFailed("body", "request body is not valid JSON")
	}
	return nil
}
