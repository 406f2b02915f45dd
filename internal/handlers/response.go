package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/Lixing-Zhang/meal-storefront/internal/repository"
	"github.com/Lixing-Zhang/meal-storefront/internal/service"
)

// ErrorResponse is the JSON body of every error reply
type ErrorResponse struct {
	Error  string   `json:"error"`
	Fields []string `json:"fields,omitempty"`
}

// WriteJSON writes a JSON response
func WriteJSON(w http.ResponseWriter, status int, data interface{}, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("failed to encode JSON response", "error", err)
	}
}

// WriteError writes an error response in JSON format
func WriteError(w http.ResponseWriter, status int, message string, logger *slog.Logger) {
	WriteJSON(w, status, ErrorResponse{Error: message}, logger)
}

// writeServiceError maps service and repository errors to HTTP replies:
// validation failures are 400, unknown items 404, anything else 500
func writeServiceError(w http.ResponseWriter, err error, logger *slog.Logger) {
	var verr *service.ValidationError
	switch {
	case errors.As(err, &verr):
		logger.Info("request rejected", "reason", verr.Reason, "fields", verr.Fields)
		WriteJSON(w, http.StatusBadRequest, ErrorResponse{Error: verr.Error(), Fields: verr.Fields}, logger)
	case errors.Is(err, repository.ErrItemNotFound):
		WriteError(w, http.StatusNotFound, "Menu item not found", logger)
	default:
		logger.Error("request failed", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", logger)
	}
}

// decodeJSON decodes the request body into dst, rejecting unknown fields
func decodeJSON(r *http.Request, dst interface{}) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}
