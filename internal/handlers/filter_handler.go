package handlers

import (
	"log/slog"
	"net/http"

	"github.com/Lixing-Zhang/meal-storefront/internal/service"
)

// FilterHandler exposes the shared filter state
type FilterHandler struct {
	filters *service.FilterService
	logger  *slog.Logger
}

// NewFilterHandler creates a new filter handler
func NewFilterHandler(filters *service.FilterService, logger *slog.Logger) *FilterHandler {
	return &FilterHandler{
		filters: filters,
		logger:  logger,
	}
}

// UpdateFilterRequest sets either or both parts of the filter.
// Omitted fields keep their current value.
type UpdateFilterRequest struct {
	Category *string `json:"category,omitempty"`
	Search   *string `json:"search,omitempty"`
}

// GetFilter handles GET /api/filter
func (h *FilterHandler) GetFilter(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, h.filters.State(), h.logger)
}

// UpdateFilter handles PUT /api/filter
func (h *FilterHandler) UpdateFilter(w http.ResponseWriter, r *http.Request) {
	var req UpdateFilterRequest
	if err := decodeJSON(r, &req); err != nil {
		h.logger.Warn("failed to decode filter request", "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.logger)
		return
	}

	if err := h.filters.Set(req.Category, req.Search); err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	WriteJSON(w, http.StatusOK, h.filters.State(), h.logger)
}
