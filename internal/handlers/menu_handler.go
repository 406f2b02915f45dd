package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Lixing-Zhang/meal-storefront/internal/models"
	"github.com/Lixing-Zhang/meal-storefront/internal/service"
	"github.com/Lixing-Zhang/meal-storefront/internal/view"
)

// MenuHandler handles catalog browsing and menu management requests
type MenuHandler struct {
	catalog *service.CatalogService
	filters *service.FilterService
	logger  *slog.Logger
}

// NewMenuHandler creates a new menu handler
func NewMenuHandler(catalog *service.CatalogService, filters *service.FilterService, logger *slog.Logger) *MenuHandler {
	return &MenuHandler{
		catalog: catalog,
		filters: filters,
		logger:  logger,
	}
}

// MenuEntry is a catalog item annotated with cart membership so clients
// can disable the add control
type MenuEntry struct {
	models.MenuItem
	InCart bool `json:"inCart"`
}

// MenuResponse is the filtered catalog view
type MenuResponse struct {
	Filter models.FilterState `json:"filter"`
	Items  []MenuEntry        `json:"items"`
	Count  int                `json:"count"`
}

// StatsEntry is the per-category price summary
type StatsEntry struct {
	Category models.Category `json:"category"`
	Label    string          `json:"label"`
	Count    int             `json:"count"`
	Average  float64         `json:"average"`
	Display  string          `json:"display"`
}

// ListMenu handles GET /api/menu
// Applies the current filter state to the catalog
func (h *MenuHandler) ListMenu(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	items, err := h.catalog.Items(ctx)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	filter := h.filters.State()
	filtered := view.FilteredItems(items, filter)

	entries := make([]MenuEntry, 0, len(filtered))
	for _, item := range filtered {
		inCart, err := h.catalog.InCart(ctx, item.ID)
		if err != nil {
			writeServiceError(w, err, h.logger)
			return
		}
		entries = append(entries, MenuEntry{MenuItem: item, InCart: inCart})
	}

	WriteJSON(w, http.StatusOK, MenuResponse{
		Filter: filter,
		Items:  entries,
		Count:  len(entries),
	}, h.logger)
}

// ListAll handles GET /api/menu/all
// Returns the unfiltered catalog for the management screen
func (h *MenuHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	items, err := h.catalog.Items(r.Context())
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	WriteJSON(w, http.StatusOK, items, h.logger)
}

// CreateItem handles POST /api/menu
func (h *MenuHandler) CreateItem(w http.ResponseWriter, r *http.Request) {
	var draft models.Draft
	if err := decodeJSON(r, &draft); err != nil {
		h.logger.Warn("failed to decode menu item", "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.logger)
		return
	}

	item, err := h.catalog.AddItem(r.Context(), draft)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	WriteJSON(w, http.StatusCreated, item, h.logger)
}

// DeleteItem handles DELETE /api/menu/{itemId}
// Deleting an unknown item still succeeds
func (h *MenuHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	itemID := chi.URLParam(r, "itemId")

	if err := h.catalog.RemoveItem(r.Context(), itemID); err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Stats handles GET /api/menu/stats
func (h *MenuHandler) Stats(w http.ResponseWriter, r *http.Request) {
	items, err := h.catalog.Items(r.Context())
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	stats := view.AveragePriceByCategory(items)
	entries := make([]StatsEntry, 0, len(stats))
	for _, s := range stats {
		entries = append(entries, StatsEntry{
			Category: s.Category,
			Label:    view.CategoryLabel(string(s.Category)),
			Count:    s.Count,
			Average:  s.Average,
			Display:  view.FormatAverage(s),
		})
	}

	WriteJSON(w, http.StatusOK, entries, h.logger)
}
