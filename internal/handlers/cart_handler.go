package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/Lixing-Zhang/meal-storefront/internal/models"
	"github.com/Lixing-Zhang/meal-storefront/internal/service"
)

// CartHandler handles cart requests
type CartHandler struct {
	catalog *service.CatalogService
	logger  *slog.Logger
}

// NewCartHandler creates a new cart handler
func NewCartHandler(catalog *service.CatalogService, logger *slog.Logger) *CartHandler {
	return &CartHandler{
		catalog: catalog,
		logger:  logger,
	}
}

// AddToCartRequest names the catalog item to add
type AddToCartRequest struct {
	ID string `json:"id"`
}

// CartResponse is the cart snapshot
type CartResponse struct {
	Items []models.MenuItem `json:"items"`
	Count int               `json:"count"`
}

// GetCart handles GET /api/cart
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	h.writeCart(w, r)
}

// AddToCart handles POST /api/cart
// The item is looked up in the catalog and stored by value
func (h *CartHandler) AddToCart(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req AddToCartRequest
	if err := decodeJSON(r, &req); err != nil {
		h.logger.Warn("failed to decode cart request", "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.logger)
		return
	}

	id := strings.TrimSpace(req.ID)
	if id == "" {
		WriteJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Item id is required", Fields: []string{"id"}}, h.logger)
		return
	}

	item, err := h.catalog.Item(ctx, id)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	if err := h.catalog.AddToCart(ctx, *item); err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	h.writeCart(w, r)
}

func (h *CartHandler) writeCart(w http.ResponseWriter, r *http.Request) {
	items, err := h.catalog.Cart(r.Context())
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	WriteJSON(w, http.StatusOK, CartResponse{Items: items, Count: len(items)}, h.logger)
}
