package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/Lixing-Zhang/meal-storefront/internal/models"
	"github.com/Lixing-Zhang/meal-storefront/internal/repository"
)

var (
	ErrInvalidSeed = errors.New("invalid seed catalog")
	ErrIDExhausted = errors.New("could not generate a unique item id")
)

// maxIDAttempts bounds retries when a generated ID collides
const maxIDAttempts = 3

// CatalogService owns the menu and the session cart
type CatalogService struct {
	menu repository.MenuRepository
	cart repository.CartRepository
	log  *slog.Logger
}

// NewCatalogService loads seed into menu, assigns IDs to items that lack
// one, and migrates retired category labels before returning.
// It fails if any seed item still has an unknown category afterwards.
func NewCatalogService(ctx context.Context, menu repository.MenuRepository, cart repository.CartRepository, log *slog.Logger, seed []models.MenuItem) (*CatalogService, error) {
	s := &CatalogService{
		menu: menu,
		cart: cart,
		log:  log,
	}

	seed, assigned := assignMissingIDs(seed)
	if assigned > 0 {
		log.Info("assigned ids to seed items", "count", assigned)
	}

	for _, item := range seed {
		if err := menu.Append(ctx, item); err != nil {
			return nil, fmt.Errorf("%w: item %q: %w", ErrInvalidSeed, item.ID, err)
		}
	}

	if _, err := s.MigrateLegacyCategory(ctx); err != nil {
		return nil, fmt.Errorf("failed to migrate categories: %w", err)
	}

	items, err := menu.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, item := range items {
		if !item.Category.Valid() {
			return nil, fmt.Errorf("%w: item %q has unknown category %q", ErrInvalidSeed, item.ID, item.Category)
		}
	}

	log.Info("catalog initialized", "items", len(items))
	return s, nil
}

// Items returns a snapshot of the catalog in insertion order
func (s *CatalogService) Items(ctx context.Context) ([]models.MenuItem, error) {
	return s.menu.GetAll(ctx)
}

// Item returns a single catalog item
func (s *CatalogService) Item(ctx context.Context, id string) (*models.MenuItem, error) {
	return s.menu.GetByID(ctx, id)
}

// AddItem validates draft and appends it to the catalog under a fresh ID.
// A *ValidationError is returned for bad input and nothing is stored.
func (s *CatalogService) AddItem(ctx context.Context, draft models.Draft) (*models.MenuItem, error) {
	item, err := validateDraft(draft)
	if err != nil {
		return nil, err
	}

	for attempt := 0; attempt < maxIDAttempts; attempt++ {
		item.ID = uuid.New().String()

		err := s.menu.Append(ctx, item)
		if errors.Is(err, repository.ErrDuplicateID) {
			s.log.Warn("generated item id collided, retrying", "id", item.ID)
			continue
		}
		if err != nil {
			return nil, err
		}

		s.log.Info("menu item added", "id", item.ID, "name", item.Name, "category", item.Category)
		return &item, nil
	}

	return nil, ErrIDExhausted
}

// RemoveItem deletes the item with the given ID. Unknown IDs are ignored.
func (s *CatalogService) RemoveItem(ctx context.Context, id string) error {
	removed, err := s.menu.Delete(ctx, id)
	if err != nil {
		return err
	}
	if removed {
		s.log.Info("menu item removed", "id", id)
	} else {
		s.log.Debug("remove ignored, item not in catalog", "id", id)
	}
	return nil
}

// AddToCart appends item to the cart. The same item may be added repeatedly.
func (s *CatalogService) AddToCart(ctx context.Context, item models.MenuItem) error {
	if err := s.cart.Append(ctx, item); err != nil {
		return err
	}
	s.log.Info("item added to cart", "id", item.ID, "name", item.Name)
	return nil
}

// Cart returns the cart contents in the order they were added
func (s *CatalogService) Cart(ctx context.Context) ([]models.MenuItem, error) {
	return s.cart.GetAll(ctx)
}

// InCart reports whether the item is already in the cart
func (s *CatalogService) InCart(ctx context.Context, id string) (bool, error) {
	return s.cart.Contains(ctx, id)
}

// MigrateLegacyCategory rewrites items tagged with the retired label to main.
// It reports whether any item changed; a second run is a no-op.
func (s *CatalogService) MigrateLegacyCategory(ctx context.Context) (bool, error) {
	n, err := s.menu.Update(ctx, func(item *models.MenuItem) bool {
		if !models.IsLegacyCategory(string(item.Category)) {
			return false
		}
		item.Category = models.CategoryMain
		return true
	})
	if err != nil {
		return false, err
	}
	if n > 0 {
		s.log.Info("migrated legacy category", "to", models.CategoryMain, "count", n)
	}
	return n > 0, nil
}

// validateDraft checks every field and returns the normalized item without an ID
func validateDraft(draft models.Draft) (models.MenuItem, error) {
	name := strings.TrimSpace(draft.Name)
	price := strings.TrimSpace(draft.Price)
	image := strings.TrimSpace(draft.Image)
	description := strings.TrimSpace(draft.Description)
	rawCategory := strings.TrimSpace(draft.Category)

	var missing []string
	if name == "" {
		missing = append(missing, "name")
	}
	if price == "" {
		missing = append(missing, "price")
	}
	if image == "" {
		missing = append(missing, "image")
	}
	if description == "" {
		missing = append(missing, "description")
	}
	if rawCategory == "" {
		missing = append(missing, "category")
	}
	if len(missing) > 0 {
		return models.MenuItem{}, newValidationError("missing required fields", missing...)
	}

	var invalid []string
	if _, err := models.ParsePrice(price); err != nil {
		invalid = append(invalid, "price")
	}
	category, ok := models.ParseCategory(rawCategory)
	if !ok {
		invalid = append(invalid, "category")
	}
	if len(invalid) > 0 {
		return models.MenuItem{}, newValidationError("invalid fields", invalid...)
	}

	return models.MenuItem{
		Name:        name,
		Price:       price,
		Image:       image,
		Description: description,
		Category:    category,
	}, nil
}

// assignMissingIDs returns a copy of items where every empty ID is replaced
// with a fresh one, along with how many were assigned
func assignMissingIDs(items []models.MenuItem) ([]models.MenuItem, int) {
	out := make([]models.MenuItem, len(items))
	copy(out, items)

	taken := make(map[string]bool, len(out))
	for _, item := range out {
		if item.ID != "" {
			taken[item.ID] = true
		}
	}

	assigned := 0
	for i := range out {
		if out[i].ID != "" {
			continue
		}
		id := uuid.New().String()
		for taken[id] {
			id = uuid.New().String()
		}
		taken[id] = true
		out[i].ID = id
		assigned++
	}
	return out, assigned
}
