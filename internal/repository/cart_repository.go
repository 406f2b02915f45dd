package repository

import (
	"context"
	"sync"

	"github.com/Lixing-Zhang/meal-storefront/internal/models"
)

// CartRepository stores the session cart as an append-only sequence
type CartRepository interface {
	Append(ctx context.Context, item models.MenuItem) error
	GetAll(ctx context.Context) ([]models.MenuItem, error)
	Contains(ctx context.Context, id string) (bool, error)
}

// InMemoryCartRepository implements CartRepository in memory
type InMemoryCartRepository struct {
	items []models.MenuItem
	mu    sync.RWMutex
}

// NewInMemoryCartRepository creates an empty cart
func NewInMemoryCartRepository() *InMemoryCartRepository {
	return &InMemoryCartRepository{
		items: make([]models.MenuItem, 0),
	}
}

// Append adds item to the end of the cart
func (r *InMemoryCartRepository) Append(ctx context.Context, item models.MenuItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items = append(r.items, item)
	return nil
}

// GetAll returns a copy of the cart contents in the order they were added
func (r *InMemoryCartRepository) GetAll(ctx context.Context) ([]models.MenuItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := make([]models.MenuItem, len(r.items))
	copy(items, r.items)
	return items, nil
}

// Contains reports whether any cart entry references the given item ID
func (r *InMemoryCartRepository) Contains(ctx context.Context, id string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, item := range r.items {
		if item.ID == id {
			return true, nil
		}
	}
	return false, nil
}
