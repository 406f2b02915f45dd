package repository

import (
	"context"
	"errors"
	"sync"

	"github.com/Lixing-Zhang/meal-storefront/internal/models"
)

var (
	ErrItemNotFound = errors.New("menu item not found")
	ErrDuplicateID  = errors.New("menu item id already exists")
	ErrEmptyID      = errors.New("menu item id is empty")
)

// MenuRepository defines the interface for menu item storage.
// Implementations must preserve insertion order.
type MenuRepository interface {
	GetAll(ctx context.Context) ([]models.MenuItem, error)
	GetByID(ctx context.Context, id string) (*models.MenuItem, error)
	Append(ctx context.Context, item models.MenuItem) error
	Delete(ctx context.Context, id string) (bool, error)
	Update(ctx context.Context, fn func(item *models.MenuItem) bool) (int, error)
}

// InMemoryMenuRepository implements MenuRepository with an ordered slice
// and an id index
type InMemoryMenuRepository struct {
	items []models.MenuItem
	index map[string]int
	mu    sync.RWMutex
}

// NewInMemoryMenuRepository creates an empty repository
func NewInMemoryMenuRepository() *InMemoryMenuRepository {
	return &InMemoryMenuRepository{
		items: make([]models.MenuItem, 0),
		index: make(map[string]int),
	}
}

// GetAll returns a copy of all items in insertion order
func (r *InMemoryMenuRepository) GetAll(ctx context.Context) ([]models.MenuItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := make([]models.MenuItem, len(r.items))
	copy(items, r.items)
	return items, nil
}

// GetByID returns an item by its ID
func (r *InMemoryMenuRepository) GetByID(ctx context.Context, id string) (*models.MenuItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, exists := r.index[id]
	if !exists {
		return nil, ErrItemNotFound
	}
	item := r.items[i]
	return &item, nil
}

// Append adds an item at the end of the collection
func (r *InMemoryMenuRepository) Append(ctx context.Context, item models.MenuItem) error {
	if item.ID == "" {
		return ErrEmptyID
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.index[item.ID]; exists {
		return ErrDuplicateID
	}
	r.index[item.ID] = len(r.items)
	r.items = append(r.items, item)
	return nil
}

// Delete removes the item with the given ID.
// It reports whether an item was removed; a missing ID is not an error.
func (r *InMemoryMenuRepository) Delete(ctx context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, exists := r.index[id]
	if !exists {
		return false, nil
	}

	r.items = append(r.items[:i], r.items[i+1:]...)
	delete(r.index, id)
	for j := i; j < len(r.items); j++ {
		r.index[r.items[j].ID] = j
	}
	return true, nil
}

// Update applies fn to every item in place and returns how many items fn
// reported as changed. fn must not change item IDs.
func (r *InMemoryMenuRepository) Update(ctx context.Context, fn func(item *models.MenuItem) bool) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	changed := 0
	for i := range r.items {
		if fn(&r.items[i]) {
			changed++
		}
	}
	return changed, nil
}
