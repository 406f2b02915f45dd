package service

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/Lixing-Zhang/meal-storefront/internal/models"
)

// FilterService holds the current category filter and search text.
// It is a view parameter only and never touches the catalog.
type FilterService struct {
	state models.FilterState
	log   *slog.Logger
	mu    sync.RWMutex
}

// NewFilterService creates the filter state from an initial category value.
// An empty value or the retired label starts at "all".
func NewFilterService(initial string, log *slog.Logger) (*FilterService, error) {
	s := &FilterService{
		state: models.DefaultFilterState(),
		log:   log,
	}

	switch {
	case initial == "":
	case models.IsLegacyCategory(initial):
		log.Info("reset retired category filter", "from", initial, "to", models.FilterAll)
	default:
		if err := s.SetCategoryFilter(initial); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// State returns the current filter state
func (s *FilterService) State() models.FilterState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Set applies a category filter and search text together under one lock.
// A nil argument keeps the current value. The category is validated before
// anything changes, so a rejected call leaves the state as it was.
func (s *FilterService) Set(category, search *string) error {
	var filter models.CategoryFilter
	if category != nil {
		f, ok := models.ParseCategoryFilter(*category)
		if !ok {
			return newValidationError(fmt.Sprintf("invalid category filter %q", *category), "category")
		}
		filter = f
	}

	s.mu.Lock()
	if category != nil {
		s.state.Category = filter
	}
	if search != nil {
		s.state.Search = *search
	}
	state := s.state
	s.mu.Unlock()

	s.log.Debug("filter set", "category", state.Category, "search", state.Search)
	return nil
}

// SetCategoryFilter changes the category filter without touching the search text
func (s *FilterService) SetCategoryFilter(value string) error {
	return s.Set(&value, nil)
}

// SetSearchText changes the search text without touching the category filter
func (s *FilterService) SetSearchText(value string) {
	_ = s.Set(nil, &value)
}
