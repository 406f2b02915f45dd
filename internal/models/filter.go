package models

import "strings"

// CategoryFilter selects which category the derived view shows.
// FilterAll is the catch-all value.
type CategoryFilter string

const FilterAll CategoryFilter = "all"

// legacyCategoryFastFood is the retired category label. Items carrying it are
// rewritten to main on load and it is never accepted as live input.
const legacyCategoryFastFood = "fastfood"

// IsLegacyCategory reports whether raw is the retired category label
func IsLegacyCategory(raw string) bool {
	return strings.ToLower(strings.TrimSpace(raw)) == legacyCategoryFastFood
}

// ParseCategoryFilter accepts "all" or any valid Category
func ParseCategoryFilter(raw string) (CategoryFilter, bool) {
	v := strings.ToLower(strings.TrimSpace(raw))
	if v == string(FilterAll) {
		return FilterAll, true
	}
	if c, ok := ParseCategory(v); ok {
		return CategoryFilter(c), true
	}
	return "", false
}

// Matches reports whether an item of category c passes the filter
func (f CategoryFilter) Matches(c Category) bool {
	return f == FilterAll || Category(f) == c
}

// FilterState is the pair of view parameters applied to the catalog
type FilterState struct {
	Category CategoryFilter `json:"category"`
	Search   string         `json:"search"`
}

// DefaultFilterState shows everything
func DefaultFilterState() FilterState {
	return FilterState{Category: FilterAll}
}

// CategoryStats is the per-category aggregate shown on the home screen
type CategoryStats struct {
	Category Category `json:"category"`
	Count    int      `json:"count"`
	Average  float64  `json:"average"`
}
