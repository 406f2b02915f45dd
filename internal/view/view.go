// Package view derives what the storefront shows from a catalog snapshot.
// Every function here is pure and recomputes from its arguments.
package view

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/Lixing-Zhang/meal-storefront/internal/models"
)

// NotApplicable is displayed for a category with no items
const NotApplicable = "N/A"

// FilteredItems returns the items matching filter in catalog order.
// Search is a case-insensitive substring match on the name.
func FilteredItems(items []models.MenuItem, filter models.FilterState) []models.MenuItem {
	search := strings.ToLower(filter.Search)
	category := filter.Category
	if category == "" {
		category = models.FilterAll
	}

	result := make([]models.MenuItem, 0, len(items))
	for _, item := range items {
		if !category.Matches(item.Category) {
			continue
		}
		if !strings.Contains(strings.ToLower(item.Name), search) {
			continue
		}
		result = append(result, item)
	}
	return result
}

// AveragePriceByCategory returns count and mean price for every category,
// in models.Categories order. The mean is 0 for an empty category and
// unparseable prices count as 0.
func AveragePriceByCategory(items []models.MenuItem) []models.CategoryStats {
	sums := make(map[models.Category]decimal.Decimal, len(models.Categories))
	counts := make(map[models.Category]int, len(models.Categories))

	for _, item := range items {
		if !item.Category.Valid() {
			continue
		}
		sums[item.Category] = sums[item.Category].Add(models.PriceOrZero(item.Price))
		counts[item.Category]++
	}

	stats := make([]models.CategoryStats, 0, len(models.Categories))
	for _, c := range models.Categories {
		s := models.CategoryStats{Category: c, Count: counts[c]}
		if s.Count > 0 {
			s.Average = sums[c].Div(decimal.NewFromInt(int64(s.Count))).InexactFloat64()
		}
		stats = append(stats, s)
	}
	return stats
}

// FormatAverage renders the average as "$9.00", or N/A when there are no items
func FormatAverage(s models.CategoryStats) string {
	if s.Count == 0 {
		return NotApplicable
	}
	return fmt.Sprintf("$%.2f", s.Average)
}

// CategoryLabel capitalizes a category or filter value for display
func CategoryLabel(value string) string {
	if value == "" {
		return value
	}
	return strings.ToUpper(value[:1]) + value[1:]
}
