package models

import "strings"

// Category is the closed classification of a menu item
type Category string

const (
	CategoryStarter Category = "starter"
	CategoryMain    Category = "main"
	CategoryDessert Category = "dessert"
)

// Categories lists every valid category in display order
var Categories = []Category{CategoryStarter, CategoryMain, CategoryDessert}

// Valid reports whether c is one of the closed set of categories
func (c Category) Valid() bool {
	switch c {
	case CategoryStarter, CategoryMain, CategoryDessert:
		return true
	}
	return false
}

// ParseCategory normalizes raw input into a Category.
// The second return value is false for anything outside the closed set.
func ParseCategory(raw string) (Category, bool) {
	c := Category(strings.ToLower(strings.TrimSpace(raw)))
	return c, c.Valid()
}

// MenuItem represents one catalog entry.
// Price is kept as text and parsed on demand.
type MenuItem struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Price       string   `json:"price"`
	Image       string   `json:"image"`
	Description string   `json:"description"`
	Category    Category `json:"category"`
}

// Draft holds user-supplied fields for a new menu item
type Draft struct {
	Name        string `json:"name"`
	Price       string `json:"price"`
	Image       string `json:"image"`
	Description string `json:"description"`
	Category    string `json:"category"`
}
