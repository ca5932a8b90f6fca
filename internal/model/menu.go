package model

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Category groups menu entries for presentation.
type Category string

const (
	CategoryBeverage   Category = "Beverage"
	CategoryAppetizer  Category = "Appetizer"
	CategoryMainCourse Category = "Main Course"
	CategoryDessert    Category = "Dessert"
)

// Categories lists every category in presentation order.
var Categories = []Category{
	CategoryBeverage,
	CategoryAppetizer,
	CategoryMainCourse,
	CategoryDessert,
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Slug returns the identifier form of a category.
// "Main Course" -> "main-course"
func (c Category) Slug() string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(string(c))), " ", "-")
}

// ParseCategory matches a category by display name or slug, ignoring case.
func ParseCategory(s string) (Category, bool) {
	s = strings.TrimSpace(s)
	for _, c := range Categories {
		if strings.EqualFold(s, string(c)) || strings.EqualFold(s, c.Slug()) {
			return c, true
		}
	}
	return "", false
}

// MenuEntry is a purchasable item. Entries never change once the catalog is built.
type MenuEntry struct {
	ID        string // assigned by the catalog, e.g. "beverage-01"
	Category  Category
	Name      string
	UnitPrice decimal.Decimal
}
