package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCategorySlug(t *testing.T) {
	tests := []struct {
		category Category
		want     string
	}{
		{CategoryBeverage, "beverage"},
		{CategoryAppetizer, "appetizer"},
		{CategoryMainCourse, "main-course"},
		{CategoryDessert, "dessert"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.category.Slug(), "Slug(%q)", tt.category)
	}
}

func TestParseCategory(t *testing.T) {
	tests := []struct {
		input string
		want  Category
		ok    bool
	}{
		{"Beverage", CategoryBeverage, true},
		{"dessert", CategoryDessert, true},
		{"main-course", CategoryMainCourse, true},
		{"MAIN COURSE", CategoryMainCourse, true},
		{" appetizer ", CategoryAppetizer, true},
		{"soup", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := ParseCategory(tt.input)
		assert.Equal(t, tt.ok, ok, "ParseCategory(%q)", tt.input)
		assert.Equal(t, tt.want, got, "ParseCategory(%q)", tt.input)
	}
}

func TestCategoryValid(t *testing.T) {
	for _, c := range Categories {
		assert.True(t, c.Valid(), "%q should be valid", c)
	}
	assert.False(t, Category("Soup").Valid())
}

func TestLineTotal(t *testing.T) {
	line := OrderLine{Name: "Soda", UnitPrice: decimal.RequireFromString("1.75"), Quantity: 2}
	assert.True(t, line.LineTotal().Equal(decimal.RequireFromString("3.50")), "got %s", line.LineTotal())
}
