package menu

import (
	"github.com/shopspring/decimal"

	"github.com/tablebill/tablebill/internal/model"
)

// DefaultEntries returns the built-in restaurant menu. IDs are left empty;
// NewCatalog assigns them.
func DefaultEntries() []model.MenuEntry {
	return []model.MenuEntry{
		entry(model.CategoryBeverage, "Soda", "1.75"),
		entry(model.CategoryBeverage, "Coffee", "2.50"),
		entry(model.CategoryBeverage, "Tea", "2.00"),
		entry(model.CategoryBeverage, "Juice", "3.00"),
		entry(model.CategoryBeverage, "Mango Lassi", "5.00"),

		entry(model.CategoryAppetizer, "Veg Kofta", "9.00"),
		entry(model.CategoryAppetizer, "Veg Mix Curry", "11.75"),
		entry(model.CategoryAppetizer, "Paneer Curry", "12.75"),
		entry(model.CategoryAppetizer, "Paneer 65", "11.00"),
		entry(model.CategoryAppetizer, "Chicken Korma", "10.50"),
		entry(model.CategoryAppetizer, "Chicken Curry", "11.75"),
		entry(model.CategoryAppetizer, "Chicken 65", "13.75"),
		entry(model.CategoryAppetizer, "Kadai Chicken", "14.75"),
		entry(model.CategoryAppetizer, "Samosa Chat", "8.75"),

		entry(model.CategoryMainCourse, "Veg Biryani", "18.50"),
		entry(model.CategoryMainCourse, "Chicken Dum Biryani", "14.25"),
		entry(model.CategoryMainCourse, "Butter Chicken and Rice", "16.00"),
		entry(model.CategoryMainCourse, "Daal Makhani and Rice", "12.00"),
		entry(model.CategoryMainCourse, "Paneer Curry and Butter Naan", "12.00"),
		entry(model.CategoryMainCourse, "Makhani and Butter", "12.00"),

		entry(model.CategoryDessert, "Ice Cream", "4.00"),
		entry(model.CategoryDessert, "Mango Rasmalai", "5.50"),
		entry(model.CategoryDessert, "Gulab Jamun", "4.75"),
	}
}

// Default returns a catalog over DefaultEntries.
func Default() *Catalog {
	c, err := NewCatalog(DefaultEntries())
	if err != nil {
		panic("built-in menu is invalid: " + err.Error())
	}
	return c
}

func entry(c model.Category, name, price string) model.MenuEntry {
	return model.MenuEntry{Category: c, Name: name, UnitPrice: decimal.RequireFromString(price)}
}
