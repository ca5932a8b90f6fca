package menu

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/tablebill/tablebill/internal/model"
)

// ValidationError describes one rejected menu entry.
type ValidationError struct {
	Index       int // 1-based position in the input
	Name        string
	Description string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("entry %d [%s]: %s", e.Index, e.Name, e.Description)
}

// ValidateEntries checks names, categories, prices, and (category, name) uniqueness.
func ValidateEntries(entries []model.MenuEntry) []ValidationError {
	var errs []ValidationError
	hundred := decimal.NewFromInt(100)
	seen := make(map[string]int)

	for i, e := range entries {
		idx := i + 1

		if strings.TrimSpace(e.Name) == "" {
			errs = append(errs, ValidationError{Index: idx, Name: e.Name, Description: "name is empty"})
		}

		if !e.Category.Valid() {
			errs = append(errs, ValidationError{
				Index:       idx,
				Name:        e.Name,
				Description: fmt.Sprintf("unknown category %q", e.Category),
			})
		}

		if e.UnitPrice.IsNegative() {
			errs = append(errs, ValidationError{
				Index:       idx,
				Name:        e.Name,
				Description: fmt.Sprintf("price %s is negative", e.UnitPrice),
			})
		}
		if !e.UnitPrice.Mul(hundred).Equal(e.UnitPrice.Mul(hundred).Floor()) {
			errs = append(errs, ValidationError{
				Index:       idx,
				Name:        e.Name,
				Description: fmt.Sprintf("price %s has more than 2 decimal places", e.UnitPrice),
			})
		}

		key := string(e.Category) + "\x00" + e.Name
		if first, dup := seen[key]; dup {
			errs = append(errs, ValidationError{
				Index:       idx,
				Name:        e.Name,
				Description: fmt.Sprintf("duplicate of entry %d in %s", first, e.Category),
			})
			continue
		}
		seen[key] = idx
	}

	return errs
}
