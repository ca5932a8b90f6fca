package menu

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/tablebill/tablebill/internal/model"
)

// Header is the CSV header for menu.csv.
const Header = "category,name,unit_price"

const (
	numFields    = 3
	colCategory  = 0
	colName      = 1
	colUnitPrice = 2
)

// ReadEntries reads menu.csv. The header row is skipped.
func ReadEntries(r io.Reader) ([]model.MenuEntry, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading menu CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	var entries []model.MenuEntry
	for i, rec := range records[1:] {
		e, err := UnmarshalEntry(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// WriteEntries writes menu.csv, header included.
func WriteEntries(w io.Writer, entries []model.MenuEntry) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, e := range entries {
		if err := cw.Write(MarshalEntry(e)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// MarshalEntry converts a MenuEntry to a CSV row.
func MarshalEntry(e model.MenuEntry) []string {
	row := make([]string, numFields)
	row[colCategory] = string(e.Category)
	row[colName] = e.Name
	row[colUnitPrice] = e.UnitPrice.StringFixed(2)
	return row
}

// UnmarshalEntry converts a CSV row to a MenuEntry. Category slugs are
// accepted and normalized; unknown categories are left for validation.
func UnmarshalEntry(record []string) (model.MenuEntry, error) {
	if len(record) != numFields {
		return model.MenuEntry{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	price, err := decimal.NewFromString(strings.TrimSpace(record[colUnitPrice]))
	if err != nil {
		return model.MenuEntry{}, fmt.Errorf("parsing unit_price %q: %w", record[colUnitPrice], err)
	}

	category := model.Category(strings.TrimSpace(record[colCategory]))
	if c, ok := model.ParseCategory(record[colCategory]); ok {
		category = c
	}

	return model.MenuEntry{
		Category:  category,
		Name:      strings.TrimSpace(record[colName]),
		UnitPrice: price,
	}, nil
}
