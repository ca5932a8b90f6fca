package menu

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/tablebill/tablebill/internal/id"
	"github.com/tablebill/tablebill/internal/model"
)

var (
	// ErrUnknownEntry is returned when a reference matches no menu entry.
	ErrUnknownEntry = errors.New("unknown menu entry")
	// ErrAmbiguousName is returned when a name matches entries in several categories.
	ErrAmbiguousName = errors.New("ambiguous menu entry name")
)

// Catalog is the read-only set of menu entries, grouped by category.
type Catalog struct {
	entries    []model.MenuEntry
	byID       map[string]model.MenuEntry
	byCategory map[model.Category][]model.MenuEntry
}

// NewCatalog validates entries and assigns each an ID of the form
// "<category-slug>-<NN>", numbered in input order within its category.
func NewCatalog(entries []model.MenuEntry) (*Catalog, error) {
	if verrs := ValidateEntries(entries); len(verrs) > 0 {
		msgs := make([]string, len(verrs))
		for i, ve := range verrs {
			msgs[i] = ve.Error()
		}
		return nil, fmt.Errorf("invalid menu: %s", strings.Join(msgs, "; "))
	}

	c := &Catalog{
		entries:    make([]model.MenuEntry, 0, len(entries)),
		byID:       make(map[string]model.MenuEntry, len(entries)),
		byCategory: make(map[model.Category][]model.MenuEntry),
	}
	for _, e := range entries {
		e.ID = id.FormatEntryID(e.Category.Slug(), len(c.byCategory[e.Category])+1)
		c.entries = append(c.entries, e)
		c.byID[e.ID] = e
		c.byCategory[e.Category] = append(c.byCategory[e.Category], e)
	}
	return c, nil
}

// Load reads a menu CSV file and builds a Catalog from it.
func Load(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening menu: %w", err)
	}
	defer f.Close()

	entries, err := ReadEntries(f)
	if err != nil {
		return nil, fmt.Errorf("reading menu: %w", err)
	}
	return NewCatalog(entries)
}

// Save writes the catalog as a menu CSV file.
func (c *Catalog) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating menu file: %w", err)
	}
	defer f.Close()

	if err := WriteEntries(f, c.All()); err != nil {
		return fmt.Errorf("writing menu: %w", err)
	}
	return nil
}

// All returns every entry in load order.
func (c *Catalog) All() []model.MenuEntry {
	return slices.Clone(c.entries)
}

// Len returns the number of entries.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// Categories returns the non-empty categories in presentation order.
func (c *Catalog) Categories() []model.Category {
	var result []model.Category
	for _, cat := range model.Categories {
		if len(c.byCategory[cat]) > 0 {
			result = append(result, cat)
		}
	}
	return result
}

// ByCategory returns the ordered entries for one category selector.
func (c *Catalog) ByCategory(category model.Category) []model.MenuEntry {
	return slices.Clone(c.byCategory[category])
}

// Get returns an entry by ID.
func (c *Catalog) Get(entryID string) (model.MenuEntry, bool) {
	e, ok := c.byID[entryID]
	return e, ok
}

// FindByName returns all entries whose name matches exactly (case-sensitive).
func (c *Catalog) FindByName(name string) []model.MenuEntry {
	var result []model.MenuEntry
	for _, e := range c.entries {
		if e.Name == name {
			result = append(result, e)
		}
	}
	return result
}

// Resolve looks up ref as an entry ID first, then as a unique entry name.
// A ref shaped like an ID of a known category is never matched by name.
func (c *Catalog) Resolve(ref string) (model.MenuEntry, error) {
	if e, ok := c.byID[ref]; ok {
		return e, nil
	}
	if slug, _, err := id.ParseEntryID(ref); err == nil && isCategorySlug(slug) {
		return model.MenuEntry{}, fmt.Errorf("%w: no entry with ID %q", ErrUnknownEntry, ref)
	}

	matches := c.FindByName(ref)
	switch len(matches) {
	case 0:
		return model.MenuEntry{}, fmt.Errorf("%w: %q", ErrUnknownEntry, ref)
	case 1:
		return matches[0], nil
	default:
		ids := make([]string, len(matches))
		for i, m := range matches {
			ids[i] = m.ID
		}
		return model.MenuEntry{}, fmt.Errorf("%w: %q matches %s", ErrAmbiguousName, ref, strings.Join(ids, ", "))
	}
}

func isCategorySlug(slug string) bool {
	for _, cat := range model.Categories {
		if cat.Slug() == slug {
			return true
		}
	}
	return false
}
