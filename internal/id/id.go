package id

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatEntryID returns a menu entry ID like "beverage-01".
func FormatEntryID(categorySlug string, seq int) string {
	return fmt.Sprintf("%s-%02d", categorySlug, seq)
}

// ParseEntryID parses "main-course-03" into its category slug and sequence.
func ParseEntryID(id string) (categorySlug string, seq int, err error) {
	i := strings.LastIndex(id, "-")
	if i <= 0 || i == len(id)-1 {
		return "", 0, fmt.Errorf("invalid entry ID format: %q", id)
	}

	seq, err = strconv.Atoi(id[i+1:])
	if err != nil {
		return "", 0, fmt.Errorf("invalid sequence in entry ID %q: %w", id, err)
	}
	if seq < 1 {
		return "", 0, fmt.Errorf("invalid sequence in entry ID %q: must be positive", id)
	}

	return id[:i], seq, nil
}
