// Package textutil provides shared helpers for text applets.
package textutil

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrEmptyList is returned when a field list has no entries.
var ErrEmptyList = errors.New("missing list")

// ParseFieldList parses a comma-separated list of 1-based field numbers.
// Order and duplicates are kept. Every item must be an integer; values
// below 1 or beyond the int range parse but never select a field.
func ParseFieldList(spec string) ([]int, error) {
	if spec == "" {
		return nil, ErrEmptyList
	}
	parts := strings.Split(spec, ",")
	fields := make([]int, 0, len(parts))
	for _, part := range parts {
		n, err := strconv.Atoi(part)
		if errors.Is(err, strconv.ErrRange) {
			// Too large for any line; kept as a position that selects nothing.
			n = 0
		} else if err != nil {
			return nil, fmt.Errorf("invalid field number %q: %w", part, err)
		}
		fields = append(fields, n)
	}
	return fields, nil
}

// SelectFields returns parts[f-1] for each f in fields, skipping
// positions outside parts.
func SelectFields(parts []string, fields []int) []string {
	selected := make([]string, 0, len(fields))
	for _, f := range fields {
		if f < 1 || f > len(parts) {
			continue
		}
		selected = append(selected, parts[f-1])
	}
	return selected
}

