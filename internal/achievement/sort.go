package achievement

import (
	"fmt"
	"sort"
	"strings"
)

// Column selects the sort key.
type Column int

const (
	ByPercentage Column = iota
	ByName
)

func (c Column) String() string {
	if c == ByName {
		return "Name"
	}
	return "Percentage"
}

// ParseColumn accepts the persisted column name, case-insensitively.
func ParseColumn(s string) (Column, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "percentage":
		return ByPercentage, nil
	case "name":
		return ByName, nil
	}
	return ByPercentage, fmt.Errorf("unknown sort column %q", s)
}

// Order is the sort direction.
type Order int

const (
	Descending Order = iota
	Ascending
)

func (o Order) String() string {
	if o == Ascending {
		return "Ascending"
	}
	return "Descending"
}

// Toggle returns the opposite direction.
func (o Order) Toggle() Order {
	if o == Ascending {
		return Descending
	}
	return Ascending
}

// ParseOrder accepts the persisted order name, case-insensitively.
func ParseOrder(s string) (Order, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ascending":
		return Ascending, nil
	case "descending":
		return Descending, nil
	}
	return Descending, fmt.Errorf("unknown sort order %q", s)
}

// SortConfig is the user's sort preference. It outlives any single item list.
type SortConfig struct {
	Column Column
	Order  Order
}

// DefaultSortConfig sorts by global percentage, most common first.
func DefaultSortConfig() SortConfig {
	return SortConfig{Column: ByPercentage, Order: Descending}
}

// Compare orders a before b (negative), after (positive) or equal (zero)
// under cfg. Percentages that cannot be ordered (NaN) compare equal.
func Compare(a, b Item, cfg SortConfig) int {
	var c int
	switch cfg.Column {
	case ByName:
		c = strings.Compare(a.Name, b.Name)
	default:
		switch {
		case a.Percentage < b.Percentage:
			c = -1
		case a.Percentage > b.Percentage:
			c = 1
		}
	}
	if cfg.Order == Descending {
		c = -c
	}
	return c
}

// Sort reorders items in place. The sort is stable, so repeating it under the
// same configuration leaves the sequence unchanged.
func Sort(items []Item, cfg SortConfig) {
	sort.SliceStable(items, func(i, j int) bool {
		return Compare(items[i], items[j], cfg) < 0
	})
}
