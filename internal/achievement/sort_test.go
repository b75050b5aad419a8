package achievement

import (
	"math"
	"reflect"
	"testing"
)

func names(items []Item) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.Name
	}
	return out
}

func sample() []Item {
	return []Item{
		{Name: "Bravo", Percentage: 12.5},
		{Name: "alpha", Percentage: 80},
		{Name: "Charlie", Percentage: 12.5},
		{Name: "Delta", Percentage: 0.4},
	}
}

func TestSortByPercentageDescendingIsStable(t *testing.T) {
	items := sample()
	Sort(items, SortConfig{Column: ByPercentage, Order: Descending})
	want := []string{"alpha", "Bravo", "Charlie", "Delta"}
	if got := names(items); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestSortByNameAscendingIsByteOrder(t *testing.T) {
	items := sample()
	Sort(items, SortConfig{Column: ByName, Order: Ascending})
	want := []string{"Bravo", "Charlie", "Delta", "alpha"}
	if got := names(items); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestSortIsIdempotent(t *testing.T) {
	for _, cfg := range []SortConfig{
		{Column: ByPercentage, Order: Ascending},
		{Column: ByPercentage, Order: Descending},
		{Column: ByName, Order: Ascending},
		{Column: ByName, Order: Descending},
	} {
		once := sample()
		Sort(once, cfg)
		twice := append([]Item(nil), once...)
		Sort(twice, cfg)
		if !reflect.DeepEqual(names(once), names(twice)) {
			t.Fatalf("%v/%v: expected idempotent sort, got %v then %v", cfg.Column, cfg.Order, names(once), names(twice))
		}
	}
}

func TestToggleOrderTwiceRestoresSequence(t *testing.T) {
	items := []Item{{Name: "c"}, {Name: "a"}, {Name: "b"}}
	cfg := SortConfig{Column: ByName, Order: Ascending}
	Sort(items, cfg)
	before := names(items)
	cfg.Order = cfg.Order.Toggle()
	Sort(items, cfg)
	cfg.Order = cfg.Order.Toggle()
	Sort(items, cfg)
	if got := names(items); !reflect.DeepEqual(got, before) {
		t.Fatalf("expected %v after double toggle, got %v", before, got)
	}
}

func TestCompareTreatsNaNAsEqual(t *testing.T) {
	nan := Item{Name: "nan", Percentage: float32(math.NaN())}
	other := Item{Name: "other", Percentage: 5}
	cfg := DefaultSortConfig()
	if c := Compare(nan, other, cfg); c != 0 {
		t.Fatalf("expected NaN to compare equal, got %d", c)
	}
	items := []Item{other, nan, {Name: "x", Percentage: 9}}
	Sort(items, cfg)
	if len(items) != 3 {
		t.Fatalf("expected sort to keep all items, got %d", len(items))
	}
}

func TestParseColumnAndOrder(t *testing.T) {
	if c, err := ParseColumn("name"); err != nil || c != ByName {
		t.Fatalf("expected ByName, got %v (%v)", c, err)
	}
	if c, err := ParseColumn(" Percentage "); err != nil || c != ByPercentage {
		t.Fatalf("expected ByPercentage, got %v (%v)", c, err)
	}
	if _, err := ParseColumn("rarity"); err == nil {
		t.Fatalf("expected error for unknown column")
	}
	if o, err := ParseOrder("Ascending"); err != nil || o != Ascending {
		t.Fatalf("expected Ascending, got %v (%v)", o, err)
	}
	if _, err := ParseOrder("sideways"); err == nil {
		t.Fatalf("expected error for unknown order")
	}
}
