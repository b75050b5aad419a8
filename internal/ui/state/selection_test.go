package state

import (
	"errors"
	"testing"

	"github.com/mbwilding/steam-achievement-manager/internal/achievement"
	"github.com/mbwilding/steam-achievement-manager/internal/catalog"
	"github.com/mbwilding/steam-achievement-manager/internal/prefs"
)

func TestNewListSortsAndMirrorsUnlocked(t *testing.T) {
	snap := catalog.Snapshot{
		Names:       []string{"low", "high", "mid"},
		Unlocked:    []bool{false, true, false},
		Percentages: []float32{1, 90, 40},
	}
	l := NewList(440, snap, achievement.DefaultSortConfig(), nil)
	if l.Items[0].Name != "high" || l.Items[2].Name != "low" {
		t.Fatalf("expected percentage descending order, got %+v", l.Items)
	}
	for _, item := range l.Items {
		if item.Selected != item.Unlocked || item.Status != achievement.Unchanged {
			t.Fatalf("expected fresh item state, got %+v", item)
		}
	}
	if done, total := l.Counts(); done != 1 || total != 3 {
		t.Fatalf("expected 1/3, got %d/%d", done, total)
	}
}

func TestToggleSelection(t *testing.T) {
	l := newTestList("a", "b")
	l.Cursor = 1
	l.ToggleSelection()
	if !l.Items[1].Selected || l.Items[0].Selected {
		t.Fatalf("expected only b selected, got %+v", l.Items)
	}
	l.ToggleSelection()
	if l.Items[1].Selected {
		t.Fatalf("expected b deselected")
	}
	empty := newTestList()
	empty.ToggleSelection()
}

func TestSelectAndDeselectAll(t *testing.T) {
	l := newTestList("a", "b", "c")
	l.Items[1].Unlocked = true
	l.SelectAll()
	for _, item := range l.Items {
		if !item.Selected {
			t.Fatalf("expected every item selected, got %+v", item)
		}
	}
	l.DeselectAll()
	for _, item := range l.Items {
		if item.Selected {
			t.Fatalf("expected every item deselected, got %+v", item)
		}
	}
	if !l.Items[1].Unlocked {
		t.Fatalf("selection must not touch unlocked state")
	}
}

func TestSearchFirstMatch(t *testing.T) {
	l := newTestList("Kill Boss", "Head of the Class", "World Traveler")
	if !l.SearchFirstMatch("  CLASS ") {
		t.Fatalf("expected a match")
	}
	if l.Cursor != 1 {
		t.Fatalf("expected cursor 1, got %d", l.Cursor)
	}
	if !l.SearchFirstMatch("wt") {
		t.Fatalf("expected subsequence match")
	}
	if l.Cursor != 2 {
		t.Fatalf("expected cursor 2, got %d", l.Cursor)
	}
}

func TestSearchFirstMatchMisses(t *testing.T) {
	l := newTestList("abc", "def")
	l.Cursor = 1
	for _, q := range []string{"", "   ", "xyz"} {
		if l.SearchFirstMatch(q) {
			t.Fatalf("expected no match for %q", q)
		}
	}
	if l.Cursor != 1 {
		t.Fatalf("expected cursor unchanged, got %d", l.Cursor)
	}
}

func TestSearchTiesKeepFirst(t *testing.T) {
	l := newTestList("zed one", "zed two")
	l.Cursor = 1
	if !l.SearchFirstMatch("zed") {
		t.Fatalf("expected a match")
	}
	// Shorter haystacks win; equal lengths keep the first.
	if l.Cursor != 0 {
		t.Fatalf("expected cursor 0, got %d", l.Cursor)
	}
}

func TestSortAchievementsLeavesCursorIndex(t *testing.T) {
	l := newTestList("b", "a", "c")
	l.Sort = achievement.SortConfig{Column: achievement.ByName, Order: achievement.Ascending}
	l.Cursor = 2
	l.SortAchievements()
	if l.Cursor != 2 || l.Items[2].Name != "c" {
		t.Fatalf("expected cursor index 2 on c, got %d on %s", l.Cursor, l.Items[l.Cursor].Name)
	}
}

func TestSetSortColumnFollowsItemAndPersists(t *testing.T) {
	store := &prefs.Memory{}
	l := newTestList("b", "a", "c")
	l.Items[0].Percentage = 50
	l.Items[1].Percentage = 10
	l.Items[2].Percentage = 90
	l.Prefs = store
	l.Cursor = 0 // "b"

	l.SetSortColumn(achievement.ByName)
	if l.Items[0].Name != "c" || l.Items[2].Name != "a" {
		t.Fatalf("expected name descending, got %+v", l.Items)
	}
	if l.Items[l.Cursor].Name != "b" {
		t.Fatalf("expected cursor to follow b, got %s", l.Items[l.Cursor].Name)
	}
	if store.Saves != 1 || store.Load().Column != achievement.ByName {
		t.Fatalf("expected preference saved, got %+v after %d saves", store.Load(), store.Saves)
	}

	l.ToggleSortOrder()
	if l.Items[0].Name != "a" || l.Items[l.Cursor].Name != "b" {
		t.Fatalf("expected ascending with cursor on b, got %+v cursor %d", l.Items, l.Cursor)
	}
	if store.Load().Order != achievement.Ascending {
		t.Fatalf("expected ascending saved")
	}
}

func TestSortPersistenceFailureIsIgnored(t *testing.T) {
	store := &prefs.Memory{Err: errors.New("read-only")}
	l := newTestList("b", "a")
	l.Prefs = store
	l.SetSortColumn(achievement.ByName)
	if l.Sort.Column != achievement.ByName || l.Items[0].Name != "b" {
		t.Fatalf("expected sort applied despite save failure, got %+v", l.Items)
	}
}

func TestToggleSortOrderTwiceRestoresSequence(t *testing.T) {
	l := newTestList("d", "b", "a", "c")
	l.Sort = achievement.SortConfig{Column: achievement.ByName, Order: achievement.Ascending}
	l.SortAchievements()
	before := append([]achievement.Item(nil), l.Items...)
	l.ToggleSortOrder()
	l.ToggleSortOrder()
	for i := range before {
		if before[i].Name != l.Items[i].Name {
			t.Fatalf("expected %v, got %v", before, l.Items)
		}
	}
}

func TestStatus(t *testing.T) {
	l := newTestList()
	if !l.Status.Empty() {
		t.Fatalf("expected empty status")
	}
	l.SetStatus(Error, "boom")
	if l.Status.Level != Error || l.Status.Text != "boom" {
		t.Fatalf("unexpected status %+v", l.Status)
	}
	l.ClearStatus()
	if !l.Status.Empty() {
		t.Fatalf("expected cleared status")
	}
}
