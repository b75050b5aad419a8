package state

import (
	"strings"

	"github.com/mbwilding/steam-achievement-manager/internal/achievement"
	"github.com/mbwilding/steam-achievement-manager/internal/logging/events"
	"github.com/mbwilding/steam-achievement-manager/internal/match"
)

// ToggleSelection flips the desired state of the row under the cursor.
func (l *List) ToggleSelection() {
	if l.Cursor < 0 || l.Cursor >= len(l.Items) {
		return
	}
	l.Items[l.Cursor].Selected = !l.Items[l.Cursor].Selected
}

// SelectAll marks every row as desired unlocked.
func (l *List) SelectAll() {
	for i := range l.Items {
		l.Items[i].Selected = true
	}
}

// DeselectAll marks every row as desired locked.
func (l *List) DeselectAll() {
	for i := range l.Items {
		l.Items[i].Selected = false
	}
}

// SearchFirstMatch moves the cursor to the best fuzzy match for query and
// reports whether anything matched. Blank queries never match.
func (l *List) SearchFirstMatch(query string) bool {
	if strings.TrimSpace(query) == "" {
		return false
	}
	names := make([]string, len(l.Items))
	for i, item := range l.Items {
		names[i] = item.Name
	}
	idx, ok := match.Best(names, query)
	if !ok {
		return false
	}
	l.JumpTo(idx)
	return true
}

// SortAchievements reorders the rows under the current sort preference. The
// cursor index is left as is.
func (l *List) SortAchievements() {
	achievement.Sort(l.Items, l.Sort)
}

// SetSortColumn changes the sort key, re-sorts and persists the preference.
// The cursor keeps pointing at the same achievement.
func (l *List) SetSortColumn(col achievement.Column) {
	l.Sort.Column = col
	l.resort()
}

// ToggleSortOrder flips the sort direction, re-sorts and persists the
// preference. The cursor keeps pointing at the same achievement.
func (l *List) ToggleSortOrder() {
	l.Sort.Order = l.Sort.Order.Toggle()
	l.resort()
}

func (l *List) resort() {
	current, ok := l.Current()
	l.SortAchievements()
	if ok {
		if idx := l.IndexOf(current.Name); idx >= 0 {
			l.Cursor = idx
		}
	}
	events.UI.Sort(l.Sort.Column.String(), l.Sort.Order.String())
	if l.Prefs == nil {
		return
	}
	if err := l.Prefs.Save(l.Sort); err != nil {
		events.Prefs.SaveFailed(err)
	}
}
