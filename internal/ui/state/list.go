// Package state holds the selection model: the achievement rows of one
// application together with the cursor, viewport, sort preference and the
// transient status line.
package state

import (
	"github.com/mbwilding/steam-achievement-manager/internal/achievement"
	"github.com/mbwilding/steam-achievement-manager/internal/catalog"
	"github.com/mbwilding/steam-achievement-manager/internal/prefs"
)

// PageSize is the distance covered by PageUp and PageDown.
const PageSize = 10

// StatusLevel colours the status line.
type StatusLevel int

const (
	Info StatusLevel = iota
	Success
	Error
)

func (l StatusLevel) String() string {
	switch l {
	case Success:
		return "success"
	case Error:
		return "error"
	default:
		return "info"
	}
}

// Status is the transient message shown under the list.
type Status struct {
	Level StatusLevel
	Text  string
}

// Empty reports whether there is nothing to show.
func (s Status) Empty() bool {
	return s.Text == ""
}

// List is the selection model for one application. It is owned by the event
// loop and never accessed concurrently.
type List struct {
	AppID          uint32
	Items          []achievement.Item
	Cursor         int
	ViewportOffset int
	Sort           achievement.SortConfig
	Status         Status
	Prefs          prefs.Store
}

// NewList builds a model from a fetched snapshot and sorts it under cfg.
// Every item starts selected exactly when it is unlocked.
func NewList(appID uint32, snap catalog.Snapshot, cfg achievement.SortConfig, store prefs.Store) *List {
	l := &List{
		AppID: appID,
		Items: achievement.FromParallel(snap.Names, snap.Unlocked, snap.Percentages),
		Sort:  cfg,
		Prefs: store,
	}
	l.SortAchievements()
	return l
}

// Len returns the number of rows.
func (l *List) Len() int {
	return len(l.Items)
}

// Current returns the row under the cursor.
func (l *List) Current() (achievement.Item, bool) {
	if l.Cursor < 0 || l.Cursor >= len(l.Items) {
		return achievement.Item{}, false
	}
	return l.Items[l.Cursor], true
}

// IndexOf returns the row index for name, or -1.
func (l *List) IndexOf(name string) int {
	for i, item := range l.Items {
		if item.Name == name {
			return i
		}
	}
	return -1
}

// Counts returns the unlocked and total row counts.
func (l *List) Counts() (done, total int) {
	return achievement.Counts(l.Items)
}

// SetStatus replaces the status line.
func (l *List) SetStatus(level StatusLevel, text string) {
	l.Status = Status{Level: level, Text: text}
}

// ClearStatus empties the status line.
func (l *List) ClearStatus() {
	l.Status = Status{}
}
