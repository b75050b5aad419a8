// Package achievement holds the achievement row type together with the sort
// configuration and the pure ordering and rarity functions that operate on it.
package achievement

// Status reports the outcome of the most recent commit that touched an item.
// It only drives display; the pending delta is always Selected != Unlocked.
type Status int

const (
	Unchanged Status = iota
	Success
	Failed
)

func (s Status) String() string {
	switch s {
	case Success:
		return "success"
	case Failed:
		return "failed"
	default:
		return "unchanged"
	}
}

// Item is a single named flag for one application.
type Item struct {
	Name       string
	Selected   bool
	Unlocked   bool
	Percentage float32
	Status     Status
}

// Pending reports whether the desired state differs from the last confirmed one.
func (i Item) Pending() bool {
	return i.Selected != i.Unlocked
}

// FromParallel builds items from the column slices a catalog returns. Every
// item starts selected exactly when it is unlocked, so no delta is pending.
func FromParallel(names []string, unlocked []bool, percentages []float32) []Item {
	items := make([]Item, len(names))
	for i, name := range names {
		var u bool
		if i < len(unlocked) {
			u = unlocked[i]
		}
		var pct float32
		if i < len(percentages) {
			pct = percentages[i]
		}
		items[i] = Item{Name: name, Selected: u, Unlocked: u, Percentage: pct}
	}
	return items
}

// Counts returns the number of unlocked items and the total.
func Counts(items []Item) (done, total int) {
	for _, item := range items {
		if item.Unlocked {
			done++
		}
	}
	return done, len(items)
}
