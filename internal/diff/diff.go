// Package diff commits the delta between the desired and the confirmed
// unlock state of a selection model.
package diff

import (
	"context"
	"fmt"

	"github.com/mbwilding/steam-achievement-manager/internal/achievement"
	"github.com/mbwilding/steam-achievement-manager/internal/catalog"
	"github.com/mbwilding/steam-achievement-manager/internal/logging"
	"github.com/mbwilding/steam-achievement-manager/internal/logging/events"
	"github.com/mbwilding/steam-achievement-manager/internal/ui/state"
)

// Partition splits items into names to unlock and names to lock again.
// Rows whose desired state matches the confirmed one appear in neither.
func Partition(items []achievement.Item) (toSet, toClear []string) {
	for _, item := range items {
		switch {
		case item.Selected && !item.Unlocked:
			toSet = append(toSet, item.Name)
		case !item.Selected && item.Unlocked:
			toClear = append(toClear, item.Name)
		}
	}
	return toSet, toClear
}

// Summary counts the outcome of one Process call.
type Summary struct {
	Set     int
	Cleared int
	Failed  int
	// Err is the last whole-batch failure, if any.
	Err error
}

// Succeeded is the number of rows brought in sync.
func (s Summary) Succeeded() int {
	return s.Set + s.Cleared
}

// Engine drives commits through a catalog client.
type Engine struct {
	Client catalog.Client
}

// New returns an engine for client.
func New(client catalog.Client) *Engine {
	return &Engine{Client: client}
}

// Process commits the outstanding delta of list and folds the results back
// into it. With nothing outstanding it neither calls the client nor touches
// the status line. Rows that fail keep their confirmed state, so calling
// Process again retries exactly those.
func (e *Engine) Process(ctx context.Context, list *state.List) Summary {
	toSet, toClear := Partition(list.Items)
	if len(toSet) == 0 && len(toClear) == 0 {
		return Summary{}
	}
	events.Commit.Partition(list.AppID, len(toSet), len(toClear))

	var sum Summary
	if len(toSet) > 0 {
		e.commit(ctx, list, toSet, false, &sum)
	}
	if len(toClear) > 0 {
		e.commit(ctx, list, toClear, true, &sum)
	}
	events.Commit.Result(list.AppID, sum.Set, sum.Cleared, sum.Failed)

	switch {
	case sum.Failed == 0 && sum.Succeeded() > 0:
		list.SetStatus(state.Success, fmt.Sprintf("✓ Successfully processed %d achievement(s)", sum.Succeeded()))
	case sum.Failed > 0:
		msg := fmt.Sprintf("⚠ Processed: %d success, %d failed", sum.Succeeded(), sum.Failed)
		if sum.Err != nil {
			msg = fmt.Sprintf("%s (%v)", msg, sum.Err)
		}
		list.SetStatus(state.Error, msg)
	}
	return sum
}

func (e *Engine) commit(ctx context.Context, list *state.List, names []string, clear bool, sum *Summary) {
	results, err := e.Client.Commit(ctx, list.AppID, names, clear)
	events.Commit.Batch(list.AppID, clear, len(names), err)
	if err != nil {
		logging.Error(fmt.Errorf("commit app %d: %w", list.AppID, err))
		sum.Err = err
		for _, name := range names {
			if idx := list.IndexOf(name); idx >= 0 {
				list.Items[idx].Status = achievement.Failed
				sum.Failed++
			}
		}
		return
	}

	reported := make(map[string]bool, len(results))
	for _, res := range results {
		reported[res.Name] = res.Success
	}
	for _, name := range names {
		idx := list.IndexOf(name)
		if idx < 0 {
			continue
		}
		item := &list.Items[idx]
		if reported[name] {
			item.Status = achievement.Success
			item.Unlocked = !clear
			if clear {
				sum.Cleared++
			} else {
				sum.Set++
			}
			continue
		}
		item.Status = achievement.Failed
		sum.Failed++
	}
}
