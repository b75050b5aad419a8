// Package catalog defines the boundary to the achievement backend: fetching an
// application's achievements and committing set/clear deltas.
package catalog

import (
	"context"
	"errors"
	"fmt"
)

var (
	ErrNotOwned           = errors.New("not owned")
	ErrNoAchievements     = errors.New("no achievements")
	ErrNameFetchFailed    = errors.New("name fetch failed")
	ErrBackendUnavailable = errors.New("backend unavailable")
)

// Snapshot is the column-oriented result of a fetch. The three slices are
// parallel and of equal length.
type Snapshot struct {
	Names       []string
	Unlocked    []bool
	Percentages []float32
}

// Len returns the number of achievements in the snapshot.
func (s Snapshot) Len() int { return len(s.Names) }

// Result is the outcome for one name within a commit.
type Result struct {
	Name    string
	Success bool
}

// Client is implemented by achievement backends.
type Client interface {
	// Fetch loads every achievement of appID. Any error means no list.
	Fetch(ctx context.Context, appID uint32) (Snapshot, error)
	// Commit sets (clear=false) or clears (clear=true) the named achievements.
	// A returned error applies to the whole batch.
	Commit(ctx context.Context, appID uint32, names []string, clear bool) ([]Result, error)
}

// LoadError describes why an application could not be loaded. It matches the
// sentinel errors with errors.Is.
type LoadError struct {
	AppID uint32
	Kind  error
	Err   error
}

func (e *LoadError) Error() string {
	switch e.Kind {
	case ErrNotOwned:
		return fmt.Sprintf("App %d not in your library", e.AppID)
	case ErrNoAchievements:
		return "No achievements were found"
	case ErrNameFetchFailed:
		return "Failed to get achievement names"
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("App %d could not be loaded", e.AppID)
}

func (e *LoadError) Is(target error) bool {
	return target == e.Kind
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Unavailable wraps err so it matches ErrBackendUnavailable.
func Unavailable(err error) error {
	if err == nil {
		return ErrBackendUnavailable
	}
	return fmt.Errorf("%w: %v", ErrBackendUnavailable, err)
}
