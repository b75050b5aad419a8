// Package testutil holds fakes and fixtures shared by package tests.
package testutil

import (
	"context"
	"sync"

	"github.com/mbwilding/steam-achievement-manager/internal/catalog"
)

// CommitCall records one FakeCatalog.Commit invocation.
type CommitCall struct {
	AppID uint32
	Names []string
	Clear bool
}

// FakeCatalog is a scripted catalog.Client. Successful commits update the
// stored snapshot so a later Fetch sees them.
type FakeCatalog struct {
	mu sync.Mutex

	Apps      map[uint32]catalog.Snapshot
	FetchErrs map[uint32]error
	// SetErr and ClearErr fail a whole set or clear batch.
	SetErr   error
	ClearErr error
	// Reject reports Success=false for these names.
	Reject map[string]bool
	// Omit leaves these names out of the result slice.
	Omit map[string]bool

	Fetches []uint32
	Commits []CommitCall
}

var _ catalog.Client = (*FakeCatalog)(nil)

// NewFakeCatalog returns an empty fake.
func NewFakeCatalog() *FakeCatalog {
	return &FakeCatalog{
		Apps:      map[uint32]catalog.Snapshot{},
		FetchErrs: map[uint32]error{},
		Reject:    map[string]bool{},
		Omit:      map[string]bool{},
	}
}

// AddApp registers appID with parallel name/unlocked/percentage columns.
func (f *FakeCatalog) AddApp(appID uint32, names []string, unlocked []bool, percentages []float32) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Apps[appID] = catalog.Snapshot{Names: names, Unlocked: unlocked, Percentages: percentages}
}

func (f *FakeCatalog) Fetch(_ context.Context, appID uint32) (catalog.Snapshot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Fetches = append(f.Fetches, appID)
	if err := f.FetchErrs[appID]; err != nil {
		return catalog.Snapshot{}, err
	}
	snap, ok := f.Apps[appID]
	if !ok {
		return catalog.Snapshot{}, &catalog.LoadError{AppID: appID, Kind: catalog.ErrNotOwned}
	}
	if snap.Len() == 0 {
		return catalog.Snapshot{}, &catalog.LoadError{AppID: appID, Kind: catalog.ErrNoAchievements}
	}
	return catalog.Snapshot{
		Names:       append([]string(nil), snap.Names...),
		Unlocked:    append([]bool(nil), snap.Unlocked...),
		Percentages: append([]float32(nil), snap.Percentages...),
	}, nil
}

func (f *FakeCatalog) Commit(_ context.Context, appID uint32, names []string, clear bool) ([]catalog.Result, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Commits = append(f.Commits, CommitCall{AppID: appID, Names: append([]string(nil), names...), Clear: clear})
	if clear && f.ClearErr != nil {
		return nil, f.ClearErr
	}
	if !clear && f.SetErr != nil {
		return nil, f.SetErr
	}
	snap := f.Apps[appID]
	results := make([]catalog.Result, 0, len(names))
	for _, name := range names {
		if f.Omit[name] {
			continue
		}
		ok := !f.Reject[name]
		if ok {
			for i, n := range snap.Names {
				if n == name && i < len(snap.Unlocked) {
					snap.Unlocked[i] = !clear
				}
			}
		}
		results = append(results, catalog.Result{Name: name, Success: ok})
	}
	return results, nil
}

// CommitCalls returns a copy of the recorded commits.
func (f *FakeCatalog) CommitCalls() []CommitCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]CommitCall(nil), f.Commits...)
}
