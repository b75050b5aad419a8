package testutil

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/mbwilding/steam-achievement-manager/internal/catalog/ledger"
)

// SeedPath returns the sample seed file shipped in testdata.
func SeedPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(RepoRoot(t), "testdata", "seed.yaml")
}

// TempLedger opens a ledger in a temporary directory and imports the sample
// seed into it. The ledger is closed when the test ends.
func TempLedger(t *testing.T) *ledger.Ledger {
	t.Helper()
	l, err := ledger.Open(filepath.Join(t.TempDir(), "ledger.db"))
	if err != nil {
		t.Fatalf("open ledger: %v", err)
	}
	t.Cleanup(func() { _ = l.Close() })
	if _, err := l.ImportFile(context.Background(), SeedPath(t)); err != nil {
		t.Fatalf("import seed: %v", err)
	}
	return l
}

// RepoRoot walks up from the working directory to the module root.
func RepoRoot(t *testing.T) string {
	t.Helper()
	dir, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd failed: %v", err)
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return dir
		}
		dir = parent
	}
}
