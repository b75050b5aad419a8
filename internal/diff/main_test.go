package diff

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mbwilding/steam-achievement-manager/internal/logging"
)

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "sam-test")
	if err != nil {
		panic(err)
	}
	logging.Configure(filepath.Join(dir, "sam.log"))
	code := m.Run()
	_ = os.RemoveAll(dir)
	os.Exit(code)
}
