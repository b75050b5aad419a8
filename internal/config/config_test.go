package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mbwilding/steam-achievement-manager/internal/app"
)

func TestLoadArgsDefaults(t *testing.T) {
	cfg, err := LoadArgs(nil, nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.App.AppID != 0 {
		t.Fatalf("expected app id 0, got %d", cfg.App.AppID)
	}
	if !cfg.App.ShowFooter {
		t.Fatalf("expected footer enabled by default")
	}
	if cfg.App.PrefsStore != app.PrefsFile {
		t.Fatalf("expected file prefs store, got %q", cfg.App.PrefsStore)
	}
	if filepath.Base(cfg.App.CatalogPath) != "catalog.db" {
		t.Fatalf("unexpected catalog path %q", cfg.App.CatalogPath)
	}
	if cfg.Logging.Trace {
		t.Fatalf("expected trace disabled by default")
	}
}

func TestLoadArgsFlagsOverrideEnv(t *testing.T) {
	env := []string{
		"SAM_APP_ID=220",
		"SAM_CATALOG=/env/catalog.db",
		"SAM_TRACE=true",
		"SAM_FOOTER=false",
	}
	cfg, err := LoadArgs([]string{"-i", "440", "--catalog", "/flag/catalog.db"}, env)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.App.AppID != 440 {
		t.Fatalf("expected app id 440, got %d", cfg.App.AppID)
	}
	if cfg.App.CatalogPath != "/flag/catalog.db" {
		t.Fatalf("expected flag catalog path, got %q", cfg.App.CatalogPath)
	}
	if !cfg.Logging.Trace || cfg.App.ShowFooter {
		t.Fatalf("expected env trace=true footer=false, got %+v", cfg)
	}
	if cfg.Flags["appID"] != "440" {
		t.Fatalf("expected appID flag 440, got %q", cfg.Flags["appID"])
	}
}

func TestLoadArgsEnvFallback(t *testing.T) {
	cfg, err := LoadArgs(nil, []string{"SAM_APP_ID=220", "SAM_PREFS_STORE=Catalog", "SAM_APP_ID_BAD"})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.App.AppID != 220 {
		t.Fatalf("expected app id 220, got %d", cfg.App.AppID)
	}
	if cfg.App.PrefsStore != app.PrefsCatalog {
		t.Fatalf("expected catalog prefs store, got %q", cfg.App.PrefsStore)
	}
}

func TestLoadArgsInvalidEnvFallsBack(t *testing.T) {
	cfg, err := LoadArgs(nil, []string{"SAM_APP_ID=abc", "SAM_TRACE=maybe"})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.App.AppID != 0 || cfg.Logging.Trace {
		t.Fatalf("expected defaults for invalid env values, got %+v", cfg)
	}
}

func TestLoadArgsPositionalAppID(t *testing.T) {
	cfg, err := LoadArgs([]string{"730"}, nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.App.AppID != 730 {
		t.Fatalf("expected app id 730, got %d", cfg.App.AppID)
	}
	if _, err := LoadArgs([]string{"-i", "1", "2"}, nil); err == nil {
		t.Fatalf("expected error for duplicate app id")
	}
	if _, err := LoadArgs([]string{"nope"}, nil); err == nil {
		t.Fatalf("expected error for invalid app id")
	}
	if _, err := LoadArgs([]string{"1", "2"}, nil); err == nil {
		t.Fatalf("expected error for extra arguments")
	}
}

func TestLoadArgsExpandsTilde(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("no home directory: %v", err)
	}
	cfg, err := LoadArgs([]string{"--prefs", "~/sam/prefs.yaml"}, nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	want := filepath.Join(home, "sam", "prefs.yaml")
	if cfg.App.PrefsPath != want {
		t.Fatalf("expected %q, got %q", want, cfg.App.PrefsPath)
	}
}

func TestLoadArgsHelp(t *testing.T) {
	if _, err := LoadArgs([]string{"--help"}, nil); !errors.Is(err, ErrHelp) {
		t.Fatalf("expected ErrHelp, got %v", err)
	}
	if !strings.Contains(Usage(nil), "--prefs-store") {
		t.Fatalf("expected usage to list --prefs-store")
	}
}

func TestValidate(t *testing.T) {
	cfg, err := LoadArgs(nil, nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if err := Validate(cfg); err != nil {
		t.Fatalf("expected defaults to validate, got %v", err)
	}

	bad := cfg
	bad.App.PrefsStore = "cloud"
	if err := Validate(bad); err == nil {
		t.Fatalf("expected error for unknown prefs store")
	}

	bad = cfg
	bad.App.ImportPath = filepath.Join(t.TempDir(), "missing.yaml")
	if err := Validate(bad); err == nil {
		t.Fatalf("expected error for missing import file")
	}

	bad = cfg
	bad.App.CatalogPath = " "
	if err := Validate(bad); err == nil {
		t.Fatalf("expected error for empty catalog path")
	}
}
