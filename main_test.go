package main

import (
	"testing"

	"github.com/mbwilding/steam-achievement-manager/internal/app"
	"github.com/mbwilding/steam-achievement-manager/internal/config"
	"github.com/mbwilding/steam-achievement-manager/internal/terminal"
)

func TestStartupTracePayloadIncludesFlags(t *testing.T) {
	cfg := config.Config{
		App: app.Config{
			AppID:       440,
			CatalogPath: "catalog.db",
			PrefsPath:   "prefs.yaml",
			PrefsStore:  app.PrefsFile,
			ShowFooter:  true,
		},
		Logging: config.Logging{
			FilePath: "trace.log",
			Trace:    true,
		},
		Flags: map[string]string{
			"appID":   "440",
			"catalog": "catalog.db",
			"footer":  "true",
		},
		Args: []string{"--app-id", "440"},
	}

	payload := startupTracePayload(cfg)

	flagsValue, ok := payload["flags"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected flags map in payload")
	}
	if flagsValue["appID"] != "440" {
		t.Fatalf("expected appID flag 440, got %v", flagsValue["appID"])
	}
	if flagsValue["catalog"] != "catalog.db" {
		t.Fatalf("expected catalog flag, got %v", flagsValue["catalog"])
	}
	if flagsValue["footer"] != "true" {
		t.Fatalf("expected footer flag true, got %v", flagsValue["footer"])
	}
	if flagsValue["trace"] != true {
		t.Fatalf("expected trace flag true, got %v", flagsValue["trace"])
	}
	if flagsValue["logFile"] != "trace.log" {
		t.Fatalf("expected log file trace.log, got %v", flagsValue["logFile"])
	}

	details, ok := payload["tty"].(terminal.Details)
	if !ok {
		t.Fatalf("expected tty details in payload")
	}
	if len(details.Probes) != 3 {
		t.Fatalf("expected 3 probes, got %d", len(details.Probes))
	}
	if cfgValue, ok := payload["config"].(config.Config); !ok {
		t.Fatalf("expected config in payload")
	} else if cfgValue.App != cfg.App {
		t.Fatalf("expected app config %#v, got %#v", cfg.App, cfgValue.App)
	}
}
