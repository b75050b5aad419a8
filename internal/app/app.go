package app

import (
	"context"
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mbwilding/steam-achievement-manager/internal/catalog/ledger"
	"github.com/mbwilding/steam-achievement-manager/internal/logging/events"
	"github.com/mbwilding/steam-achievement-manager/internal/prefs"
	"github.com/mbwilding/steam-achievement-manager/internal/terminal"
	"github.com/mbwilding/steam-achievement-manager/internal/ui"
)

// Preference store backends.
const (
	PrefsFile    = "file"
	PrefsCatalog = "catalog"
)

// Config describes user-provided application options.
type Config struct {
	AppID       uint32
	CatalogPath string
	ImportPath  string
	PrefsPath   string
	PrefsStore  string
	ShowFooter  bool
}

// Run opens the catalog, bootstraps the Bubble Tea program and restores the
// terminal however the program ends.
func Run(cfg Config) error {
	l, store, err := open(context.Background(), cfg)
	if err != nil {
		return err
	}
	defer l.Close()

	return terminal.Run(context.Background(), os.Stdin, os.Stdout, func(ctx context.Context) error {
		model := ui.NewModel(ui.Options{
			Context:    ctx,
			AppID:      cfg.AppID,
			Catalog:    l,
			Prefs:      store,
			ShowFooter: cfg.ShowFooter,
		})
		program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
		_, err := program.Run()
		if errors.Is(err, tea.ErrProgramKilled) || errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	})
}

// open prepares the catalog ledger, runs any requested import and picks the
// preference store.
func open(ctx context.Context, cfg Config) (*ledger.Ledger, prefs.Store, error) {
	l, err := ledger.Open(cfg.CatalogPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open catalog %s: %w", cfg.CatalogPath, err)
	}
	if cfg.ImportPath != "" {
		stats, err := l.ImportFile(ctx, cfg.ImportPath)
		if err != nil {
			_ = l.Close()
			return nil, nil, fmt.Errorf("import %s: %w", cfg.ImportPath, err)
		}
		events.Catalog.Import(cfg.ImportPath, stats.Apps, stats.Achievements)
	}
	store, err := prefsStore(cfg, l)
	if err != nil {
		_ = l.Close()
		return nil, nil, err
	}
	return l, store, nil
}

func prefsStore(cfg Config, l *ledger.Ledger) (prefs.Store, error) {
	switch cfg.PrefsStore {
	case PrefsFile, "":
		return prefs.NewFileStore(cfg.PrefsPath), nil
	case PrefsCatalog:
		return prefs.NewKVStore(l), nil
	default:
		return nil, fmt.Errorf("unknown prefs store %q", cfg.PrefsStore)
	}
}
