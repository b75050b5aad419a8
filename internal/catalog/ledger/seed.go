package ledger

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// Seed is the on-disk import format for populating a ledger.
type Seed struct {
	Apps []SeedApp `yaml:"apps" json:"apps"`
}

// SeedApp describes one application and its achievements.
type SeedApp struct {
	ID           uint32            `yaml:"id" json:"id"`
	Name         string            `yaml:"name" json:"name"`
	Owned        *bool             `yaml:"owned" json:"owned"`
	Achievements []SeedAchievement `yaml:"achievements" json:"achievements"`
}

// SeedAchievement describes one achievement row.
type SeedAchievement struct {
	Name       string  `yaml:"name" json:"name"`
	Percentage float32 `yaml:"percentage" json:"percentage"`
	Unlocked   bool    `yaml:"unlocked" json:"unlocked"`
}

// ImportStats reports how many rows an import touched.
type ImportStats struct {
	Apps         int
	Achievements int
}

// ParseSeed decodes seed data. Files ending in .json or .jsonc are parsed as
// JSON with comments; anything else is YAML.
func ParseSeed(name string, data []byte) (Seed, error) {
	var seed Seed
	switch strings.ToLower(filepath.Ext(name)) {
	case ".json", ".jsonc":
		if err := json.Unmarshal(jsonc.ToJSON(data), &seed); err != nil {
			return Seed{}, fmt.Errorf("parse %s: %w", name, err)
		}
	default:
		if err := yaml.Unmarshal(data, &seed); err != nil {
			return Seed{}, fmt.Errorf("parse %s: %w", name, err)
		}
	}
	for i, app := range seed.Apps {
		if app.ID == 0 {
			return Seed{}, fmt.Errorf("parse %s: app #%d has no id", name, i+1)
		}
		for _, ach := range app.Achievements {
			if strings.TrimSpace(ach.Name) == "" {
				return Seed{}, fmt.Errorf("parse %s: app %d has an unnamed achievement", name, app.ID)
			}
		}
	}
	return seed, nil
}

// ImportFile reads a seed file and applies it.
func (l *Ledger) ImportFile(ctx context.Context, path string) (ImportStats, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return ImportStats{}, err
	}
	seed, err := ParseSeed(path, data)
	if err != nil {
		return ImportStats{}, err
	}
	return l.Import(ctx, seed)
}

// Import upserts the seed's applications and achievements in one transaction.
// Existing rows keep their insertion order.
func (l *Ledger) Import(ctx context.Context, seed Seed) (ImportStats, error) {
	tx, err := l.SQL.BeginTx(ctx, nil)
	if err != nil {
		return ImportStats{}, err
	}
	defer func() { _ = tx.Rollback() }()

	var stats ImportStats
	for _, app := range seed.Apps {
		owned := true
		if app.Owned != nil {
			owned = *app.Owned
		}
		if _, err := tx.ExecContext(ctx, `INSERT INTO apps(app_id, name, owned) VALUES(?, ?, ?)
			ON CONFLICT(app_id) DO UPDATE SET name = excluded.name, owned = excluded.owned`,
			app.ID, app.Name, owned); err != nil {
			return ImportStats{}, fmt.Errorf("import app %d: %w", app.ID, err)
		}
		stats.Apps++
		for _, ach := range app.Achievements {
			if _, err := tx.ExecContext(ctx, `INSERT INTO achievements(app_id, name, percentage, unlocked) VALUES(?, ?, ?, ?)
				ON CONFLICT(app_id, name) DO UPDATE SET percentage = excluded.percentage, unlocked = excluded.unlocked`,
				app.ID, ach.Name, float64(ach.Percentage), ach.Unlocked); err != nil {
				return ImportStats{}, fmt.Errorf("import achievement %q for app %d: %w", ach.Name, app.ID, err)
			}
			stats.Achievements++
		}
	}
	if err := tx.Commit(); err != nil {
		return ImportStats{}, err
	}
	return stats, nil
}
