// Package ledger is a SQLite-backed achievement catalog. It stores the owned
// applications, their achievements and unlock state, a journal of committed
// changes, and a small key/value settings table.
package ledger

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/mbwilding/steam-achievement-manager/internal/catalog"

	_ "github.com/glebarez/sqlite"
)

// Ledger implements catalog.Client on top of a SQLite database.
type Ledger struct {
	SQL  *sql.DB
	Path string
	now  func() time.Time
}

var _ catalog.Client = (*Ledger)(nil)

// Open opens (creating when needed) the ledger database at path.
func Open(path string) (*Ledger, error) {
	if path == "" {
		return nil, errors.New("ledger path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout=5000&_pragma=journal_mode(WAL)", path)
	sqldb, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	sqldb.SetMaxOpenConns(1)
	if err := initSchema(sqldb); err != nil {
		_ = sqldb.Close()
		return nil, fmt.Errorf("init ledger schema: %w", err)
	}
	return &Ledger{SQL: sqldb, Path: path, now: time.Now}, nil
}

// Close releases the database handle.
func (l *Ledger) Close() error {
	if l == nil || l.SQL == nil {
		return nil
	}
	return l.SQL.Close()
}

func initSchema(db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS apps (
			app_id INTEGER PRIMARY KEY,
			name TEXT NOT NULL DEFAULT '',
			owned INTEGER NOT NULL DEFAULT 1
		);`,
		`CREATE TABLE IF NOT EXISTS achievements (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			app_id INTEGER NOT NULL,
			name TEXT NOT NULL,
			percentage REAL NOT NULL DEFAULT 0,
			unlocked INTEGER NOT NULL DEFAULT 0,
			updated_at INTEGER NOT NULL DEFAULT 0,
			UNIQUE(app_id, name)
		);`,
		`CREATE TABLE IF NOT EXISTS commits (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			batch TEXT NOT NULL,
			app_id INTEGER NOT NULL,
			name TEXT NOT NULL,
			action TEXT NOT NULL,
			success INTEGER NOT NULL,
			at INTEGER NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS settings (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);`,
	}
	for _, s := range stmts {
		if _, err := db.Exec(s); err != nil {
			return err
		}
	}
	return nil
}

// Fetch implements catalog.Client.
func (l *Ledger) Fetch(ctx context.Context, appID uint32) (catalog.Snapshot, error) {
	var owned bool
	err := l.SQL.QueryRowContext(ctx, `SELECT owned FROM apps WHERE app_id = ?`, appID).Scan(&owned)
	switch {
	case errors.Is(err, sql.ErrNoRows), err == nil && !owned:
		return catalog.Snapshot{}, &catalog.LoadError{AppID: appID, Kind: catalog.ErrNotOwned}
	case err != nil:
		return catalog.Snapshot{}, &catalog.LoadError{AppID: appID, Kind: catalog.ErrNotOwned, Err: err}
	}

	rows, err := l.SQL.QueryContext(ctx, `SELECT name, unlocked, percentage FROM achievements WHERE app_id = ? ORDER BY id`, appID)
	if err != nil {
		return catalog.Snapshot{}, &catalog.LoadError{AppID: appID, Kind: catalog.ErrNameFetchFailed, Err: err}
	}
	defer rows.Close()
	var snap catalog.Snapshot
	for rows.Next() {
		var (
			name     string
			unlocked bool
			pct      float64
		)
		if err := rows.Scan(&name, &unlocked, &pct); err != nil {
			return catalog.Snapshot{}, &catalog.LoadError{AppID: appID, Kind: catalog.ErrNameFetchFailed, Err: err}
		}
		snap.Names = append(snap.Names, name)
		snap.Unlocked = append(snap.Unlocked, unlocked)
		snap.Percentages = append(snap.Percentages, float32(pct))
	}
	if err := rows.Err(); err != nil {
		return catalog.Snapshot{}, &catalog.LoadError{AppID: appID, Kind: catalog.ErrNameFetchFailed, Err: err}
	}
	if snap.Len() == 0 {
		return catalog.Snapshot{}, &catalog.LoadError{AppID: appID, Kind: catalog.ErrNoAchievements}
	}
	return snap, nil
}

// Commit implements catalog.Client. Names unknown to the application report
// Success=false; any database failure aborts the whole batch.
func (l *Ledger) Commit(ctx context.Context, appID uint32, names []string, clear bool) ([]catalog.Result, error) {
	var owned bool
	err := l.SQL.QueryRowContext(ctx, `SELECT owned FROM apps WHERE app_id = ?`, appID).Scan(&owned)
	switch {
	case errors.Is(err, sql.ErrNoRows), err == nil && !owned:
		return nil, catalog.Unavailable(fmt.Errorf("app %d not in your library", appID))
	case err != nil:
		return nil, catalog.Unavailable(err)
	}

	tx, err := l.SQL.BeginTx(ctx, nil)
	if err != nil {
		return nil, catalog.Unavailable(err)
	}
	defer func() { _ = tx.Rollback() }()

	action := "set"
	if clear {
		action = "clear"
	}
	batch := uuid.NewString()
	at := l.now().Unix()
	results := make([]catalog.Result, 0, len(names))
	for _, name := range names {
		res, err := tx.ExecContext(ctx, `UPDATE achievements SET unlocked = ?, updated_at = ? WHERE app_id = ? AND name = ?`, !clear, at, appID, name)
		if err != nil {
			return nil, catalog.Unavailable(err)
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return nil, catalog.Unavailable(err)
		}
		ok := affected > 0
		if _, err := tx.ExecContext(ctx, `INSERT INTO commits(batch, app_id, name, action, success, at) VALUES(?,?,?,?,?,?)`, batch, appID, name, action, ok, at); err != nil {
			return nil, catalog.Unavailable(err)
		}
		results = append(results, catalog.Result{Name: name, Success: ok})
	}
	if err := tx.Commit(); err != nil {
		return nil, catalog.Unavailable(err)
	}
	return results, nil
}

// JournalEntry is one row of the commit journal.
type JournalEntry struct {
	Batch   string
	AppID   uint32
	Name    string
	Action  string
	Success bool
	At      time.Time
}

// Journal lists the committed changes for appID, oldest first.
func (l *Ledger) Journal(ctx context.Context, appID uint32) ([]JournalEntry, error) {
	rows, err := l.SQL.QueryContext(ctx, `SELECT batch, app_id, name, action, success, at FROM commits WHERE app_id = ? ORDER BY id`, appID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []JournalEntry
	for rows.Next() {
		var (
			e  JournalEntry
			at int64
		)
		if err := rows.Scan(&e.Batch, &e.AppID, &e.Name, &e.Action, &e.Success, &at); err != nil {
			return nil, err
		}
		e.At = time.Unix(at, 0)
		out = append(out, e)
	}
	return out, rows.Err()
}

// Get reads a settings value. The boolean is false when the key is absent.
func (l *Ledger) Get(key string) (string, bool, error) {
	var value string
	err := l.SQL.QueryRow(`SELECT value FROM settings WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

// Set writes a settings value.
func (l *Ledger) Set(key, value string) error {
	_, err := l.SQL.Exec(`INSERT INTO settings(key, value) VALUES(?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`, key, value)
	return err
}
