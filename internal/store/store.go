// Package store handles SQLite persistence of custom vocabulary.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/verte-zerg/typemaster/internal/model"

	_ "modernc.org/sqlite" // SQLite driver.
)

// Store wraps SQLite access for custom vocabulary entries.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// ModeCount is the number of stored entries for one mode.
type ModeCount struct {
	Mode  model.Mode
	Count int
}

// Open opens or creates the SQLite database and applies migrations.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	store := &Store{db: db, now: time.Now}
	if err := store.migrate(); err != nil {
		if cerr := db.Close(); cerr != nil {
			// Best-effort close on migration failure.
			_ = cerr
		}
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS entries (
			id INTEGER PRIMARY KEY,
			mode TEXT NOT NULL,
			text TEXT NOT NULL,
			added_at TEXT NOT NULL,
			UNIQUE (mode, text)
		);`,
		`CREATE INDEX IF NOT EXISTS idx_entries_mode ON entries(mode);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// AddEntries stores entries for mode and returns how many were new.
// Entries already stored for the mode are skipped.
func (s *Store) AddEntries(ctx context.Context, mode model.Mode, entries []string) (int, error) {
	if _, err := model.ParseMode(string(mode)); err != nil {
		return 0, err
	}
	if len(entries) == 0 {
		return 0, nil
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer func() {
		if err != nil {
			if rerr := tx.Rollback(); rerr != nil {
				// Best-effort rollback.
				_ = rerr
			}
		}
	}()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT OR IGNORE INTO entries (mode, text, added_at) VALUES (?, ?, ?)`)
	if err != nil {
		return 0, err
	}
	defer func() {
		if cerr := stmt.Close(); cerr != nil {
			// Best-effort statement close.
			_ = cerr
		}
	}()

	addedAt := s.now().UTC().Format(time.RFC3339Nano)
	added := 0
	for _, entry := range entries {
		res, execErr := stmt.ExecContext(ctx, string(mode), entry, addedAt)
		if execErr != nil {
			err = execErr
			return 0, fmt.Errorf("insert entry %q: %w", entry, err)
		}
		n, rowsErr := res.RowsAffected()
		if rowsErr != nil {
			err = rowsErr
			return 0, err
		}
		added += int(n)
	}

	if err = tx.Commit(); err != nil {
		return 0, err
	}
	return added, nil
}

// ListEntries returns the stored entries for mode in insertion order.
func (s *Store) ListEntries(ctx context.Context, mode model.Mode) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT text FROM entries WHERE mode = ? ORDER BY id ASC`, string(mode))
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var result []string
	for rows.Next() {
		var text string
		if err := rows.Scan(&text); err != nil {
			return nil, err
		}
		result = append(result, text)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// CountByMode returns entry counts for every mode, including empty ones,
// in model.Modes order.
func (s *Store) CountByMode(ctx context.Context) ([]ModeCount, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT mode, COUNT(*) FROM entries GROUP BY mode`)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	counts := map[model.Mode]int{}
	for rows.Next() {
		var mode string
		var count int
		if err := rows.Scan(&mode, &count); err != nil {
			return nil, err
		}
		counts[model.Mode(mode)] = count
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	result := make([]ModeCount, 0, len(model.Modes))
	for _, mode := range model.Modes {
		result = append(result, ModeCount{Mode: mode, Count: counts[mode]})
	}
	return result, nil
}

// ClearMode deletes all entries for mode and returns how many were removed.
func (s *Store) ClearMode(ctx context.Context, mode model.Mode) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM entries WHERE mode = ?`, string(mode))
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// LoadCustom returns the stored entries of every mode that has any, ready for
// vocab.Overlay.
func (s *Store) LoadCustom(ctx context.Context) (map[model.Mode][]string, error) {
	custom := map[model.Mode][]string{}
	for _, mode := range model.Modes {
		entries, err := s.ListEntries(ctx, mode)
		if err != nil {
			return nil, fmt.Errorf("load %s entries: %w", mode, err)
		}
		if len(entries) > 0 {
			custom[mode] = entries
		}
	}
	return custom, nil
}
