// Package statestore keeps saved screen state in an in-memory SQLite database.
package statestore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/verte-zerg/profileform/internal/form"

	_ "modernc.org/sqlite" // SQLite driver.
)

// Store wraps SQLite access for saved screen state.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// Open creates a private in-memory database. It lives until Close.
func Open() (*Store, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, err
	}
	// Each connection to ":memory:" is a separate database.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	store := &Store{db: db, now: time.Now}
	if err := store.migrate(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

// Close releases the database and everything saved in it.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS saved_state (
			screen_id TEXT PRIMARY KEY,
			saved_at TEXT NOT NULL,
			payload BLOB NOT NULL
		);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// SaveState stores sv for screenID, replacing any previous entry.
func (s *Store) SaveState(ctx context.Context, screenID string, sv form.Saved) error {
	if screenID == "" {
		return fmt.Errorf("screen id is empty")
	}
	payload, err := form.EncodeSaved(sv)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO saved_state (screen_id, saved_at, payload) VALUES (?, ?, ?)
		 ON CONFLICT(screen_id) DO UPDATE SET saved_at = excluded.saved_at, payload = excluded.payload`,
		screenID,
		s.now().Format(time.RFC3339Nano),
		payload,
	)
	if err != nil {
		return fmt.Errorf("failed to save state for %s: %w", screenID, err)
	}
	return nil
}

// LoadState returns the saved state for screenID. The bool is false when
// nothing was saved.
func (s *Store) LoadState(ctx context.Context, screenID string) (form.Saved, bool, error) {
	var payload []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT payload FROM saved_state WHERE screen_id = ?`, screenID).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return form.Saved{}, false, nil
	}
	if err != nil {
		return form.Saved{}, false, fmt.Errorf("failed to load state for %s: %w", screenID, err)
	}
	sv, err := form.DecodeSaved(payload)
	if err != nil {
		return form.Saved{}, false, err
	}
	return sv, true, nil
}

// SavedAt reports when screenID was last saved.
func (s *Store) SavedAt(ctx context.Context, screenID string) (time.Time, bool, error) {
	var raw string
	err := s.db.QueryRowContext(ctx,
		`SELECT saved_at FROM saved_state WHERE screen_id = ?`, screenID).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return time.Time{}, false, nil
	}
	if err != nil {
		return time.Time{}, false, err
	}
	parsed, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return time.Time{}, false, err
	}
	return parsed, true, nil
}

// DeleteState forgets screenID. Deleting a missing entry is not an error.
func (s *Store) DeleteState(ctx context.Context, screenID string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM saved_state WHERE screen_id = ?`, screenID); err != nil {
		return fmt.Errorf("failed to delete state for %s: %w", screenID, err)
	}
	return nil
}

// Count returns the number of saved screens.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM saved_state`).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}
