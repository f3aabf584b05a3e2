// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package telemetry

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// =============================================================================
// ERRORS
// =============================================================================

var (
	ErrClosed       = errors.New("telemetry store closed")
	ErrInvalidEvent = errors.New("invalid event")
)

// =============================================================================
// EVENT STORE
// =============================================================================

// Event is one recorded usage event.
type Event struct {
	ID        string
	Kind      EventKind
	Page      string
	Slug      string
	Theme     string
	CreatedAt time.Time
}

// PostCount pairs a post slug with how often it was opened.
type PostCount struct {
	Slug  string
	Count int
}

// Store is the SQLite-backed event store.
type Store struct {
	db   *sql.DB
	path string
}

// DefaultDBPath returns the standard database location, ~/.folio/analytics.db.
func DefaultDBPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".folio", "analytics.db"), nil
}

// Open opens (creating if needed) the event database at path.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite only supports one writer at a time, so limit connections.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
		"PRAGMA temp_store=MEMORY",
		"PRAGMA foreign_keys=ON",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to set pragma: %w", err)
		}
	}

	if _, err := db.Exec(Schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	if _, err := db.Exec(InitMetadata); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize metadata: %w", err)
	}

	return &Store{db: db, path: path}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// Record inserts one event.
func (s *Store) Record(ctx context.Context, e Event) error {
	if s == nil || s.db == nil {
		return ErrClosed
	}
	if e.ID == "" || !e.Kind.IsValid() {
		return fmt.Errorf("%w: id=%q kind=%q", ErrInvalidEvent, e.ID, e.Kind)
	}

	created := e.CreatedAt
	if created.IsZero() {
		created = time.Now()
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO events (id, kind, page, slug, theme, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		e.ID, e.Kind.String(), e.Page, e.Slug, e.Theme, created.Unix(),
	)
	return err
}

// TotalEvents returns the number of stored events.
func (s *Store) TotalEvents(ctx context.Context) (int, error) {
	if s == nil || s.db == nil {
		return 0, ErrClosed
	}
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM events`).Scan(&n)
	return n, err
}

// CountByKind returns event totals grouped by kind.
func (s *Store) CountByKind(ctx context.Context) (map[EventKind]int, error) {
	if s == nil || s.db == nil {
		return nil, ErrClosed
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT kind, COUNT(*) FROM events GROUP BY kind`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[EventKind]int)
	for rows.Next() {
		var kind string
		var n int
		if err := rows.Scan(&kind, &n); err != nil {
			return nil, err
		}
		out[EventKind(kind)] = n
	}
	return out, rows.Err()
}

// TopPosts returns the most-opened posts, busiest first.
func (s *Store) TopPosts(ctx context.Context, limit int) ([]PostCount, error) {
	if s == nil || s.db == nil {
		return nil, ErrClosed
	}
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT slug, COUNT(*) AS n FROM events
		 WHERE kind = ? AND slug != ''
		 GROUP BY slug ORDER BY n DESC, slug ASC LIMIT ?`,
		EventPostOpen.String(), limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []PostCount
	for rows.Next() {
		var pc PostCount
		if err := rows.Scan(&pc.Slug, &pc.Count); err != nil {
			return nil, err
		}
		out = append(out, pc)
	}
	return out, rows.Err()
}

// EventsSince counts events recorded at or after t.
func (s *Store) EventsSince(ctx context.Context, t time.Time) (int, error) {
	if s == nil || s.db == nil {
		return 0, ErrClosed
	}
	var n int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM events WHERE created_at >= ?`, t.Unix()).Scan(&n)
	return n, err
}

// Purge deletes every stored event. Used when consent is revoked.
func (s *Store) Purge(ctx context.Context) error {
	if s == nil || s.db == nil {
		return ErrClosed
	}
	_, err := s.db.ExecContext(ctx, `DELETE FROM events`)
	return err
}
