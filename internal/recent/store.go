// Package recent remembers the project roots that were scanned most
// recently, in a SQLite database.
package recent

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/jmoiron/sqlx"

	_ "github.com/mattn/go-sqlite3" // Import SQLite driver
)

const schema = `
CREATE TABLE IF NOT EXISTS roots (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	root       TEXT NOT NULL UNIQUE,
	name       TEXT NOT NULL,
	dirs       INTEGER NOT NULL DEFAULT 0,
	scan_count INTEGER NOT NULL DEFAULT 0,
	scanned_at TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS roots_scanned_at ON roots (scanned_at DESC);
`

// Entry is one remembered root.
type Entry struct {
	ID        int64     `db:"id"`
	Root      string    `db:"root"`
	Name      string    `db:"name"`
	Dirs      int       `db:"dirs"`
	ScanCount int       `db:"scan_count"`
	ScannedAt time.Time `db:"scanned_at"`
}

// Open opens (creating if necessary) the database at path and applies the
// schema. ":memory:" gives a private in-memory database.
func Open(path string) (*sqlx.DB, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sqlx.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// one connection: keeps :memory: databases shared and writes serialized
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}
	return db, nil
}

// Store records and lists recently scanned roots.
type Store struct {
	DB     *sqlx.DB
	Logger *slog.Logger
	// Now stamps recorded scans; defaults to time.Now.
	Now func() time.Time
}

// NewStore creates a Store on an opened database.
func NewStore(db *sqlx.DB, logger *slog.Logger) *Store {
	return &Store{
		DB:     db,
		Logger: logger,
		Now:    time.Now,
	}
}

// Record marks root as scanned now. name and dirs describe the scan result.
func (s *Store) Record(root, name string, dirs int) error {
	now := s.Now().UTC()
	_, err := s.DB.Exec(`
		INSERT INTO roots (root, name, dirs, scan_count, scanned_at) VALUES (?, ?, ?, 1, ?)
		ON CONFLICT(root) DO UPDATE SET
			name = excluded.name,
			dirs = excluded.dirs,
			scan_count = roots.scan_count + 1,
			scanned_at = excluded.scanned_at`,
		root, name, dirs, now,
	)
	if err != nil {
		return fmt.Errorf("failed to record scan of %s: %w", root, err)
	}
	s.Logger.Debug("recorded scan", "root", root, "dirs", dirs)
	return nil
}

// List returns up to limit roots, most recently scanned first. A limit of
// zero or less returns all of them.
func (s *Store) List(limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = -1
	}
	var entries []Entry
	err := s.DB.Select(&entries, "SELECT * FROM roots ORDER BY scanned_at DESC, id DESC LIMIT ?", limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent roots: %w", err)
	}
	return entries, nil
}

// Get returns the entry for root.
func (s *Store) Get(root string) (*Entry, error) {
	var entry Entry
	if err := s.DB.Get(&entry, "SELECT * FROM roots WHERE root = ?", root); err != nil {
		return nil, fmt.Errorf("failed to get recent root %s: %w", root, err)
	}
	return &entry, nil
}

// Forget removes root. It reports whether root was known.
func (s *Store) Forget(root string) (bool, error) {
	result, err := s.DB.Exec("DELETE FROM roots WHERE root = ?", root)
	if err != nil {
		return false, fmt.Errorf("failed to forget %s: %w", root, err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get affected rows: %w", err)
	}
	return n > 0, nil
}
