// Package store archives generated peptide libraries in a SQLite database
// so that a design run can be retrieved and compared later. Each library is
// stored as one row with a JSON payload.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// LibraryRecord is the archived form of a generated library.
type LibraryRecord struct {
	ID        string         `json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	Seed      int64          `json:"seed"`
	Sequences []string       `json:"sequences"`
	Names     []string       `json:"names"`
	Counts    map[string]int `json:"counts"`
}

// LibrarySummary is the listing row for an archived library.
type LibrarySummary struct {
	ID        string
	CreatedAt time.Time
	Size      int
}

// Store persists library records in a SQLite file.
type Store struct {
	path string

	mu sync.RWMutex
	db *sql.DB
}

func New(path string) *Store {
	return &Store{path: path}
}

// Init opens the database file and creates the schema if needed. Calling
// Init on an already-initialized store is a no-op.
func (s *Store) Init(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.path == "" {
		return errors.New("sqlite path is required")
	}
	if s.db != nil {
		return nil
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return err
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return err
	}
	if _, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS libraries (
			id TEXT PRIMARY KEY,
			created_at TEXT NOT NULL,
			seed INTEGER NOT NULL,
			size INTEGER NOT NULL,
			payload BLOB NOT NULL
		);
	`); err != nil {
		_ = db.Close()
		return err
	}

	s.db = db
	return nil
}

// SaveLibrary inserts or replaces a library record and returns its ID. An
// empty ID is replaced by a fresh UUID, a zero CreatedAt by the current
// time.
func (s *Store) SaveLibrary(ctx context.Context, rec LibraryRecord) (string, error) {
	db, err := s.getDB()
	if err != nil {
		return "", err
	}

	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}
	payload, err := json.Marshal(rec)
	if err != nil {
		return "", err
	}

	_, err = db.ExecContext(ctx, `
		INSERT INTO libraries (id, created_at, seed, size, payload)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			created_at = excluded.created_at,
			seed = excluded.seed,
			size = excluded.size,
			payload = excluded.payload
	`, rec.ID, rec.CreatedAt.Format(time.RFC3339Nano), rec.Seed, len(rec.Sequences), payload)
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

// GetLibrary loads one archived library. The bool reports whether the ID
// exists.
func (s *Store) GetLibrary(ctx context.Context, id string) (LibraryRecord, bool, error) {
	db, err := s.getDB()
	if err != nil {
		return LibraryRecord{}, false, err
	}

	var payload []byte
	err = db.QueryRowContext(ctx, `SELECT payload FROM libraries WHERE id = ?`, id).Scan(&payload)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return LibraryRecord{}, false, nil
		}
		return LibraryRecord{}, false, err
	}

	var rec LibraryRecord
	if err := json.Unmarshal(payload, &rec); err != nil {
		return LibraryRecord{}, false, fmt.Errorf("decode library %s: %w", id, err)
	}
	return rec, true, nil
}

// ListLibraries returns summaries of all archived libraries, newest first.
func (s *Store) ListLibraries(ctx context.Context) ([]LibrarySummary, error) {
	db, err := s.getDB()
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx, `
		SELECT id, created_at, size FROM libraries ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []LibrarySummary
	for rows.Next() {
		var sum LibrarySummary
		var created string
		if err := rows.Scan(&sum.ID, &created, &sum.Size); err != nil {
			return nil, err
		}
		if sum.CreatedAt, err = time.Parse(time.RFC3339Nano, created); err != nil {
			return nil, fmt.Errorf("decode timestamp of %s: %w", sum.ID, err)
		}
		out = append(out, sum)
	}
	return out, rows.Err()
}

func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

func (s *Store) getDB() (*sql.DB, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.db == nil {
		return nil, errors.New("store is not initialized")
	}
	return s.db, nil
}
