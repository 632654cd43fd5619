// Package corpus persists falsified runs so later runs can re-check known
// counterexamples before spending budget on fresh random trials.
//
// Uses SQLite with WAL mode. A corpus file is shared between test runs of
// one project; each entry records the seed and shrink path needed to
// regenerate the counterexample plus its rendered form for display.
package corpus

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

//go:embed schema.sql
var schemaSQL string

// Entry is one recorded falsification.
type Entry struct {
	ID             string
	Property       string
	Seed           int64
	Path           string
	Counterexample string
	Error          string
	CreatedAt      time.Time
}

// Store provides durable storage for falsified runs.
type Store struct {
	db *sql.DB
}

// Open creates or opens a corpus database at the given path.
// Applies required pragmas and the schema. Idempotent.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open corpus database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to corpus database: %w", err)
	}

	// SQLite allows one writer at a time; a single connection avoids
	// SQLITE_BUSY under concurrent test binaries.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply pragmas: %w", err)
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			return fmt.Errorf("failed to execute %q: %w", pragma, err)
		}
	}
	return nil
}

// Save records a falsification. A missing ID is assigned a fresh UUID and
// a zero CreatedAt is stamped with the current time. Returns the stored
// entry.
func (s *Store) Save(ctx context.Context, e Entry) (Entry, error) {
	if e.Property == "" {
		return Entry{}, fmt.Errorf("corpus: entry requires a property name")
	}
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO failures (id, property, seed, path, counterexample, error, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.Property, e.Seed, e.Path, e.Counterexample, e.Error, e.CreatedAt,
	)
	if err != nil {
		return Entry{}, fmt.Errorf("corpus: save entry: %w", err)
	}
	return e, nil
}

// ByProperty returns all entries recorded for a property, newest first.
func (s *Store) ByProperty(ctx context.Context, property string) ([]Entry, error) {
	return s.query(ctx,
		`SELECT id, property, seed, path, counterexample, error, created_at
		 FROM failures WHERE property = ? ORDER BY created_at DESC, id`, property)
}

// List returns every entry in the corpus, newest first.
func (s *Store) List(ctx context.Context) ([]Entry, error) {
	return s.query(ctx,
		`SELECT id, property, seed, path, counterexample, error, created_at
		 FROM failures ORDER BY created_at DESC, id`)
}

// Get returns a single entry by id.
func (s *Store) Get(ctx context.Context, id string) (Entry, error) {
	entries, err := s.query(ctx,
		`SELECT id, property, seed, path, counterexample, error, created_at
		 FROM failures WHERE id = ?`, id)
	if err != nil {
		return Entry{}, err
	}
	if len(entries) == 0 {
		return Entry{}, fmt.Errorf("corpus: no entry with id %q", id)
	}
	return entries[0], nil
}

// Prune deletes all entries for a property and reports how many were
// removed. An empty property name prunes the whole corpus.
func (s *Store) Prune(ctx context.Context, property string) (int64, error) {
	var res sql.Result
	var err error
	if property == "" {
		res, err = s.db.ExecContext(ctx, `DELETE FROM failures`)
	} else {
		res, err = s.db.ExecContext(ctx, `DELETE FROM failures WHERE property = ?`, property)
	}
	if err != nil {
		return 0, fmt.Errorf("corpus: prune: %w", err)
	}
	return res.RowsAffected()
}

func (s *Store) query(ctx context.Context, q string, args ...any) ([]Entry, error) {
	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("corpus: query: %w", err)
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.Property, &e.Seed, &e.Path, &e.Counterexample, &e.Error, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("corpus: scan entry: %w", err)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("corpus: iterate entries: %w", err)
	}
	return out, nil
}
