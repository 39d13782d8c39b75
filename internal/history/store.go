// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package history keeps a SQLite ledger of generation runs. The ledger is
// advisory: callers log its failures and carry on.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/passgen/pkg/types"
)

// timeLayout has fixed-width fractions so stored timestamps sort as text.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// DefaultLimit is the number of runs returned by Recent when no limit is
// given.
const DefaultLimit = 20

// Store manages the run ledger database.
type Store struct {
	db *sql.DB
}

// Open opens or creates the ledger at path and ensures the schema exists.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating history directory: %w", err)
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			mode TEXT NOT NULL,
			requested INTEGER NOT NULL,
			written INTEGER NOT NULL,
			output_path TEXT NOT NULL,
			started_at TEXT NOT NULL,
			finished_at TEXT NOT NULL,
			cancelled INTEGER NOT NULL DEFAULT 0
		)`,
		`CREATE INDEX IF NOT EXISTS idx_runs_started_at ON runs(started_at)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// NewRecord starts a ledger entry for req writing to outputPath.
func NewRecord(req types.GenerationRequest, outputPath string, started time.Time) types.RunRecord {
	return types.RunRecord{
		ID:         uuid.New().String(),
		Mode:       req.Mode,
		Requested:  req.Count,
		OutputPath: outputPath,
		StartedAt:  started,
	}
}

// Record inserts rec, assigning an ID when it has none.
func (s *Store) Record(ctx context.Context, rec types.RunRecord) error {
	if rec.ID == "" {
		rec.ID = uuid.New().String()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO runs (id, mode, requested, written, output_path, started_at, finished_at, cancelled)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, string(rec.Mode), rec.Requested, rec.Written, rec.OutputPath,
		rec.StartedAt.UTC().Format(timeLayout),
		rec.FinishedAt.UTC().Format(timeLayout),
		rec.Cancelled,
	)
	if err != nil {
		return fmt.Errorf("recording run %s: %w", rec.ID, err)
	}
	return nil
}

// Recent returns up to limit runs, newest first. A non-positive limit uses
// DefaultLimit.
func (s *Store) Recent(ctx context.Context, limit int) ([]types.RunRecord, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, mode, requested, written, output_path, started_at, finished_at, cancelled
		 FROM runs ORDER BY started_at DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	var records []types.RunRecord
	for rows.Next() {
		var (
			rec               types.RunRecord
			mode              string
			started, finished string
		)
		if err := rows.Scan(&rec.ID, &mode, &rec.Requested, &rec.Written, &rec.OutputPath,
			&started, &finished, &rec.Cancelled); err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		rec.Mode = types.Mode(mode)
		rec.StartedAt, _ = time.Parse(timeLayout, started)
		rec.FinishedAt, _ = time.Parse(timeLayout, finished)
		records = append(records, rec)
	}
	return records, rows.Err()
}

// Totals summarizes the ledger.
type Totals struct {
	Runs    int
	Written int
}

// Totals returns the number of recorded runs and lines written across them.
func (s *Store) Totals(ctx context.Context) (Totals, error) {
	var t Totals
	err := s.db.QueryRowContext(ctx,
		`SELECT count(*), coalesce(sum(written), 0) FROM runs`,
	).Scan(&t.Runs, &t.Written)
	if err != nil {
		return Totals{}, fmt.Errorf("summing runs: %w", err)
	}
	return t, nil
}
