// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package ledger persists file lifecycle records in a SQLite database. The
// ledger is the only writer of status and updated_at; the conversion
// pipeline reads records and reports outcomes back through it.
package ledger

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/corpus-converter/pkg/types"
)

// Store manages the files ledger database.
type Store struct {
	db *sql.DB
}

// Open opens or creates the ledger database at path, creating the schema if
// it does not exist.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating ledger directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening ledger database: %w", err)
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
		`CREATE TABLE IF NOT EXISTS files (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			source_path TEXT NOT NULL,
			status TEXT NOT NULL DEFAULT 'pending',
			created_at TEXT NOT NULL,
			updated_at TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_files_status ON files(status)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Register inserts a new record with status ingested and returns its id.
func (s *Store) Register(ctx context.Context, sourcePath string) (int64, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO files (source_path, status, created_at, updated_at) VALUES (?, ?, ?, ?)`,
		sourcePath, string(types.StatusIngested), now, now,
	)
	if err != nil {
		return 0, fmt.Errorf("registering %s: %w", sourcePath, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading inserted id: %w", err)
	}
	return id, nil
}

// ListEligible returns every record with status ingested, most recently
// updated first. Records with equal timestamps come back in storage order;
// no stronger tie-break is guaranteed.
func (s *Store) ListEligible(ctx context.Context) ([]types.FileRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, source_path, status, created_at, updated_at
		 FROM files
		 WHERE status = ?
		 ORDER BY updated_at DESC`,
		string(types.StatusIngested),
	)
	if err != nil {
		return nil, fmt.Errorf("querying eligible files: %w", err)
	}
	defer rows.Close()

	var records []types.FileRecord
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating eligible files: %w", err)
	}
	return records, nil
}

// UpdateStatus sets the record's status and refreshes its update timestamp.
func (s *Store) UpdateStatus(ctx context.Context, id int64, status types.FileStatus) error {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	res, err := s.db.ExecContext(ctx,
		`UPDATE files SET status = ?, updated_at = ? WHERE id = ?`,
		string(status), now, id,
	)
	if err != nil {
		return fmt.Errorf("updating status for file %d: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking update for file %d: %w", id, err)
	}
	if n == 0 {
		return fmt.Errorf("updating status for file %d: no such record", id)
	}
	return nil
}

// Get returns a single record by id.
func (s *Store) Get(ctx context.Context, id int64) (types.FileRecord, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, source_path, status, created_at, updated_at FROM files WHERE id = ?`, id)
	return scanRecord(row)
}

// StatusCounts returns the number of records per lifecycle status.
func (s *Store) StatusCounts(ctx context.Context) (map[types.FileStatus]int, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT status, COUNT(*) FROM files GROUP BY status`)
	if err != nil {
		return nil, fmt.Errorf("counting files by status: %w", err)
	}
	defer rows.Close()

	counts := make(map[types.FileStatus]int)
	for rows.Next() {
		var status string
		var n int
		if err := rows.Scan(&status, &n); err != nil {
			return nil, fmt.Errorf("scanning status count: %w", err)
		}
		counts[types.FileStatus(status)] = n
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating status counts: %w", err)
	}
	return counts, nil
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(sc scanner) (types.FileRecord, error) {
	var rec types.FileRecord
	var status, createdAt, updatedAt string
	if err := sc.Scan(&rec.ID, &rec.SourcePath, &status, &createdAt, &updatedAt); err != nil {
		return types.FileRecord{}, fmt.Errorf("scanning file record: %w", err)
	}
	rec.Status = types.FileStatus(status)
	rec.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdAt)
	rec.UpdatedAt, _ = time.Parse(time.RFC3339Nano, updatedAt)
	return rec, nil
}
