// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package manifest persists a ledger of conversions in SQLite: one row
// per converted (or failed) file, so batch and watch runs leave an
// inspectable history behind.
package manifest

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/docshift/pkg/types"
)

// Store manages the conversion manifest database.
type Store struct {
	db *sql.DB
}

// Open opens or creates the manifest database at path, creating parent
// directories and the schema as needed.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating manifest directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening manifest database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating manifest schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS conversions (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		input TEXT NOT NULL,
		output TEXT,
		target TEXT NOT NULL,
		status TEXT NOT NULL,
		fallback INTEGER NOT NULL DEFAULT 0,
		converted_at TEXT NOT NULL
	)`)
	if err != nil {
		return fmt.Errorf("executing schema statement: %w", err)
	}
	return nil
}

// Record appends one conversion to the ledger.
func (s *Store) Record(rec types.ConversionRecord) error {
	_, err := s.db.Exec(
		`INSERT INTO conversions (input, output, target, status, fallback, converted_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		rec.Input, rec.Output, string(rec.Target), string(rec.Status),
		boolToInt(rec.Fallback), rec.ConvertedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("recording conversion of %s: %w", rec.Input, err)
	}
	return nil
}

// Recent returns the latest conversions, newest first, up to limit.
func (s *Store) Recent(limit int) ([]types.ConversionRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT input, output, target, status, fallback, converted_at
		 FROM conversions ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying conversions: %w", err)
	}
	defer rows.Close()

	var records []types.ConversionRecord
	for rows.Next() {
		var rec types.ConversionRecord
		var output sql.NullString
		var target, status, convertedAt string
		var fallback int
		if err := rows.Scan(&rec.Input, &output, &target, &status, &fallback, &convertedAt); err != nil {
			return nil, fmt.Errorf("scanning conversion row: %w", err)
		}
		rec.Output = output.String
		rec.Target = types.Target(target)
		rec.Status = types.ConversionStatus(status)
		rec.Fallback = fallback != 0
		if ts, err := time.Parse(time.RFC3339, convertedAt); err == nil {
			rec.ConvertedAt = ts
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading conversion rows: %w", err)
	}
	return records, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
