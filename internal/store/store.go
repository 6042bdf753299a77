// Package store persists scan history in a local SQLite database: one row
// per run plus one row per confirmed match, queried by the history command.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"trackdedup/internal/dedup"
)

const schema = `
CREATE TABLE IF NOT EXISTS scans (
    id            TEXT PRIMARY KEY,
    started_at    TEXT NOT NULL,
    finished_at   TEXT NOT NULL,
    roots         TEXT NOT NULL,
    files_scanned INTEGER NOT NULL,
    match_count   INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS scan_matches (
    id                 INTEGER PRIMARY KEY AUTOINCREMENT,
    scan_id            TEXT NOT NULL REFERENCES scans(id) ON DELETE CASCADE,
    higher_path        TEXT NOT NULL,
    lower_path         TEXT NOT NULL,
    match_reason       TEXT NOT NULL,
    quality_difference TEXT NOT NULL,
    moved              INTEGER NOT NULL DEFAULT 0
);

CREATE INDEX IF NOT EXISTS idx_scan_matches_scan_id ON scan_matches(scan_id);
`

// Store manages scan-history persistence backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
}

// ScanRecord summarizes one recorded run.
type ScanRecord struct {
	ID           string
	StartedAt    time.Time
	FinishedAt   time.Time
	Roots        []string
	FilesScanned int
	MatchCount   int
}

// MatchRecord is one persisted duplicate match.
type MatchRecord struct {
	HigherPath        string
	LowerPath         string
	MatchReason       string
	QualityDifference string
	Moved             bool
}

// Open initializes or connects to the history database in dataDir.
func Open(dataDir string) (*Store, error) {
	dbPath := filepath.Join(dataDir, "history.db")
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	return &Store{db: db, path: dbPath}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path returns the database file location.
func (s *Store) Path() string {
	return s.path
}

// RecordScan persists one completed run and its matches. The moved set keys
// on the lower-quality path of matches the organizer relocated. Returns the
// generated scan ID.
func (s *Store) RecordScan(ctx context.Context, startedAt time.Time, roots []string, results dedup.Results, moved map[string]bool) (string, error) {
	id := uuid.NewString()
	now := time.Now().UTC()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO scans (id, started_at, finished_at, roots, files_scanned, match_count)
         VALUES (?, ?, ?, ?, ?, ?)`,
		id,
		startedAt.UTC().Format(time.RFC3339Nano),
		now.Format(time.RFC3339Nano),
		strings.Join(roots, string(filepath.ListSeparator)),
		results.TotalFilesScanned,
		len(results.Matches),
	)
	if err != nil {
		return "", fmt.Errorf("insert scan: %w", err)
	}

	for _, match := range results.Matches {
		wasMoved := 0
		if moved[match.LowerQuality.Path] {
			wasMoved = 1
		}
		_, err = tx.ExecContext(ctx,
			`INSERT INTO scan_matches (scan_id, higher_path, lower_path, match_reason, quality_difference, moved)
             VALUES (?, ?, ?, ?, ?, ?)`,
			id,
			match.HigherQuality.Path,
			match.LowerQuality.Path,
			match.MatchReason,
			match.QualityDifference,
			wasMoved,
		)
		if err != nil {
			return "", fmt.Errorf("insert match: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("commit scan: %w", err)
	}
	return id, nil
}

// RecentScans lists the most recent runs, newest first.
func (s *Store) RecentScans(ctx context.Context, limit int) ([]ScanRecord, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, started_at, finished_at, roots, files_scanned, match_count
         FROM scans ORDER BY started_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query scans: %w", err)
	}
	defer rows.Close()

	var records []ScanRecord
	for rows.Next() {
		var (
			rec      ScanRecord
			started  string
			finished string
			roots    string
		)
		if err := rows.Scan(&rec.ID, &started, &finished, &roots, &rec.FilesScanned, &rec.MatchCount); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		rec.StartedAt, _ = time.Parse(time.RFC3339Nano, started)
		rec.FinishedAt, _ = time.Parse(time.RFC3339Nano, finished)
		if roots != "" {
			rec.Roots = strings.Split(roots, string(filepath.ListSeparator))
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// ScanMatches lists the matches recorded for one run.
func (s *Store) ScanMatches(ctx context.Context, scanID string) ([]MatchRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT higher_path, lower_path, match_reason, quality_difference, moved
         FROM scan_matches WHERE scan_id = ? ORDER BY id`, scanID)
	if err != nil {
		return nil, fmt.Errorf("query matches: %w", err)
	}
	defer rows.Close()

	var records []MatchRecord
	for rows.Next() {
		var (
			rec   MatchRecord
			moved int
		)
		if err := rows.Scan(&rec.HigherPath, &rec.LowerPath, &rec.MatchReason, &rec.QualityDifference, &moved); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		rec.Moved = moved != 0
		records = append(records, rec)
	}
	return records, rows.Err()
}
