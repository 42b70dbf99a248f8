// Package store persists screening runs and their result tables to SQLite.
// Persistence is optional; the CSV outputs are always the primary artifact.
package store

import (
	"context"
	"crypto/rand"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/oklog/ulid/v2"
)

// Run is a row in the runs table: one completed screening pass.
type Run struct {
	ID            string `json:"id"`
	InputPath     string `json:"input_path"`
	SchemaPath    string `json:"schema_path"`
	TextColumns   string `json:"text_columns"`
	RecordCount   int    `json:"record_count"`
	SubthemeCount int    `json:"subtheme_count"`
	HitCount      int    `json:"hit_count"`
	CreatedAt     string `json:"created_at"`
}

// CountRow is a row in the subtheme_counts table.
type CountRow struct {
	ThemeID       string `json:"theme_id"`
	ThemeName     string `json:"theme_name"`
	SubthemeID    string `json:"subtheme_id"`
	SubthemeName  string `json:"subtheme_name"`
	PaperCount    int    `json:"paper_count"`
	KeywordsCount int    `json:"keywords_count"`
}

// HitRow is a row in the subtheme_hits table.
type HitRow struct {
	PaperID      string `json:"paper_id"`
	ThemeID      string `json:"theme_id"`
	ThemeName    string `json:"theme_name"`
	SubthemeID   string `json:"subtheme_id"`
	SubthemeName string `json:"subtheme_name"`
}

// FlagRow is a row in the paper_flags table: the wide flags table unpivoted
// to (paper, sub-theme label, matched).
type FlagRow struct {
	PaperID  string `json:"paper_id"`
	Subtheme string `json:"subtheme"`
	Matched  bool   `json:"matched"`
}

// Store wraps the SQLite database for run persistence.
type Store struct {
	db      *sql.DB
	entropy *ulid.MonotonicEntropy
}

// New opens (or creates) a SQLite database at the given path and initialises
// the schema.
func New(dbPath string) (*Store, error) {
	// Ensure parent directory exists
	dir := filepath.Dir(dbPath)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("creating db directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=on&_busy_timeout=30000")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	// Connection pool settings for SQLite.
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(30 * time.Minute)

	return &Store{
		db:      db,
		entropy: ulid.Monotonic(rand.Reader, 0),
	}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// DB returns the underlying *sql.DB for advanced queries.
func (s *Store) DB() *sql.DB {
	return s.db
}

// --- Run operations ---

// SaveRun inserts a run and its three result tables in one transaction.
// A fresh ULID is generated and returned as the run ID; run.ID is ignored
// and created_at defaults in the database.
func (s *Store) SaveRun(ctx context.Context, run Run, counts []CountRow, hits []HitRow, flags []FlagRow) (string, error) {
	runID := ulid.MustNew(ulid.Now(), s.entropy).String()

	err := s.inTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO runs (id, input_path, schema_path, text_columns, record_count, subtheme_count, hit_count)
			VALUES (?, ?, ?, ?, ?, ?, ?)
		`, runID, run.InputPath, run.SchemaPath, run.TextColumns,
			run.RecordCount, run.SubthemeCount, run.HitCount); err != nil {
			return fmt.Errorf("inserting run: %w", err)
		}

		stmt, err := tx.PrepareContext(ctx, `
			INSERT INTO subtheme_counts (run_id, theme_id, theme_name, subtheme_id, subtheme_name, paper_count, keywords_count)
			VALUES (?, ?, ?, ?, ?, ?, ?)
		`)
		if err != nil {
			return err
		}
		defer stmt.Close()
		for _, c := range counts {
			if _, err := stmt.ExecContext(ctx, runID, c.ThemeID, c.ThemeName,
				c.SubthemeID, c.SubthemeName, c.PaperCount, c.KeywordsCount); err != nil {
				return fmt.Errorf("inserting count row: %w", err)
			}
		}

		hitStmt, err := tx.PrepareContext(ctx, `
			INSERT INTO subtheme_hits (run_id, paper_id, theme_id, theme_name, subtheme_id, subtheme_name)
			VALUES (?, ?, ?, ?, ?, ?)
		`)
		if err != nil {
			return err
		}
		defer hitStmt.Close()
		for _, h := range hits {
			if _, err := hitStmt.ExecContext(ctx, runID, h.PaperID, h.ThemeID,
				h.ThemeName, h.SubthemeID, h.SubthemeName); err != nil {
				return fmt.Errorf("inserting hit row: %w", err)
			}
		}

		flagStmt, err := tx.PrepareContext(ctx, `
			INSERT INTO paper_flags (run_id, paper_id, subtheme, matched)
			VALUES (?, ?, ?, ?)
		`)
		if err != nil {
			return err
		}
		defer flagStmt.Close()
		for _, fl := range flags {
			if _, err := flagStmt.ExecContext(ctx, runID, fl.PaperID, fl.Subtheme, fl.Matched); err != nil {
				return fmt.Errorf("inserting flag row: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	return runID, nil
}

// GetRun retrieves a run by ID.
func (s *Store) GetRun(ctx context.Context, runID string) (*Run, error) {
	run := &Run{}
	err := s.db.QueryRowContext(ctx, `
		SELECT id, input_path, schema_path, text_columns, record_count, subtheme_count, hit_count, created_at
		FROM runs WHERE id = ?
	`, runID).Scan(&run.ID, &run.InputPath, &run.SchemaPath, &run.TextColumns,
		&run.RecordCount, &run.SubthemeCount, &run.HitCount, &run.CreatedAt)
	if err != nil {
		return nil, err
	}
	return run, nil
}

// ListRuns returns all runs, newest first. ULIDs sort lexicographically by
// creation time, so ordering by id is ordering by time.
func (s *Store) ListRuns(ctx context.Context) ([]Run, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, input_path, schema_path, text_columns, record_count, subtheme_count, hit_count, created_at
		FROM runs ORDER BY id DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		if err := rows.Scan(&r.ID, &r.InputPath, &r.SchemaPath, &r.TextColumns,
			&r.RecordCount, &r.SubthemeCount, &r.HitCount, &r.CreatedAt); err != nil {
			return nil, err
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// RunCounts returns a run's count table in stored order.
func (s *Store) RunCounts(ctx context.Context, runID string) ([]CountRow, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT theme_id, theme_name, subtheme_id, subtheme_name, paper_count, keywords_count
		FROM subtheme_counts WHERE run_id = ? ORDER BY rowid
	`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var counts []CountRow
	for rows.Next() {
		var c CountRow
		if err := rows.Scan(&c.ThemeID, &c.ThemeName, &c.SubthemeID,
			&c.SubthemeName, &c.PaperCount, &c.KeywordsCount); err != nil {
			return nil, err
		}
		counts = append(counts, c)
	}
	return counts, rows.Err()
}

// RunHits returns a run's hit table in stored order.
func (s *Store) RunHits(ctx context.Context, runID string) ([]HitRow, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT paper_id, theme_id, theme_name, subtheme_id, subtheme_name
		FROM subtheme_hits WHERE run_id = ? ORDER BY rowid
	`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var hits []HitRow
	for rows.Next() {
		var h HitRow
		if err := rows.Scan(&h.PaperID, &h.ThemeID, &h.ThemeName,
			&h.SubthemeID, &h.SubthemeName); err != nil {
			return nil, err
		}
		hits = append(hits, h)
	}
	return hits, rows.Err()
}

// RunFlags returns a run's long-form flag table in stored order.
func (s *Store) RunFlags(ctx context.Context, runID string) ([]FlagRow, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT paper_id, subtheme, matched
		FROM paper_flags WHERE run_id = ? ORDER BY rowid
	`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var flags []FlagRow
	for rows.Next() {
		var f FlagRow
		if err := rows.Scan(&f.PaperID, &f.Subtheme, &f.Matched); err != nil {
			return nil, err
		}
		flags = append(flags, f)
	}
	return flags, rows.Err()
}

// DeleteRun removes a run and all its result rows.
func (s *Store) DeleteRun(ctx context.Context, runID string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM runs WHERE id = ?", runID)
	return err
}

// --- helpers ---

func (s *Store) inTx(ctx context.Context, fn func(*sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit()
}
