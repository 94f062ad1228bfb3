package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

// Store persists completed runs to SQLite so results can be compared across
// model or configuration changes.
type Store struct {
	db   *sql.DB
	path string
}

const (
	sqliteBusyCode          = 5
	busyRetryAttempts       = 5
	busyRetryInitialBackoff = 10 * time.Millisecond
	busyRetryMaxBackoff     = 200 * time.Millisecond
)

// Run describes one completed scoring run.
type Run struct {
	ID            string
	CreatedAt     time.Time
	AudioDir      string
	TranscriptDir string
	Engine        string
	Records       int
	MeanWER       float64
}

// Result is one record's score within a run.
type Result struct {
	Session     string
	Participant string
	Record      string
	WER         float64
}

// Open initializes or connects to the history database at path.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("ensure history directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
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

	store := &Store{db: db, path: path}
	if err := store.initSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
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

func (s *Store) initSchema(ctx context.Context) error {
	const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id TEXT PRIMARY KEY,
	created_at TEXT NOT NULL,
	audio_dir TEXT NOT NULL,
	transcript_dir TEXT NOT NULL,
	engine TEXT NOT NULL,
	records INTEGER NOT NULL,
	mean_wer REAL NOT NULL
);
CREATE TABLE IF NOT EXISTS results (
	run_id TEXT NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
	session TEXT NOT NULL,
	participant TEXT NOT NULL,
	record TEXT NOT NULL,
	wer REAL NOT NULL,
	PRIMARY KEY (run_id, session, participant, record)
);
CREATE INDEX IF NOT EXISTS idx_results_record ON results(record);
`
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("init history schema: %w", err)
	}
	return nil
}

func isSQLiteBusy(err error) bool {
	if err == nil {
		return false
	}
	var coder interface{ Code() int }
	if errors.As(err, &coder) && coder.Code() == sqliteBusyCode {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "SQLITE_BUSY") || strings.Contains(msg, "database is locked")
}

func retryOnBusy(ctx context.Context, op func() error) error {
	delay := busyRetryInitialBackoff
	var lastErr error
	for attempt := 0; attempt < busyRetryAttempts; attempt++ {
		lastErr = op()
		if lastErr == nil {
			return nil
		}
		if !isSQLiteBusy(lastErr) || attempt == busyRetryAttempts-1 {
			break
		}
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return ctx.Err()
		}
		if next := delay * 2; next <= busyRetryMaxBackoff {
			delay = next
		}
	}
	return lastErr
}

// RecordRun stores a completed run and its per-record results atomically.
func (s *Store) RecordRun(ctx context.Context, run Run, results []Result) error {
	if run.ID == "" {
		return errors.New("history: run id required")
	}
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now().UTC()
	}

	return retryOnBusy(ctx, func() error {
		tx, err := s.db.BeginTx(ctx, nil)
		if err != nil {
			return fmt.Errorf("begin history tx: %w", err)
		}
		defer func() {
			_ = tx.Rollback()
		}()

		if _, err := tx.ExecContext(ctx,
			`INSERT INTO runs (id, created_at, audio_dir, transcript_dir, engine, records, mean_wer)
			 VALUES (?, ?, ?, ?, ?, ?, ?)`,
			run.ID, run.CreatedAt.Format(time.RFC3339), run.AudioDir, run.TranscriptDir,
			run.Engine, run.Records, run.MeanWER,
		); err != nil {
			return fmt.Errorf("insert run: %w", err)
		}

		for _, result := range results {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO results (run_id, session, participant, record, wer)
				 VALUES (?, ?, ?, ?, ?)`,
				run.ID, result.Session, result.Participant, result.Record, result.WER,
			); err != nil {
				return fmt.Errorf("insert result %s: %w", result.Record, err)
			}
		}

		return tx.Commit()
	})
}

// ListRuns returns the most recent runs, newest first. A limit <= 0 returns
// all runs.
func (s *Store) ListRuns(ctx context.Context, limit int) ([]Run, error) {
	query := `SELECT id, created_at, audio_dir, transcript_dir, engine, records, mean_wer
		FROM runs ORDER BY created_at DESC, id DESC`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var run Run
		var created string
		if err := rows.Scan(&run.ID, &created, &run.AudioDir, &run.TranscriptDir, &run.Engine, &run.Records, &run.MeanWER); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		if ts, err := time.Parse(time.RFC3339, created); err == nil {
			run.CreatedAt = ts
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// RunResults returns the per-record results of a run, sorted by record name.
func (s *Store) RunResults(ctx context.Context, runID string) ([]Result, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT session, participant, record, wer FROM results
		 WHERE run_id = ? ORDER BY record, session, participant`, runID)
	if err != nil {
		return nil, fmt.Errorf("load run results: %w", err)
	}
	defer rows.Close()

	var results []Result
	for rows.Next() {
		var result Result
		if err := rows.Scan(&result.Session, &result.Participant, &result.Record, &result.WER); err != nil {
			return nil, fmt.Errorf("scan result: %w", err)
		}
		results = append(results, result)
	}
	return results, rows.Err()
}
