// Package sqlite persists run history for the orchestrator.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/sentinelsweep/sweeper/internal/domain/entities"
	_ "modernc.org/sqlite" // SQLite driver
)

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id          TEXT PRIMARY KEY,
	started_at  TEXT NOT NULL,
	finished_at TEXT NOT NULL,
	outcome     TEXT NOT NULL,
	scan_exit   INTEGER NOT NULL,
	report_path TEXT NOT NULL DEFAULT '',
	log_path    TEXT NOT NULL DEFAULT '',
	failure     TEXT NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS idx_runs_started_at ON runs(started_at);
`

// HistoryStore records finished run sessions in an SQLite database under
// the project's state directory. History is advisory: callers treat store
// failures as warnings, never as run failures.
type HistoryStore struct {
	db *sql.DB
}

// OpenHistory opens (creating when needed) the history database for root.
func OpenHistory(root string) (*HistoryStore, error) {
	stateDir := filepath.Join(root, ".sweeper")
	if err := os.MkdirAll(stateDir, 0750); err != nil {
		return nil, fmt.Errorf("failed to create state directory: %w", err)
	}

	db, err := sql.Open("sqlite", filepath.Join(stateDir, "history.db"))
	if err != nil {
		return nil, fmt.Errorf("failed to open history database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to apply history schema: %w", err)
	}

	return &HistoryStore{db: db}, nil
}

// Record inserts one finished session.
func (s *HistoryStore) Record(ctx context.Context, session *entities.RunSession) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO runs (id, started_at, finished_at, outcome, scan_exit, report_path, log_path, failure)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		session.ID,
		session.StartedAt.UTC().Format(time.RFC3339Nano),
		session.FinishedAt.UTC().Format(time.RFC3339Nano),
		string(session.Outcome),
		session.ScanExit,
		session.ReportPath,
		session.LogPath,
		session.Failure,
	)
	if err != nil {
		return fmt.Errorf("failed to record run: %w", err)
	}
	return nil
}

// List returns the most recent runs, newest first.
func (s *HistoryStore) List(ctx context.Context, limit int) ([]*entities.RunSession, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, started_at, finished_at, outcome, scan_exit, report_path, log_path, failure
		 FROM runs ORDER BY started_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	//nolint:errcheck // Defer close on read-only rows
	defer rows.Close()

	var sessions []*entities.RunSession
	for rows.Next() {
		var (
			sess              entities.RunSession
			started, finished string
			outcome           string
		)
		if err := rows.Scan(&sess.ID, &started, &finished, &outcome,
			&sess.ScanExit, &sess.ReportPath, &sess.LogPath, &sess.Failure); err != nil {
			return nil, fmt.Errorf("failed to scan run row: %w", err)
		}
		sess.State = entities.StateFinished
		sess.Outcome = entities.RunOutcome(outcome)
		if t, err := time.Parse(time.RFC3339Nano, started); err == nil {
			sess.StartedAt = t
		}
		if t, err := time.Parse(time.RFC3339Nano, finished); err == nil {
			sess.FinishedAt = t
		}
		sessions = append(sessions, &sess)
	}
	return sessions, rows.Err()
}

// Close releases the underlying database.
func (s *HistoryStore) Close() error {
	return s.db.Close()
}
