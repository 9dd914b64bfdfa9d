package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"filesum/internal/domain"
	"filesum/internal/ports"

	_ "modernc.org/sqlite"
)

const schemaVersion = "1"

// Store implements ports.SnapshotStore using SQLite
type Store struct {
	db     *sql.DB
	dbPath string
}

// Ensure Store implements SnapshotStore
var _ ports.SnapshotStore = (*Store)(nil)

// NewStore creates a new SQLite snapshot store
func NewStore() *Store {
	return &Store{}
}

// Open initializes the database at dbPath, creating it if needed
func (s *Store) Open(dbPath string) error {
	// Expand ~ in path
	if len(dbPath) > 0 && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}
	s.dbPath = dbPath

	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return fmt.Errorf("failed to create store directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)")
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	// Pragmas + schema in a single batch
	_, err = db.Exec(`
		PRAGMA synchronous = NORMAL;
		PRAGMA busy_timeout = 5000;

		CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			root TEXT NOT NULL,
			total REAL NOT NULL,
			created_at INTEGER NOT NULL
		);
		CREATE TABLE IF NOT EXISTS entries (
			run_id TEXT NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
			path TEXT NOT NULL,
			total REAL NOT NULL,
			PRIMARY KEY (run_id, path)
		);
		CREATE TABLE IF NOT EXISTS meta (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_runs_root ON runs(root, created_at);
	`)
	if err != nil {
		db.Close()
		return fmt.Errorf("failed to setup database: %w", err)
	}

	if _, err := db.Exec(`INSERT OR REPLACE INTO meta (key, value) VALUES ('schema_version', ?)`, schemaVersion); err != nil {
		db.Close()
		return fmt.Errorf("failed to update metadata: %w", err)
	}

	return nil
}

// Close closes the database connection
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Path returns the database file backing the store
func (s *Store) Path() string {
	return s.dbPath
}

// SaveRun stores a run and its entries in one transaction
func (s *Store) SaveRun(run *domain.Run) error {
	tx, err := s.beginTx()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	if err := tx.insertRun(run); err != nil {
		tx.rollback()
		return fmt.Errorf("failed to insert run: %w", err)
	}
	for _, e := range run.Entries {
		if err := tx.insertEntry(run.ID, e); err != nil {
			tx.rollback()
			return fmt.Errorf("failed to insert entry %s: %w", e.Path, err)
		}
	}

	return tx.commit()
}

// ListRuns returns run summaries, newest first
func (s *Store) ListRuns(root string, limit int) ([]domain.Run, error) {
	query := `SELECT id, root, total, created_at FROM runs`
	var args []any
	if root != "" {
		query += ` WHERE root = ?`
		args = append(args, domain.NormalizePath(root))
	}
	query += ` ORDER BY created_at DESC, rowid DESC`
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []domain.Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, *run)
	}

	return runs, rows.Err()
}

// GetRun retrieves a run with its entries, or nil when absent
func (s *Store) GetRun(id string) (*domain.Run, error) {
	row := s.db.QueryRow(`SELECT id, root, total, created_at FROM runs WHERE id = ?`, id)
	return s.loadRun(row)
}

// LatestRun retrieves the newest run for root with its entries, or nil
func (s *Store) LatestRun(root string) (*domain.Run, error) {
	row := s.db.QueryRow(`
		SELECT id, root, total, created_at FROM runs
		WHERE root = ?
		ORDER BY created_at DESC, rowid DESC
		LIMIT 1
	`, domain.NormalizePath(root))
	return s.loadRun(row)
}

// DeleteRun removes a run and its entries
func (s *Store) DeleteRun(id string) (bool, error) {
	res, err := s.db.Exec(`DELETE FROM runs WHERE id = ?`, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(row rowScanner) (*domain.Run, error) {
	var run domain.Run
	var createdAt int64
	if err := row.Scan(&run.ID, &run.Root, &run.Total, &createdAt); err != nil {
		return nil, err
	}
	run.CreatedAt = time.UnixMilli(createdAt)
	return &run, nil
}

func (s *Store) loadRun(row *sql.Row) (*domain.Run, error) {
	run, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	entries, err := s.loadEntries(run.ID)
	if err != nil {
		return nil, err
	}
	run.Entries = entries
	return run, nil
}

func (s *Store) loadEntries(runID string) ([]domain.Entry, error) {
	rows, err := s.db.Query(`
		SELECT path, total FROM entries
		WHERE run_id = ?
		ORDER BY path
	`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []domain.Entry
	for rows.Next() {
		var e domain.Entry
		if err := rows.Scan(&e.Path, &e.Total); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}
