package sqlite

import (
	"database/sql"

	"filesum/internal/domain"
)

// storeTx groups the writes of one run
type storeTx struct {
	tx *sql.Tx
}

func (s *Store) beginTx() (*storeTx, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return nil, err
	}
	return &storeTx{tx: tx}, nil
}

// insertRun adds the run summary row
func (t *storeTx) insertRun(run *domain.Run) error {
	_, err := t.tx.Exec(`
		INSERT INTO runs (id, root, total, created_at)
		VALUES (?, ?, ?, ?)
	`, run.ID, run.Root, run.Total, run.CreatedAt.UnixMilli())
	return err
}

// insertEntry adds one path total for a run
func (t *storeTx) insertEntry(runID string, e domain.Entry) error {
	_, err := t.tx.Exec(`
		INSERT OR REPLACE INTO entries (run_id, path, total)
		VALUES (?, ?, ?)
	`, runID, e.Path, e.Total)
	return err
}

func (t *storeTx) commit() error {
	return t.tx.Commit()
}

func (t *storeTx) rollback() {
	t.tx.Rollback()
}
