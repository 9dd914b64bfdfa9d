package ports

import "filesum/internal/domain"

// SnapshotStore persists recorded resolutions
type SnapshotStore interface {
	// Lifecycle
	Open(dbPath string) error
	Close() error

	// SaveRun stores a run and its entries atomically
	SaveRun(run *domain.Run) error

	// ListRuns returns run summaries (without entries), newest first.
	// An empty root lists every root; a zero limit returns all runs.
	ListRuns(root string, limit int) ([]domain.Run, error)

	// GetRun returns a run with its entries, or nil when absent
	GetRun(id string) (*domain.Run, error)

	// LatestRun returns the newest run for root with its entries, or nil
	LatestRun(root string) (*domain.Run, error)

	// DeleteRun removes a run; it reports whether one was removed
	DeleteRun(id string) (bool, error)
}
