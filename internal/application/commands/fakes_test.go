package commands

import (
	"slices"
	"strings"

	"filesum/internal/domain"
)

// memoryStore is an in-memory ports.SnapshotStore for command tests
type memoryStore struct {
	runs    []*domain.Run
	saveErr error
}

func (s *memoryStore) Open(string) error { return nil }
func (s *memoryStore) Close() error      { return nil }

func (s *memoryStore) SaveRun(run *domain.Run) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.runs = append(s.runs, run)
	return nil
}

func (s *memoryStore) ListRuns(root string, limit int) ([]domain.Run, error) {
	var out []domain.Run
	for _, r := range slices.Backward(s.runs) {
		if root != "" && r.Root != domain.NormalizePath(root) {
			continue
		}
		summary := *r
		summary.Entries = nil
		out = append(out, summary)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

func (s *memoryStore) GetRun(id string) (*domain.Run, error) {
	for _, r := range s.runs {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, nil
}

func (s *memoryStore) LatestRun(root string) (*domain.Run, error) {
	for _, r := range slices.Backward(s.runs) {
		if r.Root == domain.NormalizePath(root) {
			return r, nil
		}
	}
	return nil, nil
}

func (s *memoryStore) DeleteRun(id string) (bool, error) {
	for i, r := range s.runs {
		if r.ID == id {
			s.runs = slices.Delete(s.runs, i, i+1)
			return true, nil
		}
	}
	return false, nil
}

func contains(s, substr string) bool {
	return strings.Contains(s, substr)
}
