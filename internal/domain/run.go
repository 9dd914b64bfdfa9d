package domain

import (
	"slices"
	"strings"
	"time"
)

// Run is a recorded resolution of one root file
type Run struct {
	ID        string
	Root      string // Normalized root path
	Total     float64
	CreatedAt time.Time
	Entries   []Entry // Sorted by path; empty when only the summary was loaded
}

// NewRun builds a run from a resolution result
func NewRun(id, root string, totals ResultMap, at time.Time) *Run {
	root = NormalizePath(root)
	return &Run{
		ID:        id,
		Root:      root,
		Total:     totals[root],
		CreatedAt: at,
		Entries:   totals.Entries(),
	}
}

// Totals rebuilds the ResultMap recorded by the run
func (r *Run) Totals() ResultMap {
	totals := make(ResultMap, len(r.Entries))
	for _, e := range r.Entries {
		totals[e.Path] = e.Total
	}
	return totals
}

// ChangeKind classifies a difference between two results
type ChangeKind int

const (
	ChangeAdded ChangeKind = iota
	ChangeRemoved
	ChangeModified
)

func (k ChangeKind) String() string {
	switch k {
	case ChangeAdded:
		return "added"
	case ChangeRemoved:
		return "removed"
	case ChangeModified:
		return "changed"
	default:
		return "unknown"
	}
}

// Change describes how one path's total moved between two results
type Change struct {
	Path   string
	Kind   ChangeKind
	Before float64
	After  float64
}

// Diff compares two results and returns the changes sorted by path
func Diff(before, after ResultMap) []Change {
	var changes []Change
	for path, b := range before {
		a, ok := after[path]
		switch {
		case !ok:
			changes = append(changes, Change{Path: path, Kind: ChangeRemoved, Before: b})
		case a != b:
			changes = append(changes, Change{Path: path, Kind: ChangeModified, Before: b, After: a})
		}
	}
	for path, a := range after {
		if _, ok := before[path]; !ok {
			changes = append(changes, Change{Path: path, Kind: ChangeAdded, After: a})
		}
	}

	slices.SortFunc(changes, func(x, y Change) int {
		return strings.Compare(x.Path, y.Path)
	})
	return changes
}
