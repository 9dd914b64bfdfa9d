package commands

import (
	"context"

	"filesum/internal/application"
	"filesum/internal/domain"
	"filesum/internal/ports"
)

// DiffResult compares a fresh resolution against the latest recorded run
type DiffResult struct {
	Root     string
	Previous *domain.Run // nil when the root was never recorded
	Current  domain.ResultMap
	Changes  []domain.Change
}

// DiffRunsCommand resolves a file and diffs it against its latest run
type DiffRunsCommand struct {
	resolver ports.SumResolver
	store    ports.SnapshotStore
	Path     string
}

// NewDiffRunsCommand creates a new DiffRunsCommand
func NewDiffRunsCommand(resolver ports.SumResolver, store ports.SnapshotStore, path string) *DiffRunsCommand {
	return &DiffRunsCommand{
		resolver: resolver,
		store:    store,
		Path:     path,
	}
}

// Execute runs the diff command. Without a previous run every path is
// reported as added.
func (c *DiffRunsCommand) Execute(ctx context.Context) (*DiffResult, error) {
	if c.store == nil {
		return nil, application.ErrNoStore
	}
	if err := application.ValidateRequired("path", c.Path); err != nil {
		return nil, err
	}

	root := domain.NormalizePath(c.Path)
	previous, err := c.store.LatestRun(root)
	if err != nil {
		return nil, err
	}

	current, err := c.resolver.Resolve(ctx, root)
	if err != nil {
		return nil, err
	}

	var before domain.ResultMap
	if previous != nil {
		before = previous.Totals()
	}

	return &DiffResult{
		Root:     root,
		Previous: previous,
		Current:  current,
		Changes:  domain.Diff(before, current),
	}, nil
}
