package commands

import (
	"context"

	"filesum/internal/application"
	"filesum/internal/domain"
	"filesum/internal/ports"
)

// HistoryCommand lists recorded runs, newest first
type HistoryCommand struct {
	store ports.SnapshotStore
	Root  string // Empty lists every root
	Limit int    // Zero returns all runs
}

// NewHistoryCommand creates a new HistoryCommand
func NewHistoryCommand(store ports.SnapshotStore, root string, limit int) *HistoryCommand {
	return &HistoryCommand{
		store: store,
		Root:  root,
		Limit: limit,
	}
}

// Execute runs the history command
func (c *HistoryCommand) Execute(ctx context.Context) ([]domain.Run, error) {
	if c.store == nil {
		return nil, application.ErrNoStore
	}
	if err := application.ValidateLimit("limit", c.Limit); err != nil {
		return nil, err
	}
	return c.store.ListRuns(c.Root, c.Limit)
}

// ShowRunCommand loads one recorded run with its entries
type ShowRunCommand struct {
	store ports.SnapshotStore
	ID    string
}

// NewShowRunCommand creates a new ShowRunCommand
func NewShowRunCommand(store ports.SnapshotStore, id string) *ShowRunCommand {
	return &ShowRunCommand{
		store: store,
		ID:    id,
	}
}

// Execute runs the show command
func (c *ShowRunCommand) Execute(ctx context.Context) (*domain.Run, error) {
	if c.store == nil {
		return nil, application.ErrNoStore
	}
	if err := application.ValidateRequired("runID", c.ID); err != nil {
		return nil, err
	}

	run, err := c.store.GetRun(c.ID)
	if err != nil {
		return nil, err
	}
	if run == nil {
		return nil, &application.RunNotFoundError{ID: c.ID}
	}
	return run, nil
}

// ForgetRunCommand deletes a recorded run
type ForgetRunCommand struct {
	store ports.SnapshotStore
	ID    string
}

// NewForgetRunCommand creates a new ForgetRunCommand
func NewForgetRunCommand(store ports.SnapshotStore, id string) *ForgetRunCommand {
	return &ForgetRunCommand{
		store: store,
		ID:    id,
	}
}

// Execute runs the forget command
func (c *ForgetRunCommand) Execute(ctx context.Context) error {
	if c.store == nil {
		return application.ErrNoStore
	}
	if err := application.ValidateRequired("runID", c.ID); err != nil {
		return err
	}

	deleted, err := c.store.DeleteRun(c.ID)
	if err != nil {
		return err
	}
	if !deleted {
		return &application.RunNotFoundError{ID: c.ID}
	}
	return nil
}
