package commands

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"filesum/internal/application"
	"filesum/internal/domain"
	"filesum/internal/ports"
)

// SumResult contains the result of resolving a file
type SumResult struct {
	Root   string // Normalized root path
	Totals domain.ResultMap
	Run    *domain.Run // Set when the resolution was recorded
}

// Total returns the root file's total
func (r *SumResult) Total() float64 {
	return r.Totals[r.Root]
}

// SumCommand resolves a file and optionally records the result
type SumCommand struct {
	resolver ports.SumResolver
	store    ports.SnapshotStore
	logger   *log.Logger
	now      func() time.Time

	Path   string
	Record bool
}

// NewSumCommand creates a new SumCommand. store may be nil when recording
// is not wanted.
func NewSumCommand(resolver ports.SumResolver, store ports.SnapshotStore, path string) *SumCommand {
	return &SumCommand{
		resolver: resolver,
		store:    store,
		logger:   log.New(io.Discard),
		now:      time.Now,
		Path:     path,
	}
}

// WithLogger sets the logger used to report recorded runs
func (c *SumCommand) WithLogger(logger *log.Logger) *SumCommand {
	if logger != nil {
		c.logger = logger
	}
	return c
}

// Validate checks the command input
func (c *SumCommand) Validate() error {
	if err := application.ValidateRequired("path", c.Path); err != nil {
		return err
	}
	if c.Record && c.store == nil {
		return application.ErrNoStore
	}
	return nil
}

// Execute resolves the file and records a run when Record is set
func (c *SumCommand) Execute(ctx context.Context) (*SumResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	totals, err := c.resolver.Resolve(ctx, c.Path)
	if err != nil {
		return nil, err
	}

	result := &SumResult{
		Root:   domain.NormalizePath(c.Path),
		Totals: totals,
	}

	if c.Record {
		run := domain.NewRun(uuid.NewString(), result.Root, totals, c.now())
		if err := c.store.SaveRun(run); err != nil {
			return nil, fmt.Errorf("failed to record run: %w", err)
		}
		c.logger.Info("recorded run", "id", run.ID, "root", run.Root, "total", run.Total)
		result.Run = run
	}

	return result, nil
}
