package commands

import (
	"context"

	"filesum/internal/application"
	"filesum/internal/domain"
	"filesum/internal/ports"
)

// TreeCommand resolves a file and returns the resolution tree
type TreeCommand struct {
	resolver ports.SumResolver
	Path     string
}

// NewTreeCommand creates a new TreeCommand
func NewTreeCommand(resolver ports.SumResolver, path string) *TreeCommand {
	return &TreeCommand{
		resolver: resolver,
		Path:     path,
	}
}

// Execute runs the tree command
func (c *TreeCommand) Execute(ctx context.Context) (*domain.SumNode, error) {
	if err := application.ValidateRequired("path", c.Path); err != nil {
		return nil, err
	}
	return c.resolver.ResolveTree(ctx, c.Path)
}
