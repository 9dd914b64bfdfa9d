package ports

import (
	"context"

	"filesum/internal/domain"
)

// SumResolver computes totals for a file and every file it references
type SumResolver interface {
	// Resolve returns the total of path and of every file reached from it,
	// keyed by normalized path. Missing files and unparsable lines count as 0.
	Resolve(ctx context.Context, path string) (domain.ResultMap, error)

	// ResolveTree performs the same walk and returns it as a tree
	ResolveTree(ctx context.Context, path string) (*domain.SumNode, error)

	// ReadFile returns the raw content of a file reachable by the resolver
	ReadFile(path string) (string, error)
}
