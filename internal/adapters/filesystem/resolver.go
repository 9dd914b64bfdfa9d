package filesystem

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"slices"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"

	"filesum/internal/application"
	"filesum/internal/domain"
	"filesum/internal/ports"
)

const byteOrderMark = "\uFEFF"

// Resolver implements ports.SumResolver on top of an afero filesystem
type Resolver struct {
	fs     afero.Fs
	logger *log.Logger
}

// Ensure Resolver implements SumResolver
var _ ports.SumResolver = (*Resolver)(nil)

// Option configures a Resolver
type Option func(*Resolver)

// WithLogger sets the logger used to report skipped references
func WithLogger(logger *log.Logger) Option {
	return func(r *Resolver) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// NewResolver creates a resolver reading from fsys
func NewResolver(fsys afero.Fs, opts ...Option) *Resolver {
	r := &Resolver{
		fs:     fsys,
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// NewOSResolver creates a resolver reading from the host filesystem
func NewOSResolver(opts ...Option) *Resolver {
	return NewResolver(afero.NewOsFs(), opts...)
}

// Resolve returns the totals of path and of every file it reaches.
// The only errors are a cyclic reference and context cancellation.
func (r *Resolver) Resolve(ctx context.Context, path string) (domain.ResultMap, error) {
	_, totals, err := r.visit(ctx, domain.NormalizePath(path), nil, nil)
	if err != nil {
		return nil, err
	}
	return totals, nil
}

// ResolveTree walks like Resolve but keeps the parent/child structure
func (r *Resolver) ResolveTree(ctx context.Context, path string) (*domain.SumNode, error) {
	node, _, err := r.visit(ctx, domain.NormalizePath(path), nil, nil)
	if err != nil {
		return nil, err
	}
	return node, nil
}

// ReadFile returns the content of a file
func (r *Resolver) ReadFile(path string) (string, error) {
	data, err := afero.ReadFile(r.fs, domain.NormalizePath(path))
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return string(data), nil
}

// visit resolves one normalized file. chain holds the files currently being
// resolved above it; each call returns a map it owns.
func (r *Resolver) visit(ctx context.Context, file string, parent *domain.SumNode, chain []string) (*domain.SumNode, domain.ResultMap, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, fmt.Errorf("resolving %s: %w", file, err)
	}

	if i := slices.Index(chain, file); i >= 0 {
		cycle := slices.Concat(chain[i:], []string{file})
		return nil, nil, &application.CycleError{Chain: cycle}
	}

	content, exists := r.load(file)
	node := &domain.SumNode{Path: file, Exists: exists, Parent: parent}
	totals := make(domain.ResultMap)
	below := slices.Concat(chain, []string{file})

	// A leading byte order mark is not part of the first line
	content = strings.TrimPrefix(content, byteOrderMark)
	for _, line := range strings.Split(strings.TrimSpace(content), "\n") {
		literal := domain.ParseNumber(line)
		node.Literal += literal
		node.Total += literal

		nested := domain.ReferencePath(file, line)
		if !r.isFile(nested) {
			if literal == 0 && strings.TrimSpace(line) != "" {
				r.logger.Debug("line contributes nothing", "file", file, "line", line)
			}
			continue
		}

		child, childTotals, err := r.visit(ctx, nested, node, below)
		if err != nil {
			return nil, nil, err
		}
		totals = totals.Merge(childTotals)
		node.Children = append(node.Children, child)
		node.Total += child.Total
	}

	totals[file] = node.Total
	return node, totals, nil
}

// load returns the file content and whether the file exists.
// Unreadable files are treated as empty.
func (r *Resolver) load(file string) (string, bool) {
	data, err := afero.ReadFile(r.fs, file)
	if errors.Is(err, fs.ErrNotExist) {
		r.logger.Debug("file does not exist", "file", file)
		return "", false
	}
	if err != nil {
		r.logger.Debug("treating unreadable file as empty", "file", file, "err", err)
		return "", true
	}
	return string(data), true
}

func (r *Resolver) isFile(path string) bool {
	info, err := r.fs.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
