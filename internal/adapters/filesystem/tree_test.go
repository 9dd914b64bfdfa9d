package filesystem

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/google/go-cmp/cmp"
	"github.com/spf13/afero"

	"filesum/internal/domain"
)

func writeMem(t *testing.T, fsys afero.Fs, path, content string) {
	t.Helper()

	if err := afero.WriteFile(fsys, path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

func TestResolveTree_Structure(t *testing.T) {
	fsys := afero.NewMemMapFs()
	writeMem(t, fsys, "/v/a.txt", "b.txt\n100")
	writeMem(t, fsys, "/v/b.txt", "c.txt\nd.txt\n20")
	writeMem(t, fsys, "/v/c.txt", "5")
	writeMem(t, fsys, "/v/d.txt", "10")

	root, err := NewResolver(fsys).ResolveTree(context.Background(), "/v/a.txt")
	if err != nil {
		t.Fatalf("ResolveTree failed: %v", err)
	}

	if root.Total != 135 || root.Literal != 100 {
		t.Errorf("expected root total 135 literal 100, got %v / %v", root.Total, root.Literal)
	}
	if len(root.Children) != 1 {
		t.Fatalf("expected 1 child, got %d", len(root.Children))
	}

	b := root.Children[0]
	if b.Parent != root {
		t.Error("expected child to point at its parent")
	}
	var childPaths []string
	for _, c := range b.Children {
		childPaths = append(childPaths, c.Path)
	}
	if diff := cmp.Diff([]string{"/v/c.txt", "/v/d.txt"}, childPaths); diff != "" {
		t.Errorf("children mismatch (-want +got):\n%s", diff)
	}
	if b.Literal != 20 || b.Total != 35 {
		t.Errorf("expected b literal 20 total 35, got %v / %v", b.Literal, b.Total)
	}
}

func TestResolveTree_TotalsMatchResolve(t *testing.T) {
	fsys := afero.NewMemMapFs()
	writeMem(t, fsys, "/v/a.txt", "15\nnested/b.txt\n20\nmissing.txt")
	writeMem(t, fsys, "/v/nested/b.txt", "5\n10\n../c.txt")
	writeMem(t, fsys, "/v/c.txt", "-1.5")

	resolver := NewResolver(fsys)
	tree, err := resolver.ResolveTree(context.Background(), "/v/a.txt")
	if err != nil {
		t.Fatalf("ResolveTree failed: %v", err)
	}
	flat, err := resolver.Resolve(context.Background(), "/v/a.txt")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	if diff := cmp.Diff(flat, tree.Totals()); diff != "" {
		t.Errorf("tree totals differ from Resolve (-resolve +tree):\n%s", diff)
	}
	want := domain.ResultMap{"/v/a.txt": 48.5, "/v/nested/b.txt": 13.5, "/v/c.txt": -1.5}
	if diff := cmp.Diff(want, flat); diff != "" {
		t.Errorf("result mismatch (-want +got):\n%s", diff)
	}
}

func TestResolveTree_MissingRootIsMarked(t *testing.T) {
	root, err := NewResolver(afero.NewMemMapFs()).ResolveTree(context.Background(), "/v/none.txt")
	if err != nil {
		t.Fatalf("ResolveTree failed: %v", err)
	}
	if root.Exists {
		t.Error("expected missing root to be marked as not existing")
	}
	if root.Total != 0 || !root.IsLeaf() {
		t.Errorf("expected empty leaf, got total %v with %d children", root.Total, len(root.Children))
	}
}

func TestResolve_NumericFileNameCountsTwice(t *testing.T) {
	fsys := afero.NewMemMapFs()
	writeMem(t, fsys, "/v/a.txt", "5")
	writeMem(t, fsys, "/v/5", "100")

	result, err := NewResolver(fsys).Resolve(context.Background(), "/v/a.txt")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	want := domain.ResultMap{"/v/a.txt": 105, "/v/5": 100}
	if diff := cmp.Diff(want, result); diff != "" {
		t.Errorf("result mismatch (-want +got):\n%s", diff)
	}
}

func TestResolve_LogsIgnoredLines(t *testing.T) {
	fsys := afero.NewMemMapFs()
	writeMem(t, fsys, "/v/a.txt", "1\nghost.txt")

	var buf bytes.Buffer
	logger := log.New(&buf)
	logger.SetLevel(log.DebugLevel)

	if _, err := NewResolver(fsys, WithLogger(logger)).Resolve(context.Background(), "/v/a.txt"); err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	if !strings.Contains(buf.String(), "ghost.txt") {
		t.Errorf("expected debug log to mention ghost.txt, got %q", buf.String())
	}
}

func TestReadFile(t *testing.T) {
	fsys := afero.NewMemMapFs()
	writeMem(t, fsys, "/v/a.txt", "1\n2")
	resolver := NewResolver(fsys)

	content, err := resolver.ReadFile("/v/./a.txt")
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if content != "1\n2" {
		t.Errorf("unexpected content %q", content)
	}

	if _, err := resolver.ReadFile("/v/missing.txt"); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestResolve_ByteOrderMark(t *testing.T) {
	fsys := afero.NewMemMapFs()
	writeMem(t, fsys, "/p/bom.txt", "\uFEFF10\n20")
	writeMem(t, fsys, "/p/root.txt", "\uFEFFbom.txt\n1")

	result, err := NewResolver(fsys).Resolve(context.Background(), "/p/root.txt")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	want := domain.ResultMap{"/p/root.txt": 31, "/p/bom.txt": 30}
	if diff := cmp.Diff(want, result); diff != "" {
		t.Errorf("result mismatch (-want +got):\n%s", diff)
	}
}
