package mcp

import (
	"context"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/afero"

	"filesum/internal/adapters/filesystem"
	"filesum/internal/adapters/sqlite"
)

func newTestResolver(t *testing.T) *filesystem.Resolver {
	t.Helper()

	fsys := afero.NewMemMapFs()
	files := map[string]string{
		"/v/a.txt": "15\nb.txt\n20",
		"/v/b.txt": "5\n10",
		"/v/x.txt": "y.txt",
		"/v/y.txt": "x.txt",
	}
	for path, content := range files {
		if err := afero.WriteFile(fsys, path, []byte(content), 0644); err != nil {
			t.Fatalf("failed to write %s: %v", path, err)
		}
	}
	return filesystem.NewResolver(fsys)
}

func callTool(t *testing.T, handler server.ToolHandlerFunc, args map[string]any) (string, bool) {
	t.Helper()

	req := mcp.CallToolRequest{}
	req.Params.Arguments = args

	result, err := handler(context.Background(), req)
	if err != nil {
		t.Fatalf("handler returned protocol error: %v", err)
	}

	var sb strings.Builder
	for _, c := range result.Content {
		switch tc := c.(type) {
		case mcp.TextContent:
			sb.WriteString(tc.Text)
		case *mcp.TextContent:
			sb.WriteString(tc.Text)
		}
	}
	return sb.String(), result.IsError
}

func TestSumHandler(t *testing.T) {
	text, isErr := callTool(t, sumHandler(newTestResolver(t), nil), map[string]any{"path": "/v/a.txt"})
	if isErr {
		t.Fatalf("unexpected tool error: %s", text)
	}

	want := "/v/a.txt\t50\n/v/b.txt\t15\n"
	if text != want {
		t.Errorf("expected %q, got %q", want, text)
	}
}

func TestSumHandler_Errors(t *testing.T) {
	resolver := newTestResolver(t)

	tests := []struct {
		name string
		args map[string]any
		want string
	}{
		{"missing path", map[string]any{}, "path is required"},
		{"cycle", map[string]any{"path": "/v/x.txt"}, "cyclic reference"},
		{"record without store", map[string]any{"path": "/v/a.txt", "record": true}, "no snapshot store"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text, isErr := callTool(t, sumHandler(resolver, nil), tt.args)
			if !isErr {
				t.Fatalf("expected tool error, got %q", text)
			}
			if !strings.Contains(text, tt.want) {
				t.Errorf("expected error containing %q, got %q", tt.want, text)
			}
		})
	}
}

func TestTreeHandler(t *testing.T) {
	text, isErr := callTool(t, treeHandler(newTestResolver(t)), map[string]any{"path": "/v/a.txt"})
	if isErr {
		t.Fatalf("unexpected tool error: %s", text)
	}

	want := "/v/a.txt  50\n  /v/b.txt  15\n"
	if text != want {
		t.Errorf("expected %q, got %q", want, text)
	}
}

func TestReadFileHandler(t *testing.T) {
	text, isErr := callTool(t, readFileHandler(newTestResolver(t)), map[string]any{"path": "/v/b.txt"})
	if isErr || text != "5\n10" {
		t.Errorf("expected file content, got %q (error=%v)", text, isErr)
	}

	_, isErr = callTool(t, readFileHandler(newTestResolver(t)), map[string]any{"path": "/v/none.txt"})
	if !isErr {
		t.Error("expected tool error for missing file")
	}
}

func TestHistoryTools_RecordAndList(t *testing.T) {
	store := sqlite.NewStore()
	if err := store.Open(t.TempDir() + "/runs.db"); err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	resolver := newTestResolver(t)

	text, isErr := callTool(t, sumHandler(resolver, store), map[string]any{"path": "/v/a.txt", "record": true})
	if isErr || !strings.Contains(text, "recorded run") {
		t.Fatalf("expected recorded run, got %q (error=%v)", text, isErr)
	}

	text, isErr = callTool(t, historyHandler(store), map[string]any{"root": "/v/a.txt"})
	if isErr || !strings.Contains(text, "/v/a.txt\t50") {
		t.Errorf("expected run listing, got %q (error=%v)", text, isErr)
	}

	text, isErr = callTool(t, diffHandler(resolver, store), map[string]any{"path": "/v/a.txt"})
	if isErr || text != "No changes\n" {
		t.Errorf("expected no changes, got %q (error=%v)", text, isErr)
	}
}

func TestHistoryHandler_NoStore(t *testing.T) {
	text, isErr := callTool(t, historyHandler(nil), map[string]any{})
	if !isErr || !strings.Contains(text, "no snapshot store") {
		t.Errorf("expected no store error, got %q", text)
	}
}
