package commands

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/afero"

	"filesum/internal/adapters/filesystem"
	"filesum/internal/application"
	"filesum/internal/domain"
)

func newTestResolver(t *testing.T, files map[string]string) *filesystem.Resolver {
	t.Helper()

	fsys := afero.NewMemMapFs()
	for path, content := range files {
		if err := afero.WriteFile(fsys, path, []byte(content), 0644); err != nil {
			t.Fatalf("failed to write %s: %v", path, err)
		}
	}
	return filesystem.NewResolver(fsys)
}

func TestSumCommand_Validate(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		record  bool
		store   bool
		wantErr bool
		errMsg  string
	}{
		{name: "valid path", path: "/v/a.txt"},
		{name: "empty path", path: "", wantErr: true, errMsg: "path is required"},
		{name: "whitespace path", path: "  ", wantErr: true, errMsg: "path is required"},
		{name: "record without store", path: "/v/a.txt", record: true, wantErr: true, errMsg: "no snapshot store"},
		{name: "record with store", path: "/v/a.txt", record: true, store: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := &SumCommand{Path: tt.path, Record: tt.record}
			if tt.store {
				cmd.store = &memoryStore{}
			}
			err := cmd.Validate()

			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error containing %q, got nil", tt.errMsg)
					return
				}
				if !contains(err.Error(), tt.errMsg) {
					t.Errorf("expected error containing %q, got %q", tt.errMsg, err.Error())
				}
			} else if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestSumCommand_Execute(t *testing.T) {
	resolver := newTestResolver(t, map[string]string{
		"/v/a.txt": "15\nb.txt\n20",
		"/v/b.txt": "5\n10",
	})

	result, err := NewSumCommand(resolver, nil, "/v/./a.txt").Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if result.Root != "/v/a.txt" {
		t.Errorf("expected normalized root, got %s", result.Root)
	}
	if result.Total() != 50 {
		t.Errorf("expected total 50, got %v", result.Total())
	}
	if result.Run != nil {
		t.Error("expected no run without Record")
	}
}

func TestSumCommand_Records(t *testing.T) {
	resolver := newTestResolver(t, map[string]string{"/v/a.txt": "1\n2"})
	store := &memoryStore{}

	cmd := NewSumCommand(resolver, store, "/v/a.txt")
	cmd.Record = true
	cmd.now = func() time.Time { return time.UnixMilli(42) }

	result, err := cmd.Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if len(store.runs) != 1 {
		t.Fatalf("expected 1 recorded run, got %d", len(store.runs))
	}
	run := store.runs[0]
	if run != result.Run {
		t.Error("expected result to carry the recorded run")
	}
	if run.ID == "" || run.Total != 3 || !run.CreatedAt.Equal(time.UnixMilli(42)) {
		t.Errorf("unexpected run %+v", run)
	}
	if diff := cmp.Diff([]domain.Entry{{Path: "/v/a.txt", Total: 3}}, run.Entries); diff != "" {
		t.Errorf("entries mismatch (-want +got):\n%s", diff)
	}
}

func TestSumCommand_RecordFailure(t *testing.T) {
	resolver := newTestResolver(t, map[string]string{"/v/a.txt": "1"})
	store := &memoryStore{saveErr: errors.New("disk full")}

	cmd := NewSumCommand(resolver, store, "/v/a.txt")
	cmd.Record = true

	_, err := cmd.Execute(context.Background())
	if err == nil || !contains(err.Error(), "disk full") {
		t.Errorf("expected wrapped save error, got %v", err)
	}
}

func TestSumCommand_PropagatesCycle(t *testing.T) {
	resolver := newTestResolver(t, map[string]string{
		"/v/a.txt": "b.txt",
		"/v/b.txt": "a.txt",
	})

	_, err := NewSumCommand(resolver, nil, "/v/a.txt").Execute(context.Background())
	if !errors.Is(err, application.ErrCyclicReference) {
		t.Errorf("expected cyclic reference, got %v", err)
	}
}

func TestTreeCommand_Execute(t *testing.T) {
	resolver := newTestResolver(t, map[string]string{
		"/v/a.txt": "b.txt\n100",
		"/v/b.txt": "3",
	})

	root, err := NewTreeCommand(resolver, "/v/a.txt").Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if root.Total != 103 || len(root.Children) != 1 {
		t.Errorf("unexpected tree root %+v", root)
	}

	if _, err := NewTreeCommand(resolver, "").Execute(context.Background()); err == nil {
		t.Error("expected validation error for empty path")
	}
}
