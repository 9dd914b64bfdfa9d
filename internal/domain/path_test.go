package domain

import (
	"path/filepath"
	"testing"
)

func TestNormalizePath(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"a/b/../c.txt", filepath.FromSlash("a/c.txt")},
		{"./a.txt", "a.txt"},
		{"a//b.txt", filepath.FromSlash("a/b.txt")},
		{"/tmp/x/./y.txt", filepath.FromSlash("/tmp/x/y.txt")},
		{"../a.txt", filepath.FromSlash("../a.txt")},
	}

	for _, tt := range tests {
		if got := NormalizePath(tt.in); got != tt.want {
			t.Errorf("NormalizePath(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestReferencePath(t *testing.T) {
	tests := []struct {
		name string
		file string
		line string
		want string
	}{
		{"sibling", "/data/a.txt", "b.txt", "/data/b.txt"},
		{"subdir", "/data/a.txt", "sub/c.txt", "/data/sub/c.txt"},
		{"parent", "/data/sub/a.txt", "../b.txt", "/data/b.txt"},
		{"relative root", "a.txt", "b.txt", "b.txt"},
		{"empty line names the directory", "/data/a.txt", "", "/data"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ReferencePath(filepath.FromSlash(tt.file), tt.line)
			if got != filepath.FromSlash(tt.want) {
				t.Errorf("ReferencePath(%q, %q) = %q, want %q", tt.file, tt.line, got, tt.want)
			}
		})
	}
}
