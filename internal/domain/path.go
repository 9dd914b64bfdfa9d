package domain

import "path/filepath"

// NormalizePath returns the canonical key for a file: "." and ".." segments
// resolved and separators made uniform. Relative paths stay relative.
func NormalizePath(path string) string {
	return filepath.Clean(path)
}

// ReferencePath returns the normalized path a line names, relative to the
// directory holding file. The line is joined verbatim.
func ReferencePath(file, line string) string {
	return NormalizePath(filepath.Join(filepath.Dir(file), line))
}
