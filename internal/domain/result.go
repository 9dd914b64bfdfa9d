package domain

import (
	"maps"
	"slices"
	"strconv"
)

// ResultMap maps a normalized file path to its computed total
type ResultMap map[string]float64

// Entry is a single path/total pair from a ResultMap
type Entry struct {
	Path  string
	Total float64
}

// Merge returns a new map holding the entries of m overlaid with other.
// Keys present in both take the value from other.
func (m ResultMap) Merge(other ResultMap) ResultMap {
	merged := make(ResultMap, len(m)+len(other))
	maps.Copy(merged, m)
	maps.Copy(merged, other)
	return merged
}

// Total returns the total recorded for path after normalizing it
func (m ResultMap) Total(path string) (float64, bool) {
	v, ok := m[NormalizePath(path)]
	return v, ok
}

// Paths returns the keys in ascending order
func (m ResultMap) Paths() []string {
	return slices.Sorted(maps.Keys(m))
}

// Entries returns the map as a slice sorted by path
func (m ResultMap) Entries() []Entry {
	entries := make([]Entry, 0, len(m))
	for _, p := range m.Paths() {
		entries = append(entries, Entry{Path: p, Total: m[p]})
	}
	return entries
}

// FormatTotal renders a total with the shortest exact decimal representation
func FormatTotal(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
