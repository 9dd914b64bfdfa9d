package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"filesum/internal/domain"
)

// Format selects how totals are written
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat validates a format name
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(name)); f {
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("unknown format %q (expected text, json or yaml)", name)
	}
}

// Totals writes a ResultMap in the given format
func Totals(w io.Writer, totals domain.ResultMap, format Format) error {
	switch format {
	case FormatJSON:
		return JSON(w, totals)
	case FormatYAML:
		return YAML(w, totals)
	default:
		return Text(w, totals)
	}
}

// Text writes one "path<TAB>total" line per entry, sorted by path
func Text(w io.Writer, totals domain.ResultMap) error {
	for _, e := range totals.Entries() {
		if _, err := fmt.Fprintf(w, "%s\t%s\n", e.Path, domain.FormatTotal(e.Total)); err != nil {
			return err
		}
	}
	return nil
}

// JSON writes the totals as an indented object keyed by path
func JSON(w io.Writer, totals domain.ResultMap) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(totals)
}

// YAML writes the totals as a mapping keyed by path
func YAML(w io.Writer, totals domain.ResultMap) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(map[string]float64(totals)); err != nil {
		return err
	}
	return enc.Close()
}

// Tree writes an indented tree with each file's total
func Tree(w io.Writer, node *domain.SumNode) error {
	var sb strings.Builder
	writeTree(&sb, node, "")
	_, err := io.WriteString(w, sb.String())
	return err
}

func writeTree(sb *strings.Builder, node *domain.SumNode, prefix string) {
	marker := ""
	if !node.Exists {
		marker = " (missing)"
	}
	fmt.Fprintf(sb, "%s%s  %s%s\n", prefix, node.Path, domain.FormatTotal(node.Total), marker)
	for _, child := range node.Children {
		writeTree(sb, child, prefix+"  ")
	}
}

// Changes writes one line per change: kind, path, before -> after
func Changes(w io.Writer, changes []domain.Change) error {
	if len(changes) == 0 {
		_, err := fmt.Fprintln(w, "No changes")
		return err
	}
	for _, c := range changes {
		var line string
		switch c.Kind {
		case domain.ChangeAdded:
			line = fmt.Sprintf("+ %s\t%s", c.Path, domain.FormatTotal(c.After))
		case domain.ChangeRemoved:
			line = fmt.Sprintf("- %s\t%s", c.Path, domain.FormatTotal(c.Before))
		default:
			line = fmt.Sprintf("~ %s\t%s -> %s", c.Path, domain.FormatTotal(c.Before), domain.FormatTotal(c.After))
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// Runs writes one summary line per recorded run
func Runs(w io.Writer, runs []domain.Run) error {
	if len(runs) == 0 {
		_, err := fmt.Fprintln(w, "No recorded runs")
		return err
	}
	for _, r := range runs {
		if _, err := fmt.Fprintf(w, "%s  %s  %s\t%s\n",
			r.ID, r.CreatedAt.Format("2006-01-02 15:04:05"), r.Root, domain.FormatTotal(r.Total)); err != nil {
			return err
		}
	}
	return nil
}
