// Package report renders and persists the dump report: two header lines
// (source path, parse timestamp), a blank line, then the indented tree.
package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Report is the persisted output of one dump.
type Report struct {
	Source   string
	ParsedAt time.Time
	Tree     string
}

// Render returns the report text: headers, blank separator, tree, trailing
// newline. The timestamp renders as RFC 3339.
func (r *Report) Render() string {
	var sb strings.Builder
	sb.WriteString("Source: ")
	sb.WriteString(r.Source)
	sb.WriteString("\nParsed: ")
	sb.WriteString(r.ParsedAt.Format(time.RFC3339))
	sb.WriteString("\n\n")
	sb.WriteString(r.Tree)
	if !strings.HasSuffix(r.Tree, "\n") {
		sb.WriteByte('\n')
	}
	return sb.String()
}

// OutputPath returns where a report for the given input file lands inside
// outDir: the input's base name with ".txt" appended. The original
// extension is kept so dumps of a.py and a.go don't collide.
func OutputPath(outDir, inputPath string) string {
	return filepath.Join(outDir, filepath.Base(inputPath)+".txt")
}

// Write persists the report to OutputPath(outDir, r.Source), creating
// outDir if absent. A pre-existing report for the same base name is
// silently overwritten. Returns the path written.
func Write(outDir string, r *Report) (string, error) {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}
	path := OutputPath(outDir, r.Source)
	if err := os.WriteFile(path, []byte(r.Render()), 0o644); err != nil {
		return "", fmt.Errorf("write report: %w", err)
	}
	return path, nil
}
