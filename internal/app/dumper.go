// Package app wires the ports together for the end-to-end dump flow:
// read file, parse, format, persist the report, record the run.
package app

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/corey/astdump/internal/ports"
	"github.com/corey/astdump/internal/report"
	"github.com/corey/astdump/internal/sexp"
)

// ErrNoParser is returned when the binary was built without CGo and no
// tree-sitter parser is available.
var ErrNoParser = errors.New("tree-sitter parsing unavailable (binary built without cgo)")

// Dumper runs the dump flow. Store is optional; when set, each successful
// dump is recorded best effort.
type Dumper struct {
	Parser ports.Parser
	Store  ports.Storage
	OutDir string
	Now    func() time.Time // injectable for tests
}

// NewDumper creates a Dumper writing reports to outDir.
func NewDumper(parser ports.Parser, store ports.Storage, outDir string) *Dumper {
	return &Dumper{
		Parser: parser,
		Store:  store,
		OutDir: outDir,
		Now:    time.Now,
	}
}

// Result describes one completed dump.
type Result struct {
	OutputPath string
	Language   string
	NodeCount  int

	// RunLogErr carries a run-log failure. The dump itself succeeded;
	// callers should surface this as a warning, not a failure.
	RunLogErr error
}

// Render reads and parses a source file and returns the report without
// persisting anything. Used by --stdout.
func (d *Dumper) Render(path string) (*report.Report, *ports.Tree, error) {
	if d.Parser == nil {
		return nil, nil, ErrNoParser
	}

	source, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("read %s: %w", path, err)
	}

	tree, err := d.Parser.ParseTree(path, source)
	if err != nil {
		return nil, nil, err
	}

	formatted, err := sexp.Format(tree.Serialized)
	if err != nil {
		return nil, nil, fmt.Errorf("format tree for %s: %w", path, err)
	}

	return &report.Report{
		Source:   path,
		ParsedAt: d.Now(),
		Tree:     formatted,
	}, tree, nil
}

// Dump runs the full flow for one source file and persists the report.
func (d *Dumper) Dump(path string) (*Result, error) {
	rep, tree, err := d.Render(path)
	if err != nil {
		return nil, err
	}

	outPath, err := report.Write(d.OutDir, rep)
	if err != nil {
		return nil, err
	}

	res := &Result{
		OutputPath: outPath,
		Language:   tree.Language,
		NodeCount:  sexp.NodeCount(tree.Serialized),
	}

	if d.Store != nil {
		res.RunLogErr = d.Store.RecordRun(&ports.Run{
			Source:    path,
			Output:    outPath,
			Language:  tree.Language,
			ParsedAt:  rep.ParsedAt,
			NodeCount: res.NodeCount,
		})
	}

	return res, nil
}
