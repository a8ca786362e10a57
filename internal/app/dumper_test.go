package app

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corey/astdump/internal/ports"
)

// stubParser returns a canned serialization for any supported file.
type stubParser struct {
	tree *ports.Tree
	err  error
}

func (s *stubParser) ParseTree(path string, source []byte) (*ports.Tree, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.tree, nil
}

func (s *stubParser) SupportsExtension(ext string) bool { return ext == ".py" }

// stubStore records runs in memory.
type stubStore struct {
	runs []*ports.Run
	err  error
}

func (s *stubStore) RecordRun(r *ports.Run) error {
	if s.err != nil {
		return s.err
	}
	s.runs = append(s.runs, r)
	return nil
}

func (s *stubStore) Runs(limit int) ([]*ports.Run, error) { return s.runs, nil }
func (s *stubStore) Close() error                         { return nil }

var fixedTime = time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)

func newTestDumper(t *testing.T, parser ports.Parser, store ports.Storage) (*Dumper, string, string) {
	t.Helper()
	dir := t.TempDir()
	input := filepath.Join(dir, "app.py")
	require.NoError(t, os.WriteFile(input, []byte("x = 1\n"), 0644))

	d := NewDumper(parser, store, filepath.Join(dir, "ast-dumps"))
	d.Now = func() time.Time { return fixedTime }
	return d, input, dir
}

func TestDumper_Dump(t *testing.T) {
	store := &stubStore{}
	parser := &stubParser{tree: &ports.Tree{
		Language:   "python",
		Serialized: "(module (expression_statement (assignment)))",
	}}
	d, input, dir := newTestDumper(t, parser, store)

	res, err := d.Dump(input)
	require.NoError(t, err)
	require.NoError(t, res.RunLogErr)

	assert.Equal(t, filepath.Join(dir, "ast-dumps", "app.py.txt"), res.OutputPath)
	assert.Equal(t, "python", res.Language)
	assert.Equal(t, 3, res.NodeCount)

	data, err := os.ReadFile(res.OutputPath)
	require.NoError(t, err)
	text := string(data)
	assert.True(t, strings.HasPrefix(text, "Source: "+input+"\n"))
	assert.Contains(t, text, "Parsed: 2026-03-14T09:26:53Z\n\n")
	assert.Contains(t, text, "(\n  module\n")

	require.Len(t, store.runs, 1)
	assert.Equal(t, input, store.runs[0].Source)
	assert.Equal(t, 3, store.runs[0].NodeCount)
}

func TestDumper_DumpIsIdempotentModuloTimestamp(t *testing.T) {
	parser := &stubParser{tree: &ports.Tree{Language: "python", Serialized: "(module)"}}
	d, input, _ := newTestDumper(t, parser, nil)

	res1, err := d.Dump(input)
	require.NoError(t, err)
	first, err := os.ReadFile(res1.OutputPath)
	require.NoError(t, err)

	res2, err := d.Dump(input)
	require.NoError(t, err)
	second, err := os.ReadFile(res2.OutputPath)
	require.NoError(t, err)

	assert.Equal(t, res1.OutputPath, res2.OutputPath)
	assert.Equal(t, string(first), string(second)) // clock is fixed in tests
}

func TestDumper_MissingInput(t *testing.T) {
	parser := &stubParser{tree: &ports.Tree{Language: "python", Serialized: "(module)"}}
	d, _, dir := newTestDumper(t, parser, nil)

	_, err := d.Dump(filepath.Join(dir, "missing.py"))
	require.Error(t, err)

	// No output file appears for a failed dump.
	_, statErr := os.Stat(filepath.Join(dir, "ast-dumps", "missing.py.txt"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestDumper_NilParser(t *testing.T) {
	d, input, _ := newTestDumper(t, nil, nil)
	d.Parser = nil

	_, err := d.Dump(input)
	require.ErrorIs(t, err, ErrNoParser)
}

func TestDumper_ParseFailure(t *testing.T) {
	parser := &stubParser{err: errors.New("unsupported file type")}
	d, input, _ := newTestDumper(t, parser, nil)

	_, err := d.Dump(input)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported file type")
}

func TestDumper_RunLogFailureDoesNotFailDump(t *testing.T) {
	store := &stubStore{err: errors.New("timeout")}
	parser := &stubParser{tree: &ports.Tree{Language: "python", Serialized: "(module)"}}
	d, input, _ := newTestDumper(t, parser, store)

	res, err := d.Dump(input)
	require.NoError(t, err)
	require.Error(t, res.RunLogErr)

	_, statErr := os.Stat(res.OutputPath)
	assert.NoError(t, statErr)
}

func TestDumper_RenderDoesNotWrite(t *testing.T) {
	parser := &stubParser{tree: &ports.Tree{Language: "python", Serialized: "(module)"}}
	d, input, dir := newTestDumper(t, parser, nil)

	rep, tree, err := d.Render(input)
	require.NoError(t, err)
	assert.Equal(t, "python", tree.Language)
	assert.Equal(t, "(\n  module\n)", rep.Tree)

	_, statErr := os.Stat(filepath.Join(dir, "ast-dumps"))
	assert.True(t, os.IsNotExist(statErr))
}
