//go:build cgo

package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command with args, resetting flag state afterwards.
func execute(t *testing.T, args ...string) error {
	t.Helper()
	t.Cleanup(func() {
		parseOut = defaultOutDir
		parseStdout = false
	})
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

func TestParseCommand_WritesReport(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "hello.go")
	require.NoError(t, os.WriteFile(input, []byte("package main\n\nfunc main() {}\n"), 0644))
	outDir := filepath.Join(dir, "out")

	err := execute(t, "parse", input, "-o", outDir)
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(outDir, "hello.go.txt"))
	require.NoError(t, err)
	text := string(data)

	assert.True(t, strings.HasPrefix(text, "Source: "+input+"\n"))
	assert.Contains(t, text, "Parsed: ")
	assert.Contains(t, text, "source_file")
	assert.Contains(t, text, "function_declaration")

	// Run log appears next to the report.
	_, statErr := os.Stat(filepath.Join(outDir, ".astdump.db"))
	assert.NoError(t, statErr)
}

func TestParseCommand_MissingFile(t *testing.T) {
	dir := t.TempDir()
	outDir := filepath.Join(dir, "out")

	err := execute(t, "parse", filepath.Join(dir, "nope.py"), "-o", outDir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "file not found")

	// No report and no output directory for a failed run.
	_, statErr := os.Stat(outDir)
	assert.True(t, os.IsNotExist(statErr))
}

func TestParseCommand_NoArgs(t *testing.T) {
	err := execute(t, "parse")
	require.Error(t, err)
}

func TestRunLogPath(t *testing.T) {
	assert.Equal(t, filepath.Join("out", ".astdump.db"), runLogPath("out"))
}
