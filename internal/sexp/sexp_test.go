package sexp

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormat_Empty(t *testing.T) {
	out, err := Format("")
	require.NoError(t, err)
	assert.Equal(t, "", out)
}

func TestFormat_NestedSiblings(t *testing.T) {
	// `a` sits at level 1; `(b)` and `(c d)` open at level 1 with their
	// interior tokens at level 2.
	out, err := Format("(a (b) (c d))")
	require.NoError(t, err)

	want := strings.Join([]string{
		"(",
		"  a",
		"  (",
		"    b",
		"  )",
		"  (",
		"    c",
		"    d",
		"  )",
		")",
	}, "\n")
	assert.Equal(t, want, out)
}

func TestFormat_TreeSitterShape(t *testing.T) {
	// Shape of a real Node.ToSexp() serialization, including named fields.
	in := "(source_file (function_declaration name: (identifier) body: (block)))"
	out, err := Format(in)
	require.NoError(t, err)

	lines := strings.Split(out, "\n")
	assert.Contains(t, lines, "    name:")
	assert.Contains(t, lines, "    (")
	// Every paren sits alone on its line (after indentation).
	for _, line := range lines {
		trimmed := strings.TrimLeft(line, " ")
		if strings.ContainsAny(trimmed, "()") {
			assert.Len(t, trimmed, 1, "paren shares a line in %q", line)
		}
	}
}

func TestFormat_SpaceRunsCollapse(t *testing.T) {
	out, err := Format("(c   d)")
	require.NoError(t, err)
	assert.Equal(t, "(\n  c\n  d\n)", out)
}

func TestFormat_WhitespaceInsertionIsLossless(t *testing.T) {
	// Stripping all whitespace from the output reproduces the input with
	// its whitespace stripped: no non-whitespace byte is added, dropped,
	// or reordered.
	inputs := []string{
		"",
		"(a)",
		"(a (b) (c d))",
		"(module (expression_statement (assignment left: (identifier) right: (string))))",
		"(a (b (c (d (e)))))",
	}
	strip := func(s string) string {
		return strings.Map(func(r rune) rune {
			if r == ' ' || r == '\n' {
				return -1
			}
			return r
		}, s)
	}
	for _, in := range inputs {
		out, err := Format(in)
		require.NoError(t, err)
		assert.Equal(t, strip(in), strip(out), "input %q", in)
	}
}

func TestFormat_ParenCountsPreserved(t *testing.T) {
	in := "(a (b) (c (d) (e f)))"
	out, err := Format(in)
	require.NoError(t, err)
	assert.Equal(t, strings.Count(in, "("), strings.Count(out, "("))
	assert.Equal(t, strings.Count(in, ")"), strings.Count(out, ")"))
}

func TestFormat_BalancedInputEndsAtDepthZero(t *testing.T) {
	// The last close paren of a balanced input lands back at column 0.
	out, err := Format("(a (b (c)))")
	require.NoError(t, err)
	lines := strings.Split(out, "\n")
	assert.Equal(t, ")", lines[len(lines)-1])
}

func TestFormat_DepthUnderflowFailsFast(t *testing.T) {
	_, err := Format("(a))")
	require.ErrorIs(t, err, ErrUnbalanced)

	_, err = Format(")")
	require.ErrorIs(t, err, ErrUnbalanced)
}

func TestNodeCount(t *testing.T) {
	assert.Equal(t, 0, NodeCount(""))
	assert.Equal(t, 1, NodeCount("(a)"))
	assert.Equal(t, 3, NodeCount("(a (b) (c d))"))
}
