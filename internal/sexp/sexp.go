// Package sexp reformats the flat S-expression serialization of a syntax
// tree into an indented multi-line rendering. The input is the single-line
// form produced by tree-sitter's Node.ToSexp(): `(` opens a node, `)` closes
// the innermost open node, and single spaces separate sibling tokens.
//
// The transformation is purely cosmetic — every non-whitespace byte of the
// input appears in the output unchanged and in order.
package sexp

import (
	"errors"
	"strings"
)

// ErrUnbalanced is returned when a `)` appears with no open node.
var ErrUnbalanced = errors.New("unbalanced serialized tree: close paren at depth 0")

// indentUnit is the indentation prefix for one nesting level.
const indentUnit = "  "

// charClass partitions input bytes by how the formatter treats them.
type charClass int

const (
	classOther charClass = iota
	classOpen
	classClose
	classSpace
)

func classOf(c byte) charClass {
	switch c {
	case '(':
		return classOpen
	case ')':
		return classClose
	case ' ':
		return classSpace
	default:
		return classOther
	}
}

// Format renders a serialized tree with one structural token per line and
// two spaces of indentation per nesting level. Runs of spaces between
// sibling tokens collapse to a single line break. Returns ErrUnbalanced if
// a close paren would take the nesting depth negative.
func Format(serialized string) (string, error) {
	var sb strings.Builder
	sb.Grow(len(serialized) * 2)

	depth := 0
	atBreak := false // output ends with a break this pass inserted

	writeBreak := func(d int) {
		sb.WriteByte('\n')
		for i := 0; i < d; i++ {
			sb.WriteString(indentUnit)
		}
		atBreak = true
	}

	for i := 0; i < len(serialized); i++ {
		switch classOf(serialized[i]) {
		case classOpen:
			sb.WriteByte('(')
			writeBreak(depth + 1)
			depth++
		case classClose:
			if depth == 0 {
				return "", ErrUnbalanced
			}
			depth--
			writeBreak(depth)
			sb.WriteByte(')')
			atBreak = false
		case classSpace:
			if !atBreak {
				writeBreak(depth)
			}
			for i+1 < len(serialized) && serialized[i+1] == ' ' {
				i++
			}
		case classOther:
			sb.WriteByte(serialized[i])
			atBreak = false
		}
	}

	return sb.String(), nil
}

// NodeCount reports the number of nodes in a serialized tree — one per
// open paren.
func NodeCount(serialized string) int {
	return strings.Count(serialized, "(")
}
