//go:build !cgo

package cmd

import "github.com/corey/astdump/internal/ports"

// newParser returns nil when CGo is unavailable (pure Go build).
// Parsing commands report the missing parser instead of degrading silently.
func newParser(_ string) ports.Parser {
	return nil
}
