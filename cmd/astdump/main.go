// astdump parses source files with tree-sitter and saves an indented
// rendering of each syntax tree. Single binary, zero config.
package main

import (
	"os"

	"github.com/corey/astdump/cmd/astdump/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
