//go:build !cgo

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var languagesCmd = &cobra.Command{
	Use:   "languages",
	Short: "List supported languages (requires CGo)",
	Long:  "Language listing requires a tree-sitter build. Rebuild with CGO_ENABLED=1.",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println("This binary was built without CGo — no tree-sitter grammars are available.")
		fmt.Println("Rebuild with CGO_ENABLED=1 to enable parsing.")
		return nil
	},
}
