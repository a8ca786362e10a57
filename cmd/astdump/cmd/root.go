package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// defaultOutDir is where reports land unless -o overrides it.
const defaultOutDir = "ast-dumps"

var rootCmd = &cobra.Command{
	Use:           "astdump",
	Short:         "astdump — syntax tree dumper",
	Long:          "Parses source files with tree-sitter and saves an indented rendering of each syntax tree.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// projectRoot returns the project root (cwd by default).
func projectRoot() string {
	dir, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	return dir
}

// Execute runs the root command. On failure the diagnostic goes to stderr
// and the caller exits nonzero.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
	}
	return err
}

func init() {
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(languagesCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(historyCmd)
}
