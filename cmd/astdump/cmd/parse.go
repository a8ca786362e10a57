package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/corey/astdump/internal/adapters/bbolt"
	"github.com/corey/astdump/internal/app"
)

var (
	parseOut    string
	parseStdout bool
)

var parseCmd = &cobra.Command{
	Use:   "parse <file>",
	Short: "Parse a source file and save its syntax tree",
	Long:  "Parses one source file with tree-sitter and writes an indented rendering of the syntax tree to the output directory.",
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().StringVarP(&parseOut, "out", "o", defaultOutDir, "Output directory for reports")
	parseCmd.Flags().BoolVar(&parseStdout, "stdout", false, "Print the report instead of writing it")
}

// runLogPath is where the run log lives, next to the reports.
func runLogPath(outDir string) string {
	return filepath.Join(outDir, ".astdump.db")
}

func runParse(cmd *cobra.Command, args []string) error {
	input := args[0]
	if _, err := os.Stat(input); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("file not found: %s", input)
		}
		return err
	}

	dumper := app.NewDumper(newParser(projectRoot()), nil, parseOut)

	if parseStdout {
		rep, _, err := dumper.Render(input)
		if err != nil {
			return err
		}
		fmt.Print(rep.Render())
		return nil
	}

	// Open the run log best effort: a locked or unwritable database must
	// not fail the dump.
	if err := os.MkdirAll(parseOut, 0o755); err == nil {
		if store, err := bbolt.NewStore(runLogPath(parseOut)); err == nil {
			dumper.Store = store
			defer store.Close()
		} else {
			fmt.Fprintf(os.Stderr, "warning: run log unavailable: %v\n", err)
		}
	}

	res, err := dumper.Dump(input)
	if err != nil {
		return err
	}
	if res.RunLogErr != nil {
		fmt.Fprintf(os.Stderr, "warning: run log: %v\n", res.RunLogErr)
	}

	fmt.Printf("Parsed %s\n", input)
	fmt.Printf("Saved %s\n", res.OutputPath)
	return nil
}
