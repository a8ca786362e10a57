package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/corey/astdump/internal/adapters/bbolt"
)

var (
	historyOut   string
	historyLimit int
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent dump runs",
	Long:  "Reads the run log next to the reports and lists recent dumps, newest first.",
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().StringVarP(&historyOut, "out", "o", defaultOutDir, "Output directory holding the run log")
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "Max runs to show (0 = all)")
}

func runHistory(cmd *cobra.Command, args []string) error {
	dbPath := runLogPath(historyOut)
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		fmt.Println("No runs recorded.")
		return nil
	}

	store, err := bbolt.NewStore(dbPath)
	if err != nil {
		return err
	}
	defer store.Close()

	runs, err := store.Runs(historyLimit)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("No runs recorded.")
		return nil
	}

	for _, r := range runs {
		fmt.Printf("%s  %-12s %6d nodes  %s -> %s\n",
			r.ParsedAt.Format(time.RFC3339), r.Language, r.NodeCount, r.Source, r.Output)
	}
	return nil
}
