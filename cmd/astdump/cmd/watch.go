package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/corey/astdump/internal/adapters/bbolt"
	"github.com/corey/astdump/internal/adapters/fsnotify"
	"github.com/corey/astdump/internal/app"
)

var watchOut string

var watchCmd = &cobra.Command{
	Use:   "watch [dir]",
	Short: "Re-dump files as they change",
	Long:  "Watches a directory recursively and re-dumps any changed file with a supported extension. Stop with Ctrl-C.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runWatch,
}

func init() {
	watchCmd.Flags().StringVarP(&watchOut, "out", "o", defaultOutDir, "Output directory for reports")
}

func runWatch(cmd *cobra.Command, args []string) error {
	dir := projectRoot()
	if len(args) > 0 {
		if filepath.IsAbs(args[0]) {
			dir = args[0]
		} else {
			dir = filepath.Join(dir, args[0])
		}
	}
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		return fmt.Errorf("not a directory: %s", dir)
	}

	parser := newParser(projectRoot())
	if parser == nil {
		return app.ErrNoParser
	}

	dumper := app.NewDumper(parser, nil, watchOut)
	if err := os.MkdirAll(watchOut, 0o755); err == nil {
		if store, err := bbolt.NewStore(runLogPath(watchOut)); err == nil {
			dumper.Store = store
			defer store.Close()
		} else {
			fmt.Fprintf(os.Stderr, "warning: run log unavailable: %v\n", err)
		}
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Stop()

	err = w.Watch(dir, func(path string) {
		if !parser.SupportsExtension(filepath.Ext(path)) {
			return
		}
		res, err := dumper.Dump(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			return
		}
		fmt.Printf("Parsed %s\n", path)
		fmt.Printf("Saved %s\n", res.OutputPath)
	})
	if err != nil {
		return err
	}

	fmt.Printf("Watching %s (Ctrl-C to stop)\n", dir)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
	return nil
}
