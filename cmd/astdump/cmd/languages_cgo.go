//go:build cgo

package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/corey/astdump/internal/adapters/treesitter"
)

var languagesCmd = &cobra.Command{
	Use:   "languages",
	Short: "List supported languages",
	Long:  "Lists compiled-in grammars with their extensions, plus grammar shared libraries found in the search paths.",
	RunE:  runLanguages,
}

func runLanguages(cmd *cobra.Command, args []string) error {
	parser := treesitter.NewParser()
	paths := treesitter.DefaultGrammarPaths(projectRoot())
	loader := treesitter.NewDynamicLoader(paths)

	langs := parser.SupportedLanguages()
	sort.Strings(langs)

	fmt.Printf("Compiled-in grammars (%d):\n", len(langs))
	for _, lang := range langs {
		exts := parser.ExtensionsFor(lang)
		sort.Strings(exts)
		fmt.Printf("  %-12s", lang)
		for _, ext := range exts {
			fmt.Printf(" %s", ext)
		}
		fmt.Println()
	}

	installed := loader.InstalledGrammars()
	sort.Strings(installed)
	if len(installed) > 0 {
		fmt.Printf("\nInstalled grammar libraries (%d):\n", len(installed))
		for _, lang := range installed {
			fmt.Printf("  %-12s %s\n", lang, loader.GrammarPath(lang))
		}
	}

	fmt.Println("\nGrammar search paths:")
	for _, p := range paths {
		fmt.Printf("  %s\n", p)
	}
	return nil
}
