package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"tokwalk/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "tokwalk",
	Short: "Bidirectional token stream navigator",
	Long:  `tokwalk tokenizes source files and walks the token stream in both directions`,
}

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(walkCmd)
	rootCmd.AddCommand(exploreCmd)
	rootCmd.AddCommand(cleanCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "", "colorize output (auto|always|never)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	rootCmd.PersistentFlags().Bool("timings", false, "show timing information")
	rootCmd.PersistentFlags().Int("max-diagnostics", 100, "maximum number of diagnostics to show")
	rootCmd.PersistentFlags().Bool("no-cache", false, "bypass the token table cache")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
