package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"tokwalk/internal/driver"
	"tokwalk/internal/ui"
)

var exploreCmd = &cobra.Command{
	Use:   "explore <file.tw>",
	Short: "Interactively walk a file's token stream",
	Long:  `Explore opens a terminal UI over the file's token stream. Arrow keys step the cursor backward and forward.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runExplore,
}

func runExplore(cmd *cobra.Command, args []string) error {
	path := args[0]

	if !isTerminal(os.Stdout) {
		return fmt.Errorf("explore needs a terminal; use 'tokwalk walk' for scripted stepping")
	}

	s, err := loadSettings(cmd, startDirFor(path))
	if err != nil {
		return err
	}

	result, err := driver.NewUnit(path, driver.UnitOptions{
		MaxDiagnostics: s.maxDiagnostics,
		Cache:          s.openCache(),
	})
	if err != nil {
		return err
	}
	if result.Bag.HasErrors() {
		printDiagnostics(s, result.Bag, result.FileSet)
	}

	model := ui.NewExploreModel(result.FileSet, result.Unit)
	program := tea.NewProgram(model)
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("explore UI failed: %w", err)
	}
	return nil
}
