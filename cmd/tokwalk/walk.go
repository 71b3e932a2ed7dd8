package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"tokwalk/internal/driver"
	"tokwalk/internal/observ"
)

var walkCmd = &cobra.Command{
	Use:   "walk [flags] <file.tw>",
	Short: "Seed a cursor at a byte offset and step it",
	Long: `Walk seeds a token cursor at --at and steps it --back tokens backward
and --fwd tokens forward, printing every token it lands on. Backward
steps stop at the first token of the file, forward steps at the end of
the stream.`,
	Args: cobra.ExactArgs(1),
	RunE: runWalk,
}

func init() {
	walkCmd.Flags().Uint32("at", 0, "byte offset to seed the cursor at")
	walkCmd.Flags().Int("back", 0, "number of backward steps")
	walkCmd.Flags().Int("fwd", 0, "number of forward steps")
}

func runWalk(cmd *cobra.Command, args []string) error {
	path := args[0]

	s, err := loadSettings(cmd, startDirFor(path))
	if err != nil {
		return err
	}
	at, _ := cmd.Flags().GetUint32("at")
	back, _ := cmd.Flags().GetInt("back")
	fwd, _ := cmd.Flags().GetInt("fwd")
	if back < 0 || fwd < 0 {
		return fmt.Errorf("--back and --fwd must not be negative")
	}

	timer := observ.NewTimer()
	phase := timer.Begin("walk")

	result, err := driver.Walk(path, driver.WalkOptions{
		UnitOptions: driver.UnitOptions{
			MaxDiagnostics: s.maxDiagnostics,
			Cache:          s.openCache(),
		},
		At:       at,
		Back:     back,
		Fwd:      fwd,
		MaxSteps: s.cfg.Walk.MaxSteps,
	})
	if err != nil {
		return err
	}
	timer.End(phase, fmt.Sprintf("%d steps", len(result.Steps)))

	if s.timings {
		driver.AppendTimings(result.Bag, "walk", path, timer.Report())
	}
	printDiagnostics(s, result.Bag, result.FileSet)

	if s.quiet {
		return nil
	}
	out := cmd.OutOrStdout()
	if result.FromCache {
		fmt.Fprintln(out, "(token table from cache)")
	}
	for _, step := range result.Steps {
		startPos, endPos := result.FileSet.Resolve(step.Span)
		fmt.Fprintf(out, "%-4s %-15s %q at %d:%d-%d:%d\n",
			step.Dir, step.Kind, step.Text,
			startPos.Line, startPos.Col, endPos.Line, endPos.Col)
	}
	return nil
}
