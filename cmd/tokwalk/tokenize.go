package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"tokwalk/internal/diagfmt"
	"tokwalk/internal/driver"
	"tokwalk/internal/observ"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] <file.tw|dir>",
	Short: "Tokenize a source file or directory",
	Long:  `Tokenize breaks a source file into its constituent tokens. Given a directory, it tokenizes every source file under it in parallel.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "", "output format (pretty|json)")
	tokenizeCmd.Flags().Int("jobs", 0, "parallel workers for directories (0 = GOMAXPROCS)")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	path := args[0]

	s, err := loadSettings(cmd, startDirFor(path))
	if err != nil {
		return err
	}
	format := s.cfg.Output.Format
	if f, err := cmd.Flags().GetString("format"); err == nil && f != "" {
		format = f
	}
	switch format {
	case "pretty", "json":
	default:
		return fmt.Errorf("unknown format: %s", format)
	}

	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if info.IsDir() {
		jobs, _ := cmd.Flags().GetInt("jobs")
		return tokenizeDir(cmd, s, path, format, jobs)
	}
	return tokenizeFile(cmd, s, path, format)
}

func tokenizeFile(cmd *cobra.Command, s *settings, path, format string) error {
	timer := observ.NewTimer()
	phase := timer.Begin("tokenize")

	result, err := driver.Tokenize(path, s.maxDiagnostics)
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}
	timer.End(phase, fmt.Sprintf("%d tokens", len(result.Tokens)))

	if s.timings {
		driver.AppendTimings(result.Bag, "tokenize", path, timer.Report())
	}
	printDiagnostics(s, result.Bag, result.FileSet)

	if s.quiet {
		return nil
	}
	switch format {
	case "json":
		return diagfmt.FormatTokensJSON(cmd.OutOrStdout(), result.Tokens)
	default:
		return diagfmt.FormatTokensPretty(cmd.OutOrStdout(), result.Tokens, result.FileSet)
	}
}

func tokenizeDir(cmd *cobra.Command, s *settings, dir, format string, jobs int) error {
	fs, results, err := driver.TokenizeDir(cmd.Context(), dir, s.maxDiagnostics, jobs)
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}

	failed := false
	for _, res := range results {
		printDiagnostics(s, res.Bag, fs)
		if res.Bag.HasErrors() {
			failed = true
		}
		if s.quiet {
			continue
		}
		fmt.Fprintf(cmd.OutOrStdout(), "== %s\n", res.Path)
		switch format {
		case "json":
			if err := diagfmt.FormatTokensJSON(cmd.OutOrStdout(), res.Tokens); err != nil {
				return err
			}
		default:
			if err := diagfmt.FormatTokensPretty(cmd.OutOrStdout(), res.Tokens, fs); err != nil {
				return err
			}
		}
	}
	if failed {
		return fmt.Errorf("%s: some files had lexical errors", dir)
	}
	return nil
}
