package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"tokwalk/internal/driver"
)

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Remove the token table cache",
	Long:  "Remove every cached token table, forcing the next run to relex.",
	Args:  cobra.NoArgs,
	RunE:  runClean,
}

func runClean(cmd *cobra.Command, _ []string) error {
	s, err := loadSettings(cmd, ".")
	if err != nil {
		return err
	}
	cache, err := driver.OpenDiskCache("tokwalk", s.cfg.Cache.Dir)
	if err != nil {
		return fmt.Errorf("failed to open token cache: %w", err)
	}
	if err := cache.DropAll(); err != nil {
		return fmt.Errorf("failed to drop token cache: %w", err)
	}
	_, _ = fmt.Fprintln(os.Stdout, "token cache removed")
	return nil
}
