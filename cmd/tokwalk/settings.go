package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"tokwalk/internal/driver"
	"tokwalk/internal/project"
)

// settings merges persistent flags with the nearest tokwalk.toml. Flags
// win over the manifest, the manifest wins over built-in defaults.
type settings struct {
	cfg            project.Config
	maxDiagnostics int
	timings        bool
	quiet          bool
	noCache        bool
}

func loadSettings(cmd *cobra.Command, startDir string) (*settings, error) {
	cfg, _, err := project.LoadFrom(startDir)
	if err != nil {
		return nil, err
	}

	flags := cmd.Root().PersistentFlags()
	s := &settings{cfg: cfg}

	if colorFlag, err := flags.GetString("color"); err == nil && colorFlag != "" {
		switch colorFlag {
		case "auto", "always", "never":
			s.cfg.Output.Color = colorFlag
		default:
			return nil, fmt.Errorf("invalid --color value %q (expected auto|always|never)", colorFlag)
		}
	}
	if s.maxDiagnostics, err = flags.GetInt("max-diagnostics"); err != nil {
		return nil, fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	if s.timings, err = flags.GetBool("timings"); err != nil {
		return nil, fmt.Errorf("failed to get timings flag: %w", err)
	}
	if s.quiet, err = flags.GetBool("quiet"); err != nil {
		return nil, fmt.Errorf("failed to get quiet flag: %w", err)
	}
	if s.noCache, err = flags.GetBool("no-cache"); err != nil {
		return nil, fmt.Errorf("failed to get no-cache flag: %w", err)
	}
	return s, nil
}

func (s *settings) useColor(f *os.File) bool {
	switch s.cfg.Output.Color {
	case "always":
		return true
	case "never":
		return false
	default:
		return isTerminal(f)
	}
}

// openCache returns the disk cache, or nil when caching is off.
func (s *settings) openCache() *driver.DiskCache {
	if s.noCache || !s.cfg.Cache.Enabled {
		return nil
	}
	cache, err := driver.OpenDiskCache("tokwalk", s.cfg.Cache.Dir)
	if err != nil {
		// A broken cache dir must not block tokenization.
		fmt.Fprintf(os.Stderr, "warning: token cache unavailable: %v\n", err)
		return nil
	}
	return cache
}

func startDirFor(path string) string {
	if path == "" {
		return "."
	}
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return path
	}
	return filepath.Dir(path)
}
