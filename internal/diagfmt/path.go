package diagfmt

import (
	"os"
	"path/filepath"

	"tokwalk/internal/source"
)

// formatPath renders a file's path according to mode. Virtual files keep
// their registered name untouched.
func formatPath(f *source.File, mode PathMode) string {
	if f.Flags&source.FileVirtual != 0 {
		return f.Path
	}
	switch mode {
	case PathModeAbsolute:
		if abs, err := filepath.Abs(f.Path); err == nil {
			return abs
		}
	case PathModeRelative:
		if cwd, err := os.Getwd(); err == nil {
			if rel, err := filepath.Rel(cwd, f.Path); err == nil {
				return rel
			}
		}
	case PathModeBasename:
		return filepath.Base(f.Path)
	}
	return f.Path
}
