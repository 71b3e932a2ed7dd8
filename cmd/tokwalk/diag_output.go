package main

import (
	"os"

	"tokwalk/internal/diag"
	"tokwalk/internal/diagfmt"
	"tokwalk/internal/source"
)

// printDiagnostics renders a bag to stderr, sorted by position.
func printDiagnostics(s *settings, bag *diag.Bag, fs *source.FileSet) {
	if bag == nil || bag.Len() == 0 {
		return
	}
	bag.Sort()
	opts := diagfmt.PrettyOpts{
		Color:     s.useColor(os.Stderr),
		Context:   1,
		ShowNotes: true,
	}
	diagfmt.Pretty(os.Stderr, bag, fs, opts)
}
