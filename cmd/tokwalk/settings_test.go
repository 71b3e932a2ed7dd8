package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestStartDirFor(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "a.tw")
	if err := os.WriteFile(file, []byte("x\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	if got := startDirFor(dir); got != dir {
		t.Errorf("startDirFor(dir) = %q, want %q", got, dir)
	}
	if got := startDirFor(file); got != dir {
		t.Errorf("startDirFor(file) = %q, want %q", got, dir)
	}
	if got := startDirFor(""); got != "." {
		t.Errorf("startDirFor(\"\") = %q, want .", got)
	}
	// A missing path falls back to its parent directory.
	if got := startDirFor(filepath.Join(dir, "missing.tw")); got != dir {
		t.Errorf("startDirFor(missing) = %q, want %q", got, dir)
	}
}

func TestUseColor(t *testing.T) {
	s := &settings{}

	s.cfg.Output.Color = "always"
	if !s.useColor(os.Stderr) {
		t.Error("always must force color on")
	}

	s.cfg.Output.Color = "never"
	if s.useColor(os.Stderr) {
		t.Error("never must force color off")
	}
}
