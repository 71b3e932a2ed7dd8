package driver

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"tokwalk/internal/token"
)

func TestTokenizeDir(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, "b.tw", "let y = 2\n")
	writeSource(t, dir, "a.tw", "let x = 1\n")
	writeSource(t, dir, "ignored.txt", "not a source file")
	sub := filepath.Join(dir, "nested")
	if err := os.MkdirAll(sub, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	writeSource(t, sub, "c.tw", "a + b\n")

	fs, results, err := TokenizeDir(context.Background(), dir, 10, 2)
	if err != nil {
		t.Fatalf("TokenizeDir: %v", err)
	}
	if fs.Len() != 3 {
		t.Errorf("fileset len = %d, want 3", fs.Len())
	}
	if len(results) != 3 {
		t.Fatalf("results = %d, want 3", len(results))
	}

	// Sorted path order: a.tw, b.tw, nested/c.tw.
	if filepath.Base(results[0].Path) != "a.tw" || filepath.Base(results[1].Path) != "b.tw" {
		t.Errorf("unexpected order: %s, %s", results[0].Path, results[1].Path)
	}
	for _, res := range results {
		if len(res.Tokens) == 0 || res.Tokens[len(res.Tokens)-1].Kind != token.EOF {
			t.Errorf("%s: token stream must end with EOF", res.Path)
		}
		if res.Bag.HasErrors() {
			t.Errorf("%s: unexpected diagnostics:\n%s", res.Path, res.Bag.String())
		}
	}
}

func TestTokenizeDirEmpty(t *testing.T) {
	fs, results, err := TokenizeDir(context.Background(), t.TempDir(), 10, 0)
	if err != nil {
		t.Fatalf("TokenizeDir: %v", err)
	}
	if fs.Len() != 0 || len(results) != 0 {
		t.Errorf("fileset len = %d, results = %d, want 0/0", fs.Len(), len(results))
	}
}

func TestTokenizeDirCancelled(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.tw", "b.tw", "c.tw", "d.tw"} {
		writeSource(t, dir, name, "let x = 1\n")
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := TokenizeDir(ctx, dir, 10, 1)
	if err == nil {
		t.Error("expected a cancellation error")
	}
}
