package driver

import (
	"os"
	"path/filepath"
	"testing"

	"tokwalk/internal/token"
)

func writeSource(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestTokenizeFile(t *testing.T) {
	dir := t.TempDir()
	path := writeSource(t, dir, "main.tw", "let x = 42\n")

	res, err := Tokenize(path, 10)
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}

	wantKinds := []token.Kind{token.KwLet, token.Ident, token.Assign, token.IntLit, token.EOF}
	if len(res.Tokens) != len(wantKinds) {
		t.Fatalf("token count = %d, want %d", len(res.Tokens), len(wantKinds))
	}
	for i, want := range wantKinds {
		if res.Tokens[i].Kind != want {
			t.Errorf("token %d = %v, want %v", i, res.Tokens[i].Kind, want)
		}
	}
	if res.Bag.HasErrors() {
		t.Errorf("unexpected diagnostics:\n%s", res.Bag.String())
	}
}

func TestTokenizeReportsLexErrors(t *testing.T) {
	dir := t.TempDir()
	path := writeSource(t, dir, "bad.tw", "let s = \"oops\n")

	res, err := Tokenize(path, 10)
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	if !res.Bag.HasErrors() {
		t.Error("expected a diagnostic for the unterminated string")
	}
}

func TestTokenizeMissingFile(t *testing.T) {
	if _, err := Tokenize(filepath.Join(t.TempDir(), "absent.tw"), 10); err == nil {
		t.Error("expected an error for a missing file")
	}
}
