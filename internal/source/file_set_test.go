package source

import (
	"os"
	"path/filepath"
	"testing"
)

func TestAddVirtualAndResolve(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("test.tw", []byte("let x = 1\nlet y = 2\n"))

	f := fs.Get(id)
	if f.Flags&FileVirtual == 0 {
		t.Errorf("virtual file missing FileVirtual flag")
	}

	// "y" sits at offset 14, line 2 column 5.
	start, end := fs.Resolve(Span{File: id, Start: 14, End: 15})
	if start != (LineCol{Line: 2, Col: 5}) {
		t.Errorf("Resolve start = %v, want 2:5", start)
	}
	if end != (LineCol{Line: 2, Col: 6}) {
		t.Errorf("Resolve end = %v, want 2:6", end)
	}

	if got := fs.ResolveLoc(Loc{File: id, Off: 0}); got != (LineCol{Line: 1, Col: 1}) {
		t.Errorf("ResolveLoc(0) = %v, want 1:1", got)
	}
}

func TestLoadNormalizesCRLF(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "crlf.tw")
	if err := os.WriteFile(path, []byte("a\r\nb\r\n"), 0o644); err != nil {
		t.Fatalf("write temp file: %v", err)
	}

	fs := NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	f := fs.Get(id)
	if string(f.Content) != "a\nb\n" {
		t.Errorf("content = %q, want CRLF normalized", f.Content)
	}
	if f.Flags&FileNormalizedCRLF == 0 {
		t.Errorf("missing FileNormalizedCRLF flag")
	}
}

func TestGetLine(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("test.tw", []byte("first\nsecond\nthird"))
	f := fs.Get(id)

	tests := []struct {
		line uint32
		want string
	}{
		{0, ""},
		{1, "first"},
		{2, "second"},
		{3, "third"},
		{4, ""},
	}
	for _, tt := range tests {
		if got := f.GetLine(tt.line); got != tt.want {
			t.Errorf("GetLine(%d) = %q, want %q", tt.line, got, tt.want)
		}
	}
}

func TestLookupReturnsLatest(t *testing.T) {
	fs := NewFileSet()
	first := fs.AddVirtual("dup.tw", []byte("old"))
	second := fs.AddVirtual("dup.tw", []byte("new"))

	if first == second {
		t.Fatalf("Add must mint a fresh FileID per call")
	}
	id, ok := fs.Lookup("dup.tw")
	if !ok || id != second {
		t.Errorf("Lookup = %v/%v, want latest id %v", id, ok, second)
	}
	if fs.Len() != 2 {
		t.Errorf("Len = %d, want 2", fs.Len())
	}
}
