package diagfmt

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"tokwalk/internal/diag"
	"tokwalk/internal/lexer"
	"tokwalk/internal/source"
	"tokwalk/internal/token"
)

func lexAll(t *testing.T, fs *source.FileSet, text string) []token.Token {
	t.Helper()
	fileID := fs.AddVirtual("tokens.tw", []byte(text))
	file := fs.Get(fileID)
	lx := lexer.New(file, lexer.Options{Reporter: diag.NopReporter{}})

	var out []token.Token
	for {
		tok := lx.Next()
		out = append(out, tok)
		if tok.Kind == token.EOF {
			return out
		}
	}
}

func TestFormatTokensPretty(t *testing.T) {
	fs := source.NewFileSet()
	tokens := lexAll(t, fs, "let x = 42\n")

	var buf bytes.Buffer
	if err := FormatTokensPretty(&buf, tokens, fs); err != nil {
		t.Fatalf("FormatTokensPretty: %v", err)
	}
	output := buf.String()

	for _, want := range []string{"KwLet", "Ident", `"x"`, "Assign", "IntLit", `"42"`, "EOF"} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %q in output:\n%s", want, output)
		}
	}
	if !strings.Contains(output, "at 1:1-1:4") {
		t.Errorf("expected let span 1:1-1:4 in output:\n%s", output)
	}
}

func TestFormatTokensJSON(t *testing.T) {
	fs := source.NewFileSet()
	tokens := lexAll(t, fs, "a + b")

	var buf bytes.Buffer
	if err := FormatTokensJSON(&buf, tokens); err != nil {
		t.Fatalf("FormatTokensJSON: %v", err)
	}

	var decoded []TokenOutput
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, buf.String())
	}
	if len(decoded) != 4 { // a, +, b, EOF
		t.Fatalf("token count = %d, want 4", len(decoded))
	}
	if decoded[1].Kind != "Plus" {
		t.Errorf("token 1 kind = %q, want Plus", decoded[1].Kind)
	}
	if decoded[2].Leading == nil || decoded[2].Leading[0] != "Space" {
		t.Errorf("token 2 leading = %v, want [Space ...]", decoded[2].Leading)
	}
}

func TestDiagnosticsJSON(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("bad.tw", []byte("let @ = 1\n"))

	bag := diag.NewBag(4)
	bag.Add(diag.Diagnostic{
		Severity: diag.SevError,
		Code:     diag.LexUnknownChar,
		Message:  "unknown character '@'",
		Primary:  source.Span{File: fileID, Start: 4, End: 5},
	})

	var buf bytes.Buffer
	err := JSON(&buf, bag, fs, JSONOpts{IncludePositions: true})
	if err != nil {
		t.Fatalf("JSON: %v", err)
	}

	var out DiagnosticsOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, buf.String())
	}
	if out.Count != 1 || len(out.Diagnostics) != 1 {
		t.Fatalf("count = %d, diagnostics = %d, want 1/1", out.Count, len(out.Diagnostics))
	}
	d := out.Diagnostics[0]
	if d.Code != "LEX1001" || d.Severity != "ERROR" {
		t.Errorf("code/severity = %s/%s", d.Code, d.Severity)
	}
	if d.Location.StartLine != 1 || d.Location.StartCol != 5 {
		t.Errorf("location = %+v, want line 1 col 5", d.Location)
	}
}
