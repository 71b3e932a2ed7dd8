// Package unit implements the translation unit backing walk.Oracle: one
// file's immutable buffer plus its token table, built by a single forward
// lexer pass. Tokens are handed out as owned handles that must be released
// back to the unit exactly once.
package unit

import (
	"fmt"
	"sort"

	"tokwalk/internal/diag"
	"tokwalk/internal/lexer"
	"tokwalk/internal/source"
	"tokwalk/internal/token"
	"tokwalk/internal/walk"
)

// Entry is one row of the token table: what the lexer produced, minus the
// text (which is resliced from the buffer on demand).
type Entry struct {
	Kind token.Kind
	Span source.Span
}

type row struct {
	kind token.Kind
	span source.Span
	text source.StringID
}

var _ walk.Oracle = (*Unit)(nil)

// Unit owns one file's buffer and token table and tracks every live token
// handle it has minted.
type Unit struct {
	file     *source.File
	interner *source.Interner
	rows     []row
	live     map[walk.Handle]int // handle -> row index
	nextID   walk.Handle
}

// New lexes the file once and builds the token table. Lexical diagnostics
// go to the reporter (which may be nil). The EOF token is not stored:
// "no token" is how the oracle signals end of stream.
func New(file *source.File, reporter diag.Reporter) *Unit {
	lx := lexer.New(file, lexer.Options{Reporter: reporter})

	u := &Unit{
		file:     file,
		interner: source.NewInterner(),
		live:     make(map[walk.Handle]int),
		nextID:   1,
	}
	for {
		tok := lx.Next()
		if tok.Kind == token.EOF {
			break
		}
		u.rows = append(u.rows, row{
			kind: tok.Kind,
			span: tok.Span,
			text: u.interner.Intern(tok.Text),
		})
	}
	return u
}

// FromTable rebuilds a unit from a previously computed token table (for
// example, one read from the disk cache). The table must describe the
// same file content it was built from; spans are trusted.
func FromTable(file *source.File, table []Entry) *Unit {
	u := &Unit{
		file:     file,
		interner: source.NewInterner(),
		rows:     make([]row, 0, len(table)),
		live:     make(map[walk.Handle]int),
		nextID:   1,
	}
	for _, e := range table {
		u.rows = append(u.rows, row{
			kind: e.Kind,
			span: e.Span,
			text: u.interner.InternBytes(file.Content[e.Span.Start:e.Span.End]),
		})
	}
	return u
}

// Table returns a copy of the token table, suitable for caching.
func (u *Unit) Table() []Entry {
	out := make([]Entry, len(u.rows))
	for i, r := range u.rows {
		out[i] = Entry{Kind: r.kind, Span: r.span}
	}
	return out
}

// File returns the unit's file.
func (u *Unit) File() *source.File {
	return u.file
}

// TokenCount returns the number of tokens in the table (EOF excluded).
func (u *Unit) TokenCount() int {
	return len(u.rows)
}

// Live returns the number of minted, not-yet-released handles.
func (u *Unit) Live() int {
	return len(u.live)
}

// LookupFrom returns an owned handle to the token covering loc, or, when
// loc falls between tokens, the next token after it. Returns false past
// the last token. Implements walk.Oracle.
func (u *Unit) LookupFrom(loc source.Loc) (walk.Handle, bool) {
	if loc.File != u.file.ID {
		panic(fmt.Sprintf("unit: lookup in foreign file %d (unit owns %d)", loc.File, u.file.ID))
	}
	// First row whose end lies beyond loc: covering if loc is inside it,
	// the next token otherwise.
	idx := sort.Search(len(u.rows), func(i int) bool {
		return u.rows[i].span.End > loc.Off
	})
	if idx == len(u.rows) {
		return 0, false
	}
	h := u.nextID
	u.nextID++
	u.live[h] = idx
	return h, true
}

// ExtentOf returns the extent of a live handle. Implements walk.Oracle.
func (u *Unit) ExtentOf(h walk.Handle) source.Span {
	return u.rows[u.mustLive(h)].span
}

// Release disposes a handle. Releasing twice, or releasing a handle this
// unit never minted, is a contract violation and panics.
// Implements walk.Oracle.
func (u *Unit) Release(h walk.Handle) {
	u.mustLive(h)
	delete(u.live, h)
}

// Buffer returns the immutable content of the unit's file.
// Implements walk.Oracle.
func (u *Unit) Buffer(id source.FileID) []byte {
	if id != u.file.ID {
		panic(fmt.Sprintf("unit: buffer of foreign file %d (unit owns %d)", id, u.file.ID))
	}
	return u.file.Content
}

// KindOf returns the token kind behind a live handle.
func (u *Unit) KindOf(h walk.Handle) token.Kind {
	return u.rows[u.mustLive(h)].kind
}

// TextOf returns the token text behind a live handle.
func (u *Unit) TextOf(h walk.Handle) string {
	return u.interner.MustLookup(u.rows[u.mustLive(h)].text)
}

func (u *Unit) mustLive(h walk.Handle) int {
	idx, ok := u.live[h]
	if !ok {
		panic(fmt.Sprintf("unit: use of dead or foreign token handle %d", h))
	}
	return idx
}
