package unit_test

import (
	"testing"

	"tokwalk/internal/diag"
	"tokwalk/internal/source"
	"tokwalk/internal/token"
	"tokwalk/internal/unit"
)

func makeUnit(t *testing.T, content string) (*unit.Unit, *diag.Bag) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.tw", []byte(content))
	bag := diag.NewBag(16)
	u := unit.New(fs.Get(id), diag.BagReporter{Bag: bag})
	return u, bag
}

func expectPanic(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic, got none")
		}
	}()
	fn()
}

func TestLookupCoveringAndNext(t *testing.T) {
	u, bag := makeUnit(t, "let x = 42")
	if bag.HasErrors() {
		t.Fatalf("unexpected lexical errors: %v", bag.Items())
	}
	if u.TokenCount() != 4 {
		t.Fatalf("token count: got %d, want 4 (let x = 42)", u.TokenCount())
	}

	// Covering: offset 1 is inside "let".
	h, ok := u.LookupFrom(source.Loc{File: u.File().ID, Off: 1})
	if !ok {
		t.Fatalf("lookup inside 'let' failed")
	}
	if sp := u.ExtentOf(h); sp.Start != 0 || sp.End != 3 {
		t.Fatalf("covering lookup: got %v, want [0,3)", sp)
	}
	if u.TextOf(h) != "let" || u.KindOf(h) != token.KwLet {
		t.Fatalf("token identity: got %q/%v", u.TextOf(h), u.KindOf(h))
	}
	u.Release(h)

	// Between tokens: offset 3 is the space after "let"; the next token is "x".
	h, ok = u.LookupFrom(source.Loc{File: u.File().ID, Off: 3})
	if !ok {
		t.Fatalf("lookup in gap failed")
	}
	if sp := u.ExtentOf(h); sp.Start != 4 || sp.End != 5 {
		t.Fatalf("gap lookup: got %v, want x@[4,5)", sp)
	}
	u.Release(h)

	// Past the end: no token, normal termination.
	if _, ok := u.LookupFrom(source.Loc{File: u.File().ID, Off: 10}); ok {
		t.Fatalf("lookup past the last token must fail")
	}

	if u.Live() != 0 {
		t.Fatalf("live handles: %d, want 0", u.Live())
	}
}

func TestReleaseExactlyOnce(t *testing.T) {
	u, _ := makeUnit(t, "a b")

	h, ok := u.LookupFrom(source.Loc{File: u.File().ID, Off: 0})
	if !ok {
		t.Fatalf("lookup failed")
	}
	u.Release(h)

	expectPanic(t, func() { u.Release(h) })
	expectPanic(t, func() { u.ExtentOf(h) })
	expectPanic(t, func() { u.TextOf(h) })
}

func TestIndependentHandlesToSameToken(t *testing.T) {
	u, _ := makeUnit(t, "alpha")
	loc := source.Loc{File: u.File().ID, Off: 0}

	h1, _ := u.LookupFrom(loc)
	h2, _ := u.LookupFrom(loc)
	if h1 == h2 {
		t.Fatalf("two lookups must mint distinct handles")
	}
	if u.Live() != 2 {
		t.Fatalf("live handles: %d, want 2", u.Live())
	}

	u.Release(h1)
	// h2 must survive h1's release.
	if sp := u.ExtentOf(h2); sp.Start != 0 || sp.End != 5 {
		t.Fatalf("handle invalidated by sibling release: %v", sp)
	}
	u.Release(h2)
}

func TestForeignFilePanics(t *testing.T) {
	u, _ := makeUnit(t, "x")
	foreign := u.File().ID + 1

	expectPanic(t, func() { u.LookupFrom(source.Loc{File: foreign, Off: 0}) })
	expectPanic(t, func() { u.Buffer(foreign) })
}

func TestTableRoundTrip(t *testing.T) {
	u, _ := makeUnit(t, `fn main() { print("hi"); }`)

	table := u.Table()
	if len(table) != u.TokenCount() {
		t.Fatalf("table length %d != token count %d", len(table), u.TokenCount())
	}

	rebuilt := unit.FromTable(u.File(), table)
	if rebuilt.TokenCount() != u.TokenCount() {
		t.Fatalf("rebuilt count %d != original %d", rebuilt.TokenCount(), u.TokenCount())
	}

	for off := uint32(0); off < u.File().Size(); off++ {
		loc := source.Loc{File: u.File().ID, Off: off}
		h1, ok1 := u.LookupFrom(loc)
		h2, ok2 := rebuilt.LookupFrom(loc)
		if ok1 != ok2 {
			t.Fatalf("offset %d: lookup disagreement", off)
		}
		if !ok1 {
			continue
		}
		if u.ExtentOf(h1) != rebuilt.ExtentOf(h2) || u.TextOf(h1) != rebuilt.TextOf(h2) {
			t.Fatalf("offset %d: extent/text disagreement", off)
		}
		u.Release(h1)
		rebuilt.Release(h2)
	}
}
