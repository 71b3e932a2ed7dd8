package driver

import (
	"testing"

	"tokwalk/internal/token"
)

func TestWalkForwardAndBack(t *testing.T) {
	dir := t.TempDir()
	path := writeSource(t, dir, "walkme.tw", "let x = 42\n")

	res, err := Walk(path, WalkOptions{
		UnitOptions: UnitOptions{MaxDiagnostics: 10},
		At:          4, // inside "x"
		Back:        2,
		Fwd:         2,
	})
	if err != nil {
		t.Fatalf("Walk: %v", err)
	}

	// seed on "x", one back step to "let" (then the guard stops), two
	// forward steps to "=" and "42".
	wantKinds := []token.Kind{token.Ident, token.KwLet, token.Assign, token.IntLit}
	wantDirs := []string{"seed", "back", "fwd", "fwd"}
	if len(res.Steps) != len(wantKinds) {
		t.Fatalf("steps = %+v, want %d entries", res.Steps, len(wantKinds))
	}
	for i := range wantKinds {
		if res.Steps[i].Kind != wantKinds[i] || res.Steps[i].Dir != wantDirs[i] {
			t.Errorf("step %d = %s/%v, want %s/%v",
				i, res.Steps[i].Dir, res.Steps[i].Kind, wantDirs[i], wantKinds[i])
		}
	}
	if res.Steps[0].Text != "x" {
		t.Errorf("seed text = %q, want x", res.Steps[0].Text)
	}
	if res.Unit.Live() != 0 {
		t.Errorf("leaked %d handles", res.Unit.Live())
	}
}

func TestWalkSeedPastEnd(t *testing.T) {
	dir := t.TempDir()
	path := writeSource(t, dir, "tail.tw", "a\n")

	res, err := Walk(path, WalkOptions{
		UnitOptions: UnitOptions{MaxDiagnostics: 10},
		At:          2, // past the last token
		Fwd:         3,
	})
	if err != nil {
		t.Fatalf("Walk: %v", err)
	}
	if len(res.Steps) != 0 {
		t.Errorf("steps = %+v, want none", res.Steps)
	}
	if !res.Bag.HasWarnings() {
		t.Error("expected an empty-seed warning")
	}
}

func TestWalkOffsetOutOfRange(t *testing.T) {
	dir := t.TempDir()
	path := writeSource(t, dir, "short.tw", "a\n")

	if _, err := Walk(path, WalkOptions{UnitOptions: UnitOptions{MaxDiagnostics: 10}, At: 99}); err == nil {
		t.Error("expected an error for an out-of-range offset")
	}
}

func TestWalkMaxStepsCap(t *testing.T) {
	dir := t.TempDir()
	path := writeSource(t, dir, "capped.tw", "a b c d e f\n")

	res, err := Walk(path, WalkOptions{
		UnitOptions: UnitOptions{MaxDiagnostics: 10},
		At:          0,
		Fwd:         100,
		MaxSteps:    2,
	})
	if err != nil {
		t.Fatalf("Walk: %v", err)
	}
	// seed + 2 capped forward steps
	if len(res.Steps) != 3 {
		t.Errorf("steps = %d, want 3", len(res.Steps))
	}
}
