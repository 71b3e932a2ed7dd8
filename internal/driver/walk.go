package driver

import (
	"fmt"

	"tokwalk/internal/diag"
	"tokwalk/internal/source"
	"tokwalk/internal/token"
	"tokwalk/internal/unit"
	"tokwalk/internal/walk"
)

// WalkStep is one visited token during a scripted walk.
type WalkStep struct {
	Dir  string // "seed", "back", "fwd"
	Kind token.Kind
	Span source.Span
	Text string
}

// WalkResult is the outcome of a scripted walk over one file.
type WalkResult struct {
	*UnitResult
	Steps []WalkStep
}

// WalkOptions scripts a walk: seed at At, then Back retreats, then Fwd
// advances from the seed position.
type WalkOptions struct {
	UnitOptions
	At       uint32
	Back     int
	Fwd      int
	MaxSteps int // cap for Back and Fwd, 0 means unlimited
}

// Walk seeds a cursor at a byte offset and steps it, recording each token
// it lands on. Backward steps stop silently at the first token of the
// file; forward steps stop at the end of the stream.
func Walk(path string, opts WalkOptions) (*WalkResult, error) {
	unitRes, err := NewUnit(path, opts.UnitOptions)
	if err != nil {
		return nil, err
	}

	if opts.MaxSteps > 0 {
		opts.Back = min(opts.Back, opts.MaxSteps)
		opts.Fwd = min(opts.Fwd, opts.MaxSteps)
	}

	res := &WalkResult{UnitResult: unitRes}
	u := unitRes.Unit

	if opts.At > unitRes.File.Size() {
		return nil, fmt.Errorf("%s: offset %d is out of range (file is %d bytes)",
			path, opts.At, unitRes.File.Size())
	}

	seed := walk.New(u, source.Loc{File: unitRes.File.ID, Off: opts.At})
	defer seed.Close()
	if !seed.Valid() {
		diag.ReportWarning(diag.BagReporter{Bag: unitRes.Bag}, diag.WalkEmptySeed,
			source.Span{File: unitRes.File.ID, Start: opts.At, End: opts.At},
			fmt.Sprintf("no token at or after offset %d", opts.At)).Emit()
		return res, nil
	}
	res.Steps = append(res.Steps, stepOf("seed", u, &seed))

	back := seed.Clone()
	for i := 0; i < opts.Back; i++ {
		if back.Extent().Start == 0 {
			break
		}
		back.Retreat()
		res.Steps = append(res.Steps, stepOf("back", u, &back))
	}
	back.Close()

	fwd := seed.Clone()
	for i := 0; i < opts.Fwd; i++ {
		fwd.Advance()
		if !fwd.Valid() {
			break
		}
		res.Steps = append(res.Steps, stepOf("fwd", u, &fwd))
	}
	fwd.Close()

	return res, nil
}

func stepOf(dir string, u *unit.Unit, c *walk.Cursor) WalkStep {
	return WalkStep{
		Dir:  dir,
		Kind: u.KindOf(c.Handle()),
		Span: c.Extent(),
		Text: u.TextOf(c.Handle()),
	}
}
