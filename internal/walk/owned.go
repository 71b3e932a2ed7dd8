package walk

import (
	"tokwalk/internal/source"
)

// owned pairs a token handle with the oracle that must dispose it. The
// zero value is empty and releases nothing; this models the Sentinel
// state. Every non-empty owned releases its handle exactly once.
type owned struct {
	oracle Oracle
	handle Handle
	ok     bool
}

// acquire looks up a token at loc and wraps it into an owned handle.
func acquire(o Oracle, loc source.Loc) owned {
	h, ok := o.LookupFrom(loc)
	if !ok {
		return owned{}
	}
	return owned{oracle: o, handle: h, ok: true}
}

// release disposes the handle, at most once. Safe on an empty owned.
func (t *owned) release() {
	if !t.ok {
		return
	}
	t.oracle.Release(t.handle)
	t.ok = false
}

// take transfers ownership out, leaving the source empty.
func (t *owned) take() owned {
	moved := *t
	t.ok = false
	return moved
}

// clone acquires an independent handle to the same token by re-asking the
// oracle at this token's start location. One external lookup per call;
// with a stable buffer the clone's extent equals the original's.
func (t *owned) clone() owned {
	if !t.ok {
		return owned{}
	}
	start := t.oracle.ExtentOf(t.handle).StartLoc()
	return acquire(t.oracle, start)
}

// extent returns the owned token's span. Caller checks ok first.
func (t *owned) extent() source.Span {
	return t.oracle.ExtentOf(t.handle)
}
