package walk

import (
	"tokwalk/internal/source"
)

// isSpaceByte mirrors the lexer's trivia scanner: both sides must agree on
// what delimits a non-whitespace run.
func isSpaceByte(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

// Retreat moves to the token immediately preceding the current one, using
// only forward lookups.
//
// Phase 1 walks left from the current extent's start, skipping whitespace
// byte by byte (no oracle calls), and probes the first non-whitespace byte.
// A probe whose end equals the current token's end merely rediscovered the
// current token, so the scan keeps going; the first probe with a different
// end is the candidate predecessor.
//
// Phase 2 refines the candidate's start. The probe byte was an arbitrary
// byte inside the candidate's span; the true start is the minimal offset,
// within the non-whitespace run containing that byte, whose lookup still
// ends where the candidate ends. Found by binary search: O(log run length)
// lookups instead of a linear rescan.
//
// Panics when the current token starts at file offset 0, or when the scan
// reaches offset 0 without finding a predecessor: backward iteration does
// not cross file boundaries.
func (c *Cursor) Retreat() {
	c.mustPositioned("Retreat")

	cur := c.tok.extent()
	curEnd := cur.EndLoc()

	if cur.Start == 0 {
		panic("walk: Retreat on the first token of a file")
	}

	buf := c.tok.oracle.Buffer(cur.File)
	off := cur.Start

	// Phase 1: whitespace-skip scan.
	var cand owned
	var candEnd source.Loc
	for {
		if off == 0 {
			panic("walk: Retreat found no predecessor before start of file")
		}
		off--

		if isSpaceByte(buf[off]) {
			continue
		}

		probe := acquire(c.tok.oracle, source.Loc{File: cur.File, Off: off})
		if probe.ok {
			end := probe.extent().EndLoc()
			if end != curEnd {
				cand = probe
				candEnd = end
				break
			}
			probe.release()
		}
		// Empirically a single probe suffices here, but that is an
		// observation, not a guarantee: the byte may still sit inside the
		// current token's own span, so keep scanning left.
	}

	// Phase 2: start refinement. Bound the search to the contiguous
	// non-whitespace run containing the probe byte; the candidate's end is
	// already fixed and does not move.
	runStart := off
	for runStart > 0 && !isSpaceByte(buf[runStart-1]) {
		runStart--
	}

	if runStart < off {
		// consider reports whether a lookup at o still lands in the
		// candidate token, and if so replaces cand with that lookup.
		consider := func(o uint32) bool {
			probe := acquire(c.tok.oracle, source.Loc{File: cur.File, Off: o})
			if !probe.ok {
				return false
			}
			if probe.extent().EndLoc() != candEnd {
				probe.release()
				return false
			}
			cand.release()
			cand = probe
			return true
		}

		// The run's first byte is the best possible start; try it before
		// searching.
		if !consider(runStart) {
			// Offsets in [runStart+1, off) remain; off itself is already
			// known to be inside the candidate.
			lo, hi := runStart+1, off
			for lo < hi {
				mid := lo + (hi-lo)/2
				if consider(mid) {
					// Still inside the candidate: the start is at mid or
					// further left.
					hi = mid
				} else {
					// Overshot into an earlier token.
					lo = mid + 1
				}
			}
		}
	}
	// else: single-byte run, the probe byte was the start.

	c.tok.release()
	c.tok = cand
}
