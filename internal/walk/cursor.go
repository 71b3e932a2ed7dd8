package walk

import (
	"fmt"

	"tokwalk/internal/source"
)

// Cursor is a bidirectional iterator over an oracle's token stream.
//
// A cursor is either Positioned (owns exactly one token) or a Sentinel
// (owns none; end of stream or a failed initial lookup). Sentinel is
// terminal: Advance and Retreat on it panic, as does Handle/Extent.
// Callers check Valid before stepping.
//
// Do not copy a Cursor by assignment; use Clone. Release the held token
// with Close when the cursor is no longer needed.
type Cursor struct {
	tok owned
}

// New constructs a cursor positioned on the token at or after loc, or a
// Sentinel if the oracle finds nothing there.
func New(o Oracle, loc source.Loc) Cursor {
	return Cursor{tok: acquire(o, loc)}
}

// FromAnchor seeds a cursor at the chosen boundary of an anchor's extent.
func FromAnchor(o Oracle, a Anchor, at Boundary) Cursor {
	return New(o, AnchorLoc(a, at))
}

// Sentinel returns the terminal cursor.
func Sentinel() Cursor {
	return Cursor{}
}

// Valid reports whether the cursor is positioned on a token.
func (c *Cursor) Valid() bool {
	return c.tok.ok
}

// Handle returns the owned token. Panics on a Sentinel cursor.
func (c *Cursor) Handle() Handle {
	c.mustPositioned("Handle")
	return c.tok.handle
}

// Extent returns the current token's extent. Panics on a Sentinel cursor.
func (c *Cursor) Extent() source.Span {
	c.mustPositioned("Extent")
	return c.tok.extent()
}

// Advance moves to the next token: one oracle lookup at the current
// extent's end. At end of stream the cursor becomes a Sentinel.
func (c *Cursor) Advance() {
	c.mustPositioned("Advance")
	end := c.tok.extent().EndLoc()
	next := acquire(c.tok.oracle, end)
	c.tok.release()
	c.tok = next
}

// Equal reports whether two cursors denote the same position: both
// Sentinel, or both on tokens of the same oracle with equal extent *end*
// locations. The start edge is not compared — it is ambiguous by
// construction (it may be "end of the previous token" or "first
// non-whitespace byte of this token" depending on how the position was
// reached), while the end edge is consistent either way.
func (c *Cursor) Equal(other *Cursor) bool {
	if c.tok.ok != other.tok.ok {
		return false
	}
	if !c.tok.ok {
		return true
	}
	return c.tok.oracle == other.tok.oracle &&
		c.tok.extent().EndLoc() == other.tok.extent().EndLoc()
}

// Clone produces an independent cursor in the same state. For a
// Positioned cursor this performs one oracle lookup (see package doc);
// a Sentinel clones for free.
func (c *Cursor) Clone() Cursor {
	return Cursor{tok: c.tok.clone()}
}

// Close releases the held token, if any. Safe to call on a Sentinel and
// after a previous Close.
func (c *Cursor) Close() {
	c.tok.release()
}

func (c *Cursor) mustPositioned(op string) {
	if !c.tok.ok {
		panic(fmt.Sprintf("walk: %s on a sentinel cursor", op))
	}
}
