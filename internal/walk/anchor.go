package walk

import (
	"tokwalk/internal/source"
)

// Boundary selects which edge of an extent seeds a cursor.
type Boundary uint8

const (
	// AtStart seeds at the first byte of the extent.
	AtStart Boundary = iota
	// AtEnd seeds one past the last byte of the extent.
	AtEnd
)

// Anchor is any syntactic entity that can seed token iteration: an AST
// node, a diagnostic, a selection. Only its extent is consulted.
type Anchor interface {
	Extent() source.Span
}

// AnchorLoc derives a boundary location from an anchor's extent. The
// extent's edges are used deliberately: an entity's own "position"
// accessor may point into its interior (e.g. a name inside a
// declaration), while the extent edges are well-behaved.
func AnchorLoc(a Anchor, at Boundary) source.Loc {
	ext := a.Extent()
	if at == AtEnd {
		return ext.EndLoc()
	}
	return ext.StartLoc()
}
