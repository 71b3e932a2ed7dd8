package walk

import (
	"tokwalk/internal/source"
)

// Handle is an opaque reference to one token owned by an Oracle.
// Handles are capabilities: they are never introspected here, only passed
// back to the oracle that minted them.
type Handle uint64

// Oracle is the forward-only lexical service the walker consumes.
// Implementations: unit.Unit (production), test doubles in walk tests.
//
// Every Handle returned by LookupFrom is owned by the caller and must be
// passed to Release exactly once. Lookups are assumed deterministic for a
// stable buffer; a failed lookup is a normal outcome (end of stream), not
// an error.
type Oracle interface {
	// LookupFrom returns the token beginning at or covering loc,
	// or false when no token exists at or after it.
	LookupFrom(loc source.Loc) (Handle, bool)

	// ExtentOf returns the token's extent as a half-open byte span.
	ExtentOf(h Handle) source.Span

	// Release disposes the handle. Releasing a handle twice is a contract
	// violation on the oracle side.
	Release(h Handle)

	// Buffer returns the immutable byte buffer of the given file. The
	// caller must not mutate it while any cursor derived from it lives.
	Buffer(id source.FileID) []byte
}
