// Package walk provides bidirectional navigation over a forward-only
// token oracle.
//
// The oracle can only answer "which token begins at or covers this
// location". There is no reverse-tokenization primitive, so stepping
// backward is reconstructed from forward lookups: a whitespace skip to
// find some byte of the previous token, then a binary search over the
// surrounding non-whitespace run to pin down its true start. See Retreat.
//
// Cursors own the token handles they hold and release them back to the
// oracle exactly once. A Cursor must not be duplicated by plain
// assignment: both copies would release the same handle. Use Clone, which
// acquires an independent handle — note that this costs one oracle lookup
// and is not a free copy.
//
// Backward iteration never crosses file boundaries. Retreat on the first
// token of a file is a contract violation and panics.
package walk
