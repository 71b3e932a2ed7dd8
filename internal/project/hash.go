package project

import (
	"crypto/sha256"
	"encoding/hex"
)

// Digest is a fixed 256-bit hash, compatible with source.File.Hash.
type Digest [32]byte

// HashBytes digests raw content.
func HashBytes(b []byte) Digest {
	return Digest(sha256.Sum256(b))
}

// Hex returns the lowercase hex form of the digest.
func (d Digest) Hex() string {
	return hex.EncodeToString(d[:])
}

// IsZero reports whether the digest is all zeroes, i.e. never computed.
func (d Digest) IsZero() bool {
	var z Digest
	return d == z
}
