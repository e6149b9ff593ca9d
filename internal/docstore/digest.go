package docstore

import (
	"encoding/hex"

	"golang.org/x/crypto/blake2b"
)

// Digest is the hex BLAKE2b-256 of a document body. Two uploads of the same
// bytes share a digest.
func Digest(raw []byte) string {
	sum := blake2b.Sum256(raw)
	return hex.EncodeToString(sum[:])
}

// ETag quotes a digest for use as an HTTP entity tag.
func ETag(digest string) string {
	return `"` + digest + `"`
}
