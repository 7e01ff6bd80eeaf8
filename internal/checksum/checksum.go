// Package checksum provides content digests for source files.
package checksum

import (
	"crypto/sha256"
	"encoding/hex"
	"io"
)

// Sum returns the hex-encoded SHA-256 digest of data.
func Sum(data []byte) string {
	h := sha256.Sum256(data)
	return hex.EncodeToString(h[:])
}

// Combine folds an ordered list of per-file digests into a single digest.
// Watch mode compares combined digests to skip rebuilds when no source
// actually changed.
func Combine(digests []string) string {
	h := sha256.New()
	for _, d := range digests {
		io.WriteString(h, d)
		h.Write([]byte{0})
	}
	return hex.EncodeToString(h.Sum(nil))
}
