// Package ptsha256 provides a SHA-256 hash engine for perfectree.
package ptsha256

import (
	"crypto/sha256"
	"encoding/hex"
	"hash"
)

// HashSize is the digest size in bytes.
// Hex digests are twice this many characters.
const HashSize = sha256.Size

// Hasher is a [perfectree.Hasher] backed by SHA-256.
type Hasher struct {
	h hash.Hash
}

// New returns a Hasher ready for use.
func New() *Hasher {
	return &Hasher{h: sha256.New()}
}

func (h *Hasher) Reset() {
	h.h.Reset()
}

func (h *Hasher) Absorb(p []byte) {
	_, _ = h.h.Write(p)
}

func (h *Hasher) SumHex() string {
	return hex.EncodeToString(h.h.Sum(nil))
}
