// Package ptsha3 provides a SHA3-256 hash engine for perfectree.
package ptsha3

import (
	"encoding/hex"
	"hash"

	"golang.org/x/crypto/sha3"
)

// HashSize is the digest size in bytes.
// Hex digests are twice this many characters.
const HashSize = 32

// Hasher is a [perfectree.Hasher] backed by SHA3-256.
type Hasher struct {
	h hash.Hash
}

// New returns a Hasher ready for use.
func New() *Hasher {
	return &Hasher{h: sha3.New256()}
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
