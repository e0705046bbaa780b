package perfectree

// Hasher is the user-defined interface for computing digests.
// [Build] resets the hasher, absorbs the input bytes, and finalizes
// to a hex string once per leaf or internal node.
//
// Because the tree always calls Reset before a new absorb/finalize
// cycle, implementations may assume single-shot use per reset;
// SumHex is not required to reset state implicitly.
type Hasher interface {
	// Reset clears internal state so the instance can be reused.
	Reset()

	// Absorb feeds input bytes into the hash state.
	// It may be called multiple times before SumHex.
	Absorb(p []byte)

	// SumHex returns the digest of everything absorbed since the
	// last Reset, as a lowercase hexadecimal string.
	SumHex() string
}
