// Package perfectree builds a binary Merkle tree over an ordered
// sequence of values and exposes the root digest as a compact,
// tamper-evident summary of the whole sequence.
//
// Every tree is perfect: inputs whose length is not a power of two
// are padded by duplicating the last element, so every internal
// level pairs evenly and all leaves share the same depth.
// Nodes are stored in a single level-order slice rather than a
// pointer graph, which keeps a finalized tree trivially shareable.
//
// The construction is generic over the hash algorithm (any type
// implementing [Hasher]) and the value type (any type satisfying
// [Value]). Concrete hash engines live in the ptsha256 and ptsha3
// subpackages.
package perfectree
