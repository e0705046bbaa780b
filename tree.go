package perfectree

import (
	"fmt"
	"math/bits"
)

// Tree is a perfect binary Merkle tree over an ordered sequence of
// values. Create one with [Build]; a returned Tree is immutable and
// safe for concurrent reads.
//
// Nodes are stored in a single level-order slice: indices [0, n)
// are the leaves in input order, where n is the padded leaf count,
// followed by each successively smaller level, ending with the root
// at the final index. A tree with n leaves always has exactly
// 2n - 1 nodes.
type Tree[T Value[T], H Hasher] struct {
	hasher H
	nodes  []Node[T]
}

// Build constructs a Merkle tree over values using hasher for every
// digest computation. It returns [ErrEmptyInput] if values is empty.
//
// Build takes ownership of both arguments. If the input length is
// not a power of two, the sequence is padded by cloning its last
// element until it is; the padded duplicates become genuine leaves,
// so callers must not assume leaf values are unique.
//
// A single-element input yields a one-node tree whose root is the
// sole leaf.
func Build[T Value[T], H Hasher](values []T, hasher H) (*Tree[T, H], error) {
	if len(values) == 0 {
		return nil, ErrEmptyInput
	}

	n := nextPowerOfTwo(len(values))
	if len(values) < n {
		last := values[len(values)-1]
		for len(values) < n {
			values = append(values, last.Clone())
		}
	}

	nodes := make([]Node[T], 0, 2*n-1)
	for _, v := range values {
		nodes = append(nodes, leafNode(v, hasher))
	}

	// Build each parent level from the one below it.
	// Starting from a power of two guarantees every level pairs
	// evenly, so the width halves cleanly until one root remains.
	levelStart := 0
	for width := n; width > 1; width >>= 1 {
		for i := 0; i < width; i += 2 {
			left := nodes[levelStart+i]
			right := nodes[levelStart+i+1]
			nodes = append(nodes, internalNode(left, right, hasher))
		}
		levelStart += width
	}

	return &Tree[T, H]{hasher: hasher, nodes: nodes}, nil
}

func leafNode[T Value[T], H Hasher](v T, hasher H) Node[T] {
	hasher.Reset()
	hasher.Absorb(v.Bytes())

	return Node[T]{
		value:    v,
		hasValue: true,
		hash:     hasher.SumHex(),
	}
}

func internalNode[T Value[T], H Hasher](left, right Node[T], hasher H) Node[T] {
	// The children's hex digests are absorbed as bytes,
	// left then right. The order is significant.
	hasher.Reset()
	hasher.Absorb([]byte(left.hash))
	hasher.Absorb([]byte(right.hash))

	return Node[T]{hash: hasher.SumHex()}
}

// Root returns the root node, the last entry of the node store.
// It returns [ErrEmptyTree] only on a tree with no nodes, which
// cannot arise from [Build].
func (t *Tree[T, H]) Root() (Node[T], error) {
	if len(t.nodes) == 0 {
		return Node[T]{}, ErrEmptyTree
	}

	return t.nodes[len(t.nodes)-1], nil
}

// Len returns the total number of nodes in the tree.
func (t *Tree[T, H]) Len() int {
	return len(t.nodes)
}

// NumLeaves returns the number of leaves, including any padding
// duplicates.
func (t *Tree[T, H]) NumLeaves() int {
	return (len(t.nodes) + 1) / 2
}

// Node returns the node at index i in level order.
// It panics if i is out of range.
func (t *Tree[T, H]) Node(i int) Node[T] {
	if i < 0 || i >= len(t.nodes) {
		panic(fmt.Errorf(
			"BUG: node index %d out of range [0, %d)", i, len(t.nodes),
		))
	}

	return t.nodes[i]
}

func nextPowerOfTwo(n int) int {
	if n&(n-1) == 0 {
		return n
	}

	return 1 << bits.Len(uint(n))
}
