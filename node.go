package perfectree

// Node is one vertex of a [Tree].
// Leaf nodes carry the original (or padded-duplicate) input value
// alongside its digest; internal nodes carry only the combined
// digest of their two children.
type Node[T any] struct {
	value    T
	hasValue bool
	hash     string
}

// Value returns the leaf's value and true, or the zero value and
// false if n is an internal node.
func (n Node[T]) Value() (T, bool) {
	return n.value, n.hasValue
}

// Hash returns the node's digest as a lowercase hexadecimal string.
func (n Node[T]) Hash() string {
	return n.hash
}

// IsLeaf reports whether n holds an input value.
func (n Node[T]) IsLeaf() bool {
	return n.hasValue
}
