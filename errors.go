package perfectree

import "errors"

// ErrEmptyInput is returned from [Build] when given a zero-length
// value sequence. Nothing is constructed in that case.
var ErrEmptyInput = errors.New("perfectree: input values must not be empty")

// ErrEmptyTree is returned from [Tree.Root] when the node store is
// empty. A tree returned by [Build] always has at least one node,
// so this only guards the zero value of [Tree].
var ErrEmptyTree = errors.New("perfectree: tree has no nodes")
