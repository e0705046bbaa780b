package perfectree

// Value is the constraint on tree leaf values.
// A value exposes itself as bytes so it can be hashed, and clones
// itself so padding can duplicate the last input element.
// The constraint is self-referential: a type V qualifies by
// implementing Value[V].
type Value[T any] interface {
	// Bytes returns the byte representation fed to the hasher.
	// The tree neither modifies nor retains the returned slice.
	Bytes() []byte

	// Clone returns an independent copy of the value.
	Clone() T
}

// String adapts a Go string to the [Value] contract.
type String string

func (s String) Bytes() []byte { return []byte(s) }

// Clone returns s unchanged; strings are immutable so no copy is needed.
func (s String) Clone() String { return s }

// Bytes adapts a raw byte slice to the [Value] contract.
type Bytes []byte

func (b Bytes) Bytes() []byte { return b }

// Clone copies the underlying slice so a padded duplicate does not
// alias the caller's memory.
func (b Bytes) Clone() Bytes { return append(Bytes(nil), b...) }
