// Package pthashtest provides a compliance suite for
// [perfectree.Hasher] implementations.
package pthashtest

import (
	"testing"

	"github.com/perfectree/perfectree"
	"github.com/stretchr/testify/require"
)

// HasherFactory returns a fresh hasher
// and the expected length of its hex digests.
type HasherFactory func() (h perfectree.Hasher, hexLen int)

// TestHasherCompliance runs the engine-independent requirements of
// the [perfectree.Hasher] contract against the given factory.
func TestHasherCompliance(t *testing.T, f HasherFactory) {
	t.Run("digest is deterministic", func(t *testing.T) {
		t.Parallel()

		h, _ := f()

		h.Reset()
		h.Absorb([]byte("deterministic_data"))
		d1 := h.SumHex()

		h.Reset()
		h.Absorb([]byte("deterministic_data"))
		d2 := h.SumHex()

		require.Equal(t, d1, d2)
	})

	t.Run("digest is lowercase hex of the expected length", func(t *testing.T) {
		t.Parallel()

		h, hexLen := f()

		h.Reset()
		h.Absorb([]byte("some_data"))
		d := h.SumHex()

		require.Len(t, d, hexLen)
		require.Regexp(t, "^[0-9a-f]+$", d)
	})

	t.Run("reset clears absorbed state", func(t *testing.T) {
		t.Parallel()

		h, _ := f()

		h.Reset()
		h.Absorb([]byte("stale_data"))
		h.Reset()
		h.Absorb([]byte("fresh_data"))
		afterReset := h.SumHex()

		h.Reset()
		h.Absorb([]byte("fresh_data"))
		fresh := h.SumHex()

		require.Equal(t, fresh, afterReset)
	})

	t.Run("split absorbs match a single absorb", func(t *testing.T) {
		t.Parallel()

		h, _ := f()

		h.Reset()
		h.Absorb([]byte("split_"))
		h.Absorb([]byte("data"))
		split := h.SumHex()

		h.Reset()
		h.Absorb([]byte("split_data"))
		whole := h.SumHex()

		require.Equal(t, whole, split)
	})

	t.Run("different inputs produce different digests", func(t *testing.T) {
		t.Parallel()

		h, _ := f()

		h.Reset()
		h.Absorb([]byte("input_1"))
		d1 := h.SumHex()

		h.Reset()
		h.Absorb([]byte("input_2"))
		d2 := h.SumHex()

		require.NotEqual(t, d1, d2)
	})
}
