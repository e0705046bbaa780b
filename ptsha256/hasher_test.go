package ptsha256_test

import (
	"testing"

	"github.com/perfectree/perfectree"
	"github.com/perfectree/perfectree/pthashtest"
	"github.com/perfectree/perfectree/ptsha256"
	"github.com/stretchr/testify/require"
)

func TestCompliance(t *testing.T) {
	t.Parallel()

	pthashtest.TestHasherCompliance(t, func() (perfectree.Hasher, int) {
		return ptsha256.New(), 2 * ptsha256.HashSize
	})
}

func TestKnownDigest(t *testing.T) {
	t.Parallel()

	h := ptsha256.New()
	h.Reset()
	h.Absorb([]byte("tea"))

	require.Equal(
		t,
		"a9f74d1ec36ebdeb2da3f6e5868090cd2a2d20b3dcca7b62f60304b1d3d9ef42",
		h.SumHex(),
	)
}
