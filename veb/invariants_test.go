package veb

import (
	"testing"

	"VanEmdeBoas/bits"

	"github.com/stretchr/testify/require"
)

// checkInvariants walks n and verifies the structural invariants of every
// node below it. It returns the number of stored values.
func checkInvariants(t testing.TB, n node, width uint) int {
	t.Helper()
	switch n := n.(type) {
	case *leaf:
		for v := uint64(1) << min(width, leafWidth); v < 256; v++ {
			require.False(t, n.contains(v), "leaf of width %d holds %d", width, v)
		}
		return n.count()

	case *dense:
		require.Equal(t, uint8(width), n.width)
		require.Equal(t, uint8(width/2), n.lower)
		if !n.used {
			require.Zero(t, n.lo)
			require.Zero(t, n.hi)
			require.True(t, n.summary.isEmpty(), "empty dense node with summary")
			for _, child := range n.children {
				require.Nil(t, child, "empty dense node with children")
			}
			return 0
		}
		require.LessOrEqual(t, n.lo, n.hi)
		require.LessOrEqual(t, n.hi, bits.LowMask(width))

		count := 1
		if n.lo != n.hi {
			count++
		}
		for h, child := range n.children {
			require.Equal(t, child != nil, n.summary.contains(uint64(h)), "summary out of sync at bucket %d", h)
			if child == nil {
				continue
			}
			require.NotEqual(t, n.lo, n.hi, "one-element node with children")
			require.False(t, child.isEmpty(), "empty child kept at bucket %d", h)
			require.Less(t, n.lo, n.join(uint64(h), child.min()))
			require.Greater(t, n.hi, n.join(uint64(h), child.max()))
			count += checkInvariants(t, child, uint(n.lower))
		}
		return count

	case *sparse:
		require.Equal(t, uint8(width), n.width)
		require.Equal(t, uint8(width/2), n.lower)
		if !n.used {
			require.Zero(t, n.lo)
			require.Zero(t, n.hi)
			require.Nil(t, n.children, "empty sparse node with children")
			return 0
		}
		require.LessOrEqual(t, n.lo, n.hi)
		require.LessOrEqual(t, n.hi, bits.LowMask(width))

		count := 1
		if n.lo != n.hi {
			count++
		}
		if n.children == nil {
			return count
		}
		require.Positive(t, n.children.Len(), "empty B-tree kept alive")
		require.NotEqual(t, n.lo, n.hi, "one-element node with children")
		n.children.Ascend(func(b bucket) bool {
			require.LessOrEqual(t, b.high, bits.LowMask(width-width/2))
			require.False(t, b.child.isEmpty(), "empty child kept at bucket %d", b.high)
			require.Less(t, n.lo, n.join(b.high, b.child.min()))
			require.Greater(t, n.hi, n.join(b.high, b.child.max()))
			count += checkInvariants(t, b.child, uint(n.lower))
			return true
		})
		return count

	default:
		t.Fatalf("unexpected node type %T", n)
		return 0
	}
}

func requireValid[K Key](t testing.TB, s *Set[K]) {
	t.Helper()
	require.Equal(t, s.Len(), checkInvariants(t, s.root, s.width))
}
