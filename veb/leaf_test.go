package veb

import (
	"math/rand"
	"testing"

	"github.com/bits-and-blooms/bitset"
	"github.com/stretchr/testify/require"
)

func TestLeafZeroValue(t *testing.T) {
	t.Parallel()
	var l leaf

	require.True(t, l.isEmpty())
	require.Zero(t, l.min())
	require.Zero(t, l.max())
	require.Zero(t, l.count())
	for v := uint64(0); v < 256; v++ {
		require.False(t, l.contains(v))
		_, ok := l.next(v)
		require.False(t, ok)
		_, ok = l.prev(v)
		require.False(t, ok)
	}
}

func TestLeafWordBoundaries(t *testing.T) {
	t.Parallel()
	var l leaf
	for _, v := range []uint64{0, 63, 64, 127, 128, 191, 192, 255} {
		require.True(t, l.insert(v))
		require.False(t, l.insert(v))
	}
	require.Equal(t, 8, l.count())
	require.Equal(t, uint64(0), l.min())
	require.Equal(t, uint64(255), l.max())

	next, ok := l.next(63)
	require.True(t, ok)
	require.Equal(t, uint64(64), next)

	next, ok = l.next(64)
	require.True(t, ok)
	require.Equal(t, uint64(127), next)

	prev, ok := l.prev(64)
	require.True(t, ok)
	require.Equal(t, uint64(63), prev)

	prev, ok = l.prev(192)
	require.True(t, ok)
	require.Equal(t, uint64(191), prev)

	_, ok = l.next(255)
	require.False(t, ok)
	_, ok = l.prev(0)
	require.False(t, ok)

	require.True(t, l.erase(0))
	require.False(t, l.erase(0))
	require.Equal(t, uint64(63), l.min())
}

// Cross-check against bitset over every query point.
func TestLeafAgainstBitset(t *testing.T) {
	t.Parallel()
	r := rand.New(rand.NewSource(42))

	for run := 0; run < 200; run++ {
		var l leaf
		ref := bitset.New(256)
		density := r.Intn(256) + 1

		for i := 0; i < density; i++ {
			v := uint(r.Intn(256))
			if r.Intn(4) == 0 {
				require.Equal(t, ref.Test(v), l.erase(uint64(v)))
				ref.Clear(v)
			} else {
				require.Equal(t, !ref.Test(v), l.insert(uint64(v)))
				ref.Set(v)
			}
		}

		require.Equal(t, int(ref.Count()), l.count())
		require.Equal(t, ref.None(), l.isEmpty())

		for v := uint(0); v < 256; v++ {
			require.Equal(t, ref.Test(v), l.contains(uint64(v)), "contains %d", v)

			want, wantOK := ref.NextSet(v + 1)
			got, ok := l.next(uint64(v))
			require.Equal(t, wantOK, ok, "next %d", v)
			if ok {
				require.Equal(t, uint64(want), got, "next %d", v)
			}

			wantOK = false
			if v > 0 {
				want, wantOK = ref.PreviousSet(v - 1)
			}
			got, ok = l.prev(uint64(v))
			require.Equal(t, wantOK, ok, "prev %d", v)
			if ok {
				require.Equal(t, uint64(want), got, "prev %d", v)
			}
		}
	}
}
