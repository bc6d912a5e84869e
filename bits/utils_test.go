package bits

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSignificantBits(t *testing.T) {
	t.Parallel()
	require.Equal(t, -1, MostSignificantBit(0))
	require.Equal(t, -1, LeastSignificantBit(0))

	for i := 0; i < 64; i++ {
		x := uint64(1) << i
		require.Equal(t, i, MostSignificantBit(x))
		require.Equal(t, i, LeastSignificantBit(x))
		require.Equal(t, i, MostSignificantBit(x|1))
		require.Equal(t, 0, LeastSignificantBit(x|1))
	}
}

func TestLowMask(t *testing.T) {
	t.Parallel()
	require.Equal(t, uint64(0), LowMask(0))
	require.Equal(t, uint64(1), LowMask(1))
	require.Equal(t, uint64(0xff), LowMask(8))
	require.Equal(t, uint64(0xffffffff), LowMask(32))
	require.Equal(t, ^uint64(0), LowMask(64))
	require.Equal(t, ^uint64(0), LowMask(100))
}

func TestSplitJoin(t *testing.T) {
	t.Parallel()
	r := rand.New(rand.NewSource(7))
	for i := 0; i < 10_000; i++ {
		v := r.Uint64()
		lw := uint(r.Intn(64))
		high, low := Split(v, lw)
		require.LessOrEqual(t, low, LowMask(lw))
		require.Equal(t, v, Join(high, low, lw), "v=%x lw=%d", v, lw)
	}

	high, low := Split(0xabcd, 8)
	require.Equal(t, uint64(0xab), high)
	require.Equal(t, uint64(0xcd), low)
}

func TestWidthFor(t *testing.T) {
	t.Parallel()
	require.Equal(t, uint(1), WidthFor(0))
	require.Equal(t, uint(1), WidthFor(1))
	require.Equal(t, uint(8), WidthFor(255))
	require.Equal(t, uint(9), WidthFor(256))
	require.Equal(t, uint(64), WidthFor(^uint64(0)))
}
