package main

import (
	"context"
	"io"
	"log/slog"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolveWidths(t *testing.T) {
	t.Parallel()
	require.Equal(t, []int{8, 16, 32}, resolveWidths(" 8, 16,,32 ", 0))
	require.Empty(t, resolveWidths("", 0))

	require.Equal(t, []int{1}, resolveWidths("8,16", 1))
	require.Equal(t, []int{8}, resolveWidths("", 255))
	require.Equal(t, []int{9}, resolveWidths("", 256))
	require.Equal(t, []int{64}, resolveWidths("", math.MaxUint64))
}

func TestLimitFor(t *testing.T) {
	t.Parallel()
	require.Equal(t, uint64(255), limitFor(8, 0))
	require.Equal(t, uint64(1000), limitFor(10, 1000))
	require.Equal(t, uint64(math.MaxUint64), limitFor(64, 0))
}

func TestRun(t *testing.T) {
	t.Parallel()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	for _, tc := range []struct {
		width uint
		limit uint64
	}{
		{width: 8, limit: 255},
		{width: 10, limit: 1000},
		{width: 20, limit: 1<<20 - 1},
		{width: 64, limit: math.MaxUint64},
	} {
		res, err := run(context.Background(), logger, tc.width, tc.limit, 5_000, 42, true)
		require.NoError(t, err, "width %d", tc.width)
		require.Equal(t, tc.width, res.width)
		require.Equal(t, 5_000, res.n)
		require.LessOrEqual(t, res.distinct, 5_000)
		if tc.limit < 5_000 {
			require.LessOrEqual(t, uint64(res.distinct), tc.limit+1)
		}
		require.Positive(t, res.bytes)
		require.NotZero(t, res.visits)
	}
}

func TestRunCancelled(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := run(ctx, slog.New(slog.NewTextHandler(io.Discard, nil)), 16, 1<<16-1, 100, 1, false)
	require.ErrorIs(t, err, context.Canceled)
}
