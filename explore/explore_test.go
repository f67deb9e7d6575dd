package explore

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LIAMBB/chess-movegen/components"
	"github.com/LIAMBB/chess-movegen/store"
)

func openTestStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.Open(filepath.Join(t.TempDir(), "chess.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestRunOnePly(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()

	stats, err := New(st, Options{MaxDepth: 1, Workers: 4}).Run(ctx, components.StandardBoard())
	require.NoError(t, err)
	assert.Equal(t, 20, stats.StatesAtDepth[0])
	assert.Equal(t, 1, stats.Processed)
	assert.False(t, stats.StoppedEarly)

	children, err := st.Children(ctx, stats.RootID)
	require.NoError(t, err)
	assert.Len(t, children, 20)

	n, err := st.CountStates(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(21), n)
}

func TestRunTwoPlies(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()

	stats, err := New(st, Options{MaxDepth: 2, Workers: 3}).Run(ctx, components.StandardBoard())
	require.NoError(t, err)
	assert.Equal(t, 20, stats.StatesAtDepth[0])
	assert.Equal(t, 400, stats.StatesAtDepth[1])
	assert.Equal(t, 21, stats.Processed)

	n, err := st.CountStates(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(421), n)
}

func TestRunEndsWhenSideHasNoMoves(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()

	root, err := components.ParseBoard("8/8/8/8/8/8/8/R7 w")
	require.NoError(t, err)

	stats, err := New(st, Options{MaxDepth: 2, Workers: 2}).Run(ctx, root)
	require.NoError(t, err)
	// 14 rook moves; black has nothing to move so the tree ends there
	assert.Equal(t, 14, stats.StatesAtDepth[0])
	assert.Equal(t, 0, stats.StatesAtDepth[1])
	assert.Equal(t, 15, stats.Processed)
}

// Two kings in opposite corners transpose after the second white move: the
// 54 move sequences of the third ply reach only 27 distinct states.
func TestRunExpandsTranspositionsOnce(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()

	root, err := components.ParseBoard("7k/8/8/8/8/8/8/K7 w")
	require.NoError(t, err)

	stats, err := New(st, Options{MaxDepth: 3, Workers: 2}).Run(ctx, root)
	require.NoError(t, err)
	assert.Equal(t, map[int]int{0: 3, 1: 9, 2: 27}, stats.StatesAtDepth)
	assert.Equal(t, 13, stats.Processed)

	n, err := st.CountStates(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(40), n)
}

func TestRunStopsAtSizeLimit(t *testing.T) {
	st := openTestStore(t)

	stats, err := New(st, Options{MaxDepth: 3, MaxSizeBytes: 1}).Run(context.Background(), components.StandardBoard())
	require.NoError(t, err)
	assert.True(t, stats.StoppedEarly)
	assert.Equal(t, 0, stats.Processed)
}

func TestRunCancelled(t *testing.T) {
	st := openTestStore(t)
	ctx, cancel := context.WithCancel(context.Background())

	explorer := New(st, Options{MaxDepth: 3})
	cancel()
	_, err := explorer.Run(ctx, components.StandardBoard())
	assert.ErrorIs(t, err, context.Canceled)
}
