package unionfind_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/percolate/unionfind"
)

//----------------------------------------------------------------------------//
// Construction Tests
//----------------------------------------------------------------------------//

// TestNew_Errors verifies that New rejects non-positive universe sizes.
func TestNew_Errors(t *testing.T) {
	for _, size := range []int{0, -1, -100} {
		_, err := unionfind.New(size)
		if !errors.Is(err, unionfind.ErrZeroSize) {
			t.Errorf("New(%d) error = %v; want ErrZeroSize", size, err)
		}
	}
}

// TestNew_InitialState verifies every element starts in its own component.
func TestNew_InitialState(t *testing.T) {
	uf, err := unionfind.New(5)
	require.NoError(t, err)

	assert.Equal(t, 5, uf.Len())
	assert.Equal(t, 5, uf.Count())
	for i := 0; i < 5; i++ {
		root, err := uf.Find(i)
		require.NoError(t, err)
		assert.Equal(t, i, root) // singleton component is its own root
	}
	conn, err := uf.Connected(0, 4)
	require.NoError(t, err)
	assert.False(t, conn)
}

//----------------------------------------------------------------------------//
// Union / Connected Tests
//----------------------------------------------------------------------------//

// TestUnionConnected replays the classic merge sequence and checks the
// resulting partition pairwise.
func TestUnionConnected(t *testing.T) {
	uf, err := unionfind.New(10)
	require.NoError(t, err)

	merges := [][2]int{{4, 3}, {3, 8}, {6, 5}, {9, 4}, {2, 1}}
	for _, m := range merges {
		require.NoError(t, uf.Union(m[0], m[1]))
	}

	cases := []struct {
		p, q int
		want bool
	}{
		{0, 0, true},
		{4, 3, true},
		{3, 4, true},
		{8, 9, true},
		{0, 7, false},
		{3, 1, false},
		{5, 6, true},
	}
	for _, tc := range cases {
		got, err := uf.Connected(tc.p, tc.q)
		require.NoError(t, err)
		if got != tc.want {
			t.Errorf("Connected(%d, %d) = %t; want %t", tc.p, tc.q, got, tc.want)
		}
	}
}

// TestUnion_CountAndIdempotence verifies Count drops once per effective merge
// and that redundant unions are no-ops.
func TestUnion_CountAndIdempotence(t *testing.T) {
	uf, err := unionfind.New(4)
	require.NoError(t, err)

	require.NoError(t, uf.Union(0, 1))
	assert.Equal(t, 3, uf.Count())

	// Self-union and already-merged union leave the count untouched.
	require.NoError(t, uf.Union(2, 2))
	require.NoError(t, uf.Union(1, 0))
	assert.Equal(t, 3, uf.Count())

	require.NoError(t, uf.Union(1, 2))
	require.NoError(t, uf.Union(2, 3))
	assert.Equal(t, 1, uf.Count())

	conn, err := uf.Connected(0, 3)
	require.NoError(t, err)
	assert.True(t, conn)
}

//----------------------------------------------------------------------------//
// Range Validation Tests
//----------------------------------------------------------------------------//

// TestIndexRange verifies all operations reject indices outside [0, size).
func TestIndexRange(t *testing.T) {
	uf, err := unionfind.New(3)
	require.NoError(t, err)

	for _, bad := range []int{-1, 3, 42} {
		assert.ErrorIs(t, uf.Union(bad, 0), unionfind.ErrIndexRange)
		assert.ErrorIs(t, uf.Union(0, bad), unionfind.ErrIndexRange)

		_, err = uf.Connected(bad, 0)
		assert.ErrorIs(t, err, unionfind.ErrIndexRange)
		_, err = uf.Connected(0, bad)
		assert.ErrorIs(t, err, unionfind.ErrIndexRange)

		_, err = uf.Find(bad)
		assert.ErrorIs(t, err, unionfind.ErrIndexRange)
	}

	// Failed calls leave the partition unchanged.
	assert.Equal(t, 3, uf.Count())
}

// TestTransitiveChain merges a long chain and confirms the endpoints connect;
// path compression must keep the walk shallow enough for this to stay fast.
func TestTransitiveChain(t *testing.T) {
	const n = 1000
	uf, err := unionfind.New(n)
	require.NoError(t, err)

	for i := 1; i < n; i++ {
		require.NoError(t, uf.Union(i-1, i))
	}
	conn, err := uf.Connected(0, n-1)
	require.NoError(t, err)
	assert.True(t, conn)
	assert.Equal(t, 1, uf.Count())
}
