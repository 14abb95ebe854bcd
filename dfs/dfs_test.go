package dfs_test

import (
	"context"
	"errors"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hcpath/core"
	"github.com/katalvlaran/hcpath/dfs"
)

// diamond: e0 0→1, e1 0→2, e2 0→3, e3 1→2, e4 1→3, e5 2→3.
func diamond(t *testing.T) *core.Graph {
	t.Helper()
	g, err := core.Build(4, []core.Edge{
		{From: 0, To: 1}, {From: 0, To: 2}, {From: 0, To: 3},
		{From: 1, To: 2}, {From: 1, To: 3}, {From: 2, To: 3},
	})
	require.NoError(t, err)
	return g
}

func TestSimplePaths_Errors(t *testing.T) {
	g := diamond(t)

	_, err := dfs.SimplePaths(nil, 0, 1, 3)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)

	_, err = dfs.SimplePaths(g, 0, 9, 3)
	assert.ErrorIs(t, err, dfs.ErrVertexNotFound)

	_, err = dfs.SimplePaths(g, 0, 3, 0)
	assert.ErrorIs(t, err, dfs.ErrBadHopBound)

	_, err = dfs.SimplePaths(g, 0, 3, 3, dfs.WithMaxPaths(-1))
	assert.ErrorIs(t, err, dfs.ErrOptionViolation)
}

func TestSimplePaths_Diamond(t *testing.T) {
	g := diamond(t)

	tests := []struct {
		name      string
		s, t      core.VertexID
		k         int
		wantPaths int
		wantEdges []core.EdgeID
	}{
		// 0→3, 0→1→3, 0→2→3, 0→1→2→3
		{"k3 full", 0, 3, 3, 4, []core.EdgeID{0, 1, 2, 3, 4, 5}},
		// the 3-hop path is cut
		{"k2", 0, 3, 2, 3, []core.EdgeID{0, 1, 2, 4, 5}},
		{"k1", 0, 3, 1, 1, []core.EdgeID{2}},
		{"direct only", 1, 2, 3, 1, []core.EdgeID{3}},
		{"unreachable", 3, 0, 3, 0, []core.EdgeID{}},
		{"same vertex", 2, 2, 3, 0, []core.EdgeID{}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			res, err := dfs.SimplePaths(g, tc.s, tc.t, tc.k)
			require.NoError(t, err)
			assert.Equal(t, tc.wantPaths, res.Paths)
			assert.Equal(t, tc.wantEdges, res.Edges)
			assert.False(t, res.Truncated)
		})
	}
}

// TestSimplePaths_NoRevisit checks that a cycle cannot be used to reach
// the target.
func TestSimplePaths_NoRevisit(t *testing.T) {
	// 0→1, 1→2, 2→1, 1→3: path 0→1→2→1→3 is not simple.
	g, err := core.Build(4, []core.Edge{
		{From: 0, To: 1}, {From: 1, To: 2}, {From: 2, To: 1}, {From: 1, To: 3},
	})
	require.NoError(t, err)

	edges, err := dfs.EdgesOnSimplePaths(g, 0, 3, 5)
	require.NoError(t, err)
	assert.Equal(t, []core.EdgeID{0, 3}, edges)
}

func TestSimplePaths_Hooks(t *testing.T) {
	g := diamond(t)

	var seen [][]core.EdgeID
	res, err := dfs.SimplePaths(g, 0, 3, 3, dfs.WithOnPath(func(p []core.EdgeID) error {
		seen = append(seen, slices.Clone(p))
		return nil
	}))
	require.NoError(t, err)
	assert.Len(t, seen, res.Paths)
	assert.Contains(t, seen, []core.EdgeID{0, 3, 5})

	res, err = dfs.SimplePaths(g, 0, 3, 3, dfs.WithMaxPaths(2))
	require.NoError(t, err)
	assert.Equal(t, 2, res.Paths)
	assert.True(t, res.Truncated)

	boom := errors.New("boom")
	_, err = dfs.SimplePaths(g, 0, 3, 3, dfs.WithOnPath(func([]core.EdgeID) error { return boom }))
	assert.ErrorIs(t, err, boom)
}

func TestSimplePaths_Canceled(t *testing.T) {
	g := diamond(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := dfs.SimplePaths(g, 0, 3, 3, dfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}
