package core_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hcpath/core"
)

// diamond is the four-vertex graph used across packages:
// 0→1, 0→2, 0→3, 1→2, 1→3, 2→3.
func diamond(t *testing.T) *core.Graph {
	t.Helper()
	g, err := core.Build(4, []core.Edge{
		{From: 0, To: 1}, {From: 0, To: 2}, {From: 0, To: 3},
		{From: 1, To: 2}, {From: 1, To: 3}, {From: 2, To: 3},
	})
	require.NoError(t, err)
	return g
}

func TestBuild_Errors(t *testing.T) {
	_, err := core.Build(0, nil)
	require.ErrorIs(t, err, core.ErrEmptyGraph)

	_, err = core.Build(2, []core.Edge{{From: 0, To: 2}})
	require.ErrorIs(t, err, core.ErrVertexRange)

	// Vertex ids are uint32; larger counts are rejected before allocating.
	if math.MaxInt > math.MaxUint32 {
		_, err = core.Build(math.MaxInt, nil)
		require.ErrorIs(t, err, core.ErrVertexRange)
	}
}

func TestBuild_Counts(t *testing.T) {
	g := diamond(t)
	assert.Equal(t, 4, g.NumVertices())
	assert.Equal(t, 6, g.NumEdges())
	assert.Equal(t, 3, g.OutDegree(0))
	assert.Equal(t, 0, g.InDegree(0))
	assert.Equal(t, 3, g.InDegree(3))
	assert.Equal(t, 0, g.OutDegree(3))

	maxOut, maxIn := g.MaxDegrees()
	assert.Equal(t, 3, maxOut)
	assert.Equal(t, 3, maxIn)
	assert.Positive(t, g.SizeBytes())
}

// TestBuild_Sorted checks bucket order and edge id assignment.
func TestBuild_Sorted(t *testing.T) {
	// Edges deliberately out of neighbor order, with a parallel edge.
	g, err := core.Build(3, []core.Edge{
		{From: 0, To: 2}, {From: 0, To: 1}, {From: 0, To: 2}, {From: 1, To: 0},
	})
	require.NoError(t, err)

	assert.Equal(t, []core.Neighbor{
		{Edge: 1, Vertex: 1},
		{Edge: 0, Vertex: 2},
		{Edge: 2, Vertex: 2},
	}, g.Out(0))
	assert.Equal(t, []core.Neighbor{{Edge: 3, Vertex: 1}}, g.In(0))
	assert.Equal(t, []core.Neighbor{{Edge: 0, Vertex: 0}, {Edge: 2, Vertex: 0}}, g.In(2))
	assert.Equal(t, core.Edge{ID: 2, From: 0, To: 2}, g.Edge(2))

	// Offsets are prefix sums of degrees.
	assert.Equal(t, 0, g.OutOffset(0))
	assert.Equal(t, 3, g.OutOffset(1))
	assert.Equal(t, 4, g.OutOffset(2))
	assert.Equal(t, 0, g.InOffset(0))
	assert.Equal(t, 1, g.InOffset(1))
	assert.Equal(t, 2, g.InOffset(2))
}

func TestWindow(t *testing.T) {
	g, err := core.Build(8, []core.Edge{
		{From: 0, To: 1}, {From: 0, To: 3}, {From: 0, To: 4},
		{From: 0, To: 6}, {From: 0, To: 7},
	})
	require.NoError(t, err)
	ns := g.Out(0)

	tests := []struct {
		name   string
		lo, hi core.VertexID
		want   []core.VertexID
	}{
		{"all", 0, 7, []core.VertexID{1, 3, 4, 6, 7}},
		{"inner", 2, 6, []core.VertexID{3, 4, 6}},
		{"exact", 4, 4, []core.VertexID{4}},
		{"gap", 5, 5, nil},
		{"inverted", 6, 2, nil},
		{"above", 8, 9, nil},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var got []core.VertexID
			for _, n := range core.Window(ns, tc.lo, tc.hi) {
				got = append(got, n.Vertex)
			}
			assert.Equal(t, tc.want, got)
		})
	}
}
