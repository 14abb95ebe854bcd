package core

import (
	"cmp"
	"fmt"
	"math"
	"slices"
)

// Build creates a Graph over numVertices vertices from edges.
//
// The ID field of each input edge is ignored: edge ids are assigned from
// slice positions so that the i-th edge gets id i. Self-loops and parallel
// edges are kept as given.
//
// Complexity: O(V + E log d_max) time, O(V + E) space.
func Build(numVertices int, edges []Edge) (*Graph, error) {
	// 1. Validate vertex count and endpoints.
	if numVertices <= 0 {
		return nil, ErrEmptyGraph
	}
	if int64(numVertices) > math.MaxUint32 {
		return nil, fmt.Errorf("%w: |V|=%d exceeds uint32 ids", ErrVertexRange, numVertices)
	}
	for i, e := range edges {
		if int(e.From) >= numVertices || int(e.To) >= numVertices {
			return nil, fmt.Errorf("%w: edge %d (%d→%d) with |V|=%d",
				ErrVertexRange, i, e.From, e.To, numVertices)
		}
	}

	g := &Graph{
		numVertices: numVertices,
		edges:       make([]Edge, len(edges)),
		outLocator:  make([]uint32, numVertices+1),
		inLocator:   make([]uint32, numVertices+1),
		out:         make([]Neighbor, len(edges)),
		in:          make([]Neighbor, len(edges)),
	}

	// 2. Count degrees into locator[v+1].
	for i, e := range edges {
		g.edges[i] = Edge{ID: EdgeID(i), From: e.From, To: e.To}
		g.outLocator[e.From+1]++
		g.inLocator[e.To+1]++
	}

	// 3. Prefix sums turn degrees into bucket offsets.
	for v := 1; v <= numVertices; v++ {
		g.outLocator[v] += g.outLocator[v-1]
		g.inLocator[v] += g.inLocator[v-1]
	}

	// 4. Scatter edges into buckets using running cursors.
	outCur := slices.Clone(g.outLocator[:numVertices])
	inCur := slices.Clone(g.inLocator[:numVertices])
	for _, e := range g.edges {
		g.out[outCur[e.From]] = Neighbor{Edge: e.ID, Vertex: e.To}
		outCur[e.From]++
		g.in[inCur[e.To]] = Neighbor{Edge: e.ID, Vertex: e.From}
		inCur[e.To]++
	}

	// 5. Sort every bucket by neighbor id, then edge id.
	for v := 0; v < numVertices; v++ {
		slices.SortFunc(g.out[g.outLocator[v]:g.outLocator[v+1]], compareNeighbors)
		slices.SortFunc(g.in[g.inLocator[v]:g.inLocator[v+1]], compareNeighbors)
	}

	return g, nil
}

func compareNeighbors(a, b Neighbor) int {
	if c := cmp.Compare(a.Vertex, b.Vertex); c != 0 {
		return c
	}
	return cmp.Compare(a.Edge, b.Edge)
}
