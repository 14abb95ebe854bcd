package core

import (
	"sort"
	"unsafe"
)

// NumVertices returns VN.
func (g *Graph) NumVertices() int { return g.numVertices }

// NumEdges returns EN.
func (g *Graph) NumEdges() int { return len(g.edges) }

// Edge returns the edge with the given id. It panics if id >= NumEdges().
func (g *Graph) Edge(id EdgeID) Edge { return g.edges[id] }

// Edges returns all edges in id order. The slice must not be modified.
func (g *Graph) Edges() []Edge { return g.edges }

// Out returns u's out-bucket sorted by head id. The slice must not be modified.
func (g *Graph) Out(u VertexID) []Neighbor {
	return g.out[g.outLocator[u]:g.outLocator[u+1]]
}

// In returns v's in-bucket sorted by tail id. The slice must not be modified.
func (g *Graph) In(v VertexID) []Neighbor {
	return g.in[g.inLocator[v]:g.inLocator[v+1]]
}

// OutOffset returns the position of u's out-bucket in the global out array.
func (g *Graph) OutOffset(u VertexID) int { return int(g.outLocator[u]) }

// InOffset returns the position of v's in-bucket in the global in array.
func (g *Graph) InOffset(v VertexID) int { return int(g.inLocator[v]) }

// OutDegree returns the number of edges leaving u.
func (g *Graph) OutDegree(u VertexID) int {
	return int(g.outLocator[u+1] - g.outLocator[u])
}

// InDegree returns the number of edges entering v.
func (g *Graph) InDegree(v VertexID) int {
	return int(g.inLocator[v+1] - g.inLocator[v])
}

// MaxDegrees returns the largest out-degree and in-degree in the graph.
func (g *Graph) MaxDegrees() (maxOut, maxIn int) {
	for v := 0; v < g.numVertices; v++ {
		maxOut = max(maxOut, g.OutDegree(VertexID(v)))
		maxIn = max(maxIn, g.InDegree(VertexID(v)))
	}
	return maxOut, maxIn
}

// SizeBytes estimates the memory held by the graph's arrays.
func (g *Graph) SizeBytes() int64 {
	var (
		e Edge
		n Neighbor
	)
	return int64(len(g.edges))*int64(unsafe.Sizeof(e)) +
		int64(len(g.out)+len(g.in))*int64(unsafe.Sizeof(n)) +
		int64(len(g.outLocator)+len(g.inLocator))*4
}

// HasVertex reports whether v is a valid vertex id.
func (g *Graph) HasVertex(v VertexID) bool { return int(v) < g.numVertices }

// Window returns the sub-slice of a sorted bucket whose neighbor ids lie
// in [lo, hi]. It returns an empty slice when lo > hi.
//
// Complexity: O(log d).
func Window(ns []Neighbor, lo, hi VertexID) []Neighbor {
	if lo > hi {
		return ns[:0]
	}
	// lower bound: first entry with Vertex >= lo
	i := sort.Search(len(ns), func(k int) bool { return ns[k].Vertex >= lo })
	// upper bound: first entry with Vertex > hi
	j := i + sort.Search(len(ns)-i, func(k int) bool { return ns[i+k].Vertex > hi })
	return ns[i:j]
}
