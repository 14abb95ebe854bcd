// Package core declares the Graph Store types and sentinel errors.
package core

import "errors"

// Sentinel errors for graph construction and loading.
var (
	// ErrEmptyGraph indicates a graph with zero vertices.
	ErrEmptyGraph = errors.New("core: graph has no vertices")

	// ErrVertexRange indicates an edge endpoint outside 0..VN-1.
	ErrVertexRange = errors.New("core: vertex id out of range")

	// ErrMalformedHeader indicates the "|V| |E|" header line is invalid.
	ErrMalformedHeader = errors.New("core: malformed header")

	// ErrMalformedEdge indicates an edge line is not "from,to".
	ErrMalformedEdge = errors.New("core: malformed edge line")

	// ErrEdgeCount indicates the edge lines disagree with the header.
	ErrEdgeCount = errors.New("core: edge count mismatch")

	// ErrUnknownCompression indicates a compressed input could not be opened.
	ErrUnknownCompression = errors.New("core: cannot open compressed input")
)

// VertexID identifies a vertex; valid ids are 0..NumVertices()-1.
type VertexID = uint32

// EdgeID identifies an edge; valid ids are 0..NumEdges()-1.
type EdgeID = uint32

// Edge is a directed edge From→To with a stable id.
type Edge struct {
	ID   EdgeID
	From VertexID
	To   VertexID
}

// Neighbor is one entry of a CSR bucket: the edge and the vertex on its
// other end (head for out-buckets, tail for in-buckets).
type Neighbor struct {
	Edge   EdgeID
	Vertex VertexID
}

// Graph is an immutable directed graph in CSR form.
//
// The zero value is not usable; construct with Build, Read or Load.
type Graph struct {
	numVertices int
	edges       []Edge

	// outLocator[u]..outLocator[u+1] delimits u's bucket in out.
	outLocator []uint32
	out        []Neighbor

	// inLocator[v]..inLocator[v+1] delimits v's bucket in in.
	inLocator []uint32
	in        []Neighbor
}
