// Package bfs provides tunable options and error definitions
// for breadth-first search over a core.Graph.
package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/hcpath/core"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartVertexNotFound is returned when the start id is outside the graph.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Unreached marks Depth entries of vertices the search never touched.
const Unreached = -1

// Option configures BFS behavior via functional arguments.
// An invalid Option is recorded internally and surfaced as
// ErrOptionViolation when BFS is invoked.
type Option func(*BFSOptions)

// BFSOptions holds parameters and callbacks to customize BFS execution.
type BFSOptions struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnVisit is called when visiting a vertex. If it returns an error,
	// BFS aborts and propagates that error.
	OnVisit func(v core.VertexID, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	MaxDepth int

	// Reverse walks in-edges instead of out-edges.
	Reverse bool

	// FilterNeighbor can skip edges by returning false.
	FilterNeighbor func(curr core.VertexID, nb core.Neighbor) bool

	err error
}

// DefaultOptions returns background context, no depth limit, forward
// direction, no filtering and a no-op visit hook.
func DefaultOptions() BFSOptions {
	return BFSOptions{
		Ctx:            context.Background(),
		OnVisit:        func(core.VertexID, int) error { return nil },
		FilterNeighbor: func(core.VertexID, core.Neighbor) bool { return true },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *BFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit(fn func(v core.VertexID, depth int) error) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth.
//
//	d > 0: limit to depth d
//	d == 0: no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *BFSOptions) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithReverse walks in-edges, yielding distances to the start vertex.
func WithReverse() Option {
	return func(o *BFSOptions) {
		o.Reverse = true
	}
}

// WithFilterNeighbor skips neighbors when fn returns false.
func WithFilterNeighbor(fn func(curr core.VertexID, nb core.Neighbor) bool) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// BFSResult holds the outcome of a BFS traversal:
//   - Order: vertices visited, in visit sequence.
//   - Depth: distance in edges from the start, Unreached if never seen.
//   - Parent: the BFS-tree edge that discovered each vertex.
type BFSResult struct {
	Start  core.VertexID
	Order  []core.VertexID
	Depth  []int32
	Parent []core.Neighbor
}

// Reached reports whether v was discovered.
func (r *BFSResult) Reached(v core.VertexID) bool {
	return int(v) < len(r.Depth) && r.Depth[v] != Unreached
}

// PathTo reconstructs the tree edges from the start vertex to dest.
// In a reverse search the edges lead from dest to the start vertex.
func (r *BFSResult) PathTo(dest core.VertexID) ([]core.EdgeID, error) {
	if !r.Reached(dest) {
		return nil, fmt.Errorf("bfs: no path to %d", dest)
	}
	path := make([]core.EdgeID, 0, r.Depth[dest])
	for cur := dest; cur != r.Start; {
		p := r.Parent[cur]
		path = append(path, p.Edge)
		cur = p.Vertex
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, nil
}

// Layers groups Order by depth: Layers()[d] holds the vertices at distance d.
func (r *BFSResult) Layers() [][]core.VertexID {
	var out [][]core.VertexID
	for _, v := range r.Order {
		d := int(r.Depth[v])
		for len(out) <= d {
			out = append(out, nil)
		}
		out[d] = append(out[d], v)
	}
	return out
}
