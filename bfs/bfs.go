// Package bfs provides breadth-first search over a core.Graph,
// returning unweighted shortest-path distances, parent links, and visit order.
package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/hcpath/core"
)

// walker encapsulates mutable BFS state.
type walker struct {
	adj   func(core.VertexID) []core.Neighbor
	opts  BFSOptions
	ctx   context.Context
	queue []core.VertexID
	res   *BFSResult
}

// BFS runs breadth-first search on g starting from start.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, the context error on cancellation,
// or any OnVisit error.
func BFS(g *core.Graph, start core.VertexID, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasVertex(start) {
		return nil, fmt.Errorf("%w: %d", ErrStartVertexNotFound, start)
	}

	n := g.NumVertices()
	w := &walker{
		adj:   g.Out,
		opts:  o,
		ctx:   o.Ctx,
		queue: make([]core.VertexID, 0, n),
		res: &BFSResult{
			Start:  start,
			Order:  make([]core.VertexID, 0, n),
			Depth:  make([]int32, n),
			Parent: make([]core.Neighbor, n),
		},
	}
	if o.Reverse {
		w.adj = g.In
	}
	for i := range w.res.Depth {
		w.res.Depth[i] = Unreached
	}

	w.res.Depth[start] = 0
	w.queue = append(w.queue, start)
	return w.res, w.loop()
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for head := 0; head < len(w.queue); head++ {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		u := w.queue[head]
		depth := int(w.res.Depth[u])
		w.res.Order = append(w.res.Order, u)
		if err := w.opts.OnVisit(u, depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %d: %w", u, err)
		}
		if w.opts.MaxDepth > 0 && depth >= w.opts.MaxDepth {
			continue
		}
		for _, nb := range w.adj(u) {
			if w.res.Depth[nb.Vertex] != Unreached || !w.opts.FilterNeighbor(u, nb) {
				continue
			}
			w.res.Depth[nb.Vertex] = int32(depth + 1)
			w.res.Parent[nb.Vertex] = core.Neighbor{Edge: nb.Edge, Vertex: u}
			w.queue = append(w.queue, nb.Vertex)
		}
	}
	return nil
}

// Distances is a convenience wrapper returning only the depth slice of a
// search bounded by maxDepth (0 means unbounded).
func Distances(ctx context.Context, g *core.Graph, start core.VertexID, maxDepth int, reverse bool) ([]int32, error) {
	opts := []Option{WithContext(ctx), WithMaxDepth(maxDepth)}
	if reverse {
		opts = append(opts, WithReverse())
	}
	res, err := BFS(g, start, opts...)
	if err != nil {
		return nil, err
	}
	return res.Depth, nil
}
