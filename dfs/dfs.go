package dfs

import (
	"errors"
	"fmt"
	"slices"

	"github.com/katalvlaran/hcpath/core"
)

// errStop unwinds the recursion once MaxPaths is reached.
var errStop = errors.New("dfs: stop")

// pathWalker encapsulates state during enumeration.
type pathWalker struct {
	graph   *core.Graph
	opts    Options
	target  core.VertexID
	maxHops int

	onPath []bool
	path   []core.EdgeID
	used   map[core.EdgeID]struct{}
	res    *PathsResult
}

// SimplePaths enumerates every simple path from source to target with at
// most maxHops edges. source == target yields no paths.
func SimplePaths(g *core.Graph, source, target core.VertexID, maxHops int, opts ...Option) (*PathsResult, error) {
	// 1. Validate input graph and endpoints
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasVertex(source) || !g.HasVertex(target) {
		return nil, fmt.Errorf("%w: (%d,%d)", ErrVertexNotFound, source, target)
	}
	if maxHops < 1 {
		return nil, fmt.Errorf("%w: %d", ErrBadHopBound, maxHops)
	}

	// 2. Apply options
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// 3. Walk
	w := &pathWalker{
		graph:   g,
		opts:    o,
		target:  target,
		maxHops: maxHops,
		onPath:  make([]bool, g.NumVertices()),
		path:    make([]core.EdgeID, 0, maxHops),
		used:    make(map[core.EdgeID]struct{}),
		res:     &PathsResult{},
	}
	if source != target {
		w.onPath[source] = true
		if err := w.walk(source); err != nil {
			if !errors.Is(err, errStop) {
				return nil, err
			}
			w.res.Truncated = true
		}
	}

	// 4. Collect the edge union in ascending order
	w.res.Edges = make([]core.EdgeID, 0, len(w.used))
	for id := range w.used {
		w.res.Edges = append(w.res.Edges, id)
	}
	slices.Sort(w.res.Edges)

	return w.res, nil
}

// walk extends the current path from u.
func (w *pathWalker) walk(u core.VertexID) error {
	// 1. Cancellation check
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	// 2. Try every out-edge not revisiting a path vertex
	for _, nb := range w.graph.Out(u) {
		v := nb.Vertex
		if w.onPath[v] {
			continue
		}
		w.path = append(w.path, nb.Edge)

		if v == w.target {
			if err := w.record(); err != nil {
				return err
			}
		} else if len(w.path) < w.maxHops {
			w.onPath[v] = true
			err := w.walk(v)
			w.onPath[v] = false
			if err != nil {
				return err
			}
		}

		w.path = w.path[:len(w.path)-1]
	}

	return nil
}

// record stores the current complete path.
func (w *pathWalker) record() error {
	w.res.Paths++
	for _, id := range w.path {
		w.used[id] = struct{}{}
	}
	if w.opts.OnPath != nil {
		if err := w.opts.OnPath(w.path); err != nil {
			return fmt.Errorf("dfs: OnPath hook: %w", err)
		}
	}
	if w.opts.MaxPaths > 0 && w.res.Paths >= w.opts.MaxPaths {
		return errStop
	}
	return nil
}

// EdgesOnSimplePaths returns the sorted ids of all edges lying on at least
// one simple path from source to target with at most maxHops edges.
func EdgesOnSimplePaths(g *core.Graph, source, target core.VertexID, maxHops int) ([]core.EdgeID, error) {
	res, err := SimplePaths(g, source, target, maxHops)
	if err != nil {
		return nil, err
	}
	return res.Edges, nil
}
