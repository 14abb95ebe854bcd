package eve

import (
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/katalvlaran/hcpath/core"
)

// Engine answers hop-constrained simple-path edge queries over one graph.
//
// All scratch memory is allocated by New and reused by every Answer call.
// An Engine is not safe for concurrent use; run one Engine per goroutine
// over a shared *core.Graph instead.
type Engine struct {
	g      *core.Graph
	maxLen int
	opts   Options
	log    *slog.Logger

	ep     epoch
	closed bool

	// current query
	s, t         core.VertexID
	fwd, bwd     direction
	startForward bool

	// next is the scratch frontier shared by both directions.
	next []core.VertexID

	// lastEV holds each vertex's working set while a hop is in progress,
	// one slot of maxLen-2 vertices per vertex.
	lastEV    []core.VertexID
	lastEVLen []int32

	candidates []core.EdgeID
	res        resultSet

	// ver is nil for hop bounds below 5, where labeling is exact.
	ver *verifier

	stats   QueryStats
	evCount int
}

// direction bundles the per-side state of the explorer and propagator.
// The forward side walks out-edges from s; the backward side walks
// in-edges from t.
type direction struct {
	forward bool
	root    core.VertexID
	far     core.VertexID
	adj     func(core.VertexID) []core.Neighbor

	dist     []int32
	frontier []core.VertexID
	hop      int

	minID, maxID core.VertexID

	ev   evArena
	last []int32
}

func (d *direction) reach(v core.VertexID, stamp int32) {
	d.dist[v] = stamp
	d.minID = min(d.minID, v)
	d.maxID = max(d.maxID, v)
}

func (d *direction) name() string {
	if d.forward {
		return "forward"
	}
	return "backward"
}

// New builds an engine for hop bound maxHops over g.
//
// Complexity: O(maxHops² · V + E) memory, allocated once.
func New(g *core.Graph, maxHops int, opts ...Option) (*Engine, error) {
	// 1. Validate inputs.
	if g == nil {
		return nil, ErrNilGraph
	}
	if g.NumVertices() == 0 {
		return nil, ErrEmptyGraph
	}
	if maxHops < MinHops {
		return nil, fmt.Errorf("%w: got %d", ErrHopBound, maxHops)
	}

	// 2. Resolve options.
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if span := int32(maxHops) + 1; o.EpochCeiling < 2*span {
		return nil, fmt.Errorf("%w: epoch ceiling %d below %d", ErrOptionViolation, o.EpochCeiling, 2*span)
	}

	// 3. Allocate scratch arenas.
	vn := g.NumVertices()
	depth := maxHops - 2
	e := &Engine{
		g:      g,
		maxLen: maxHops,
		opts:   o,
		log:    o.Logger,
		ep:     newEpoch(maxHops, o.EpochCeiling),
		fwd: direction{
			forward:  true,
			adj:      g.Out,
			dist:     make([]int32, vn),
			frontier: make([]core.VertexID, 0, vn),
			ev:       newEVArena(vn, depth),
			last:     make([]int32, vn),
		},
		bwd: direction{
			adj:      g.In,
			dist:     make([]int32, vn),
			frontier: make([]core.VertexID, 0, vn),
			ev:       newEVArena(vn, depth),
			last:     make([]int32, vn),
		},
		next:      make([]core.VertexID, 0, vn),
		lastEV:    make([]core.VertexID, vn*depth),
		lastEVLen: make([]int32, vn),
		res:       newResultSet(g.NumEdges()),
	}
	if maxHops > 4 {
		e.ver = newVerifier(g, maxHops, o.OrderingThreshold, &e.ep, &e.res)
	}

	e.log.Debug("engine initialized",
		slog.Int("vertices", vn),
		slog.Int("edges", g.NumEdges()),
		slog.Int("hops", maxHops),
		slog.Int64("arena_bytes", e.arenaBytes()))
	return e, nil
}

// HopBound returns the k the engine was built for.
func (e *Engine) HopBound() int { return e.maxLen }

// Graph returns the graph the engine answers queries on.
func (e *Engine) Graph() *core.Graph { return e.g }

// Answer returns every edge lying on at least one simple path of at most
// HopBound() edges from s to t.
//
// s == t yields an empty result. Endpoints outside the graph yield
// ErrInvalidQuery; the engine stays usable.
func (e *Engine) Answer(s, t core.VertexID) (*Result, error) {
	if e.closed {
		return nil, ErrClosed
	}
	if !e.g.HasVertex(s) || !e.g.HasVertex(t) {
		return nil, fmt.Errorf("%w: (%d,%d) with |V|=%d", ErrInvalidQuery, s, t, e.g.NumVertices())
	}

	start := time.Now()
	e.stats = QueryStats{Source: s, Target: t, HopBound: e.maxLen}
	if s != t {
		e.run(s, t)
	} else {
		e.res.reset()
	}

	edges := make([]core.EdgeID, len(e.res.ids))
	copy(edges, e.res.ids)
	slices.Sort(edges)
	e.stats.Answers = len(edges)
	e.stats.Duration = time.Since(start)
	e.opts.Observer.ObserveQuery(e.stats)

	return &Result{Source: s, Target: t, Edges: edges, Stats: e.stats}, nil
}

// run executes the full pipeline for s != t.
func (e *Engine) run(s, t core.VertexID) {
	// 1. New epoch, reset per-query cursors.
	e.begin(s, t)

	// 2. Bidirectional exploration picks the first propagation side.
	e.explore()

	// 3. Essential-vertex propagation, first side records distances.
	if e.startForward {
		e.propagate(&e.fwd, &e.bwd)
		e.propagate(&e.bwd, &e.fwd)
	} else {
		e.propagate(&e.bwd, &e.fwd)
		e.propagate(&e.fwd, &e.bwd)
	}

	// 4. Label candidates, 5. verify the undetermined ones.
	e.classify()
	if e.ver != nil && e.opts.Mode == Exact {
		before := len(e.res.ids)
		e.stats.Ordered = e.ver.run()
		e.stats.Verified = len(e.res.ids) - before
		if e.stats.Ordered {
			e.log.Debug("search ordering applied",
				slog.Int("undetermined", e.stats.Undetermined))
		}
	}

	e.stats.ForwardFirst = e.startForward
	e.stats.SpaceBytes = e.spaceCost()
	if e.ver != nil {
		e.stats.Departures = len(e.ver.departures)
		e.stats.Arrivals = len(e.ver.arrivals)
		e.stats.AdjacencyOverflow = e.ver.overflow
		if e.ver.overflow > 0 {
			e.log.Debug("departure/arrival adjacency capped",
				slog.Int("dropped", e.ver.overflow),
				slog.Int("capacity", e.maxLen-2))
		}
	}
}

// begin advances the epoch and resets per-query cursors.
func (e *Engine) begin(s, t core.VertexID) {
	if e.ep.advance() {
		e.clearStamps()
		e.stats.EpochReset = true
		e.opts.Observer.ObserveEpochReset()
		e.log.Debug("epoch reset", slog.Int("hops", e.maxLen))
	}

	e.s, e.t = s, t
	e.fwd.root, e.fwd.far = s, t
	e.bwd.root, e.bwd.far = t, s
	e.fwd.minID, e.fwd.maxID = s, s
	e.bwd.minID, e.bwd.maxID = t, t
	e.fwd.hop, e.bwd.hop = 0, 0

	e.candidates = e.candidates[:0]
	e.res.reset()
	e.evCount = 0
	if e.ver != nil {
		e.ver.begin()
	}
}

// ResetEpoch performs the full clear that normally runs only when the
// generation counter nears its ceiling. Answers are unaffected.
func (e *Engine) ResetEpoch() {
	e.ep.rewind()
	e.clearStamps()
	e.opts.Observer.ObserveEpochReset()
}

func (e *Engine) clearStamps() {
	for _, d := range []*direction{&e.fwd, &e.bwd} {
		clear(d.dist)
		clear(d.last)
		d.ev.clear()
	}
	clear(e.res.mark)
	if e.ver != nil {
		e.ver.clear()
	}
}

// Close releases all scratch memory. Later calls to Answer fail with
// ErrClosed.
func (e *Engine) Close() error {
	if e.closed {
		return ErrClosed
	}
	e.closed = true
	e.fwd, e.bwd = direction{}, direction{}
	e.next, e.lastEV, e.lastEVLen = nil, nil, nil
	e.candidates = nil
	e.res = resultSet{}
	e.ver = nil
	return nil
}

// addCandidate appends id to the candidate list once per query.
func (e *Engine) addCandidate(id core.EdgeID) {
	if e.res.markCandidate(id, e.ep.cur) {
		e.candidates = append(e.candidates, id)
	}
}

func (e *Engine) trackFrontier(n int) {
	e.stats.MaxFrontier = max(e.stats.MaxFrontier, n)
}

// arenaBytes is the memory allocated by New.
func (e *Engine) arenaBytes() int64 {
	vn := int64(e.g.NumVertices())
	b := e.fwd.ev.bytes() + e.bwd.ev.bytes()
	b += 4 * vn * 4 // dist and last, both sides
	b += 3 * vn * 4 // frontiers
	b += int64(len(e.lastEV))*4 + vn*4
	b += int64(len(e.res.mark)) * 4
	if e.ver != nil {
		b += e.ver.bytes()
	}
	return b
}

// spaceCost estimates the scratch memory actually touched by the last
// query, counting only live portions of the large arenas.
func (e *Engine) spaceCost() int64 {
	vn := int64(e.g.NumVertices())
	en := int64(e.g.NumEdges())
	depth := int64(e.maxLen - 2)

	b := 3 * int64(e.stats.MaxFrontier) * 4 // frontiers
	b += 2 * vn * 4                         // distances
	b += int64(e.evCount) * 4               // live essential sets
	b += 2 * vn * depth * 4                 // set length stamps
	b += 2 * vn * 4                         // last locations
	b += depth*4 + vn*4                     // working set
	b += int64(len(e.candidates)+1) * 4
	b += en * 4
	if e.ver != nil {
		b += e.ver.spaceCost()
	}
	return b
}
