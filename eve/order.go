package eve

import (
	"cmp"
	"slices"

	"github.com/katalvlaran/hcpath/core"
)

// ordering holds the search-ordering sweep results: hop distance from the
// nearest departure (over pruned out-lists) and to the nearest arrival
// (over pruned in-lists), each stamped with the epoch that wrote it.
type ordering struct {
	depSeen, depDist []int32
	arrSeen, arrDist []int32
	cur, next        []core.VertexID
}

func newOrdering(vn int) ordering {
	return ordering{
		depSeen: make([]int32, vn),
		depDist: make([]int32, vn),
		arrSeen: make([]int32, vn),
		arrDist: make([]int32, vn),
		cur:     make([]core.VertexID, 0, vn),
		next:    make([]core.VertexID, 0, vn),
	}
}

func (o *ordering) clear() {
	clear(o.depSeen)
	clear(o.arrSeen)
}

func (o *ordering) bytes() int64 {
	return int64(len(o.depSeen)+len(o.depDist)+len(o.arrSeen)+len(o.arrDist))*4 +
		int64(cap(o.cur)+cap(o.next))*4
}

// bfs stamps every vertex within maxHop hops of seeds along adj.
func (o *ordering) bfs(seeds []core.VertexID, maxHop int, off int32,
	seen, dist []int32, adj func(core.VertexID) []core.Neighbor) {
	frontier := o.cur[:0]
	for _, v := range seeds {
		seen[v], dist[v] = off, 0
		frontier = append(frontier, v)
	}
	next := o.next[:0]
	for k := 1; k <= maxHop && len(frontier) > 0; k++ {
		next = next[:0]
		for _, u := range frontier {
			for _, nb := range adj(u) {
				if v := nb.Vertex; seen[v] != off {
					seen[v], dist[v] = off, int32(k)
					next = append(next, v)
				}
			}
		}
		frontier, next = next, frontier
	}
	o.cur, o.next = frontier[:0], next[:0]
}

// reorder runs both sweeps, then sorts every pruned list so that
// neighbors closer to the search goal come first and drops neighbors that
// cannot reach the goal within the budget.
func (vf *verifier) reorder() {
	off := vf.ep.cur
	o := &vf.sweep
	reach := vf.maxLen - 5

	o.bfs(vf.departures, reach, off, o.depSeen, o.depDist, vf.outs)
	o.bfs(vf.arrivals, reach, off, o.arrSeen, o.arrDist, vf.ins)

	// Out-lists lead toward arrivals; ties at an arrival prefer larger OutA.
	byArrival := towardGoal(off, o.arrSeen, o.arrDist, vf.outALen)
	for _, u := range vf.touchedOut {
		start := vf.g.OutOffset(u)
		ns := vf.prunedOut[start:vf.outEnd[u]]
		slices.SortStableFunc(ns, byArrival)
		n := len(ns)
		for n > 0 && o.arrSeen[ns[n-1].Vertex] != off {
			n--
		}
		vf.outEnd[u] = start + n
	}

	// In-lists lead toward departures; ties at a departure prefer larger InD.
	byDeparture := towardGoal(off, o.depSeen, o.depDist, vf.inDLen)
	for _, v := range vf.touchedIn {
		start := vf.g.InOffset(v)
		ns := vf.prunedIn[start:vf.inEnd[v]]
		slices.SortStableFunc(ns, byDeparture)
		n := len(ns)
		for n > 0 && o.depSeen[ns[n-1].Vertex] != off {
			n--
		}
		vf.inEnd[v] = start + n
	}
}

// towardGoal orders neighbors: reached before unreached, then by
// ascending distance, then (at distance 0) by descending fan size.
func towardGoal(off int32, seen, dist, fan []int32) func(a, b core.Neighbor) int {
	return func(a, b core.Neighbor) int {
		aSeen, bSeen := seen[a.Vertex] == off, seen[b.Vertex] == off
		switch {
		case aSeen && bSeen:
			da, db := dist[a.Vertex], dist[b.Vertex]
			if da == 0 && db == 0 {
				return cmp.Compare(fan[b.Vertex], fan[a.Vertex])
			}
			return cmp.Compare(da, db)
		case aSeen:
			return -1
		case bSeen:
			return 1
		}
		return 0
	}
}
