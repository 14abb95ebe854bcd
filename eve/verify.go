package eve

import (
	"github.com/bits-and-blooms/bitset"

	"github.com/katalvlaran/hcpath/core"
)

// verifier resolves undetermined edges by bounded depth-first search over
// the upper-bound graph (candidate edges labeled included or undetermined).
//
// A witness for edge from→to is a simple path
//
//	s → a → dep → ... from→to ... → arr → b → t
//
// where dep is a departure with a ∈ InD[dep], arr is an arrival with
// b ∈ OutA[arr], and the middle segment dep..arr has at most maxLen-4
// edges. The search walks that middle segment; tryWitness picks a and b.
type verifier struct {
	g      *core.Graph
	maxLen int
	budget int
	cap    int
	ep     *epoch
	res    *resultSet

	// pruned neighbor lists share the CSR index space of the graph;
	// prunedOut[g.OutOffset(u):outEnd[u]] is valid iff hasOut[u] == epoch.
	prunedOut, prunedIn []core.Neighbor
	outEnd, inEnd       []int
	hasOut, hasIn       []int32
	touchedOut          []core.VertexID
	touchedIn           []core.VertexID

	departures, arrivals []core.VertexID
	isDeparture          []int32
	isArrival            []int32
	// inD[dep*cap:] lists tails a of s→a→dep; outA[arr*cap:] heads b of arr→b→t.
	inD, outA       []core.VertexID
	inDLen, outALen []int32
	overflow        int

	pending []core.EdgeID

	// search state for the current root edge
	onPath    *bitset.BitSet
	path      []core.EdgeID
	from, to  core.VertexID
	departure core.VertexID
	arrival   core.VertexID
	inC, outC [2]core.VertexID
	ordered   bool
	threshold int
	sweep     ordering
}

func newVerifier(g *core.Graph, maxLen, threshold int, ep *epoch, res *resultSet) *verifier {
	vn, en := g.NumVertices(), g.NumEdges()
	capacity := maxLen - 2
	vf := &verifier{
		g:           g,
		maxLen:      maxLen,
		budget:      maxLen - 4,
		cap:         capacity,
		ep:          ep,
		res:         res,
		prunedOut:   make([]core.Neighbor, en),
		prunedIn:    make([]core.Neighbor, en),
		outEnd:      make([]int, vn),
		inEnd:       make([]int, vn),
		hasOut:      make([]int32, vn),
		hasIn:       make([]int32, vn),
		isDeparture: make([]int32, vn),
		isArrival:   make([]int32, vn),
		inD:         make([]core.VertexID, vn*capacity),
		outA:        make([]core.VertexID, vn*capacity),
		inDLen:      make([]int32, vn),
		outALen:     make([]int32, vn),
		onPath:      bitset.New(uint(vn)),
		path:        make([]core.EdgeID, 0, maxLen),
		threshold:   threshold,
	}
	if maxLen > 6 {
		vf.sweep = newOrdering(vn)
	}
	return vf
}

func (vf *verifier) begin() {
	vf.touchedOut = vf.touchedOut[:0]
	vf.touchedIn = vf.touchedIn[:0]
	vf.departures = vf.departures[:0]
	vf.arrivals = vf.arrivals[:0]
	vf.pending = vf.pending[:0]
	vf.overflow = 0
	vf.ordered = false
}

func (vf *verifier) clear() {
	clear(vf.hasOut)
	clear(vf.hasIn)
	clear(vf.isDeparture)
	clear(vf.isArrival)
	vf.sweep.clear()
}

// addPruned records edge in both pruned neighbor lists.
func (vf *verifier) addPruned(edge core.Edge) {
	off := vf.ep.cur
	u, v := edge.From, edge.To
	if vf.hasOut[u] != off {
		vf.hasOut[u] = off
		vf.outEnd[u] = vf.g.OutOffset(u)
		vf.touchedOut = append(vf.touchedOut, u)
	}
	vf.prunedOut[vf.outEnd[u]] = core.Neighbor{Edge: edge.ID, Vertex: v}
	vf.outEnd[u]++

	if vf.hasIn[v] != off {
		vf.hasIn[v] = off
		vf.inEnd[v] = vf.g.InOffset(v)
		vf.touchedIn = append(vf.touchedIn, v)
	}
	vf.prunedIn[vf.inEnd[v]] = core.Neighbor{Edge: edge.ID, Vertex: u}
	vf.inEnd[v]++
}

func (vf *verifier) outs(u core.VertexID) []core.Neighbor {
	if vf.hasOut[u] != vf.ep.cur {
		return nil
	}
	return vf.prunedOut[vf.g.OutOffset(u):vf.outEnd[u]]
}

func (vf *verifier) ins(v core.VertexID) []core.Neighbor {
	if vf.hasIn[v] != vf.ep.cur {
		return nil
	}
	return vf.prunedIn[vf.g.InOffset(v):vf.inEnd[v]]
}

// addDeparture registers in as a tail of s→in→dep.
func (vf *verifier) addDeparture(dep, in core.VertexID) {
	off := vf.ep.cur
	if vf.isDeparture[dep] != off {
		vf.isDeparture[dep] = off
		vf.departures = append(vf.departures, dep)
		vf.inDLen[dep] = 0
	}
	vf.inDLen[dep] = vf.appendCapped(vf.inD, dep, vf.inDLen[dep], in)
}

// addArrival registers out as a head of arr→out→t.
func (vf *verifier) addArrival(arr, out core.VertexID) {
	off := vf.ep.cur
	if vf.isArrival[arr] != off {
		vf.isArrival[arr] = off
		vf.arrivals = append(vf.arrivals, arr)
		vf.outALen[arr] = 0
	}
	vf.outALen[arr] = vf.appendCapped(vf.outA, arr, vf.outALen[arr], out)
}

// appendCapped adds x to the list of owner unless present or full.
//
// Capacity maxLen-2 is enough: a middle segment has at most maxLen-4
// vertices besides its own endpoint, so a full list always keeps two
// entries off the path.
func (vf *verifier) appendCapped(lists []core.VertexID, owner core.VertexID, n int32, x core.VertexID) int32 {
	list := lists[int(owner)*vf.cap : int(owner)*vf.cap+int(n)]
	for _, y := range list {
		if y == x {
			return n
		}
	}
	if int(n) == vf.cap {
		vf.overflow++
		return n
	}
	lists[int(owner)*vf.cap+int(n)] = x
	return n + 1
}

// run verifies every pending edge and reports whether search ordering ran.
func (vf *verifier) run() bool {
	off := vf.ep.cur
	vf.ordered = vf.maxLen > 6 && len(vf.pending) > vf.threshold
	if vf.ordered {
		vf.reorder()
	}

	for _, id := range vf.pending {
		if vf.res.confirmed(id, off) {
			continue
		}
		edge := vf.g.Edge(id)
		vf.from, vf.to = edge.From, edge.To
		vf.path = append(vf.path[:0], id)
		vf.onPath.Set(uint(vf.from)).Set(uint(vf.to))
		vf.resolve()
		vf.onPath.Clear(uint(vf.from)).Clear(uint(vf.to))
	}
	return vf.ordered
}

// resolve searches a witness for the current root edge from→to.
func (vf *verifier) resolve() bool {
	off := vf.ep.cur

	// 1. from is a departure: look for an arrival forward.
	if vf.isDeparture[vf.from] == off {
		vf.departure = vf.from
		if vf.isArrival[vf.to] == off {
			vf.arrival = vf.to
			if vf.tryWitness() {
				return true
			}
		}
		if vf.maxLen > 5 && vf.forwardFinal(vf.to) {
			return true
		}
	}

	// 2. to is an arrival: look for a departure backward.
	if vf.maxLen > 5 && vf.isArrival[vf.to] == off {
		vf.arrival = vf.to
		if vf.backwardFinal(vf.from) {
			return true
		}
	}

	// 3. neither end fixed: start on the side with fewer pruned neighbors.
	if vf.maxLen > 6 {
		if len(vf.outs(vf.to)) <= len(vf.ins(vf.from)) {
			return vf.forward(vf.to)
		}
		return vf.backward(vf.from)
	}
	return false
}

func (vf *verifier) push(id core.EdgeID, v core.VertexID) {
	vf.path = append(vf.path, id)
	vf.onPath.Set(uint(v))
}

func (vf *verifier) pop(v core.VertexID) {
	vf.path = vf.path[:len(vf.path)-1]
	vf.onPath.Clear(uint(v))
}

// forward extends the path from u looking for any arrival; once found,
// the departure side is searched backward from the root edge's tail.
func (vf *verifier) forward(u core.VertexID) bool {
	off := vf.ep.cur
	for _, nb := range vf.outs(u) {
		v := nb.Vertex
		if vf.ordered && len(vf.path)+1+int(vf.sweep.arrDist[v])+1 > vf.budget {
			break
		}
		if vf.onPath.Test(uint(v)) {
			continue
		}
		vf.push(nb.Edge, v)
		found := false
		if vf.isArrival[v] == off {
			vf.arrival = v
			found = vf.backwardFinal(vf.from)
		}
		if !found && len(vf.path)+2 <= vf.budget {
			found = vf.forward(v)
		}
		vf.pop(v)
		if found {
			return true
		}
	}
	return false
}

// forwardFinal extends the path from u until it reaches an arrival that
// completes a witness with the fixed departure.
func (vf *verifier) forwardFinal(u core.VertexID) bool {
	off := vf.ep.cur
	for _, nb := range vf.outs(u) {
		v := nb.Vertex
		if vf.ordered && len(vf.path)+1+int(vf.sweep.arrDist[v]) > vf.budget {
			break
		}
		if vf.onPath.Test(uint(v)) {
			continue
		}
		vf.push(nb.Edge, v)
		found := false
		if vf.isArrival[v] == off {
			vf.arrival = v
			found = vf.tryWitness()
		}
		if !found && len(vf.path)+1 <= vf.budget {
			found = vf.forwardFinal(v)
		}
		vf.pop(v)
		if found {
			return true
		}
	}
	return false
}

// backward mirrors forward over pruned in-lists.
func (vf *verifier) backward(u core.VertexID) bool {
	off := vf.ep.cur
	for _, nb := range vf.ins(u) {
		v := nb.Vertex
		if vf.ordered && len(vf.path)+1+int(vf.sweep.depDist[v])+1 > vf.budget {
			break
		}
		if vf.onPath.Test(uint(v)) {
			continue
		}
		vf.push(nb.Edge, v)
		found := false
		if vf.isDeparture[v] == off {
			vf.departure = v
			found = vf.forwardFinal(vf.to)
		}
		if !found && len(vf.path)+2 <= vf.budget {
			found = vf.backward(v)
		}
		vf.pop(v)
		if found {
			return true
		}
	}
	return false
}

// backwardFinal mirrors forwardFinal with the arrival fixed.
func (vf *verifier) backwardFinal(u core.VertexID) bool {
	off := vf.ep.cur
	for _, nb := range vf.ins(u) {
		v := nb.Vertex
		if vf.ordered && len(vf.path)+1+int(vf.sweep.depDist[v]) > vf.budget {
			break
		}
		if vf.onPath.Test(uint(v)) {
			continue
		}
		vf.push(nb.Edge, v)
		found := false
		if vf.isDeparture[v] == off {
			vf.departure = v
			found = vf.tryWitness()
		}
		if !found && len(vf.path)+1 <= vf.budget {
			found = vf.backwardFinal(v)
		}
		vf.pop(v)
		if found {
			return true
		}
	}
	return false
}

// tryWitness looks for a ∈ InD[departure] and b ∈ OutA[arrival], both off
// the current path and distinct. On success the path edges join the result.
func (vf *verifier) tryWitness() bool {
	dep, arr := vf.departure, vf.arrival
	nIn, nOut := int(vf.inDLen[dep]), int(vf.outALen[arr])
	if nIn+nOut >= 2*vf.maxLen-5 {
		vf.res.addPath(vf.path, vf.ep.cur)
		return true
	}

	inC := vf.pick(vf.inD[int(dep)*vf.cap:int(dep)*vf.cap+nIn], vf.inC[:0])
	if len(inC) == 0 {
		return false
	}
	outC := vf.pick(vf.outA[int(arr)*vf.cap:int(arr)*vf.cap+nOut], vf.outC[:0])
	if len(outC) == 0 {
		return false
	}
	if len(inC)+len(outC) > 2 || inC[0] != outC[0] {
		vf.res.addPath(vf.path, vf.ep.cur)
		return true
	}
	return false
}

// pick appends up to two members of list that are off the path.
func (vf *verifier) pick(list, dst []core.VertexID) []core.VertexID {
	for _, x := range list {
		if len(dst) == 2 {
			break
		}
		if !vf.onPath.Test(uint(x)) {
			dst = append(dst, x)
		}
	}
	return dst
}

func (vf *verifier) bytes() int64 {
	vn, en := int64(len(vf.hasOut)), int64(len(vf.prunedOut))
	b := 2 * en * 8       // pruned lists
	b += 2 * vn * (8 + 4) // ends and stamps
	b += 2 * vn * 4       // departure/arrival stamps
	b += 2 * vn * int64(vf.cap) * 4
	b += 2 * vn * 4
	b += vn / 8
	return b + vf.sweep.bytes()
}

// spaceCost counts the live portion of the verifier arenas.
func (vf *verifier) spaceCost() int64 {
	vn := int64(len(vf.hasOut))
	var pruned, adj int64
	for _, u := range vf.touchedOut {
		pruned += int64(vf.outEnd[u] - vf.g.OutOffset(u))
	}
	for _, v := range vf.touchedIn {
		pruned += int64(vf.inEnd[v] - vf.g.InOffset(v))
	}
	for _, d := range vf.departures {
		adj += int64(vf.inDLen[d])
	}
	for _, a := range vf.arrivals {
		adj += int64(vf.outALen[a])
	}

	b := pruned * 8
	b += 2 * vn * (8 + 4)
	b += int64(len(vf.departures)+len(vf.arrivals)) * 4
	b += adj * 4
	b += 2 * vn * 4
	b += 2 * vn * 4
	b += int64(len(vf.pending)) * 4
	b += vn/8 + int64(vf.maxLen)*4 + 16
	if vf.maxLen > 6 {
		b += int64(len(vf.touchedOut)+len(vf.touchedIn)) * 4
		b += 2 * vn * 4
	}
	return b
}
