package eve

import "github.com/katalvlaran/hcpath/core"

// evArena stores essential-vertex sets for hops 1..depth.
//
// Every (hop, vertex) pair owns a fixed slot of width vertices inside one
// buffer. lens holds the set length plus the epoch of the query that wrote
// it; a value below the current epoch means "no set".
type evArena struct {
	vn    int
	depth int
	width int
	data  []core.VertexID
	lens  []int32
}

func newEVArena(vn, depth int) evArena {
	return evArena{
		vn:    vn,
		depth: depth,
		width: depth,
		data:  make([]core.VertexID, depth*vn*depth),
		lens:  make([]int32, depth*vn),
	}
}

func (a *evArena) index(hop int, v core.VertexID) int {
	return (hop-1)*a.vn + int(v)
}

// slot returns the full-width storage for (hop, v).
func (a *evArena) slot(hop int, v core.VertexID) []core.VertexID {
	i := a.index(hop, v) * a.width
	return a.data[i : i+a.width : i+a.width]
}

// get returns the set stored for (hop, v) in the epoch starting at off.
func (a *evArena) get(hop int, v core.VertexID, off int32) ([]core.VertexID, bool) {
	n := a.lens[a.index(hop, v)]
	if n < off {
		return nil, false
	}
	return a.slot(hop, v)[:n-off], true
}

// stamp returns the raw length stamp of (hop, v).
func (a *evArena) stamp(hop int, v core.VertexID) int32 {
	return a.lens[a.index(hop, v)]
}

func (a *evArena) setStamp(hop int, v core.VertexID, s int32) {
	a.lens[a.index(hop, v)] = s
}

func (a *evArena) clear() { clear(a.lens) }

func (a *evArena) bytes() int64 {
	return int64(len(a.data))*4 + int64(len(a.lens))*4
}
