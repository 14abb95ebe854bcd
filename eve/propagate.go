package eve

import "github.com/katalvlaran/hcpath/core"

// propagate computes essential-vertex sets for side d, hops 1..maxLen-2,
// and collects candidate edges. o is the opposite side, whose distances
// bound which neighbors may still reach its root in time.
//
// The side that runs first also records its own distances and adds the
// final-hop candidates; the second side trusts what the first wrote.
func (e *Engine) propagate(d, o *direction) {
	off := e.ep.cur
	first := d.forward == e.startForward
	width := e.maxLen - 2
	useEV := e.maxLen > 3

	// 1. Hop 1: neighbors of the root that can still reach the far end.
	d.frontier = d.frontier[:0]
	for _, nb := range core.Window(d.adj(d.root), o.minID, o.maxID) {
		v := nb.Vertex
		if od := o.dist[v]; od > off && int(od-off)+1 <= e.maxLen {
			e.addCandidate(nb.Edge)
			if n := len(d.frontier); n > 0 && d.frontier[n-1] == v {
				// parallel edge; neighbors are sorted by vertex
				continue
			}
			d.frontier = append(d.frontier, v)
			if first {
				d.reach(v, e.ep.hop(1))
			}
			if useEV {
				d.ev.slot(1, v)[0] = v
				d.ev.setStamp(1, v, off+1)
				d.last[v] = off + 1
				e.lastEV[int(v)*width] = v
				e.lastEVLen[v] = 1
				e.evCount++
			}
		} else if first && v == d.far {
			// direct s→t edge
			e.res.add(nb.Edge)
			e.stats.UpperBound++
		}
	}

	// 2. Hops 2..maxLen-2: intersect sets over all qualifying predecessors.
	for k := 2; k <= e.maxLen-2; k++ {
		next := e.next[:0]
		for _, u := range d.frontier {
			uEV, _ := d.ev.get(k-1, u, off)
			for _, nb := range core.Window(d.adj(u), o.minID, o.maxID) {
				v := nb.Vertex
				if v == u {
					continue
				}
				od := o.dist[v]
				if od <= off || int(od-off)+k > e.maxLen {
					continue
				}
				if first {
					e.addCandidate(nb.Edge)
				}

				work := e.lastEV[int(v)*width : (int(v)+1)*width]
				switch {
				case d.ev.stamp(k, v) < off:
					// first visit of v at hop k
					d.ev.setStamp(k, v, off)
					if d.last[v] < off {
						if first {
							d.reach(v, e.ep.hop(k))
						}
						e.lastEVLen[v] = int32(copy(work, uEV))
						next = append(next, v)
					} else if n := e.lastEVLen[v]; n > 0 {
						e.lastEVLen[v] = int32(intersectInto(work[:n], uEV))
						next = append(next, v)
					}
				case e.lastEVLen[v] > 0:
					n := e.lastEVLen[v]
					e.lastEVLen[v] = int32(intersectInto(work[:n], uEV))
				}
			}
		}
		e.trackFrontier(len(next))

		// Finalize: keep v only if its set shrank since its last hop.
		d.frontier = d.frontier[:0]
		for _, v := range next {
			n := int(e.lastEVLen[v])
			if d.last[v] < off || n+1 < int(d.ev.stamp(int(d.last[v]-off), v)-off) {
				dst := d.ev.slot(k, v)
				copy(dst, e.lastEV[int(v)*width:int(v)*width+n])
				insertSorted(dst, n, v)
				d.ev.setStamp(k, v, off+int32(n)+1)
				d.last[v] = e.ep.hop(k)
				d.frontier = append(d.frontier, v)
				e.evCount += n + 1
			} else {
				d.ev.setStamp(k, v, 0)
			}
		}
		e.next = next[:0]
	}

	// 3. Final hop: edges into vertices one hop from the far end.
	if !first {
		return
	}
	for _, u := range d.frontier {
		for _, nb := range core.Window(d.adj(u), o.minID, o.maxID) {
			v := nb.Vertex
			if v == u || o.dist[v] != off+1 {
				continue
			}
			e.addCandidate(nb.Edge)
			if d.dist[v] < off {
				d.reach(v, e.ep.hop(e.maxLen-1))
			}
		}
	}
}
