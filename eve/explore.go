package eve

import "github.com/katalvlaran/hcpath/core"

// explore runs the adaptive bidirectional BFS from s and t.
//
// Distances are written as epoch+hop; a vertex stamped with exactly the
// epoch is touched but blocked (s, t, and vertices rejected at the meeting
// step or by the length test). The side that takes the meeting step keeps
// expanding alone up to hop maxLen-1; the other side propagates first.
func (e *Engine) explore() {
	off := e.ep.cur
	f, b := &e.fwd, &e.bwd

	// 1. Block both endpoints on both sides, seed the frontiers.
	f.dist[e.s], f.dist[e.t] = off, off
	b.dist[e.s], b.dist[e.t] = off, off
	f.frontier = append(f.frontier[:0], e.s)
	b.frontier = append(b.frontier[:0], e.t)

	// 2. Expand the smaller frontier until the hop budget is spent.
	var cont *direction
	for f.hop+b.hop < e.maxLen {
		d, o := b, f
		if len(f.frontier) < len(b.frontier) {
			d, o = f, b
		}
		d.hop++
		next := e.next[:0]

		if d.hop+o.hop < e.maxLen {
			for _, u := range d.frontier {
				for _, nb := range d.adj(u) {
					if v := nb.Vertex; d.dist[v] < off {
						d.reach(v, e.ep.hop(d.hop))
						next = append(next, v)
					}
				}
			}
		} else {
			// Meeting step: only vertices the other side already reached.
			cont = d
			for _, u := range d.frontier {
				for _, nb := range core.Window(d.adj(u), o.minID, o.maxID) {
					v := nb.Vertex
					if d.dist[v] >= off {
						continue
					}
					if o.dist[v] > off {
						d.reach(v, e.ep.hop(d.hop))
						next = append(next, v)
					} else {
						d.dist[v] = off
					}
				}
			}
		}

		d.frontier, e.next = next, d.frontier[:0]
		e.trackFrontier(len(d.frontier))
	}

	// 3. Continue the meeting side, gated by the remaining length.
	o := e.opposite(cont)
	for k := cont.hop + 1; k <= e.maxLen-1; k++ {
		next := e.next[:0]
		for _, u := range cont.frontier {
			for _, nb := range core.Window(cont.adj(u), o.minID, o.maxID) {
				v := nb.Vertex
				if cont.dist[v] >= off {
					continue
				}
				if od := o.dist[v]; od > off && k+int(od-off) <= e.maxLen {
					cont.reach(v, e.ep.hop(k))
					next = append(next, v)
				} else {
					cont.dist[v] = off
				}
			}
		}
		if k < e.maxLen-1 {
			cont.frontier, e.next = next, cont.frontier[:0]
			e.trackFrontier(len(cont.frontier))
		} else {
			e.next = next[:0]
		}
	}

	e.startForward = !cont.forward
}

func (e *Engine) opposite(d *direction) *direction {
	if d.forward {
		return &e.bwd
	}
	return &e.fwd
}
