package eve

import "github.com/katalvlaran/hcpath/core"

// label classifies candidate edge id. The first matching rule wins:
//
//  1. u = s: included iff v reaches t.
//  2. v = t: included iff s reaches u.
//  3. s→u and v→t are single hops: included.
//  4. s→u is a single hop and some backward set of v avoids u: included.
//  5. v→t is a single hop and some forward set of u avoids v: included.
//  6. some split k1+k2+1 <= maxLen has disjoint sets: undetermined.
//  7. otherwise excluded.
//
// Rules 3-5 also register departures and arrivals for the verifier.
func (e *Engine) label(id core.EdgeID) Label {
	edge := e.g.Edge(id)
	u, v := edge.From, edge.To
	off := e.ep.cur
	f, b := &e.fwd, &e.bwd

	if u == v {
		return Excluded
	}
	if u == e.s {
		if b.dist[v] > off {
			return Included
		}
		return Excluded
	}
	if v == e.t {
		if f.dist[u] > off {
			return Included
		}
		return Excluded
	}

	included, adjacent := false, false
	if f.dist[u] == off+1 {
		if b.dist[v] == off+1 {
			// s→u→v→t
			e.registerDeparture(v, u)
			e.registerArrival(u, v)
			included, adjacent = true, true
		} else {
			// s→u→v→...→t
			hi := min(e.maxLen-2, int(b.last[v]-off))
			for k2 := 2; k2 <= hi; k2++ {
				if set, ok := b.ev.get(k2, v, off); ok && !containsVertex(set, u) {
					e.registerDeparture(v, u)
					included = true
					break
				}
			}
		}
	}

	// s→...→u→v→t
	if !adjacent && b.dist[v] == off+1 {
		hi := min(e.maxLen-2, int(f.last[u]-off))
		for k1 := 2; k1 <= hi; k1++ {
			if set, ok := f.ev.get(k1, u, off); ok && !containsVertex(set, v) {
				e.registerArrival(u, v)
				return Included
			}
		}
	}
	if included {
		return Included
	}

	// s→...→u→v→...→t
	hi := min(e.maxLen-3, int(f.last[u]-off))
	for k1 := 2; k1 <= hi; k1++ {
		uSet, ok := f.ev.get(k1, u, off)
		if !ok {
			continue
		}
		k2 := min(e.maxLen-k1-1, int(b.last[v]-off))
		for k2 >= 2 && b.ev.stamp(k2, v) < off {
			k2--
		}
		if k2 < 2 {
			continue
		}
		vSet, _ := b.ev.get(k2, v, off)
		if disjoint(uSet, vSet) {
			return Undetermined
		}
	}
	return Excluded
}

func (e *Engine) registerDeparture(dep, in core.VertexID) {
	if e.ver != nil {
		e.ver.addDeparture(dep, in)
	}
}

func (e *Engine) registerArrival(arr, out core.VertexID) {
	if e.ver != nil {
		e.ver.addArrival(arr, out)
	}
}

// classify labels every candidate and routes it to the result, to the
// verifier, or nowhere.
func (e *Engine) classify() {
	off := e.ep.cur
	e.stats.Candidates = len(e.candidates)
	for _, id := range e.candidates {
		lbl := e.label(id)
		if lbl == Excluded {
			continue
		}
		e.stats.UpperBound++
		edge := e.g.Edge(id)

		switch {
		case lbl == Included:
			e.res.add(id)
			if e.ver != nil && edge.From != e.s && edge.To != e.t {
				e.res.confirm(id, off)
				e.ver.addPruned(edge)
			}
		case e.opts.Mode == UpperBound:
			e.res.add(id)
		case e.ver != nil:
			e.ver.addPruned(edge)
			e.ver.pending = append(e.ver.pending, id)
			e.stats.Undetermined++
		}
	}
}
