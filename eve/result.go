package eve

import "github.com/katalvlaran/hcpath/core"

// resultSet collects answer edges for one query.
//
// mark[id] == epoch-1 means id is a candidate; mark[id] == epoch means id
// is confirmed and must not be appended again.
type resultSet struct {
	ids  []core.EdgeID
	mark []int32
}

func newResultSet(numEdges int) resultSet {
	return resultSet{mark: make([]int32, numEdges)}
}

func (r *resultSet) reset() { r.ids = r.ids[:0] }

func (r *resultSet) add(id core.EdgeID) { r.ids = append(r.ids, id) }

func (r *resultSet) markCandidate(id core.EdgeID, off int32) bool {
	if r.mark[id] < off-1 {
		r.mark[id] = off - 1
		return true
	}
	return false
}

func (r *resultSet) confirmed(id core.EdgeID, off int32) bool { return r.mark[id] == off }

func (r *resultSet) confirm(id core.EdgeID, off int32) { r.mark[id] = off }

// addPath appends every not yet confirmed edge of path.
func (r *resultSet) addPath(path []core.EdgeID, off int32) {
	for _, id := range path {
		if r.mark[id] < off {
			r.ids = append(r.ids, id)
			r.mark[id] = off
		}
	}
}
