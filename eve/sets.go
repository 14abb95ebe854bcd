package eve

import "github.com/katalvlaran/hcpath/core"

// Sorted vertex-set primitives. All inputs are ascending and duplicate free.

// intersectInto writes a∩b over the prefix of a and returns its length.
func intersectInto(a, b []core.VertexID) int {
	n, i, j := 0, 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			i++
		case a[i] > b[j]:
			j++
		default:
			a[n] = a[i]
			n++
			i++
			j++
		}
	}
	return n
}

// insertSorted inserts v into s[:n] keeping order; s must have room for n+1.
func insertSorted(s []core.VertexID, n int, v core.VertexID) int {
	i := n
	for i > 0 && s[i-1] > v {
		s[i] = s[i-1]
		i--
	}
	s[i] = v
	return n + 1
}

// containsVertex reports whether v is in s.
func containsVertex(s []core.VertexID, v core.VertexID) bool {
	for _, x := range s {
		if x == v {
			return true
		}
		if x > v {
			return false
		}
	}
	return false
}

// disjoint reports whether a and b share no vertex.
func disjoint(a, b []core.VertexID) bool {
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			i++
		case a[i] > b[j]:
			j++
		default:
			return false
		}
	}
	return true
}
