// SPDX-License-Identifier: MIT
// Package: hcpath/builder
//
// impl_link.go - Link(u, v) and Parallel(u, v, n).
//
// Unlike the topology constructors these add no vertices: they connect
// vertices created by earlier constructors, which is how disjoint blocks
// are stitched into one fixture.

package builder

import (
	"fmt"

	"github.com/katalvlaran/hcpath/core"
)

const (
	methodLink     = "Link"
	methodParallel = "Parallel"
)

// Link returns a Constructor that adds the edge u→v between existing vertices.
func Link(u, v core.VertexID) Constructor {
	return Parallel(u, v, 1)
}

// Parallel returns a Constructor that adds n copies of u→v.
func Parallel(u, v core.VertexID, n int) Constructor {
	return func(s *Sketch, cfg builderConfig) error {
		method := methodParallel
		if n == 1 {
			method = methodLink
		}
		if int(u) >= s.n || int(v) >= s.n {
			return fmt.Errorf("%s: %d→%d with %d vertices: %w", method, u, v, s.n, ErrVertexRange)
		}
		if n < 1 {
			return fmt.Errorf("%s: n=%d < min=1: %w", method, n, ErrTooFewVertices)
		}
		for i := 0; i < n; i++ {
			s.add(cfg, int(u), int(v))
		}
		return nil
	}
}

func edge(u, v int) core.Edge {
	return core.Edge{From: core.VertexID(u), To: core.VertexID(v)}
}
