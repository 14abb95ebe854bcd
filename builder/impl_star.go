// SPDX-License-Identifier: MIT
// Package: hcpath/builder
//
// impl_star.go - Star(n) and Wheel(n).
//
// Contract:
//   - Star: n ≥ 2; the first vertex of the block is the hub; edges hub→leaf
//     for each leaf in increasing order.
//   - Wheel: n ≥ 4; hub plus a directed cycle over the n-1 rim vertices.
//     Spokes are emitted first, then rim edges.
//
// Complexity: O(n) time, O(1) extra space.

package builder

import "fmt"

const (
	methodStar    = "Star"
	methodWheel   = "Wheel"
	minStarNodes  = 2
	minWheelNodes = 4
)

// Star returns a Constructor that builds an out-star with n-1 leaves.
func Star(n int) Constructor {
	return func(s *Sketch, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		hub := s.grow(n)
		for i := 1; i < n; i++ {
			s.add(cfg, hub, hub+i)
		}
		return nil
	}
}

// Wheel returns a Constructor that builds W_n: a hub with spokes into a
// directed rim cycle of n-1 vertices.
func Wheel(n int) Constructor {
	return func(s *Sketch, cfg builderConfig) error {
		if n < minWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, minWheelNodes, ErrTooFewVertices)
		}
		hub := s.grow(n)
		for i := 1; i < n; i++ {
			s.add(cfg, hub, hub+i)
		}
		for i := 1; i < n-1; i++ {
			s.add(cfg, hub+i, hub+i+1)
		}
		s.add(cfg, hub+n-1, hub+1)
		return nil
	}
}
