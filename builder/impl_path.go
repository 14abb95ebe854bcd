// SPDX-License-Identifier: MIT
// Package: hcpath/builder
//
// impl_path.go - Path(n) and Cycle(n).
//
// Contract:
//   - Path: n ≥ 2; edges i→i+1 for i=0..n-2 in increasing order.
//   - Cycle: n ≥ 3; Path edges followed by the closing edge (n-1)→0.
//
// Complexity: O(n) time, O(1) extra space.

package builder

import "fmt"

const (
	methodPath    = "Path"
	methodCycle   = "Cycle"
	minPathNodes  = 2
	minCycleNodes = 3
)

// Path returns a Constructor that builds a directed path P_n.
func Path(n int) Constructor {
	return func(s *Sketch, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		base := s.grow(n)
		for i := 1; i < n; i++ {
			s.add(cfg, base+i-1, base+i)
		}
		return nil
	}
}

// Cycle returns a Constructor that builds a directed cycle C_n.
func Cycle(n int) Constructor {
	return func(s *Sketch, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		base := s.grow(n)
		for i := 1; i < n; i++ {
			s.add(cfg, base+i-1, base+i)
		}
		s.add(cfg, base+n-1, base)
		return nil
	}
}
