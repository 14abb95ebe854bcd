// SPDX-License-Identifier: MIT
// Package: hcpath/builder
//
// impl_complete.go - Complete(n), CompleteBipartite(n1, n2) and Layered.
//
// Contract:
//   - Complete: n ≥ 1; every ordered pair (i,j), i≠j, row-major.
//   - CompleteBipartite: n1, n2 ≥ 1; left block first, edges L_i→R_j.
//   - Layered: at least two layers, each of width ≥ 1; every vertex of
//     layer l points at every vertex of layer l+1. Source-to-sink paths all
//     have exactly len(widths)-1 hops, which makes it a dense fixture for
//     hop-bounded queries.
//
// Complexity: O(n²), O(n1·n2) and O(Σ w_l·w_{l+1}) respectively.

package builder

import "fmt"

const (
	methodComplete          = "Complete"
	methodCompleteBipartite = "CompleteBipartite"
	methodLayered           = "Layered"
	minCompleteNodes        = 1
	minPartition            = 1
	minLayers               = 2
)

// Complete returns a Constructor that builds the complete digraph K_n.
func Complete(n int) Constructor {
	return func(s *Sketch, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		base := s.grow(n)
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i != j {
					s.edges = append(s.edges, edge(base+i, base+j))
				}
			}
		}
		return nil
	}
}

// CompleteBipartite returns a Constructor that builds K_{n1,n2} oriented
// from the left part to the right part.
func CompleteBipartite(n1, n2 int) Constructor {
	return func(s *Sketch, cfg builderConfig) error {
		if n1 < minPartition || n2 < minPartition {
			return fmt.Errorf("%s: partitions %d,%d < min=%d: %w",
				methodCompleteBipartite, n1, n2, minPartition, ErrTooFewVertices)
		}
		base := s.grow(n1 + n2)
		for i := 0; i < n1; i++ {
			for j := 0; j < n2; j++ {
				s.add(cfg, base+i, base+n1+j)
			}
		}
		return nil
	}
}

// Layered returns a Constructor that chains complete bipartite layers.
func Layered(widths ...int) Constructor {
	return func(s *Sketch, cfg builderConfig) error {
		if len(widths) < minLayers {
			return fmt.Errorf("%s: %d layers < min=%d: %w", methodLayered, len(widths), minLayers, ErrTooFewVertices)
		}
		total := 0
		for l, w := range widths {
			if w < 1 {
				return fmt.Errorf("%s: layer %d width %d: %w", methodLayered, l, w, ErrTooFewVertices)
			}
			total += w
		}
		start := s.grow(total)
		for l := 0; l+1 < len(widths); l++ {
			next := start + widths[l]
			for i := 0; i < widths[l]; i++ {
				for j := 0; j < widths[l+1]; j++ {
					s.add(cfg, start+i, next+j)
				}
			}
			start = next
		}
		return nil
	}
}
