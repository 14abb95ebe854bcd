// SPDX-License-Identifier: MIT
// Package: hcpath/builder
//
// impl_random.go - RandomSparse(n, p) and RandomOutRegular(n, d).
//
// Contract:
//   - RandomSparse: n ≥ 1, 0 ≤ p ≤ 1; one Bernoulli(p) trial per ordered
//     pair (i,j) in row-major order. i→i is tried only under WithSelfLoops.
//     An RNG is required when 0 < p < 1.
//   - RandomOutRegular: n ≥ 2, 0 ≤ d < n; every vertex gets d distinct
//     out-neighbors other than itself, emitted in ascending order. Requires
//     an RNG.
//
// Determinism: fixed trial order, so equal seeds give equal edge lists.

package builder

import (
	"fmt"
	"slices"
)

const (
	methodRandomSparse      = "RandomSparse"
	methodRandomOutRegular  = "RandomOutRegular"
	minRandomSparseVertices = 1
	minRandomRegular        = 2
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor that samples a directed Erdős–Rényi
// graph over n vertices with independent edge probability p.
func RandomSparse(n int, p float64) Constructor {
	return func(s *Sketch, cfg builderConfig) error {
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}

		base := s.grow(n)
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j && !cfg.selfLoops {
					continue
				}
				if p == probMax || (p > probMin && cfg.rng.Float64() < p) {
					s.edges = append(s.edges, edge(base+i, base+j))
				}
			}
		}
		return nil
	}
}

// RandomOutRegular returns a Constructor in which every vertex has out-degree d.
func RandomOutRegular(n, d int) Constructor {
	return func(s *Sketch, cfg builderConfig) error {
		if n < minRandomRegular {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomOutRegular, n, minRandomRegular, ErrTooFewVertices)
		}
		if d < 0 || d >= n {
			return fmt.Errorf("%s: d=%d not in [0,%d): %w", methodRandomOutRegular, d, n, ErrTooFewVertices)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: rng is required: %w", methodRandomOutRegular, ErrNeedRandSource)
		}

		base := s.grow(n)
		picks := make([]int, 0, d)
		for i := 0; i < n; i++ {
			picks = picks[:0]
			// Perm over n-1 slots, shifted past i, gives distinct non-self targets.
			for _, j := range cfg.rng.Perm(n - 1)[:d] {
				if j >= i {
					j++
				}
				picks = append(picks, j)
			}
			slices.Sort(picks)
			for _, j := range picks {
				s.edges = append(s.edges, edge(base+i, base+j))
			}
		}
		return nil
	}
}
