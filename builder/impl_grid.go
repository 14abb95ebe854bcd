// SPDX-License-Identifier: MIT
// Package: hcpath/builder
//
// impl_grid.go - Grid(rows, cols).
//
// Contract:
//   - rows, cols ≥ 1; vertex (r,c) has id base + r*cols + c.
//   - For each cell in row-major order: the edge right (r,c)→(r,c+1), then
//     the edge down (r,c)→(r+1,c), when those neighbors exist.
//
// Complexity: O(rows·cols) time, O(1) extra space.

package builder

import "fmt"

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid returns a Constructor that builds a directed rows×cols lattice.
func Grid(rows, cols int) Constructor {
	return func(s *Sketch, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: %dx%d < min=%d: %w", methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}
		base := s.grow(rows * cols)
		at := func(r, c int) int { return base + r*cols + c }
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					s.add(cfg, at(r, c), at(r, c+1))
				}
				if r+1 < rows {
					s.add(cfg, at(r, c), at(r+1, c))
				}
			}
		}
		return nil
	}
}
