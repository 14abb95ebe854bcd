// SPDX-License-Identifier: MIT
// Package: hcpath/builder
//
// api.go - public entry points for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(bopts, cons...). Resolves cfg, runs cons in
//     order over a shared edge sketch, then freezes it into a *core.Graph.
//   - Every constructor appends a fresh block of vertices; composing several
//     constructors yields their disjoint union unless Link is used.
//   - Determinism: same constructors, options and seed give identical edge ids.

package builder

import (
	"fmt"

	"github.com/katalvlaran/hcpath/core"
)

// Constructor appends vertices and edges to a sketch using the resolved
// builderConfig. Constructors validate parameters early and return sentinel
// errors; they never panic.
type Constructor func(s *Sketch, cfg builderConfig) error

// BuildGraph resolves the builder configuration from bopts, applies all
// constructors in order and returns the resulting CSR graph.
//
// Errors from constructors are wrapped with "BuildGraph: %w".
// Complexity: Σ cost of constructors + O(V + E log d) for core.Build.
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	s, err := BuildSketch(bopts, cons...)
	if err != nil {
		return nil, err
	}
	return s.Graph()
}

// BuildSketch is BuildGraph without the final freeze, for callers that want
// the raw edge list (for example to write it to a file).
func BuildSketch(bopts []BuilderOption, cons ...Constructor) (*Sketch, error) {
	cfg := newBuilderConfig(bopts...)
	s := &Sketch{}
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(s, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}
	if s.n == 0 {
		return nil, fmt.Errorf("BuildGraph: no vertices: %w", ErrTooFewVertices)
	}
	return s, nil
}

// Sketch is a growable directed edge list.
type Sketch struct {
	n     int
	edges []core.Edge
	// blocks records the first vertex of every constructor's block.
	blocks []int
}

// NumVertices returns the number of vertices allocated so far.
func (s *Sketch) NumVertices() int { return s.n }

// Edges returns the edges in insertion order; index i becomes edge id i.
func (s *Sketch) Edges() []core.Edge { return s.edges }

// Block returns the first vertex id of the i-th constructor's block.
func (s *Sketch) Block(i int) core.VertexID { return core.VertexID(s.blocks[i]) }

// Graph freezes the sketch into a CSR graph.
func (s *Sketch) Graph() (*core.Graph, error) {
	return core.Build(s.n, s.edges)
}

// grow reserves n fresh vertices and returns the first id.
func (s *Sketch) grow(n int) int {
	base := s.n
	s.n += n
	s.blocks = append(s.blocks, base)
	return base
}

// add appends u→v and, when cfg asks for it, v→u.
func (s *Sketch) add(cfg builderConfig, u, v int) {
	s.edges = append(s.edges, core.Edge{From: core.VertexID(u), To: core.VertexID(v)})
	if cfg.bidirectional && u != v {
		s.edges = append(s.edges, core.Edge{From: core.VertexID(v), To: core.VertexID(u)})
	}
}
