// Package eve answers hop-constrained simple-path edge queries: given a
// directed graph, a source s, a target t and a hop bound k, it returns
// every edge lying on at least one simple path from s to t with at most k
// edges.
//
// What:
//
//	Per query the engine runs five stages over one reusable set of arenas:
//
//	  1. Explorer:   adaptive bidirectional BFS bounding the search space.
//	  2. Propagator: forward and backward essential-vertex sets per hop.
//	  3. Labeler:    each candidate edge becomes included, excluded or
//	                 undetermined via small set intersections.
//	  4. Verifier:   bounded DFS over the upper-bound graph settles the
//	                 undetermined edges (k >= 5 only).
//	  5. Result:     sorted, de-duplicated edge ids.
//
// Why:
//
//   - Scratch state is stamped with a per-query epoch instead of cleared,
//     so a query costs time proportional to the region it touches.
//   - Essential-vertex sets let most edges be decided without search.
//   - The verifier only walks candidate edges and stops at the first
//     witness per edge.
//
// Complexity:
//
//   - Memory: O(k²·V + E) allocated once by New.
//   - Time:   O(k²·E) propagation in the worst case plus verifier search
//     bounded by the k-4 middle-segment depth.
//
// Usage:
//
//	g, _ := core.Load("graph.txt")
//	eng, err := eve.New(g, 6, eve.WithLogger(logger))
//	if err != nil { ... }
//	defer eng.Close()
//	res, err := eng.Answer(0, 42)
//	fmt.Println(res.Edges)
//
// Options:
//
//	WithLogger(l)              - debug logging (default: discard).
//	WithObserver(o)            - per-query statistics sink (default: no-op).
//	WithMode(UpperBound)       - skip verification, return the upper bound.
//	WithOrderingThreshold(n)   - undetermined-edge count that enables search
//	                             ordering for k > 6 (default 1024).
//	WithEpochCeiling(c)        - largest stamp value before a full clear.
//
// Errors:
//
//	ErrNilGraph, ErrEmptyGraph, ErrHopBound  - from New.
//	ErrInvalidQuery                          - endpoint id >= |V|.
//	ErrClosed                                - Answer after Close.
//	ErrOptionViolation                       - invalid option value.
//
// An Engine is single-threaded. To answer queries in parallel, create one
// Engine per goroutine over the same *core.Graph (see package batch).
package eve
