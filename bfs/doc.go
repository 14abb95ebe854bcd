// Package bfs provides breadth-first search over a CSR core.Graph,
// returning unweighted shortest-path distances, parent edges, and visit order.
//
// What
//
//   - Explore vertices in non-decreasing distance (edge count) from a start vertex.
//   - Returns a BFSResult containing:
//   - Order: visit sequence
//   - Depth: per-vertex distance from start, Unreached (-1) otherwise
//   - Parent: the tree edge that discovered each vertex
//   - Layers groups visited vertices by depth; query generation samples
//     targets from the layer at distance k.
//   - WithReverse walks in-edges, so depths become distances *to* the start.
//   - Honors MaxDepth limit (d>0) or explicit no limit (d==0).
//
// Determinism
//
//	CSR neighbor lists are sorted by neighbor id then edge id, and BFS
//	enqueues neighbors in that order, so the visit sequence is reproducible.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V) for the queue, Depth and Parent slices.
//
// Usage
//
//	res, err := bfs.BFS(g, 0, bfs.WithMaxDepth(3))
//	if err != nil {
//		// ErrGraphNil, ErrStartVertexNotFound, ErrOptionViolation, ctx or hook errors
//	}
//	atThree := res.Layers()[3]
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start vertex is outside the graph.
//   - ErrOptionViolation      if an Option is invalid (negative MaxDepth).
//   - Wrapped OnVisit errors and ctx.Err() on cancellation.
package bfs
