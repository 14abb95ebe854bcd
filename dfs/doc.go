// Package dfs enumerates hop-bounded simple paths in a core.Graph by
// exhaustive depth-first search.
//
// It is the reference oracle for package eve: eve's tests compare every
// answer against EdgesOnSimplePaths. Nothing on the query path imports it.
//
// What:
//
//   - SimplePaths(g, s, t, k): walks every simple path from s to t with at
//     most k edges, reporting each path to an optional hook and collecting
//     the union of their edges.
//   - EdgesOnSimplePaths(g, s, t, k): the sorted edge union only.
//
// Why:
//
//   - Ground truth for hop-constrained edge queries on small graphs: the
//     eve engine is tested against it.
//   - Witness extraction: WithOnPath hands each path to the caller.
//
// Complexity:
//
//   - Time:   O(d^k) in the worst case (d = max out-degree); only suitable
//     for small graphs or small k.
//   - Memory: O(V + k) for the on-path marker and the path stack.
//
// Options:
//
//   - WithContext(ctx)    cancellation, checked once per expanded vertex.
//   - WithOnPath(fn)      called with each complete path; an error aborts.
//   - WithMaxPaths(n)     stop after n paths (Truncated reports it).
//
// Errors:
//
//   - ErrGraphNil             if g is nil.
//   - ErrVertexNotFound       if s or t is not a vertex of g.
//   - ErrBadHopBound          if k < 1.
//   - ErrOptionViolation      for invalid option values.
//   - context.Canceled        if ctx is done.
//   - any error returned by the OnPath hook.
package dfs
