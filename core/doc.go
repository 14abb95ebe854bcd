// Package core provides the immutable directed Graph Store used by every
// other hcpath package.
//
// A Graph G = (V,E) holds VN vertices with ids 0..VN-1 and EN edges with
// ids 0..EN-1. Each edge keeps its position in the input list as its id.
// Adjacency is stored twice in compressed-sparse-row form:
//
//   - out view: for each u, the (edge id, head) pairs of edges u→v
//   - in view:  for each v, the (edge id, tail) pairs of edges u→v
//
// Within a vertex bucket the pairs are sorted ascending by neighbor id
// (ties broken by edge id), so callers can restrict a scan to an id window
// with Window in O(log d).
//
// Why a CSR store?
//
//   - One contiguous slice per view: no per-vertex allocation, cache friendly.
//   - Immutable after Build: safe to share read-only across goroutines.
//   - Bucket offsets (OutOffset/InOffset) let query engines lay out per-query
//     scratch copies of neighbor lists in the same index space.
//
// Input:
//
//	|V| |E|
//	from,to        (E lines, edge id = line order)
//
// Read parses this format; Load opens a path and transparently decompresses
// .zst, .gz and .lz4 files.
//
// Complexity:
//
//	Build:   O(V + E log d_max) time, O(V + E) space.
//	Out/In:  O(1).
//	Window:  O(log d).
//
// Errors:
//
//	ErrEmptyGraph          - zero vertices.
//	ErrVertexRange         - an endpoint is >= VN.
//	ErrMalformedHeader     - first line is not "|V| |E|".
//	ErrMalformedEdge       - an edge line is not "from,to".
//	ErrEdgeCount           - number of edge lines differs from |E|.
//	ErrUnknownCompression  - decompressor construction failed.
package core
