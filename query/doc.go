// Package query reads, writes and generates hop-constrained path queries.
//
// What
//
//   - Query is a (source, target) vertex pair.
//   - Read / ReadFile parse one "source,target" pair per line; ReadFile
//     decompresses .zst, .gz and .lz4 files like core.Load.
//   - Write emits the same format.
//   - Generate draws reachable queries for every hop bound 3..maxHops from
//     seeded random sources, one bucket per bound, using a depth-bounded
//     bfs.BFS per source.
//   - FileName names a generated bucket "<graph>_<k>.query".
//
// Errors
//
//   - ErrMalformedQuery   a line is not "a,b" (the error names the line).
//   - ErrNoQueries        a file holds no queries.
//   - ErrGenerateExhausted the attempt budget ran out before every bucket
//     was full; the partial buckets are still returned.
package query
