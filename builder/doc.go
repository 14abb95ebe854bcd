// Package builder assembles deterministic directed graph fixtures for tests,
// benchmarks and the query generator.
//
// What:
//
//   - Constructor: a closure that appends a fresh block of vertices plus
//     edges to a Sketch.
//   - BuildGraph / BuildSketch: resolve BuilderOption values, run the
//     constructors in order and freeze the result into a *core.Graph.
//   - Topologies: Path, Cycle, Star, Wheel, Complete, CompleteBipartite,
//     Layered, Grid, RandomSparse, RandomOutRegular.
//   - Stitching: Link and Parallel connect vertices of earlier blocks.
//
// Options:
//
//   - WithSeed / WithRand: RNG for RandomSparse and RandomOutRegular.
//   - WithBidirectional: mirror every edge (ignored by Complete and the
//     random constructors, which already draw ordered pairs).
//   - WithSelfLoops: let RandomSparse draw i→i.
//
// Guarantees:
//
//   - Equal constructors, options and seed give byte-identical edge lists,
//     so edge ids are stable across runs.
//   - Invalid parameters surface as sentinel errors (errors.Is); only option
//     constructors panic, on nil arguments.
//
// Example:
//
//	g, err := builder.BuildGraph(
//		[]builder.BuilderOption{builder.WithSeed(7)},
//		builder.Layered(1, 3, 3, 1),
//		builder.RandomSparse(20, 0.1),
//		builder.Link(7, 8),
//	)
package builder
