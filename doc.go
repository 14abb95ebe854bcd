// Package hcpath answers hop-constrained s-t simple path edge queries:
// given a directed graph, a source s, a target t and a hop bound k, find
// every edge that lies on at least one simple path from s to t of at most
// k edges.
//
// The work is split across subpackages:
//
//	core/     compressed sparse row graph, edge-list loading (.zst/.gz/.lz4)
//	eve/      the query engine: bidirectional exploration, essential-vertex
//	          propagation, edge labeling and the bounded verifier
//	bfs/      hop-bounded breadth-first search over core graphs
//	dfs/      exhaustive simple-path enumeration, used as a reference
//	builder/  deterministic and random graph constructors for tests
//	query/    query files and random query generation
//	batch/    parallel batch driver and answer/statistics/run-log writers
//	metrics/  Prometheus observer for engine statistics
//	config/   YAML configuration with validation
//	logging/  slog loggers
//
// The hcpath command (cmd/hcpath) wires these together:
//
//	hcpath genqueries --graph g.txt --hops 6 --count 1000 --out queries
//	hcpath run --graph g.txt --hops 3,4,5,6 --queries queries/g.txt_6.query --answers out
//
// Quick start:
//
//	g, _ := core.Load("graph.txt")
//	e, _ := eve.New(g, 6)
//	res, _ := e.Answer(s, t)
//	fmt.Println(res.Edges)
package hcpath
