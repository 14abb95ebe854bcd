package bfs_test

import (
	"testing"

	"github.com/katalvlaran/hcpath/bfs"
	"github.com/katalvlaran/hcpath/builder"
)

// BenchmarkBFS_Grid measures BFS on a 100×100 directed grid.
func BenchmarkBFS_Grid(b *testing.B) {
	g, err := builder.BuildGraph(nil, builder.Grid(100, 100))
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.SetBytes(int64(g.NumVertices() + g.NumEdges()))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(g, 0)
	}
}

// BenchmarkBFS_Random runs a depth-bounded BFS on a sparse random graph.
func BenchmarkBFS_Random(b *testing.B) {
	g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(1)}, builder.RandomOutRegular(5000, 4))
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(g, 0, bfs.WithMaxDepth(4))
	}
}
