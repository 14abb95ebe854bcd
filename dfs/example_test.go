package dfs_test

import (
	"fmt"

	"github.com/katalvlaran/hcpath/core"
	"github.com/katalvlaran/hcpath/dfs"
)

// ExampleSimplePaths lists every simple 0→3 path of at most three edges.
func ExampleSimplePaths() {
	g, _ := core.Build(4, []core.Edge{
		{From: 0, To: 1}, {From: 0, To: 2}, {From: 0, To: 3},
		{From: 1, To: 2}, {From: 1, To: 3}, {From: 2, To: 3},
	})
	res, _ := dfs.SimplePaths(g, 0, 3, 3, dfs.WithOnPath(func(p []core.EdgeID) error {
		fmt.Println("path", p)
		return nil
	}))
	fmt.Println("edges", res.Edges)
	// Output:
	// path [0 3 5]
	// path [0 4]
	// path [1 5]
	// path [2]
	// edges [0 1 2 3 4 5]
}
