package eve_test

import (
	"fmt"

	"github.com/katalvlaran/hcpath/core"
	"github.com/katalvlaran/hcpath/eve"
)

// ExampleEngine_Answer queries a four-vertex DAG for edges on paths of
// at most three hops.
func ExampleEngine_Answer() {
	g, _ := core.Build(4, []core.Edge{
		{From: 0, To: 1}, {From: 0, To: 2}, {From: 0, To: 3},
		{From: 1, To: 2}, {From: 1, To: 3}, {From: 2, To: 3},
	})
	e, _ := eve.New(g, 3)
	defer e.Close()

	for _, q := range [][2]core.VertexID{{0, 3}, {1, 2}, {3, 0}} {
		res, _ := e.Answer(q[0], q[1])
		fmt.Println(q, res.Edges)
	}
	// Output:
	// [0 3] [0 1 2 3 4 5]
	// [1 2] [3]
	// [3 0] []
}
