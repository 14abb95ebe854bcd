package core_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/hcpath/core"
)

// ExampleRead loads a small graph and walks its CSR buckets.
func ExampleRead() {
	g, err := core.Read(strings.NewReader("3 3\n0,1\n0,2\n1,2\n"))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("|V| =", g.NumVertices(), "|E| =", g.NumEdges())
	for _, n := range g.Out(0) {
		fmt.Printf("edge %d: 0→%d\n", n.Edge, n.Vertex)
	}
	for _, n := range g.In(2) {
		fmt.Printf("edge %d: %d→2\n", n.Edge, n.Vertex)
	}
	// Output:
	// |V| = 3 |E| = 3
	// edge 0: 0→1
	// edge 1: 0→2
	// edge 1: 0→2
	// edge 2: 1→2
}
