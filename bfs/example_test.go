package bfs_test

import (
	"cmp"
	"fmt"

	"github.com/katalvlaran/transitgraph/bfs"
	"github.com/katalvlaran/transitgraph/core"
)

// ExampleBFS walks a small line of stops and prints hop counts.
func ExampleBFS() {
	g := core.NewGraph[string](cmp.Compare[string])
	g.AddEdge("Brunnsparken", "Centralstationen")
	g.AddEdge("Centralstationen", "Ullevi Norra")
	g.AddEdge("Brunnsparken", "Domkyrkan")

	res, _ := bfs.BFS[string](g, "Brunnsparken")
	for _, v := range res.Order {
		fmt.Println(v, res.Depth[v])
	}
	// Output:
	// Brunnsparken 0
	// Centralstationen 1
	// Domkyrkan 1
	// Ullevi Norra 2
}
