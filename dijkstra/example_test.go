// Package dijkstra_test provides examples demonstrating how to use the search.
package dijkstra_test

import (
	"cmp"
	"fmt"

	"github.com/katalvlaran/transitgraph/core"
	"github.com/katalvlaran/transitgraph/dijkstra"
)

// ExampleRun_Triangle computes weighted shortest paths on a triangle.
func ExampleRun_triangle() {
	g := core.NewWeightedGraph[string, float64](cmp.Compare[string])
	g.AddWeightedEdge("A", "B", 1)
	g.AddWeightedEdge("B", "C", 2)
	g.AddWeightedEdge("A", "C", 5)

	res, err := dijkstra.Run[string](g,
		"A",
		dijkstra.WeightCost[string, float64](g, func(w float64) float64 { return w }),
		dijkstra.WithTotals(),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	path, _ := res.PathTo("C")
	total, _ := res.TotalTo("C")
	fmt.Println(path, total)
	// Output: [A B C] 3
}

// ExampleRun_UnitCost shows the default: every edge costs 1.
func ExampleRun_unitCost() {
	g := core.NewGraph[int](cmp.Compare[int])
	g.AddEdge(1, 2)
	g.AddEdge(2, 3)
	g.AddEdge(3, 4)
	g.AddEdge(1, 4)

	res, _ := dijkstra.Run[int](g, 1, nil)
	fmt.Println(res.Paths[3])
	// Output: [1 2 3]
}
