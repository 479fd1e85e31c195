// Package dijkstra implements single-source shortest-path search over any
// core.Reader with a caller-supplied edge cost function.
//
// Overview:
//
//   - The search never reads stored weights on its own. The default cost is a
//     constant 1 per edge; weighted search is requested by passing a CostFunc,
//     usually built with WeightCost from a core.WeightReader.
//   - The result maps every vertex reachable from the source to one shortest
//     path (source first, target last). The source maps to [source].
//   - Unreachable vertices are simply absent from the result; that is not an error.
//
// Determinism:
//
//   - When two unvisited vertices share the minimal tentative distance, the
//     lesser one under the graph's vertex order is finalized first.
//   - Relaxation only accepts strictly shorter distances, so the recorded
//     predecessor is the first finalized vertex that reached the minimum.
//   - The heap-based loop below therefore returns exactly what the textbook
//     O(V²) linear-scan variant returns.
//
// Preconditions:
//
//   - Costs must be non-negative. A negative cost observed during relaxation
//     aborts the search with ErrNegativeCost; there is no Bellman-Ford fallback.
//   - A cost of +Inf marks the edge as impassable.
//
// Options:
//
//   - WithTotals():          expose Result.Totals (accumulated cost per vertex).
//   - WithContext(ctx):      cancel or time-box the search.
//   - WithMaxDistance(d):    do not finalize vertices farther than d.
//
// Complexity:
//
//   - Time:  O((V + E) log V) with the lazy decrease-key heap.
//   - Space: O(V + E).
//
// Errors (sentinel):
//
//   - ErrNilGraph         graph is nil.
//   - ErrVertexNotFound   source is not a vertex of the graph.
//   - ErrNegativeCost     the cost function returned a negative value.
//   - ErrBadMaxDistance   WithMaxDistance received a negative or NaN value.
//
// Example:
//
//	res, err := dijkstra.Run(g, "A", dijkstra.WeightCost(g, func(w float64) float64 { return w }),
//	    dijkstra.WithTotals())
//	path, _ := res.PathTo("C")  // [A B C]
//	total, _ := res.TotalTo("C") // 12
package dijkstra
