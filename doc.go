// SPDX-License-Identifier: MIT

// Package transitgraph is a small toolkit for modelling tram and bus networks
// as graphs and answering routing questions over them.
//
// The module is organized in layers:
//
//	core/       generic undirected graph with a caller-supplied vertex order,
//	            optional per-edge weights and vertex values
//	bfs/        breadth-first traversal, reachability, connectivity
//	dfs/        depth-first traversal and connected components
//	dijkstra/   single-source shortest paths with caller-defined edge cost
//	transit/    stops, lines and travel times built into a weighted graph
//	lineaware/  stop×line expansion for routes that charge for line changes
//
// The internal packages load network documents, serve queries over HTTP,
// export GeoJSON, and carry configuration and logging for cmd/transitd.
//
// Quick start:
//
//	net, err := loader.LoadNetwork("tramnetwork.json")
//	route, err := lineaware.Quickest(ctx, net, "Chalmers", "Centralstationen")
//	fmt.Println(route) // 6 Chalmers - Korsvägen - Ullevi Norra - 1 Ullevi Norra - Centralstationen - 20 minutes
package transitgraph
