// SPDX-License-Identifier: MIT

// Package core provides the undirected adjacency-set Graph and its weighted
// extension used by every other package in this module.
//
// Vertices are opaque comparable values. Each graph is created with a total
// order over its vertex type; the order canonicalizes undirected edges and
// makes every enumeration (Vertices, Neighbors, Edges) deterministic.
//
// Capability sets:
//
//	Reader[V]          HasVertex, Vertices, Neighbors, Edges, Compare
//	WeightReader[V, W] Reader[V] + Weight(u, v)
//
// *Graph[V] implements Reader; *WeightedGraph[V, W] implements WeightReader.
// Algorithms accept the smallest capability they need.
//
// Warnings and failures:
//
//	AddVertex(existing)          no-op, logged as a warning, returns false
//	RemoveVertex(missing)        ErrVertexNotFound, logged
//	RemoveEdge(missing)          no-op
//	Neighbors/VertexValue(miss.) ErrVertexNotFound
//	Weight/SetWeight(missing)    ErrEdgeNotFound, SetWeight logs and leaves state unchanged
//
// Self-loops are not rejected by the graph. Construction code that builds
// graphs from external tables is responsible for never passing identical
// endpoints to AddEdge.
//
// Concurrency: every method takes an internal sync.RWMutex, so a graph that
// is no longer mutated can be shared freely between goroutines.
//
// Example:
//
//	g := core.NewGraph[string](cmp.Compare[string])
//	g.AddEdge("A", "B")
//	g.AddEdge("B", "C")
//	nbrs, _ := g.Neighbors("B") // [A C]
package core
