// SPDX-License-Identifier: MIT
//
// File: weighted.go
// Role: WeightedGraph, a Graph that stores one weight of any type per edge.
// Determinism:
//   - Weights are keyed by the canonical edge, so (u, v) and (v, u) always
//     address the same slot.
// Concurrency:
//   - Shares the embedded Graph's lock.

package core

// WeightedGraph is a Graph plus per-edge weights. W is usually a number,
// but composite records (for example {time, distance}) work the same way.
type WeightedGraph[V comparable, W any] struct {
	*Graph[V]
	weights map[Edge[V]]W
}

// NewWeightedGraph creates an empty weighted graph ordered by compare.
func NewWeightedGraph[V comparable, W any](compare func(a, b V) int, opts ...GraphOption) *WeightedGraph[V, W] {
	return &WeightedGraph[V, W]{
		Graph:   NewGraph[V](compare, opts...),
		weights: make(map[Edge[V]]W),
	}
}

// AddWeightedEdge connects u and v and stores w on the edge, replacing any
// previous weight.
func (g *WeightedGraph[V, W]) AddWeightedEdge(u, v V, w W) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.addEdgeLocked(u, v)
	g.weights[g.canonical(u, v)] = w
}

// Weight returns the weight of {u, v} regardless of argument order.
// Returns ErrEdgeNotFound if there is no such edge, ErrWeightNotSet if the
// edge was added without a weight.
// Complexity: O(1).
func (g *WeightedGraph[V, W]) Weight(u, v V) (W, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var zero W
	if !g.hasEdgeLocked(u, v) {
		return zero, ErrEdgeNotFound
	}
	w, ok := g.weights[g.canonical(u, v)]
	if !ok {
		return zero, ErrWeightNotSet
	}

	return w, nil
}

// SetWeight replaces the weight of the existing edge {u, v}.
// If the edge does not exist the call is logged and returns ErrEdgeNotFound;
// the graph is left unchanged.
func (g *WeightedGraph[V, W]) SetWeight(u, v V, w W) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.hasEdgeLocked(u, v) {
		g.log.Warn("core: cannot set weight of an unknown edge", "from", u, "to", v)
		return ErrEdgeNotFound
	}
	g.weights[g.canonical(u, v)] = w

	return nil
}

// RemoveEdge deletes {u, v} and its weight. No-op if the edge does not exist.
func (g *WeightedGraph[V, W]) RemoveEdge(u, v V) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.removeEdgeLocked(u, v) {
		delete(g.weights, g.canonical(u, v))
	}
}

// RemoveVertex deletes v together with the weights of its incident edges.
func (g *WeightedGraph[V, W]) RemoveVertex(v V) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	nbrs, ok := g.removeVertexLocked(v)
	if !ok {
		g.log.Warn("core: cannot remove unknown vertex", "vertex", v)
		return ErrVertexNotFound
	}
	for u := range nbrs {
		delete(g.weights, g.canonical(u, v))
	}

	return nil
}

// Compile-time capability checks.
var (
	_ Reader[string]                = (*Graph[string])(nil)
	_ WeightReader[string, float64] = (*WeightedGraph[string, float64])(nil)
)
