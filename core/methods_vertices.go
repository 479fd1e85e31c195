// SPDX-License-Identifier: MIT
//
// File: methods_vertices.go
// Role: Vertex lifecycle, vertex values and vertex queries.
// Determinism:
//   - Vertices() and Neighbors() return vertices in ascending graph order.
// Concurrency:
//   - Mutations under mu write lock, queries under mu read lock.

package core

import "slices"

// AddVertex inserts v with an empty neighbor set.
// Re-adding an existing vertex is a no-op that is logged as a warning; the
// return value reports whether v was inserted.
// Complexity: O(1) amortized.
func (g *Graph[V]) AddVertex(v V) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.adjacency[v]; exists {
		g.log.Warn("core: vertex already part of the graph", "vertex", v)
		return false
	}
	g.adjacency[v] = make(map[V]struct{})

	return true
}

// HasVertex reports whether v is a vertex of the graph.
// Complexity: O(1).
func (g *Graph[V]) HasVertex(v V) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.adjacency[v]

	return ok
}

// RemoveVertex deletes v, its value, and v from every neighbor's adjacency set.
// Returns ErrVertexNotFound (and logs it) if v is absent; the graph is unchanged.
// Complexity: O(deg(v)).
func (g *Graph[V]) RemoveVertex(v V) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.removeVertexLocked(v); !ok {
		g.log.Warn("core: cannot remove unknown vertex", "vertex", v)
		return ErrVertexNotFound
	}

	return nil
}

// removeVertexLocked detaches v and returns its former neighbors.
// Caller must hold mu for writing.
func (g *Graph[V]) removeVertexLocked(v V) (map[V]struct{}, bool) {
	nbrs, ok := g.adjacency[v]
	if !ok {
		return nil, false
	}
	for u := range nbrs {
		delete(g.adjacency[u], v)
	}
	delete(g.adjacency, v)
	delete(g.values, v)

	return nbrs, true
}

// Neighbors returns the vertices adjacent to v, sorted by the graph order.
// The returned slice is a copy owned by the caller.
// Complexity: O(d log d).
func (g *Graph[V]) Neighbors(v V) ([]V, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	nbrs, ok := g.adjacency[v]
	if !ok {
		return nil, ErrVertexNotFound
	}
	out := make([]V, 0, len(nbrs))
	for u := range nbrs {
		out = append(out, u)
	}
	slices.SortFunc(out, g.compare)

	return out, nil
}

// Vertices returns every vertex sorted by the graph order.
// Complexity: O(V log V).
func (g *Graph[V]) Vertices() []V {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]V, 0, len(g.adjacency))
	for v := range g.adjacency {
		out = append(out, v)
	}
	slices.SortFunc(out, g.compare)

	return out
}

// Order returns the number of vertices.
func (g *Graph[V]) Order() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adjacency)
}

// Compare exposes the vertex order the graph was built with.
func (g *Graph[V]) Compare(a, b V) int {
	return g.compare(a, b)
}

// VertexValue returns the value attached to v, or nil if none was set.
// Returns ErrVertexNotFound if v is absent.
func (g *Graph[V]) VertexValue(v V) (any, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.adjacency[v]; !ok {
		return nil, ErrVertexNotFound
	}

	return g.values[v], nil
}

// SetVertexValue replaces the value attached to v.
// Returns ErrVertexNotFound (and logs it) if v is absent.
func (g *Graph[V]) SetVertexValue(v V, value any) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.adjacency[v]; !ok {
		g.log.Warn("core: cannot set value of an unknown vertex", "vertex", v)
		return ErrVertexNotFound
	}
	g.values[v] = value

	return nil
}
