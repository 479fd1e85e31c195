// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge lifecycle and edge queries.
// Determinism:
//   - Edges() returns canonical (lesser, greater) pairs sorted by From, then To.
// Concurrency:
//   - Mutations under mu write lock, queries under mu read lock.

package core

import "slices"

// AddEdge connects u and v, inserting missing endpoints. Idempotent.
//
// The graph does not reject u == v; callers building graphs from external
// tables must filter identical endpoints themselves.
// Complexity: O(1) amortized.
func (g *Graph[V]) AddEdge(u, v V) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.addEdgeLocked(u, v)
}

// addEdgeLocked inserts {u, v}. Caller must hold mu for writing.
func (g *Graph[V]) addEdgeLocked(u, v V) {
	if _, ok := g.adjacency[u]; !ok {
		g.adjacency[u] = make(map[V]struct{})
	}
	if _, ok := g.adjacency[v]; !ok {
		g.adjacency[v] = make(map[V]struct{})
	}
	g.adjacency[u][v] = struct{}{}
	g.adjacency[v][u] = struct{}{}
}

// HasEdge reports whether {u, v} is an edge, in either argument order.
// Complexity: O(1).
func (g *Graph[V]) HasEdge(u, v V) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.hasEdgeLocked(u, v)
}

func (g *Graph[V]) hasEdgeLocked(u, v V) bool {
	_, ok := g.adjacency[u][v]
	return ok
}

// RemoveEdge deletes {u, v}. It is a no-op if the edge does not exist.
// Complexity: O(1).
func (g *Graph[V]) RemoveEdge(u, v V) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.removeEdgeLocked(u, v)
}

// removeEdgeLocked reports whether an edge was removed.
func (g *Graph[V]) removeEdgeLocked(u, v V) bool {
	if !g.hasEdgeLocked(u, v) {
		return false
	}
	delete(g.adjacency[u], v)
	delete(g.adjacency[v], u)

	return true
}

// Edges returns every undirected edge exactly once as (lesser, greater).
// Complexity: O(V + E log E).
func (g *Graph[V]) Edges() []Edge[V] {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var out []Edge[V]
	for u, nbrs := range g.adjacency {
		for v := range nbrs {
			if g.compare(u, v) <= 0 {
				out = append(out, Edge[V]{From: u, To: v})
			}
		}
	}
	slices.SortFunc(out, func(a, b Edge[V]) int {
		if c := g.compare(a.From, b.From); c != 0 {
			return c
		}
		return g.compare(a.To, b.To)
	})

	return out
}

// Size returns the number of undirected edges.
func (g *Graph[V]) Size() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n := 0
	for u, nbrs := range g.adjacency {
		for v := range nbrs {
			if g.compare(u, v) <= 0 {
				n++
			}
		}
	}

	return n
}
