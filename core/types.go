// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Graph, Edge, capability interfaces, sentinel errors and constructor options.

package core

import (
	"errors"
	"sync"

	"github.com/katalvlaran/transitgraph/internal/logger"
)

// Sentinel errors for core graph operations.
var (
	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrWeightNotSet indicates the edge exists but carries no weight.
	ErrWeightNotSet = errors.New("core: edge has no weight")
)

// Edge is an undirected connection stored in canonical form: From is never
// greater than To under the graph's vertex order.
type Edge[V comparable] struct {
	From V
	To   V
}

// Reader is the minimal read capability over an undirected graph.
type Reader[V comparable] interface {
	// HasVertex reports whether v is a vertex.
	HasVertex(v V) bool
	// Vertices returns all vertices in ascending vertex order.
	Vertices() []V
	// Neighbors returns the vertices adjacent to v in ascending vertex order.
	Neighbors(v V) ([]V, error)
	// Edges returns every edge once, canonicalized and sorted.
	Edges() []Edge[V]
	// Compare is the total order the graph was built with.
	Compare(a, b V) int
}

// WeightReader extends Reader with per-edge weights.
type WeightReader[V comparable, W any] interface {
	Reader[V]
	// Weight returns the weight of edge {u, v} regardless of argument order.
	Weight(u, v V) (W, error)
}

// Options holds construction-time settings shared by Graph and WeightedGraph.
type Options struct {
	Logger logger.Logger
}

// GraphOption configures a graph before creation.
type GraphOption func(o *Options)

// WithLogger routes structural warnings to log. A nil log is ignored.
func WithLogger(log logger.Logger) GraphOption {
	return func(o *Options) {
		if log != nil {
			o.Logger = log
		}
	}
}

// Graph is an undirected adjacency-set graph with an optional value per vertex.
//
// mu guards adjacency and values; compare is immutable after construction.
type Graph[V comparable] struct {
	mu      sync.RWMutex
	compare func(a, b V) int
	log     logger.Logger

	// adjacency[v] is the neighbor set of v; every vertex has an entry.
	adjacency map[V]map[V]struct{}
	// values[v] is the auxiliary value attached by SetVertexValue.
	values map[V]any
}

// NewGraph creates an empty graph ordered by compare.
// Complexity: O(1).
func NewGraph[V comparable](compare func(a, b V) int, opts ...GraphOption) *Graph[V] {
	o := Options{Logger: logger.Nop()}
	for _, opt := range opts {
		opt(&o)
	}

	return &Graph[V]{
		compare:   compare,
		log:       o.Logger,
		adjacency: make(map[V]map[V]struct{}),
		values:    make(map[V]any),
	}
}

// canonical orders the endpoints of {u, v} so that From <= To.
func (g *Graph[V]) canonical(u, v V) Edge[V] {
	if g.compare(u, v) <= 0 {
		return Edge[V]{From: u, To: v}
	}

	return Edge[V]{From: v, To: u}
}
