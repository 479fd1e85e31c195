// Package dijkstra defines the option set, cost functions and result type
// for the shortest-path search.
package dijkstra

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/transitgraph/core"
)

// Sentinel errors returned by Run.
var (
	// ErrNilGraph indicates that a nil graph was passed to Run.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates that the source vertex does not exist in the graph.
	ErrVertexNotFound = errors.New("dijkstra: source vertex not found in graph")

	// ErrNegativeCost indicates the cost function returned a negative value.
	ErrNegativeCost = errors.New("dijkstra: negative edge cost encountered")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative or NaN value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")
)

// CostFunc maps the traversal u→v to a non-negative cost.
type CostFunc[V comparable] func(u, v V) float64

// UnitCost charges 1 per edge. It is what Run uses when cost is nil.
func UnitCost[V comparable](_, _ V) float64 { return 1 }

// WeightCost builds a CostFunc reading the stored weight of each edge and
// converting it with extract. Edges without a readable weight are impassable.
func WeightCost[V comparable, W any](g core.WeightReader[V, W], extract func(W) float64) CostFunc[V] {
	return func(u, v V) float64 {
		w, err := g.Weight(u, v)
		if err != nil {
			return math.Inf(1)
		}
		return extract(w)
	}
}

// Options configures a single search.
//
// Totals      – expose accumulated costs in Result.Totals.
// Ctx         – cancellation and deadlines; checked once per finalized vertex.
// MaxDistance – vertices whose distance exceeds it are not finalized.
type Options struct {
	Totals      bool
	Ctx         context.Context
	MaxDistance float64

	// err records an invalid option; surfaced by Run.
	err error
}

// Option represents a functional option for Run.
type Option func(*Options)

// DefaultOptions returns an Options struct with no distance cap, a
// background context and totals hidden.
func DefaultOptions() Options {
	return Options{
		Totals:      false,
		Ctx:         context.Background(),
		MaxDistance: math.Inf(1),
	}
}

// WithTotals enables the "with totals" mode.
func WithTotals() Option {
	return func(o *Options) {
		o.Totals = true
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxDistance caps exploration at d. Negative or NaN values are
// reported as ErrBadMaxDistance when Run is invoked.
func WithMaxDistance(d float64) Option {
	return func(o *Options) {
		if d < 0 || math.IsNaN(d) {
			o.err = fmt.Errorf("%w: got %v", ErrBadMaxDistance, d)
			return
		}
		o.MaxDistance = d
	}
}

// Result holds the outcome of a search.
//
//   - Source: the start vertex.
//   - Paths:  reachable vertex → one shortest path, source first.
//   - Totals: reachable vertex → accumulated cost (nil unless WithTotals).
type Result[V comparable] struct {
	Source V
	Paths  map[V][]V
	Totals map[V]float64
}

// PathTo returns the shortest path to v and whether v was reached.
func (r *Result[V]) PathTo(v V) ([]V, bool) {
	p, ok := r.Paths[v]
	return p, ok
}

// TotalTo returns the accumulated cost to v. The second value is false if v
// was not reached or totals were not requested.
func (r *Result[V]) TotalTo(v V) (float64, bool) {
	if r.Totals == nil {
		return 0, false
	}
	d, ok := r.Totals[v]
	return d, ok
}
