// SPDX-License-Identifier: MIT
//
// File: network.go
// Role: Network construction from Tables.
// Determinism:
//   - Stops are visited in name order, lines in SortLines order.
//   - The time of a pair is looked up under (lesser, greater) first and
//     (greater, lesser) second, so the chosen value never depends on which
//     line reached the pair first or on map iteration order.

package transit

import (
	"cmp"
	"maps"
	"math"
	"slices"

	"github.com/pkg/errors"

	"github.com/katalvlaran/transitgraph/core"
	"github.com/katalvlaran/transitgraph/internal/logger"
)

// New builds a Network from t.
//
// Every stop of t.Stops becomes a vertex (stops served by no line stay
// isolated). Every pair of consecutive stops on a line becomes one edge
// weighted by its travel time. A line that lists the same stop twice in a
// row is logged and the degenerate pair skipped.
func New(t Tables, opts ...Option) (*Network, error) {
	o := Options{Logger: logger.Nop()}
	for _, opt := range opts {
		opt(&o)
	}

	n := &Network{
		stops: make(map[string]*Stop, len(t.Stops)),
		lines: make(map[string]*Line, len(t.Lines)),
		order: SortLines(slices.Collect(maps.Keys(t.Lines))),
		graph: core.NewWeightedGraph[string, float64](cmp.Compare[string], core.WithLogger(o.Logger)),
		log:   o.Logger,
	}

	for _, name := range slices.Sorted(maps.Keys(t.Stops)) {
		pos := t.Stops[name]
		n.stops[name] = &Stop{Name: name, Position: pos, Lines: []string{}}
		n.graph.AddVertex(name)
		if err := n.graph.SetVertexValue(name, pos); err != nil {
			return nil, errors.Wrapf(err, "stop %q", name)
		}
	}

	for _, id := range n.order {
		if err := n.addLine(id, t.Lines[id], t.Times); err != nil {
			return nil, err
		}
	}

	n.log.Debug("transit: network built",
		"stops", len(n.stops), "lines", len(n.lines), "edges", n.graph.Size())

	return n, nil
}

// addLine registers line id and connects its consecutive stops.
// Lines arrive in SortLines order, so appending keeps Stop.Lines sorted.
func (n *Network) addLine(id string, stops []string, times map[string]map[string]float64) error {
	if len(stops) == 0 {
		return errors.Wrapf(ErrEmptyLine, "line %s", id)
	}
	for _, name := range stops {
		st, ok := n.stops[name]
		if !ok {
			return errors.Wrapf(ErrUnknownStop, "line %s references %q", id, name)
		}
		if !slices.Contains(st.Lines, id) {
			st.Lines = append(st.Lines, id)
		}
	}
	n.lines[id] = &Line{ID: id, Stops: slices.Clone(stops)}

	for i := 1; i < len(stops); i++ {
		a, b := stops[i-1], stops[i]
		if a == b {
			n.log.Warn("transit: line repeats a stop, pair skipped", "line", id, "stop", a)
			continue
		}
		if n.graph.HasEdge(a, b) {
			continue
		}
		w, err := n.pairTime(times, a, b)
		if err != nil {
			return errors.Wrapf(err, "line %s", id)
		}
		n.graph.AddWeightedEdge(a, b, w)
	}

	return nil
}

// pairTime returns the recorded time of {a, b}. When both orderings are
// recorded and disagree, the (lesser, greater) value wins and a warning is
// logged.
func (n *Network) pairTime(times map[string]map[string]float64, a, b string) (float64, error) {
	lo, hi := a, b
	if hi < lo {
		lo, hi = hi, lo
	}
	fwd, okF := times[lo][hi]
	bwd, okB := times[hi][lo]
	if okF && okB && fwd != bwd {
		n.log.Warn("transit: travel time differs by direction",
			"from", lo, "to", hi, "forward", fwd, "backward", bwd)
	}

	var w float64
	switch {
	case okF:
		w = fwd
	case okB:
		w = bwd
	default:
		return 0, errors.Wrapf(ErrMissingTime, "between %q and %q", a, b)
	}
	if w < 0 || math.IsNaN(w) {
		return 0, errors.Wrapf(ErrInvalidTime, "between %q and %q: %v", a, b, w)
	}

	return w, nil
}

// Graph exposes the travel-time graph through its read capability.
func (n *Network) Graph() core.WeightReader[string, float64] {
	return n.graph
}
