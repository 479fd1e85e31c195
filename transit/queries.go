// SPDX-License-Identifier: MIT
//
// File: queries.go
// Role: read-only lookups over stops, lines and travel times.
// Validation order in two-stop queries: unknown stops first, then same stop.

package transit

import (
	"slices"

	"github.com/pkg/errors"
)

// AllStops returns every stop name in ascending order.
func (n *Network) AllStops() []string {
	return n.graph.Vertices()
}

// AllLines returns every line id in SortLines order.
func (n *Network) AllLines() []string {
	return slices.Clone(n.order)
}

// Stop returns a copy of the named stop.
func (n *Network) Stop(name string) (Stop, bool) {
	st, ok := n.stops[name]
	if !ok {
		return Stop{}, false
	}
	cp := *st
	cp.Lines = slices.Clone(st.Lines)

	return cp, true
}

// Line returns a copy of the line with the given id.
func (n *Network) Line(id string) (Line, bool) {
	l, ok := n.lines[id]
	if !ok {
		return Line{}, false
	}

	return Line{ID: l.ID, Stops: slices.Clone(l.Stops)}, true
}

// LineStops returns the stops of line in traversal order.
func (n *Network) LineStops(line string) ([]string, error) {
	l, ok := n.lines[line]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownLine, "line %s", line)
	}

	return slices.Clone(l.Stops), nil
}

// StopLines returns the lines serving stop in SortLines order.
func (n *Network) StopLines(stop string) ([]string, error) {
	st, ok := n.stops[stop]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownStop, "%q", stop)
	}

	return slices.Clone(st.Lines), nil
}

// StopPosition returns the position of stop.
func (n *Network) StopPosition(stop string) (Position, error) {
	st, ok := n.stops[stop]
	if !ok {
		return Position{}, errors.Wrapf(ErrUnknownStop, "%q", stop)
	}

	return st.Position, nil
}

// LinesViaStop returns the lines whose stop list contains stop, in
// SortLines order. An unknown stop or one served by no line yields an
// empty slice.
func (n *Network) LinesViaStop(stop string) []string {
	st, ok := n.stops[stop]
	if !ok {
		return []string{}
	}

	return slices.Clone(st.Lines)
}

// LinesBetweenStops returns the lines serving both a and b, in SortLines
// order. Returns ErrUnknownStop if either stop is unknown and ErrSameStop
// if a == b.
func (n *Network) LinesBetweenStops(a, b string) ([]string, error) {
	sa, sb, err := n.stopPair(a, b)
	if err != nil {
		return nil, err
	}
	out := []string{}
	for _, id := range sa.Lines {
		if slices.Contains(sb.Lines, id) {
			out = append(out, id)
		}
	}

	return out, nil
}

// TransitionTime returns the weight of the direct edge {a, b}. ok is false
// when a and b are not consecutive on any line; no path search is done.
func (n *Network) TransitionTime(a, b string) (float64, bool) {
	w, err := n.graph.Weight(a, b)
	if err != nil {
		return 0, false
	}

	return w, true
}

// TimeAlongLine sums the hop times between a and b along line, in either
// direction of travel.
func (n *Network) TimeAlongLine(line, a, b string) (float64, error) {
	l, ok := n.lines[line]
	if !ok {
		return 0, errors.Wrapf(ErrUnknownLine, "line %s", line)
	}
	if _, _, err := n.stopPair(a, b); err != nil {
		return 0, err
	}
	i, j := slices.Index(l.Stops, a), slices.Index(l.Stops, b)
	if i < 0 {
		return 0, errors.Wrapf(ErrNotOnLine, "%q on line %s", a, line)
	}
	if j < 0 {
		return 0, errors.Wrapf(ErrNotOnLine, "%q on line %s", b, line)
	}
	if i > j {
		i, j = j, i
	}

	var total float64
	for k := i; k < j; k++ {
		if l.Stops[k] == l.Stops[k+1] {
			continue
		}
		w, _ := n.TransitionTime(l.Stops[k], l.Stops[k+1])
		total += w
	}

	return total, nil
}

// stopPair resolves a and b, rejecting unknown and identical stops.
func (n *Network) stopPair(a, b string) (*Stop, *Stop, error) {
	sa, ok := n.stops[a]
	if !ok {
		return nil, nil, errors.Wrapf(ErrUnknownStop, "%q", a)
	}
	sb, ok := n.stops[b]
	if !ok {
		return nil, nil, errors.Wrapf(ErrUnknownStop, "%q", b)
	}
	if a == b {
		return nil, nil, errors.Wrapf(ErrSameStop, "%q", a)
	}

	return sa, sb, nil
}
