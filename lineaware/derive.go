// SPDX-License-Identifier: MIT

package lineaware

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/transitgraph/core"
	"github.com/katalvlaran/transitgraph/internal/logger"
	"github.com/katalvlaran/transitgraph/transit"
)

// Network is a derived (stop, line) graph bound to its source network.
type Network struct {
	net   *transit.Network
	graph *core.WeightedGraph[StopLine, Hop]
	log   logger.Logger
}

// Derive builds the line-aware graph of net. Vertex values hold the stop
// position.
// Complexity: O(S·L² + E·L) for S stops, E ride edges, L lines per stop.
func Derive(net *transit.Network, opts ...Option) (*Network, error) {
	if net == nil {
		return nil, ErrNilNetwork
	}
	o := Options{Logger: logger.Nop()}
	for _, opt := range opts {
		opt(&o)
	}

	g := core.NewWeightedGraph[StopLine, Hop](CompareStopLine, core.WithLogger(o.Logger))

	for _, stop := range net.AllStops() {
		pos, err := net.StopPosition(stop)
		if err != nil {
			return nil, errors.Wrap(err, "derive vertices")
		}
		lines := net.LinesViaStop(stop)
		for _, line := range lines {
			v := StopLine{Stop: stop, Line: line}
			g.AddVertex(v)
			if err := g.SetVertexValue(v, pos); err != nil {
				return nil, errors.Wrapf(err, "derive vertex %s", v)
			}
		}
		// transfers: every pair of lines at this stop
		for i := 0; i < len(lines); i++ {
			for j := i + 1; j < len(lines); j++ {
				g.AddWeightedEdge(StopLine{stop, lines[i]}, StopLine{stop, lines[j]}, Hop{})
			}
		}
	}

	for _, line := range net.AllLines() {
		stops, err := net.LineStops(line)
		if err != nil {
			return nil, errors.Wrap(err, "derive rides")
		}
		for i := 1; i < len(stops); i++ {
			a, b := stops[i-1], stops[i]
			if a == b {
				continue
			}
			minutes, ok := net.TransitionTime(a, b)
			if !ok {
				return nil, errors.Errorf("derive rides: %q and %q are not adjacent", a, b)
			}
			km, err := net.GeoDistance(a, b)
			if err != nil {
				return nil, errors.Wrapf(err, "derive rides on line %s", line)
			}
			g.AddWeightedEdge(StopLine{a, line}, StopLine{b, line}, Hop{Time: minutes, Distance: km})
		}
	}

	o.Logger.Debug("lineaware: derived", "vertices", g.Order(), "edges", g.Size())

	return &Network{net: net, graph: g, log: o.Logger}, nil
}

// Graph exposes the derived graph through its read capability.
func (n *Network) Graph() core.WeightReader[StopLine, Hop] {
	return n.graph
}

// Transit returns the network n was derived from.
func (n *Network) Transit() *transit.Network {
	return n.net
}
