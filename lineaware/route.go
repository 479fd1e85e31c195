// SPDX-License-Identifier: MIT
//
// File: route.go
// Role: optimal route selection and rendering.
// Determinism:
//   - Sources and targets are enumerated in line order; a candidate replaces
//     the best only when strictly cheaper.
//   - By default the search prices rides only, and each found path is then
//     charged the change penalty once per same-stop hop on it.
//   - WithPenaltyInSearch charges the penalty on transfer edges during the
//     search and trims transfers at the very start or end of a path before
//     pricing, so (a, L1)→(a, L2)→… equals a route from (a, L2).

package lineaware

import (
	"context"
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/katalvlaran/transitgraph/dijkstra"
	"github.com/katalvlaran/transitgraph/transit"
)

// Segment is a stretch of a route ridden on one line.
type Segment struct {
	Line  string   `json:"line"`
	Stops []string `json:"stops"`
}

// Route is the outcome of OptimalRoute. Total includes the change penalty.
type Route struct {
	From      string     `json:"from"`
	To        string     `json:"to"`
	Metric    Metric     `json:"metric"`
	Path      []StopLine `json:"path"`
	Segments  []Segment  `json:"segments"`
	Transfers int        `json:"transfers"`
	Total     float64    `json:"total"`
}

// String renders the route as "1 A - B - 2 B - C - 22 minutes".
func (r *Route) String() string {
	var sb strings.Builder
	for _, seg := range r.Segments {
		for i, stop := range seg.Stops {
			if i == 0 {
				sb.WriteString(seg.Line)
				sb.WriteByte(' ')
			}
			sb.WriteString(stop)
			sb.WriteString(" - ")
		}
	}
	sb.WriteString(strconv.FormatFloat(r.Total, 'f', -1, 64))
	sb.WriteByte(' ')
	sb.WriteString(r.Metric.Unit())

	return sb.String()
}

// OptimalRoute returns the cheapest route from stop a to stop b under
// metric, charging changePenalty per line change.
//
// For every line serving a, one search from (a, line) finds the metric-only
// shortest path to each (b, line'). Each such path is priced as its metric
// total plus changePenalty times its transfers, and the cheapest wins.
//
// Errors: transit.ErrUnknownStop, transit.ErrSameStop, ErrNoLines,
// ErrNoRoute, ErrNegativePenalty, ErrUnknownMetric, or the context error.
func (n *Network) OptimalRoute(ctx context.Context, a, b string, metric Metric, changePenalty float64, opts ...RouteOption) (*Route, error) {
	var ro routeOptions
	for _, opt := range opts {
		opt(&ro)
	}
	if !metric.valid() {
		return nil, errors.Wrapf(ErrUnknownMetric, "%d", int(metric))
	}
	if changePenalty < 0 || math.IsNaN(changePenalty) {
		return nil, errors.Wrapf(ErrNegativePenalty, "%v", changePenalty)
	}
	linesA, err := n.net.StopLines(a)
	if err != nil {
		return nil, err
	}
	linesB, err := n.net.StopLines(b)
	if err != nil {
		return nil, err
	}
	if a == b {
		return nil, errors.Wrapf(transit.ErrSameStop, "%q", a)
	}
	if len(linesA) == 0 {
		return nil, errors.Wrapf(ErrNoLines, "%q", a)
	}
	if len(linesB) == 0 {
		return nil, errors.Wrapf(ErrNoLines, "%q", b)
	}

	cost := dijkstra.WeightCost[StopLine, Hop](n.graph, metric.extract)
	if ro.penaltyInSearch {
		cost = withTransferPenalty(cost, changePenalty)
	}
	var best *Route
	for _, la := range linesA {
		src := StopLine{Stop: a, Line: la}
		res, err := dijkstra.Run[StopLine](n.graph, src, cost,
			dijkstra.WithTotals(),
			dijkstra.WithContext(ctx),
		)
		if err != nil {
			return nil, errors.Wrapf(err, "route from %s", src)
		}
		for _, lb := range linesB {
			dst := StopLine{Stop: b, Line: lb}
			path, ok := res.PathTo(dst)
			if !ok {
				continue
			}
			adjusted, _ := res.TotalTo(dst)
			if ro.penaltyInSearch {
				path = trimTransfers(path)
				adjusted = pathCost(path, cost)
			} else {
				adjusted += changePenalty * float64(countTransfers(path))
			}
			if best == nil || adjusted < best.Total {
				transfers := countTransfers(path)
				best = &Route{From: a, To: b, Metric: metric, Path: path, Transfers: transfers, Total: adjusted}
			}
		}
	}
	if best == nil {
		return nil, errors.Wrapf(ErrNoRoute, "%q to %q", a, b)
	}

	best.Total = math.Round(best.Total*1000) / 1000
	best.Segments = segments(best.Path)
	n.log.Debug("lineaware: route selected",
		"from", a, "to", b, "metric", metric.String(), "total", best.Total, "transfers", best.Transfers)

	return best, nil
}

// withTransferPenalty adds changePenalty to the cost of every transfer edge.
func withTransferPenalty(hop dijkstra.CostFunc[StopLine], changePenalty float64) dijkstra.CostFunc[StopLine] {
	return func(u, v StopLine) float64 {
		c := hop(u, v)
		if u.Stop == v.Stop {
			c += changePenalty
		}
		return c
	}
}

// pathCost sums cost over consecutive vertices of path.
func pathCost(path []StopLine, cost dijkstra.CostFunc[StopLine]) float64 {
	var total float64
	for i := 1; i < len(path); i++ {
		total += cost(path[i-1], path[i])
	}

	return total
}

// trimTransfers drops leading and trailing same-stop hops.
func trimTransfers(path []StopLine) []StopLine {
	for len(path) > 1 && path[0].Stop == path[1].Stop {
		path = path[1:]
	}
	for len(path) > 1 && path[len(path)-1].Stop == path[len(path)-2].Stop {
		path = path[:len(path)-1]
	}

	return path
}

// countTransfers counts consecutive vertices sharing a stop.
func countTransfers(path []StopLine) int {
	c := 0
	for i := 1; i < len(path); i++ {
		if path[i].Stop == path[i-1].Stop {
			c++
		}
	}

	return c
}

// segments collapses consecutive same-line vertices. A transfer stop ends
// one segment and starts the next.
func segments(path []StopLine) []Segment {
	var out []Segment
	for i, v := range path {
		if i == 0 || v.Line != path[i-1].Line {
			out = append(out, Segment{Line: v.Line})
		}
		last := &out[len(out)-1]
		last.Stops = append(last.Stops, v.Stop)
	}

	return out
}

// OptimalRoute derives the line-aware graph of net and routes on it.
func OptimalRoute(ctx context.Context, net *transit.Network, a, b string, metric Metric, changePenalty float64, opts ...RouteOption) (*Route, error) {
	ln, err := Derive(net)
	if err != nil {
		return nil, err
	}

	return ln.OptimalRoute(ctx, a, b, metric, changePenalty, opts...)
}

// Quickest minimizes travel time with DefaultChangeTime per change.
func Quickest(ctx context.Context, net *transit.Network, a, b string) (*Route, error) {
	return OptimalRoute(ctx, net, a, b, Time, DefaultChangeTime)
}

// Shortest minimizes distance with DefaultChangeDistance per change.
func Shortest(ctx context.Context, net *transit.Network, a, b string) (*Route, error) {
	return OptimalRoute(ctx, net, a, b, Distance, DefaultChangeDistance)
}
