// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: vertex and weight types, metrics, sentinel errors, options.

package lineaware

import (
	"cmp"
	"errors"
	"fmt"

	"github.com/katalvlaran/transitgraph/internal/logger"
	"github.com/katalvlaran/transitgraph/transit"
)

// Default change penalties of Quickest and Shortest.
const (
	DefaultChangeTime     = 10.0 // minutes
	DefaultChangeDistance = 0.02 // kilometres
)

// Sentinel errors.
var (
	// ErrNilNetwork indicates Derive was given no network.
	ErrNilNetwork = errors.New("lineaware: network is nil")

	// ErrNoLines indicates an endpoint is a known stop served by no line.
	ErrNoLines = errors.New("lineaware: stop is served by no line")

	// ErrNoRoute indicates no path joins the two stops.
	ErrNoRoute = errors.New("lineaware: no route between stops")

	// ErrNegativePenalty indicates a negative or NaN change penalty.
	ErrNegativePenalty = errors.New("lineaware: change penalty must be non-negative")

	// ErrUnknownMetric indicates a metric other than Time or Distance.
	ErrUnknownMetric = errors.New("lineaware: unknown metric")
)

// StopLine is a stop as served by one line.
type StopLine struct {
	Stop string `json:"stop"`
	Line string `json:"line"`
}

// String renders "line stop".
func (s StopLine) String() string { return s.Line + " " + s.Stop }

// CompareStopLine orders by stop name, then by transit.CompareLines.
func CompareStopLine(a, b StopLine) int {
	return cmp.Or(cmp.Compare(a.Stop, b.Stop), transit.CompareLines(a.Line, b.Line))
}

// Hop is the composite weight of a line-aware edge.
type Hop struct {
	Time     float64 `json:"time"`
	Distance float64 `json:"distance"`
}

// Metric selects which Hop component a route minimizes.
type Metric int

const (
	// Time minimizes travel minutes.
	Time Metric = iota
	// Distance minimizes kilometres.
	Distance
)

// ParseMetric accepts "time" and "distance".
func ParseMetric(s string) (Metric, error) {
	switch s {
	case "time":
		return Time, nil
	case "distance":
		return Distance, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownMetric, s)
}

func (m Metric) String() string {
	switch m {
	case Time:
		return "time"
	case Distance:
		return "distance"
	}

	return fmt.Sprintf("Metric(%d)", int(m))
}

// Unit is the word appended to rendered totals.
func (m Metric) Unit() string {
	if m == Distance {
		return "km"
	}

	return "minutes"
}

// MarshalText encodes m as its name.
func (m Metric) MarshalText() ([]byte, error) {
	if !m.valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownMetric, int(m))
	}

	return []byte(m.String()), nil
}

// UnmarshalText decodes a name produced by MarshalText.
func (m *Metric) UnmarshalText(b []byte) error {
	v, err := ParseMetric(string(b))
	if err != nil {
		return err
	}
	*m = v

	return nil
}

func (m Metric) valid() bool { return m == Time || m == Distance }

// extract reads the component of h selected by m.
func (m Metric) extract(h Hop) float64 {
	if m == Distance {
		return h.Distance
	}

	return h.Time
}

// Options configures Derive.
type Options struct {
	Logger logger.Logger
}

// Option configures Derive.
type Option func(*Options)

// WithLogger routes derivation and routing diagnostics to log.
func WithLogger(log logger.Logger) Option {
	return func(o *Options) {
		if log != nil {
			o.Logger = log
		}
	}
}

// RouteOption configures OptimalRoute.
type RouteOption func(*routeOptions)

type routeOptions struct {
	penaltyInSearch bool
}

// WithPenaltyInSearch charges the change penalty on each transfer edge while
// searching instead of adding it to finished paths. The search then prefers
// fewer changes on its own, so a direct ride can beat a cheaper route with
// more changes. Transfers at either end of a path are dropped.
func WithPenaltyInSearch() RouteOption {
	return func(o *routeOptions) {
		o.penaltyInSearch = true
	}
}
