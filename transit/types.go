// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: input tables, stop and line records, sentinel errors, options.

package transit

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/transitgraph/core"
	"github.com/katalvlaran/transitgraph/internal/logger"
)

// Sentinel errors. Compare with errors.Is; returned errors carry context.
var (
	// ErrUnknownStop indicates a stop that is not part of the network.
	ErrUnknownStop = errors.New("transit: unknown stop")

	// ErrUnknownLine indicates a line that is not part of the network.
	ErrUnknownLine = errors.New("transit: unknown line")

	// ErrSameStop is the distinguished outcome of a two-stop query with
	// identical endpoints.
	ErrSameStop = errors.New("transit: same stop given twice")

	// ErrNotOnLine indicates a stop that exists but is not served by the line.
	ErrNotOnLine = errors.New("transit: stop is not on line")

	// ErrEmptyLine aborts construction when a line lists no stops.
	ErrEmptyLine = errors.New("transit: line has no stops")

	// ErrMissingTime aborts construction when consecutive stops have no time.
	ErrMissingTime = errors.New("transit: travel time missing")

	// ErrInvalidTime aborts construction on a negative or NaN travel time.
	ErrInvalidTime = errors.New("transit: travel time must be a non-negative number")
)

// Position is a geographic position in decimal degrees.
type Position struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Tables are the raw inputs of a network.
//
// Times[a][b] is the travel time in minutes between consecutive stops a and
// b; a pair may be recorded under either ordering.
type Tables struct {
	Stops map[string]Position
	Lines map[string][]string
	Times map[string]map[string]float64
}

// Stop is a named station. Lines is sorted with SortLines.
type Stop struct {
	Name     string   `json:"name"`
	Position Position `json:"position"`
	Lines    []string `json:"lines"`
}

// Line is a route with its stops in traversal order.
type Line struct {
	ID    string   `json:"id"`
	Stops []string `json:"stops"`
}

// Options configures New.
type Options struct {
	Logger logger.Logger
}

// Option configures New.
type Option func(*Options)

// WithLogger routes construction warnings to log.
func WithLogger(log logger.Logger) Option {
	return func(o *Options) {
		if log != nil {
			o.Logger = log
		}
	}
}

// Network is the immutable stop/line model plus its travel-time graph.
type Network struct {
	stops map[string]*Stop
	lines map[string]*Line
	order []string // line ids, SortLines order
	graph *core.WeightedGraph[string, float64]
	log   logger.Logger
}
