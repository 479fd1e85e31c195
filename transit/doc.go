// SPDX-License-Identifier: MIT

// Package transit models a public-transit network built from three tables:
// stop positions, ordered line stop lists, and pairwise travel times.
//
// The network wraps a core.WeightedGraph whose vertices are stop names and
// whose edges are consecutive stops on some line. An edge that occurs as
// (A, B) on one line and (B, A) on another is one edge. Its weight is the
// scheduled travel time in minutes.
//
// Construction aborts on tables that cannot describe a network:
//
//	ErrEmptyLine    a line with no stops
//	ErrUnknownStop  a line refers to a stop missing from the stop table
//	ErrMissingTime  consecutive stops with no time under either ordering
//	ErrInvalidTime  a negative or NaN time on a consecutive pair
//
// Queries never panic and never return default values for bad input:
//
//	LinesViaStop(s)         lines serving s, numeric order; empty if none
//	LinesBetweenStops(a, b) ErrUnknownStop, ErrSameStop
//	TransitionTime(a, b)    direct edge only; ok=false if not adjacent
//	GeoDistance(a, b)       kilometres, 3 decimals; ErrUnknownStop, ErrSameStop
//	TimeAlongLine(l, a, b)  minutes along one line between two of its stops
//
// A Network is immutable after New returns and may be shared by any number
// of goroutines.
package transit
