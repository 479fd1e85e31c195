// SPDX-License-Identifier: MIT

// Package lineaware derives a (stop, line) graph from a transit.Network and
// computes optimal routes that penalize changing lines.
//
// Each vertex is a StopLine: one stop as served by one line. Two kinds of
// edges exist:
//
//	ride      (a, L) – (b, L) for stops a, b consecutive on line L,
//	          weighted Hop{Time: travel time, Distance: geo distance}
//	transfer  (s, L1) – (s, L2) for every pair of lines serving s,
//	          weighted Hop{} (zero time, zero distance)
//
// OptimalRoute runs one Dijkstra search per line serving the origin, pricing
// each ride by the chosen Metric of its Hop and each transfer at zero. Every
// path found to a line serving the destination is then charged the change
// penalty once per transfer on it, and the cheapest candidate wins. Equal
// adjusted totals keep the candidate found first, enumerating origin lines
// and then destination lines in line order.
//
// WithPenaltyInSearch moves the penalty onto the transfer edges so the search
// itself avoids changes, and drops transfers at either end of the path.
//
// A derived Network is read-only. The package-level OptimalRoute, Quickest
// and Shortest derive a fresh one per call.
package lineaware
