// SPDX-License-Identifier: MIT
// Package core_test contains shared fixtures for the core tests.

package core_test

import (
	"bytes"
	"cmp"
	"math/rand"

	"github.com/katalvlaran/transitgraph/core"
	"github.com/katalvlaran/transitgraph/internal/logger"
)

// Common vertex IDs used across core tests.
const (
	VertexA = "A"
	VertexB = "B"
	VertexC = "C"
	VertexD = "D"
	VertexX = "X"
)

// newStringGraph returns an empty string graph whose warnings land in buf.
func newStringGraph(buf *bytes.Buffer) *core.Graph[string] {
	return core.NewGraph[string](cmp.Compare[string], core.WithLogger(logger.New(buf)))
}

// randomEdges produces n pairs of distinct small integers from a fixed seed.
func randomEdges(seed int64, n, maxVertex int) [][2]int {
	r := rand.New(rand.NewSource(seed))
	out := make([][2]int, 0, n)
	for len(out) < n {
		a, b := r.Intn(maxVertex), r.Intn(maxVertex)
		if a == b {
			continue
		}
		out = append(out, [2]int{a, b})
	}

	return out
}
