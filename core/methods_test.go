// SPDX-License-Identifier: MIT
// Package core_test verifies Graph method-level contracts.

package core_test

import (
	"bytes"
	"cmp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/transitgraph/core"
)

func TestGraph_AddVertexDuplicateWarns(t *testing.T) {
	var buf bytes.Buffer
	g := newStringGraph(&buf)

	require.True(t, g.AddVertex(VertexA))
	assert.Empty(t, buf.String())

	// Re-adding is a no-op reported through the logger.
	assert.False(t, g.AddVertex(VertexA))
	assert.Contains(t, buf.String(), "vertex already part of the graph")
	assert.Equal(t, 1, g.Order())

	nbrs, err := g.Neighbors(VertexA)
	require.NoError(t, err)
	assert.Empty(t, nbrs)
}

func TestGraph_AddEdgeIdempotentAndSymmetric(t *testing.T) {
	g := newStringGraph(&bytes.Buffer{})
	g.AddEdge(VertexA, VertexB)
	g.AddEdge(VertexB, VertexA)
	g.AddEdge(VertexA, VertexB)

	assert.True(t, g.HasVertex(VertexA))
	assert.True(t, g.HasVertex(VertexB))
	assert.True(t, g.HasEdge(VertexA, VertexB))
	assert.True(t, g.HasEdge(VertexB, VertexA))
	assert.Equal(t, 1, g.Size())
	assert.Equal(t, []core.Edge[string]{{From: VertexA, To: VertexB}}, g.Edges())
}

func TestGraph_RemoveVertex(t *testing.T) {
	var buf bytes.Buffer
	g := newStringGraph(&buf)
	g.AddEdge(VertexA, VertexB)
	g.AddEdge(VertexB, VertexC)
	require.NoError(t, g.SetVertexValue(VertexB, 42))

	require.NoError(t, g.RemoveVertex(VertexB))
	assert.False(t, g.HasVertex(VertexB))
	assert.False(t, g.HasEdge(VertexA, VertexB))

	nbrs, err := g.Neighbors(VertexA)
	require.NoError(t, err)
	assert.Empty(t, nbrs)
	nbrs, err = g.Neighbors(VertexC)
	require.NoError(t, err)
	assert.Empty(t, nbrs)

	// Missing vertex: reported, not fatal, graph unchanged.
	err = g.RemoveVertex(VertexX)
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
	assert.Contains(t, buf.String(), "cannot remove unknown vertex")
	assert.Equal(t, []string{VertexA, VertexC}, g.Vertices())
}

func TestGraph_RemoveEdge(t *testing.T) {
	g := newStringGraph(&bytes.Buffer{})
	g.AddEdge(VertexA, VertexB)
	g.AddEdge(VertexB, VertexC)

	g.RemoveEdge(VertexB, VertexA)
	assert.False(t, g.HasEdge(VertexA, VertexB))
	assert.True(t, g.HasVertex(VertexA), "endpoints survive edge removal")

	// Absent edge is a no-op.
	g.RemoveEdge(VertexA, VertexC)
	g.RemoveEdge(VertexX, VertexD)
	assert.Equal(t, []core.Edge[string]{{From: VertexB, To: VertexC}}, g.Edges())
}

func TestGraph_NeighborsUnknownVertex(t *testing.T) {
	g := newStringGraph(&bytes.Buffer{})
	_, err := g.Neighbors(VertexX)
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
}

func TestGraph_VerticesAndNeighborsSorted(t *testing.T) {
	g := newStringGraph(&bytes.Buffer{})
	g.AddEdge(VertexD, VertexB)
	g.AddEdge(VertexB, VertexA)
	g.AddEdge(VertexC, VertexB)

	assert.Equal(t, []string{VertexA, VertexB, VertexC, VertexD}, g.Vertices())
	nbrs, err := g.Neighbors(VertexB)
	require.NoError(t, err)
	assert.Equal(t, []string{VertexA, VertexC, VertexD}, nbrs)
}

func TestGraph_EdgesCanonical(t *testing.T) {
	g := newStringGraph(&bytes.Buffer{})
	g.AddEdge(VertexC, VertexA)
	g.AddEdge(VertexB, VertexA)
	g.AddEdge(VertexC, VertexB)

	want := []core.Edge[string]{
		{From: VertexA, To: VertexB},
		{From: VertexA, To: VertexC},
		{From: VertexB, To: VertexC},
	}
	assert.Equal(t, want, g.Edges())
}

func TestGraph_VertexValues(t *testing.T) {
	var buf bytes.Buffer
	g := newStringGraph(&buf)
	g.AddVertex(VertexA)

	v, err := g.VertexValue(VertexA)
	require.NoError(t, err)
	assert.Nil(t, v, "unset value defaults to nil")

	require.NoError(t, g.SetVertexValue(VertexA, [2]float64{57.7, 11.9}))
	v, err = g.VertexValue(VertexA)
	require.NoError(t, err)
	assert.Equal(t, [2]float64{57.7, 11.9}, v)

	_, err = g.VertexValue(VertexX)
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
	assert.ErrorIs(t, g.SetVertexValue(VertexX, 1), core.ErrVertexNotFound)
	assert.Contains(t, buf.String(), "cannot set value of an unknown vertex")
}

// TestGraph_SymmetryProperty checks u ∈ N(v) ⇔ v ∈ N(u) and that both
// endpoints of every edge are vertices, over seeded random edge lists.
func TestGraph_SymmetryProperty(t *testing.T) {
	for seed := int64(1); seed <= 25; seed++ {
		g := core.NewGraph[int](cmp.Compare[int])
		for _, e := range randomEdges(seed, 15, 11) {
			g.AddEdge(e[0], e[1])
			assert.True(t, g.HasVertex(e[0]))
			assert.True(t, g.HasVertex(e[1]))
		}
		for _, u := range g.Vertices() {
			nbrs, err := g.Neighbors(u)
			require.NoError(t, err)
			for _, v := range nbrs {
				back, err := g.Neighbors(v)
				require.NoError(t, err)
				assert.Contains(t, back, u, "seed %d: %d-%d not symmetric", seed, u, v)
			}
		}
		for _, e := range g.Edges() {
			assert.LessOrEqual(t, e.From, e.To)
		}
	}
}
