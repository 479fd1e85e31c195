package dfs_test

import (
	"cmp"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/transitgraph/core"
	"github.com/katalvlaran/transitgraph/dfs"
)

func graph(edges ...[2]string) *core.Graph[string] {
	g := core.NewGraph[string](cmp.Compare[string])
	for _, e := range edges {
		g.AddEdge(e[0], e[1])
	}
	return g
}

// diamond: A–B, A–C, B–D, C–D, D–E, D–F
func diamond() *core.Graph[string] {
	return graph(
		[2]string{"A", "B"}, [2]string{"A", "C"},
		[2]string{"B", "D"}, [2]string{"C", "D"},
		[2]string{"D", "E"}, [2]string{"D", "F"},
	)
}

func TestDFS_Errors(t *testing.T) {
	_, err := dfs.DFS[string](nil, "A")
	assert.ErrorIs(t, err, dfs.ErrGraphNil)

	_, err = dfs.DFS[string](diamond(), "X")
	assert.ErrorIs(t, err, dfs.ErrStartVertexNotFound)
}

func TestDFS_PostOrder(t *testing.T) {
	res, err := dfs.DFS[string](diamond(), "A")
	require.NoError(t, err)

	// A → B → D → C (back to A, D visited) ; D → E ; D → F
	assert.Equal(t, []string{"C", "E", "F", "D", "B", "A"}, res.Order)
	assert.Equal(t, 3, res.Depth["C"])
	assert.Equal(t, "D", res.Parent["C"])
	_, isChild := res.Parent["A"]
	assert.False(t, isChild)
}

func TestDFS_MaxDepthAndFilter(t *testing.T) {
	res, err := dfs.DFS[string](diamond(), "A", dfs.WithMaxDepth[string](1))
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"A", "B", "C"}, res.Order)

	res, err = dfs.DFS[string](diamond(), "A", dfs.WithFilterNeighbor(func(v string) bool {
		return v != "D"
	}))
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "C", "A"}, res.Order)
	assert.Equal(t, 2, res.SkippedNeighbors)
}

func TestDFS_Hooks(t *testing.T) {
	var pre []string
	res, err := dfs.DFS[string](diamond(), "A", dfs.WithOnVisit(func(v string) error {
		pre = append(pre, v)
		return nil
	}))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "D", "C", "E", "F"}, pre)
	assert.Len(t, res.Order, 6)

	boom := errors.New("boom")
	res, err = dfs.DFS[string](diamond(), "A", dfs.WithOnExit(func(v string) error {
		if v == "E" {
			return boom
		}
		return nil
	}))
	assert.ErrorIs(t, err, boom)
	assert.Nil(t, res.Order)
}

func TestDFS_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := dfs.DFS[string](diamond(), "A", dfs.WithContext[string](ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDFS_FullTraversal(t *testing.T) {
	g := diamond()
	g.AddEdge("X", "Y")
	g.AddVertex("Z")

	res, err := dfs.DFS[string](g, "", dfs.WithFullTraversal[string]())
	require.NoError(t, err)
	assert.Len(t, res.Visited, 9)
	assert.Equal(t, []string{"Y", "X", "Z"}, res.Order[6:])
}

func TestComponents(t *testing.T) {
	_, err := dfs.Components[string](nil)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)

	comps, err := dfs.Components[string](graph())
	require.NoError(t, err)
	assert.Empty(t, comps)

	g := diamond()
	g.AddEdge("Y", "X")
	g.AddVertex("M")
	comps, err = dfs.Components[string](g)
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"A", "B", "C", "D", "E", "F"},
		{"M"},
		{"X", "Y"},
	}, comps)
}
