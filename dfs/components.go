package dfs

import (
	"slices"

	"github.com/katalvlaran/transitgraph/core"
)

// Components partitions the vertices of g into connected components.
// Each component is sorted in vertex order, and components are ordered by
// their least vertex. An empty graph has no components.
func Components[V comparable](g core.Reader[V]) ([][]V, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	var (
		comps [][]V
		cur   []V
	)
	visited := make(map[V]bool)
	collect := WithOnVisit(func(v V) error {
		visited[v] = true
		cur = append(cur, v)
		return nil
	})

	for _, v := range g.Vertices() {
		if visited[v] {
			continue
		}
		cur = nil
		if _, err := DFS(g, v, collect); err != nil {
			return nil, err
		}
		slices.SortFunc(cur, g.Compare)
		comps = append(comps, cur)
	}

	return comps, nil
}
