// Package dfs implements depth-first search (single-source and forest) on a
// core.Reader, and connected components built on it.
//
// Neighbors are explored in the graph's vertex order, so Order, Parent and
// the component listing are reproducible for a given graph.
//
// Errors:
//
//   - ErrGraphNil               if g is nil.
//   - ErrStartVertexNotFound    if start is missing in single-source mode.
//   - context.Canceled          if ctx is done.
//   - any error returned by OnVisit or OnExit.
package dfs

import (
	"fmt"

	"github.com/katalvlaran/transitgraph/core"
)

// walker encapsulates state during DFS.
type walker[V comparable] struct {
	graph core.Reader[V]
	opts  Options[V]
	res   *Result[V]
}

// DFS performs depth-first search on g. With WithFullTraversal it covers all
// components in vertex order and start is ignored; otherwise it starts only
// from start.
func DFS[V comparable](g core.Reader[V], start V, opts ...Option[V]) (*Result[V], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions[V]()
	for _, fn := range opts {
		fn(&o)
	}
	if !o.FullTraversal && !g.HasVertex(start) {
		return nil, ErrStartVertexNotFound
	}

	vertices := g.Vertices()
	w := &walker[V]{
		graph: g,
		opts:  o,
		res: &Result[V]{
			Order:   make([]V, 0, len(vertices)),
			Depth:   make(map[V]int, len(vertices)),
			Parent:  make(map[V]V, len(vertices)),
			Visited: make(map[V]bool, len(vertices)),
		},
	}

	if !o.FullTraversal {
		return w.res, w.traverse(start, 0)
	}
	for _, v := range vertices {
		if w.res.Visited[v] {
			continue
		}
		if err := w.traverse(v, 0); err != nil {
			return w.res, err
		}
	}

	return w.res, nil
}

// traverse visits v at depth, recursing to unvisited neighbors.
func (w *walker[V]) traverse(v V, depth int) error {
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	w.res.Visited[v] = true
	w.res.Depth[v] = depth

	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(v); err != nil {
			w.res.Order = nil
			return fmt.Errorf("dfs: OnVisit hook for %v: %w", v, err)
		}
	}

	nbs, err := w.graph.Neighbors(v)
	if err != nil {
		w.res.Order = nil
		return fmt.Errorf("dfs: Neighbors(%v): %w", v, err)
	}
	for _, nb := range nbs {
		if w.opts.MaxDepth >= 0 && depth >= w.opts.MaxDepth {
			break
		}
		if nb == v {
			continue
		}
		if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(nb) {
			w.res.SkippedNeighbors++
			continue
		}
		if w.res.Visited[nb] {
			continue
		}
		w.res.Parent[nb] = v
		if err = w.traverse(nb, depth+1); err != nil {
			return err
		}
	}

	if w.opts.OnExit != nil {
		if err = w.opts.OnExit(v); err != nil {
			w.res.Order = nil
			return fmt.Errorf("dfs: OnExit hook for %v: %w", v, err)
		}
	}
	w.res.Order = append(w.res.Order, v)

	return nil
}
