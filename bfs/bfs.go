// Package bfs provides breadth-first search over a core.Reader,
// returning unweighted distances, parent links, and visit order.
//
// Because core.Reader.Neighbors returns vertices in the graph's order and
// BFS enqueues them in that order, the visit sequence is reproducible.
package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/transitgraph/core"
)

type queueItem[V comparable] struct {
	id    V
	depth int
}

// walker encapsulates mutable BFS state.
type walker[V comparable] struct {
	graph   core.Reader[V]
	opts    Options
	ctx     context.Context
	queue   []queueItem[V]
	visited map[V]bool
	res     *Result[V]
}

// BFS runs breadth-first search on g starting from start.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, or the context error on cancellation.
func BFS[V comparable](g core.Reader[V], start V, opts ...Option) (*Result[V], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasVertex(start) {
		return nil, ErrStartVertexNotFound
	}

	w := &walker[V]{
		graph:   g,
		opts:    o,
		ctx:     o.Ctx,
		visited: make(map[V]bool),
		res: &Result[V]{
			Depth:  make(map[V]int),
			Parent: make(map[V]V),
		},
	}
	w.enqueue(start, 0)
	w.res.Depth[start] = 0

	return w.res, w.loop()
}

// Reachable returns every vertex reachable from start, in visit order.
func Reachable[V comparable](g core.Reader[V], start V) ([]V, error) {
	res, err := BFS(g, start)
	if err != nil {
		return nil, err
	}

	return res.Order, nil
}

// Connected reports whether every vertex of g is reachable from the first
// vertex. An empty graph is connected.
func Connected[V comparable](g core.Reader[V]) (bool, error) {
	if g == nil {
		return false, ErrGraphNil
	}
	vs := g.Vertices()
	if len(vs) == 0 {
		return true, nil
	}
	order, err := Reachable(g, vs[0])
	if err != nil {
		return false, err
	}

	return len(order) == len(vs), nil
}

func (w *walker[V]) enqueue(id V, d int) {
	w.visited[id] = true
	w.queue = append(w.queue, queueItem[V]{id: id, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker[V]) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		w.res.Order = append(w.res.Order, item.id)

		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}
	return nil
}

// enqueueNeighbors enqueues each unseen neighbor within MaxDepth.
func (w *walker[V]) enqueueNeighbors(item queueItem[V]) error {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return nil
	}
	neighbors, err := w.graph.Neighbors(item.id)
	if err != nil {
		return fmt.Errorf("bfs: failed to get neighbors of %v: %w", item.id, err)
	}
	for _, nbr := range neighbors {
		if w.visited[nbr] {
			continue
		}
		w.enqueue(nbr, nextDepth)
		w.res.Depth[nbr] = nextDepth
		w.res.Parent[nbr] = item.id
	}
	return nil
}
