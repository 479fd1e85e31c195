// Package dijkstra implements Dijkstra's shortest-path algorithm.
//
// Notes on implementation choices:
//
//   - We use a "lazy" decrease-key strategy: pushing duplicates into the heap
//     and ignoring stale entries when popped.
//   - Heap order is (distance, vertex order), which reproduces the
//     linear-scan tie-break exactly.
//   - Negative costs are detected during relaxation; the cost function is
//     opaque, so there is nothing to pre-scan.
package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/transitgraph/core"
)

// Run computes shortest paths from source to every reachable vertex of g.
//
// cost prices each traversal u→v; nil means UnitCost. The stored weights of
// g are only consulted if cost reads them (see WeightCost).
//
// Preconditions and validation (in order):
//  1. Options must be valid (ErrBadMaxDistance).
//  2. g must be non-nil (ErrNilGraph).
//  3. g must contain source (ErrVertexNotFound).
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Run[V comparable](g core.Reader[V], source V, cost CostFunc[V], opts ...Option) (*Result[V], error) {
	// 1) Build and validate Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	// 2) Validate graph and source
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.HasVertex(source) {
		return nil, fmt.Errorf("%w: %v", ErrVertexNotFound, source)
	}
	if cost == nil {
		cost = UnitCost[V]
	}

	// 3) Initialize runner with all maps and the heap.
	r := &runner[V]{
		g:       g,
		cost:    cost,
		options: cfg,
		dist:    make(map[V]float64),
		prev:    make(map[V]V),
		visited: make(map[V]bool),
		pq:      nodePQ[V]{compare: g.Compare},
	}
	r.init(source)
	if err := r.process(); err != nil {
		return nil, err
	}

	return r.result(source), nil
}

// runner holds the mutable state for a single execution.
type runner[V comparable] struct {
	g       core.Reader[V]
	cost    CostFunc[V]
	options Options
	dist    map[V]float64 // tentative distance; absent means +Inf
	prev    map[V]V       // predecessor on the recorded shortest path
	visited map[V]bool    // finalized vertices
	order   []V           // finalization order
	pq      nodePQ[V]
}

// init seeds the heap with the source at distance zero.
func (r *runner[V]) init(source V) {
	r.dist[source] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, nodeItem[V]{id: source, dist: 0})
}

// process repeatedly finalizes the closest unvisited vertex and relaxes its
// neighbors until the heap is exhausted or MaxDistance is exceeded.
func (r *runner[V]) process() error {
	for r.pq.Len() > 0 {
		if err := r.options.Ctx.Err(); err != nil {
			return fmt.Errorf("dijkstra: search aborted: %w", err)
		}

		item := heap.Pop(&r.pq).(nodeItem[V])
		u := item.id
		// Skip stale heap entries.
		if r.visited[u] || item.dist > r.dist[u] {
			continue
		}
		if item.dist > r.options.MaxDistance {
			break
		}

		r.visited[u] = true
		r.order = append(r.order, u)
		if err := r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// relax tries to improve the distance of every unvisited neighbor of u.
// Assumes r.dist[u] is final.
func (r *runner[V]) relax(u V) error {
	neighbors, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get neighbors of %v: %w", u, err)
	}

	for _, v := range neighbors {
		if r.visited[v] {
			continue
		}
		c := r.cost(u, v)
		if c < 0 || math.IsNaN(c) {
			return fmt.Errorf("%w: edge %v→%v cost=%v", ErrNegativeCost, u, v, c)
		}
		if math.IsInf(c, 1) {
			continue // impassable
		}

		newDist := r.dist[u] + c
		if newDist > r.options.MaxDistance {
			continue
		}
		// Strictly shorter only, so the first finalized predecessor wins ties.
		if cur, seen := r.dist[v]; seen && newDist >= cur {
			continue
		}
		r.dist[v] = newDist
		r.prev[v] = u
		heap.Push(&r.pq, nodeItem[V]{id: v, dist: newDist})
	}

	return nil
}

// result rebuilds one path per finalized vertex. Paths are built in
// finalization order so each one extends its predecessor's path.
func (r *runner[V]) result(source V) *Result[V] {
	res := &Result[V]{
		Source: source,
		Paths:  make(map[V][]V, len(r.order)),
	}
	if r.options.Totals {
		res.Totals = make(map[V]float64, len(r.order))
	}

	for _, v := range r.order {
		var path []V
		if v == source {
			path = []V{source}
		} else {
			parent := res.Paths[r.prev[v]]
			path = make([]V, len(parent), len(parent)+1)
			copy(path, parent)
			path = append(path, v)
		}
		res.Paths[v] = path
		if res.Totals != nil {
			res.Totals[v] = r.dist[v]
		}
	}

	return res
}

// nodeItem is a heap entry: a vertex and the distance it was pushed with.
type nodeItem[V comparable] struct {
	id   V
	dist float64
}

// nodePQ is a min-heap ordered by distance, then by the graph's vertex order.
type nodePQ[V comparable] struct {
	items   []nodeItem[V]
	compare func(a, b V) int
}

func (pq nodePQ[V]) Len() int { return len(pq.items) }

func (pq nodePQ[V]) Less(i, j int) bool {
	if pq.items[i].dist != pq.items[j].dist {
		return pq.items[i].dist < pq.items[j].dist
	}
	return pq.compare(pq.items[i].id, pq.items[j].id) < 0
}

func (pq nodePQ[V]) Swap(i, j int) { pq.items[i], pq.items[j] = pq.items[j], pq.items[i] }

// Push adds x, which must be a nodeItem[V].
func (pq *nodePQ[V]) Push(x any) { pq.items = append(pq.items, x.(nodeItem[V])) }

// Pop removes and returns the last element (heap.Pop moves the minimum there).
func (pq *nodePQ[V]) Pop() any {
	old := pq.items
	n := len(old)
	item := old[n-1]
	pq.items = old[:n-1]

	return item
}
