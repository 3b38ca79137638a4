package search

import "fmt"

// queueItem pairs a vertex with its depth from the start.
type queueItem[V comparable, C Cost] struct {
	v     V
	depth C
}

// walker encapsulates mutable BFS state.
type walker[V comparable, C Cost] struct {
	opts    Options
	next    NeighborFunc[V, C]
	goal    GoalFunc[V]
	queue   []queueItem[V, C]
	seen    map[V]bool
	prev    map[V]V
	visited int
}

// BFS runs breadth-first search from start and stops at the first dequeued
// vertex for which goal returns true. Every edge produced by next must cost
// exactly 1; with unit costs the first discovery of a vertex is already its
// minimum, so BFS matches Dijkstra without a heap.
//
// Returns the same Result and errors as Dijkstra, plus ErrNonUniformCost.
// Complexity: O(V + E) time, O(V) memory.
func BFS[V comparable, C Cost](start V, next NeighborFunc[V, C], goal GoalFunc[V], opts ...Option) (*Result[V, C], error) {
	if next == nil || goal == nil {
		return nil, ErrNilFunc
	}
	cfg, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	w := &walker[V, C]{
		opts: cfg,
		next: next,
		goal: goal,
		seen: map[V]bool{start: true},
	}
	if cfg.ReturnPath {
		w.prev = make(map[V]V)
	}
	w.queue = append(w.queue, queueItem[V, C]{v: start, depth: 0})

	return w.loop(start)
}

// loop processes the queue until the goal, exhaustion, error or cancellation.
func (w *walker[V, C]) loop(start V) (*Result[V, C], error) {
	for len(w.queue) > 0 {
		select {
		case <-w.opts.Ctx.Done():
			return nil, w.opts.Ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		if float64(item.depth) > w.opts.MaxCost {
			break
		}
		w.visited++

		if err := w.opts.OnVisit(item.v, float64(item.depth)); err != nil {
			return nil, fmt.Errorf("search: OnVisit error at %v: %w", item.v, err)
		}
		if w.goal(item.v) {
			return &Result[V, C]{
				Goal:    item.v,
				Cost:    item.depth,
				Visited: w.visited,
				Path:    reconstruct(w.prev, start, item.v),
			}, nil
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return nil, err
		}
	}

	return nil, ErrNoPath
}

// enqueueNeighbors enqueues each unseen neighbour one level deeper.
func (w *walker[V, C]) enqueueNeighbors(item queueItem[V, C]) error {
	for _, e := range w.next(item.v) {
		if e.Cost != 1 {
			return fmt.Errorf("%w: edge %v→%v cost=%v", ErrNonUniformCost, item.v, e.To, e.Cost)
		}
		if w.seen[e.To] {
			continue
		}
		w.seen[e.To] = true
		if w.prev != nil {
			w.prev[e.To] = item.v
		}
		w.queue = append(w.queue, queueItem[V, C]{v: e.To, depth: item.depth + 1})
	}
	return nil
}
