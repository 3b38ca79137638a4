package search

import (
	"container/heap"
	"fmt"
)

// Dijkstra runs uniform-cost search from start, expanding vertices with next
// in order of increasing total cost, and stops at the first finalised vertex
// for which goal returns true.
//
// Returns:
//
//   - *Result with the minimum cost (and Path if WithReturnPath was given);
//   - ErrNoPath if the frontier empties (or MaxCost is exceeded) first;
//   - ErrNilFunc, ErrNegativeCost, ErrOptionViolation, the context error,
//     or an OnVisit error otherwise.
//
// A neighbour is relaxed only when its candidate cost strictly improves the
// best known one; a vertex popped at its minimal cost is final. Equal-cost
// frontier entries pop in insertion order, so results are deterministic.
//
// Complexity: O((V + E) log V) time, O(V + E) memory.
func Dijkstra[V comparable, C Cost](start V, next NeighborFunc[V, C], goal GoalFunc[V], opts ...Option) (*Result[V, C], error) {
	if next == nil || goal == nil {
		return nil, ErrNilFunc
	}
	cfg, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	r := &runner[V, C]{
		opts: cfg,
		next: next,
		goal: goal,
		dist: map[V]C{start: 0},
		done: make(map[V]bool),
	}
	if cfg.ReturnPath {
		r.prev = make(map[V]V)
	}
	heap.Push(&r.pq, frontierItem[V, C]{v: start, cost: 0, seq: r.nextSeq()})

	return r.process(start)
}

// runner holds the mutable state for a single Dijkstra execution.
type runner[V comparable, C Cost] struct {
	opts    Options
	next    NeighborFunc[V, C]
	goal    GoalFunc[V]
	dist    map[V]C    // best known cost per discovered vertex
	prev    map[V]V    // predecessor on the best known path; nil unless ReturnPath
	done    map[V]bool // finalised vertices
	pq      frontier[V, C]
	seq     uint64
	visited int
}

func (r *runner[V, C]) nextSeq() uint64 {
	r.seq++
	return r.seq
}

// process pops the cheapest frontier entry until the goal is finalised or
// the frontier is exhausted.
func (r *runner[V, C]) process(start V) (*Result[V, C], error) {
	for r.pq.Len() > 0 {
		// cancellation check (once per pop)
		select {
		case <-r.opts.Ctx.Done():
			return nil, r.opts.Ctx.Err()
		default:
		}

		item := heap.Pop(&r.pq).(frontierItem[V, C])
		u, d := item.v, item.cost

		// skip stale entries left behind by lazy decrease-key
		if r.done[u] {
			continue
		}
		if float64(d) > r.opts.MaxCost {
			break
		}
		r.done[u] = true
		r.visited++

		if err := r.opts.OnVisit(u, float64(d)); err != nil {
			return nil, fmt.Errorf("search: OnVisit error at %v: %w", u, err)
		}
		if r.goal(u) {
			return &Result[V, C]{
				Goal:    u,
				Cost:    d,
				Visited: r.visited,
				Path:    reconstruct(r.prev, start, u),
			}, nil
		}
		if err := r.relax(u, d); err != nil {
			return nil, err
		}
	}

	return nil, ErrNoPath
}

// relax pushes every neighbour of u whose cost through u strictly improves.
func (r *runner[V, C]) relax(u V, d C) error {
	for _, e := range r.next(u) {
		if e.Cost < 0 {
			return fmt.Errorf("%w: edge %v→%v cost=%v", ErrNegativeCost, u, e.To, e.Cost)
		}
		if r.done[e.To] {
			continue
		}
		nd := d + e.Cost
		if float64(nd) > r.opts.MaxCost {
			continue
		}
		if old, seen := r.dist[e.To]; seen && nd >= old {
			continue
		}
		r.dist[e.To] = nd
		if r.prev != nil {
			r.prev[e.To] = u
		}
		heap.Push(&r.pq, frontierItem[V, C]{v: e.To, cost: nd, seq: r.nextSeq()})
	}
	return nil
}

// reconstruct walks prev back from goal to start. A nil prev yields nil.
func reconstruct[V comparable](prev map[V]V, start, goal V) []V {
	if prev == nil {
		return nil
	}
	path := []V{goal}
	for cur := goal; cur != start; {
		p, ok := prev[cur]
		if !ok {
			break
		}
		path = append(path, p)
		cur = p
	}
	// reverse to get start → goal
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// frontierItem is a vertex queued at a tentative cost; seq breaks ties FIFO.
type frontierItem[V comparable, C Cost] struct {
	v    V
	cost C
	seq  uint64
}

// frontier is a min-heap of frontierItem ordered by cost, then seq.
type frontier[V comparable, C Cost] []frontierItem[V, C]

func (pq frontier[V, C]) Len() int { return len(pq) }

func (pq frontier[V, C]) Less(i, j int) bool {
	if pq[i].cost != pq[j].cost {
		return pq[i].cost < pq[j].cost
	}
	return pq[i].seq < pq[j].seq
}

func (pq frontier[V, C]) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *frontier[V, C]) Push(x any) { *pq = append(*pq, x.(frontierItem[V, C])) }

func (pq *frontier[V, C]) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}
