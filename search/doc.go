// Package search implements goal-directed uniform-cost search over implicit
// graphs: the caller supplies a start vertex, a neighbour-expansion function
// and a success predicate instead of a materialised graph.
//
// What:
//
//   - Dijkstra: min-heap frontier, any non-negative edge costs.
//   - BFS: FIFO frontier, every edge must cost exactly 1.
//   - Both return the minimum total cost to the first vertex satisfying the
//     goal predicate, and optionally the path that achieves it.
//
// Why:
//
//   - Grids, state machines and puzzles rarely exist as explicit edge lists;
//     expanding neighbours lazily keeps memory proportional to what is explored.
//   - Vertices are any comparable Go value, so (row, col) structs work as-is.
//
// Complexity:
//
//   - Dijkstra: O((V + E) log V), Memory: O(V + E) (lazy decrease-key).
//   - BFS:      O(V + E),       Memory: O(V).
//
// Options:
//
//   - WithContext:    cancellation, checked once per frontier pop.
//   - WithMaxCost:    do not expand vertices beyond this total cost.
//   - WithReturnPath: record predecessors and fill Result.Path.
//   - WithOnVisit:    hook run when a vertex is finalised; an error aborts.
//
// Errors:
//
//   - ErrNoPath:          the frontier emptied before the goal was met.
//   - ErrNilFunc:         nil neighbour or goal function.
//   - ErrNegativeCost:    an expanded edge had negative cost.
//   - ErrNonUniformCost:  BFS saw an edge whose cost is not 1.
//   - ErrOptionViolation: an invalid Option was supplied.
//
// Each call owns all of its state; concurrent calls never interfere as long
// as the supplied functions are safe for concurrent use.
package search
