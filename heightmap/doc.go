// Package heightmap treats a rectangular character map of elevations as a
// directed grid graph for hill-climbing route queries.
//
// What:
//
//   - Parse turns text rows of [a-z], 'S' and 'E' into an immutable *Grid.
//   - Grid classifies every square as Start, End or Ground('a'..'z').
//   - Neighbors4 yields orthogonal neighbours clipped to the grid bounds.
//   - CanStep decides whether one square may be entered from another.
//
// Why:
//
//   - Route finding over terrain where climbing is limited but descending is free.
//   - Stepping is asymmetric, so the grid is a directed graph even though
//     adjacency itself is undirected.
//
// Complexity:
//
//   - Parse:      O(W×H), Memory: O(W×H).
//   - CellAt:     O(1).
//   - Neighbors4: O(1), at most 4 positions.
//   - Find:       O(W×H).
//
// Errors:
//
//   - ErrEmptyGrid: input has no rows or no columns.
//   - ErrRaggedGrid: a row's length differs from the first row.
//   - ErrInvalidCharacter: a square is not one of [a-z], 'S', 'E'.
//   - ErrMissingStart / ErrMissingEnd: no 'S' or no 'E' square.
//   - ErrDuplicateStart / ErrDuplicateEnd: more than one 'S' or 'E' square.
package heightmap
