// Package hillclimb answers route queries over a heightmap.Grid:
//
//   - ShortestPath: fewest steps from the Start square to the End square.
//   - ScenicPath:   fewest steps to the End square from any lowest square
//     (every Ground 'a' plus Start, which climbs as 'a').
//   - Route:        the concrete squares of a fewest-step route.
//
// Every query is a search.Dijkstra (or search.BFS) run over the grid's
// successor relation. ScenicPath runs one independent search per candidate,
// fanned out over a bounded errgroup; candidates that cannot reach the End
// square are skipped, and the surviving costs are merged by minimum only, so
// the answer does not depend on the worker count.
//
// The grid is shared read-only by all workers; each search owns its frontier
// and distance map.
package hillclimb
