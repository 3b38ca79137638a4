package search_test

import (
	"fmt"

	"github.com/katalvlaran/hillclimb/search"
)

// ExampleDijkstra finds the cheapest trail between waypoints, where the
// direct trail is steeper than the detour.
//
//	P1───1───P2───3───P3
//	 │       │
//	 4       2
//	 │       │
//	P4───1───P5───5───P6
func ExampleDijkstra() {
	trails := adjacency{}.
		undirected("P1", "P2", 1).
		undirected("P2", "P3", 3).
		undirected("P1", "P4", 4).
		undirected("P4", "P5", 1).
		undirected("P2", "P5", 2).
		undirected("P5", "P6", 5).
		undirected("P3", "P6", 5)

	res, err := search.Dijkstra("P1", trails.next, is("P6"), search.WithReturnPath())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("cost:", res.Cost)
	fmt.Println("path:", res.Path)

	// Output:
	// cost: 8
	// path: [P1 P2 P5 P6]
}

// ExampleBFS counts king moves between two squares of an unbounded board.
func ExampleBFS() {
	type sq struct{ x, y int }
	moves := search.Unit(func(p sq) []sq {
		var out []sq
		for dx := -1; dx <= 1; dx++ {
			for dy := -1; dy <= 1; dy++ {
				if dx != 0 || dy != 0 {
					out = append(out, sq{p.x + dx, p.y + dy})
				}
			}
		}
		return out
	})
	res, _ := search.BFS(sq{0, 0}, moves, func(p sq) bool { return p == sq{3, 5} })
	fmt.Println("king moves:", res.Cost)

	// Output:
	// king moves: 5
}
