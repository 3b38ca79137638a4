// Package hillclimb is the module root of a height-map route finder: parse
// a character map of elevations, then ask how few steps it takes to climb
// from the start square to the summit.
//
// 🚀 What is in here?
//
//	• heightmap/     map parsing, classified squares, bounds-checked
//	                 neighbours, the climbing rule and route rendering
//	• search/        generic goal-directed Dijkstra and BFS over implicit graphs
//	• hillclimb/     route queries from the start or the best lowest square
//	                 (fanned out over workers), plus full routes
//	• config/        CLI settings: defaults, YAML file, validation
//	• cmd/hillclimb  the command-line entry point
//
// Quick ASCII example:
//
//	Sabqponm
//	abcryxxl
//	accszExk
//	acctuvwj
//	abdefghi
//
// takes 31 steps from S to E, and 29 from the best 'a' square.
//
//	go run github.com/katalvlaran/hillclimb/cmd/hillclimb --render
package hillclimb
