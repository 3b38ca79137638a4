package heightmap

import "strings"

// String renders the grid one row per line, each square as its map character.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow(g.rows * (g.cols + 1))
	for i, c := range g.cells {
		b.WriteRune(c.Rune())
		if (i+1)%g.cols == 0 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// RenderRoute draws route over an otherwise blank map: every square left by
// the route shows the direction taken ('^', 'v', '<', '>'), the End square
// keeps 'E', and untouched squares are '.'.
// Consecutive route entries that are not orthogonally adjacent are skipped.
func (g *Grid) RenderRoute(route []Position) string {
	canvas := make([]byte, len(g.cells))
	for i := range canvas {
		canvas[i] = '.'
	}
	canvas[g.index(g.end)] = 'E'

	for i := 0; i+1 < len(route); i++ {
		from, to := route[i], route[i+1]
		if !g.InBounds(from) || !g.InBounds(to) {
			continue
		}
		var mark byte
		switch {
		case to.Row == from.Row-1 && to.Col == from.Col:
			mark = '^'
		case to.Row == from.Row+1 && to.Col == from.Col:
			mark = 'v'
		case to.Row == from.Row && to.Col == from.Col-1:
			mark = '<'
		case to.Row == from.Row && to.Col == from.Col+1:
			mark = '>'
		default:
			continue
		}
		canvas[g.index(from)] = mark
	}

	var b strings.Builder
	b.Grow(g.rows * (g.cols + 1))
	for row := 0; row < g.rows; row++ {
		b.Write(canvas[row*g.cols : (row+1)*g.cols])
		b.WriteByte('\n')
	}
	return b.String()
}
