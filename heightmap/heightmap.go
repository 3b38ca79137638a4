// Package heightmap provides utilities to treat a character elevation map
// as a grid graph. It supports:
//
//   - Parsing text rows into classified cells (Start, End, Ground)
//   - Bounds-checked cell lookup and row-major predicate scans
//   - Four-connected neighbour generation
//
// Squares are addressed by Position{Row, Col}; row 0 is the first input line.
package heightmap

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Parse builds a Grid from newline-separated rows.
// A trailing newline, CRLF line endings and trailing blank lines are tolerated.
// Returns ErrEmptyGrid, ErrRaggedGrid, ErrInvalidCharacter, ErrMissingStart,
// ErrMissingEnd, ErrDuplicateStart or ErrDuplicateEnd; never a partial grid.
// Complexity: O(W×H) time and memory.
func Parse(text string) (*Grid, error) {
	return ParseReader(strings.NewReader(text))
}

// ParseReader is Parse over an io.Reader.
func ParseReader(r io.Reader) (*Grid, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), 1<<20)

	var lines []string
	for sc.Scan() {
		lines = append(lines, strings.TrimRight(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("heightmap: reading input: %w", err)
	}
	// drop trailing blank lines
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) == 0 || len(lines[0]) == 0 {
		return nil, ErrEmptyGrid
	}

	cols := len(lines[0])
	cells := make([][]Cell, len(lines))
	for row, line := range lines {
		if len(line) != cols {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrRaggedGrid, row, len(line), cols)
		}
		cells[row] = make([]Cell, cols)
		for col, ch := range []byte(line) {
			c, err := ParseCell(rune(ch))
			if err != nil {
				return nil, fmt.Errorf("%w at %v", err, Pos(row, col))
			}
			cells[row][col] = c
		}
	}

	return build(cells)
}

// New constructs a Grid from pre-classified cells, applying the same
// validation as Parse. It deep-copies the input to ensure immutability.
// Complexity: O(W×H) time and memory.
func New(cells [][]Cell) (*Grid, error) {
	if len(cells) == 0 || len(cells[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	cols := len(cells[0])
	for row, r := range cells {
		if len(r) != cols {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrRaggedGrid, row, len(r), cols)
		}
		for col, c := range r {
			if c.kind == Ground && (c.level < Lowest || c.level > Highest) {
				return nil, fmt.Errorf("%w %q at %v", ErrInvalidCharacter, c.level, Pos(row, col))
			}
		}
	}

	return build(cells)
}

// build flattens rectangular, classified rows and locates Start and End.
func build(cells [][]Cell) (*Grid, error) {
	g := &Grid{
		rows:  len(cells),
		cols:  len(cells[0]),
		cells: make([]Cell, 0, len(cells)*len(cells[0])),
	}
	var haveStart, haveEnd bool
	for row, r := range cells {
		for col, c := range r {
			switch c.kind {
			case Start:
				if haveStart {
					return nil, fmt.Errorf("%w: %v and %v", ErrDuplicateStart, g.start, Pos(row, col))
				}
				g.start, haveStart = Pos(row, col), true
			case End:
				if haveEnd {
					return nil, fmt.Errorf("%w: %v and %v", ErrDuplicateEnd, g.end, Pos(row, col))
				}
				g.end, haveEnd = Pos(row, col), true
			}
			g.cells = append(g.cells, c)
		}
	}
	if !haveStart {
		return nil, ErrMissingStart
	}
	if !haveEnd {
		return nil, ErrMissingEnd
	}

	return g, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Start returns the position of the unique Start square.
func (g *Grid) Start() Position { return g.start }

// End returns the position of the unique End square.
func (g *Grid) End() Position { return g.end }

// InBounds reports whether p lies within the grid.
// Complexity: O(1).
func (g *Grid) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < g.rows && p.Col >= 0 && p.Col < g.cols
}

// CellAt returns the cell at p, or false if p is out of bounds.
// Complexity: O(1).
func (g *Grid) CellAt(p Position) (Cell, bool) {
	if !g.InBounds(p) {
		return Cell{}, false
	}
	return g.cells[g.index(p)], true
}

// Find returns every position whose cell satisfies pred, in row-major order.
// Complexity: O(W×H).
func (g *Grid) Find(pred func(Cell) bool) []Position {
	var out []Position
	for i, c := range g.cells {
		if pred(c) {
			out = append(out, g.Coordinate(i))
		}
	}
	return out
}

// Neighbors4 returns the in-bounds orthogonal neighbours of p in the order
// up, down, left, right. No wraparound, no diagonals.
// Complexity: O(1).
func (g *Grid) Neighbors4(p Position) []Position {
	out := make([]Position, 0, len(offsets4))
	for _, d := range offsets4 {
		q := Pos(p.Row+d[0], p.Col+d[1])
		if g.InBounds(q) {
			out = append(out, q)
		}
	}
	return out
}

// Successors returns the neighbours of p that rule allows entering from p.
// A nil rule means CanStep. Out-of-bounds p yields nil.
func (g *Grid) Successors(p Position, rule StepRule) []Position {
	from, ok := g.CellAt(p)
	if !ok {
		return nil
	}
	if rule == nil {
		rule = CanStep
	}
	out := make([]Position, 0, len(offsets4))
	for _, q := range g.Neighbors4(p) {
		if rule(from, g.cells[g.index(q)]) {
			out = append(out, q)
		}
	}
	return out
}

// index maps p to a row-major index: Row*cols + Col.
// Complexity: O(1).
func (g *Grid) index(p Position) int {
	return p.Row*g.cols + p.Col
}

// Coordinate converts a row-major index back to a Position.
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) Position {
	return Pos(idx/g.cols, idx%g.cols)
}
