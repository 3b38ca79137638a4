// Package heightmap defines core types and sentinel errors
// for the heightmap package of github.com/katalvlaran/hillclimb.
package heightmap

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid construction.
var (
	// ErrEmptyGrid indicates input has no rows or no columns.
	ErrEmptyGrid = errors.New("heightmap: input grid must have at least one row and one column")
	// ErrRaggedGrid indicates rows of differing lengths.
	ErrRaggedGrid = errors.New("heightmap: all rows must have the same length")
	// ErrInvalidCharacter indicates a square outside [a-z], 'S' and 'E'.
	ErrInvalidCharacter = errors.New("heightmap: invalid character")
	// ErrMissingStart indicates the grid holds no 'S' square.
	ErrMissingStart = errors.New("heightmap: grid has no start square")
	// ErrMissingEnd indicates the grid holds no 'E' square.
	ErrMissingEnd = errors.New("heightmap: grid has no end square")
	// ErrDuplicateStart indicates more than one 'S' square.
	ErrDuplicateStart = errors.New("heightmap: grid has more than one start square")
	// ErrDuplicateEnd indicates more than one 'E' square.
	ErrDuplicateEnd = errors.New("heightmap: grid has more than one end square")
)

// Kind classifies a grid square.
type Kind uint8

const (
	// Ground is a plain square carrying an elevation letter 'a'..'z'.
	Ground Kind = iota
	// Start is the unique origin square; it climbs like elevation 'a'.
	Start
	// End is the unique destination square; it is entered like elevation 'z'.
	End
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case Start:
		return "Start"
	case End:
		return "End"
	default:
		return "Ground"
	}
}

const (
	// Lowest is the effective elevation of Start and the lowest Ground letter.
	Lowest byte = 'a'
	// Highest is the effective elevation of End and the highest Ground letter.
	Highest byte = 'z'
)

// Cell is one classified grid square. The zero value is not a valid cell;
// build cells with StartCell, EndCell, GroundCell or ParseCell.
type Cell struct {
	kind  Kind
	level byte // elevation letter, meaningful for Ground only
}

// StartCell returns the Start square.
func StartCell() Cell { return Cell{kind: Start, level: Lowest} }

// EndCell returns the End square.
func EndCell() Cell { return Cell{kind: End, level: Highest} }

// GroundCell returns a Ground square of elevation c.
// It panics if c is outside 'a'..'z'; use ParseCell for untrusted input.
func GroundCell(c byte) Cell {
	if c < Lowest || c > Highest {
		panic(fmt.Sprintf("heightmap: ground elevation %q out of range", c))
	}
	return Cell{kind: Ground, level: c}
}

// ParseCell classifies a single map character.
// Returns ErrInvalidCharacter for anything other than [a-z], 'S' or 'E'.
func ParseCell(r rune) (Cell, error) {
	switch {
	case r == 'S':
		return StartCell(), nil
	case r == 'E':
		return EndCell(), nil
	case r >= rune(Lowest) && r <= rune(Highest):
		return Cell{kind: Ground, level: byte(r)}, nil
	default:
		return Cell{}, fmt.Errorf("%w %q", ErrInvalidCharacter, r)
	}
}

// Kind reports whether the cell is Start, End or Ground.
func (c Cell) Kind() Kind { return c.kind }

// Elevation returns the effective elevation used for stepping:
// Start counts as 'a', End counts as 'z', Ground as its own letter.
func (c Cell) Elevation() byte {
	switch c.kind {
	case Start:
		return Lowest
	case End:
		return Highest
	default:
		return c.level
	}
}

// Rune renders the cell as its map character.
func (c Cell) Rune() rune {
	switch c.kind {
	case Start:
		return 'S'
	case End:
		return 'E'
	default:
		return rune(c.level)
	}
}

// String implements fmt.Stringer.
func (c Cell) String() string {
	if c.kind == Ground {
		return fmt.Sprintf("Ground(%c)", c.level)
	}
	return c.kind.String()
}

// Position addresses a square by 0-based row and column.
// Positions are comparable and serve directly as search vertices.
type Position struct {
	Row, Col int
}

// Pos is shorthand for Position{Row: row, Col: col}.
func Pos(row, col int) Position { return Position{Row: row, Col: col} }

// Less orders positions row-major.
func (p Position) Less(q Position) bool {
	if p.Row != q.Row {
		return p.Row < q.Row
	}
	return p.Col < q.Col
}

// String implements fmt.Stringer as "(row,col)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Grid is a rectangular, row-major matrix of cells with exactly one Start
// and exactly one End. It is immutable once built and safe for concurrent
// readers.
type Grid struct {
	rows, cols int
	cells      []Cell
	start, end Position
}

// offsets4 lists orthogonal moves in the order up, down, left, right.
var offsets4 = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
