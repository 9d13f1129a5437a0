package board

import "fmt"

// SquareBoard is the read-only grid contract shared by Board and GameBoard.
type SquareBoard interface {
	// Width returns the side length. Valid coordinates are [1..Width] on both axes.
	Width() int

	// Lookup returns the cell at (i, j), or false when either index is out of range.
	Lookup(i, j int) (Cell, bool)

	// Cell returns the cell at (i, j) or a *CoordinateError.
	// Prefer Lookup for speculative queries.
	Cell(i, j int) (Cell, error)

	// AllCells returns every cell exactly once, in row-major order.
	AllCells() []Cell

	// Row returns the cells of row i for each j in js, in span order.
	// Out-of-range j values are skipped.
	Row(i int, js Span) []Cell

	// Column returns the cells of column j for each i in is, in span order.
	// Out-of-range i values are skipped.
	Column(is Span, j int) []Cell

	// Neighbour returns the adjacent cell in direction d, or false at the edge.
	Neighbour(c Cell, d Direction) (Cell, bool)
}

var (
	_ SquareBoard = (*Board)(nil)
	_ SquareBoard = (*GameBoard[int])(nil)
)

// Board is a square grid of cells without values.
// All cells are materialised at construction and stored in row-major
// order: index = (i-1)*width + (j-1).
type Board struct {
	width int
	cells []Cell
}

// NewBoard creates a width x width board.
func NewBoard(width int) (*Board, error) {
	if width < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidWidth, width)
	}

	b := &Board{
		width: width,
		cells: make([]Cell, 0, width*width),
	}
	for i := 1; i <= width; i++ {
		for j := 1; j <= width; j++ {
			b.cells = append(b.cells, Cell{I: i, J: j})
		}
	}
	return b, nil
}

// MustBoard is like NewBoard but panics on an invalid width.
func MustBoard(width int) *Board {
	b, err := NewBoard(width)
	if err != nil {
		panic(err)
	}
	return b
}

// Width returns the side length of the board.
func (b *Board) Width() int {
	return b.width
}

// Size returns the number of cells (width squared).
func (b *Board) Size() int {
	return len(b.cells)
}

// inRange reports whether k is a valid 1-based index on one axis.
func (b *Board) inRange(k int) bool {
	return k >= 1 && k <= b.width
}

// Contains reports whether c lies on the board.
func (b *Board) Contains(c Cell) bool {
	return b.inRange(c.I) && b.inRange(c.J)
}

// Index converts a cell to its row-major offset.
func (b *Board) Index(c Cell) (int, bool) {
	if !b.Contains(c) {
		return 0, false
	}
	return (c.I-1)*b.width + (c.J - 1), true
}

// Lookup returns the cell at (i, j) if both indices are in 1..width.
func (b *Board) Lookup(i, j int) (Cell, bool) {
	idx, ok := b.Index(Cell{I: i, J: j})
	if !ok {
		return Cell{}, false
	}
	return b.cells[idx], true
}

// Cell returns the cell at (i, j).
// Returns a *CoordinateError if either index is outside 1..width.
func (b *Board) Cell(i, j int) (Cell, error) {
	c, ok := b.Lookup(i, j)
	if !ok {
		return Cell{}, &CoordinateError{I: i, J: j, Width: b.width}
	}
	return c, nil
}

// AllCells returns all cells in row-major order.
// The returned slice is a copy.
func (b *Board) AllCells() []Cell {
	cells := make([]Cell, len(b.cells))
	copy(cells, b.cells)
	return cells
}

// Row returns the cells (i, j) for each j in js.
func (b *Board) Row(i int, js Span) []Cell {
	if !b.inRange(i) {
		return []Cell{}
	}
	cells := make([]Cell, 0, b.width)
	in, ok := js.Clamp(1, b.width)
	if !ok {
		return cells
	}
	in.each(func(j int) {
		cells = append(cells, b.cells[(i-1)*b.width+(j-1)])
	})
	return cells
}

// Column returns the cells (i, j) for each i in is.
func (b *Board) Column(is Span, j int) []Cell {
	if !b.inRange(j) {
		return []Cell{}
	}
	cells := make([]Cell, 0, b.width)
	in, ok := is.Clamp(1, b.width)
	if !ok {
		return cells
	}
	in.each(func(i int) {
		cells = append(cells, b.cells[(i-1)*b.width+(j-1)])
	})
	return cells
}

// Neighbour returns the cell one step from c in direction d.
func (b *Board) Neighbour(c Cell, d Direction) (Cell, bool) {
	if !b.Contains(c) {
		return Cell{}, false
	}
	n := c.Step(d)
	return b.Lookup(n.I, n.J)
}

// Line returns row or column k ordered from the edge that d points at.
// Left and Right select row k, Up and Down select column k:
//
//	Left:  (k, 1) .. (k, width)
//	Right: (k, width) .. (k, 1)
//	Up:    (1, k) .. (width, k)
//	Down:  (width, k) .. (1, k)
//
// Returns an empty slice if k is out of range.
func (b *Board) Line(d Direction, k int) []Cell {
	switch d {
	case Left:
		return b.Row(k, Full(b.width))
	case Right:
		return b.Row(k, FullReversed(b.width))
	case Up:
		return b.Column(Full(b.width), k)
	case Down:
		return b.Column(FullReversed(b.width), k)
	default:
		return []Cell{}
	}
}

// Lines returns Line(d, k) for every k in 1..width.
func (b *Board) Lines(d Direction) [][]Cell {
	lines := make([][]Cell, 0, b.width)
	for k := 1; k <= b.width; k++ {
		lines = append(lines, b.Line(d, k))
	}
	return lines
}
