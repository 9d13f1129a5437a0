package board

// Predicate tests a single value slot. ok is false when the slot is empty.
type Predicate[T any] func(v T, ok bool) bool

// GameBoard is a Board with one optional value of type T per cell.
// Values live in a dense array indexed like the board's cells, so every
// cell always has exactly one slot.
type GameBoard[T any] struct {
	*Board

	values  []T
	present []bool
}

// NewGameBoard creates a width x width board with every slot empty.
func NewGameBoard[T any](width int) (*GameBoard[T], error) {
	b, err := NewBoard(width)
	if err != nil {
		return nil, err
	}
	return &GameBoard[T]{
		Board:   b,
		values:  make([]T, b.Size()),
		present: make([]bool, b.Size()),
	}, nil
}

// MustGameBoard is like NewGameBoard but panics on an invalid width.
func MustGameBoard[T any](width int) *GameBoard[T] {
	g, err := NewGameBoard[T](width)
	if err != nil {
		panic(err)
	}
	return g
}

// Get returns the value at c. ok is false if the slot is empty or c is
// not on the board.
func (g *GameBoard[T]) Get(c Cell) (v T, ok bool) {
	idx, in := g.Index(c)
	if !in || !g.present[idx] {
		return v, false
	}
	return g.values[idx], true
}

// Set stores v at c. Cells outside the board are ignored.
func (g *GameBoard[T]) Set(c Cell, v T) {
	idx, ok := g.Index(c)
	if !ok {
		return
	}
	g.values[idx] = v
	g.present[idx] = true
}

// Clear empties the slot at c. Cells outside the board are ignored.
func (g *GameBoard[T]) Clear(c Cell) {
	idx, ok := g.Index(c)
	if !ok {
		return
	}
	var zero T
	g.values[idx] = zero
	g.present[idx] = false
}

// SetOptional stores *v at c, or clears c when v is nil.
func (g *GameBoard[T]) SetOptional(c Cell, v *T) {
	if v == nil {
		g.Clear(c)
		return
	}
	g.Set(c, *v)
}

// Reset empties every slot.
func (g *GameBoard[T]) Reset() {
	var zero T
	for i := range g.values {
		g.values[i] = zero
		g.present[i] = false
	}
}

// Filter returns the cells whose slot satisfies p, in row-major order.
func (g *GameBoard[T]) Filter(p Predicate[T]) []Cell {
	cells := make([]Cell, 0)
	for idx, c := range g.cells {
		if p(g.values[idx], g.present[idx]) {
			cells = append(cells, c)
		}
	}
	return cells
}

// Find returns the first cell in row-major order whose slot satisfies p.
func (g *GameBoard[T]) Find(p Predicate[T]) (Cell, bool) {
	for idx, c := range g.cells {
		if p(g.values[idx], g.present[idx]) {
			return c, true
		}
	}
	return Cell{}, false
}

// Any reports whether at least one slot satisfies p.
func (g *GameBoard[T]) Any(p Predicate[T]) bool {
	_, ok := g.Find(p)
	return ok
}

// All reports whether every slot satisfies p.
func (g *GameBoard[T]) All(p Predicate[T]) bool {
	for idx := range g.cells {
		if !p(g.values[idx], g.present[idx]) {
			return false
		}
	}
	return true
}

// Count returns the number of slots satisfying p.
func (g *GameBoard[T]) Count(p Predicate[T]) int {
	n := 0
	for idx := range g.cells {
		if p(g.values[idx], g.present[idx]) {
			n++
		}
	}
	return n
}

// Values returns the slots of cells as optional values, nil for empty.
// Each non-nil pointer refers to a copy, so the board is not aliased.
func (g *GameBoard[T]) Values(cells []Cell) []*T {
	vals := make([]*T, len(cells))
	for k, c := range cells {
		if v, ok := g.Get(c); ok {
			vals[k] = &v
		}
	}
	return vals
}

// Fill writes vs into the leading cells in order and clears the rest.
// Extra values beyond len(cells) are dropped.
func (g *GameBoard[T]) Fill(cells []Cell, vs []T) {
	for k, c := range cells {
		if k < len(vs) {
			g.Set(c, vs[k])
		} else {
			g.Clear(c)
		}
	}
}

// Clone returns a deep copy of the board and its values.
func (g *GameBoard[T]) Clone() *GameBoard[T] {
	values := make([]T, len(g.values))
	copy(values, g.values)
	present := make([]bool, len(g.present))
	copy(present, g.present)
	return &GameBoard[T]{
		Board:   g.Board,
		values:  values,
		present: present,
	}
}

// IsEmpty matches empty slots.
func IsEmpty[T any](_ T, ok bool) bool {
	return !ok
}

// IsPresent matches filled slots.
func IsPresent[T any](_ T, ok bool) bool {
	return ok
}

// Equals matches filled slots holding want.
func Equals[T comparable](want T) Predicate[T] {
	return func(v T, ok bool) bool {
		return ok && v == want
	}
}
