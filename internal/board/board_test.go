package board_test

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/vovakirdan/squareboard/internal/board"
)

func TestNewBoardRejectsNonPositiveWidth(t *testing.T) {
	for _, w := range []int{0, -1, -10} {
		if _, err := board.NewBoard(w); !errors.Is(err, board.ErrInvalidWidth) {
			t.Errorf("NewBoard(%d) error = %v, expected ErrInvalidWidth", w, err)
		}
	}
}

func TestLookupValidCoordinates(t *testing.T) {
	for width := 1; width <= 5; width++ {
		b := board.MustBoard(width)
		for i := 1; i <= width; i++ {
			for j := 1; j <= width; j++ {
				c, ok := b.Lookup(i, j)
				if !ok {
					t.Fatalf("width %d: Lookup(%d, %d) returned no cell", width, i, j)
				}
				if c.I != i || c.J != j {
					t.Errorf("width %d: Lookup(%d, %d) = %v", width, i, j, c)
				}
				again, _ := b.Lookup(i, j)
				if again != c {
					t.Errorf("width %d: repeated Lookup(%d, %d) = %v, expected %v", width, i, j, again, c)
				}
				strict, err := b.Cell(i, j)
				if err != nil || strict != c {
					t.Errorf("width %d: Cell(%d, %d) = %v, %v", width, i, j, strict, err)
				}
			}
		}
	}
}

func TestLookupOutOfRange(t *testing.T) {
	b := board.MustBoard(4)

	tests := []struct {
		name string
		i, j int
	}{
		{"row past width", 5, 1},
		{"column past width", 1, 5},
		{"both past width", 5, 5},
		{"zero row", 0, 2},
		{"zero column", 2, 0},
		{"negative", -1, -1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if c, ok := b.Lookup(tc.i, tc.j); ok {
				t.Errorf("Lookup(%d, %d) = %v, expected no cell", tc.i, tc.j, c)
			}

			_, err := b.Cell(tc.i, tc.j)
			if !errors.Is(err, board.ErrInvalidCoordinate) {
				t.Fatalf("Cell(%d, %d) error = %v, expected ErrInvalidCoordinate", tc.i, tc.j, err)
			}

			var coordErr *board.CoordinateError
			if !errors.As(err, &coordErr) {
				t.Fatalf("Cell(%d, %d) error is %T, expected *CoordinateError", tc.i, tc.j, err)
			}
			if coordErr.I != tc.i || coordErr.J != tc.j || coordErr.Width != 4 {
				t.Errorf("CoordinateError = %+v, expected I=%d J=%d Width=4", coordErr, tc.i, tc.j)
			}
		})
	}
}

func TestAllCells(t *testing.T) {
	b := board.MustBoard(3)
	cells := b.AllCells()

	if len(cells) != 9 {
		t.Fatalf("AllCells() returned %d cells, expected 9", len(cells))
	}

	seen := make(map[board.Cell]bool)
	for _, c := range cells {
		if seen[c] {
			t.Errorf("duplicate cell %v", c)
		}
		seen[c] = true
		if !b.Contains(c) {
			t.Errorf("cell %v is off the board", c)
		}
	}

	if !reflect.DeepEqual(cells, b.AllCells()) {
		t.Error("AllCells() order is not stable")
	}
	if cells[0] != board.C(1, 1) || cells[1] != board.C(1, 2) || cells[3] != board.C(2, 1) {
		t.Errorf("AllCells() is not row-major: %v", cells)
	}

	// Mutating the result must not affect the board.
	cells[0] = board.C(9, 9)
	if b.AllCells()[0] != board.C(1, 1) {
		t.Error("AllCells() exposes internal storage")
	}
}

func TestRow(t *testing.T) {
	b := board.MustBoard(4)

	tests := []struct {
		name     string
		i        int
		js       board.Span
		expected []board.Cell
	}{
		{
			name:     "ascending",
			i:        2,
			js:       board.Full(4),
			expected: []board.Cell{{2, 1}, {2, 2}, {2, 3}, {2, 4}},
		},
		{
			name:     "descending",
			i:        2,
			js:       board.FullReversed(4),
			expected: []board.Cell{{2, 4}, {2, 3}, {2, 2}, {2, 1}},
		},
		{
			name:     "partial",
			i:        1,
			js:       board.Range(2, 3),
			expected: []board.Cell{{1, 2}, {1, 3}},
		},
		{
			name:     "out of range values skipped",
			i:        3,
			js:       board.Range(3, 6),
			expected: []board.Cell{{3, 3}, {3, 4}},
		},
		{
			name:     "descending through zero",
			i:        3,
			js:       board.Range(2, -1),
			expected: []board.Cell{{3, 2}, {3, 1}},
		},
		{
			name:     "stride",
			i:        4,
			js:       board.Range(1, 4).By(2),
			expected: []board.Cell{{4, 1}, {4, 3}},
		},
		{
			name:     "row out of range",
			i:        5,
			js:       board.Full(4),
			expected: []board.Cell{},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := b.Row(tc.i, tc.js)
			if !reflect.DeepEqual(result, tc.expected) {
				t.Errorf("Row(%d, %+v) = %v, expected %v", tc.i, tc.js, result, tc.expected)
			}
		})
	}
}

func TestColumn(t *testing.T) {
	b := board.MustBoard(3)

	result := b.Column(board.Full(3), 2)
	expected := []board.Cell{{1, 2}, {2, 2}, {3, 2}}
	if !reflect.DeepEqual(result, expected) {
		t.Errorf("Column(1..3, 2) = %v, expected %v", result, expected)
	}

	result = b.Column(board.Range(5, 1), 1)
	expected = []board.Cell{{3, 1}, {2, 1}, {1, 1}}
	if !reflect.DeepEqual(result, expected) {
		t.Errorf("Column(5 downTo 1, 1) = %v, expected %v", result, expected)
	}

	if got := b.Column(board.Full(3), 4); len(got) != 0 {
		t.Errorf("Column(1..3, 4) = %v, expected empty", got)
	}
}

func TestRowColumnExtremeRanges(t *testing.T) {
	b := board.MustBoard(4)

	tests := []struct {
		name     string
		got      func() []board.Cell
		expected []board.Cell
	}{
		{
			name:     "row up to MaxInt",
			got:      func() []board.Cell { return b.Row(1, board.Range(1, math.MaxInt)) },
			expected: []board.Cell{{1, 1}, {1, 2}, {1, 3}, {1, 4}},
		},
		{
			name:     "column from MinInt",
			got:      func() []board.Cell { return b.Column(board.Range(math.MinInt, 4), 1) },
			expected: []board.Cell{{1, 1}, {2, 1}, {3, 1}, {4, 1}},
		},
		{
			name:     "row MaxInt down to MinInt",
			got:      func() []board.Cell { return b.Row(2, board.Range(math.MaxInt, math.MinInt)) },
			expected: []board.Cell{{2, 4}, {2, 3}, {2, 2}, {2, 1}},
		},
		{
			name:     "stride phase kept from far below",
			got:      func() []board.Cell { return b.Row(3, board.Range(-9, math.MaxInt).By(2)) },
			expected: []board.Cell{{3, 1}, {3, 3}},
		},
		{
			name:     "descending stride phase kept from far above",
			got:      func() []board.Cell { return b.Column(board.Range(10, 1).By(3), 2) },
			expected: []board.Cell{{4, 2}, {1, 2}},
		},
		{
			name:     "range entirely above the board",
			got:      func() []board.Cell { return b.Row(1, board.Range(5, math.MaxInt)) },
			expected: []board.Cell{},
		},
		{
			name:     "span ends before its next value reaches the board",
			got:      func() []board.Cell { return b.Row(1, board.Range(-3, 1).By(3)) },
			expected: []board.Cell{},
		},
		{
			name:     "stride jumps over the board",
			got:      func() []board.Cell { return b.Row(1, board.Range(0, 10).By(5)) },
			expected: []board.Cell{},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := tc.got()
			if !reflect.DeepEqual(result, tc.expected) {
				t.Errorf("got %v, expected %v", result, tc.expected)
			}
		})
	}
}

func TestNeighbour(t *testing.T) {
	b := board.MustBoard(4)

	tests := []struct {
		name     string
		from     board.Cell
		dir      board.Direction
		expected board.Cell
		ok       bool
	}{
		{"interior up", board.C(2, 2), board.Up, board.C(1, 2), true},
		{"interior down", board.C(2, 2), board.Down, board.C(3, 2), true},
		{"interior left", board.C(2, 2), board.Left, board.C(2, 1), true},
		{"interior right", board.C(2, 2), board.Right, board.C(2, 3), true},
		{"top edge up", board.C(1, 3), board.Up, board.Cell{}, false},
		{"bottom edge down", board.C(4, 3), board.Down, board.Cell{}, false},
		{"left edge left", board.C(3, 1), board.Left, board.Cell{}, false},
		{"right edge right", board.C(3, 4), board.Right, board.Cell{}, false},
		{"off-board origin", board.C(5, 5), board.Up, board.Cell{}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result, ok := b.Neighbour(tc.from, tc.dir)
			if ok != tc.ok || result != tc.expected {
				t.Errorf("Neighbour(%v, %v) = %v, %v; expected %v, %v",
					tc.from, tc.dir, result, ok, tc.expected, tc.ok)
			}
		})
	}
}

func TestLine(t *testing.T) {
	b := board.MustBoard(3)

	tests := []struct {
		dir      board.Direction
		k        int
		expected []board.Cell
	}{
		{board.Left, 1, []board.Cell{{1, 1}, {1, 2}, {1, 3}}},
		{board.Right, 1, []board.Cell{{1, 3}, {1, 2}, {1, 1}}},
		{board.Up, 2, []board.Cell{{1, 2}, {2, 2}, {3, 2}}},
		{board.Down, 2, []board.Cell{{3, 2}, {2, 2}, {1, 2}}},
		{board.Left, 4, []board.Cell{}},
	}

	for _, tc := range tests {
		result := b.Line(tc.dir, tc.k)
		if !reflect.DeepEqual(result, tc.expected) {
			t.Errorf("Line(%v, %d) = %v, expected %v", tc.dir, tc.k, result, tc.expected)
		}
	}

	if n := len(b.Lines(board.Up)); n != 3 {
		t.Errorf("Lines(Up) returned %d lines, expected 3", n)
	}
}

func TestIndex(t *testing.T) {
	b := board.MustBoard(4)

	idx, ok := b.Index(board.C(3, 2))
	if !ok || idx != 9 {
		t.Errorf("Index((3, 2)) = %d, %v; expected 9, true", idx, ok)
	}
	if _, ok := b.Index(board.C(0, 1)); ok {
		t.Error("Index((0, 1)) should be out of range")
	}
}
