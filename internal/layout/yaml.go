// Package layout loads board fixtures from YAML files.
// A layout describes a square board and the values of its filled cells.
// This package depends on board but board does not depend on layout.
package layout

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/squareboard/internal/board"
)

// ErrInvalidLayout is wrapped by every structural layout error.
var ErrInvalidLayout = errors.New("layout: invalid layout")

// YAMLLayout represents the YAML structure for a layout file.
type YAMLLayout struct {
	ID       string            `yaml:"id"`
	Name     string            `yaml:"name"`
	Width    int               `yaml:"width"`
	Rows     []string          `yaml:"rows,omitempty"`
	Cells    []YAMLCell        `yaml:"cells,omitempty"`
	Metadata map[string]string `yaml:"metadata,omitempty"`
}

// YAMLCell represents a single cell override in YAML format.
// V is taken literally, so "", "." and "_" are values here. Clear empties
// the cell instead and ignores V.
type YAMLCell struct {
	I     int    `yaml:"i"`
	J     int    `yaml:"j"`
	V     string `yaml:"v"`
	Clear bool   `yaml:"clear,omitempty"`
}

// Layout is a parsed layout ready for use.
type Layout struct {
	ID       string
	Name     string
	Width    int
	Values   map[board.Cell]string
	Metadata map[string]string
	FilePath string
}

// IsAbsent reports whether a row token marks an empty cell.
func IsAbsent(token string) bool {
	return token == "." || token == "_"
}

// ParseYAML parses a YAML layout.
// Rows are applied first, then explicit cells, so cells win on overlap.
// Absent tokens only apply to rows; a cell entry with clear: true removes
// a value set by its row.
func ParseYAML(data []byte) (Layout, error) {
	var yl YAMLLayout
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return Layout{}, fmt.Errorf("yaml unmarshal: %w", err)
	}

	width := yl.Width
	if width == 0 {
		width = len(yl.Rows)
	}
	if width < 1 {
		return Layout{}, fmt.Errorf("%w: width must be positive, got %d", ErrInvalidLayout, yl.Width)
	}
	if len(yl.Rows) > width {
		return Layout{}, fmt.Errorf("%w: %d rows for width %d", ErrInvalidLayout, len(yl.Rows), width)
	}

	l := Layout{
		ID:       yl.ID,
		Name:     yl.Name,
		Width:    width,
		Values:   make(map[board.Cell]string),
		Metadata: yl.Metadata,
	}

	for r, row := range yl.Rows {
		tokens := strings.Fields(row)
		if len(tokens) != width {
			return Layout{}, fmt.Errorf("%w: row %d has %d values, expected %d",
				ErrInvalidLayout, r+1, len(tokens), width)
		}
		for c, tok := range tokens {
			if IsAbsent(tok) {
				continue
			}
			l.Values[board.C(r+1, c+1)] = tok
		}
	}

	for _, yc := range yl.Cells {
		cell := board.C(yc.I, yc.J)
		if yc.I < 1 || yc.I > width || yc.J < 1 || yc.J > width {
			return Layout{}, fmt.Errorf("%w: cell %v outside 1..%d", ErrInvalidLayout, cell, width)
		}
		if yc.Clear {
			delete(l.Values, cell)
			continue
		}
		l.Values[cell] = yc.V
	}

	return l, nil
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml"}
}

// ToGameBoard creates a GameBoard holding the layout's values.
func (l *Layout) ToGameBoard() (*board.GameBoard[string], error) {
	g, err := board.NewGameBoard[string](l.Width)
	if err != nil {
		return nil, fmt.Errorf("layout %s: %w", l.ID, err)
	}
	for c, v := range l.Values {
		cell, err := g.Cell(c.I, c.J)
		if err != nil {
			return nil, fmt.Errorf("layout %s: %w", l.ID, err)
		}
		g.Set(cell, v)
	}
	return g, nil
}

// FromGameBoard captures the filled cells of g as a layout.
func FromGameBoard(id string, g *board.GameBoard[string]) Layout {
	l := Layout{
		ID:     id,
		Width:  g.Width(),
		Values: make(map[board.Cell]string),
	}
	for _, c := range g.Filter(board.IsPresent[string]) {
		v, _ := g.Get(c)
		l.Values[c] = v
	}
	return l
}

// Encode writes the layout back to YAML in row form.
// Values that cannot be written as a single row token (empty, absent
// markers, or containing whitespace) go to the cells list.
func (l *Layout) Encode() ([]byte, error) {
	yl := YAMLLayout{
		ID:       l.ID,
		Name:     l.Name,
		Width:    l.Width,
		Rows:     make([]string, 0, l.Width),
		Metadata: l.Metadata,
	}
	for i := 1; i <= l.Width; i++ {
		tokens := make([]string, 0, l.Width)
		for j := 1; j <= l.Width; j++ {
			v, ok := l.Values[board.C(i, j)]
			switch {
			case !ok:
				v = "."
			case v == "" || IsAbsent(v) || strings.IndexFunc(v, unicode.IsSpace) >= 0:
				yl.Cells = append(yl.Cells, YAMLCell{I: i, J: j, V: v})
				v = "."
			}
			tokens = append(tokens, v)
		}
		yl.Rows = append(yl.Rows, strings.Join(tokens, " "))
	}

	data, err := yaml.Marshal(&yl)
	if err != nil {
		return nil, fmt.Errorf("yaml marshal: %w", err)
	}
	return data, nil
}
