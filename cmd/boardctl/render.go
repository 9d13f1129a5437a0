package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/vovakirdan/squareboard/internal/board"
	"github.com/vovakirdan/squareboard/internal/config"
	"github.com/vovakirdan/squareboard/internal/layout"
)

// tileStyles colors tiles by value, 2048 style. Unlisted values use the
// last entry.
var tileStyles = map[string]lipgloss.Style{
	"2":    lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	"4":    lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	"8":    lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	"16":   lipgloss.NewStyle().Foreground(lipgloss.Color("202")),
	"32":   lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	"64":   lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	"128":  lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
	"256":  lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Bold(true),
	"512":  lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
	"1024": lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true),
	"2048": lipgloss.NewStyle().Foreground(lipgloss.Color("13")).Bold(true),
}

var (
	otherStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	absentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true)
)

// renderBoard formats g as a bordered table with 1-based row and column
// headers.
func renderBoard(g *board.GameBoard[string], out config.OutputConfig) string {
	width := g.Width()

	headers := make([]string, 0, width+1)
	headers = append(headers, "")
	for j := 1; j <= width; j++ {
		headers = append(headers, strconv.Itoa(j))
	}

	rows := make([][]string, 0, width)
	for i := 1; i <= width; i++ {
		row := make([]string, 0, width+1)
		row = append(row, strconv.Itoa(i))
		for _, c := range g.Row(i, board.Full(width)) {
			v, ok := g.Get(c)
			if !ok {
				v = out.Absent
			}
			row = append(row, v)
		}
		rows = append(rows, row)
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderRow(true).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			base := lipgloss.NewStyle().Padding(0, 1).Align(lipgloss.Center)
			if !out.Color {
				return base
			}
			if row == table.HeaderRow || col == 0 {
				return base.Inherit(headerStyle)
			}
			v := rows[row][col]
			if v == out.Absent {
				return base.Inherit(absentStyle)
			}
			if s, ok := tileStyles[v]; ok {
				return base.Inherit(s)
			}
			return base.Inherit(otherStyle)
		})

	return t.String()
}

// writeLayout saves l as YAML.
func writeLayout(path string, l *layout.Layout) error {
	data, err := l.Encode()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing layout %s: %w", path, err)
	}
	return nil
}
