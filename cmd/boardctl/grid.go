package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/squareboard/internal/board"
)

var (
	flagFrom int
	flagTo   int
	flagStep int
)

var cellCmd = &cobra.Command{
	Use:   "cell <i> <j>",
	Short: "Look up a single cell",
	Long: `Look up cell (i, j) with the strict accessor.
Prints an invalid coordinate error and exits 1 when either index is
outside 1..width.`,
	Args: cobra.ExactArgs(2),
	RunE: runCell,
}

var rowCmd = &cobra.Command{
	Use:   "row <i>",
	Short: "List the cells of a row",
	Long: `List the cells of row i for j in --from..--to.
A descending range (--from 4 --to 1) lists the row reversed.
Out-of-range j values are skipped.`,
	Args: cobra.ExactArgs(1),
	RunE: runRow,
}

var columnCmd = &cobra.Command{
	Use:   "column <j>",
	Short: "List the cells of a column",
	Long: `List the cells of column j for i in --from..--to.
A descending range lists the column bottom to top.
Out-of-range i values are skipped.`,
	Args: cobra.ExactArgs(1),
	RunE: runColumn,
}

var neighbourCmd = &cobra.Command{
	Use:     "neighbour <i> <j> <up|down|left|right>",
	Aliases: []string{"neighbor"},
	Short:   "Show the cell adjacent to (i, j)",
	Args:    cobra.ExactArgs(3),
	RunE:    runNeighbour,
}

func init() {
	for _, c := range []*cobra.Command{rowCmd, columnCmd} {
		c.Flags().IntVar(&flagFrom, "from", 1, "First index of the range")
		c.Flags().IntVar(&flagTo, "to", 0, "Last index of the range (default width)")
		c.Flags().IntVar(&flagStep, "step", 1, "Range stride")
	}
}

// newBoard builds a board of the configured width.
func newBoard() (*board.Board, error) {
	return board.NewBoard(cfg.Board.Width)
}

// parseInts parses every argument as an integer.
func parseInts(args []string) ([]int, error) {
	vals := make([]int, len(args))
	for k, a := range args {
		v, err := strconv.Atoi(a)
		if err != nil {
			return nil, fmt.Errorf("invalid index %q: %w", a, err)
		}
		vals[k] = v
	}
	return vals, nil
}

// span builds the --from/--to/--step range. An unset --to means width, so
// --to 0 is an ordinary endpoint.
func span(cmd *cobra.Command, width int) board.Span {
	to := width
	if cmd.Flags().Changed("to") {
		to = flagTo
	}
	return board.Range(flagFrom, to).By(flagStep)
}

func runCell(cmd *cobra.Command, args []string) error {
	idx, err := parseInts(args)
	if err != nil {
		return err
	}
	b, err := newBoard()
	if err != nil {
		return err
	}

	c, err := b.Cell(idx[0], idx[1])
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), c)
	return nil
}

func runRow(cmd *cobra.Command, args []string) error {
	idx, err := parseInts(args)
	if err != nil {
		return err
	}
	b, err := newBoard()
	if err != nil {
		return err
	}

	s := span(cmd, b.Width())
	logger.Debug("row", "i", idx[0], "from", s.From, "to", s.To, "step", s.Step)
	printCells(cmd, b.Row(idx[0], s))
	return nil
}

func runColumn(cmd *cobra.Command, args []string) error {
	idx, err := parseInts(args)
	if err != nil {
		return err
	}
	b, err := newBoard()
	if err != nil {
		return err
	}

	s := span(cmd, b.Width())
	logger.Debug("column", "j", idx[0], "from", s.From, "to", s.To, "step", s.Step)
	printCells(cmd, b.Column(s, idx[0]))
	return nil
}

func runNeighbour(cmd *cobra.Command, args []string) error {
	idx, err := parseInts(args[:2])
	if err != nil {
		return err
	}
	dir, err := board.ParseDirection(args[2])
	if err != nil {
		return err
	}
	b, err := newBoard()
	if err != nil {
		return err
	}

	from, err := b.Cell(idx[0], idx[1])
	if err != nil {
		return err
	}
	n, ok := b.Neighbour(from, dir)
	if !ok {
		fmt.Fprintf(cmd.OutOrStdout(), "%v has no neighbour %v\n", from, dir)
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), n)
	return nil
}

func printCells(cmd *cobra.Command, cells []board.Cell) {
	if len(cells) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No cells.")
		return
	}
	for _, c := range cells {
		fmt.Fprintln(cmd.OutOrStdout(), c)
	}
}
