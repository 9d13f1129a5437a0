package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/squareboard/internal/board"
	"github.com/vovakirdan/squareboard/internal/layout"
	"github.com/vovakirdan/squareboard/internal/merge"
)

var (
	flagWhere     string
	flagMergeDir  string
	flagShowRule  string
	flagWriteBack string
)

var showCmd = &cobra.Command{
	Use:   "show <layout.yaml>",
	Short: "Print a board layout",
	Long: `Load a YAML layout and print it as a table.

--merge <dir> runs the merge helper over every row or column toward the
given edge before printing. --where lists the cells matching a filter:

  empty      - cells without a value
  present    - cells with a value
  eq=VALUE   - cells holding VALUE

Examples:
  boardctl show corner.yaml
  boardctl show corner.yaml --merge left
  boardctl show corner.yaml --where eq=2
  boardctl show corner.yaml --merge up --save merged.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func init() {
	showCmd.Flags().StringVar(&flagWhere, "where", "", "Filter: empty, present, eq=VALUE")
	showCmd.Flags().StringVar(&flagMergeDir, "merge", "", "Merge every line toward: up, down, left, right")
	showCmd.Flags().StringVar(&flagShowRule, "rule", "", "Merge rule: double, repeat (default from config)")
	showCmd.Flags().StringVar(&flagWriteBack, "save", "", "Write the resulting layout to this path")
}

func runShow(cmd *cobra.Command, args []string) error {
	lay, err := layout.LoadFile(args[0])
	if err != nil {
		return err
	}
	g, err := lay.ToGameBoard()
	if err != nil {
		return err
	}
	logger.Debug("layout loaded", "id", lay.ID, "width", g.Width(), "present", g.Count(board.IsPresent[string]))

	out := cmd.OutOrStdout()

	if flagMergeDir != "" {
		dir, err := board.ParseDirection(flagMergeDir)
		if err != nil {
			return err
		}
		ruleName := cfg.Merge.Rule
		if flagShowRule != "" {
			ruleName = flagShowRule
		}
		rule, err := merge.Rule(ruleName)
		if err != nil {
			return err
		}

		changed := mergeBoard(g, dir, rule)
		logger.Debug("merged board", "dir", dir, "rule", ruleName, "changed", changed)
		if !changed {
			fmt.Fprintf(out, "Nothing to merge toward %v.\n", dir)
		}
	}

	title := lay.Name
	if title == "" {
		title = lay.ID
	}
	fmt.Fprintln(out, title)
	fmt.Fprintln(out, renderBoard(g, cfg.Output))

	if flagWhere != "" {
		pred, err := parseWhere(flagWhere)
		if err != nil {
			return err
		}
		cells := g.Filter(pred)
		fmt.Fprintf(out, "\n%d cell(s) match %q:\n", len(cells), flagWhere)
		printCells(cmd, cells)
	}

	if flagWriteBack != "" {
		snap := layout.FromGameBoard(lay.ID, g)
		snap.Name = lay.Name
		snap.Metadata = lay.Metadata
		if err := writeLayout(flagWriteBack, &snap); err != nil {
			return err
		}
		logger.Info("layout saved", "path", flagWriteBack)
	}
	return nil
}

// mergeBoard runs MoveAndMergeEqual over every line toward d and writes the
// results back. Reports whether any slot changed.
func mergeBoard(g *board.GameBoard[string], d board.Direction, rule func(string) string) bool {
	changed := false
	for _, line := range g.Lines(d) {
		before := g.Values(line)
		g.Fill(line, merge.MoveAndMergeEqual(before, rule))
		if !sameLine(before, g.Values(line)) {
			changed = true
		}
	}
	return changed
}

func sameLine(a, b []*string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if (a[i] == nil) != (b[i] == nil) {
			return false
		}
		if a[i] != nil && *a[i] != *b[i] {
			return false
		}
	}
	return true
}

// parseWhere turns a --where expression into a predicate.
func parseWhere(expr string) (board.Predicate[string], error) {
	switch {
	case expr == "empty":
		return board.IsEmpty[string], nil
	case expr == "present":
		return board.IsPresent[string], nil
	case strings.HasPrefix(expr, "eq="):
		return board.Equals(strings.TrimPrefix(expr, "eq=")), nil
	default:
		return nil, fmt.Errorf("unknown filter %q (expected empty, present or eq=VALUE)", expr)
	}
}
