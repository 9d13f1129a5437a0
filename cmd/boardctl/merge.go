package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/squareboard/internal/layout"
	"github.com/vovakirdan/squareboard/internal/merge"
)

var flagRule string

var mergeCmd = &cobra.Command{
	Use:   "merge <values...>",
	Short: "Compact and merge a line of values",
	Long: `Drop absent values, then merge each adjacent equal pair once,
left to right. A merged value is not merged again in the same pass.

Rules:
  double - numeric values are doubled ("2" + "2" -> "4")
  repeat - values are concatenated ("a" + "a" -> "aa")

Examples:
  boardctl merge 2 2 4        # 4 4
  boardctl merge . 2 2 2      # 4 2
  boardctl merge a a b --rule repeat`,
	RunE: runMerge,
}

func init() {
	mergeCmd.Flags().StringVar(&flagRule, "rule", "", "Merge rule: double, repeat (default from config)")
}

func runMerge(cmd *cobra.Command, args []string) error {
	ruleName := cfg.Merge.Rule
	if flagRule != "" {
		ruleName = flagRule
	}
	rule, err := merge.Rule(ruleName)
	if err != nil {
		return err
	}

	line := parseLine(args)
	result := merge.MoveAndMergeEqual(line, rule)
	logger.Debug("merged line", "rule", ruleName, "in", len(args), "present", len(merge.Compact(line)), "out", len(result))

	fmt.Fprintln(cmd.OutOrStdout(), strings.Join(result, " "))
	return nil
}

// parseLine turns CLI tokens into an optional line.
func parseLine(tokens []string) []*string {
	line := make([]*string, len(tokens))
	for i := range tokens {
		if !layout.IsAbsent(tokens[i]) {
			line[i] = &tokens[i]
		}
	}
	return line
}
