// boardctl is a command-line tool for inspecting square boards and running
// the 2048-style compact-and-merge helper.
//
// Usage:
//
//	boardctl merge <values...>       - Compact and merge a line of values
//	boardctl cell <i> <j>            - Strict single-cell lookup
//	boardctl row <i>                 - List the cells of a row
//	boardctl column <j>              - List the cells of a column
//	boardctl neighbour <i> <j> <dir> - Show the adjacent cell
//	boardctl show <layout.yaml>      - Print a board layout
//
// Global flags:
//
//	--config <path>     - Config file (default: search ~/.boardctl, ./configs)
//	--width <n>         - Board width for cell/row/column/neighbour
//	--log-level <level> - debug, info, warn or error
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/squareboard/internal/config"
)

var (
	// Global flags
	flagConfig   string
	flagWidth    int
	flagLogLevel string

	// Resolved in PersistentPreRunE
	cfg    config.Config
	logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "boardctl"})
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "boardctl",
	Short: "Inspect square boards and run the tile merge helper",
	Long: `boardctl exercises the square board library from the command line.

Coordinates are 1-based: i is the row (growing downward), j is the column.
Absent values are written as "." or "_".

Examples:
  boardctl merge 2 2 . 4
  boardctl merge a a a --rule repeat
  boardctl cell 2 3 --width 4
  boardctl row 2 --from 4 --to 1
  boardctl neighbour 1 1 right
  boardctl show testdata/layouts/corner.yaml --merge left`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().IntVar(&flagWidth, "width", 0, "Board width (0 = from config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(mergeCmd)
	rootCmd.AddCommand(cellCmd)
	rootCmd.AddCommand(rowCmd)
	rootCmd.AddCommand(columnCmd)
	rootCmd.AddCommand(neighbourCmd)
	rootCmd.AddCommand(showCmd)
}

// setup loads the config, applies flag overrides and configures the logger.
func setup(cmd *cobra.Command, args []string) error {
	loaded, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	cfg = loaded

	if cmd.Flags().Changed("width") {
		cfg.Board.Width = flagWidth
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	level, err := log.ParseLevel(strings.ToLower(cfg.Log.Level))
	if err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	logger.SetLevel(level)
	logger.Debug("config resolved",
		"width", cfg.Board.Width,
		"rule", cfg.Merge.Rule,
		"color", cfg.Output.Color,
	)
	return nil
}
