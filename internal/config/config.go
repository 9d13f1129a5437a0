// Package config provides YAML-based configuration loading for boardctl.
package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/vovakirdan/squareboard/internal/merge"
)

// Config contains all configuration for the boardctl tool.
type Config struct {
	Board  BoardConfig  `yaml:"board"`
	Merge  MergeConfig  `yaml:"merge"`
	Output OutputConfig `yaml:"output"`
	Log    LogConfig    `yaml:"log"`
}

// BoardConfig defines the board used when no layout is given.
type BoardConfig struct {
	Width int `yaml:"width"`
}

// MergeConfig selects the merge rule for string values.
type MergeConfig struct {
	Rule string `yaml:"rule"` // "double" or "repeat"
}

// OutputConfig controls how boards are printed.
type OutputConfig struct {
	Color  bool   `yaml:"color"`
	Absent string `yaml:"absent"` // Placeholder printed for empty cells
}

// LogConfig controls the CLI logger.
type LogConfig struct {
	Level string `yaml:"level"` // "debug", "info", "warn" or "error"
}

// LogLevels lists the accepted log level names.
var LogLevels = []string{"debug", "info", "warn", "error"}

// Validate checks the configuration for values the tool cannot use.
func (c Config) Validate() error {
	if c.Board.Width < 1 {
		return fmt.Errorf("config: board.width must be positive, got %d", c.Board.Width)
	}
	if _, err := merge.Rule(c.Merge.Rule); err != nil {
		return fmt.Errorf("config: merge.rule: %w", err)
	}
	if !slices.Contains(LogLevels, strings.ToLower(c.Log.Level)) {
		return fmt.Errorf("config: log.level %q is not one of %s", c.Log.Level, strings.Join(LogLevels, ", "))
	}
	return nil
}
