package config

import (
	_ "embed"
)

//go:embed defaults/boardctl.yaml
var defaultYAML []byte

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		Board: BoardConfig{
			Width: 4,
		},
		Merge: MergeConfig{
			Rule: "double",
		},
		Output: OutputConfig{
			Color:  true,
			Absent: ".",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultYAML
}
