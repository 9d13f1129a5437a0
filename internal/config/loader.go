package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LocalPath is the project-relative config location.
const LocalPath = "configs/boardctl.yaml"

// Load loads boardctl configuration.
// Search order: customPath -> ~/.boardctl/config.yaml -> ./configs/boardctl.yaml -> embedded default.
// Keys missing from a file keep their default values.
func Load(customPath string) (Config, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Config{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return Config{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("config.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(LocalPath); err == nil {
		if cfg, err := parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parse(defaultYAML)
	if err != nil {
		return DefaultConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parse decodes data over the defaults and validates the result.
func parse(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".boardctl", filename)
}
