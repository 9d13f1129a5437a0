package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	cfg, err := parse(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded default does not parse: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("embedded default = %+v, expected %+v", cfg, DefaultConfig())
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := "board:\n  width: 6\nmerge:\n  rule: repeat\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Board.Width != 6 {
		t.Errorf("Board.Width = %d, expected 6", cfg.Board.Width)
	}
	if cfg.Merge.Rule != "repeat" {
		t.Errorf("Merge.Rule = %q, expected repeat", cfg.Merge.Rule)
	}
	// Unset keys keep defaults.
	if cfg.Output.Absent != "." || cfg.Log.Level != "info" {
		t.Errorf("defaults lost: %+v", cfg)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Load() of a missing file should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("board:\n  width: 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("Load() should reject width 0")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"default", func(*Config) {}, false},
		{"zero width", func(c *Config) { c.Board.Width = 0 }, true},
		{"unknown rule", func(c *Config) { c.Merge.Rule = "triple" }, true},
		{"unknown level", func(c *Config) { c.Log.Level = "loud" }, true},
		{"upper-case level", func(c *Config) { c.Log.Level = "DEBUG" }, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tc.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}
