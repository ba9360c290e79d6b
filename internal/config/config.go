// Package config loads module settings from a YAML file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the module settings.
type Config struct {
	// Database is the path to the annotation SQLite database.
	Database string `yaml:"database"`

	// FastaLineWidth is the sequence wrap width for FASTA output.
	FastaLineWidth int `yaml:"fasta_line_width,omitempty"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Database:       "annotations.db",
		FastaLineWidth: 80,
	}
}

// Load reads a YAML configuration file. Fields absent from the file keep
// their defaults.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Database == "" {
		return fmt.Errorf("database path must not be empty")
	}
	if c.FastaLineWidth <= 0 {
		return fmt.Errorf("fasta_line_width must be positive, got %d", c.FastaLineWidth)
	}
	return nil
}
