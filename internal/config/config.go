// Package config provides configuration loading and validation for the CLI and the server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/career-compass/internal/profile"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Paths
	Assessment string   `json:"assessment,omitempty"` // Path to assessment JSON
	Catalog    []string `json:"catalog,omitempty"`    // Catalog source files
	Out        string   `json:"out,omitempty"`        // Output path for recommendations

	// Engine
	ExplorationLevel int `json:"exploration_level,omitempty"` // 1-5
	ZoneSize         int `json:"zone_size,omitempty"`         // Careers per zone

	// Behavior
	Verbose     bool   `json:"verbose,omitempty"`      // Print detailed debug information
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
// Required fields are checked by CLI flag validation after merging.
func (c *Config) Validate() error {
	if c.ExplorationLevel != 0 &&
		(c.ExplorationLevel < profile.MinExploration || c.ExplorationLevel > profile.MaxExploration) {
		return fmt.Errorf("config error: 'exploration_level' must be between %d and %d",
			profile.MinExploration, profile.MaxExploration)
	}
	if c.ZoneSize < 0 || c.ZoneSize > MaxZoneSize {
		return fmt.Errorf("config error: 'zone_size' must be between %d and %d", MinZoneSize, MaxZoneSize)
	}

	if c.Assessment != "" {
		if _, err := os.Stat(c.Assessment); os.IsNotExist(err) {
			return fmt.Errorf("config error: assessment file not found: %s", c.Assessment)
		}
	}
	for _, p := range c.Catalog {
		if _, err := os.Stat(p); os.IsNotExist(err) {
			return fmt.Errorf("config error: catalog file not found: %s", p)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Assessment == "" {
		result.Assessment = defaults.Assessment
	}
	if len(result.Catalog) == 0 {
		result.Catalog = append([]string(nil), defaults.Catalog...)
	}
	if result.Out == "" {
		result.Out = defaults.Out
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}

	if result.ExplorationLevel == 0 {
		result.ExplorationLevel = defaults.ExplorationLevel
	}
	if result.ZoneSize == 0 {
		result.ZoneSize = defaults.ZoneSize
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
