package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/jonathan/career-compass/internal/engine"
	"github.com/jonathan/career-compass/internal/guardrails"
	"github.com/jonathan/career-compass/internal/profile"
	"github.com/jonathan/career-compass/internal/selection"
)

// Zone size bounds accepted from configuration.
const (
	MinZoneSize = 1
	MaxZoneSize = 10
)

// EngineConfig holds the recommendation feature flags. It is read once at startup and handed
// to the engine as engine.Options.
type EngineConfig struct {
	SeniorityCategoryGuardrail bool
	SalaryGuardrails           bool
	SeniorityCeiling           bool
	ZoneSize                   int
	ExplorationLevel           int
}

// NewEngineConfig reads ENABLE_SENIORITY_CATEGORY_GUARDRAIL, ENABLE_SALARY_GUARDRAILS,
// ENABLE_SENIORITY_CEILING (all default true), ZONE_SIZE (default 3) and EXPLORATION_LEVEL
// (default 3). Malformed or out of range values are errors.
func NewEngineConfig() (*EngineConfig, error) {
	cfg := &EngineConfig{}
	var err error

	if cfg.SeniorityCategoryGuardrail, err = parseBoolEnv("ENABLE_SENIORITY_CATEGORY_GUARDRAIL", true); err != nil {
		return nil, err
	}
	if cfg.SalaryGuardrails, err = parseBoolEnv("ENABLE_SALARY_GUARDRAILS", true); err != nil {
		return nil, err
	}
	if cfg.SeniorityCeiling, err = parseBoolEnv("ENABLE_SENIORITY_CEILING", true); err != nil {
		return nil, err
	}
	if cfg.ZoneSize, err = parseIntEnv("ZONE_SIZE", selection.DefaultZoneSize); err != nil {
		return nil, err
	}
	if cfg.ExplorationLevel, err = parseIntEnv("EXPLORATION_LEVEL", profile.DefaultExploration); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// DefaultEngineConfig enables every guardrail with the default zone size and exploration.
func DefaultEngineConfig() *EngineConfig {
	return &EngineConfig{
		SeniorityCategoryGuardrail: true,
		SalaryGuardrails:           true,
		SeniorityCeiling:           true,
		ZoneSize:                   selection.DefaultZoneSize,
		ExplorationLevel:           profile.DefaultExploration,
	}
}

// Validate checks the numeric ranges.
func (c *EngineConfig) Validate() error {
	if c.ZoneSize < MinZoneSize || c.ZoneSize > MaxZoneSize {
		return fmt.Errorf("ZONE_SIZE must be between %d and %d, got: %d", MinZoneSize, MaxZoneSize, c.ZoneSize)
	}
	if c.ExplorationLevel < profile.MinExploration || c.ExplorationLevel > profile.MaxExploration {
		return fmt.Errorf("EXPLORATION_LEVEL must be between %d and %d, got: %d",
			profile.MinExploration, profile.MaxExploration, c.ExplorationLevel)
	}
	return nil
}

// Options converts the configuration into engine options.
func (c *EngineConfig) Options() engine.Options {
	return engine.Options{
		ExplorationLevel: c.ExplorationLevel,
		ZoneSize:         c.ZoneSize,
		Flags: guardrails.Flags{
			SeniorityCategoryGuardrail: c.SeniorityCategoryGuardrail,
			SalaryGuardrails:           c.SalaryGuardrails,
			SeniorityCeiling:           c.SeniorityCeiling,
		},
	}
}

func parseBoolEnv(key string, defaultValue bool) (bool, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return defaultValue, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("invalid %s: %q is not a boolean", key, value)
	}
	return b, nil
}

func parseIntEnv(key string, defaultValue int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %v", key, err)
	}
	return n, nil
}
