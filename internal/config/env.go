package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// EnvString returns the value of key, or defaultValue when it is unset or empty.
func EnvString(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}

// EnvInt returns key parsed as an int, or defaultValue when unset or unparsable.
func EnvInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(strings.TrimSpace(value)); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// EnvBool returns key parsed with strconv.ParseBool, or defaultValue.
func EnvBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolValue, err := strconv.ParseBool(strings.TrimSpace(value)); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// EnvDuration returns key parsed with time.ParseDuration, or defaultValue.
func EnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if duration, err := time.ParseDuration(strings.TrimSpace(value)); err == nil {
			return duration
		}
	}
	return defaultValue
}

// EnvList splits a comma separated variable, dropping blank entries.
func EnvList(key string) []string {
	return SplitList(os.Getenv(key))
}

// SplitList splits s on commas and trims each entry.
func SplitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
