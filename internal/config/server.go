package config

import (
	"fmt"
	"time"
)

// ServerConfig holds the environment configuration of the HTTP server.
type ServerConfig struct {
	Port             int
	DatabaseURL      string
	CatalogPaths     []string // Source files; empty means the catalog is read from Postgres
	RedisAddr        string   // Empty disables Redis; an in-process cache is used instead
	RedisPassword    string
	RedisDB          int
	CacheTTL         time.Duration
	CacheMaxEntries  int    // Bound of the in-process cache
	OTelCollectorURL string // Empty disables trace export
}

// NewServerConfig reads PORT, DATABASE_URL, CATALOG_PATH, REDIS_ADDR, REDIS_PASSWORD,
// REDIS_DB, RECOMMENDATION_CACHE_TTL, RECOMMENDATION_CACHE_SIZE and OTEL_COLLECTOR_URL.
func NewServerConfig() (*ServerConfig, error) {
	cfg := &ServerConfig{
		Port:             EnvInt("PORT", 8080),
		DatabaseURL:      EnvString("DATABASE_URL", ""),
		CatalogPaths:     EnvList("CATALOG_PATH"),
		RedisAddr:        EnvString("REDIS_ADDR", ""),
		RedisPassword:    EnvString("REDIS_PASSWORD", ""),
		RedisDB:          EnvInt("REDIS_DB", 0),
		CacheTTL:         EnvDuration("RECOMMENDATION_CACHE_TTL", 15*time.Minute),
		CacheMaxEntries:  EnvInt("RECOMMENDATION_CACHE_SIZE", 10_000),
		OTelCollectorURL: EnvString("OTEL_COLLECTOR_URL", ""),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the server can start with this configuration.
func (c *ServerConfig) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("PORT out of range: %d", c.Port)
	}
	if c.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL is required but not set")
	}
	if c.CacheTTL < 0 {
		return fmt.Errorf("RECOMMENDATION_CACHE_TTL must not be negative")
	}
	if c.CacheMaxEntries < 1 {
		return fmt.Errorf("RECOMMENDATION_CACHE_SIZE must be positive, got %d", c.CacheMaxEntries)
	}
	return nil
}
