package server

import (
	"context"
	"fmt"
	"time"

	"github.com/jonathan/career-compass/internal/cache"
	"github.com/jonathan/career-compass/internal/catalog"
	"github.com/jonathan/career-compass/internal/config"
	"github.com/jonathan/career-compass/internal/db"
	"github.com/jonathan/career-compass/internal/server/ratelimit"
	"github.com/jonathan/career-compass/internal/telemetry"
	"go.uber.org/zap"
)

// NewFromEnv wires a server from environment configuration: Postgres for users (and for the
// catalog when CATALOG_PATH is unset), Redis or an in-process cache for recommendations, and
// OTLP tracing when OTEL_COLLECTOR_URL is set. A non-zero port overrides PORT.
func NewFromEnv(ctx context.Context, logger *zap.Logger, port int) (*Server, error) {
	serverCfg, err := config.NewServerConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load server config: %w", err)
	}
	if port != 0 {
		serverCfg.Port = port
	}
	engineCfg, err := config.NewEngineConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load engine config: %w", err)
	}
	jwtCfg, err := config.NewJWTConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to create JWT config: %w", err)
	}
	passwordCfg, err := config.NewPasswordConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to create password config: %w", err)
	}

	var closers []func(context.Context) error
	cleanup := func() {
		for _, closeFn := range closers {
			_ = closeFn(context.Background())
		}
	}

	if serverCfg.OTelCollectorURL != "" {
		shutdown, err := telemetry.InitTracer(ctx, telemetry.ServiceName, serverCfg.OTelCollectorURL)
		if err != nil {
			logger.Warn("tracing disabled", zap.Error(err))
		} else {
			closers = append(closers, shutdown)
		}
	}

	database, err := db.Connect(ctx, serverCfg.DatabaseURL)
	if err != nil {
		cleanup()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	closers = append(closers, func(context.Context) error {
		database.Close()
		return nil
	})

	var source catalog.Source = &catalog.DBSource{DB: database}
	if len(serverCfg.CatalogPaths) > 0 {
		source = &catalog.FileSource{Paths: serverCfg.CatalogPaths}
	}
	store := catalog.NewStore(source)
	snap, err := store.Reload(ctx)
	if err != nil {
		// The server still starts so the catalog can be fixed and reloaded.
		logger.Error("initial catalog load failed", zap.String("source", source.Name()), zap.Error(err))
	} else {
		logger.Info("catalog loaded",
			zap.String("source", source.Name()),
			zap.String("version", snap.Version),
			zap.Int("careers", len(snap.Careers)),
		)
	}

	backend := newCacheBackend(ctx, serverCfg, logger)
	closers = append(closers, func(context.Context) error { return backend.Close() })

	srv, err := New(Config{
		Port:      serverCfg.Port,
		Users:     database,
		Catalog:   store,
		Engine:    engineCfg.Options(),
		Cache:     cache.NewRecommendations(backend, serverCfg.CacheTTL),
		RateLimit: ratelimit.LoadConfig(),
		JWT:       jwtCfg,
		Password:  passwordCfg,
		Logger:    logger,
		Closers:   closers,
	})
	if err != nil {
		cleanup()
		return nil, err
	}
	return srv, nil
}

// newCacheBackend returns Redis when REDIS_ADDR is set and reachable, and an in-process cache
// otherwise.
func newCacheBackend(ctx context.Context, cfg *config.ServerConfig, logger *zap.Logger) cache.Cache {
	opts := cache.DefaultOptions()
	if cfg.CacheTTL > 0 {
		opts.DefaultTTL = cfg.CacheTTL
	}
	opts.MaxEntries = cfg.CacheMaxEntries
	if cfg.RedisAddr == "" {
		return cache.NewMemory(opts)
	}

	opts.RedisAddr = cfg.RedisAddr
	opts.RedisPassword = cfg.RedisPassword
	opts.RedisDB = cfg.RedisDB
	rc := cache.NewRedis(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := rc.Ping(pingCtx); err != nil {
		logger.Warn("redis unavailable, using in-process cache", zap.String("addr", cfg.RedisAddr), zap.Error(err))
		_ = rc.Close()
		return cache.NewMemory(opts)
	}
	logger.Info("using redis recommendation cache", zap.String("addr", cfg.RedisAddr))
	return rc
}
