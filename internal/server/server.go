// Package server provides the HTTP API for career recommendations.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jonathan/career-compass/internal/cache"
	"github.com/jonathan/career-compass/internal/catalog"
	"github.com/jonathan/career-compass/internal/config"
	"github.com/jonathan/career-compass/internal/engine"
	"github.com/jonathan/career-compass/internal/server/middleware"
	"github.com/jonathan/career-compass/internal/server/ratelimit"
	"go.uber.org/zap"
)

// maxBodyBytes caps request bodies. Resume text is the largest field.
const maxBodyBytes = 1 << 20

// Server represents the HTTP server
type Server struct {
	httpServer  *http.Server
	logger      *zap.Logger
	store       *catalog.Store
	engineOpts  engine.Options
	recCache    *cache.Recommendations
	rateLimiter *ratelimit.Limiter
	jwtService  *JWTService
	userService *UserService
	authHandler *AuthHandler
	closers     []func(context.Context) error
	handler     http.Handler
}

// Config holds server dependencies. Users, Catalog, JWT and Password are required.
type Config struct {
	Port      int
	Users     DBClient
	Catalog   *catalog.Store
	Engine    engine.Options
	Cache     *cache.Recommendations // nil disables memoization
	RateLimit *ratelimit.Config      // nil uses ratelimit.DefaultConfig
	JWT       *config.JWTConfig
	Password  *config.PasswordConfig
	Logger    *zap.Logger

	// Closers run in order after the HTTP server has shut down.
	Closers []func(context.Context) error
}

// New creates a new server instance
func New(cfg Config) (*Server, error) {
	switch {
	case cfg.Users == nil:
		return nil, fmt.Errorf("server requires a user store")
	case cfg.Catalog == nil:
		return nil, fmt.Errorf("server requires a catalog store")
	case cfg.JWT == nil:
		return nil, fmt.Errorf("server requires a JWT config")
	case cfg.Password == nil:
		return nil, fmt.Errorf("server requires a password config")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &Server{
		logger:      logger,
		store:       cfg.Catalog,
		engineOpts:  cfg.Engine,
		recCache:    cfg.Cache,
		rateLimiter: ratelimit.NewLimiter(cfg.RateLimit),
		jwtService:  NewJWTService(cfg.JWT),
		userService: NewUserService(cfg.Users, cfg.Password),
		closers:     cfg.Closers,
	}
	s.authHandler = NewAuthHandler(s.userService, s.jwtService, logger)

	requireAuth := middleware.AuthMiddleware(s.jwtService.AsTokenValidator())

	// Setup router
	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)

	mux.HandleFunc("POST /auth/register", s.authHandler.Register)
	mux.HandleFunc("POST /auth/login", s.authHandler.Login)
	mux.Handle("PUT /auth/password", requireAuth(http.HandlerFunc(s.authHandler.UpdatePassword)))
	mux.Handle("GET /users/me", requireAuth(http.HandlerFunc(s.authHandler.Me)))

	mux.HandleFunc("GET /careers", s.handleListCareers)
	mux.HandleFunc("GET /careers/{id}", s.handleGetCareer)

	mux.Handle("POST /recommendations", requireAuth(http.HandlerFunc(s.handleRecommend)))
	mux.Handle("POST /catalog/reload", requireAuth(http.HandlerFunc(s.handleReloadCatalog)))

	s.handler = s.withRateLimit(s.withLogging(s.withCORS(mux)))
	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.handler,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// Handler returns the fully wrapped HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Start begins listening for requests and blocks until SIGINT or SIGTERM.
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	serveErr := make(chan error, 1)
	go func() {
		s.logger.Info("server starting", zap.String("addr", s.httpServer.Addr))
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			s.shutdownDeps(context.Background())
			return fmt.Errorf("server error: %w", err)
		}
	case <-stop:
	}
	s.logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	s.shutdownDeps(ctx)
	s.logger.Info("server stopped")
	return nil
}

// shutdownDeps stops the rate limiter and runs the configured closers.
func (s *Server) shutdownDeps(ctx context.Context) {
	if s.rateLimiter != nil {
		s.rateLimiter.Stop()
	}
	for _, closeFn := range s.closers {
		if err := closeFn(ctx); err != nil {
			s.logger.Warn("failed to release dependency", zap.Error(err))
		}
	}
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withRateLimit adds rate limiting middleware
func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clientID := s.extractClientID(r)

		allowed, info := s.rateLimiter.Allow(clientID, r.URL.Path, r.Method)
		s.setRateLimitHeaders(w, info)
		if !allowed {
			s.rateLimitResponse(w, r, clientID, info)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// statusRecorder captures the status code written by a handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.logger.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", rec.status),
			zap.Duration("duration", time.Since(start)),
			zap.String("remote", r.RemoteAddr),
		)
	})
}

// handleHealth returns server health status and the loaded catalog version.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	resp := map[string]any{"status": "ok"}
	if snap := s.store.Snapshot(); snap != nil {
		resp["catalog_version"] = snap.Version
		resp["catalog_size"] = len(snap.Careers)
	} else {
		resp["status"] = "degraded"
	}
	writeJSON(w, s.logger, http.StatusOK, resp)
}

// snapshot returns the current catalog or ErrCatalogUnavailable.
func (s *Server) snapshot() (*catalog.Snapshot, error) {
	snap := s.store.Snapshot()
	if snap == nil {
		return nil, ErrCatalogUnavailable
	}
	return snap, nil
}

// extractClientID uses the IP address from RemoteAddr. X-Forwarded-For is ignored because
// the server does not know which proxies to trust.
func (s *Server) extractClientID(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

// setRateLimitHeaders sets standard rate limit headers on the response.
func (s *Server) setRateLimitHeaders(w http.ResponseWriter, info ratelimit.Info) {
	if info.Limit > 0 {
		w.Header().Set("X-RateLimit-Limit", fmt.Sprintf("%d", info.Limit))
		w.Header().Set("X-RateLimit-Remaining", fmt.Sprintf("%d", info.Remaining))
		w.Header().Set("X-RateLimit-Reset", fmt.Sprintf("%d", info.ResetTime.Unix()))
	}
}

// rateLimitResponse writes a 429 Too Many Requests response with rate limit information.
func (s *Server) rateLimitResponse(w http.ResponseWriter, r *http.Request, clientID string, info ratelimit.Info) {
	response := map[string]any{
		"error":     "rate_limit_exceeded",
		"message":   "Rate limit exceeded. Please try again later.",
		"limit":     info.Limit,
		"remaining": info.Remaining,
	}
	if !info.ResetTime.IsZero() {
		response["reset_at"] = info.ResetTime.Format(time.RFC3339)
	}

	if info.RetryAfter > 0 {
		retry := int(info.RetryAfter.Seconds())
		if retry < 1 {
			retry = 1
		}
		response["retry_after"] = retry
		w.Header().Set("Retry-After", fmt.Sprintf("%d", retry))
	}

	s.logger.Warn("rate limit exceeded",
		zap.String("client", clientID),
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
		zap.Int("limit", info.Limit),
	)

	writeJSON(w, s.logger, http.StatusTooManyRequests, response)
}
