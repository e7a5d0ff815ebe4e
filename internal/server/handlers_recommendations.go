package server

import (
	"net/http"
	"strconv"

	"github.com/jonathan/career-compass/internal/config"
	"github.com/jonathan/career-compass/internal/engine"
	"github.com/jonathan/career-compass/internal/profile"
	"github.com/jonathan/career-compass/internal/telemetry"
	"github.com/jonathan/career-compass/internal/types"
	"go.uber.org/zap"
)

// handleRecommend handles POST /recommendations. The body is an Assessment; the
// exploration_level and zone_size query parameters override the body and server defaults.
func (s *Server) handleRecommend(w http.ResponseWriter, r *http.Request) {
	var assessment types.Assessment
	if err := decodeJSON(w, r, &assessment); err != nil {
		writeError(w, s.logger, http.StatusBadRequest, "invalid request body")
		return
	}

	opts := s.engineOpts
	q := r.URL.Query()
	if raw := q.Get("exploration_level"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < profile.MinExploration || n > profile.MaxExploration {
			writeError(w, s.logger, http.StatusBadRequest, "exploration_level must be between 1 and 5")
			return
		}
		assessment.ExplorationLevel = n
	}
	if raw := q.Get("zone_size"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < config.MinZoneSize || n > config.MaxZoneSize {
			writeError(w, s.logger, http.StatusBadRequest, "zone_size must be between 1 and 10")
			return
		}
		opts.ZoneSize = n
	}
	if err := assessment.Validate(); err != nil {
		writeValidationFailure(w, s.logger, err)
		return
	}

	snap, err := s.snapshot()
	if err != nil {
		writeFailure(w, r, s.logger, err)
		return
	}

	p, warnings, err := profile.Normalize(assessment, opts.ExplorationLevel)
	if err != nil {
		writeFailure(w, r, s.logger, err)
		return
	}

	ctx, span := telemetry.StartSpan(r.Context(), "recommendations.recommend",
		telemetry.String("catalog.version", snap.Version),
		telemetry.Int("catalog.size", len(snap.Careers)),
		telemetry.Int("exploration_level", p.ExplorationLevel),
	)
	defer span.End()

	var cacheKey string
	if s.recCache != nil {
		cacheKey, err = s.recCache.Key(p, opts, snap.Version)
		if err != nil {
			s.logger.Warn("failed to fingerprint recommendation request", zap.Error(err))
		} else if cached, err := s.recCache.Lookup(ctx, cacheKey); err != nil {
			s.logger.Warn("recommendation cache lookup failed", zap.Error(err))
		} else if cached != nil {
			span.SetAttributes(telemetry.Bool("cache.hit", true))
			cached.Diagnostics.Warnings = warningsOrEmpty(warnings)
			writeJSON(w, s.logger, http.StatusOK, cached)
			return
		}
	}
	span.SetAttributes(telemetry.Bool("cache.hit", false))

	set, err := engine.RecommendProfile(p, snap.Careers, opts)
	if err != nil {
		telemetry.RecordError(span, err)
		writeFailure(w, r, s.logger, err)
		return
	}
	set.Diagnostics.Warnings = warningsOrEmpty(warnings)
	span.SetAttributes(
		telemetry.Int("recommendations.count", len(set.Recommendations)),
		telemetry.Bool("recommendations.insufficient", set.Diagnostics.InsufficientCandidates),
	)

	if cacheKey != "" {
		if err := s.recCache.Store(ctx, cacheKey, set); err != nil {
			s.logger.Warn("failed to cache recommendations", zap.Error(err))
		}
	}

	writeJSON(w, s.logger, http.StatusOK, set)
}

func warningsOrEmpty(warnings []types.Warning) []types.Warning {
	if warnings == nil {
		return []types.Warning{}
	}
	return warnings
}
