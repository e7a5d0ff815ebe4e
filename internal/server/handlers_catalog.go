package server

import (
	"net/http"
	"time"

	"github.com/jonathan/career-compass/internal/server/middleware"
	"github.com/jonathan/career-compass/internal/telemetry"
	"go.uber.org/zap"
)

// reloadResponse is the body of POST /catalog/reload.
type reloadResponse struct {
	CatalogVersion  string    `json:"catalog_version"`
	PreviousVersion string    `json:"previous_version,omitempty"`
	Count           int       `json:"count"`
	LoadedAt        time.Time `json:"loaded_at"`
}

// handleReloadCatalog handles POST /catalog/reload. On failure the previous snapshot keeps
// serving.
func (s *Server) handleReloadCatalog(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserID(r)

	var previous string
	if old := s.store.Snapshot(); old != nil {
		previous = old.Version
	}

	ctx, span := telemetry.StartSpan(r.Context(), "catalog.reload")
	defer span.End()

	snap, err := s.store.Reload(ctx)
	if err != nil {
		telemetry.RecordError(span, err)
		writeFailure(w, r, s.logger, err)
		return
	}
	span.SetAttributes(
		telemetry.String("catalog.version", snap.Version),
		telemetry.Int("catalog.size", len(snap.Careers)),
	)

	s.logger.Info("catalog reloaded",
		zap.String("user_id", userID.String()),
		zap.String("version", snap.Version),
		zap.String("previous_version", previous),
		zap.Int("careers", len(snap.Careers)),
	)
	writeJSON(w, s.logger, http.StatusOK, reloadResponse{
		CatalogVersion:  snap.Version,
		PreviousVersion: previous,
		Count:           len(snap.Careers),
		LoadedAt:        snap.LoadedAt,
	})
}
