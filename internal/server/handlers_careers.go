package server

import (
	"net/http"
	"strconv"

	"github.com/jonathan/career-compass/internal/types"
	"github.com/jonathan/career-compass/internal/vocab"
)

const maxCareerListLimit = 500

// careerListResponse is the body of GET /careers.
type careerListResponse struct {
	Careers        []types.Career `json:"careers"`
	Count          int            `json:"count"`
	CatalogVersion string         `json:"catalog_version"`
}

// handleListCareers handles GET /careers?category=&level=&limit=
func (s *Server) handleListCareers(w http.ResponseWriter, r *http.Request) {
	snap, err := s.snapshot()
	if err != nil {
		writeFailure(w, r, s.logger, err)
		return
	}

	q := r.URL.Query()
	var category vocab.Category
	if raw := q.Get("category"); raw != "" {
		c, ok := vocab.ParseCategory(raw)
		if !ok {
			writeError(w, s.logger, http.StatusBadRequest, "unknown category", raw)
			return
		}
		category = c
	}

	var level vocab.ExperienceLevel
	if raw := q.Get("level"); raw != "" {
		l, ok := vocab.ParseExperienceLevel(raw)
		if !ok {
			writeError(w, s.logger, http.StatusBadRequest, "unknown experience level", raw)
			return
		}
		level = l
	}

	limit := 0
	if raw := q.Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > maxCareerListLimit {
			writeError(w, s.logger, http.StatusBadRequest, "limit must be between 1 and 500")
			return
		}
		limit = n
	}

	careers := snap.Filter(category, level, limit)
	writeJSON(w, s.logger, http.StatusOK, careerListResponse{
		Careers:        careers,
		Count:          len(careers),
		CatalogVersion: snap.Version,
	})
}

// handleGetCareer handles GET /careers/{id}
func (s *Server) handleGetCareer(w http.ResponseWriter, r *http.Request) {
	snap, err := s.snapshot()
	if err != nil {
		writeFailure(w, r, s.logger, err)
		return
	}

	id := r.PathValue("id")
	career, ok := snap.Get(id)
	if !ok {
		writeError(w, s.logger, http.StatusNotFound, "career not found", id)
		return
	}
	writeJSON(w, s.logger, http.StatusOK, career)
}
