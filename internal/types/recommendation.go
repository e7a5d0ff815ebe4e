// Package types provides type definitions for structured data used throughout the career-compass system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "github.com/jonathan/career-compass/internal/vocab"

// Zone is the qualitative distance of a career from the user's current position.
type Zone string

// Zones.
const (
	ZoneSafe      Zone = "safe"
	ZoneStretch   Zone = "stretch"
	ZoneAdventure Zone = "adventure"
)

// Zones lists the zones from closest to farthest.
var Zones = []Zone{ZoneSafe, ZoneStretch, ZoneAdventure}

// Recommendation is a single ranked career suggestion.
type Recommendation struct {
	CareerID            string                `json:"career_id"`
	Title               string                `json:"title"`
	Category            vocab.Category        `json:"category"`
	ExperienceLevel     vocab.ExperienceLevel `json:"experience_level"`
	SalaryMin           int                   `json:"salary_min"`
	SalaryMax           int                   `json:"salary_max"`
	Score               int                   `json:"score"`
	Zone                Zone                  `json:"zone"`
	OriginalZone        Zone                  `json:"original_zone,omitempty"` // Set when promoted into Zone by redistribution
	MatchReasons        []string              `json:"match_reasons"`
	ThemeAlignmentBoost int                   `json:"theme_alignment_boost"`
	Rank                int                   `json:"rank"` // 1-based position in the output
}

// Rejection records which guardrail removed a career.
type Rejection struct {
	CareerID string `json:"career_id"`
	Rule     string `json:"rule"`
}

// Diagnostics explains how a recommendation set was produced.
type Diagnostics struct {
	Warnings               []Warning      `json:"warnings"`
	DominantTheme          vocab.Theme    `json:"dominant_theme,omitempty"`
	Themes                 []vocab.Theme  `json:"themes,omitempty"`
	SecondaryTheme         vocab.Theme    `json:"secondary_theme,omitempty"`
	InsufficientCandidates bool           `json:"insufficient_candidates"`
	CatalogSize            int            `json:"catalog_size"`
	EligibleCount          int            `json:"eligible_count"`
	FilteredByRule         map[string]int `json:"filtered_by_rule"`
	Rejections             []Rejection    `json:"rejections"` // In catalog order
	ZoneCounts             map[Zone]int   `json:"zone_counts"`
	ExplorationLevel       int            `json:"exploration_level"`
	ZoneSize               int            `json:"zone_size"`
}

// RecommendationSet is the engine output: ordered recommendations plus diagnostics.
type RecommendationSet struct {
	Recommendations []Recommendation `json:"recommendations"`
	Diagnostics     Diagnostics      `json:"diagnostics"`
}

// ByZone returns the recommendations labeled with zone, in output order.
func (s *RecommendationSet) ByZone(zone Zone) []Recommendation {
	var out []Recommendation
	for _, r := range s.Recommendations {
		if r.Zone == zone {
			out = append(out, r)
		}
	}
	return out
}
