// Package engine produces zoned career recommendations from a self-assessment and a catalog.
// It is a pure computation: no I/O, no shared state, and identical inputs give identical output.
package engine

import (
	"slices"

	"github.com/jonathan/career-compass/internal/guardrails"
	"github.com/jonathan/career-compass/internal/profile"
	"github.com/jonathan/career-compass/internal/ranking"
	"github.com/jonathan/career-compass/internal/selection"
	"github.com/jonathan/career-compass/internal/theme"
	"github.com/jonathan/career-compass/internal/types"
)

// Options configures a recommendation run. Flags are passed explicitly; the zero Flags value
// disables every guardrail, so callers normally start from DefaultOptions.
type Options struct {
	ExplorationLevel int              `json:"exploration_level"` // Used when the assessment leaves it unset
	ZoneSize         int              `json:"zone_size"`
	Flags            guardrails.Flags `json:"flags"`
}

// DefaultOptions returns exploration 3, three careers per zone and every guardrail enabled.
func DefaultOptions() Options {
	return Options{
		ExplorationLevel: profile.DefaultExploration,
		ZoneSize:         selection.DefaultZoneSize,
		Flags:            guardrails.DefaultFlags(),
	}
}

// Recommend normalizes an assessment and recommends careers from the catalog.
func Recommend(a types.Assessment, careers []types.Career, opts Options) (*types.RecommendationSet, error) {
	if len(careers) == 0 {
		return nil, ErrEmptyCatalog
	}
	p, warnings, err := profile.Normalize(a, opts.ExplorationLevel)
	if err != nil {
		return nil, err
	}
	return recommend(p, warnings, careers, opts)
}

// RecommendProfile recommends careers for an already normalized profile.
func RecommendProfile(p types.UserProfile, careers []types.Career, opts Options) (*types.RecommendationSet, error) {
	if len(careers) == 0 {
		return nil, ErrEmptyCatalog
	}
	if p.ExplorationLevel == 0 {
		p.ExplorationLevel = opts.ExplorationLevel
	}
	if p.ExplorationLevel < profile.MinExploration || p.ExplorationLevel > profile.MaxExploration {
		p.ExplorationLevel = profile.DefaultExploration
	}
	return recommend(p, nil, careers, opts)
}

func recommend(p types.UserProfile, warnings []types.Warning, careers []types.Career, opts Options) (*types.RecommendationSet, error) {
	zoneSize := opts.ZoneSize
	if zoneSize < 1 {
		zoneSize = selection.DefaultZoneSize
	}

	th := theme.Infer(p.ResumeText)
	outcome := guardrails.Apply(guardrails.NewSubject(p, th), careers, opts.Flags)
	scored := ranking.NewScorer(p, th).ScoreAll(outcome.Eligible)

	selOpts := selection.Options{ZoneSize: zoneSize, ExplorationLevel: p.ExplorationLevel}
	if th.Dominant != "" {
		selOpts.Anchor = func(sc ranking.ScoredCareer) bool {
			return slices.Contains(theme.CareerThemes(sc.Career), th.Dominant)
		}
	}
	sel, err := selection.Select(scored, selection.PositionFor(p), selOpts)
	if err != nil {
		return nil, err
	}

	recs := make([]types.Recommendation, 0, len(sel.Selected))
	for i, c := range sel.Selected {
		recs = append(recs, toRecommendation(c, i+1))
	}

	if warnings == nil {
		warnings = []types.Warning{}
	}
	rejections := outcome.Rejections
	if rejections == nil {
		rejections = []types.Rejection{}
	}
	diag := types.Diagnostics{
		Warnings:               warnings,
		DominantTheme:          th.Dominant,
		Themes:                 th.Dominants,
		SecondaryTheme:         th.Secondary,
		InsufficientCandidates: sel.Insufficient,
		CatalogSize:            len(careers),
		EligibleCount:          len(outcome.Eligible),
		FilteredByRule:         make(map[string]int, len(guardrails.Rules)),
		Rejections:             rejections,
		ZoneCounts:             make(map[types.Zone]int, len(types.Zones)),
		ExplorationLevel:       p.ExplorationLevel,
		ZoneSize:               zoneSize,
	}
	for _, r := range guardrails.Rules {
		diag.FilteredByRule[r.Name] = outcome.Counts[r.Name]
	}
	for _, z := range types.Zones {
		diag.ZoneCounts[z] = len(sel.ByZone[z])
	}

	return &types.RecommendationSet{Recommendations: recs, Diagnostics: diag}, nil
}

func toRecommendation(c selection.Candidate, rank int) types.Recommendation {
	reasons := c.Reasons
	if reasons == nil {
		reasons = []string{}
	}
	return types.Recommendation{
		CareerID:            c.Career.CareerID,
		Title:               c.Career.Title,
		Category:            c.Career.Category,
		ExperienceLevel:     c.Career.ExperienceLevel,
		SalaryMin:           c.Career.SalaryMin,
		SalaryMax:           c.Career.SalaryMax,
		Score:               c.Score,
		Zone:                c.Zone,
		OriginalZone:        c.OriginalZone,
		MatchReasons:        reasons,
		ThemeAlignmentBoost: c.ThemeBoost,
		Rank:                rank,
	}
}
