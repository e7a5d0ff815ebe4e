package ranking

import (
	"math"
	"sort"

	"github.com/jonathan/career-compass/internal/theme"
	"github.com/jonathan/career-compass/internal/types"
	"github.com/jonathan/career-compass/internal/vocab"
)

// Components holds the per-component scores of a career, each in [0, 1].
type Components struct {
	Skill      float64 `json:"skill"`
	Interest   float64 `json:"interest"`
	Preference float64 `json:"preference"`
	Salary     float64 `json:"salary"`
	Experience float64 `json:"experience"`
	Theme      float64 `json:"theme"`
}

// ScoredCareer is a career with its relevance score and explanation.
type ScoredCareer struct {
	Career        types.Career
	Score         int // 0..100
	Components    Components
	MatchedSkills []string
	MatchedTheme  vocab.Theme
	ThemeBoost    int // Points contributed by theme alignment
	Reasons       []string
}

// Scorer scores careers for one profile. Profile-derived lookups are built once.
type Scorer struct {
	profile        types.UserProfile
	theme          theme.Result
	userSkills     map[string]bool
	interestTokens map[string]bool
}

// NewScorer prepares a scorer for a normalized profile and its inferred themes.
func NewScorer(p types.UserProfile, th theme.Result) *Scorer {
	s := &Scorer{
		profile:        p,
		theme:          th,
		userSkills:     make(map[string]bool),
		interestTokens: make(map[string]bool),
	}
	for _, set := range [][]string{p.TechnicalSkills, p.SoftSkills, p.Certifications} {
		for _, skill := range set {
			if key := vocab.SkillKey(skill); key != "" {
				s.userSkills[key] = true
			}
		}
	}
	for _, set := range [][]string{p.Interests, p.Industries} {
		for _, item := range set {
			addTokens(s.interestTokens, item)
			if c, ok := vocab.ParseCategory(item); ok {
				addTokens(s.interestTokens, string(c))
			}
		}
	}
	return s
}

// Score computes the relevance of a single career.
func (s *Scorer) Score(c types.Career) ScoredCareer {
	var comps Components
	var matchedSkills []string
	var matchedTheme vocab.Theme

	comps.Skill, matchedSkills = computeSkillScore(s.userSkills, c)
	comps.Interest = computeInterestScore(s.interestTokens, c)
	comps.Preference = computePreferenceScore(s.profile.Preferences, c)
	comps.Salary = computeSalaryScore(s.profile.SalaryMin, s.profile.SalaryMax, c)
	comps.Experience = computeExperienceScore(s.profile.ExperienceYears, c)
	comps.Theme, matchedTheme = computeThemeScore(s.theme, c)

	total := skillWeight*comps.Skill +
		interestWeight*comps.Interest +
		preferenceWeight*comps.Preference +
		salaryWeight*comps.Salary +
		experienceWeight*comps.Experience +
		themeWeight*comps.Theme

	score := int(math.Round(total * 100))
	score = min(max(score, 0), 100)

	return ScoredCareer{
		Career:        c,
		Score:         score,
		Components:    comps,
		MatchedSkills: matchedSkills,
		MatchedTheme:  matchedTheme,
		ThemeBoost:    int(math.Round(themeWeight * comps.Theme * 100)),
		Reasons:       generateReasons(comps, matchedTheme),
	}
}

// ScoreAll scores careers and returns them in ranking order.
func (s *Scorer) ScoreAll(careers []types.Career) []ScoredCareer {
	scored := make([]ScoredCareer, 0, len(careers))
	for _, c := range careers {
		scored = append(scored, s.Score(c))
	}
	Sort(scored)
	return scored
}

// Less orders careers by score, then skill fit, then salary fit, then career ID.
func Less(a, b ScoredCareer) bool {
	if a.Score != b.Score {
		return a.Score > b.Score
	}
	if a.Components.Skill != b.Components.Skill {
		return a.Components.Skill > b.Components.Skill
	}
	if a.Components.Salary != b.Components.Salary {
		return a.Components.Salary > b.Components.Salary
	}
	return a.Career.CareerID < b.Career.CareerID
}

// Sort orders scored careers in place by Less.
func Sort(scored []ScoredCareer) {
	sort.SliceStable(scored, func(i, j int) bool {
		return Less(scored[i], scored[j])
	})
}
