// Package ranking scores eligible careers against a normalized user profile.
package ranking

import (
	"github.com/jonathan/career-compass/internal/theme"
	"github.com/jonathan/career-compass/internal/types"
	"github.com/jonathan/career-compass/internal/vocab"
)

// Component weights. They sum to 1.
const (
	skillWeight      = 0.30
	interestWeight   = 0.15
	preferenceWeight = 0.20
	salaryWeight     = 0.15
	experienceWeight = 0.10
	themeWeight      = 0.10
)

const (
	// technicalSkillWeight and softSkillWeight weight required skills 2:1.
	technicalSkillWeight = 2.0
	softSkillWeight      = 1.0
	// experienceDecayYears is the distance outside a career's year range at which fit reaches 0.
	experienceDecayYears = 5.0
)

// stopWords are ignored when building interest token sets.
var stopWords = map[string]bool{
	"a": true, "an": true, "and": true, "the": true, "of": true, "in": true,
	"for": true, "to": true, "with": true, "on": true, "or": true,
}

// computeSkillScore returns the weighted share of required skills the user holds and the
// required skills that matched, in catalog order.
func computeSkillScore(userSkills map[string]bool, c types.Career) (float64, []string) {
	matched := make([]string, 0)
	seen := make(map[string]bool)
	matchedWeight, totalWeight := 0.0, 0.0

	tally := func(skills []string, weight float64) {
		for _, skill := range skills {
			key := vocab.SkillKey(skill)
			if key == "" || seen[key] {
				continue
			}
			seen[key] = true
			totalWeight += weight
			if userSkills[key] {
				matchedWeight += weight
				matched = append(matched, skill)
			}
		}
	}
	tally(c.RequiredTechnicalSkills, technicalSkillWeight)
	tally(c.RequiredSoftSkills, softSkillWeight)

	return matchedWeight / max(1, totalWeight), matched
}

// computeInterestScore is the Jaccard similarity between the user's interest and industry
// words and the career's category plus required-skill words.
func computeInterestScore(userTokens map[string]bool, c types.Career) float64 {
	if len(userTokens) == 0 {
		return 0
	}
	careerTokens := make(map[string]bool)
	addTokens(careerTokens, string(c.Category))
	for _, s := range c.RequiredTechnicalSkills {
		addTokens(careerTokens, s)
	}
	for _, s := range c.RequiredSoftSkills {
		addTokens(careerTokens, s)
	}
	if len(careerTokens) == 0 {
		return 0
	}

	intersection := 0
	for tok := range userTokens {
		if careerTokens[tok] {
			intersection++
		}
	}
	union := len(userTokens) + len(careerTokens) - intersection
	return float64(intersection) / float64(union)
}

// computePreferenceScore is 1 minus the normalized L1 distance between the user's sliders,
// rescaled to 0..1, and the career's preference weights. A missing weight counts as
// vocab.DefaultPreferenceWeight, the value catalog ingest fills in.
func computePreferenceScore(prefs map[vocab.PreferenceKey]int, c types.Career) float64 {
	distance := 0.0
	for _, key := range vocab.PreferenceKeys {
		value, ok := prefs[key]
		if !ok || value == 0 {
			value = vocab.PreferenceNeutral
		}
		user := float64(value-vocab.PreferenceMin) / float64(vocab.PreferenceMax-vocab.PreferenceMin)
		weight, ok := c.PreferenceWeights[key]
		if !ok {
			weight = vocab.DefaultPreferenceWeight
		}
		weight = min(max(weight, 0), 1)
		distance += abs(user - weight)
	}
	return clamp01(1 - distance/float64(len(vocab.PreferenceKeys)))
}

// computeSalaryScore is 1 when the ranges overlap and decays linearly with the gap, reaching 0
// at twice the larger range width.
func computeSalaryScore(userMin, userMax int, c types.Career) float64 {
	if userMin <= c.SalaryMax && c.SalaryMin <= userMax {
		return 1
	}
	gap := c.SalaryMin - userMax
	if c.SalaryMax < userMin {
		gap = userMin - c.SalaryMax
	}
	width := max(1, max(userMax-userMin, c.SalaryMax-c.SalaryMin))
	return clamp01(1 - float64(gap)/float64(2*width))
}

// computeExperienceScore is 1 inside the career's year range and decays to 0 over five years
// outside it.
func computeExperienceScore(years int, c types.Career) float64 {
	var distance int
	switch {
	case years < c.MinYearsExperience:
		distance = c.MinYearsExperience - years
	case years > c.MaxYearsExperience:
		distance = years - c.MaxYearsExperience
	default:
		return 1
	}
	return clamp01(1 - float64(distance)/experienceDecayYears)
}

// computeThemeScore credits careers that share the resume's dominant or secondary theme.
func computeThemeScore(th theme.Result, c types.Career) (float64, vocab.Theme) {
	return th.Alignment(theme.CareerThemes(c))
}

func addTokens(set map[string]bool, text string) {
	for _, tok := range vocab.Tokenize(text) {
		if !stopWords[tok] {
			set[tok] = true
		}
	}
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

func clamp01(x float64) float64 {
	return min(max(x, 0), 1)
}
