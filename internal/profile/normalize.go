package profile

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jonathan/career-compass/internal/types"
	"github.com/jonathan/career-compass/internal/vocab"
)

// Exploration level bounds.
const (
	MinExploration     = 1
	MaxExploration     = 5
	DefaultExploration = 3
)

// Normalize converts a raw assessment into a UserProfile. Parse problems are returned as
// warnings; a MalformedProfileError is returned only when nothing in the assessment could be
// identified. defaultExploration is used when the assessment leaves exploration_level unset.
func Normalize(a types.Assessment, defaultExploration int) (types.UserProfile, []types.Warning, error) {
	var warnings []types.Warning
	identified := false
	warn := func(field, format string, args ...any) {
		warnings = append(warnings, types.Warning{Field: field, Message: fmt.Sprintf(format, args...)})
	}

	p := types.UserProfile{
		CurrentRole:    strings.TrimSpace(a.CurrentRole),
		ResumeText:     strings.TrimSpace(a.ResumeText),
		EducationLevel: vocab.EducationNone,
	}
	if p.CurrentRole != "" || p.ResumeText != "" {
		identified = true
	}

	years, ok := ParseExperience(a.Experience)
	switch {
	case !ok:
		warn("experience", "unrecognized experience %q, using 0 years", a.Experience)
	case strings.TrimSpace(a.Experience) != "":
		identified = true
	}
	p.ExperienceYears = years

	salary := ParseSalary(a.SalaryExpectations)
	switch {
	case !salary.OK:
		warn("salary_expectations", "%s", salary.Note)
	case strings.TrimSpace(a.SalaryExpectations) != "":
		identified = true
		if salary.Swapped {
			warn("salary_expectations", "salary bounds were reversed, using %d-%d", salary.Min, salary.Max)
		}
	}
	p.SalaryMin, p.SalaryMax = salary.Min, salary.Max

	p.TechnicalSkills = NormalizeSet(a.TechnicalSkills)
	p.SoftSkills = NormalizeSet(a.SoftSkills)
	p.Interests = NormalizeSet(a.Interests)
	p.Industries = NormalizeSet(a.Industries)
	p.Certifications = NormalizeSet(a.Certifications)
	for _, set := range [][]string{p.TechnicalSkills, p.SoftSkills, p.Interests, p.Industries, p.Certifications} {
		if len(set) > 0 {
			identified = true
		}
	}

	prefs, prefWarnings, anyPref := normalizePreferences(a.Preferences)
	p.Preferences = prefs
	warnings = append(warnings, prefWarnings...)
	if anyPref {
		identified = true
	}

	if edu := strings.TrimSpace(a.EducationLevel); edu != "" {
		if level, ok := vocab.ParseEducationLevel(edu); ok {
			p.EducationLevel = level
			identified = true
		} else {
			warn("education_level", "unrecognized education level %q, using %s", edu, vocab.EducationNone)
		}
	}

	if defaultExploration < MinExploration || defaultExploration > MaxExploration {
		defaultExploration = DefaultExploration
	}
	switch {
	case a.ExplorationLevel == 0:
		p.ExplorationLevel = defaultExploration
	case a.ExplorationLevel < MinExploration:
		p.ExplorationLevel = MinExploration
		warn("exploration_level", "exploration level %d out of range, using %d", a.ExplorationLevel, MinExploration)
	case a.ExplorationLevel > MaxExploration:
		p.ExplorationLevel = MaxExploration
		warn("exploration_level", "exploration level %d out of range, using %d", a.ExplorationLevel, MaxExploration)
	default:
		p.ExplorationLevel = a.ExplorationLevel
	}

	if !identified {
		return types.UserProfile{}, warnings, &MalformedProfileError{Warnings: warnings}
	}
	return p, warnings, nil
}

// NormalizeSet trims and deduplicates a set of short strings by their folded form. The first
// spelling seen is kept for display.
func NormalizeSet(values []string) []string {
	out := make([]string, 0, len(values))
	seen := make(map[string]bool, len(values))
	for _, v := range values {
		v = strings.Join(strings.Fields(v), " ")
		key := vocab.Fold(v)
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, v)
	}
	return out
}

// normalizePreferences fills every preference key, clamping values into the slider range and
// defaulting missing keys to neutral. The returned bool reports whether any known key was given.
func normalizePreferences(raw map[string]int) (map[vocab.PreferenceKey]int, []types.Warning, bool) {
	prefs := make(map[vocab.PreferenceKey]int, len(vocab.PreferenceKeys))
	for _, k := range vocab.PreferenceKeys {
		prefs[k] = vocab.PreferenceNeutral
	}

	// Sorted so warnings come out in a stable order.
	names := make([]string, 0, len(raw))
	for name := range raw {
		names = append(names, name)
	}
	sort.Strings(names)

	var warnings []types.Warning
	anyKnown := false
	for _, name := range names {
		value := raw[name]
		key, ok := vocab.ParsePreferenceKey(name)
		if !ok {
			warnings = append(warnings, types.Warning{
				Field:   "preferences",
				Message: fmt.Sprintf("unknown preference %q ignored", name),
			})
			continue
		}
		anyKnown = true
		clamped := min(max(value, vocab.PreferenceMin), vocab.PreferenceMax)
		if clamped != value {
			warnings = append(warnings, types.Warning{
				Field:   "preferences." + string(key),
				Message: fmt.Sprintf("preference %d out of range, using %d", value, clamped),
			})
		}
		prefs[key] = clamped
	}
	return prefs, warnings, anyKnown
}
