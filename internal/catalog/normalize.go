package catalog

import (
	"fmt"
	"math"
	"strings"
	"unicode"

	"github.com/jonathan/career-compass/internal/profile"
	"github.com/jonathan/career-compass/internal/types"
	"github.com/jonathan/career-compass/internal/vocab"
)

// Default salary bands by level, used when a record carries no salary.
var defaultSalaries = map[vocab.ExperienceLevel][2]int{
	vocab.LevelEntry:     {35_000, 55_000},
	vocab.LevelJunior:    {50_000, 75_000},
	vocab.LevelMid:       {70_000, 120_000},
	vocab.LevelSenior:    {110_000, 180_000},
	vocab.LevelExecutive: {160_000, 300_000},
}

const (
	defaultCategory = vocab.CategoryBusiness
	// Salaries below this are read as thousands ("85" means 85,000).
	thousandsThreshold = 1_000
)

// Slugify builds a kebab-case career ID from free text.
func Slugify(s string) string {
	var b strings.Builder
	dash := false
	for _, r := range vocab.Fold(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			dash = false
			continue
		}
		if !dash && b.Len() > 0 {
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

// normalizeRecord turns a merged record into a complete Career. Every default it has to
// supply is described in the returned notes.
func normalizeRecord(r record) (types.Career, []string) {
	var notes []string
	note := func(format string, args ...any) {
		notes = append(notes, fmt.Sprintf(format, args...))
	}

	c := types.Career{
		CareerID:                recordID(r),
		Title:                   strings.TrimSpace(r.Title),
		Description:             strings.TrimSpace(r.Description),
		RequiredTechnicalSkills: profile.NormalizeSet(r.RequiredTechnicalSkills),
		RequiredSoftSkills:      profile.NormalizeSet(r.RequiredSoftSkills),
		LicenseRequired:         r.LicenseRequired,
		RequiredCertifications:  profile.NormalizeSet(r.RequiredCertifications),
		Companies:               profile.NormalizeSet(r.Companies),
		DayInLife:               strings.TrimSpace(r.DayInLife),
	}

	level, ok := vocab.ParseExperienceLevel(r.ExperienceLevel)
	if !ok {
		switch roleLevel, found := vocab.LevelForRole(r.Title); {
		case found:
			level = roleLevel
		case r.MinYearsExperience != nil:
			level = vocab.LevelForYears(*r.MinYearsExperience)
		default:
			level = vocab.LevelMid
		}
		note("experience level %q unrecognized, using %s", r.ExperienceLevel, level)
	}
	c.ExperienceLevel = level

	category, ok := vocab.ParseCategory(r.Category)
	if !ok {
		category = defaultCategory
		if hinted := vocab.CategoriesForRole(r.Title); len(hinted) > 0 {
			category = hinted[0]
		}
		note("category %q unrecognized, using %s", r.Category, category)
	}
	c.Category = category

	defMin, defMax := vocab.DefaultYearsForLevel(level)
	c.MinYearsExperience, c.MaxYearsExperience = defMin, defMax
	if r.MinYearsExperience != nil {
		c.MinYearsExperience = max(0, *r.MinYearsExperience)
	}
	if r.MaxYearsExperience != nil {
		c.MaxYearsExperience = max(0, *r.MaxYearsExperience)
	}
	if r.MinYearsExperience == nil || r.MaxYearsExperience == nil {
		note("years of experience defaulted for %s", level)
	}
	if c.MinYearsExperience > c.MaxYearsExperience {
		c.MinYearsExperience, c.MaxYearsExperience = c.MaxYearsExperience, c.MinYearsExperience
		note("years of experience were reversed")
	}

	band := defaultSalaries[level]
	c.SalaryMin, c.SalaryMax = band[0], band[1]
	if v, ok := salaryValue(r.SalaryMin); ok {
		c.SalaryMin = v
	}
	if v, ok := salaryValue(r.SalaryMax); ok {
		c.SalaryMax = v
	}
	if r.SalaryMin == nil || r.SalaryMax == nil {
		note("salary defaulted for %s", level)
	}
	if c.SalaryMin > c.SalaryMax {
		c.SalaryMin, c.SalaryMax = c.SalaryMax, c.SalaryMin
		note("salary bounds were reversed")
	}

	c.PreferenceWeights = make(map[vocab.PreferenceKey]float64, len(vocab.PreferenceKeys))
	for name, w := range r.PreferenceWeights {
		key, ok := vocab.ParsePreferenceKey(name)
		if !ok {
			note("unknown preference weight %q dropped", name)
			continue
		}
		c.PreferenceWeights[key] = min(max(w, 0), 1)
	}
	missing := 0
	for _, key := range vocab.PreferenceKeys {
		if _, ok := c.PreferenceWeights[key]; !ok {
			c.PreferenceWeights[key] = vocab.DefaultPreferenceWeight
			missing++
		}
	}
	if missing > 0 {
		note("%d preference weights defaulted", missing)
	}

	for _, name := range r.Themes {
		if t, ok := vocab.ParseTheme(name); ok {
			c.Themes = append(c.Themes, t)
		} else {
			note("unknown theme %q dropped", name)
		}
	}

	return c, notes
}

func recordID(r record) string {
	if id := Slugify(r.CareerID); id != "" {
		return id
	}
	return Slugify(r.Title)
}

func salaryValue(v *float64) (int, bool) {
	if v == nil || *v < 0 {
		return 0, false
	}
	value := *v
	if value > 0 && value < thousandsThreshold {
		value *= 1_000
	}
	return int(math.Round(value)), true
}
