// Package guardrails removes careers that are structurally inappropriate for a profile
// before any scoring happens. Rules are data: an ordered list of named predicates, each
// individually switchable through Flags.
package guardrails

import (
	"github.com/jonathan/career-compass/internal/theme"
	"github.com/jonathan/career-compass/internal/types"
	"github.com/jonathan/career-compass/internal/vocab"
)

// Rule names, in application order.
const (
	RuleSeniorityFloor    = "seniority_floor"
	RuleSeniorityCeiling  = "seniority_ceiling"
	RuleSalaryFloor       = "salary_floor"
	RuleSalaryCeiling     = "salary_ceiling"
	RuleCategoryGuardrail = "category_guardrail"
	RuleLicensure         = "licensure"
)

// Thresholds.
const (
	SeniorYears        = 10
	JuniorYears        = 2
	SalaryFloorRatio   = 0.6
	SalaryCeilingRatio = 1.5
)

// Flags switches individual rules on or off.
type Flags struct {
	// SeniorityCategoryGuardrail gates the seniority floor, category and licensure rules.
	SeniorityCategoryGuardrail bool `json:"seniority_category_guardrail"`
	SalaryGuardrails           bool `json:"salary_guardrails"`
	SeniorityCeiling           bool `json:"seniority_ceiling"`
}

// DefaultFlags enables every rule.
func DefaultFlags() Flags {
	return Flags{
		SeniorityCategoryGuardrail: true,
		SalaryGuardrails:           true,
		SeniorityCeiling:           true,
	}
}

// Subject is what the rules evaluate a career against.
type Subject struct {
	Profile            types.UserProfile
	Theme              theme.Result
	IndustryCategories map[vocab.Category]bool
	certifications     map[string]bool
}

// NewSubject prepares a profile for rule evaluation.
func NewSubject(p types.UserProfile, th theme.Result) *Subject {
	s := &Subject{
		Profile:            p,
		Theme:              th,
		IndustryCategories: vocab.CategorySet(p.Industries),
		certifications:     make(map[string]bool, len(p.Certifications)),
	}
	for _, cert := range p.Certifications {
		s.certifications[vocab.Fold(cert)] = true
	}
	return s
}

// Rule is a named predicate that drops a career when it returns true.
type Rule struct {
	Name    string
	Enabled func(Flags) bool
	Drops   func(s *Subject, c types.Career) bool
}

// Rules is the ordered rule list. A career is attributed to the first rule that drops it.
var Rules = []Rule{
	{
		Name:    RuleSeniorityFloor,
		Enabled: func(f Flags) bool { return f.SeniorityCategoryGuardrail },
		Drops: func(s *Subject, c types.Career) bool {
			if s.Profile.ExperienceYears < SeniorYears {
				return false
			}
			junior := c.ExperienceLevel == vocab.LevelEntry || c.ExperienceLevel == vocab.LevelJunior
			return junior && !s.IndustryCategories[c.Category]
		},
	},
	{
		Name:    RuleSeniorityCeiling,
		Enabled: func(f Flags) bool { return f.SeniorityCeiling },
		Drops: func(s *Subject, c types.Career) bool {
			if s.Profile.ExperienceYears > JuniorYears {
				return false
			}
			return c.ExperienceLevel == vocab.LevelSenior || c.ExperienceLevel == vocab.LevelExecutive
		},
	},
	{
		Name:    RuleSalaryFloor,
		Enabled: func(f Flags) bool { return f.SalaryGuardrails },
		Drops: func(s *Subject, c types.Career) bool {
			return float64(c.SalaryMax) < float64(s.Profile.SalaryMin)*SalaryFloorRatio
		},
	},
	{
		Name:    RuleSalaryCeiling,
		Enabled: func(f Flags) bool { return f.SalaryGuardrails },
		Drops: func(s *Subject, c types.Career) bool {
			return float64(c.SalaryMin) > float64(s.Profile.SalaryMax)*SalaryCeilingRatio
		},
	},
	{
		Name:    RuleCategoryGuardrail,
		Enabled: func(f Flags) bool { return f.SeniorityCategoryGuardrail },
		Drops: func(s *Subject, c types.Career) bool {
			return vocab.NonPhysicalThemes[s.Theme.Dominant] &&
				vocab.PhysicalCategories[c.Category] &&
				!s.IndustryCategories[c.Category]
		},
	},
	{
		Name:    RuleLicensure,
		Enabled: func(f Flags) bool { return f.SeniorityCategoryGuardrail },
		Drops: func(s *Subject, c types.Career) bool {
			if !c.LicenseRequired || s.IndustryCategories[c.Category] {
				return false
			}
			for _, cert := range c.RequiredCertifications {
				if s.certifications[vocab.Fold(cert)] {
					return false
				}
			}
			return true
		},
	},
}

// Rejection records which rule removed a career.
type Rejection = types.Rejection

// Outcome is the result of applying the rules to a catalog.
type Outcome struct {
	Eligible   []types.Career
	Rejections []Rejection
	Counts     map[string]int // Rule name -> careers dropped by it
}

// Apply runs every enabled rule over careers in catalog order.
func Apply(s *Subject, careers []types.Career, flags Flags) Outcome {
	active := make([]Rule, 0, len(Rules))
	for _, r := range Rules {
		if r.Enabled(flags) {
			active = append(active, r)
		}
	}

	out := Outcome{
		Eligible: make([]types.Career, 0, len(careers)),
		Counts:   make(map[string]int),
	}
	for _, c := range careers {
		if rule, dropped := firstDrop(active, s, c); dropped {
			out.Rejections = append(out.Rejections, Rejection{CareerID: c.CareerID, Rule: rule})
			out.Counts[rule]++
			continue
		}
		out.Eligible = append(out.Eligible, c)
	}
	return out
}

func firstDrop(rules []Rule, s *Subject, c types.Career) (string, bool) {
	for _, r := range rules {
		if r.Drops(s, c) {
			return r.Name, true
		}
	}
	return "", false
}
