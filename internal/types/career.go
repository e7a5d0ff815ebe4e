// Package types provides type definitions for structured data used throughout the career-compass system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "github.com/jonathan/career-compass/internal/vocab"

// Career is a read-only catalog entry describing a job role and its requirements.
type Career struct {
	CareerID                string                          `json:"career_id"`
	Title                   string                          `json:"title"`
	Description             string                          `json:"description"`
	RequiredTechnicalSkills []string                        `json:"required_technical_skills"`
	RequiredSoftSkills      []string                        `json:"required_soft_skills"`
	SalaryMin               int                             `json:"salary_min"`
	SalaryMax               int                             `json:"salary_max"`
	ExperienceLevel         vocab.ExperienceLevel           `json:"experience_level"`
	MinYearsExperience      int                             `json:"min_years_experience"`
	MaxYearsExperience      int                             `json:"max_years_experience"`
	PreferenceWeights       map[vocab.PreferenceKey]float64 `json:"preference_weights"`
	Category                vocab.Category                  `json:"category"`
	Themes                  []vocab.Theme                   `json:"themes,omitempty"`
	LicenseRequired         bool                            `json:"license_required,omitempty"`
	RequiredCertifications  []string                        `json:"required_certifications,omitempty"`
	Companies               []string                        `json:"companies,omitempty"`
	DayInLife               string                          `json:"day_in_life,omitempty"`
}
