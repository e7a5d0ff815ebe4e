// Package types provides type definitions for structured data used throughout the career-compass system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "github.com/jonathan/career-compass/internal/vocab"

// Assessment is the raw self-assessment as submitted by the browser client.
type Assessment struct {
	Experience         string         `json:"experience,omitempty"`          // "5-10", "20+ years", "3"
	CurrentRole        string         `json:"current_role,omitempty"`        // Free text
	ResumeText         string         `json:"resume_text,omitempty"`         // Plain text resume
	TechnicalSkills    []string       `json:"technical_skills,omitempty"`    // e.g. "Go", "SQL"
	SoftSkills         []string       `json:"soft_skills,omitempty"`         // e.g. "Communication"
	Interests          []string       `json:"interests,omitempty"`           // Free-form interests
	Industries         []string       `json:"industries,omitempty"`          // Declared industries
	Certifications     []string       `json:"certifications,omitempty"`      // e.g. "PMP"
	Preferences        map[string]int `json:"preferences,omitempty"`         // Preference key -> 1..5
	SalaryExpectations string         `json:"salary_expectations,omitempty"` // "70000-100000", "80k-120k", "flexible"
	EducationLevel     string         `json:"education_level,omitempty"`     // "Bachelor's", "high school", ...
	ExplorationLevel   int            `json:"exploration_level,omitempty" validate:"min=0,max=5"`
}

// UserProfile is the normalized, immutable input to the recommendation engine.
type UserProfile struct {
	ExperienceYears  int                         `json:"experience_years"`
	CurrentRole      string                      `json:"current_role,omitempty"`
	ResumeText       string                      `json:"resume_text,omitempty"`
	TechnicalSkills  []string                    `json:"technical_skills"`
	SoftSkills       []string                    `json:"soft_skills"`
	Interests        []string                    `json:"interests"`
	Industries       []string                    `json:"industries"`
	Certifications   []string                    `json:"certifications"`
	Preferences      map[vocab.PreferenceKey]int `json:"preferences"`
	SalaryMin        int                         `json:"salary_min"`
	SalaryMax        int                         `json:"salary_max"`
	EducationLevel   vocab.EducationLevel        `json:"education_level"`
	ExplorationLevel int                         `json:"exploration_level"`
}

// Warning records a non-fatal normalization problem.
type Warning struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}
