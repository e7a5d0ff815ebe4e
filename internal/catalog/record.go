package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/career-compass/internal/schemas"
)

// record is a career as it appears in a source file. Fields are loose so partial and
// inconsistent records can be merged before normalization.
type record struct {
	CareerID                string             `json:"career_id"`
	Title                   string             `json:"title"`
	Description             string             `json:"description"`
	RequiredTechnicalSkills []string           `json:"required_technical_skills"`
	RequiredSoftSkills      []string           `json:"required_soft_skills"`
	SalaryMin               *float64           `json:"salary_min"`
	SalaryMax               *float64           `json:"salary_max"`
	ExperienceLevel         string             `json:"experience_level"`
	MinYearsExperience      *int               `json:"min_years_experience"`
	MaxYearsExperience      *int               `json:"max_years_experience"`
	PreferenceWeights       map[string]float64 `json:"preference_weights"`
	Category                string             `json:"category"`
	Themes                  []string           `json:"themes"`
	LicenseRequired         bool               `json:"license_required"`
	RequiredCertifications  []string           `json:"required_certifications"`
	Companies               []string           `json:"companies"`
	DayInLife               string             `json:"day_in_life"`
}

type wrappedRecords struct {
	Careers []record `json:"careers"`
}

// readFile decodes a catalog source file. The catalog schema is applied when it can be found.
func readFile(path string) ([]record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Message: "failed to read catalog file", Cause: err}
	}

	if schemaPath := schemas.ResolveSchemaPath(schemas.CareerCatalogSchema); schemaPath != "" {
		if err := schemas.ValidateBytes(schemaPath, data); err != nil {
			return nil, &LoadError{Path: path, Message: "catalog file failed schema validation", Cause: err}
		}
	}

	records, err := decodeRecords(data)
	if err != nil {
		return nil, &LoadError{Path: path, Message: "failed to decode catalog file", Cause: err}
	}
	return records, nil
}

// decodeRecords accepts a bare JSON array or an object with a "careers" array.
func decodeRecords(data []byte) ([]record, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("empty document")
	}

	if trimmed[0] == '[' {
		var records []record
		if err := json.Unmarshal(trimmed, &records); err != nil {
			return nil, err
		}
		return records, nil
	}

	var wrapped wrappedRecords
	if err := json.Unmarshal(trimmed, &wrapped); err != nil {
		return nil, err
	}
	if wrapped.Careers == nil {
		return nil, fmt.Errorf(`expected an array or an object with a "careers" array`)
	}
	return wrapped.Careers, nil
}
