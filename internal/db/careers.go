package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jonathan/career-compass/internal/types"
	"github.com/jonathan/career-compass/internal/vocab"
)

const careerColumns = `career_id, title, COALESCE(description, ''), category, experience_level,
	min_years, max_years, salary_min, salary_max, technical_skills, soft_skills,
	preference_weights, themes, companies, COALESCE(day_in_life, ''), license_required,
	required_certifications`

// careerRow holds the jsonb columns of a careers row before decoding.
type careerRow struct {
	career           types.Career
	category, level  string
	technical, soft  []byte
	weights, themes  []byte
	companies, certs []byte
}

func scanCareer(row pgx.Row) (*types.Career, error) {
	var r careerRow
	c := &r.career
	err := row.Scan(
		&c.CareerID, &c.Title, &c.Description, &r.category, &r.level,
		&c.MinYearsExperience, &c.MaxYearsExperience, &c.SalaryMin, &c.SalaryMax,
		&r.technical, &r.soft, &r.weights, &r.themes, &r.companies, &c.DayInLife,
		&c.LicenseRequired, &r.certs,
	)
	if err != nil {
		return nil, err
	}
	return r.decode()
}

func (r *careerRow) decode() (*types.Career, error) {
	c := r.career
	c.Category = vocab.Category(r.category)
	c.ExperienceLevel = vocab.ExperienceLevel(r.level)

	var themes []string
	fields := []struct {
		name string
		raw  []byte
		dst  any
	}{
		{"technical_skills", r.technical, &c.RequiredTechnicalSkills},
		{"soft_skills", r.soft, &c.RequiredSoftSkills},
		{"preference_weights", r.weights, &c.PreferenceWeights},
		{"themes", r.themes, &themes},
		{"companies", r.companies, &c.Companies},
		{"required_certifications", r.certs, &c.RequiredCertifications},
	}
	for _, f := range fields {
		if len(f.raw) == 0 {
			continue
		}
		if err := json.Unmarshal(f.raw, f.dst); err != nil {
			return nil, fmt.Errorf("failed to decode %s of career %s: %w", f.name, c.CareerID, err)
		}
	}
	for _, t := range themes {
		c.Themes = append(c.Themes, vocab.Theme(t))
	}
	return &c, nil
}

// ListCareers returns every stored career ordered by ID
func (db *DB) ListCareers(ctx context.Context) ([]types.Career, error) {
	rows, err := db.pool.Query(ctx, `SELECT `+careerColumns+` FROM careers ORDER BY career_id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list careers: %w", err)
	}
	defer rows.Close()

	var careers []types.Career
	for rows.Next() {
		c, err := scanCareer(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan career: %w", err)
		}
		careers = append(careers, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate careers: %w", err)
	}
	return careers, nil
}

// GetCareer returns a career by ID, or nil if none exists
func (db *DB) GetCareer(ctx context.Context, careerID string) (*types.Career, error) {
	c, err := scanCareer(db.pool.QueryRow(ctx,
		`SELECT `+careerColumns+` FROM careers WHERE career_id = $1`, careerID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get career: %w", err)
	}
	return c, nil
}

// CountCareers returns the number of stored careers
func (db *DB) CountCareers(ctx context.Context) (int, error) {
	var n int
	if err := db.pool.QueryRow(ctx, `SELECT COUNT(*) FROM careers`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count careers: %w", err)
	}
	return n, nil
}

const upsertCareerSQL = `INSERT INTO careers (
	career_id, title, description, category, experience_level, min_years, max_years,
	salary_min, salary_max, technical_skills, soft_skills, preference_weights, themes,
	companies, day_in_life, license_required, required_certifications, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, NOW())
ON CONFLICT (career_id) DO UPDATE SET
	title = EXCLUDED.title,
	description = EXCLUDED.description,
	category = EXCLUDED.category,
	experience_level = EXCLUDED.experience_level,
	min_years = EXCLUDED.min_years,
	max_years = EXCLUDED.max_years,
	salary_min = EXCLUDED.salary_min,
	salary_max = EXCLUDED.salary_max,
	technical_skills = EXCLUDED.technical_skills,
	soft_skills = EXCLUDED.soft_skills,
	preference_weights = EXCLUDED.preference_weights,
	themes = EXCLUDED.themes,
	companies = EXCLUDED.companies,
	day_in_life = EXCLUDED.day_in_life,
	license_required = EXCLUDED.license_required,
	required_certifications = EXCLUDED.required_certifications,
	updated_at = NOW()`

// UpsertCareers inserts or replaces careers in one batch and returns how many rows were written.
func (db *DB) UpsertCareers(ctx context.Context, careers []types.Career) (int, error) {
	if len(careers) == 0 {
		return 0, nil
	}

	batch := &pgx.Batch{}
	for i := range careers {
		args, err := careerArgs(&careers[i])
		if err != nil {
			return 0, err
		}
		batch.Queue(upsertCareerSQL, args...)
	}

	results := db.pool.SendBatch(ctx, batch)
	defer results.Close()

	written := 0
	for i := range careers {
		if _, err := results.Exec(); err != nil {
			return written, fmt.Errorf("failed to upsert career %s: %w", careers[i].CareerID, err)
		}
		written++
	}
	return written, nil
}

func careerArgs(c *types.Career) ([]any, error) {
	themes := make([]string, len(c.Themes))
	for i, t := range c.Themes {
		themes[i] = string(t)
	}
	weights := c.PreferenceWeights
	if weights == nil {
		weights = map[vocab.PreferenceKey]float64{}
	}
	weightsJSON, err := json.Marshal(weights)
	if err != nil {
		return nil, fmt.Errorf("failed to encode preference weights of career %s: %w", c.CareerID, err)
	}
	return []any{
		c.CareerID, c.Title, c.Description, string(c.Category), string(c.ExperienceLevel),
		c.MinYearsExperience, c.MaxYearsExperience, c.SalaryMin, c.SalaryMax,
		StringArray(c.RequiredTechnicalSkills), StringArray(c.RequiredSoftSkills), weightsJSON,
		StringArray(themes), StringArray(c.Companies), c.DayInLife, c.LicenseRequired,
		StringArray(c.RequiredCertifications),
	}, nil
}
