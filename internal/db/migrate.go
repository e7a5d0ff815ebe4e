package db

import (
	"context"
	"fmt"
)

var migrations = []string{
	`CREATE EXTENSION IF NOT EXISTS pgcrypto`,
	`CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		name TEXT NOT NULL,
		email TEXT NOT NULL,
		password_hash TEXT,
		password_set BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS users_email_lower_idx ON users (lower(email))`,
	`CREATE TABLE IF NOT EXISTS careers (
		career_id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		description TEXT,
		category TEXT NOT NULL,
		experience_level TEXT NOT NULL,
		min_years INTEGER NOT NULL DEFAULT 0,
		max_years INTEGER NOT NULL DEFAULT 0,
		salary_min INTEGER NOT NULL DEFAULT 0,
		salary_max INTEGER NOT NULL DEFAULT 0,
		technical_skills JSONB NOT NULL DEFAULT '[]',
		soft_skills JSONB NOT NULL DEFAULT '[]',
		preference_weights JSONB NOT NULL DEFAULT '{}',
		themes JSONB NOT NULL DEFAULT '[]',
		companies JSONB NOT NULL DEFAULT '[]',
		day_in_life TEXT,
		license_required BOOLEAN NOT NULL DEFAULT FALSE,
		required_certifications JSONB NOT NULL DEFAULT '[]',
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS careers_category_idx ON careers (category)`,
}

// Migrate creates the users and careers tables if they do not exist. It is idempotent.
func (db *DB) Migrate(ctx context.Context) error {
	for i, stmt := range migrations {
		if _, err := db.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}
	return nil
}
