package repository

import (
	"context"
	"database/sql"
	"fmt"
)

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS gallery_items (
		id UUID PRIMARY KEY,
		title TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		category TEXT NOT NULL,
		specifications JSONB NOT NULL DEFAULT '{}',
		images JSONB NOT NULL DEFAULT '[]',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_gallery_items_category ON gallery_items (category)`,
	`CREATE INDEX IF NOT EXISTS idx_gallery_items_created_at ON gallery_items (created_at DESC)`,
	`CREATE TABLE IF NOT EXISTS projects (
		id UUID PRIMARY KEY,
		title TEXT NOT NULL,
		client TEXT NOT NULL,
		location TEXT NOT NULL,
		description TEXT NOT NULL,
		category TEXT NOT NULL,
		scope TEXT NOT NULL DEFAULT '',
		completion_date TIMESTAMPTZ,
		featured BOOLEAN NOT NULL DEFAULT FALSE,
		images JSONB NOT NULL DEFAULT '[]',
		products_used JSONB NOT NULL DEFAULT '[]',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_projects_category ON projects (category)`,
	`CREATE INDEX IF NOT EXISTS idx_projects_featured ON projects (featured)`,
	`CREATE INDEX IF NOT EXISTS idx_projects_created_at ON projects (created_at DESC)`,
	`CREATE TABLE IF NOT EXISTS admins (
		id UUID PRIMARY KEY,
		email TEXT NOT NULL UNIQUE,
		password TEXT NOT NULL,
		is_default_password BOOLEAN NOT NULL DEFAULT TRUE,
		name TEXT NOT NULL DEFAULT 'Admin',
		role TEXT NOT NULL DEFAULT 'admin',
		last_login TIMESTAMPTZ,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS inquiries (
		id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT NOT NULL,
		phone TEXT NOT NULL DEFAULT '',
		message TEXT NOT NULL,
		status TEXT NOT NULL DEFAULT 'New',
		sent_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		responded_at TIMESTAMPTZ
	)`,
}

// EnsureSchema creates the tables and indexes if they do not exist yet.
// Called once at startup.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schemaStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("applying schema: %w", err)
		}
	}
	return nil
}
