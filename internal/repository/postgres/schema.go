package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// InitSchema creates the tables for this environment's prefix if they do
// not exist yet. Statements run in order because of the foreign keys.
func InitSchema(ctx context.Context, pool *pgxpool.Pool, tables TableNames) error {
	stmts := []string{
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
			id UUID PRIMARY KEY,
			email TEXT NOT NULL UNIQUE,
			password_hash TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`, tables.Identities),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
			id UUID PRIMARY KEY,
			user_id UUID NOT NULL REFERENCES %s(id),
			name TEXT NOT NULL,
			kind TEXT NOT NULL,
			topic TEXT NOT NULL,
			config JSONB NOT NULL DEFAULT '[]',
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`, tables.Projects, tables.Identities),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
			id UUID PRIMARY KEY,
			project_id UUID NOT NULL REFERENCES %s(id),
			order_index INTEGER NOT NULL,
			title TEXT NOT NULL,
			content TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			UNIQUE (project_id, order_index)
		)`, tables.Sections, tables.Projects),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
			id UUID PRIMARY KEY,
			section_id UUID NOT NULL REFERENCES %s(id),
			prompt TEXT NOT NULL,
			response TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`, tables.Revisions, tables.Sections),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
			section_id UUID PRIMARY KEY REFERENCES %s(id),
			sentiment TEXT NOT NULL DEFAULT 'none',
			comment TEXT NOT NULL DEFAULT '',
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`, tables.Feedback, tables.Sections),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
			id UUID PRIMARY KEY,
			section_id UUID NOT NULL REFERENCES %s(id),
			text TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`, tables.Comments, tables.Sections),
		fmt.Sprintf(`CREATE INDEX IF NOT EXISTS idx_%s_project
			ON %s (project_id, order_index)`, tables.Sections, tables.Sections),
		fmt.Sprintf(`CREATE INDEX IF NOT EXISTS idx_%s_section
			ON %s (section_id, created_at DESC)`, tables.Revisions, tables.Revisions),
	}

	for _, stmt := range stmts {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("initializing schema: %w", err)
		}
	}
	return nil
}
