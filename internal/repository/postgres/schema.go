package postgres

import (
	"context"
	"fmt"

	"go-ats-backend/pkg/logger"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Schema statements are idempotent; InitSchema runs at every startup.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS candidates (
		id           UUID PRIMARY KEY,
		name         TEXT NOT NULL,
		role         TEXT NOT NULL,
		experience   INT NOT NULL,
		resume_link  TEXT NOT NULL,
		status       TEXT NOT NULL DEFAULT 'applied',
		applied_date TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		notes        TEXT NOT NULL DEFAULT '',
		email        TEXT NOT NULL DEFAULT '',
		phone        TEXT NOT NULL DEFAULT '',
		location     TEXT NOT NULL DEFAULT '',
		skills       TEXT[] NOT NULL DEFAULT '{}',
		salary       DOUBLE PRECISION,
		source       TEXT NOT NULL DEFAULT '',
		created_at   TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at   TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	// status-scoped chronological listing
	`CREATE INDEX IF NOT EXISTS idx_candidates_status_applied_date ON candidates (status, applied_date DESC)`,
	`CREATE INDEX IF NOT EXISTS idx_candidates_applied_date ON candidates (applied_date DESC)`,
	// email is indexed but deliberately NOT unique; duplicate emails are allowed
	`CREATE INDEX IF NOT EXISTS idx_candidates_email ON candidates (email)`,
}

// Trigram indexes back the ILIKE substring search over name/role. They need
// the pg_trgm extension, which requires elevated privileges on managed
// Postgres; search still works without them, just unindexed.
var searchIndexStatements = []string{
	`CREATE EXTENSION IF NOT EXISTS pg_trgm`,
	`CREATE INDEX IF NOT EXISTS idx_candidates_name_trgm ON candidates USING GIN (name gin_trgm_ops)`,
	`CREATE INDEX IF NOT EXISTS idx_candidates_role_trgm ON candidates USING GIN (role gin_trgm_ops)`,
}

func InitSchema(ctx context.Context, db *pgxpool.Pool) error {
	for _, stmt := range schemaStatements {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("schema init failed: %w", err)
		}
	}

	for _, stmt := range searchIndexStatements {
		if _, err := db.Exec(ctx, stmt); err != nil {
			logger.Log.Warn("Skipping search index setup", "error", err)
			break
		}
	}

	return nil
}
