package migration

import (
	"context"
	"log/slog"

	"github.com/jackc/pgx/v4/pgxpool"
)

// RunMigrations creates the tables the Postgres store and export history need.
func RunMigrations(ctx context.Context, pool *pgxpool.Pool) error {
	slog.Info("Starting database migrations")

	for _, m := range migrations {
		if err := m.Up(ctx, pool); err != nil {
			slog.Error("Migration failed", "name", m.Name, "error", err)
			return err
		}
		slog.Info("Migration completed", "name", m.Name)
	}

	slog.Info("All migrations completed successfully")
	return nil
}

// Migration represents a database migration
type Migration struct {
	Name string
	Up   func(ctx context.Context, pool *pgxpool.Pool) error
}

var migrations = []Migration{
	{Name: "create_kv_store", Up: execStmt(createKVStore)},
	{Name: "create_export_jobs", Up: execStmt(createExportJobs)},
	{Name: "add_export_jobs_attempts", Up: execStmt(addExportJobsAttempts)},
}

const createKVStore = `
	CREATE TABLE IF NOT EXISTS kv_store (
		key TEXT PRIMARY KEY,
		value BYTEA NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);
`

const createExportJobs = `
	CREATE TABLE IF NOT EXISTS export_jobs (
		id UUID PRIMARY KEY,
		status TEXT NOT NULL,
		file_name TEXT NOT NULL DEFAULT '',
		artifacts JSONB NOT NULL DEFAULT '{}'::jsonb,
		error TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	);
`

const addExportJobsAttempts = `
	ALTER TABLE export_jobs
	ADD COLUMN IF NOT EXISTS attempts INTEGER NOT NULL DEFAULT 0;
`

func execStmt(query string) func(context.Context, *pgxpool.Pool) error {
	return func(ctx context.Context, pool *pgxpool.Pool) error {
		_, err := pool.Exec(ctx, query)
		return err
	}
}
