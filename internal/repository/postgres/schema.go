package postgres

import (
	"context"
	"database/sql"
)

// EnsureSchema creates the report archive table if it does not exist.
// The service owns this one table, so a startup DDL statement stands in
// for a migration tool.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	const ddl = `
		CREATE TABLE IF NOT EXISTS report_archive (
			id            UUID PRIMARY KEY,
			range_start   TIMESTAMPTZ NOT NULL,
			range_end     TIMESTAMPTZ NOT NULL,
			employee      TEXT,
			checkin_count INTEGER NOT NULL,
			total_amount  DOUBLE PRECISION NOT NULL,
			filename      TEXT NOT NULL,
			generated_at  TIMESTAMPTZ NOT NULL
		)
	`
	_, err := db.ExecContext(ctx, ddl)
	return err
}
