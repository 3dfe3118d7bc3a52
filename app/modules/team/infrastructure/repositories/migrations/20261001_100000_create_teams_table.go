package teammigrations

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Creating teams table...")

		_, err := db.ExecContext(ctx, `
			CREATE TABLE IF NOT EXISTS teams (
				id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
				country TEXT NOT NULL,
				rep_name TEXT NOT NULL,
				rep_email TEXT NOT NULL,
				manager TEXT NOT NULL,
				players JSONB NOT NULL DEFAULT '[]'::jsonb,
				rating DOUBLE PRECISION NOT NULL DEFAULT 0,
				created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
			);
			CREATE INDEX IF NOT EXISTS idx_teams_created_at ON teams(created_at);
			CREATE INDEX IF NOT EXISTS idx_teams_rep_email ON teams(lower(rep_email));
		`)
		if err != nil {
			return fmt.Errorf("failed to create teams table: %w", err)
		}

		fmt.Println("Teams table created successfully!")
		return nil
	}, func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Dropping teams table...")

		if _, err := db.ExecContext(ctx, `DROP TABLE IF EXISTS teams;`); err != nil {
			return fmt.Errorf("failed to drop teams table: %w", err)
		}

		fmt.Println("Teams table dropped successfully!")
		return nil
	})
}
