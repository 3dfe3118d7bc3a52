package tournamentmigrations

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Creating matches and tournaments tables...")

		return db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
			if _, err := tx.ExecContext(ctx, `
				CREATE TABLE IF NOT EXISTS matches (
					id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
					team1_id UUID NOT NULL,
					team2_id UUID NOT NULL,
					team1_country TEXT NOT NULL,
					team2_country TEXT NOT NULL,
					stage TEXT NOT NULL,
					score1 INTEGER,
					score2 INTEGER,
					scorers JSONB NOT NULL DEFAULT '[]'::jsonb,
					played BOOLEAN NOT NULL DEFAULT FALSE,
					winner_id UUID,
					commentary TEXT NOT NULL DEFAULT '',
					decided_by TEXT,
					shootout JSONB,
					created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
					played_at TIMESTAMPTZ
				);
				CREATE INDEX IF NOT EXISTS idx_matches_created_at ON matches(created_at);
				CREATE INDEX IF NOT EXISTS idx_matches_played_at ON matches(played_at) WHERE played;
			`); err != nil {
				return fmt.Errorf("failed to create matches table: %w", err)
			}

			if _, err := tx.ExecContext(ctx, `
				CREATE TABLE IF NOT EXISTS tournaments (
					id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
					winner_id UUID NOT NULL,
					winner_country TEXT NOT NULL,
					played_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
				);
			`); err != nil {
				return fmt.Errorf("failed to create tournaments table: %w", err)
			}

			return nil
		})
	}, func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Dropping matches and tournaments tables...")

		if _, err := db.ExecContext(ctx, `DROP TABLE IF EXISTS tournaments; DROP TABLE IF EXISTS matches;`); err != nil {
			return fmt.Errorf("failed to drop tournament tables: %w", err)
		}

		fmt.Println("Tournament tables dropped successfully!")
		return nil
	})
}
