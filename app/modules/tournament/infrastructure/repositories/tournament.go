package tournamentdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/uptrace/bun"
)

func (r *Impl) InsertTournament(ctx context.Context, db bun.IDB, t *Tournament) error {
	db = r.resolveDB(db)
	if _, err := db.NewInsert().Model(t).Exec(ctx); err != nil {
		return fmt.Errorf("failed to insert tournament: %w", err)
	}
	return nil
}

func (r *Impl) LatestTournament(ctx context.Context, db bun.IDB) (*Tournament, error) {
	db = r.resolveDB(db)
	t := new(Tournament)
	err := db.NewSelect().
		Model(t).
		Order("played_at DESC").
		Limit(1).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get latest tournament: %w", err)
	}
	return t, nil
}

func (r *Impl) ListTournaments(ctx context.Context, db bun.IDB) ([]*Tournament, error) {
	db = r.resolveDB(db)
	var ts []*Tournament
	if err := db.NewSelect().Model(&ts).Order("played_at DESC").Scan(ctx); err != nil {
		return nil, fmt.Errorf("failed to list tournaments: %w", err)
	}
	return ts, nil
}
