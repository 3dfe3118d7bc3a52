package tournamentdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Impl implements the Repository interface using Bun ORM.
type Impl struct {
	db bun.IDB
}

// NewRepository creates a new tournament repository.
func NewRepository(db bun.IDB) Repository {
	return &Impl{db: db}
}

func (r *Impl) resolveDB(db bun.IDB) bun.IDB {
	if db == nil {
		return r.db
	}
	return db
}

func (r *Impl) InsertMatches(ctx context.Context, db bun.IDB, matches []*Match) error {
	if len(matches) == 0 {
		return nil
	}
	db = r.resolveDB(db)
	if _, err := db.NewInsert().Model(&matches).Exec(ctx); err != nil {
		return fmt.Errorf("failed to insert matches: %w", err)
	}
	return nil
}

func (r *Impl) GetMatch(ctx context.Context, db bun.IDB, id uuid.UUID) (*Match, error) {
	db = r.resolveDB(db)
	match := new(Match)
	err := db.NewSelect().
		Model(match).
		Where("id = ?", id).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get match: %w", err)
	}
	return match, nil
}

func (r *Impl) ListMatches(ctx context.Context, db bun.IDB) ([]*Match, error) {
	db = r.resolveDB(db)
	var matches []*Match
	if err := db.NewSelect().Model(&matches).Order("created_at ASC").Scan(ctx); err != nil {
		return nil, fmt.Errorf("failed to list matches: %w", err)
	}
	return matches, nil
}

func (r *Impl) ListUnplayed(ctx context.Context, db bun.IDB) ([]*Match, error) {
	db = r.resolveDB(db)
	var matches []*Match
	err := db.NewSelect().
		Model(&matches).
		Where("played = false").
		Order("created_at ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list unplayed matches: %w", err)
	}
	return matches, nil
}

func (r *Impl) ListPlayed(ctx context.Context, db bun.IDB, since *time.Time) ([]*Match, error) {
	db = r.resolveDB(db)
	var matches []*Match
	q := db.NewSelect().
		Model(&matches).
		Where("played = true")
	if since != nil {
		q = q.Where("played_at >= ?", since.UTC())
	}
	if err := q.Order("played_at DESC", "created_at DESC").Scan(ctx); err != nil {
		return nil, fmt.Errorf("failed to list played matches: %w", err)
	}
	return matches, nil
}

func (r *Impl) ListPlayedByTeam(ctx context.Context, db bun.IDB, teamID uuid.UUID) ([]*Match, error) {
	db = r.resolveDB(db)
	var matches []*Match
	err := db.NewSelect().
		Model(&matches).
		Where("played = true").
		WhereGroup(" AND ", func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where("team1_id = ?", teamID).WhereOr("team2_id = ?", teamID)
		}).
		Order("created_at ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list team matches: %w", err)
	}
	return matches, nil
}

func (r *Impl) CountMatches(ctx context.Context, db bun.IDB) (int, error) {
	db = r.resolveDB(db)
	n, err := db.NewSelect().Model((*Match)(nil)).Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count matches: %w", err)
	}
	return n, nil
}

// RecordResult only touches rows that are still unplayed, so a concurrent
// second simulation of the same match loses with ErrAlreadyPlayed.
func (r *Impl) RecordResult(ctx context.Context, db bun.IDB, match *Match) error {
	db = r.resolveDB(db)
	result, err := db.NewUpdate().
		Model(match).
		Column("score1", "score2", "scorers", "played", "winner_id", "commentary", "decided_by", "shootout", "played_at").
		WherePK().
		Where("played = false").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to record match result: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return ErrAlreadyPlayed
	}
	return nil
}

func (r *Impl) DeleteAllMatches(ctx context.Context, db bun.IDB) (int, error) {
	db = r.resolveDB(db)
	result, err := db.NewDelete().
		Model((*Match)(nil)).
		Where("TRUE").
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to delete matches: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return int(rows), nil
}
