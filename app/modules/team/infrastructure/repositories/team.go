package teamdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Impl implements the Repository interface using Bun ORM.
type Impl struct {
	db bun.IDB
}

// NewRepository creates a new team repository.
func NewRepository(db bun.IDB) Repository {
	return &Impl{db: db}
}

func (r *Impl) resolveDB(db bun.IDB) bun.IDB {
	if db == nil {
		return r.db
	}
	return db
}

func (r *Impl) Insert(ctx context.Context, db bun.IDB, team *Team) error {
	db = r.resolveDB(db)
	q := db.NewInsert().Model(team)
	if team.ID == uuid.Nil {
		q = q.ExcludeColumn("id")
	}
	if team.CreatedAt.IsZero() {
		q = q.ExcludeColumn("created_at")
	}
	if _, err := q.Returning("*").Exec(ctx); err != nil {
		return fmt.Errorf("failed to insert team: %w", err)
	}
	return nil
}

func (r *Impl) GetByID(ctx context.Context, db bun.IDB, id uuid.UUID) (*Team, error) {
	db = r.resolveDB(db)
	team := new(Team)
	err := db.NewSelect().
		Model(team).
		Where("id = ?", id).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get team by ID: %w", err)
	}
	return team, nil
}

func (r *Impl) GetByIDs(ctx context.Context, db bun.IDB, ids []uuid.UUID) (map[uuid.UUID]*Team, error) {
	out := make(map[uuid.UUID]*Team, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	db = r.resolveDB(db)
	var teams []*Team
	err := db.NewSelect().
		Model(&teams).
		Where("id IN (?)", bun.In(ids)).
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get teams by IDs: %w", err)
	}
	for _, t := range teams {
		out[t.ID] = t
	}
	return out, nil
}

func (r *Impl) ListByCreation(ctx context.Context, db bun.IDB, limit int) ([]*Team, error) {
	db = r.resolveDB(db)
	var teams []*Team
	q := db.NewSelect().
		Model(&teams).
		Order("created_at ASC", "id ASC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Scan(ctx); err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}
	return teams, nil
}

func (r *Impl) ListByRating(ctx context.Context, db bun.IDB) ([]*Team, error) {
	db = r.resolveDB(db)
	var teams []*Team
	err := db.NewSelect().
		Model(&teams).
		Order("rating DESC", "created_at ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams by rating: %w", err)
	}
	return teams, nil
}

func (r *Impl) Count(ctx context.Context, db bun.IDB) (int, error) {
	db = r.resolveDB(db)
	n, err := db.NewSelect().Model((*Team)(nil)).Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count teams: %w", err)
	}
	return n, nil
}

func (r *Impl) Update(ctx context.Context, db bun.IDB, team *Team) error {
	db = r.resolveDB(db)
	result, err := db.NewUpdate().
		Model(team).
		Column("country", "rep_name", "rep_email", "manager", "players", "rating").
		WherePK().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to update team: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *Impl) Delete(ctx context.Context, db bun.IDB, id uuid.UUID) error {
	db = r.resolveDB(db)
	result, err := db.NewDelete().
		Model((*Team)(nil)).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete team: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *Impl) ExistsByRepEmail(ctx context.Context, db bun.IDB, email string) (bool, error) {
	db = r.resolveDB(db)
	exists, err := db.NewSelect().
		Model((*Team)(nil)).
		Where("lower(rep_email) = lower(?)", email).
		Exists(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to check rep email: %w", err)
	}
	return exists, nil
}
