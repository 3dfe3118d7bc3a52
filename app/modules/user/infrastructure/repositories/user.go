package userdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/driver/pgdriver"
)

const uniqueViolation = "23505"

// Impl implements the Repository interface using Bun ORM.
type Impl struct {
	db bun.IDB
}

// NewRepository creates a new user repository.
func NewRepository(db bun.IDB) Repository {
	return &Impl{db: db}
}

func (r *Impl) resolveDB(db bun.IDB) bun.IDB {
	if db == nil {
		return r.db
	}
	return db
}

func (r *Impl) Insert(ctx context.Context, db bun.IDB, user *User) error {
	db = r.resolveDB(db)
	q := db.NewInsert().Model(user)
	if user.ID == uuid.Nil {
		q = q.ExcludeColumn("id")
	}
	if user.CreatedAt.IsZero() {
		q = q.ExcludeColumn("created_at")
	}
	if _, err := q.Returning("*").Exec(ctx); err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateUsername
		}
		return fmt.Errorf("failed to insert user: %w", err)
	}
	return nil
}

func (r *Impl) GetByUsername(ctx context.Context, db bun.IDB, username string) (*User, error) {
	db = r.resolveDB(db)
	user := new(User)
	err := db.NewSelect().
		Model(user).
		Where("username = ?", username).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user by username: %w", err)
	}
	return user, nil
}

func (r *Impl) ExistsByUsername(ctx context.Context, db bun.IDB, username string) (bool, error) {
	db = r.resolveDB(db)
	exists, err := db.NewSelect().
		Model((*User)(nil)).
		Where("username = ?", username).
		Exists(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to check username: %w", err)
	}
	return exists, nil
}

func (r *Impl) DeleteByTeamID(ctx context.Context, db bun.IDB, teamID uuid.UUID) error {
	db = r.resolveDB(db)
	if _, err := db.NewDelete().
		Model((*User)(nil)).
		Where("team_id = ?", teamID).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete team users: %w", err)
	}
	return nil
}

// isUniqueViolation recognises unique constraint errors from both the
// pgdriver connector and pgx.
func isUniqueViolation(err error) bool {
	var pgErr pgdriver.Error
	if errors.As(err, &pgErr) {
		return pgErr.Field('C') == uniqueViolation
	}
	var pgxErr *pgconn.PgError
	if errors.As(err, &pgxErr) {
		return pgxErr.Code == uniqueViolation
	}
	return false
}
