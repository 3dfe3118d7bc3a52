package userdb

import (
	"context"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Repository defines the contract for user persistence.
type Repository interface {
	// Insert stores a new user. ErrDuplicateUsername is returned when the
	// username is taken.
	Insert(ctx context.Context, db bun.IDB, user *User) error

	// GetByUsername retrieves a user by username.
	GetByUsername(ctx context.Context, db bun.IDB, username string) (*User, error)

	// ExistsByUsername reports whether username is taken.
	ExistsByUsername(ctx context.Context, db bun.IDB, username string) (bool, error)

	// DeleteByTeamID removes the accounts bound to a team.
	DeleteByTeamID(ctx context.Context, db bun.IDB, teamID uuid.UUID) error
}
