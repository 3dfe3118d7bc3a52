package teamdb

import (
	"context"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Repository defines the contract for team persistence.
type Repository interface {
	// Insert stores a new team. A zero ID is assigned by the database.
	Insert(ctx context.Context, db bun.IDB, team *Team) error

	// GetByID retrieves a team by its ID.
	GetByID(ctx context.Context, db bun.IDB, id uuid.UUID) (*Team, error)

	// GetByIDs retrieves every team whose ID is listed, keyed by ID.
	GetByIDs(ctx context.Context, db bun.IDB, ids []uuid.UUID) (map[uuid.UUID]*Team, error)

	// ListByCreation returns teams in registration order. A non-positive
	// limit returns every team.
	ListByCreation(ctx context.Context, db bun.IDB, limit int) ([]*Team, error)

	// ListByRating returns every team, highest rating first.
	ListByRating(ctx context.Context, db bun.IDB) ([]*Team, error)

	// Count returns the number of registered teams.
	Count(ctx context.Context, db bun.IDB) (int, error)

	// Update replaces the mutable columns of an existing team.
	Update(ctx context.Context, db bun.IDB, team *Team) error

	// Delete removes a team.
	Delete(ctx context.Context, db bun.IDB, id uuid.UUID) error

	// ExistsByRepEmail reports whether a team is already represented by email.
	ExistsByRepEmail(ctx context.Context, db bun.IDB, email string) (bool, error)
}
