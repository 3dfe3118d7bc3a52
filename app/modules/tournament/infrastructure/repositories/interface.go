package tournamentdb

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Repository defines the contract for match and tournament persistence.
type Repository interface {
	// InsertMatches stores a batch of fixtures.
	InsertMatches(ctx context.Context, db bun.IDB, matches []*Match) error

	// GetMatch retrieves a match by its ID.
	GetMatch(ctx context.Context, db bun.IDB, id uuid.UUID) (*Match, error)

	// ListMatches returns every match in creation order.
	ListMatches(ctx context.Context, db bun.IDB) ([]*Match, error)

	// ListUnplayed returns unplayed matches in creation order.
	ListUnplayed(ctx context.Context, db bun.IDB) ([]*Match, error)

	// ListPlayed returns played matches, most recent first. A nil since
	// returns the full history.
	ListPlayed(ctx context.Context, db bun.IDB, since *time.Time) ([]*Match, error)

	// ListPlayedByTeam returns played matches involving teamID.
	ListPlayedByTeam(ctx context.Context, db bun.IDB, teamID uuid.UUID) ([]*Match, error)

	// CountMatches returns the number of stored matches.
	CountMatches(ctx context.Context, db bun.IDB) (int, error)

	// RecordResult stores the result of an unplayed match.
	RecordResult(ctx context.Context, db bun.IDB, match *Match) error

	// DeleteAllMatches removes every match and returns how many were removed.
	DeleteAllMatches(ctx context.Context, db bun.IDB) (int, error)

	// InsertTournament stores a completed tournament.
	InsertTournament(ctx context.Context, db bun.IDB, t *Tournament) error

	// LatestTournament returns the most recently completed tournament.
	LatestTournament(ctx context.Context, db bun.IDB) (*Tournament, error)

	// ListTournaments returns completed tournaments, most recent first.
	ListTournaments(ctx context.Context, db bun.IDB) ([]*Tournament, error)
}
