package tournamentservice

import (
	"context"
	"time"

	teamdomain "github.com/Black-And-White-Club/anleague/app/modules/team/domain"
	tournamentdomain "github.com/Black-And-White-Club/anleague/app/modules/tournament/domain"
	tournamentdb "github.com/Black-And-White-Club/anleague/app/modules/tournament/infrastructure/repositories"
	"github.com/google/uuid"
)

// Status is the progression state of the current bracket.
type Status struct {
	State      tournamentdomain.State `json:"state"`
	AllowStart bool                   `json:"allow_start"`
	TeamCount  int                    `json:"team_count"`
	MatchCount int                    `json:"match_count"`
}

// SimulationReport describes one simulate call.
type SimulationReport struct {
	Simulated []*tournamentdb.Match `json:"simulated"`
	// Skipped lists matches left unplayed because a team was removed or
	// another caller played them first.
	Skipped    []uuid.UUID              `json:"skipped,omitempty"`
	Tournament *tournamentdb.Tournament `json:"tournament,omitempty"`
}

// MatchView is a match with its live teams. A removed team is nil.
type MatchView struct {
	Match *tournamentdb.Match `json:"match"`
	Team1 *teamdomain.Team    `json:"team1,omitempty"`
	Team2 *teamdomain.Team    `json:"team2,omitempty"`
}

// RepDashboard is a representative's own team and its matches.
type RepDashboard struct {
	Team    teamdomain.Team       `json:"team"`
	Matches []*tournamentdb.Match `json:"matches"`
}

// AdminDashboard lists every team and match by creation.
type AdminDashboard struct {
	Teams   []teamdomain.Team     `json:"teams"`
	Matches []*tournamentdb.Match `json:"matches"`
	Status
}

// Service defines the tournament application operations.
type Service interface {
	StartTournament(ctx context.Context) ([]*tournamentdb.Match, error)
	SimulateMatch(ctx context.Context, id uuid.UUID) (*SimulationReport, error)
	SimulateAll(ctx context.Context) (*SimulationReport, error)
	Reset(ctx context.Context) (int, error)
	Status(ctx context.Context) (*Status, error)
	GetMatch(ctx context.Context, id uuid.UUID) (*MatchView, error)
	Bracket(ctx context.Context) ([]*tournamentdb.Match, error)
	History(ctx context.Context, since *time.Time) ([]*tournamentdb.Tournament, error)
	RepDashboard(ctx context.Context, teamID uuid.UUID) (*RepDashboard, error)
	AdminDashboard(ctx context.Context) (*AdminDashboard, error)
}
