package teamservice

import (
	"context"

	teamdomain "github.com/Black-And-White-Club/anleague/app/modules/team/domain"
	"github.com/google/uuid"
)

// ListOrder selects the ordering of ListTeams.
type ListOrder string

const (
	OrderByCreation ListOrder = "created"
	OrderByRating   ListOrder = "rating"
)

// RegisterTeamRequest is a team registration.
type RegisterTeamRequest struct {
	Country      string                   `json:"country"`
	RepName      string                   `json:"rep_name"`
	RepEmail     string                   `json:"rep_email"`
	RepPassword  string                   `json:"rep_password"`
	Manager      string                   `json:"manager"`
	Autofill     bool                     `json:"autofill"`
	Players      []teamdomain.PlayerEntry `json:"players"`
	CaptainIndex int                      `json:"captain_index"`
}

// Service defines the team application operations.
type Service interface {
	RegisterTeam(ctx context.Context, req RegisterTeamRequest) (*teamdomain.Team, error)
	SeedDemoTeams(ctx context.Context, n int) ([]teamdomain.Team, error)
	AddDemoTeam(ctx context.Context) (*teamdomain.Team, error)
	RemoveTeam(ctx context.Context, id uuid.UUID) error
	ReplaceTeam(ctx context.Context, id uuid.UUID) (*teamdomain.Team, error)
	ListTeams(ctx context.Context, order ListOrder) ([]teamdomain.Team, error)
	GetTeam(ctx context.Context, id uuid.UUID) (*teamdomain.Team, error)
	CreateRepUsers(ctx context.Context, password string) ([]string, error)
}
