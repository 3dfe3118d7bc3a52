package teamhandlers

import (
	"context"

	teamservice "github.com/Black-And-White-Club/anleague/app/modules/team/application"
	teamdomain "github.com/Black-And-White-Club/anleague/app/modules/team/domain"
	"github.com/google/uuid"
)

type FakeService struct {
	RegisterTeamFunc   func(ctx context.Context, req teamservice.RegisterTeamRequest) (*teamdomain.Team, error)
	SeedDemoTeamsFunc  func(ctx context.Context, n int) ([]teamdomain.Team, error)
	AddDemoTeamFunc    func(ctx context.Context) (*teamdomain.Team, error)
	RemoveTeamFunc     func(ctx context.Context, id uuid.UUID) error
	ReplaceTeamFunc    func(ctx context.Context, id uuid.UUID) (*teamdomain.Team, error)
	ListTeamsFunc      func(ctx context.Context, order teamservice.ListOrder) ([]teamdomain.Team, error)
	GetTeamFunc        func(ctx context.Context, id uuid.UUID) (*teamdomain.Team, error)
	CreateRepUsersFunc func(ctx context.Context, password string) ([]string, error)
}

func (f *FakeService) RegisterTeam(ctx context.Context, req teamservice.RegisterTeamRequest) (*teamdomain.Team, error) {
	if f.RegisterTeamFunc != nil {
		return f.RegisterTeamFunc(ctx, req)
	}
	return &teamdomain.Team{ID: uuid.New(), Country: req.Country}, nil
}

func (f *FakeService) SeedDemoTeams(ctx context.Context, n int) ([]teamdomain.Team, error) {
	if f.SeedDemoTeamsFunc != nil {
		return f.SeedDemoTeamsFunc(ctx, n)
	}
	return make([]teamdomain.Team, n), nil
}

func (f *FakeService) AddDemoTeam(ctx context.Context) (*teamdomain.Team, error) {
	if f.AddDemoTeamFunc != nil {
		return f.AddDemoTeamFunc(ctx)
	}
	return &teamdomain.Team{ID: uuid.New()}, nil
}

func (f *FakeService) RemoveTeam(ctx context.Context, id uuid.UUID) error {
	if f.RemoveTeamFunc != nil {
		return f.RemoveTeamFunc(ctx, id)
	}
	return nil
}

func (f *FakeService) ReplaceTeam(ctx context.Context, id uuid.UUID) (*teamdomain.Team, error) {
	if f.ReplaceTeamFunc != nil {
		return f.ReplaceTeamFunc(ctx, id)
	}
	return &teamdomain.Team{ID: uuid.New()}, nil
}

func (f *FakeService) ListTeams(ctx context.Context, order teamservice.ListOrder) ([]teamdomain.Team, error) {
	if f.ListTeamsFunc != nil {
		return f.ListTeamsFunc(ctx, order)
	}
	return []teamdomain.Team{}, nil
}

func (f *FakeService) GetTeam(ctx context.Context, id uuid.UUID) (*teamdomain.Team, error) {
	if f.GetTeamFunc != nil {
		return f.GetTeamFunc(ctx, id)
	}
	return nil, teamservice.ErrTeamNotFound
}

func (f *FakeService) CreateRepUsers(ctx context.Context, password string) ([]string, error) {
	if f.CreateRepUsersFunc != nil {
		return f.CreateRepUsersFunc(ctx, password)
	}
	return []string{}, nil
}

var _ teamservice.Service = (*FakeService)(nil)

