package tournamenthandlers

import (
	"context"
	"time"

	tournamentservice "github.com/Black-And-White-Club/anleague/app/modules/tournament/application"
	tournamentdb "github.com/Black-And-White-Club/anleague/app/modules/tournament/infrastructure/repositories"
	"github.com/google/uuid"
)

type FakeService struct {
	StartTournamentFunc func(ctx context.Context) ([]*tournamentdb.Match, error)
	SimulateMatchFunc   func(ctx context.Context, id uuid.UUID) (*tournamentservice.SimulationReport, error)
	SimulateAllFunc     func(ctx context.Context) (*tournamentservice.SimulationReport, error)
	ResetFunc           func(ctx context.Context) (int, error)
	StatusFunc          func(ctx context.Context) (*tournamentservice.Status, error)
	GetMatchFunc        func(ctx context.Context, id uuid.UUID) (*tournamentservice.MatchView, error)
	BracketFunc         func(ctx context.Context) ([]*tournamentdb.Match, error)
	HistoryFunc         func(ctx context.Context, since *time.Time) ([]*tournamentdb.Tournament, error)
	RepDashboardFunc    func(ctx context.Context, teamID uuid.UUID) (*tournamentservice.RepDashboard, error)
	AdminDashboardFunc  func(ctx context.Context) (*tournamentservice.AdminDashboard, error)
}

func (f *FakeService) StartTournament(ctx context.Context) ([]*tournamentdb.Match, error) {
	if f.StartTournamentFunc != nil {
		return f.StartTournamentFunc(ctx)
	}
	return []*tournamentdb.Match{}, nil
}

func (f *FakeService) SimulateMatch(ctx context.Context, id uuid.UUID) (*tournamentservice.SimulationReport, error) {
	if f.SimulateMatchFunc != nil {
		return f.SimulateMatchFunc(ctx, id)
	}
	return &tournamentservice.SimulationReport{}, nil
}

func (f *FakeService) SimulateAll(ctx context.Context) (*tournamentservice.SimulationReport, error) {
	if f.SimulateAllFunc != nil {
		return f.SimulateAllFunc(ctx)
	}
	return &tournamentservice.SimulationReport{}, nil
}

func (f *FakeService) Reset(ctx context.Context) (int, error) {
	if f.ResetFunc != nil {
		return f.ResetFunc(ctx)
	}
	return 0, nil
}

func (f *FakeService) Status(ctx context.Context) (*tournamentservice.Status, error) {
	if f.StatusFunc != nil {
		return f.StatusFunc(ctx)
	}
	return &tournamentservice.Status{}, nil
}

func (f *FakeService) GetMatch(ctx context.Context, id uuid.UUID) (*tournamentservice.MatchView, error) {
	if f.GetMatchFunc != nil {
		return f.GetMatchFunc(ctx, id)
	}
	return nil, tournamentservice.ErrMatchNotFound
}

func (f *FakeService) Bracket(ctx context.Context) ([]*tournamentdb.Match, error) {
	if f.BracketFunc != nil {
		return f.BracketFunc(ctx)
	}
	return []*tournamentdb.Match{}, nil
}

func (f *FakeService) History(ctx context.Context, since *time.Time) ([]*tournamentdb.Tournament, error) {
	if f.HistoryFunc != nil {
		return f.HistoryFunc(ctx, since)
	}
	return []*tournamentdb.Tournament{}, nil
}

func (f *FakeService) RepDashboard(ctx context.Context, teamID uuid.UUID) (*tournamentservice.RepDashboard, error) {
	if f.RepDashboardFunc != nil {
		return f.RepDashboardFunc(ctx, teamID)
	}
	return &tournamentservice.RepDashboard{}, nil
}

func (f *FakeService) AdminDashboard(ctx context.Context) (*tournamentservice.AdminDashboard, error) {
	if f.AdminDashboardFunc != nil {
		return f.AdminDashboardFunc(ctx)
	}
	return &tournamentservice.AdminDashboard{}, nil
}

var _ tournamentservice.Service = (*FakeService)(nil)

// fixedSince resolves every non-empty expression to one instant.
type fixedSince struct {
	at  time.Time
	err error
}

func (f fixedSince) Parse(raw string) (*time.Time, error) {
	if f.err != nil {
		return nil, f.err
	}
	if raw == "" {
		return nil, nil
	}
	t := f.at
	return &t, nil
}
