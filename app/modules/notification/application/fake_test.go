package notificationservice

import (
	"context"
	"time"

	notificationdomain "github.com/Black-And-White-Club/anleague/app/modules/notification/domain"
	teamdb "github.com/Black-And-White-Club/anleague/app/modules/team/infrastructure/repositories"
	tournamentdb "github.com/Black-And-White-Club/anleague/app/modules/tournament/infrastructure/repositories"
	"github.com/uptrace/bun"
)

type FakeMailer struct {
	Sent []notificationdomain.Message
	Err  error
}

func (f *FakeMailer) Send(ctx context.Context, msg notificationdomain.Message) error {
	if f.Err != nil {
		return f.Err
	}
	f.Sent = append(f.Sent, msg)
	return nil
}

type FakeTeamRepo struct {
	teamdb.Repository
	Teams []*teamdb.Team
}

func (f *FakeTeamRepo) ListByCreation(ctx context.Context, db bun.IDB, limit int) ([]*teamdb.Team, error) {
	return f.Teams, nil
}

type FakeMatchRepo struct {
	tournamentdb.Repository
	Played    []*tournamentdb.Match
	Latest    *tournamentdb.Tournament
	LatestErr error
}

func (f *FakeMatchRepo) ListPlayed(ctx context.Context, db bun.IDB, since *time.Time) ([]*tournamentdb.Match, error) {
	return f.Played, nil
}

func (f *FakeMatchRepo) LatestTournament(ctx context.Context, db bun.IDB) (*tournamentdb.Tournament, error) {
	if f.LatestErr != nil {
		return nil, f.LatestErr
	}
	if f.Latest == nil {
		return nil, tournamentdb.ErrNotFound
	}
	return f.Latest, nil
}

// FakeNotificationMetrics counts outcomes by kind.
type FakeNotificationMetrics struct {
	Outcomes []string
}

func (f *FakeNotificationMetrics) RecordNotification(ctx context.Context, kind, outcome string) {
	f.Outcomes = append(f.Outcomes, kind+":"+outcome)
}

var (
	_ Mailer                  = (*FakeMailer)(nil)
	_ teamdb.Repository       = (*FakeTeamRepo)(nil)
	_ tournamentdb.Repository = (*FakeMatchRepo)(nil)
)
