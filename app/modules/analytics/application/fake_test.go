package analyticsservice

import (
	"context"
	"time"

	matchdomain "github.com/Black-And-White-Club/anleague/app/modules/match/domain"
	teamdb "github.com/Black-And-White-Club/anleague/app/modules/team/infrastructure/repositories"
	tournamentdb "github.com/Black-And-White-Club/anleague/app/modules/tournament/infrastructure/repositories"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// FakeTeamRepo serves a fixed registration-ordered team list.
type FakeTeamRepo struct {
	teamdb.Repository
	Teams []*teamdb.Team
	Err   error
}

func (f *FakeTeamRepo) ListByCreation(ctx context.Context, db bun.IDB, limit int) ([]*teamdb.Team, error) {
	if f.Err != nil {
		return nil, f.Err
	}
	return f.Teams, nil
}

// FakeMatchRepo stores played matches most recent first, as the real
// repository returns them.
type FakeMatchRepo struct {
	tournamentdb.Repository
	Played []*tournamentdb.Match
	Since  []*time.Time
}

func (f *FakeMatchRepo) ListPlayed(ctx context.Context, db bun.IDB, since *time.Time) ([]*tournamentdb.Match, error) {
	f.Since = append(f.Since, since)
	var out []*tournamentdb.Match
	for _, m := range f.Played {
		if since != nil && m.PlayedAt != nil && m.PlayedAt.Before(*since) {
			continue
		}
		out = append(out, m)
	}
	return out, nil
}

var (
	_ teamdb.Repository       = (*FakeTeamRepo)(nil)
	_ tournamentdb.Repository = (*FakeMatchRepo)(nil)
)

func playedMatch(t1, t2 *teamdb.Team, s1, s2 int, at time.Time, scorers ...[2]string) *tournamentdb.Match {
	m := &tournamentdb.Match{
		ID:           uuid.New(),
		Team1ID:      t1.ID,
		Team2ID:      t2.ID,
		Team1Country: t1.Country,
		Team2Country: t2.Country,
		Score1:       &s1,
		Score2:       &s2,
		Played:       true,
		PlayedAt:     &at,
	}
	for i, s := range scorers {
		m.Scorers = append(m.Scorers, matchdomain.ScorerEvent{TeamCountry: s[0], Player: s[1], Minute: i + 1})
	}
	return m
}
