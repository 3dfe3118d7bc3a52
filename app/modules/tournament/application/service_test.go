package tournamentservice

import (
	"context"
	"errors"
	"testing"
	"time"

	matchdomain "github.com/Black-And-White-Club/anleague/app/modules/match/domain"
	teamdb "github.com/Black-And-White-Club/anleague/app/modules/team/infrastructure/repositories"
	tournamentdomain "github.com/Black-And-White-Club/anleague/app/modules/tournament/domain"
	tournamentdb "github.com/Black-And-White-Club/anleague/app/modules/tournament/infrastructure/repositories"
	"github.com/Black-And-White-Club/anleague/internal/eventbus"
	"github.com/Black-And-White-Club/anleague/internal/observability/metrics"
	"github.com/Black-And-White-Club/anleague/internal/random"
	"github.com/Black-And-White-Club/anleague/internal/testutils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
)

var start = time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)

type fixture struct {
	svc     *TournamentService
	matches *FakeMatchRepo
	teams   *FakeTeamRepo
	pub     *FakePublisher
}

func newFixture(t *testing.T, teamCount int, matches ...*tournamentdb.Match) fixture {
	t.Helper()
	gen := testutils.NewTestDataGenerator(21)
	teams := &FakeTeamRepo{}
	for _, team := range gen.Teams(teamCount, start) {
		teams.Teams = append(teams.Teams, teamdb.FromDomain(team))
	}
	repo := NewFakeMatchRepo(matches...)
	pub := &FakePublisher{}
	rng := random.NewSeeded(5)
	svc := NewTournamentService(repo, teams, matchdomain.NewSimulator(rng), pub, rng, nil, metrics.NewNoop(), nil, nil)
	clock := start.Add(time.Hour)
	svc.now = func() time.Time {
		clock = clock.Add(time.Second)
		return clock
	}
	return fixture{svc: svc, matches: repo, teams: teams, pub: pub}
}

// startedFixture returns a fixture whose bracket has been drawn.
func startedFixture(t *testing.T) fixture {
	t.Helper()
	f := newFixture(t, 10)
	_, err := f.svc.StartTournament(context.Background())
	require.NoError(t, err)
	return f
}

func TestStartTournament(t *testing.T) {
	t.Run("needs eight teams", func(t *testing.T) {
		f := newFixture(t, 7)
		_, err := f.svc.StartTournament(context.Background())
		assert.ErrorIs(t, err, ErrNotEnoughTeams)
		assert.NotContains(t, f.matches.Trace(), "InsertMatches")
	})

	t.Run("rejects when matches exist", func(t *testing.T) {
		f := newFixture(t, 8, &tournamentdb.Match{ID: uuid.New()})
		_, err := f.svc.StartTournament(context.Background())
		assert.ErrorIs(t, err, ErrTournamentInProgress)
	})

	t.Run("draws the eight earliest teams", func(t *testing.T) {
		f := newFixture(t, 10)
		matches, err := f.svc.StartTournament(context.Background())
		require.NoError(t, err)
		require.Len(t, matches, 4)

		earliest := map[uuid.UUID]bool{}
		for _, team := range f.teams.Teams[:8] {
			earliest[team.ID] = true
		}
		seen := map[uuid.UUID]int{}
		for _, m := range matches {
			assert.False(t, m.Played)
			assert.Equal(t, tournamentdomain.StageQuarterfinal, m.Stage)
			seen[m.Team1ID]++
			seen[m.Team2ID]++
		}
		assert.Len(t, seen, 8)
		for id, n := range seen {
			assert.True(t, earliest[id], "team %s is not among the earliest eight", id)
			assert.Equal(t, 1, n)
		}
		assert.Len(t, f.matches.Matches, 4)
	})
}

func TestSimulateAll(t *testing.T) {
	f := startedFixture(t)
	ctx := context.Background()

	report, err := f.svc.SimulateAll(ctx)
	require.NoError(t, err)
	assert.Len(t, report.Simulated, 4)
	assert.Empty(t, report.Skipped)
	require.NotNil(t, report.Tournament)

	for _, m := range f.matches.Matches {
		require.True(t, m.Played)
		require.NotNil(t, m.WinnerID)
		assert.True(t, *m.WinnerID == m.Team1ID || *m.WinnerID == m.Team2ID)
		assert.NotEmpty(t, m.Commentary)
	}

	last := f.matches.Matches[len(f.matches.Matches)-1]
	assert.Equal(t, *last.WinnerID, report.Tournament.WinnerID)
	require.Len(t, f.matches.Tournaments, 1)

	assert.Equal(t, []string{
		tournamentdomain.MatchSimulatedV1,
		tournamentdomain.MatchSimulatedV1,
		tournamentdomain.MatchSimulatedV1,
		tournamentdomain.MatchSimulatedV1,
		tournamentdomain.TournamentCompletedV1,
	}, f.pub.Topics())

	payload, err := eventbus.Decode[tournamentdomain.MatchSimulatedPayloadV1](f.pub.Published[0].Message)
	require.NoError(t, err)
	assert.False(t, payload.Notify)
	assert.Len(t, payload.Scorers, payload.Score1+payload.Score2)

	status, err := f.svc.Status(ctx)
	require.NoError(t, err)
	assert.Equal(t, tournamentdomain.StateComplete, status.State)
	assert.False(t, status.AllowStart)

	t.Run("second call records nothing", func(t *testing.T) {
		report, err := f.svc.SimulateAll(ctx)
		require.NoError(t, err)
		assert.Empty(t, report.Simulated)
		assert.Nil(t, report.Tournament)
		assert.Len(t, f.matches.Tournaments, 1)
	})
}

func TestSimulateAll_SkipsRemovedTeam(t *testing.T) {
	f := startedFixture(t)
	removed := f.matches.Matches[0].Team1ID
	require.NoError(t, f.teams.Delete(context.Background(), nil, removed))

	report, err := f.svc.SimulateAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, report.Simulated, 3)
	assert.Equal(t, []uuid.UUID{f.matches.Matches[0].ID}, report.Skipped)
	assert.Nil(t, report.Tournament, "bracket still has an unplayed match")
}

func TestSimulateMatch(t *testing.T) {
	ctx := context.Background()

	t.Run("not found", func(t *testing.T) {
		f := startedFixture(t)
		_, err := f.svc.SimulateMatch(ctx, uuid.New())
		assert.ErrorIs(t, err, ErrMatchNotFound)
	})

	t.Run("plays and notifies", func(t *testing.T) {
		f := startedFixture(t)
		id := f.matches.Matches[1].ID
		report, err := f.svc.SimulateMatch(ctx, id)
		require.NoError(t, err)
		require.Len(t, report.Simulated, 1)
		assert.Nil(t, report.Tournament)

		require.Len(t, f.pub.Published, 1)
		payload, err := eventbus.Decode[tournamentdomain.MatchSimulatedPayloadV1](f.pub.Published[0].Message)
		require.NoError(t, err)
		assert.True(t, payload.Notify)
		assert.Equal(t, id, payload.MatchID)
		assert.NotEmpty(t, payload.Team1Email)

		_, err = f.svc.SimulateMatch(ctx, id)
		assert.ErrorIs(t, err, ErrMatchAlreadyPlayed)
	})

	t.Run("last match completes the tournament", func(t *testing.T) {
		f := startedFixture(t)
		for _, m := range f.matches.Matches[:3] {
			_, err := f.svc.SimulateMatch(ctx, m.ID)
			require.NoError(t, err)
		}
		report, err := f.svc.SimulateMatch(ctx, f.matches.Matches[3].ID)
		require.NoError(t, err)
		require.NotNil(t, report.Tournament)
		assert.Len(t, f.matches.Tournaments, 1)
	})

	t.Run("removed team", func(t *testing.T) {
		f := startedFixture(t)
		m := f.matches.Matches[0]
		require.NoError(t, f.teams.Delete(ctx, nil, m.Team2ID))
		_, err := f.svc.SimulateMatch(ctx, m.ID)
		assert.ErrorIs(t, err, ErrTeamMissing)
	})

	t.Run("lost race", func(t *testing.T) {
		f := startedFixture(t)
		f.matches.RecordResultFunc = func(ctx context.Context, db bun.IDB, match *tournamentdb.Match) error {
			return tournamentdb.ErrAlreadyPlayed
		}
		_, err := f.svc.SimulateMatch(ctx, f.matches.Matches[0].ID)
		assert.ErrorIs(t, err, ErrMatchAlreadyPlayed)
		assert.Empty(t, f.pub.Published)
	})

	t.Run("storage error", func(t *testing.T) {
		f := startedFixture(t)
		f.matches.GetMatchFunc = func(ctx context.Context, db bun.IDB, id uuid.UUID) (*tournamentdb.Match, error) {
			return nil, errors.New("connection reset")
		}
		_, err := f.svc.SimulateMatch(ctx, uuid.New())
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrMatchNotFound)
	})
}

func TestPublishFailureDoesNotFailSimulation(t *testing.T) {
	f := startedFixture(t)
	f.pub.Err = errors.New("broker down")
	report, err := f.svc.SimulateAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, report.Simulated, 4)
	assert.NotNil(t, report.Tournament)
}

func TestStatusAndReset(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, 8)

	status, err := f.svc.Status(ctx)
	require.NoError(t, err)
	assert.Equal(t, tournamentdomain.StateReady, status.State)
	assert.True(t, status.AllowStart)

	_, err = f.svc.StartTournament(ctx)
	require.NoError(t, err)
	status, err = f.svc.Status(ctx)
	require.NoError(t, err)
	assert.Equal(t, tournamentdomain.StateInProgress, status.State)
	assert.Equal(t, 4, status.MatchCount)

	n, err := f.svc.Reset(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	status, err = f.svc.Status(ctx)
	require.NoError(t, err)
	assert.True(t, status.AllowStart)
}

func TestHistory(t *testing.T) {
	f := newFixture(t, 0)
	older := &tournamentdb.Tournament{ID: uuid.New(), WinnerCountry: "Ghana", PlayedAt: start.AddDate(0, -2, 0)}
	newer := &tournamentdb.Tournament{ID: uuid.New(), WinnerCountry: "Mali", PlayedAt: start}
	f.matches.Tournaments = []*tournamentdb.Tournament{older, newer}

	all, err := f.svc.History(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Mali", all[0].WinnerCountry)

	since := start.AddDate(0, -1, 0)
	recent, err := f.svc.History(context.Background(), &since)
	require.NoError(t, err)
	require.Len(t, recent, 1)
	assert.Equal(t, newer.ID, recent[0].ID)
}

func TestDashboards(t *testing.T) {
	ctx := context.Background()
	f := startedFixture(t)
	teamID := f.matches.Matches[2].Team2ID

	dash, err := f.svc.RepDashboard(ctx, teamID)
	require.NoError(t, err)
	assert.Equal(t, teamID, dash.Team.ID)
	require.Len(t, dash.Matches, 1)
	assert.Equal(t, f.matches.Matches[2].ID, dash.Matches[0].ID)

	_, err = f.svc.RepDashboard(ctx, uuid.New())
	assert.ErrorIs(t, err, ErrTeamNotFound)

	admin, err := f.svc.AdminDashboard(ctx)
	require.NoError(t, err)
	assert.Len(t, admin.Teams, 10)
	assert.Len(t, admin.Matches, 4)
	assert.False(t, admin.AllowStart)

	view, err := f.svc.GetMatch(ctx, f.matches.Matches[0].ID)
	require.NoError(t, err)
	require.NotNil(t, view.Team1)
	assert.Equal(t, view.Match.Team1ID, view.Team1.ID)

	_, err = f.svc.GetMatch(ctx, uuid.New())
	assert.ErrorIs(t, err, ErrMatchNotFound)
}
