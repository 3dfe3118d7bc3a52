package tournamentservice

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	matchdomain "github.com/Black-And-White-Club/anleague/app/modules/match/domain"
	teamdomain "github.com/Black-And-White-Club/anleague/app/modules/team/domain"
	teamdb "github.com/Black-And-White-Club/anleague/app/modules/team/infrastructure/repositories"
	tournamentdomain "github.com/Black-And-White-Club/anleague/app/modules/tournament/domain"
	tournamentdb "github.com/Black-And-White-Club/anleague/app/modules/tournament/infrastructure/repositories"
	"github.com/Black-And-White-Club/anleague/internal/eventbus"
	"github.com/Black-And-White-Club/anleague/internal/observability/attr"
	"github.com/Black-And-White-Club/anleague/internal/observability/metrics"
	"github.com/Black-And-White-Club/anleague/internal/operation"
	"github.com/Black-And-White-Club/anleague/internal/random"
	"github.com/Black-And-White-Club/anleague/internal/results"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel/trace"
)

const serviceName = "TournamentService"

// TournamentService implements the Service interface.
type TournamentService struct {
	matches   tournamentdb.Repository
	teams     teamdb.Repository
	simulator *matchdomain.Simulator
	publisher message.Publisher
	rng       random.Source
	now       func() time.Time
	logger    *slog.Logger
	telemetry operation.Telemetry
	db        *bun.DB
}

// NewTournamentService creates a new TournamentService.
func NewTournamentService(
	matches tournamentdb.Repository,
	teams teamdb.Repository,
	simulator *matchdomain.Simulator,
	publisher message.Publisher,
	rng random.Source,
	logger *slog.Logger,
	m metrics.OperationMetrics,
	tracer trace.Tracer,
	db *bun.DB,
) *TournamentService {
	if logger == nil {
		logger = slog.Default()
	}
	return &TournamentService{
		matches:   matches,
		teams:     teams,
		simulator: simulator,
		publisher: publisher,
		rng:       rng,
		now:       time.Now,
		logger:    logger,
		telemetry: operation.Telemetry{
			Service: serviceName,
			Logger:  logger,
			Metrics: m,
			Tracer:  tracer,
		},
		db: db,
	}
}

// StartTournament draws the eight earliest registered teams into quarterfinals.
func (s *TournamentService) StartTournament(ctx context.Context) ([]*tournamentdb.Match, error) {
	return operation.Unwrap(operation.Run(ctx, s.telemetry, "StartTournament", "", func(ctx context.Context) (results.OperationResult[[]*tournamentdb.Match, error], error) {
		return operation.InTx(ctx, s.db, func(ctx context.Context, db bun.IDB) (results.OperationResult[[]*tournamentdb.Match, error], error) {
			existing, err := s.matches.CountMatches(ctx, db)
			if err != nil {
				return results.OperationResult[[]*tournamentdb.Match, error]{}, err
			}
			if existing > 0 {
				return results.FailureResult[[]*tournamentdb.Match](ErrTournamentInProgress), nil
			}

			rows, err := s.teams.ListByCreation(ctx, db, tournamentdomain.BracketSize)
			if err != nil {
				return results.OperationResult[[]*tournamentdb.Match, error]{}, err
			}
			if len(rows) < tournamentdomain.BracketSize {
				return results.FailureResult[[]*tournamentdb.Match](fmt.Errorf("%w: have %d", ErrNotEnoughTeams, len(rows))), nil
			}

			entrants := make([]tournamentdomain.Entrant, len(rows))
			for i, t := range rows {
				entrants[i] = tournamentdomain.Entrant{ID: t.ID, Country: t.Country}
			}
			fixtures, err := tournamentdomain.MakeBracket(s.rng, entrants, s.now())
			if err != nil {
				return results.FailureResult[[]*tournamentdb.Match](err), nil
			}

			matches := make([]*tournamentdb.Match, len(fixtures))
			for i, f := range fixtures {
				matches[i] = tournamentdb.MatchFromFixture(f)
			}
			if err := s.matches.InsertMatches(ctx, db, matches); err != nil {
				return results.OperationResult[[]*tournamentdb.Match, error]{}, err
			}

			s.logger.InfoContext(ctx, "Tournament started",
				attr.ExtractCorrelationID(ctx),
				attr.Int("matches", len(matches)),
			)
			return results.SuccessResult[[]*tournamentdb.Match, error](matches), nil
		})
	}))
}

// SimulateMatch plays a single unplayed match and notifies both representatives.
func (s *TournamentService) SimulateMatch(ctx context.Context, id uuid.UUID) (*SimulationReport, error) {
	return operation.Unwrap(operation.Run(ctx, s.telemetry, "SimulateMatch", id.String(), func(ctx context.Context) (results.OperationResult[*SimulationReport, error], error) {
		match, err := s.matches.GetMatch(ctx, nil, id)
		if err != nil {
			if errors.Is(err, tournamentdb.ErrNotFound) {
				return results.FailureResult[*SimulationReport](ErrMatchNotFound), nil
			}
			return results.OperationResult[*SimulationReport, error]{}, err
		}
		if match.Played {
			return results.FailureResult[*SimulationReport](ErrMatchAlreadyPlayed), nil
		}

		teams, err := s.loadTeams(ctx, []*tournamentdb.Match{match})
		if err != nil {
			return results.OperationResult[*SimulationReport, error]{}, err
		}
		if teams[match.Team1ID] == nil || teams[match.Team2ID] == nil {
			return results.FailureResult[*SimulationReport](ErrTeamMissing), nil
		}

		report, err := s.simulate(ctx, []*tournamentdb.Match{match}, teams, true)
		if err != nil {
			return results.OperationResult[*SimulationReport, error]{}, err
		}
		if len(report.Simulated) == 0 {
			return results.FailureResult[*SimulationReport](ErrMatchAlreadyPlayed), nil
		}
		return results.SuccessResult[*SimulationReport, error](report), nil
	}))
}

// SimulateAll plays every unplayed match, oldest first.
func (s *TournamentService) SimulateAll(ctx context.Context) (*SimulationReport, error) {
	return operation.Unwrap(operation.Run(ctx, s.telemetry, "SimulateAll", "", func(ctx context.Context) (results.OperationResult[*SimulationReport, error], error) {
		unplayed, err := s.matches.ListUnplayed(ctx, nil)
		if err != nil {
			return results.OperationResult[*SimulationReport, error]{}, err
		}
		teams, err := s.loadTeams(ctx, unplayed)
		if err != nil {
			return results.OperationResult[*SimulationReport, error]{}, err
		}
		report, err := s.simulate(ctx, unplayed, teams, false)
		if err != nil {
			return results.OperationResult[*SimulationReport, error]{}, err
		}
		return results.SuccessResult[*SimulationReport, error](report), nil
	}))
}

type outcome struct {
	match        *tournamentdb.Match
	result       matchdomain.Result
	team1, team2 *teamdb.Team
}

// simulate plays pending outside any transaction, then records the results
// and the completion check in one. Events are published after commit.
func (s *TournamentService) simulate(ctx context.Context, pending []*tournamentdb.Match, teams map[uuid.UUID]*teamdb.Team, notify bool) (*SimulationReport, error) {
	report := &SimulationReport{Simulated: []*tournamentdb.Match{}}

	played := make([]outcome, 0, len(pending))
	for _, m := range pending {
		t1, t2 := teams[m.Team1ID], teams[m.Team2ID]
		if t1 == nil || t2 == nil {
			s.logger.WarnContext(ctx, "Skipping match with a removed team",
				attr.ExtractCorrelationID(ctx),
				attr.MatchID(m.ID),
			)
			report.Skipped = append(report.Skipped, m.ID)
			continue
		}

		res, err := s.simulator.Simulate(ctx, matchdomain.SideFromTeam(t1.ToDomain()), matchdomain.SideFromTeam(t2.ToDomain()), true)
		if err != nil {
			return nil, fmt.Errorf("failed to simulate match %s: %w", m.ID, err)
		}
		m.ApplyResult(res, s.now())
		played = append(played, outcome{match: m, result: res, team1: t1, team2: t2})
	}

	var recorded []outcome
	txResult, err := operation.InTx(ctx, s.db, func(ctx context.Context, db bun.IDB) (results.OperationResult[*tournamentdb.Tournament, error], error) {
		for _, o := range played {
			if err := s.matches.RecordResult(ctx, db, o.match); err != nil {
				if errors.Is(err, tournamentdb.ErrAlreadyPlayed) {
					report.Skipped = append(report.Skipped, o.match.ID)
					continue
				}
				return results.OperationResult[*tournamentdb.Tournament, error]{}, err
			}
			recorded = append(recorded, o)
		}

		// Completion is only evaluated after a match changed state here, so
		// a finished bracket records its tournament once.
		if len(recorded) == 0 {
			return results.OperationResult[*tournamentdb.Tournament, error]{}, nil
		}
		tournament, err := s.completeIfFinished(ctx, db)
		if err != nil {
			return results.OperationResult[*tournamentdb.Tournament, error]{}, err
		}
		if tournament == nil {
			return results.OperationResult[*tournamentdb.Tournament, error]{}, nil
		}
		return results.SuccessResult[*tournamentdb.Tournament, error](tournament), nil
	})
	if err != nil {
		return nil, err
	}

	for _, o := range recorded {
		report.Simulated = append(report.Simulated, o.match)
		s.publishMatch(ctx, o, notify)
	}
	if txResult.Success != nil {
		report.Tournament = *txResult.Success
		s.publishTournament(ctx, report.Tournament)
	}
	return report, nil
}

// completeIfFinished records the tournament once every match is played,
// crediting the winner of the last-created match.
func (s *TournamentService) completeIfFinished(ctx context.Context, db bun.IDB) (*tournamentdb.Tournament, error) {
	rows, err := s.matches.ListMatches(ctx, db)
	if err != nil {
		return nil, err
	}
	summaries := make([]tournamentdomain.MatchSummary, len(rows))
	byID := make(map[uuid.UUID]*tournamentdb.Match, len(rows))
	for i, m := range rows {
		summaries[i] = m.Summary()
		byID[m.ID] = m
	}

	winnerID, ok := tournamentdomain.Champion(summaries)
	if !ok {
		return nil, nil
	}
	last, _ := tournamentdomain.LastCreated(summaries)
	country := byID[last.ID].Team2Country
	if byID[last.ID].Team1ID == winnerID {
		country = byID[last.ID].Team1Country
	}
	if team, err := s.teams.GetByID(ctx, db, winnerID); err == nil {
		country = team.Country
	} else if !errors.Is(err, teamdb.ErrNotFound) {
		return nil, err
	}

	tournament := &tournamentdb.Tournament{
		ID:            uuid.New(),
		WinnerID:      winnerID,
		WinnerCountry: country,
		PlayedAt:      s.now().UTC(),
	}
	if err := s.matches.InsertTournament(ctx, db, tournament); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "Tournament completed",
		attr.ExtractCorrelationID(ctx),
		attr.TournamentID(tournament.ID),
		attr.String("winner", country),
	)
	return tournament, nil
}

func (s *TournamentService) publishMatch(ctx context.Context, o outcome, notify bool) {
	if s.publisher == nil {
		return
	}
	payload := tournamentdomain.MatchSimulatedPayloadV1{
		MatchID:      o.match.ID,
		Team1ID:      o.match.Team1ID,
		Team2ID:      o.match.Team2ID,
		Team1Country: o.team1.Country,
		Team2Country: o.team2.Country,
		Team1Email:   o.team1.RepEmail,
		Team2Email:   o.team2.RepEmail,
		Score1:       o.result.Score1,
		Score2:       o.result.Score2,
		Scorers:      o.result.Scorers,
		WinnerID:     o.result.WinnerID,
		Commentary:   o.result.Commentary,
		DecidedBy:    o.result.DecidedBy,
		PlayedAt:     *o.match.PlayedAt,
		Notify:       notify,
	}
	if err := eventbus.Publish(ctx, s.publisher, tournamentdomain.MatchSimulatedV1, payload); err != nil {
		s.logger.ErrorContext(ctx, "Failed to publish match result",
			attr.ExtractCorrelationID(ctx),
			attr.MatchID(o.match.ID),
			attr.Error(err),
		)
	}
}

func (s *TournamentService) publishTournament(ctx context.Context, t *tournamentdb.Tournament) {
	if s.publisher == nil {
		return
	}
	payload := tournamentdomain.TournamentCompletedPayloadV1{
		TournamentID:  t.ID,
		WinnerID:      t.WinnerID,
		WinnerCountry: t.WinnerCountry,
		PlayedAt:      t.PlayedAt,
	}
	if err := eventbus.Publish(ctx, s.publisher, tournamentdomain.TournamentCompletedV1, payload); err != nil {
		s.logger.ErrorContext(ctx, "Failed to publish tournament completion",
			attr.ExtractCorrelationID(ctx),
			attr.TournamentID(t.ID),
			attr.Error(err),
		)
	}
}

func (s *TournamentService) loadTeams(ctx context.Context, matches []*tournamentdb.Match) (map[uuid.UUID]*teamdb.Team, error) {
	if len(matches) == 0 {
		return map[uuid.UUID]*teamdb.Team{}, nil
	}
	ids := make([]uuid.UUID, 0, len(matches)*2)
	for _, m := range matches {
		ids = append(ids, m.Team1ID, m.Team2ID)
	}
	return s.teams.GetByIDs(ctx, nil, ids)
}

// Reset deletes every match. Tournament history is kept.
func (s *TournamentService) Reset(ctx context.Context) (int, error) {
	return operation.Unwrap(operation.Run(ctx, s.telemetry, "Reset", "", func(ctx context.Context) (results.OperationResult[int, error], error) {
		n, err := s.matches.DeleteAllMatches(ctx, nil)
		if err != nil {
			return results.OperationResult[int, error]{}, err
		}
		s.logger.InfoContext(ctx, "Tournament reset", attr.ExtractCorrelationID(ctx), attr.Int("deleted", n))
		return results.SuccessResult[int, error](n), nil
	}))
}

// Status evaluates the progression state.
func (s *TournamentService) Status(ctx context.Context) (*Status, error) {
	return operation.Unwrap(operation.Run(ctx, s.telemetry, "Status", "", func(ctx context.Context) (results.OperationResult[*Status, error], error) {
		teamCount, err := s.teams.Count(ctx, nil)
		if err != nil {
			return results.OperationResult[*Status, error]{}, err
		}
		rows, err := s.matches.ListMatches(ctx, nil)
		if err != nil {
			return results.OperationResult[*Status, error]{}, err
		}
		status := statusOf(teamCount, rows)
		return results.SuccessResult[*Status, error](&status), nil
	}))
}

func statusOf(teamCount int, rows []*tournamentdb.Match) Status {
	summaries := make([]tournamentdomain.MatchSummary, len(rows))
	for i, m := range rows {
		summaries[i] = m.Summary()
	}
	return Status{
		State:      tournamentdomain.Evaluate(teamCount, summaries),
		AllowStart: tournamentdomain.AllowStart(teamCount, len(rows)),
		TeamCount:  teamCount,
		MatchCount: len(rows),
	}
}

// GetMatch returns a match with its live teams.
func (s *TournamentService) GetMatch(ctx context.Context, id uuid.UUID) (*MatchView, error) {
	return operation.Unwrap(operation.Run(ctx, s.telemetry, "GetMatch", id.String(), func(ctx context.Context) (results.OperationResult[*MatchView, error], error) {
		match, err := s.matches.GetMatch(ctx, nil, id)
		if err != nil {
			if errors.Is(err, tournamentdb.ErrNotFound) {
				return results.FailureResult[*MatchView](ErrMatchNotFound), nil
			}
			return results.OperationResult[*MatchView, error]{}, err
		}
		teams, err := s.loadTeams(ctx, []*tournamentdb.Match{match})
		if err != nil {
			return results.OperationResult[*MatchView, error]{}, err
		}
		view := &MatchView{Match: match, Team1: toDomain(teams[match.Team1ID]), Team2: toDomain(teams[match.Team2ID])}
		return results.SuccessResult[*MatchView, error](view), nil
	}))
}

func toDomain(t *teamdb.Team) *teamdomain.Team {
	if t == nil {
		return nil
	}
	d := t.ToDomain()
	return &d
}

// Bracket returns every match by creation.
func (s *TournamentService) Bracket(ctx context.Context) ([]*tournamentdb.Match, error) {
	return operation.Unwrap(operation.Run(ctx, s.telemetry, "Bracket", "", func(ctx context.Context) (results.OperationResult[[]*tournamentdb.Match, error], error) {
		rows, err := s.matches.ListMatches(ctx, nil)
		if err != nil {
			return results.OperationResult[[]*tournamentdb.Match, error]{}, err
		}
		return results.SuccessResult[[]*tournamentdb.Match, error](rows), nil
	}))
}

// History lists completed tournaments newest first. A nil since returns all.
func (s *TournamentService) History(ctx context.Context, since *time.Time) ([]*tournamentdb.Tournament, error) {
	return operation.Unwrap(operation.Run(ctx, s.telemetry, "History", "", func(ctx context.Context) (results.OperationResult[[]*tournamentdb.Tournament, error], error) {
		rows, err := s.matches.ListTournaments(ctx, nil)
		if err != nil {
			return results.OperationResult[[]*tournamentdb.Tournament, error]{}, err
		}
		out := make([]*tournamentdb.Tournament, 0, len(rows))
		for _, t := range rows {
			if since != nil && t.PlayedAt.Before(*since) {
				continue
			}
			out = append(out, t)
		}
		return results.SuccessResult[[]*tournamentdb.Tournament, error](out), nil
	}))
}

// RepDashboard returns a representative's team and its matches by creation.
func (s *TournamentService) RepDashboard(ctx context.Context, teamID uuid.UUID) (*RepDashboard, error) {
	return operation.Unwrap(operation.Run(ctx, s.telemetry, "RepDashboard", teamID.String(), func(ctx context.Context) (results.OperationResult[*RepDashboard, error], error) {
		team, err := s.teams.GetByID(ctx, nil, teamID)
		if err != nil {
			if errors.Is(err, teamdb.ErrNotFound) {
				return results.FailureResult[*RepDashboard](ErrTeamNotFound), nil
			}
			return results.OperationResult[*RepDashboard, error]{}, err
		}
		rows, err := s.matches.ListMatches(ctx, nil)
		if err != nil {
			return results.OperationResult[*RepDashboard, error]{}, err
		}
		own := []*tournamentdb.Match{}
		for _, m := range rows {
			if m.Team1ID == teamID || m.Team2ID == teamID {
				own = append(own, m)
			}
		}
		return results.SuccessResult[*RepDashboard, error](&RepDashboard{Team: team.ToDomain(), Matches: own}), nil
	}))
}

// AdminDashboard lists teams and matches by creation with the progression state.
func (s *TournamentService) AdminDashboard(ctx context.Context) (*AdminDashboard, error) {
	return operation.Unwrap(operation.Run(ctx, s.telemetry, "AdminDashboard", "", func(ctx context.Context) (results.OperationResult[*AdminDashboard, error], error) {
		teamRows, err := s.teams.ListByCreation(ctx, nil, 0)
		if err != nil {
			return results.OperationResult[*AdminDashboard, error]{}, err
		}
		matches, err := s.matches.ListMatches(ctx, nil)
		if err != nil {
			return results.OperationResult[*AdminDashboard, error]{}, err
		}
		teams := make([]teamdomain.Team, len(teamRows))
		for i, t := range teamRows {
			teams[i] = t.ToDomain()
		}
		return results.SuccessResult[*AdminDashboard, error](&AdminDashboard{
			Teams:   teams,
			Matches: matches,
			Status:  statusOf(len(teamRows), matches),
		}), nil
	}))
}
