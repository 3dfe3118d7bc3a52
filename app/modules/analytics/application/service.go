package analyticsservice

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	analyticsdomain "github.com/Black-And-White-Club/anleague/app/modules/analytics/domain"
	teamdb "github.com/Black-And-White-Club/anleague/app/modules/team/infrastructure/repositories"
	tournamentdb "github.com/Black-And-White-Club/anleague/app/modules/tournament/infrastructure/repositories"
	"github.com/Black-And-White-Club/anleague/internal/observability/metrics"
	"github.com/Black-And-White-Club/anleague/internal/operation"
	"github.com/Black-And-White-Club/anleague/internal/results"
	"go.opentelemetry.io/otel/trace"
)

const serviceName = "AnalyticsService"

// AnalyticsService implements the Service interface. It only reads.
type AnalyticsService struct {
	teams     teamdb.Repository
	matches   tournamentdb.Repository
	palette   ChartPalette
	telemetry operation.Telemetry
}

// NewAnalyticsService creates a new AnalyticsService.
func NewAnalyticsService(
	teams teamdb.Repository,
	matches tournamentdb.Repository,
	logger *slog.Logger,
	m metrics.OperationMetrics,
	tracer trace.Tracer,
) *AnalyticsService {
	if logger == nil {
		logger = slog.Default()
	}
	return &AnalyticsService{
		teams:   teams,
		matches: matches,
		palette: DefaultPalette,
		telemetry: operation.Telemetry{
			Service: serviceName,
			Logger:  logger,
			Metrics: m,
			Tracer:  tracer,
		},
	}
}

// Report returns every team's stats in registration order and the top
// scorers over the same window.
func (s *AnalyticsService) Report(ctx context.Context, since *time.Time) (*Report, error) {
	return operation.Unwrap(operation.Run(ctx, s.telemetry, "Report", "", func(ctx context.Context) (results.OperationResult[*Report, error], error) {
		report, err := s.build(ctx, since)
		if err != nil {
			return results.OperationResult[*Report, error]{}, err
		}
		return results.SuccessResult[*Report, error](report), nil
	}))
}

// Leaderboard returns the top scorers across the full history.
func (s *AnalyticsService) Leaderboard(ctx context.Context, limit int) ([]analyticsdomain.ScorerTally, error) {
	return operation.Unwrap(operation.Run(ctx, s.telemetry, "Leaderboard", "", func(ctx context.Context) (results.OperationResult[[]analyticsdomain.ScorerTally, error], error) {
		history, err := s.history(ctx, nil)
		if err != nil {
			return results.OperationResult[[]analyticsdomain.ScorerTally, error]{}, err
		}
		rows := analyticsdomain.TopScorers(history, limit)
		if rows == nil {
			rows = []analyticsdomain.ScorerTally{}
		}
		return results.SuccessResult[[]analyticsdomain.ScorerTally, error](rows), nil
	}))
}

// GoalsChart renders goals scored per team as a PNG bar chart.
func (s *AnalyticsService) GoalsChart(ctx context.Context) ([]byte, error) {
	return operation.Unwrap(operation.Run(ctx, s.telemetry, "GoalsChart", "", func(ctx context.Context) (results.OperationResult[[]byte, error], error) {
		report, err := s.build(ctx, nil)
		if err != nil {
			return results.OperationResult[[]byte, error]{}, err
		}
		png, err := GenerateGoalsChart(report.Teams, s.palette)
		if err != nil {
			return results.OperationResult[[]byte, error]{}, fmt.Errorf("render chart: %w", err)
		}
		return results.SuccessResult[[]byte, error](png), nil
	}))
}

// ExportWorkbook writes the full report as an XLSX workbook.
func (s *AnalyticsService) ExportWorkbook(ctx context.Context) ([]byte, error) {
	return operation.Unwrap(operation.Run(ctx, s.telemetry, "ExportWorkbook", "", func(ctx context.Context) (results.OperationResult[[]byte, error], error) {
		report, err := s.build(ctx, nil)
		if err != nil {
			return results.OperationResult[[]byte, error]{}, err
		}
		data, err := BuildWorkbook(report)
		if err != nil {
			return results.OperationResult[[]byte, error]{}, fmt.Errorf("build workbook: %w", err)
		}
		return results.SuccessResult[[]byte, error](data), nil
	}))
}

func (s *AnalyticsService) build(ctx context.Context, since *time.Time) (*Report, error) {
	teams, err := s.teams.ListByCreation(ctx, nil, 0)
	if err != nil {
		return nil, err
	}
	history, err := s.history(ctx, since)
	if err != nil {
		return nil, err
	}

	report := &Report{
		Teams:      make([]TeamSummary, len(teams)),
		TopScorers: analyticsdomain.TopScorers(history, analyticsdomain.DefaultLeaderboardLimit),
	}
	for i, t := range teams {
		report.Teams[i] = TeamSummary{
			ID:      t.ID,
			Country: t.Country,
			Rating:  t.Rating,
			Stats:   analyticsdomain.ComputeTeamStats(t.ID, history),
		}
	}
	if report.TopScorers == nil {
		report.TopScorers = []analyticsdomain.ScorerTally{}
	}
	return report, nil
}

// history returns played matches oldest first so leaderboard ties follow
// the order goals were scored.
func (s *AnalyticsService) history(ctx context.Context, since *time.Time) ([]analyticsdomain.MatchRecord, error) {
	played, err := s.matches.ListPlayed(ctx, nil, since)
	if err != nil {
		return nil, err
	}
	records := make([]analyticsdomain.MatchRecord, 0, len(played))
	for i := len(played) - 1; i >= 0; i-- {
		records = append(records, toRecord(played[i]))
	}
	return records, nil
}

func toRecord(m *tournamentdb.Match) analyticsdomain.MatchRecord {
	r := analyticsdomain.MatchRecord{
		Team1ID: m.Team1ID,
		Team2ID: m.Team2ID,
		Played:  m.Played,
		Scorers: m.Scorers,
	}
	if m.Score1 != nil {
		r.Score1 = *m.Score1
	}
	if m.Score2 != nil {
		r.Score2 = *m.Score2
	}
	return r
}
