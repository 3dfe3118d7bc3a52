package notificationservice

import (
	"context"
	"errors"
	"log/slog"
	"time"

	notificationdomain "github.com/Black-And-White-Club/anleague/app/modules/notification/domain"
	teamdb "github.com/Black-And-White-Club/anleague/app/modules/team/infrastructure/repositories"
	tournamentdomain "github.com/Black-And-White-Club/anleague/app/modules/tournament/domain"
	tournamentdb "github.com/Black-And-White-Club/anleague/app/modules/tournament/infrastructure/repositories"
	"github.com/Black-And-White-Club/anleague/internal/observability/attr"
	"github.com/Black-And-White-Club/anleague/internal/observability/metrics"
	"github.com/Black-And-White-Club/anleague/internal/operation"
	"github.com/Black-And-White-Club/anleague/internal/results"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"
)

const serviceName = "NotificationService"

// Notification kinds and outcomes reported to metrics.
const (
	KindMatchResult       = "match_result"
	KindTournamentSummary = "tournament_summary"

	OutcomeSent         = "sent"
	OutcomeFailed       = "failed"
	OutcomeNoRecipients = "no_recipients"
)

// NotificationService implements the Service interface.
type NotificationService struct {
	teams          teamdb.Repository
	matches        tournamentdb.Repository
	mailer         Mailer
	withCommentary bool
	now            func() time.Time
	logger         *slog.Logger
	metrics        metrics.NotificationMetrics
	telemetry      operation.Telemetry
}

// NewNotificationService creates a new NotificationService. withCommentary
// appends match commentary to result emails.
func NewNotificationService(
	teams teamdb.Repository,
	matches tournamentdb.Repository,
	mailer Mailer,
	withCommentary bool,
	logger *slog.Logger,
	m metrics.Recorder,
	tracer trace.Tracer,
) *NotificationService {
	if logger == nil {
		logger = slog.Default()
	}
	if m == nil {
		m = metrics.NewNoop()
	}
	return &NotificationService{
		teams:          teams,
		matches:        matches,
		mailer:         mailer,
		withCommentary: withCommentary,
		now:            time.Now,
		logger:         logger,
		metrics:        m,
		telemetry: operation.Telemetry{
			Service: serviceName,
			Logger:  logger,
			Metrics: m,
			Tracer:  tracer,
		},
	}
}

func (s *NotificationService) NotifyMatchSimulated(ctx context.Context, p *tournamentdomain.MatchSimulatedPayloadV1) error {
	if !p.Notify {
		return nil
	}
	_, err := operation.Unwrap(operation.Run(ctx, s.telemetry, "NotifyMatchSimulated", p.MatchID.String(), func(ctx context.Context) (results.OperationResult[bool, error], error) {
		msg := notificationdomain.ComposeMatchResult(notificationdomain.MatchResult{
			Team1:    p.Team1Country,
			Team2:    p.Team2Country,
			Score1:   p.Score1,
			Score2:   p.Score2,
			Scorers:  p.Scorers,
			Comments: p.Commentary,
		}, s.withCommentary, p.Team1Email, p.Team2Email)
		return results.SuccessResult[bool, error](s.deliver(ctx, KindMatchResult, msg)), nil
	}))
	return err
}

func (s *NotificationService) NotifyTournamentCompleted(ctx context.Context, p *tournamentdomain.TournamentCompletedPayloadV1) error {
	_, err := operation.Unwrap(operation.Run(ctx, s.telemetry, "NotifyTournamentCompleted", p.TournamentID.String(), func(ctx context.Context) (results.OperationResult[bool, error], error) {
		msg, err := s.composeSummary(ctx, p.WinnerCountry, p.PlayedAt)
		if err != nil {
			return results.OperationResult[bool, error]{}, err
		}
		return results.SuccessResult[bool, error](s.deliver(ctx, KindTournamentSummary, msg)), nil
	}))
	return err
}

func (s *NotificationService) SendTournamentSummary(ctx context.Context) error {
	_, err := operation.Unwrap(operation.Run(ctx, s.telemetry, "SendTournamentSummary", "", func(ctx context.Context) (results.OperationResult[bool, error], error) {
		winner, finished := notificationdomain.PlaceholderWinner, s.now()
		latest, err := s.matches.LatestTournament(ctx, nil)
		switch {
		case err == nil:
			winner, finished = latest.WinnerCountry, latest.PlayedAt
		case !errors.Is(err, tournamentdb.ErrNotFound):
			return results.OperationResult[bool, error]{}, err
		}

		msg, err := s.composeSummary(ctx, winner, finished)
		if err != nil {
			return results.OperationResult[bool, error]{}, err
		}
		return results.SuccessResult[bool, error](s.deliver(ctx, KindTournamentSummary, msg)), nil
	}))
	return err
}

// composeSummary lists every played match with live team names, falling
// back to the names stored on the match, and addresses every representative.
func (s *NotificationService) composeSummary(ctx context.Context, winner string, finished time.Time) (notificationdomain.Message, error) {
	teams, err := s.teams.ListByCreation(ctx, nil, 0)
	if err != nil {
		return notificationdomain.Message{}, err
	}
	played, err := s.matches.ListPlayed(ctx, nil, nil)
	if err != nil {
		return notificationdomain.Message{}, err
	}

	names := make(map[uuid.UUID]string, len(teams))
	emails := make([]string, 0, len(teams))
	for _, t := range teams {
		names[t.ID] = t.Country
		emails = append(emails, t.RepEmail)
	}
	name := func(id uuid.UUID, stored string) string {
		if n, ok := names[id]; ok {
			return n
		}
		return stored
	}

	lines := make([]notificationdomain.SummaryLine, 0, len(played))
	for _, m := range played {
		line := notificationdomain.SummaryLine{
			Team1:   name(m.Team1ID, m.Team1Country),
			Team2:   name(m.Team2ID, m.Team2Country),
			Scorers: m.Scorers,
		}
		if m.Score1 != nil {
			line.Score1 = *m.Score1
		}
		if m.Score2 != nil {
			line.Score2 = *m.Score2
		}
		if m.PlayedAt != nil {
			line.PlayedAt = *m.PlayedAt
		}
		lines = append(lines, line)
	}

	return notificationdomain.ComposeTournamentSummary(notificationdomain.TournamentSummary{
		WinnerCountry: winner,
		FinishedAt:    finished,
		Matches:       lines,
	}, emails...), nil
}

// deliver sends msg and reports whether it went out. Delivery failures are
// logged, never returned.
func (s *NotificationService) deliver(ctx context.Context, kind string, msg notificationdomain.Message) bool {
	if len(msg.To) == 0 {
		s.logger.InfoContext(ctx, "No recipients configured for notification",
			attr.ExtractCorrelationID(ctx),
			attr.String("kind", kind),
		)
		s.metrics.RecordNotification(ctx, kind, OutcomeNoRecipients)
		return false
	}
	if err := s.mailer.Send(ctx, msg); err != nil {
		s.logger.ErrorContext(ctx, "Failed to send notification",
			attr.ExtractCorrelationID(ctx),
			attr.String("kind", kind),
			attr.Int("recipients", len(msg.To)),
			attr.Error(err),
		)
		s.metrics.RecordNotification(ctx, kind, OutcomeFailed)
		return false
	}
	s.logger.InfoContext(ctx, "Notification sent",
		attr.ExtractCorrelationID(ctx),
		attr.String("kind", kind),
		attr.Int("recipients", len(msg.To)),
	)
	s.metrics.RecordNotification(ctx, kind, OutcomeSent)
	return true
}
