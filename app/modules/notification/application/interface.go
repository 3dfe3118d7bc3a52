package notificationservice

import (
	"context"

	notificationdomain "github.com/Black-And-White-Club/anleague/app/modules/notification/domain"
	tournamentdomain "github.com/Black-And-White-Club/anleague/app/modules/tournament/domain"
)

// Mailer delivers a composed message.
type Mailer interface {
	Send(ctx context.Context, msg notificationdomain.Message) error
}

// Service defines the notification operations.
type Service interface {
	// NotifyMatchSimulated emails both representatives when the payload
	// asks for it.
	NotifyMatchSimulated(ctx context.Context, p *tournamentdomain.MatchSimulatedPayloadV1) error

	// NotifyTournamentCompleted emails the summary to every representative.
	NotifyTournamentCompleted(ctx context.Context, p *tournamentdomain.TournamentCompletedPayloadV1) error

	// SendTournamentSummary emails the latest tournament's summary, or a
	// placeholder summary when none has completed.
	SendTournamentSummary(ctx context.Context) error
}
