package mailer

import (
	"context"
	"log/slog"

	notificationdomain "github.com/Black-And-White-Club/anleague/app/modules/notification/domain"
	"github.com/Black-And-White-Club/anleague/internal/observability/attr"
)

// LogMailer writes every message to the log instead of sending it.
type LogMailer struct {
	logger *slog.Logger
}

func NewLogMailer(logger *slog.Logger) *LogMailer {
	return &LogMailer{logger: logger}
}

func (m *LogMailer) Send(ctx context.Context, msg notificationdomain.Message) error {
	m.logger.InfoContext(ctx, "SMTP not configured - printing notification to log",
		attr.ExtractCorrelationID(ctx),
		"to", msg.To,
		attr.String("subject", msg.Subject),
		attr.String("body", msg.Body),
	)
	return nil
}
