package notification

import (
	"context"
	"fmt"

	notificationservice "github.com/Black-And-White-Club/anleague/app/modules/notification/application"
	notificationhandlers "github.com/Black-And-White-Club/anleague/app/modules/notification/infrastructure/handlers"
	"github.com/Black-And-White-Club/anleague/app/modules/notification/infrastructure/mailer"
	notificationrouter "github.com/Black-And-White-Club/anleague/app/modules/notification/infrastructure/router"
	teamdb "github.com/Black-And-White-Club/anleague/app/modules/team/infrastructure/repositories"
	tournamentdb "github.com/Black-And-White-Club/anleague/app/modules/tournament/infrastructure/repositories"
	userhandlers "github.com/Black-And-White-Club/anleague/app/modules/user/infrastructure/handlers"
	"github.com/Black-And-White-Club/anleague/internal/observability"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/go-chi/chi/v5"
)

// Config carries the delivery settings.
type Config struct {
	// SMTP is used when Enabled is set; otherwise messages are logged.
	SMTP    mailer.SMTPConfig
	Enabled bool
	// WithCommentary appends generated commentary to match result emails.
	WithCommentary bool
}

// Module represents the notification module.
type Module struct {
	Service  notificationservice.Service
	Handlers notificationhandlers.Handlers
	Router   *notificationrouter.NotificationRouter
}

// NewNotificationModule creates the module and subscribes it to tournament
// events on router.
func NewNotificationModule(
	ctx context.Context,
	obs *observability.Observability,
	cfg Config,
	teams teamdb.Repository,
	matches tournamentdb.Repository,
	router *message.Router,
	subscriber message.Subscriber,
) (*Module, error) {
	logger := obs.Logger
	logger.InfoContext(ctx, "notification.NewNotificationModule initializing")

	var m notificationservice.Mailer = mailer.NewLogMailer(logger)
	if cfg.Enabled {
		m = mailer.NewSMTPMailer(cfg.SMTP)
	} else {
		logger.InfoContext(ctx, "SMTP not configured, notifications will be logged")
	}

	service := notificationservice.NewNotificationService(teams, matches, m, cfg.WithCommentary, logger, obs.Metrics, obs.Tracer)
	handlers := notificationhandlers.NewNotificationHandlers(service, logger, obs.Tracer)

	nr := notificationrouter.NewNotificationRouter(logger, router, subscriber, obs.Registry)
	if err := nr.Configure(ctx, handlers); err != nil {
		return nil, fmt.Errorf("failed to configure notification router: %w", err)
	}

	return &Module{
		Service:  service,
		Handlers: handlers,
		Router:   nr,
	}, nil
}

// Mount registers the admin email route.
func (m *Module) Mount(r chi.Router, guard userhandlers.Guard) {
	notificationrouter.Mount(r, m.Handlers, guard)
}
