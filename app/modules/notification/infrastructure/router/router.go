package notificationrouter

import (
	"context"
	"log/slog"
	"time"

	notificationhandlers "github.com/Black-And-White-Club/anleague/app/modules/notification/infrastructure/handlers"
	tournamentdomain "github.com/Black-And-White-Club/anleague/app/modules/tournament/domain"
	userdomain "github.com/Black-And-White-Club/anleague/app/modules/user/domain"
	userhandlers "github.com/Black-And-White-Club/anleague/app/modules/user/infrastructure/handlers"
	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/components/metrics"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/message/router/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
)

// Retry settings for event handlers.
const (
	MaxRetries      = 3
	InitialInterval = 200 * time.Millisecond
)

// NotificationRouter binds the tournament topics to notification handlers.
type NotificationRouter struct {
	logger         *slog.Logger
	Router         *message.Router
	subscriber     message.Subscriber
	metricsBuilder *metrics.PrometheusMetricsBuilder
}

// NewNotificationRouter creates the router. A nil registry disables
// handler metrics.
func NewNotificationRouter(logger *slog.Logger, router *message.Router, subscriber message.Subscriber, registry *prometheus.Registry) *NotificationRouter {
	var builder *metrics.PrometheusMetricsBuilder
	if registry != nil {
		b := metrics.NewPrometheusMetricsBuilder(registry, "", "")
		builder = &b
	}
	return &NotificationRouter{
		logger:         logger,
		Router:         router,
		subscriber:     subscriber,
		metricsBuilder: builder,
	}
}

// Configure adds the middleware and registers the event handlers.
func (r *NotificationRouter) Configure(ctx context.Context, handlers notificationhandlers.Handlers) error {
	if r.metricsBuilder != nil {
		r.logger.InfoContext(ctx, "Adding Prometheus router metrics middleware for Notification")
		r.metricsBuilder.AddPrometheusRouterMetrics(r.Router)
	}

	r.Router.AddMiddleware(
		middleware.CorrelationID,
		middleware.Retry{
			MaxRetries:      MaxRetries,
			InitialInterval: InitialInterval,
			Logger:          watermill.NewSlogLogger(r.logger),
		}.Middleware,
		middleware.Recoverer,
	)

	return r.RegisterHandlers(ctx, handlers)
}

// RegisterHandlers binds each topic to its handler.
func (r *NotificationRouter) RegisterHandlers(ctx context.Context, handlers notificationhandlers.Handlers) error {
	r.logger.InfoContext(ctx, "Registering Notification Event Handlers")

	r.Router.AddNoPublisherHandler(
		"notification."+tournamentdomain.MatchSimulatedV1,
		tournamentdomain.MatchSimulatedV1,
		r.subscriber,
		handlers.HandleMatchSimulated,
	)
	r.Router.AddNoPublisherHandler(
		"notification."+tournamentdomain.TournamentCompletedV1,
		tournamentdomain.TournamentCompletedV1,
		r.subscriber,
		handlers.HandleTournamentCompleted,
	)
	return nil
}

// Close stops the router and cleans up resources.
func (r *NotificationRouter) Close() error {
	return r.Router.Close()
}

// Mount registers the admin email route.
func Mount(r chi.Router, h notificationhandlers.Handlers, guard userhandlers.Guard) {
	r.With(guard.Require(userdomain.RoleAdmin)).Post("/api/admin/email", h.HandleSendSummary)
}
