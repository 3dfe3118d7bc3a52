package notificationhandlers

import (
	"log/slog"
	"net/http"

	notificationservice "github.com/Black-And-White-Club/anleague/app/modules/notification/application"
	tournamentdomain "github.com/Black-And-White-Club/anleague/app/modules/tournament/domain"
	"github.com/Black-And-White-Club/anleague/internal/eventbus"
	"github.com/Black-And-White-Club/anleague/internal/httpx"
	"github.com/Black-And-White-Club/anleague/internal/observability/attr"
	"github.com/ThreeDotsLabs/watermill/message"
	"go.opentelemetry.io/otel/trace"
)

// SummaryResponse acknowledges the admin email action.
type SummaryResponse struct {
	Message string `json:"message"`
}

// NotificationHandlers implements the Handlers interface.
type NotificationHandlers struct {
	service notificationservice.Service
	logger  *slog.Logger
	tracer  trace.Tracer
}

// NewNotificationHandlers creates a new NotificationHandlers instance.
func NewNotificationHandlers(service notificationservice.Service, logger *slog.Logger, tracer trace.Tracer) Handlers {
	return &NotificationHandlers{
		service: service,
		logger:  logger,
		tracer:  tracer,
	}
}

// HandleMatchSimulated acknowledges undecodable payloads so they are not
// redelivered. Repository errors are returned for retry.
func (h *NotificationHandlers) HandleMatchSimulated(msg *message.Message) error {
	ctx, span := h.tracer.Start(eventbus.ContextFromMessage(msg), "NotificationHandlers.MatchSimulated")
	defer span.End()

	payload, err := eventbus.Decode[tournamentdomain.MatchSimulatedPayloadV1](msg)
	if err != nil {
		h.logger.ErrorContext(ctx, "Dropping malformed event",
			attr.ExtractCorrelationID(ctx),
			attr.String("topic", tournamentdomain.MatchSimulatedV1),
			attr.Error(err),
		)
		return nil
	}
	return h.service.NotifyMatchSimulated(ctx, payload)
}

func (h *NotificationHandlers) HandleTournamentCompleted(msg *message.Message) error {
	ctx, span := h.tracer.Start(eventbus.ContextFromMessage(msg), "NotificationHandlers.TournamentCompleted")
	defer span.End()

	payload, err := eventbus.Decode[tournamentdomain.TournamentCompletedPayloadV1](msg)
	if err != nil {
		h.logger.ErrorContext(ctx, "Dropping malformed event",
			attr.ExtractCorrelationID(ctx),
			attr.String("topic", tournamentdomain.TournamentCompletedV1),
			attr.Error(err),
		)
		return nil
	}
	return h.service.NotifyTournamentCompleted(ctx, payload)
}

func (h *NotificationHandlers) HandleSendSummary(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "NotificationHandlers.SendSummary")
	defer span.End()

	if err := h.service.SendTournamentSummary(ctx); err != nil {
		h.logger.ErrorContext(ctx, "Tournament summary email failed",
			attr.ExtractCorrelationID(ctx),
			attr.Error(err),
		)
		httpx.WriteError(w, http.StatusInternalServerError, "Failed to send email")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, SummaryResponse{Message: "Tournament summary sent to representatives (or logged)"})
}
