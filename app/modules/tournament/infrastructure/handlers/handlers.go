package tournamenthandlers

import (
	"errors"
	"log/slog"
	"net/http"

	tournamentservice "github.com/Black-And-White-Club/anleague/app/modules/tournament/application"
	tournamentdomain "github.com/Black-And-White-Club/anleague/app/modules/tournament/domain"
	userdomain "github.com/Black-And-White-Club/anleague/app/modules/user/domain"
	"github.com/Black-And-White-Club/anleague/internal/httpx"
	"github.com/Black-And-White-Club/anleague/internal/observability/attr"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"
)

// ResetResponse reports how many matches were removed.
type ResetResponse struct {
	Deleted int `json:"deleted"`
}

// TournamentHandlers implements the Handlers interface.
type TournamentHandlers struct {
	service tournamentservice.Service
	since   SinceParser
	logger  *slog.Logger
	tracer  trace.Tracer
}

// NewTournamentHandlers creates a new TournamentHandlers instance.
func NewTournamentHandlers(service tournamentservice.Service, since SinceParser, logger *slog.Logger, tracer trace.Tracer) Handlers {
	return &TournamentHandlers{
		service: service,
		since:   since,
		logger:  logger,
		tracer:  tracer,
	}
}

func (h *TournamentHandlers) HandleBracket(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "TournamentHandlers.Bracket")
	defer span.End()

	matches, err := h.service.Bracket(ctx)
	if err != nil {
		h.writeServiceError(w, r, "bracket", err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, matches)
}

func (h *TournamentHandlers) HandleGetMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "TournamentHandlers.GetMatch")
	defer span.End()

	id, ok := matchIDParam(w, r)
	if !ok {
		return
	}
	view, err := h.service.GetMatch(ctx, id)
	if err != nil {
		h.writeServiceError(w, r, "get match", err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, view)
}

func (h *TournamentHandlers) HandleHistory(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "TournamentHandlers.History")
	defer span.End()

	since, err := h.since.Parse(r.URL.Query().Get("since"))
	if err != nil {
		httpx.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}
	tournaments, err := h.service.History(ctx, since)
	if err != nil {
		h.writeServiceError(w, r, "history", err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, tournaments)
}

func (h *TournamentHandlers) HandleStatus(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "TournamentHandlers.Status")
	defer span.End()

	status, err := h.service.Status(ctx)
	if err != nil {
		h.writeServiceError(w, r, "status", err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, status)
}

func (h *TournamentHandlers) HandleRepDashboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "TournamentHandlers.RepDashboard")
	defer span.End()

	claims, ok := userdomain.ClaimsFromContext(ctx)
	if !ok || claims.TeamID == nil {
		httpx.WriteError(w, http.StatusForbidden, "No team bound to this account")
		return
	}
	dash, err := h.service.RepDashboard(ctx, *claims.TeamID)
	if err != nil {
		h.writeServiceError(w, r, "rep dashboard", err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, dash)
}

func (h *TournamentHandlers) HandleAdminDashboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "TournamentHandlers.AdminDashboard")
	defer span.End()

	dash, err := h.service.AdminDashboard(ctx)
	if err != nil {
		h.writeServiceError(w, r, "admin dashboard", err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, dash)
}

func (h *TournamentHandlers) HandleStart(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "TournamentHandlers.Start")
	defer span.End()

	matches, err := h.service.StartTournament(ctx)
	if err != nil {
		h.writeServiceError(w, r, "start tournament", err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, matches)
}

func (h *TournamentHandlers) HandleSimulateAll(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "TournamentHandlers.SimulateAll")
	defer span.End()

	report, err := h.service.SimulateAll(ctx)
	if err != nil {
		h.writeServiceError(w, r, "simulate all", err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, report)
}

func (h *TournamentHandlers) HandleSimulateMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "TournamentHandlers.SimulateMatch")
	defer span.End()

	id, ok := matchIDParam(w, r)
	if !ok {
		return
	}
	report, err := h.service.SimulateMatch(ctx, id)
	if err != nil {
		h.writeServiceError(w, r, "simulate match", err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, report)
}

func (h *TournamentHandlers) HandleReset(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "TournamentHandlers.Reset")
	defer span.End()

	n, err := h.service.Reset(ctx)
	if err != nil {
		h.writeServiceError(w, r, "reset", err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, ResetResponse{Deleted: n})
}

func matchIDParam(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid match id")
		return uuid.Nil, false
	}
	return id, true
}

func (h *TournamentHandlers) writeServiceError(w http.ResponseWriter, r *http.Request, action string, err error) {
	switch {
	case errors.Is(err, tournamentservice.ErrMatchNotFound):
		httpx.WriteError(w, http.StatusNotFound, "Match not found")
	case errors.Is(err, tournamentservice.ErrTeamNotFound):
		httpx.WriteError(w, http.StatusNotFound, "Team not found")
	case errors.Is(err, tournamentservice.ErrMatchAlreadyPlayed),
		errors.Is(err, tournamentservice.ErrTournamentInProgress):
		httpx.WriteError(w, http.StatusConflict, err.Error())
	case errors.Is(err, tournamentservice.ErrNotEnoughTeams),
		errors.Is(err, tournamentservice.ErrTeamMissing),
		errors.Is(err, tournamentdomain.ErrBracketSize),
		errors.Is(err, tournamentdomain.ErrDuplicateEntrant):
		httpx.WriteError(w, http.StatusUnprocessableEntity, err.Error())
	default:
		h.logger.ErrorContext(r.Context(), "Tournament request failed",
			attr.ExtractCorrelationID(r.Context()),
			attr.String("action", action),
			attr.Error(err),
		)
		httpx.WriteError(w, http.StatusInternalServerError, action+" failed")
	}
}
