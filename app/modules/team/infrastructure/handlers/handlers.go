package teamhandlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	teamservice "github.com/Black-And-White-Club/anleague/app/modules/team/application"
	teamdomain "github.com/Black-And-White-Club/anleague/app/modules/team/domain"
	"github.com/Black-And-White-Club/anleague/internal/httpx"
	"github.com/Black-And-White-Club/anleague/internal/observability/attr"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"
)

// RepUsersRequest optionally overrides the bulk representative password.
type RepUsersRequest struct {
	Password string `json:"password"`
}

// RepUsersResponse lists the accounts created.
type RepUsersResponse struct {
	Created []string `json:"created"`
}

// TeamHandlers implements the Handlers interface.
type TeamHandlers struct {
	service teamservice.Service
	logger  *slog.Logger
	tracer  trace.Tracer
}

// NewTeamHandlers creates a new TeamHandlers instance.
func NewTeamHandlers(service teamservice.Service, logger *slog.Logger, tracer trace.Tracer) Handlers {
	return &TeamHandlers{
		service: service,
		logger:  logger,
		tracer:  tracer,
	}
}

func (h *TeamHandlers) HandleListTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "TeamHandlers.ListTeams")
	defer span.End()

	order := teamservice.OrderByCreation
	if r.URL.Query().Get("order") == string(teamservice.OrderByRating) {
		order = teamservice.OrderByRating
	}

	teams, err := h.service.ListTeams(ctx, order)
	if err != nil {
		h.writeServiceError(w, r, "list teams", err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, teams)
}

func (h *TeamHandlers) HandleGetTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "TeamHandlers.GetTeam")
	defer span.End()

	id, ok := teamIDParam(w, r)
	if !ok {
		return
	}
	team, err := h.service.GetTeam(ctx, id)
	if err != nil {
		h.writeServiceError(w, r, "get team", err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, team)
}

func (h *TeamHandlers) HandleRegisterTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "TeamHandlers.RegisterTeam")
	defer span.End()

	var req teamservice.RegisterTeamRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	team, err := h.service.RegisterTeam(ctx, req)
	if err != nil {
		h.writeServiceError(w, r, "register team", err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, team)
}

func (h *TeamHandlers) HandleSeedDemoTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "TeamHandlers.SeedDemoTeams")
	defer span.End()

	n := teamservice.DemoSeedCount
	if v := r.URL.Query().Get("count"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed <= 0 {
			httpx.WriteError(w, http.StatusBadRequest, "count must be a positive integer")
			return
		}
		n = parsed
	}

	teams, err := h.service.SeedDemoTeams(ctx, n)
	if err != nil {
		h.writeServiceError(w, r, "seed demo teams", err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, teams)
}

func (h *TeamHandlers) HandleAddDemoTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "TeamHandlers.AddDemoTeam")
	defer span.End()

	team, err := h.service.AddDemoTeam(ctx)
	if err != nil {
		h.writeServiceError(w, r, "add demo team", err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, team)
}

func (h *TeamHandlers) HandleCreateRepUsers(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "TeamHandlers.CreateRepUsers")
	defer span.End()

	var req RepUsersRequest
	if r.ContentLength > 0 {
		if err := httpx.DecodeJSON(r, &req); err != nil {
			httpx.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}
	}

	created, err := h.service.CreateRepUsers(ctx, req.Password)
	if err != nil {
		h.writeServiceError(w, r, "create rep users", err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, RepUsersResponse{Created: created})
}

func (h *TeamHandlers) HandleRemoveTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "TeamHandlers.RemoveTeam")
	defer span.End()

	id, ok := teamIDParam(w, r)
	if !ok {
		return
	}
	if err := h.service.RemoveTeam(ctx, id); err != nil {
		h.writeServiceError(w, r, "remove team", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *TeamHandlers) HandleReplaceTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "TeamHandlers.ReplaceTeam")
	defer span.End()

	id, ok := teamIDParam(w, r)
	if !ok {
		return
	}
	team, err := h.service.ReplaceTeam(ctx, id)
	if err != nil {
		h.writeServiceError(w, r, "replace team", err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, team)
}

func teamIDParam(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid team id")
		return uuid.Nil, false
	}
	return id, true
}

func (h *TeamHandlers) writeServiceError(w http.ResponseWriter, r *http.Request, action string, err error) {
	switch {
	case errors.Is(err, teamservice.ErrTeamNotFound):
		httpx.WriteError(w, http.StatusNotFound, "Team not found")
	case errors.Is(err, teamservice.ErrRepresentativeExists):
		httpx.WriteError(w, http.StatusConflict, "Representative email already registered")
	case errors.Is(err, teamservice.ErrMissingPassword),
		errors.Is(err, teamdomain.ErrInvalidRoster),
		errors.Is(err, teamdomain.ErrInvalidCaptain),
		errors.Is(err, teamdomain.ErrInvalidPosition),
		errors.Is(err, teamdomain.ErrMissingField):
		httpx.WriteError(w, http.StatusBadRequest, err.Error())
	default:
		h.logger.ErrorContext(r.Context(), "Team request failed",
			attr.ExtractCorrelationID(r.Context()),
			attr.String("action", action),
			attr.Error(err),
		)
		httpx.WriteError(w, http.StatusInternalServerError, action+" failed")
	}
}
