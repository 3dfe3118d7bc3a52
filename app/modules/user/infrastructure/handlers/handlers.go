package userhandlers

import (
	"errors"
	"log/slog"
	"net/http"

	userservice "github.com/Black-And-White-Club/anleague/app/modules/user/application"
	userdomain "github.com/Black-And-White-Club/anleague/app/modules/user/domain"
	"github.com/Black-And-White-Club/anleague/internal/httpx"
	"github.com/Black-And-White-Club/anleague/internal/observability/attr"
	"go.opentelemetry.io/otel/trace"
)

// LoginRequest is the login body.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// UserHandlers implements the Handlers interface.
type UserHandlers struct {
	service userservice.Service
	logger  *slog.Logger
	tracer  trace.Tracer
}

// NewUserHandlers creates a new UserHandlers instance.
func NewUserHandlers(service userservice.Service, logger *slog.Logger, tracer trace.Tracer) Handlers {
	return &UserHandlers{
		service: service,
		logger:  logger,
		tracer:  tracer,
	}
}

func (h *UserHandlers) HandleAdminLogin(w http.ResponseWriter, r *http.Request) {
	h.login(w, r, userdomain.RoleAdmin)
}

func (h *UserHandlers) HandleRepLogin(w http.ResponseWriter, r *http.Request) {
	h.login(w, r, userdomain.RoleRep)
}

func (h *UserHandlers) login(w http.ResponseWriter, r *http.Request, role userdomain.Role) {
	ctx, span := h.tracer.Start(r.Context(), "UserHandlers.Login")
	defer span.End()

	var req LoginRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.Username == "" || req.Password == "" {
		httpx.WriteError(w, http.StatusBadRequest, "username and password are required")
		return
	}

	resp, err := h.service.Login(ctx, req.Username, req.Password, role)
	if err != nil {
		if errors.Is(err, userservice.ErrInvalidCredentials) {
			h.logger.WarnContext(ctx, "Login rejected",
				attr.ExtractCorrelationID(ctx),
				attr.String("username", req.Username),
				attr.String("role", role.String()),
			)
			httpx.WriteError(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		h.logger.ErrorContext(ctx, "Login failed", attr.ExtractCorrelationID(ctx), attr.Error(err))
		httpx.WriteError(w, http.StatusInternalServerError, "login failed")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, resp)
}
