package user

import (
	"context"
	"time"

	userservice "github.com/Black-And-White-Club/anleague/app/modules/user/application"
	userhandlers "github.com/Black-And-White-Club/anleague/app/modules/user/infrastructure/handlers"
	userjwt "github.com/Black-And-White-Club/anleague/app/modules/user/infrastructure/jwt"
	userdb "github.com/Black-And-White-Club/anleague/app/modules/user/infrastructure/repositories"
	userrouter "github.com/Black-And-White-Club/anleague/app/modules/user/infrastructure/router"
	"github.com/Black-And-White-Club/anleague/internal/httpx"
	"github.com/Black-And-White-Club/anleague/internal/observability"
	"github.com/go-chi/chi/v5"
	"github.com/uptrace/bun"
)

// Config carries the settings the user module needs.
type Config struct {
	JWTSecret      string
	TokenTTL       time.Duration
	AllowedOrigins []string
}

// Module represents the user module.
type Module struct {
	Repo     userdb.Repository
	Service  userservice.Service
	Handlers userhandlers.Handlers
	Guard    userhandlers.Guard

	limiter        *httpx.ClientLimiter
	allowedOrigins []string
	obs            *observability.Observability
}

// NewUserModule creates and initializes a new user module.
func NewUserModule(ctx context.Context, obs *observability.Observability, cfg Config, db *bun.DB) *Module {
	logger := obs.Logger
	logger.InfoContext(ctx, "user.NewUserModule initializing")

	repo := userdb.NewRepository(db)
	service := userservice.NewUserService(repo, userjwt.NewProvider(cfg.JWTSecret), cfg.TokenTTL, logger, obs.Metrics, obs.Tracer, db)

	return &Module{
		Repo:           repo,
		Service:        service,
		Handlers:       userhandlers.NewUserHandlers(service, logger, obs.Tracer),
		Guard:          userhandlers.NewGuard(service, logger),
		limiter:        httpx.NewClientLimiter(httpx.DefaultLoginRate, httpx.DefaultLoginBurst),
		allowedOrigins: cfg.AllowedOrigins,
		obs:            obs,
	}
}

// Mount registers the login routes.
func (m *Module) Mount(r chi.Router) {
	userrouter.Mount(r, m.Handlers, m.limiter, m.allowedOrigins)
}

// EnsureAdmin creates the configured administrator when absent.
func (m *Module) EnsureAdmin(ctx context.Context, username, password string) error {
	created, err := m.Service.EnsureAdmin(ctx, username, password)
	if err != nil {
		return err
	}
	if created {
		m.obs.Logger.InfoContext(ctx, "Administrator account created", "username", username)
	}
	return nil
}
