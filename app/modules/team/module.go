package team

import (
	"context"

	teamservice "github.com/Black-And-White-Club/anleague/app/modules/team/application"
	teamdomain "github.com/Black-And-White-Club/anleague/app/modules/team/domain"
	teamhandlers "github.com/Black-And-White-Club/anleague/app/modules/team/infrastructure/handlers"
	teamdb "github.com/Black-And-White-Club/anleague/app/modules/team/infrastructure/repositories"
	teamrouter "github.com/Black-And-White-Club/anleague/app/modules/team/infrastructure/router"
	userhandlers "github.com/Black-And-White-Club/anleague/app/modules/user/infrastructure/handlers"
	userdb "github.com/Black-And-White-Club/anleague/app/modules/user/infrastructure/repositories"
	"github.com/Black-And-White-Club/anleague/internal/observability"
	"github.com/Black-And-White-Club/anleague/internal/random"
	"github.com/go-chi/chi/v5"
	"github.com/uptrace/bun"
)

// Module represents the team module.
type Module struct {
	Repo     teamdb.Repository
	Service  teamservice.Service
	Handlers teamhandlers.Handlers
}

// NewTeamModule creates and initializes a new team module. Representative
// accounts are written through users.
func NewTeamModule(ctx context.Context, obs *observability.Observability, db *bun.DB, users userdb.Repository, rng random.Source) *Module {
	logger := obs.Logger
	logger.InfoContext(ctx, "team.NewTeamModule initializing")

	repo := teamdb.NewRepository(db)
	service := teamservice.NewTeamService(repo, users, teamdomain.NewGenerator(rng), logger, obs.Metrics, obs.Tracer, db)

	return &Module{
		Repo:     repo,
		Service:  service,
		Handlers: teamhandlers.NewTeamHandlers(service, logger, obs.Tracer),
	}
}

// Mount registers the team routes, guarding admin actions with guard.
func (m *Module) Mount(r chi.Router, guard userhandlers.Guard) {
	teamrouter.Mount(r, m.Handlers, guard)
}
