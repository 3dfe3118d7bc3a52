package analytics

import (
	"context"

	analyticsservice "github.com/Black-And-White-Club/anleague/app/modules/analytics/application"
	analyticshandlers "github.com/Black-And-White-Club/anleague/app/modules/analytics/infrastructure/handlers"
	analyticsrouter "github.com/Black-And-White-Club/anleague/app/modules/analytics/infrastructure/router"
	teamdb "github.com/Black-And-White-Club/anleague/app/modules/team/infrastructure/repositories"
	tournamentdb "github.com/Black-And-White-Club/anleague/app/modules/tournament/infrastructure/repositories"
	"github.com/Black-And-White-Club/anleague/internal/observability"
	"github.com/Black-And-White-Club/anleague/internal/timefilter"
	"github.com/go-chi/chi/v5"
)

// Module represents the analytics module. It owns no tables and reads
// through the team and tournament repositories.
type Module struct {
	Service  analyticsservice.Service
	Handlers analyticshandlers.Handlers
}

// NewAnalyticsModule creates and initializes a new analytics module.
func NewAnalyticsModule(ctx context.Context, obs *observability.Observability, teams teamdb.Repository, matches tournamentdb.Repository) *Module {
	logger := obs.Logger
	logger.InfoContext(ctx, "analytics.NewAnalyticsModule initializing")

	service := analyticsservice.NewAnalyticsService(teams, matches, logger, obs.Metrics, obs.Tracer)
	return &Module{
		Service:  service,
		Handlers: analyticshandlers.NewAnalyticsHandlers(service, timefilter.New(), logger, obs.Tracer),
	}
}

// Mount registers the analytics routes.
func (m *Module) Mount(r chi.Router) {
	analyticsrouter.Mount(r, m.Handlers)
}
