package tournament

import (
	"context"

	matchdomain "github.com/Black-And-White-Club/anleague/app/modules/match/domain"
	matchassets "github.com/Black-And-White-Club/anleague/app/modules/match/infrastructure/assets"
	"github.com/Black-And-White-Club/anleague/app/modules/match/infrastructure/commentary"
	teamdb "github.com/Black-And-White-Club/anleague/app/modules/team/infrastructure/repositories"
	tournamentservice "github.com/Black-And-White-Club/anleague/app/modules/tournament/application"
	tournamenthandlers "github.com/Black-And-White-Club/anleague/app/modules/tournament/infrastructure/handlers"
	tournamentdb "github.com/Black-And-White-Club/anleague/app/modules/tournament/infrastructure/repositories"
	tournamentrouter "github.com/Black-And-White-Club/anleague/app/modules/tournament/infrastructure/router"
	userhandlers "github.com/Black-And-White-Club/anleague/app/modules/user/infrastructure/handlers"
	"github.com/Black-And-White-Club/anleague/internal/observability"
	"github.com/Black-And-White-Club/anleague/internal/random"
	"github.com/Black-And-White-Club/anleague/internal/timefilter"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/go-chi/chi/v5"
	"github.com/uptrace/bun"
)

// Config carries the simulation collaborators. An empty Commentary.APIKey
// leaves matches with the built-in recap.
type Config struct {
	AssetsRoot string
	Commentary commentary.Config
}

// Module represents the tournament module.
type Module struct {
	Repo      tournamentdb.Repository
	Simulator *matchdomain.Simulator
	Service   tournamentservice.Service
	Handlers  tournamenthandlers.Handlers
}

// NewTournamentModule creates and initializes a new tournament module.
func NewTournamentModule(
	ctx context.Context,
	obs *observability.Observability,
	cfg Config,
	db *bun.DB,
	teams teamdb.Repository,
	publisher message.Publisher,
	rng random.Source,
) *Module {
	logger := obs.Logger
	logger.InfoContext(ctx, "tournament.NewTournamentModule initializing")

	simulator := NewSimulator(ctx, obs, cfg, rng)
	if simulator.HasCommentator() {
		logger.InfoContext(ctx, "Generated commentary enabled", "model", cfg.Commentary.Model)
	}

	repo := tournamentdb.NewRepository(db)
	service := tournamentservice.NewTournamentService(repo, teams, simulator, publisher, rng, logger, obs.Metrics, obs.Tracer, db)

	return &Module{
		Repo:      repo,
		Simulator: simulator,
		Service:   service,
		Handlers:  tournamenthandlers.NewTournamentHandlers(service, timefilter.New(), logger, obs.Tracer),
	}
}

// NewSimulator builds the match simulator with local media, metrics and,
// when an API key is configured, generated commentary.
func NewSimulator(ctx context.Context, obs *observability.Observability, cfg Config, rng random.Source) *matchdomain.Simulator {
	opts := []matchdomain.Option{
		matchdomain.WithAssets(matchassets.NewFSResolver(cfg.AssetsRoot, rng)),
		matchdomain.WithMetrics(obs.Metrics),
		matchdomain.WithLogger(obs.Logger),
	}
	if cfg.Commentary.APIKey != "" {
		opts = append(opts, matchdomain.WithCommentator(commentary.NewClient(ctx, cfg.Commentary, obs.Logger)))
	}
	return matchdomain.NewSimulator(rng, opts...)
}

// Mount registers the tournament routes.
func (m *Module) Mount(r chi.Router, guard userhandlers.Guard) {
	tournamentrouter.Mount(r, m.Handlers, guard)
}
