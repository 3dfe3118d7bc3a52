package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Black-And-White-Club/anleague/config"
	"github.com/Black-And-White-Club/anleague/internal/db/bundb"
	"github.com/Black-And-White-Club/anleague/internal/eventbus"
	"github.com/Black-And-White-Club/anleague/internal/modules"
	"github.com/Black-And-White-Club/anleague/internal/observability"
	"github.com/Black-And-White-Club/anleague/internal/random"
	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/uptrace/bun"
)

// QueueGroup load-balances event handlers across service replicas.
const QueueGroup = "anleague"

type App struct {
	Config          *config.Config
	Obs             *observability.Observability
	DB              *bun.DB
	EventBus        eventbus.EventBus
	WatermillRouter *message.Router
	Modules         *modules.ModuleRegistry
}

// NewApp connects to Postgres and the event bus, applies migrations, builds
// every module and ensures the administrator account exists.
func NewApp(ctx context.Context, cfg *config.Config, obs *observability.Observability) (*App, error) {
	logger := obs.Logger

	db, err := bundb.Open(ctx, cfg.Postgres.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	if err := bundb.MigrateAll(ctx, db, logger); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	bus, err := eventbus.New(eventbus.Config{
		URL:        cfg.NATS.URL,
		JetStream:  cfg.NATS.JetStream,
		QueueGroup: QueueGroup,
	}, logger)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize event bus: %w", err)
	}

	router, err := message.NewRouter(message.RouterConfig{CloseTimeout: 10 * time.Second}, watermill.NewSlogLogger(logger))
	if err != nil {
		bus.Close()
		db.Close()
		return nil, fmt.Errorf("failed to create watermill router: %w", err)
	}

	app := &App{
		Config:          cfg,
		Obs:             obs,
		DB:              db,
		EventBus:        bus,
		WatermillRouter: router,
	}

	registry, err := modules.NewModuleRegistry(ctx, modules.Deps{
		Config: cfg,
		Obs:    obs,
		DB:     db,
		Bus:    bus,
		Router: router,
		RNG:    random.Global(),
	})
	if err != nil {
		app.Close()
		return nil, err
	}
	app.Modules = registry

	if err := registry.User.EnsureAdmin(ctx, cfg.Admin.Username, cfg.Admin.Password); err != nil {
		app.Close()
		return nil, fmt.Errorf("failed to ensure administrator: %w", err)
	}
	return app, nil
}

// Close releases the event bus and database connections.
func (app *App) Close() error {
	var errs []error
	if err := app.WatermillRouter.Close(); err != nil {
		errs = append(errs, fmt.Errorf("close watermill router: %w", err))
	}
	if err := app.EventBus.Close(); err != nil {
		errs = append(errs, fmt.Errorf("close event bus: %w", err))
	}
	if err := app.DB.Close(); err != nil {
		errs = append(errs, fmt.Errorf("close database: %w", err))
	}
	return errors.Join(errs...)
}
