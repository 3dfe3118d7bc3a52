//go:build integration

// Package testutils starts the containers shared by the integration suites.
package testutils

import (
	"context"
	"fmt"
	"io"
	"log"
	"log/slog"
	"testing"

	"github.com/Black-And-White-Club/anleague/integration_tests/containers"
	"github.com/Black-And-White-Club/anleague/internal/db/bundb"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/uptrace/bun"
)

// TestEnvironment holds a migrated database shared by one test package.
type TestEnvironment struct {
	Ctx         context.Context
	PgContainer *postgres.PostgresContainer
	DB          *bun.DB
	Logger      *slog.Logger
}

// NewTestEnvironment starts Postgres and applies every module migration.
func NewTestEnvironment(ctx context.Context) (*TestEnvironment, error) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	pgContainer, dsn, err := containers.SetupPostgresContainer(ctx)
	if err != nil {
		return nil, err
	}

	db, err := bundb.Open(ctx, dsn)
	if err != nil {
		_ = pgContainer.Terminate(ctx)
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := bundb.MigrateAll(ctx, db, logger); err != nil {
		db.Close()
		_ = pgContainer.Terminate(ctx)
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &TestEnvironment{Ctx: ctx, PgContainer: pgContainer, DB: db, Logger: logger}, nil
}

// Reset empties the domain tables between tests.
func (env *TestEnvironment) Reset(t *testing.T) {
	t.Helper()
	if _, err := env.DB.ExecContext(env.Ctx, "TRUNCATE matches, tournaments, users, teams"); err != nil {
		t.Fatalf("failed to truncate tables: %v", err)
	}
}

// Cleanup closes the database and terminates the container.
func (env *TestEnvironment) Cleanup() {
	if env.DB != nil {
		if err := env.DB.Close(); err != nil {
			log.Printf("Error closing database: %v", err)
		}
	}
	if env.PgContainer != nil {
		if err := env.PgContainer.Terminate(context.Background()); err != nil {
			log.Printf("Error terminating postgres container: %v", err)
		}
	}
}
