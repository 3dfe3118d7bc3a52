// Package bundb opens the Postgres connection pool and owns the ordered set
// of module migrators.
package bundb

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	teammigrations "github.com/Black-And-White-Club/anleague/app/modules/team/infrastructure/repositories/migrations"
	tournamentmigrations "github.com/Black-And-White-Club/anleague/app/modules/tournament/infrastructure/repositories/migrations"
	usermigrations "github.com/Black-And-White-Club/anleague/app/modules/user/infrastructure/repositories/migrations"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
	"github.com/uptrace/bun/migrate"
)

// ModuleMigrator is a module's migrator. Each module records its history in
// its own table so modules can be rolled back independently.
type ModuleMigrator struct {
	Module   string
	Migrator *migrate.Migrator
}

// Open connects to dsn and verifies the connection.
func Open(ctx context.Context, dsn string) (*bun.DB, error) {
	sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(dsn)))
	if err := sqldb.PingContext(ctx); err != nil {
		sqldb.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return bun.NewDB(sqldb, pgdialect.New()), nil
}

// Migrators returns one migrator per module in dependency order.
func Migrators(db *bun.DB) []ModuleMigrator {
	return []ModuleMigrator{
		newModuleMigrator(db, "user", usermigrations.Migrations),
		newModuleMigrator(db, "team", teammigrations.Migrations),
		newModuleMigrator(db, "tournament", tournamentmigrations.Migrations),
	}
}

func newModuleMigrator(db *bun.DB, module string, migrations *migrate.Migrations) ModuleMigrator {
	return ModuleMigrator{
		Module: module,
		Migrator: migrate.NewMigrator(db, migrations,
			migrate.WithTableName(module+"_migrations"),
			migrate.WithLocksTableName(module+"_migration_locks"),
		),
	}
}

// MigrateAll creates the migration tables when needed and applies every
// pending migration.
func MigrateAll(ctx context.Context, db *bun.DB, logger *slog.Logger) error {
	for _, m := range Migrators(db) {
		if err := m.Migrator.Init(ctx); err != nil {
			return fmt.Errorf("init %s migrations: %w", m.Module, err)
		}
		if err := m.Migrator.Lock(ctx); err != nil {
			return fmt.Errorf("lock %s migrations: %w", m.Module, err)
		}
		group, err := m.Migrator.Migrate(ctx)
		unlockErr := m.Migrator.Unlock(ctx)
		if err != nil {
			return fmt.Errorf("migrate %s: %w", m.Module, err)
		}
		if unlockErr != nil {
			return fmt.Errorf("unlock %s migrations: %w", m.Module, unlockErr)
		}
		if group.IsZero() {
			logger.InfoContext(ctx, "No new migrations", "module", m.Module)
			continue
		}
		logger.InfoContext(ctx, "Migrated", "module", m.Module, "group", group.String())
	}
	return nil
}
