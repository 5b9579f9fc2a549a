package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/phrazzld/junction-api/internal/config"
	"github.com/phrazzld/junction-api/internal/platform/postgres"
)

// runMigrate executes one goose command against the configured database.
// Every run is tagged with its own ID so its log lines can be grouped.
func runMigrate(ctx context.Context, opts *rootOptions, command string) error {
	cfg, l, err := loadAppConfig(opts)
	if err != nil {
		return err
	}
	if cfg.Database.Driver != config.DriverPostgres {
		return fmt.Errorf("migrate requires the %s driver, got %q", config.DriverPostgres, cfg.Database.Driver)
	}

	ctx = contextOrBackground(ctx)
	db, err := setupAppDatabase(ctx, cfg, l)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			l.Error("failed to close database connection", slog.String("error", err.Error()))
		}
	}()

	log := l.With(slog.String("migration_run_id", uuid.NewString()), slog.String("command", command))
	log.Info("running migrations")
	if err := postgres.Migrate(ctx, db, command, log); err != nil {
		return err
	}
	log.Info("migrations finished")
	return nil
}
