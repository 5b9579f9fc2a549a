package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/phrazzld/junction-api/internal/config"
	"github.com/phrazzld/junction-api/internal/platform/memory"
	"github.com/phrazzld/junction-api/internal/platform/postgres"
	"github.com/phrazzld/junction-api/internal/seed"
	"github.com/phrazzld/junction-api/internal/service"
	"github.com/phrazzld/junction-api/internal/store"
)

// application holds all the shared application dependencies to simplify management
// and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger

	// db is nil when the memory driver is selected.
	db     *sql.DB
	stores store.Stores

	heroService   service.HeroService
	vendorService service.VendorService
}

// newApplication creates a new application instance with all dependencies initialized.
// The store implementation is chosen by cfg.Database.Driver.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
	}

	switch cfg.Database.Driver {
	case config.DriverMemory:
		app.stores = memory.NewStores(memory.NewDB(), logger)
		logger.Info("using in-memory stores")
	case config.DriverPostgres:
		db, err := setupAppDatabase(ctx, cfg, logger)
		if err != nil {
			return nil, err
		}
		app.db = db
		app.stores = postgres.NewStores(db, logger)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Database.Driver)
	}

	var err error
	app.heroService, err = service.NewHeroService(app.stores, logger)
	if err != nil {
		app.cleanup()
		return nil, fmt.Errorf("failed to create hero service: %w", err)
	}

	app.vendorService, err = service.NewVendorService(app.stores, logger)
	if err != nil {
		app.cleanup()
		return nil, fmt.Errorf("failed to create vendor service: %w", err)
	}

	logger.Info("application initialized successfully")
	return app, nil
}

// Run starts the application server and blocks until ctx is canceled or
// the server fails.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// seed replaces all data with the demo data set. On PostgreSQL the whole
// run is one transaction, so a failure leaves the previous data in place.
func (app *application) seed(ctx context.Context, rng *rand.Rand) (seed.Summary, error) {
	if app.db == nil {
		return seed.Run(ctx, app.stores, rng, app.logger)
	}

	var sum seed.Summary
	err := store.RunInTransaction(ctx, app.db, func(ctx context.Context, tx *sql.Tx) error {
		var err error
		sum, err = seed.Run(ctx, postgres.NewStores(tx, app.logger), rng, app.logger)
		return err
	})
	if err != nil {
		return seed.Summary{}, fmt.Errorf("seed failed: %w", err)
	}
	return sum, nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("error closing database connection", slog.String("error", err.Error()))
		}
		app.db = nil
	}

	app.logger.Info("application shutdown completed")
}
