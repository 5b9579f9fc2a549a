package main

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"os/signal"
	"syscall"
	"time"

	"github.com/phrazzld/junction-api/internal/config"
	"github.com/phrazzld/junction-api/internal/platform/logger"
	"github.com/phrazzld/junction-api/internal/platform/postgres"
	"github.com/spf13/cobra"
)

// rootOptions holds the flags shared by every subcommand.
type rootOptions struct {
	configFile string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "junction-api",
		Short: "Heroes and vendors REST API",
		Long: `junction-api serves two many-to-many models over HTTP: heroes and powers
joined by hero powers, and vendors and sweets joined by vendor sweets.

Without a subcommand the HTTP server is started.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), opts)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.configFile, "config", "", "path to a config file (default ./config.yaml)")

	cmd.AddCommand(
		newServeCmd(opts),
		newMigrateCmd(opts),
		newSeedCmd(opts),
	)
	return cmd
}

func newServeCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), opts)
		},
	}
}

func newMigrateCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the database schema",
		Long: `Apply or roll back the embedded schema migrations.

Subcommands:
  up      - Apply pending migrations
  down    - Roll back the most recent migration
  status  - Show migration status
  reset   - Roll back all migrations`,
	}

	for _, sub := range []struct {
		command string
		short   string
	}{
		{postgres.MigrateUp, "Apply pending migrations"},
		{postgres.MigrateDown, "Roll back the most recent migration"},
		{postgres.MigrateStatus, "Show migration status"},
		{postgres.MigrateReset, "Roll back all migrations"},
	} {
		command := sub.command
		cmd.AddCommand(&cobra.Command{
			Use:   command,
			Short: sub.short,
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return runMigrate(cmd.Context(), opts, command)
			},
		})
	}
	return cmd
}

func newSeedCmd(opts *rootOptions) *cobra.Command {
	var randomSeed int64

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Replace all data with the demo data set",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if randomSeed == 0 {
				randomSeed = time.Now().UnixNano()
			}
			return runSeed(cmd.Context(), opts, rand.New(rand.NewSource(randomSeed)))
		},
	}
	cmd.Flags().Int64Var(&randomSeed, "random-seed", 0, "seed for hero power and price choices (default: time based)")
	return cmd
}

// loadAppConfig loads configuration and sets up the process logger.
func loadAppConfig(opts *rootOptions) (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load(opts.configFile)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	l, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	l.Info("configuration loaded",
		slog.Int("port", cfg.Server.Port),
		slog.String("log_level", cfg.Server.LogLevel),
		slog.String("database_driver", cfg.Database.Driver))
	return cfg, l, nil
}

func runServe(ctx context.Context, opts *rootOptions) error {
	cfg, l, err := loadAppConfig(opts)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(contextOrBackground(ctx), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app, err := newApplication(ctx, cfg, l)
	if err != nil {
		return err
	}
	defer app.cleanup()

	return app.Run(ctx)
}

func runSeed(ctx context.Context, opts *rootOptions, rng *rand.Rand) error {
	cfg, l, err := loadAppConfig(opts)
	if err != nil {
		return err
	}

	ctx = contextOrBackground(ctx)
	app, err := newApplication(ctx, cfg, l)
	if err != nil {
		return err
	}
	defer app.cleanup()

	if cfg.Database.Driver == config.DriverMemory {
		l.Warn("seeding the memory driver; the data is discarded when the command exits")
	}
	_, err = app.seed(ctx, rng)
	return err
}

func contextOrBackground(ctx context.Context) context.Context {
	if ctx == nil {
		return context.Background()
	}
	return ctx
}
