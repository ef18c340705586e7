package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/phrazzld/thunderdome-fixtures/internal/ciutil"
	"github.com/phrazzld/thunderdome-fixtures/internal/config"
	"github.com/phrazzld/thunderdome-fixtures/internal/platform/logger"
	"github.com/phrazzld/thunderdome-fixtures/internal/platform/postgres"
	"github.com/phrazzld/thunderdome-fixtures/internal/redact"
	"github.com/spf13/cobra"
)

// rootOptions holds the persistent flags shared by every subcommand.
type rootOptions struct {
	configFile  string
	envFile     string
	databaseURL string
	logLevel    string
}

// app holds the resources a subcommand runs with.
type app struct {
	cfg *config.Config
	log *slog.Logger
	db  *sql.DB
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "fixture",
		Short:         "Seed and remove end-to-end test users",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.configFile, "config", "", "config file (yaml, toml or json)")
	flags.StringVar(&opts.envFile, "env-file", "", "dotenv file to load (default .env when present)")
	flags.StringVar(&opts.databaseURL, "database-url", "", "database connection string")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn or error")

	cmd.AddCommand(
		newSeedCmd(opts),
		newTeardownCmd(opts),
		newResetCmd(opts),
		newMigrateCmd(opts),
	)

	return cmd
}

// runWithApp loads configuration, sets up logging and a database connection,
// runs fn, and releases the connection afterwards.
func runWithApp(ctx context.Context, opts *rootOptions, fn func(ctx context.Context, a *app) error) error {
	cfg, err := config.Load(config.LoadOptions{
		ConfigFile: opts.configFile,
		EnvFile:    opts.envFile,
		Overrides: map[string]any{
			"database.url": opts.databaseURL,
			"log.level":    opts.logLevel,
		},
	})
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	log, err := logger.Setup(logger.LoggerConfig{Level: cfg.Log.Level, Format: cfg.Log.Format})
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}
	ctx = logger.WithLogger(ctx, log)

	log.Debug("configuration loaded",
		slog.String("database_url", ciutil.MaskSensitiveValue(cfg.Database.URL)),
		slog.String("log_level", cfg.Log.Level))

	pool, err := postgres.OpenPool(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	db := postgres.OpenDB(pool)
	defer func() {
		if err := db.Close(); err != nil {
			log.Warn("failed to close database handle", slog.String("error", redact.Error(err)))
		}
	}()

	return fn(ctx, &app{cfg: cfg, log: log, db: db})
}
