package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/phrazzld/thunderdome-fixtures/internal/domain"
	"github.com/phrazzld/thunderdome-fixtures/internal/fixture"
	"github.com/phrazzld/thunderdome-fixtures/internal/platform/postgres"
	"github.com/spf13/cobra"
)

func registeredUser(a *app) *fixture.Fixture {
	return fixture.NewRegisteredUser(postgres.NewPostgresUserStore(a.db))
}

func writeSeeded(w io.Writer, seeded *domain.SeededUser) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(seeded); err != nil {
		return fmt.Errorf("failed to write seeded user: %w", err)
	}
	return nil
}

func newSeedCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Insert the registered test user and print it as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runWithApp(cmd.Context(), opts, func(ctx context.Context, a *app) error {
				seeded, err := registeredUser(a).Seed(ctx)
				if err != nil {
					return err
				}
				return writeSeeded(cmd.OutOrStdout(), seeded)
			})
		},
	}
}

func newTeardownCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "teardown",
		Short: "Remove the registered test user if it exists",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runWithApp(cmd.Context(), opts, func(ctx context.Context, a *app) error {
				if err := registeredUser(a).TeardownTx(ctx, a.db); err != nil {
					return err
				}
				_, err := fmt.Fprintln(cmd.OutOrStdout(), "{}")
				return err
			})
		},
	}
}

func newResetCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Remove any leftover registered test user and seed a fresh one",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runWithApp(cmd.Context(), opts, func(ctx context.Context, a *app) error {
				seeded, err := registeredUser(a).ResetTx(ctx, a.db)
				if err != nil {
					return err
				}
				return writeSeeded(cmd.OutOrStdout(), seeded)
			})
		},
	}
}

func newMigrateCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:       "migrate [up|down]",
		Short:     "Apply or roll back the users schema on a scratch database",
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"up", "down"},
		RunE: func(cmd *cobra.Command, args []string) error {
			direction := "up"
			if len(args) == 1 {
				direction = args[0]
			}

			return runWithApp(cmd.Context(), opts, func(ctx context.Context, a *app) error {
				// one connection holds the migration lock while goose uses another
				if a.cfg.Database.MaxConns < 2 {
					return fmt.Errorf("migrate needs database.max_conns >= 2, got %d", a.cfg.Database.MaxConns)
				}

				var err error
				if direction == "down" {
					err = postgres.MigrateDown(ctx, a.db)
				} else {
					err = postgres.Migrate(ctx, a.db)
				}
				if err != nil {
					return err
				}

				version, err := postgres.SchemaVersion(ctx, a.db)
				if err != nil {
					return err
				}
				_, err = fmt.Fprintf(cmd.OutOrStdout(), "schema version %d\n", version)
				return err
			})
		},
	}
}
