package main

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"

	"clip-market/internal/adapter/postgres"
	"clip-market/internal/config"
	"clip-market/internal/core/port"
	"clip-market/internal/db"
)

// env carries what the commands need from the outside world.
type env struct {
	loadConfig func() (config.Config, error)
	// openRepo connects to the ledger store; the returned func releases it.
	openRepo func(ctx context.Context, cfg config.Config) (port.LedgerRepository, func(), error)
	migrate  func(addr string) error
	rollback func(addr string) error
}

func defaultEnv() env {
	return env{
		loadConfig: config.Load,
		openRepo: func(ctx context.Context, cfg config.Config) (port.LedgerRepository, func(), error) {
			pool, err := db.NewPostgresPool(ctx, cfg.Psql)
			if err != nil {
				return nil, nil, err
			}
			return postgres.NewLedgerRepository(pool), pool.Close, nil
		},
		migrate:  db.Migrate,
		rollback: db.MigrateDown,
	}
}

func newRootCmd(e env) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "clipctl",
		Short: "Operate the clip-market payout ledger",
		Long: `clipctl manages the clip-market database.

Configuration is read from the same environment variables as the
service (PSQL_ADDRESS, LOG_LEVEL, ...).`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(
		newMigrateCmd(e),
		newSeedCmd(e),
		newUserCmd(e),
	)
	return rootCmd
}

func cmdLogger(cmd *cobra.Command, cfg config.Config) *slog.Logger {
	return cfg.Log.NewLogger(cmd.ErrOrStderr())
}
