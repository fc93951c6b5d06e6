package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newMigrateCmd(e env) *cobra.Command {
	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply or roll back schema migrations",
	}

	upCmd := &cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := e.loadConfig()
			if err != nil {
				return err
			}
			if err = e.migrate(cfg.Psql.Addr.String()); err != nil {
				return fmt.Errorf("migrate up: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "migrations applied")
			return nil
		},
	}

	var confirm bool
	downCmd := &cobra.Command{
		Use:   "down",
		Short: "Drop the ledger schema",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !confirm {
				return fmt.Errorf("refusing to drop the schema without --yes")
			}
			cfg, err := e.loadConfig()
			if err != nil {
				return err
			}
			if err = e.rollback(cfg.Psql.Addr.String()); err != nil {
				return fmt.Errorf("migrate down: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "schema dropped")
			return nil
		},
	}
	downCmd.Flags().BoolVar(&confirm, "yes", false, "confirm dropping all ledger tables")

	migrateCmd.AddCommand(upCmd, downCmd)
	return migrateCmd
}
