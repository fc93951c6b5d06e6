package main

import (
	"github.com/spf13/cobra"

	"clip-market/internal/db"
)

func newSeedCmd(e env) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Insert demo users, campaigns and submissions",
		Long: `Insert demo data. Rows that already exist are left alone, so the
command can be run repeatedly.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := e.loadConfig()
			if err != nil {
				return err
			}
			repo, release, err := e.openRepo(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer release()
			return db.Seed(cmd.Context(), repo, cmdLogger(cmd, cfg))
		},
	}
}
