package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"clip-market/internal/core/domain"
)

func newUserCmd(e env) *cobra.Command {
	userCmd := &cobra.Command{
		Use:   "user",
		Short: "Manage ledger users",
	}

	var id, email, role string
	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Create a user with a role",
		Long: `Create a user. The printed id is what the identity provider must
send in the user header. Admins can only be provisioned this way.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			r, err := domain.ParseRole(role)
			if err != nil {
				return err
			}
			email = strings.TrimSpace(email)
			if email == "" {
				return fmt.Errorf("%w: --email is required", domain.ErrInvalidInput)
			}
			if id == "" {
				id = uuid.NewString()
			}

			cfg, err := e.loadConfig()
			if err != nil {
				return err
			}
			repo, release, err := e.openRepo(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer release()

			u := domain.User{ID: id, Email: email, Role: r, CreatedAt: time.Now().UTC()}
			if err = repo.CreateUser(cmd.Context(), u); err != nil {
				return fmt.Errorf("create user: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", u.ID, u.Email, u.Role)
			return nil
		},
	}
	createCmd.Flags().StringVar(&id, "id", "", "user id (defaults to a new UUID)")
	createCmd.Flags().StringVar(&email, "email", "", "user email")
	createCmd.Flags().StringVar(&role, "role", "", "creator, clipper or admin")
	_ = createCmd.MarkFlagRequired("email")
	_ = createCmd.MarkFlagRequired("role")

	userCmd.AddCommand(createCmd)
	return userCmd
}
