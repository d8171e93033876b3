package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/invoicing_app/internal/core/domain"
	portsrepo "github.com/SscSPs/invoicing_app/internal/core/ports/repositories"
	"github.com/SscSPs/invoicing_app/internal/core/services"
	"github.com/spf13/cobra"
)

func usersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "Manage user accounts",
	}
	cmd.AddCommand(usersPromoteCmd())
	return cmd
}

func usersPromoteCmd() *cobra.Command {
	var email, role string

	cmd := &cobra.Command{
		Use:   "promote",
		Short: "Set the role of a user",
		Example: `  invoicectl users promote --email ana@example.hr
  invoicectl users promote --email ana@example.hr --role USER`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			target := domain.UserRole(strings.ToUpper(role))
			return withRepositories(ctx, func(repos portsrepo.RepositoryProvider) error {
				if err := services.NewUserService(repos.UserRepo).PromoteUser(ctx, email, target); err != nil {
					return fmt.Errorf("promote %s: %w", email, err)
				}
				slog.Info("User role updated", slog.String("email", email), slog.String("role", string(target)))
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "email of the user")
	cmd.Flags().StringVar(&role, "role", string(domain.RoleAdmin), "role to assign (USER or ADMIN)")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}
