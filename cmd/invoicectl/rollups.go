package main

import (
	"context"
	"fmt"
	"log/slog"

	portsrepo "github.com/SscSPs/invoicing_app/internal/core/ports/repositories"
	"github.com/SscSPs/invoicing_app/internal/core/services"
	"github.com/SscSPs/invoicing_app/internal/repositories/database/pgsql"
	"github.com/SscSPs/invoicing_app/pkg/database"
	"github.com/spf13/cobra"
)

// withRepositories opens a pool for the duration of fn.
func withRepositories(ctx context.Context, fn func(repos portsrepo.RepositoryProvider) error) error {
	pool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, true)
	if err != nil {
		return err
	}
	defer database.ClosePgxPool(pool)
	return fn(pgsql.NewRepositoryProvider(pool))
}

func rollupsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rollups",
		Short: "Manage the month and year history rollups",
	}
	cmd.AddCommand(rollupsRebuildCmd())
	return cmd
}

func rollupsRebuildCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rebuild",
		Short: "Recompute both rollup tables from the invoices",
		Long: `Recompute the month and year history tables from the invoices table in
one transaction. Use it to reconcile the rollups after manual data fixes.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			return withRepositories(ctx, func(repos portsrepo.RepositoryProvider) error {
				reporting := services.NewReportingService(repos.ReportingRepo, repos.HistoryRepo)
				days, err := reporting.RebuildRollups(ctx)
				if err != nil {
					return fmt.Errorf("rebuild rollups: %w", err)
				}
				slog.Info("Rollups rebuilt", slog.Int64("day_rows", days))
				return nil
			})
		},
	}
}
