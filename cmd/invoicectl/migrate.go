package main

import (
	"log/slog"

	"github.com/SscSPs/invoicing_app/pkg/database"
	"github.com/spf13/cobra"
)

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply the embedded database migrations",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			applied, err := database.RunMigrations(cfg.DatabaseURL)
			if err != nil {
				return err
			}
			if applied {
				slog.Info("Database migrations applied successfully.")
			} else {
				slog.Info("No new migrations to apply.")
			}
			return nil
		},
	}
}
