package main

import (
	"cvhub-backend/migrations"
	"cvhub-backend/pkg/database"
	"cvhub-backend/pkg/logger"

	"github.com/spf13/cobra"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, dbPool, err := bootstrap(cmd.Context())
			if err != nil {
				return err
			}
			defer dbPool.Close()

			applied, err := database.Migrate(cmd.Context(), dbPool, migrations.FS)
			if err != nil {
				logger.Log.Error("Migration failed", "error", err)
				return err
			}
			logger.Log.Info("Migrations applied", "count", applied)
			return nil
		},
	}
}
