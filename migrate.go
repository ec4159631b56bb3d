package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/akinalp/directory/database"
	"github.com/akinalp/directory/pkg/logger"
)

func newMigrateCmd(configFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations and exit",
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, root, err := setup(*configFile)
			if err != nil {
				return err
			}

			db, err := database.New(cfg.Database.Path, database.Migrations(), logger.Component(root, "database"))
			if err != nil {
				return fmt.Errorf("failed to migrate database: %w", err)
			}
			defer db.Close()

			log := logger.Component(root, "main")
			log.Info().Str("path", cfg.Database.Path).Msg("database is up to date")
			return nil
		},
	}
}
