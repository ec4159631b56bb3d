package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/akinalp/directory/database"
	"github.com/akinalp/directory/fixtures"
	"github.com/akinalp/directory/pkg/logger"
)

func newSeedCmd(configFile *string) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load a YAML fixtures file into the database",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, root, err := setup(*configFile)
			if err != nil {
				return err
			}

			f, err := fixtures.Load(file)
			if err != nil {
				return err
			}

			db, err := database.New(cfg.Database.Path, database.Migrations(), logger.Component(root, "database"))
			if err != nil {
				return fmt.Errorf("failed to initialize database: %w", err)
			}
			defer db.Close()

			_, err = fixtures.Apply(cmd.Context(), db.Conn, f, logger.Component(root, "fixtures"))
			return err
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "fixtures YAML file")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}
