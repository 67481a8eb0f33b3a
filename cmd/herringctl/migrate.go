package main

import (
	"fmt"

	"herring/internal/config"
	"herring/internal/database"

	"github.com/spf13/cobra"
)

func newMigrateCmd() *cobra.Command {
	var configFile string

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Create the database schema",
		Long: `Create any missing table using the same configuration as the API
server. Running it against an up to date database changes nothing.

Examples:
  HERRING_DATABASE_DRIVER=sqlite HERRING_DATABASE_DSN=herring.db herringctl migrate
  herringctl migrate --config config.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configFile)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			db, err := database.Open(ctx, cfg.Database.Driver, cfg.Database.DSN)
			if err != nil {
				return err
			}
			defer db.Close()

			if err := database.CreateSchema(ctx, db, cfg.Database.Driver); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "schema ready (%s)\n", cfg.Database.Driver)
			return nil
		},
	}

	cmd.Flags().StringVar(&configFile, "config", "", "config file (default: ./config.yaml if present)")

	return cmd
}
