package main

import (
	"errors"

	"petcare_backend/internal/config"
	"petcare_backend/pkg/utils"

	"github.com/spf13/cobra"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply the database schema (embedded, or DB_SCHEMA_PATH when set)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			utils.InitLogger(cfg.Log.Level, cfg.Log.Pretty)

			if cfg.Store != config.StorePostgres {
				return errors.New("migrate requires STORE=postgres")
			}
			db, err := openAndMigrate(cmd.Context(), cfg.Database)
			if err != nil {
				return err
			}
			return db.Close()
		},
	}
}
