package main

import (
	"github.com/spf13/cobra"

	"vgsales/backend/internal/database"
	"vgsales/backend/internal/logging"
	"vgsales/backend/internal/snapshot"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Copy every table from the store to DATA_DIR/<table>.csv and exit",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := database.Connect(cfg)
		if err != nil {
			return err
		}
		defer func() {
			if sqlDB, err := db.DB(); err == nil {
				_ = sqlDB.Close()
			}
		}()

		snap, err := snapshot.Load(cmd.Context(), db, cfg.DataDir)
		logging.Info().Str("dir", cfg.DataDir).Interface("rows", snap.Rows()).Msg("snapshot exported")
		return err
	},
}
