package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"vgsales/backend/internal/config"
	"vgsales/backend/internal/logging"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "vgsales",
	Short: "Read-only analytics API over the video game sales catalogue",
	Long: `vgsales serves filtered, joined and aggregated views of the video game
sales dataset as JSON records, HTML tables and PNG charts.

Every question can be answered by the relational store or by an in-memory
snapshot of its eight tables, loaded once at startup.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return err
		}
		logging.Init(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve(cmd.Context())
	},
}

// @title           Video Game Sales API
// @version         1.0
// @description     Read-only analytics over the video game sales catalogue.
// @host            localhost:8080
// @BasePath        /
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rootCmd.AddCommand(serveCmd, exportCmd)
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		logging.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}
