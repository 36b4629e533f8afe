package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	_ "vgsales/backend/docs" // registers the swagger spec

	"vgsales/backend/internal/config"
	"vgsales/backend/internal/database"
	"vgsales/backend/internal/handler"
	"vgsales/backend/internal/logging"
	"vgsales/backend/internal/query/memory"
	"vgsales/backend/internal/query/relational"
	"vgsales/backend/internal/snapshot"
)

const shutdownTimeout = 15 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Load the snapshot and serve the HTTP API (default)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve(cmd.Context())
	},
}

// loadSnapshot builds the snapshot from the configured source. An
// incomplete snapshot is fatal unless partial snapshots are allowed.
func loadSnapshot(ctx context.Context, cfg *config.Config, db *gorm.DB) (*snapshot.Snapshot, error) {
	var (
		snap *snapshot.Snapshot
		err  error
	)
	switch cfg.SnapshotSource {
	case config.SourceCSV:
		snap, err = snapshot.ReadDir(cfg.DataDir)
	default:
		snap, err = snapshot.Load(ctx, db, cfg.DataDir)
	}
	if err != nil {
		if !cfg.SnapshotAllowPartial {
			return nil, err
		}
		logging.Warn().Err(err).Strs("missing", snap.Missing()).Msg("serving with a partial snapshot")
	}
	return snap, nil
}

func serve(ctx context.Context) error {
	gin.SetMode(cfg.GinMode)

	db, err := database.Connect(cfg)
	if err != nil {
		return err
	}

	snap, err := loadSnapshot(ctx, cfg, db)
	if err != nil {
		return err
	}

	h := handler.New(relational.New(db), memory.New(snap), snap, handler.Options{
		Timeout:  cfg.QueryTimeout,
		MaxLimit: cfg.MaxLimit,
	})
	router := h.Router()
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logging.Info().Str("addr", cfg.HTTPAddr).Str("snapshot_source", cfg.SnapshotSource).
			Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logging.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	return nil
}
