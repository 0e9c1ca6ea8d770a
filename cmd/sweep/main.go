package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/tobi-adeyemi/extractflow/constants"
	"github.com/tobi-adeyemi/extractflow/internal/blobstore"
	"github.com/tobi-adeyemi/extractflow/internal/cleanup"
	"github.com/tobi-adeyemi/extractflow/internal/common"
	"github.com/tobi-adeyemi/extractflow/internal/repository"
)

// One-shot expiration sweep, for cron jobs and manual runs.
func main() {
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entc, pool, err := repository.Open(ctx, repository.Config{
		DSN:             cfg.Database.DSN,
		MaxConns:        cfg.Database.MaxConns,
		MinConns:        cfg.Database.MinConns,
		MaxConnLifetime: cfg.Database.MaxConnLifetime,
		MaxConnIdleTime: cfg.Database.MaxConnIdleTime,
		DialTimeout:     cfg.Database.DialTimeout,
	}, logger)
	if err != nil {
		logger.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer repository.Close(entc, pool, logger)

	var blobs blobstore.Store
	if cfg.Blob.Backend == "gcs" {
		blobs, err = blobstore.NewGCSStore(ctx, cfg.Blob.Bucket)
		if err != nil {
			logger.Error("blob store init failed", "error", err)
			os.Exit(1)
		}
	} else {
		blobs = blobstore.NewFSStore(cfg.Blob.BaseDir)
	}

	engine := cleanup.NewEngine(
		repository.NewSessionRepository(entc, logger),
		repository.NewJobRepository(entc, logger),
		repository.NewCleanupLogRepository(entc, logger),
		blobs,
		logger,
	)

	run, err := engine.Sweep(ctx)
	if err != nil {
		logger.Error("sweep failed", "error", err)
		os.Exit(1)
	}
	logger.Info("sweep complete",
		"sessions_expired", run.SessionsExpired,
		"jobs_expired", run.JobsExpired,
		"blobs_deleted", run.BlobsDeleted,
		"errors", run.ErrorCount,
		"status", run.Status,
	)
	if run.Status == constants.CleanupStatusFailed {
		os.Exit(1)
	}
}
