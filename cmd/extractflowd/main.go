package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	extractflowpb "github.com/tobi-adeyemi/extractflow/gen/proto/extractflow/v1"
	"github.com/tobi-adeyemi/extractflow/internal/blobstore"
	"github.com/tobi-adeyemi/extractflow/internal/cleanup"
	"github.com/tobi-adeyemi/extractflow/internal/common"
	"github.com/tobi-adeyemi/extractflow/internal/extraction"
	"github.com/tobi-adeyemi/extractflow/internal/jobs"
	"github.com/tobi-adeyemi/extractflow/internal/ledger"
	"github.com/tobi-adeyemi/extractflow/internal/postprocess"
	"github.com/tobi-adeyemi/extractflow/internal/repository"
	"github.com/tobi-adeyemi/extractflow/internal/server"
	"github.com/tobi-adeyemi/extractflow/internal/sessions"
	"github.com/tobi-adeyemi/extractflow/internal/worker"
)

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
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, logger)
	if err != nil {
		logger.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer repository.Close(entc, pool, logger)

	if err := repository.HealthCheck(ctx, pool, cfg.Database.DialTimeout, logger); err != nil {
		logger.Error("database health check failed", "error", err)
		os.Exit(1)
	}

	blobs, err := openBlobStore(ctx, cfg.Blob)
	if err != nil {
		logger.Error("blob store init failed", "backend", cfg.Blob.Backend, "error", err)
		os.Exit(1)
	}
	keys := blobstore.Keys{Environment: cfg.Blob.Environment}

	userRepo := repository.NewUserRepository(entc, logger)
	sessionRepo := repository.NewSessionRepository(entc, logger)
	jobRepo := repository.NewJobRepository(entc, logger)
	ledgerRepo := repository.NewLedgerRepository(entc, logger)
	cleanupRepo := repository.NewCleanupLogRepository(entc, logger)

	ledgerSvc := ledger.NewService(ledgerRepo, logger)
	extractor := extraction.NewHTTPClient(cfg.Extraction.BaseURL, cfg.Extraction.APIKey, cfg.Extraction.Timeout)
	tracker := jobs.NewTracker(jobRepo, extractor, blobs, ledgerSvc, jobs.TrackerConfig{
		ModelID:     cfg.Extraction.ModelID,
		PollCeiling: cfg.Worker.PollCeiling,
	}, logger)
	bundler := postprocess.NewService(blobs, keys, logger)
	manager := sessions.NewService(sessionRepo, jobRepo, ledgerSvc, blobs, keys, bundler, cfg.Worker.SessionTTL, logger)
	engine := cleanup.NewEngine(sessionRepo, jobRepo, cleanupRepo, blobs, logger)

	poller := worker.NewPoller(jobRepo, sessionRepo, tracker, manager, cfg.Worker.PollInterval, cfg.Worker.PollBatchSize, logger)
	sweeper := worker.NewSweeper(engine, cfg.Worker.SweepInterval, logger)
	go poller.Run(ctx)
	go sweeper.Run(ctx)

	grpcServer := grpc.NewServer(grpc.ChainUnaryInterceptor(
		server.RequestLogInterceptor(logger),
		server.AdminAuthInterceptor(cfg.Server.AdminToken),
	))
	hs := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, hs)
	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	extractflowpb.RegisterSessionServiceServer(grpcServer, server.NewSessionService(manager, logger))
	extractflowpb.RegisterLedgerServiceServer(grpcServer, server.NewLedgerService(ledgerSvc, logger))
	extractflowpb.RegisterAdminServiceServer(grpcServer, server.NewAdminService(userRepo, manager, ledgerSvc, engine, logger))

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		logger.Error("listen failed", "addr", cfg.Server.GRPCAddr, "error", err)
		os.Exit(1)
	}
	logger.Info("gRPC serving", "addr", cfg.Server.GRPCAddr)

	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			logger.Error("grpc serve failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")
	grpcServer.GracefulStop()
	logger.Info("stopped")
}

func openBlobStore(ctx context.Context, cfg common.BlobConfig) (blobstore.Store, error) {
	if cfg.Backend == "gcs" {
		return blobstore.NewGCSStore(ctx, cfg.Bucket)
	}
	return blobstore.NewFSStore(cfg.BaseDir), nil
}
