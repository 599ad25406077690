package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"

	v1 "github.com/talentops/recruit-crm/gen/proto/recruit/v1"
	"github.com/talentops/recruit-crm/internal/async"
	"github.com/talentops/recruit-crm/internal/common"
	"github.com/talentops/recruit-crm/internal/dedup"
	"github.com/talentops/recruit-crm/internal/export"
	"github.com/talentops/recruit-crm/internal/fields"
	"github.com/talentops/recruit-crm/internal/importer"
	"github.com/talentops/recruit-crm/internal/merge"
	repo "github.com/talentops/recruit-crm/internal/repository"
	svc "github.com/talentops/recruit-crm/internal/server"
	"github.com/talentops/recruit-crm/internal/storage"
	"github.com/talentops/recruit-crm/internal/textextract"
)

func main() {
	_ = godotenv.Load()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbConfig := repo.Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}
	entc, pool, err := repo.Open(ctx, dbConfig, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer repo.Close(entc, pool, logger)

	if err := repo.HealthCheck(ctx, pool, 5*time.Second, logger); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}

	blobs, err := storage.NewFSStore(cfg.Storage.Root, cfg.Storage.URLSecret, logger)
	if err != nil {
		logger.Error("failed to open blob store", "root", cfg.Storage.Root, "error", err)
		os.Exit(1)
	}

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		logger.Error("failed to listen on address", "addr", cfg.Server.GRPCAddr, "error", err)
		os.Exit(1)
	}
	grpcServer := grpc.NewServer()

	pipelinesRepo := repo.NewPipelineRepository(entc, logger)
	candidatesRepo := repo.NewCandidateRepository(entc, logger)
	batchesRepo := repo.NewImportBatchRepository(entc, logger)
	tagsRepo := repo.NewTagRepository(entc, logger)
	mergesRepo := repo.NewMergeRepository(entc, true, logger)
	auditRepo := repo.NewAuditRepository(entc, logger)

	textExtractor := textextract.NewExtractor(logger)
	fieldExtractor := fields.NewHeuristicExtractor(logger)

	importSvc := importer.NewService(
		batchesRepo,
		candidatesRepo,
		pipelinesRepo,
		auditRepo,
		blobs,
		textExtractor,
		fieldExtractor,
		cfg.Import.DefaultCountry,
		logger,
	)

	var queue async.Queue
	if cfg.Import.Async {
		queue = async.NewBatchQueue(importSvc, logger,
			async.WithWorkers(cfg.Import.Workers),
			async.WithQueueSize(cfg.Import.QueueSize),
			async.WithBatchTimeout(cfg.Import.BatchTimeout),
		)
	}

	detector := dedup.NewDetector(candidatesRepo, logger)
	merger := merge.NewEngine(mergesRepo, auditRepo, logger)
	exporter := export.NewService(candidatesRepo, tagsRepo, pipelinesRepo, logger)

	v1.RegisterPipelineServiceServer(grpcServer, svc.NewPipelineService(pipelinesRepo, logger))
	v1.RegisterImportServiceServer(grpcServer, svc.NewImportService(importSvc, queue, logger))
	v1.RegisterCandidateServiceServer(grpcServer, svc.NewCandidateService(candidatesRepo, detector, merger, exporter, logger))

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)

	logger.Info("recruitd listening", "addr", cfg.Server.GRPCAddr, "async_import", cfg.Import.Async)
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			slog.Error("gRPC serve error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	if queue != nil {
		queue.Shutdown(context.Background())
	}
	grpcServer.GracefulStop()
}
