package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/talentops/recruit-crm/constants"
	"github.com/talentops/recruit-crm/internal/dedup"
	"github.com/talentops/recruit-crm/internal/export"
	"github.com/talentops/recruit-crm/internal/fields"
	"github.com/talentops/recruit-crm/internal/importer"
	"github.com/talentops/recruit-crm/internal/merge"
	repo "github.com/talentops/recruit-crm/internal/repository"
	"github.com/talentops/recruit-crm/internal/storage"
	"github.com/talentops/recruit-crm/internal/textextract"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

// cv-batch imports a directory of CV files into an embedded SQLite database,
// processes them, reports duplicates and writes an XLSX of the resulting
// candidates. End-to-end smoke runs with no Postgres required.
func main() {
	var (
		dir      = flag.String("dir", "", "directory of CV files to import (required)")
		dbPath   = flag.String("db", "file:cvbatch?mode=memory&cache=shared", "SQLite DSN")
		out      = flag.String("out", "", "output XLSX path (defaults next to --dir)")
		pipeline = flag.String("pipeline", "CV Import", "pipeline name")
		country  = flag.String("country", "BE", "default country code for phone normalization")
	)
	flag.Parse()

	if *dir == "" {
		printError("Error: --dir is required\n")
		os.Exit(1)
	}
	if *out == "" {
		*out = filepath.Join(filepath.Dir(*dir), "candidates.xlsx")
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	ctx := context.Background()

	entc, err := repo.OpenSQLite(*dbPath, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := entc.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()
	if err := entc.Schema.Create(ctx); err != nil {
		logger.Error("failed to migrate schema", "error", err)
		os.Exit(1)
	}

	blobRoot, err := os.MkdirTemp("", "cv-batch-blobs-*")
	if err != nil {
		logger.Error("failed to create blob directory", "error", err)
		os.Exit(1)
	}
	defer os.RemoveAll(blobRoot)
	blobs, err := storage.NewFSStore(blobRoot, "", logger)
	if err != nil {
		logger.Error("failed to open blob store", "error", err)
		os.Exit(1)
	}

	pipelinesRepo := repo.NewPipelineRepository(entc, logger)
	candidatesRepo := repo.NewCandidateRepository(entc, logger)
	batchesRepo := repo.NewImportBatchRepository(entc, logger)
	tagsRepo := repo.NewTagRepository(entc, logger)
	mergesRepo := repo.NewMergeRepository(entc, false, logger)
	auditRepo := repo.NewAuditRepository(entc, logger)

	p, err := pipelinesRepo.Create(ctx, *pipeline)
	if err != nil {
		logger.Error("failed to create pipeline", "error", err)
		os.Exit(1)
	}
	if _, err := pipelinesRepo.AddStage(ctx, p.ID, "Applied", 0, true); err != nil {
		logger.Error("failed to create default stage", "error", err)
		os.Exit(1)
	}

	importSvc := importer.NewService(
		batchesRepo,
		candidatesRepo,
		pipelinesRepo,
		auditRepo,
		blobs,
		textextract.NewExtractor(logger),
		fields.NewHeuristicExtractor(logger),
		*country,
		logger,
	)

	batch, err := importSvc.CreateBatch(ctx, p.ID, nil, *country)
	if err != nil {
		logger.Error("failed to create batch", "error", err)
		os.Exit(1)
	}

	files, err := collectFiles(*dir)
	if err != nil {
		logger.Error("failed to read directory", "dir", *dir, "error", err)
		os.Exit(1)
	}
	if len(files) == 0 {
		printError("Error: no importable files under %s\n", *dir)
		os.Exit(1)
	}

	accepted, rejected, err := importSvc.UploadFiles(ctx, batch.ID, files)
	if err != nil {
		logger.Error("failed to upload files", "error", err)
		os.Exit(1)
	}
	for _, r := range rejected {
		logger.Warn("file rejected", "filename", r.Filename, "reason", r.Reason)
	}
	if len(accepted) == 0 {
		printError("Error: every file was rejected\n")
		os.Exit(1)
	}

	done, err := importSvc.Process(ctx, batch.ID)
	if err != nil {
		logger.Error("batch processing failed", "error", err)
		os.Exit(1)
	}
	logger.Info("batch finished",
		"status", done.Status,
		"processed", done.ProcessedCount,
		"succeeded", done.SuccessCount,
		"failed", done.FailedCount,
	)

	detector := dedup.NewDetector(candidatesRepo, logger)
	report, err := detector.FindDuplicates(ctx, &p.ID)
	if err != nil {
		logger.Error("duplicate scan failed", "error", err)
		os.Exit(1)
	}
	for _, g := range report.Groups {
		logger.Info("duplicate group", "type", g.Type, "value", g.Value, "members", len(g.Candidates))
	}

	// Merge each duplicate group into its oldest member.
	merger := merge.NewEngine(mergesRepo, auditRepo, logger)
	for _, g := range report.Groups {
		target := g.Candidates[0]
		var sources []uuid.UUID
		for _, c := range g.Candidates[1:] {
			sources = append(sources, c.ID)
		}
		if _, err := merger.Merge(ctx, target.ID, sources, nil); err != nil {
			logger.Error("merge failed", "target_id", target.ID, "error", err)
			continue
		}
		history, err := mergesRepo.History(ctx, target.ID)
		if err != nil {
			logger.Error("failed to load merge history", "target_id", target.ID, "error", err)
			continue
		}
		for _, rec := range history {
			logger.Info("merged", "target_id", rec.TargetID, "source_id", rec.SourceID, "at", rec.CreatedAt)
		}
	}

	exporter := export.NewService(candidatesRepo, tagsRepo, pipelinesRepo, logger)
	data, err := exporter.ExportCandidatesXLSX(ctx, &p.ID)
	if err != nil {
		logger.Error("export failed", "error", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*out, data, 0o644); err != nil {
		logger.Error("failed to write workbook", "path", *out, "error", err)
		os.Exit(1)
	}
	logger.Info("workbook written", "path", *out)
}

// collectFiles reads importable files (by extension) directly under dir.
func collectFiles(dir string) ([]importer.UploadFile, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var files []importer.UploadFile
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		mime := constants.MIMEByExtension(filepath.Ext(e.Name()))
		if mime == "" {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, e.Name()))
		if err != nil {
			return nil, err
		}
		files = append(files, importer.UploadFile{
			Filename:    e.Name(),
			ContentType: mime,
			Data:        data,
		})
	}
	return files, nil
}
