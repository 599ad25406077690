package export

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/talentops/recruit-crm/internal/repository"
)

// Service produces XLSX bytes for candidate exports.
type Service struct {
	candidates repository.CandidateRepository
	tags       repository.TagRepository
	pipelines  repository.PipelineRepository
	logger     *slog.Logger
}

func NewService(
	candidates repository.CandidateRepository,
	tags repository.TagRepository,
	pipelines repository.PipelineRepository,
	logger *slog.Logger,
) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{candidates: candidates, tags: tags, pipelines: pipelines, logger: logger}
}

// ExportCandidatesXLSX returns an XLSX workbook of active candidates, one
// row per candidate, oldest first. pipelineID nil exports all pipelines.
func (s *Service) ExportCandidatesXLSX(ctx context.Context, pipelineID *uuid.UUID) ([]byte, error) {
	start := time.Now()

	candidates, err := s.candidates.ListActive(ctx, pipelineID)
	if err != nil {
		return nil, fmt.Errorf("query candidates: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Candidates"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Full Name",
		"Email",
		"Phone",
		"Stage",
		"Source",
		"Parsing Confidence",
		"Tags",
		"Created",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	stageNames := map[uuid.UUID]string{}
	loadedPipelines := map[uuid.UUID]bool{}

	row := 2
	for _, c := range candidates {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		if !loadedPipelines[c.PipelineID] {
			loadedPipelines[c.PipelineID] = true
			stages, err := s.pipelines.StagesOrdered(ctx, c.PipelineID)
			if err != nil {
				s.logger.Warn("failed to load stages for export", "pipeline_id", c.PipelineID, "error", err)
			}
			for _, st := range stages {
				stageNames[st.ID] = st.Name
			}
		}

		write(1, c.FullName)
		if c.Email != nil {
			write(2, *c.Email)
		}
		if c.Phone != nil {
			write(3, *c.Phone)
		}
		write(4, stageNames[c.StageID])
		write(5, c.Source)
		write(6, c.ParsingConfidence)

		names, err := s.tags.TagNames(ctx, c.ID)
		if err != nil {
			s.logger.Warn("failed to load tags for export", "candidate_id", c.ID, "error", err)
		} else if len(names) > 0 {
			write(7, strings.Join(names, ", "))
		}
		write(8, c.CreatedAt.Format("2006-01-02"))
		row++
	}

	// default sheet created by excelize
	if idx, _ := f.GetSheetIndex("Sheet1"); idx != -1 && sheet != "Sheet1" {
		_ = f.DeleteSheet("Sheet1")
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	s.logger.Info("candidates exported",
		"rows", len(candidates),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}
