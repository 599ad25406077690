package utils

import (
	"github.com/talentops/recruit-crm/gen/ent"
	"github.com/talentops/recruit-crm/internal/entity"
)

// Converters from generated Ent rows to transport-agnostic entities. Every
// layer above the repositories works with the entity structs only.

func ToPipeline(row *ent.Pipeline) *entity.Pipeline {
	if row == nil {
		return nil
	}
	return &entity.Pipeline{
		ID:        row.ID,
		Name:      row.Name,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}

func ToStage(row *ent.Stage) *entity.Stage {
	if row == nil {
		return nil
	}
	return &entity.Stage{
		ID:         row.ID,
		PipelineID: row.PipelineID,
		Name:       row.Name,
		OrderIndex: row.OrderIndex,
		IsDefault:  row.IsDefault,
		CreatedAt:  row.CreatedAt,
	}
}

func ToCandidate(row *ent.Candidate) *entity.Candidate {
	if row == nil {
		return nil
	}
	return &entity.Candidate{
		ID:                row.ID,
		PipelineID:        row.PipelineID,
		StageID:           row.StageID,
		FullName:          row.FullName,
		Email:             row.Email,
		Phone:             row.Phone,
		Source:            row.Source,
		ExtractedText:     row.ExtractedText,
		ParsingConfidence: row.ParsingConfidence,
		IsRejected:        row.IsRejected,
		DeletedAt:         row.DeletedAt,
		MergedIntoID:      row.MergedIntoID,
		CreatedAt:         row.CreatedAt,
		UpdatedAt:         row.UpdatedAt,
	}
}

func ToBatch(row *ent.ImportBatch) *entity.ImportBatch {
	if row == nil {
		return nil
	}
	return &entity.ImportBatch{
		ID:                 row.ID,
		PipelineID:         row.PipelineID,
		CreatedBy:          row.CreatedBy,
		Status:             row.Status,
		TotalFiles:         row.TotalFiles,
		ProcessedCount:     row.ProcessedCount,
		SuccessCount:       row.SuccessCount,
		FailedCount:        row.FailedCount,
		DefaultCountryCode: row.DefaultCountryCode,
		CreatedAt:          row.CreatedAt,
		CompletedAt:        row.CompletedAt,
	}
}

func ToItem(row *ent.ImportItem) *entity.ImportItem {
	if row == nil {
		return nil
	}
	return &entity.ImportItem{
		ID:            row.ID,
		BatchID:       row.BatchID,
		CandidateID:   row.CandidateID,
		Filename:      row.Filename,
		StorageKey:    row.StorageKey,
		ContentType:   row.ContentType,
		FileSize:      row.FileSize,
		Status:        row.Status,
		ErrorMessage:  row.ErrorMessage,
		ExtractedJSON: row.ExtractedJSON,
		ProcessedAt:   row.ProcessedAt,
		CreatedAt:     row.CreatedAt,
	}
}

func ToMergeLog(row *ent.MergeLog) *entity.MergeLog {
	if row == nil {
		return nil
	}
	return &entity.MergeLog{
		ID:        row.ID,
		TargetID:  row.TargetID,
		SourceID:  row.SourceID,
		MergedBy:  row.MergedBy,
		CreatedAt: row.CreatedAt,
	}
}
