package utils

import (
	"time"

	v1 "github.com/talentops/recruit-crm/gen/proto/recruit/v1"
	"github.com/talentops/recruit-crm/internal/entity"
)

// Converters from entities to wire messages. Optional scalars become empty
// strings on the wire, timestamps are RFC3339.

func PipelineToProto(p *entity.Pipeline) *v1.Pipeline {
	if p == nil {
		return nil
	}
	return &v1.Pipeline{
		Id:        p.ID.String(),
		Name:      p.Name,
		CreatedAt: p.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func StageToProto(s *entity.Stage) *v1.Stage {
	if s == nil {
		return nil
	}
	return &v1.Stage{
		Id:         s.ID.String(),
		PipelineId: s.PipelineID.String(),
		Name:       s.Name,
		OrderIndex: int32(s.OrderIndex),
		IsDefault:  s.IsDefault,
	}
}

func CandidateToProto(c *entity.Candidate) *v1.Candidate {
	if c == nil {
		return nil
	}
	out := &v1.Candidate{
		Id:                c.ID.String(),
		PipelineId:        c.PipelineID.String(),
		StageId:           c.StageID.String(),
		FullName:          c.FullName,
		Source:            c.Source,
		ParsingConfidence: int32(c.ParsingConfidence),
		CreatedAt:         c.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:         c.UpdatedAt.UTC().Format(time.RFC3339),
	}
	if c.Email != nil {
		out.Email = *c.Email
	}
	if c.Phone != nil {
		out.Phone = *c.Phone
	}
	if c.MergedIntoID != nil {
		out.MergedIntoId = c.MergedIntoID.String()
	}
	return out
}

func BatchToProto(b *entity.ImportBatch) *v1.ImportBatch {
	if b == nil {
		return nil
	}
	out := &v1.ImportBatch{
		Id:                 b.ID.String(),
		PipelineId:         b.PipelineID.String(),
		Status:             b.Status,
		TotalFiles:         int32(b.TotalFiles),
		ProcessedCount:     int32(b.ProcessedCount),
		SuccessCount:       int32(b.SuccessCount),
		FailedCount:        int32(b.FailedCount),
		DefaultCountryCode: b.DefaultCountryCode,
		CreatedAt:          b.CreatedAt.UTC().Format(time.RFC3339),
	}
	if b.CompletedAt != nil {
		out.CompletedAt = b.CompletedAt.UTC().Format(time.RFC3339)
	}
	return out
}

func ItemToProto(i *entity.ImportItem) *v1.ImportItem {
	if i == nil {
		return nil
	}
	out := &v1.ImportItem{
		Id:          i.ID.String(),
		BatchId:     i.BatchID.String(),
		Filename:    i.Filename,
		ContentType: i.ContentType,
		FileSize:    int32(i.FileSize),
		Status:      i.Status,
	}
	if i.CandidateID != nil {
		out.CandidateId = i.CandidateID.String()
	}
	if i.ErrorMessage != nil {
		out.ErrorMessage = *i.ErrorMessage
	}
	if i.ProcessedAt != nil {
		out.ProcessedAt = i.ProcessedAt.UTC().Format(time.RFC3339)
	}
	return out
}
