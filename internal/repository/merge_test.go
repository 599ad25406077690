package repository

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talentops/recruit-crm/constants"
	"github.com/talentops/recruit-crm/gen/ent"
	entcandtag "github.com/talentops/recruit-crm/gen/ent/candidatetag"
	entmergelog "github.com/talentops/recruit-crm/gen/ent/mergelog"
	entnote "github.com/talentops/recruit-crm/gen/ent/note"
	entstagehistory "github.com/talentops/recruit-crm/gen/ent/stagehistory"
	"github.com/talentops/recruit-crm/internal/common"
	"github.com/talentops/recruit-crm/internal/entity"
)

type mergeFixture struct {
	entc       *ent.Client
	merges     MergeRepository
	candidates CandidateRepository
	tags       TagRepository
	pipelineID uuid.UUID
	stageID    uuid.UUID
}

func newMergeFixture(t *testing.T) *mergeFixture {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	// one shared in-memory database per test
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.New())
	entc, err := OpenSQLite(dsn, logger)
	require.NoError(t, err)
	t.Cleanup(func() { _ = entc.Close() })

	ctx := context.Background()
	require.NoError(t, entc.Schema.Create(ctx))

	pipelines := NewPipelineRepository(entc, logger)
	p, err := pipelines.Create(ctx, "Import")
	require.NoError(t, err)
	stage, err := pipelines.AddStage(ctx, p.ID, "Applied", 0, true)
	require.NoError(t, err)

	return &mergeFixture{
		entc:       entc,
		merges:     NewMergeRepository(entc, false, logger),
		candidates: NewCandidateRepository(entc, logger),
		tags:       NewTagRepository(entc, logger),
		pipelineID: p.ID,
		stageID:    stage.ID,
	}
}

func (f *mergeFixture) newCandidate(t *testing.T, name string, email, phone *string) *entity.Candidate {
	t.Helper()
	c, err := f.candidates.CreateFromImport(context.Background(), CreateCandidateRequest{
		PipelineID: f.pipelineID,
		StageID:    f.stageID,
		FullName:   name,
		Email:      email,
		Phone:      phone,
		Source:     constants.SourceImport,
	})
	require.NoError(t, err)
	return c
}

func (f *mergeFixture) attachTag(t *testing.T, candidateID uuid.UUID, name string) {
	t.Helper()
	tagID, err := f.tags.EnsureTag(context.Background(), name)
	require.NoError(t, err)
	require.NoError(t, f.tags.Attach(context.Background(), candidateID, tagID))
}

func strp(s string) *string { return &s }

func TestMergeMovesRelatedRowsAndTombstonesSource(t *testing.T) {
	f := newMergeFixture(t)
	ctx := context.Background()

	target := f.newCandidate(t, "Ann Lee", strp("ann.lee@corp.io"), nil)
	source := f.newCandidate(t, "Ann Lee", strp("ann.lee@corp.io"), strp("+32470123456"))

	_, err := f.candidates.AddNote(ctx, target.ID, "screened by phone", nil)
	require.NoError(t, err)
	_, err = f.candidates.AddNote(ctx, source.ID, "duplicate upload", nil)
	require.NoError(t, err)
	_, err = f.candidates.AddNote(ctx, source.ID, "second cv version", nil)
	require.NoError(t, err)

	f.attachTag(t, target.ID, "golang")
	f.attachTag(t, source.ID, "golang") // shared: must not duplicate
	f.attachTag(t, source.ID, "remote")

	merged, err := f.merges.Merge(ctx, MergeRequest{TargetID: target.ID, SourceIDs: []uuid.UUID{source.ID}})
	require.NoError(t, err)

	notes, err := f.entc.Note.Query().
		Where(entnote.CandidateID(target.ID)).
		All(ctx)
	require.NoError(t, err)
	assert.Len(t, notes, 3, "target keeps its note and gains both source notes")

	tagLinks, err := f.entc.CandidateTag.Query().
		Where(entcandtag.CandidateID(target.ID)).
		All(ctx)
	require.NoError(t, err)
	assert.Len(t, tagLinks, 2, "shared tag must not produce a duplicate join row")
	names, err := f.tags.TagNames(ctx, target.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"golang", "remote"}, names)

	history, err := f.entc.StageHistory.Query().
		Where(entstagehistory.CandidateID(target.ID)).
		All(ctx)
	require.NoError(t, err)
	assert.Len(t, history, 2, "source placement history moves to the target")

	require.NotNil(t, merged.Phone)
	assert.Equal(t, "+32470123456", *merged.Phone, "empty target phone backfilled from source")

	gone, err := f.entc.Candidate.Get(ctx, source.ID)
	require.NoError(t, err)
	require.NotNil(t, gone.MergedIntoID)
	assert.Equal(t, target.ID, *gone.MergedIntoID)

	logs, err := f.merges.History(ctx, target.ID)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, source.ID, logs[0].SourceID)

	active, err := f.candidates.ListActive(ctx, &f.pipelineID)
	require.NoError(t, err)
	require.Len(t, active, 1, "tombstone excluded from active listings")
	assert.Equal(t, target.ID, active[0].ID)
}

func TestMergeNeverOverwritesPopulatedTargetFields(t *testing.T) {
	f := newMergeFixture(t)
	ctx := context.Background()

	target := f.newCandidate(t, "Bob Ray", strp("bob.ray@corp.io"), strp("+32470111111"))
	source := f.newCandidate(t, "Bob Ray", strp("b.ray@other.io"), strp("+32470222222"))

	merged, err := f.merges.Merge(ctx, MergeRequest{TargetID: target.ID, SourceIDs: []uuid.UUID{source.ID}})
	require.NoError(t, err)

	require.NotNil(t, merged.Email)
	assert.Equal(t, "bob.ray@corp.io", *merged.Email)
	require.NotNil(t, merged.Phone)
	assert.Equal(t, "+32470111111", *merged.Phone)
}

func TestMergeRejectsChains(t *testing.T) {
	f := newMergeFixture(t)
	ctx := context.Background()

	target := f.newCandidate(t, "Ann Lee", nil, nil)
	source := f.newCandidate(t, "Ann Lee", nil, nil)
	other := f.newCandidate(t, "Ann Lee", nil, nil)

	_, err := f.merges.Merge(ctx, MergeRequest{TargetID: target.ID, SourceIDs: []uuid.UUID{source.ID}})
	require.NoError(t, err)

	// tombstone as source again
	_, err = f.merges.Merge(ctx, MergeRequest{TargetID: other.ID, SourceIDs: []uuid.UUID{source.ID}})
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrConflict)

	// tombstone as target
	_, err = f.merges.Merge(ctx, MergeRequest{TargetID: source.ID, SourceIDs: []uuid.UUID{other.ID}})
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrConflict)

	row, err := f.entc.Candidate.Get(ctx, other.ID)
	require.NoError(t, err)
	assert.Nil(t, row.MergedIntoID, "failed merges leave the other candidate untouched")
}

func TestMergeFailureLeavesNoSideEffects(t *testing.T) {
	f := newMergeFixture(t)
	ctx := context.Background()

	target := f.newCandidate(t, "Ann Lee", nil, nil)
	good := f.newCandidate(t, "Ann Lee", nil, strp("+32470123456"))
	tombstoned := f.newCandidate(t, "Ann Lee", nil, nil)
	sink := f.newCandidate(t, "Ann Lee", nil, nil)

	_, err := f.candidates.AddNote(ctx, good.ID, "keep me", nil)
	require.NoError(t, err)
	_, err = f.merges.Merge(ctx, MergeRequest{TargetID: sink.ID, SourceIDs: []uuid.UUID{tombstoned.ID}})
	require.NoError(t, err)

	// one bad source poisons the whole request
	_, err = f.merges.Merge(ctx, MergeRequest{TargetID: target.ID, SourceIDs: []uuid.UUID{good.ID, tombstoned.ID}})
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrConflict)

	row, err := f.entc.Candidate.Get(ctx, good.ID)
	require.NoError(t, err)
	assert.Nil(t, row.MergedIntoID)

	notes, err := f.entc.Note.Query().Where(entnote.CandidateID(good.ID)).Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, notes, "note stays on the good source")

	tgt, err := f.entc.Candidate.Get(ctx, target.ID)
	require.NoError(t, err)
	assert.Nil(t, tgt.Phone, "no backfill from the rolled-back transaction")

	count, err := f.entc.MergeLog.Query().Where(entmergelog.TargetID(target.ID)).Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestMergeRejectsDeletedAndCrossPipelineCandidates(t *testing.T) {
	f := newMergeFixture(t)
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	target := f.newCandidate(t, "Ann Lee", nil, nil)

	deleted := f.newCandidate(t, "Ann Lee", nil, nil)
	_, err := f.entc.Candidate.UpdateOneID(deleted.ID).SetDeletedAt(time.Now()).Save(ctx)
	require.NoError(t, err)

	_, err = f.merges.Merge(ctx, MergeRequest{TargetID: target.ID, SourceIDs: []uuid.UUID{deleted.ID}})
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrConflict)

	pipelines := NewPipelineRepository(f.entc, logger)
	otherPipeline, err := pipelines.Create(ctx, "Other")
	require.NoError(t, err)
	otherStage, err := pipelines.AddStage(ctx, otherPipeline.ID, "Applied", 0, true)
	require.NoError(t, err)
	foreign, err := f.candidates.CreateFromImport(ctx, CreateCandidateRequest{
		PipelineID: otherPipeline.ID,
		StageID:    otherStage.ID,
		FullName:   "Ann Lee",
		Source:     constants.SourceImport,
	})
	require.NoError(t, err)

	_, err = f.merges.Merge(ctx, MergeRequest{TargetID: target.ID, SourceIDs: []uuid.UUID{foreign.ID}})
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrValidation)

	_, err = f.merges.Merge(ctx, MergeRequest{TargetID: target.ID, SourceIDs: []uuid.UUID{uuid.New()}})
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestMergeRecordsMergedBy(t *testing.T) {
	f := newMergeFixture(t)
	ctx := context.Background()

	target := f.newCandidate(t, "Ann Lee", nil, nil)
	source := f.newCandidate(t, "Ann Lee", nil, nil)
	actor := uuid.New()

	_, err := f.merges.Merge(ctx, MergeRequest{
		TargetID:  target.ID,
		SourceIDs: []uuid.UUID{source.ID},
		MergedBy:  &actor,
	})
	require.NoError(t, err)

	logs, err := f.merges.History(ctx, target.ID)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	require.NotNil(t, logs[0].MergedBy)
	assert.Equal(t, actor, *logs[0].MergedBy)
}
