package importer

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talentops/recruit-crm/constants"
	"github.com/talentops/recruit-crm/internal/common"
	"github.com/talentops/recruit-crm/internal/entity"
	"github.com/talentops/recruit-crm/internal/fields"
	"github.com/talentops/recruit-crm/internal/repository"
)

// In-memory fakes mirroring the repository contracts, including the
// conditional status transitions.

type fakeBatchRepo struct {
	mu      sync.Mutex
	batches map[uuid.UUID]*entity.ImportBatch
	items   map[uuid.UUID]*entity.ImportItem
	order   []uuid.UUID
}

func newFakeBatchRepo() *fakeBatchRepo {
	return &fakeBatchRepo{
		batches: map[uuid.UUID]*entity.ImportBatch{},
		items:   map[uuid.UUID]*entity.ImportItem{},
	}
}

func (f *fakeBatchRepo) Create(_ context.Context, pipelineID uuid.UUID, createdBy *uuid.UUID, country string) (*entity.ImportBatch, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	b := &entity.ImportBatch{
		ID:                 uuid.New(),
		PipelineID:         pipelineID,
		CreatedBy:          createdBy,
		Status:             string(constants.BatchStatusPending),
		DefaultCountryCode: country,
		CreatedAt:          time.Now(),
	}
	f.batches[b.ID] = b
	return copyBatch(b), nil
}

func (f *fakeBatchRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.ImportBatch, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, ok := f.batches[id]
	if !ok {
		return nil, fmt.Errorf("import batch %s: %w", id, common.ErrNotFound)
	}
	return copyBatch(b), nil
}

func (f *fakeBatchRepo) AppendItem(_ context.Context, batchID uuid.UUID, filename, storageKey, contentType string, fileSize int) (*entity.ImportItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	item := &entity.ImportItem{
		ID:          uuid.New(),
		BatchID:     batchID,
		Filename:    filename,
		StorageKey:  storageKey,
		ContentType: contentType,
		FileSize:    fileSize,
		Status:      string(constants.ItemStatusQueued),
		CreatedAt:   time.Now(),
	}
	f.items[item.ID] = item
	f.order = append(f.order, item.ID)
	f.batches[batchID].TotalFiles++
	return copyItem(item), nil
}

func (f *fakeBatchRepo) ListItems(_ context.Context, batchID uuid.UUID) ([]*entity.ImportItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.ImportItem
	for _, id := range f.order {
		if f.items[id].BatchID == batchID {
			out = append(out, copyItem(f.items[id]))
		}
	}
	return out, nil
}

func (f *fakeBatchRepo) QueuedItems(_ context.Context, batchID uuid.UUID) ([]*entity.ImportItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.ImportItem
	for _, id := range f.order {
		item := f.items[id]
		if item.BatchID == batchID && item.Status == string(constants.ItemStatusQueued) {
			out = append(out, copyItem(item))
		}
	}
	return out, nil
}

func (f *fakeBatchRepo) MarkProcessing(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, ok := f.batches[id]
	if !ok {
		return fmt.Errorf("import batch %s: %w", id, common.ErrNotFound)
	}
	if b.Status != string(constants.BatchStatusPending) {
		return fmt.Errorf("batch %s is not pending: %w", id, common.ErrConflict)
	}
	b.Status = string(constants.BatchStatusProcessing)
	return nil
}

func (f *fakeBatchRepo) MarkItemProcessing(_ context.Context, itemID uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	item := f.items[itemID]
	if item == nil || item.Status != string(constants.ItemStatusQueued) {
		return fmt.Errorf("item %s is not queued: %w", itemID, common.ErrConflict)
	}
	item.Status = string(constants.ItemStatusProcessing)
	return nil
}

func (f *fakeBatchRepo) MarkItemSucceeded(_ context.Context, itemID, candidateID uuid.UUID, extractedJSON json.RawMessage) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	item := f.items[itemID]
	now := time.Now()
	item.Status = string(constants.ItemStatusSucceeded)
	item.CandidateID = &candidateID
	item.ExtractedJSON = extractedJSON
	item.ProcessedAt = &now
	return nil
}

func (f *fakeBatchRepo) MarkItemFailed(_ context.Context, itemID uuid.UUID, message string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	item := f.items[itemID]
	now := time.Now()
	item.Status = string(constants.ItemStatusFailed)
	item.ErrorMessage = &message
	item.ProcessedAt = &now
	return nil
}

func (f *fakeBatchRepo) RecordItemResult(_ context.Context, batchID uuid.UUID, succeeded bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	b := f.batches[batchID]
	b.ProcessedCount++
	if succeeded {
		b.SuccessCount++
	} else {
		b.FailedCount++
	}
	return nil
}

func (f *fakeBatchRepo) Complete(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	b := f.batches[id]
	if b.Status != string(constants.BatchStatusProcessing) {
		return fmt.Errorf("batch %s is not processing: %w", id, common.ErrConflict)
	}
	now := time.Now()
	b.Status = string(constants.BatchStatusCompleted)
	b.CompletedAt = &now
	return nil
}

func (f *fakeBatchRepo) Fail(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	now := time.Now()
	f.batches[id].Status = string(constants.BatchStatusFailed)
	f.batches[id].CompletedAt = &now
	return nil
}

func (f *fakeBatchRepo) Delete(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, ok := f.batches[id]
	if !ok {
		return fmt.Errorf("import batch %s: %w", id, common.ErrNotFound)
	}
	if b.Status == string(constants.BatchStatusProcessing) {
		return fmt.Errorf("batch %s is processing: %w", id, common.ErrConflict)
	}
	delete(f.batches, id)
	return nil
}

func copyBatch(b *entity.ImportBatch) *entity.ImportBatch { c := *b; return &c }
func copyItem(i *entity.ImportItem) *entity.ImportItem    { c := *i; return &c }

type fakeCandidateRepo struct {
	repository.CandidateRepository
	mu      sync.Mutex
	created []*entity.Candidate
	updates int
}

func (f *fakeCandidateRepo) FindActiveByEmail(_ context.Context, pipelineID uuid.UUID, email string) (*entity.Candidate, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, c := range f.created {
		if c.PipelineID == pipelineID && c.Email != nil && strings.EqualFold(*c.Email, email) {
			cc := *c
			return &cc, nil
		}
	}
	return nil, nil
}

func (f *fakeCandidateRepo) CreateFromImport(_ context.Context, req repository.CreateCandidateRequest) (*entity.Candidate, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c := &entity.Candidate{
		ID:                uuid.New(),
		PipelineID:        req.PipelineID,
		StageID:           req.StageID,
		FullName:          req.FullName,
		Email:             req.Email,
		Phone:             req.Phone,
		Source:            req.Source,
		ExtractedText:     req.ExtractedText,
		ParsingConfidence: req.ParsingConfidence,
		CreatedAt:         time.Now(),
	}
	f.created = append(f.created, c)
	cc := *c
	return &cc, nil
}

func (f *fakeCandidateRepo) UpdateParseResult(_ context.Context, id uuid.UUID, text string, confidence int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, c := range f.created {
		if c.ID == id {
			c.ExtractedText = &text
			c.ParsingConfidence = confidence
			f.updates++
			return nil
		}
	}
	return fmt.Errorf("candidate %s: %w", id, common.ErrNotFound)
}

type fakePipelineRepo struct {
	repository.PipelineRepository
	pipelineID uuid.UUID
	stage      *entity.Stage
	stageErr   error
}

func (f *fakePipelineRepo) Exists(_ context.Context, id uuid.UUID) (bool, error) {
	return id == f.pipelineID, nil
}

func (f *fakePipelineRepo) DefaultStage(_ context.Context, _ uuid.UUID) (*entity.Stage, error) {
	if f.stageErr != nil {
		return nil, f.stageErr
	}
	return f.stage, nil
}

type fakeAudit struct {
	mu      sync.Mutex
	actions []string
}

func (f *fakeAudit) Record(_ context.Context, action string, _ *uuid.UUID, _ map[string]any) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.actions = append(f.actions, action)
}

type memBlobStore struct {
	mu    sync.Mutex
	blobs map[string][]byte
}

func newMemBlobStore() *memBlobStore { return &memBlobStore{blobs: map[string][]byte{}} }

func (m *memBlobStore) Store(_ context.Context, key string, data []byte, _ string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.blobs[key] = bytes.Clone(data)
	return nil
}

func (m *memBlobStore) Fetch(_ context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.blobs[key]
	if !ok {
		return nil, errors.New("blob not found")
	}
	return bytes.Clone(data), nil
}

func (m *memBlobStore) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.blobs, key)
	return nil
}

func (m *memBlobStore) SignedDownloadURL(key string, _ time.Duration) (string, error) {
	return "/blobs/" + key, nil
}

// stubTextExtractor fails on a marker so corrupt-file behavior is
// deterministic without real document parsing.
type stubTextExtractor struct{}

func (stubTextExtractor) Extract(data []byte, _ string) (string, error) {
	if bytes.Contains(data, []byte("CORRUPT")) {
		return "", errors.New("parse document: broken stream")
	}
	return string(data), nil
}

type fixture struct {
	svc        *Service
	batches    *fakeBatchRepo
	candidates *fakeCandidateRepo
	pipelines  *fakePipelineRepo
	audit      *fakeAudit
	blobs      *memBlobStore
	pipelineID uuid.UUID
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	pipelineID := uuid.New()
	f := &fixture{
		batches:    newFakeBatchRepo(),
		candidates: &fakeCandidateRepo{},
		pipelines: &fakePipelineRepo{
			pipelineID: pipelineID,
			stage:      &entity.Stage{ID: uuid.New(), PipelineID: pipelineID, Name: "Applied", IsDefault: true},
		},
		audit:      &fakeAudit{},
		blobs:      newMemBlobStore(),
		pipelineID: pipelineID,
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	f.svc = NewService(
		f.batches,
		f.candidates,
		f.pipelines,
		f.audit,
		f.blobs,
		stubTextExtractor{},
		fields.NewHeuristicExtractor(logger),
		"BE",
		logger,
	)
	return f
}

func txtFile(name, content string) UploadFile {
	return UploadFile{Filename: name, ContentType: constants.MIMEPlain, Data: []byte(content)}
}

func TestProcessEndToEnd(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	batch, err := f.svc.CreateBatch(ctx, f.pipelineID, nil, "")
	require.NoError(t, err)
	assert.Equal(t, string(constants.BatchStatusPending), batch.Status)
	assert.Equal(t, "BE", batch.DefaultCountryCode)

	accepted, rejected, err := f.svc.UploadFiles(ctx, batch.ID, []UploadFile{
		txtFile("john.txt", "John Smith\njohn.smith@acme.com\n+32 470 12 34 56"),
	})
	require.NoError(t, err)
	require.Len(t, accepted, 1)
	assert.Empty(t, rejected)

	done, err := f.svc.Process(ctx, batch.ID)
	require.NoError(t, err)
	assert.Equal(t, string(constants.BatchStatusCompleted), done.Status)
	assert.NotNil(t, done.CompletedAt)
	assert.Equal(t, 1, done.ProcessedCount)
	assert.Equal(t, 1, done.SuccessCount)
	assert.Equal(t, 0, done.FailedCount)

	require.Len(t, f.candidates.created, 1)
	c := f.candidates.created[0]
	assert.Equal(t, "John Smith", c.FullName)
	require.NotNil(t, c.Email)
	assert.Equal(t, "john.smith@acme.com", *c.Email)
	require.NotNil(t, c.Phone)
	assert.Equal(t, "+32470123456", *c.Phone)
	assert.Equal(t, constants.SourceImport, c.Source)
	assert.Equal(t, 100, c.ParsingConfidence)
	assert.Equal(t, f.pipelines.stage.ID, c.StageID)

	_, items, err := f.svc.GetBatch(ctx, batch.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, string(constants.ItemStatusSucceeded), items[0].Status)
	require.NotNil(t, items[0].CandidateID)
	assert.Equal(t, c.ID, *items[0].CandidateID)
	assert.NotEmpty(t, items[0].ExtractedJSON)

	assert.Contains(t, f.audit.actions, constants.AuditBatchCreated)
	assert.Contains(t, f.audit.actions, constants.AuditBatchCompleted)
}

func TestProcessOneBadFileDoesNotAbortBatch(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	batch, err := f.svc.CreateBatch(ctx, f.pipelineID, nil, "BE")
	require.NoError(t, err)
	_, _, err = f.svc.UploadFiles(ctx, batch.ID, []UploadFile{
		txtFile("one.txt", "Ann Lee\nann.lee@corp.io"),
		txtFile("two.txt", "CORRUPT"),
		txtFile("three.txt", "Bob Ray\nbob.ray@corp.io"),
	})
	require.NoError(t, err)

	done, err := f.svc.Process(ctx, batch.ID)
	require.NoError(t, err)
	assert.Equal(t, string(constants.BatchStatusCompleted), done.Status)
	assert.Equal(t, 3, done.ProcessedCount)
	assert.Equal(t, 2, done.SuccessCount)
	assert.Equal(t, 1, done.FailedCount)
	assert.Equal(t, done.ProcessedCount, done.SuccessCount+done.FailedCount)

	_, items, err := f.svc.GetBatch(ctx, batch.ID)
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, string(constants.ItemStatusSucceeded), items[0].Status)
	assert.Equal(t, string(constants.ItemStatusFailed), items[1].Status)
	require.NotNil(t, items[1].ErrorMessage)
	assert.NotEmpty(t, *items[1].ErrorMessage)
	assert.Equal(t, string(constants.ItemStatusSucceeded), items[2].Status)
}

func TestProcessEnrichesExistingCandidateByEmail(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	batch, err := f.svc.CreateBatch(ctx, f.pipelineID, nil, "BE")
	require.NoError(t, err)
	_, _, err = f.svc.UploadFiles(ctx, batch.ID, []UploadFile{
		txtFile("first.txt", "Ann Lee\nann.lee@corp.io"),
		txtFile("second.txt", "Ann Lee\nANN.LEE@corp.io\n+32 470 12 34 56"),
	})
	require.NoError(t, err)

	done, err := f.svc.Process(ctx, batch.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, done.SuccessCount)

	require.Len(t, f.candidates.created, 1, "case-insensitive email match must not create a second candidate")
	assert.Equal(t, 1, f.candidates.updates)

	_, items, err := f.svc.GetBatch(ctx, batch.ID)
	require.NoError(t, err)
	require.NotNil(t, items[1].CandidateID)
	assert.Equal(t, f.candidates.created[0].ID, *items[1].CandidateID)
}

func TestProcessRefusesDoubleProcessing(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	batch, err := f.svc.CreateBatch(ctx, f.pipelineID, nil, "BE")
	require.NoError(t, err)
	_, _, err = f.svc.UploadFiles(ctx, batch.ID, []UploadFile{txtFile("a.txt", "Ann Lee")})
	require.NoError(t, err)

	_, err = f.svc.Process(ctx, batch.ID)
	require.NoError(t, err)

	_, err = f.svc.Process(ctx, batch.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrValidation, "terminal batch has no queued items left")
}

func TestProcessFailsWithoutQueuedItems(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	batch, err := f.svc.CreateBatch(ctx, f.pipelineID, nil, "BE")
	require.NoError(t, err)

	_, err = f.svc.Process(ctx, batch.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrValidation)
}

func TestProcessStagelessPipelineFailsItemsNotBatch(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	batch, err := f.svc.CreateBatch(ctx, f.pipelineID, nil, "BE")
	require.NoError(t, err)
	_, _, err = f.svc.UploadFiles(ctx, batch.ID, []UploadFile{
		txtFile("a.txt", "Ann Lee\nann.lee@corp.io"),
		txtFile("b.txt", "Bob Ray\nbob.ray@corp.io"),
	})
	require.NoError(t, err)

	f.pipelines.stageErr = fmt.Errorf("pipeline %s has no stages: %w", f.pipelineID, common.ErrValidation)

	done, err := f.svc.Process(ctx, batch.ID)
	require.NoError(t, err)
	assert.Equal(t, string(constants.BatchStatusCompleted), done.Status)
	assert.Equal(t, 2, done.ProcessedCount)
	assert.Equal(t, 0, done.SuccessCount)
	assert.Equal(t, 2, done.FailedCount)

	_, items, err := f.svc.GetBatch(ctx, batch.ID)
	require.NoError(t, err)
	require.Len(t, items, 2)
	for _, item := range items {
		assert.Equal(t, string(constants.ItemStatusFailed), item.Status)
		require.NotNil(t, item.ErrorMessage)
		assert.Contains(t, *item.ErrorMessage, "no stages")
	}
	assert.Empty(t, f.candidates.created)
}

func TestProcessMarksBatchFailedWhenPipelineUnusable(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	batch, err := f.svc.CreateBatch(ctx, f.pipelineID, nil, "BE")
	require.NoError(t, err)
	_, _, err = f.svc.UploadFiles(ctx, batch.ID, []UploadFile{txtFile("a.txt", "Ann Lee")})
	require.NoError(t, err)

	f.pipelines.stageErr = errors.New("connection reset by peer")

	_, err = f.svc.Process(ctx, batch.ID)
	require.Error(t, err)

	got, err := f.batches.GetByID(ctx, batch.ID)
	require.NoError(t, err)
	assert.Equal(t, string(constants.BatchStatusFailed), got.Status)
}

func TestUploadFilesValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	batch, err := f.svc.CreateBatch(ctx, f.pipelineID, nil, "BE")
	require.NoError(t, err)

	big := make([]byte, constants.MaxImportFileSize+1)
	accepted, rejected, err := f.svc.UploadFiles(ctx, batch.ID, []UploadFile{
		txtFile("ok.txt", "Ann Lee"),
		{Filename: "huge.pdf", ContentType: constants.MIMEPDF, Data: big},
		{Filename: "pic.png", ContentType: "image/png", Data: []byte("x")},
		{Filename: "empty.txt", ContentType: constants.MIMEPlain},
	})
	require.NoError(t, err)
	assert.Len(t, accepted, 1)
	require.Len(t, rejected, 3)
	for _, r := range rejected {
		assert.NotEmpty(t, r.Reason)
	}
}

func TestUploadFilesRequiresPendingBatch(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	batch, err := f.svc.CreateBatch(ctx, f.pipelineID, nil, "BE")
	require.NoError(t, err)
	_, _, err = f.svc.UploadFiles(ctx, batch.ID, []UploadFile{txtFile("a.txt", "Ann Lee")})
	require.NoError(t, err)
	_, err = f.svc.Process(ctx, batch.ID)
	require.NoError(t, err)

	_, _, err = f.svc.UploadFiles(ctx, batch.ID, []UploadFile{txtFile("b.txt", "Bob Ray")})
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrConflict)
}

func TestCreateBatchUnknownPipeline(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.CreateBatch(context.Background(), uuid.New(), nil, "BE")
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestDeleteBatchRefusedWhileProcessing(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	batch, err := f.svc.CreateBatch(ctx, f.pipelineID, nil, "BE")
	require.NoError(t, err)
	require.NoError(t, f.batches.MarkProcessing(ctx, batch.ID))

	err = f.svc.DeleteBatch(ctx, batch.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrConflict)
}

func TestTruncateUTF8KeepsRuneBoundary(t *testing.T) {
	long := strings.Repeat("€", 4000) // 3 bytes per rune, 12000 bytes total
	got := truncateUTF8(long, maxStoredTextChars)
	assert.True(t, utf8.ValidString(got))
	assert.Equal(t, 9999, len(got), "cut backs up to the previous rune boundary")

	assert.Equal(t, "short", truncateUTF8("short", maxStoredTextChars))
}

func TestNameFallsBackToFilename(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	batch, err := f.svc.CreateBatch(ctx, f.pipelineID, nil, "BE")
	require.NoError(t, err)
	_, _, err = f.svc.UploadFiles(ctx, batch.ID, []UploadFile{
		txtFile("jane_doe-cv.txt", "contact: 12"),
	})
	require.NoError(t, err)

	_, err = f.svc.Process(ctx, batch.ID)
	require.NoError(t, err)

	require.Len(t, f.candidates.created, 1)
	assert.Equal(t, "jane doe cv", f.candidates.created[0].FullName)
}
