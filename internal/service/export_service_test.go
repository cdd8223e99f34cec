package service

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/noah-isme/studytime-api/internal/dto"
	"github.com/noah-isme/studytime-api/internal/models"
	appErrors "github.com/noah-isme/studytime-api/pkg/errors"
)

type savedEventsStub struct{ items []models.ScheduledEvent }

func (s *savedEventsStub) List(ctx context.Context) ([]models.ScheduledEvent, error) {
	return s.items, nil
}

type storageStub struct {
	mu    sync.Mutex
	files map[string][]byte
}

func (s *storageStub) Save(filename string, data []byte) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.files == nil {
		s.files = map[string][]byte{}
	}
	s.files[filename] = data
	return filename, nil
}

func (s *storageStub) Open(filename string) (io.ReadCloser, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.files[filename]
	if !ok {
		return nil, fmt.Errorf("open export file: %w", os.ErrNotExist)
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func (s *storageStub) CleanupOlderThan(ttl time.Duration) ([]string, error) {
	return nil, nil
}

func TestExportServiceRenderCSV(t *testing.T) {
	svc := NewExportService(&savedEventsStub{}, &storageStub{}, ExportConfig{}, nil, zap.NewNop())

	data, filename, err := svc.Render(context.Background(), FormatCSV, dto.ExportScheduleRequest{
		Events: []dto.EventInput{
			{Title: "Essay (Session 1)", Date: "03/10/2025", Start: "10:00", End: "11:00", Duration: 60, Status: "scheduled"},
		},
	})
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(filename, ".csv"))
	body := string(data)
	assert.Contains(t, body, "Date,Day,Start,End,Title,Duration,Status")
	assert.Contains(t, body, "Essay (Session 1)")
}

func TestExportServiceRenderPDFFromSaved(t *testing.T) {
	saved := &savedEventsStub{items: []models.ScheduledEvent{
		{Title: "Essay (Session 1)", Date: "03/10/2025", Start: "10:00", End: "11:00", Duration: 60, Status: "scheduled"},
	}}
	svc := NewExportService(saved, &storageStub{}, ExportConfig{}, nil, zap.NewNop())

	data, filename, err := svc.Render(context.Background(), FormatPDF, dto.ExportScheduleRequest{})
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(filename, ".pdf"))
	assert.True(t, strings.HasPrefix(string(data), "%PDF"))
}

func TestExportServiceRenderNoSavedSchedule(t *testing.T) {
	svc := NewExportService(&savedEventsStub{}, &storageStub{}, ExportConfig{}, nil, zap.NewNop())

	_, _, err := svc.Render(context.Background(), FormatPDF, dto.ExportScheduleRequest{})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrPreconditionFailed.Code, appErrors.FromError(err).Code)
}

func TestExportServiceAsyncJob(t *testing.T) {
	storage := &storageStub{}
	svc := NewExportService(&savedEventsStub{}, storage, ExportConfig{Workers: 1}, nil, zap.NewNop())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	svc.Start(ctx)
	defer svc.Stop()

	state, err := svc.Enqueue(ctx, FormatCSV, dto.ExportScheduleRequest{
		Events: []dto.EventInput{
			{Title: "Reading", Date: "03/11/2025", Start: "14:00", End: "15:00", Duration: 60},
		},
	})
	require.NoError(t, err)
	require.Equal(t, ExportJobPending, state.Status)

	require.Eventually(t, func() bool {
		status, err := svc.JobStatus(state.JobID)
		return err == nil && status.Status == ExportJobDone
	}, 2*time.Second, 10*time.Millisecond)

	status, err := svc.JobStatus(state.JobID)
	require.NoError(t, err)
	storage.mu.Lock()
	_, stored := storage.files[status.Filename]
	storage.mu.Unlock()
	assert.True(t, stored)

	file, err := svc.File(status.Filename)
	require.NoError(t, err)
	defer file.Close() //nolint:errcheck
	body, err := io.ReadAll(file)
	require.NoError(t, err)
	assert.Contains(t, string(body), "Reading")
}

func TestExportServiceFileRejectsTraversal(t *testing.T) {
	svc := NewExportService(&savedEventsStub{}, &storageStub{}, ExportConfig{}, nil, zap.NewNop())

	_, err := svc.File("../secrets.txt")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)

	_, err = svc.File("schedule_missing.csv")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}

func TestExportServiceJobStatusUnknown(t *testing.T) {
	svc := NewExportService(&savedEventsStub{}, &storageStub{}, ExportConfig{}, nil, zap.NewNop())

	_, err := svc.JobStatus("nope")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}
