package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/noah-isme/studytime-api/internal/dto"
	"github.com/noah-isme/studytime-api/internal/models"
	"github.com/noah-isme/studytime-api/pkg/export"
	appErrors "github.com/noah-isme/studytime-api/pkg/errors"
	"github.com/noah-isme/studytime-api/pkg/jobs"
)

// Export formats.
const (
	FormatPDF = "pdf"
	FormatCSV = "csv"
)

// Async export job states.
const (
	ExportJobPending = "pending"
	ExportJobDone    = "done"
	ExportJobFailed  = "failed"
)

type fileStorage interface {
	Save(filename string, data []byte) (string, error)
	Open(filename string) (io.ReadCloser, error)
	CleanupOlderThan(ttl time.Duration) ([]string, error)
}

type csvRenderer interface {
	Render(schedule export.Schedule) ([]byte, error)
}

type pdfRenderer interface {
	Render(schedule export.Schedule) ([]byte, error)
}

type savedEventLister interface {
	List(ctx context.Context) ([]models.ScheduledEvent, error)
}

// ExportConfig tunes export behaviour.
type ExportConfig struct {
	ResultTTL time.Duration
	Workers   int
}

// exportJob is the queue payload for one async render.
type exportJob struct {
	ID       string
	Format   string
	Schedule export.Schedule
}

// ExportService renders schedules to PDF or CSV, synchronously or through a
// background queue for large documents.
type ExportService struct {
	events    savedEventLister
	storage   fileStorage
	csv       csvRenderer
	pdf       pdfRenderer
	queue     *jobs.Queue
	validator *validator.Validate
	logger    *zap.Logger
	cfg       ExportConfig

	mu     sync.RWMutex
	states map[string]dto.ExportJobResponse
}

// NewExportService constructs an ExportService. Call Start before enqueueing
// async exports.
func NewExportService(events savedEventLister, storage fileStorage, cfg ExportConfig,
	v *validator.Validate, logger *zap.Logger) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if v == nil {
		v = validator.New()
	}
	if cfg.ResultTTL <= 0 {
		cfg.ResultTTL = 24 * time.Hour
	}
	if cfg.Workers <= 0 {
		cfg.Workers = 2
	}
	s := &ExportService{
		events:    events,
		storage:   storage,
		csv:       export.NewCSVExporter(),
		pdf:       export.NewPDFExporter(),
		validator: v,
		logger:    logger,
		cfg:       cfg,
		states:    make(map[string]dto.ExportJobResponse),
	}
	s.queue = jobs.NewQueue("exports", s.handleJob, jobs.QueueConfig{
		Workers: cfg.Workers,
		Logger:  logger,
	})
	return s
}

// Start launches the background workers.
func (s *ExportService) Start(ctx context.Context) {
	s.queue.Start(ctx)
}

// Stop drains the background workers.
func (s *ExportService) Stop() {
	s.queue.Stop()
}

// Render produces document bytes synchronously.
func (s *ExportService) Render(ctx context.Context, format string, req dto.ExportScheduleRequest) ([]byte, string, error) {
	schedule, err := s.buildSchedule(ctx, req)
	if err != nil {
		return nil, "", err
	}
	data, err := s.render(format, schedule)
	if err != nil {
		return nil, "", err
	}
	filename := fmt.Sprintf("schedule_%s.%s", time.Now().UTC().Format("20060102_150405"), format)
	return data, filename, nil
}

// Enqueue schedules an async render and returns a pollable job ID.
func (s *ExportService) Enqueue(ctx context.Context, format string, req dto.ExportScheduleRequest) (*dto.ExportJobResponse, error) {
	if format != FormatPDF && format != FormatCSV {
		return nil, appErrors.Clone(appErrors.ErrValidation, "unsupported export format")
	}
	schedule, err := s.buildSchedule(ctx, req)
	if err != nil {
		return nil, err
	}
	id := uuid.NewString()
	state := dto.ExportJobResponse{JobID: id, Status: ExportJobPending}
	s.setState(state)

	err = s.queue.Enqueue(jobs.Job{
		ID:      id,
		Type:    format,
		Payload: exportJob{ID: id, Format: format, Schedule: schedule},
	})
	if err != nil {
		s.setState(dto.ExportJobResponse{JobID: id, Status: ExportJobFailed, Error: "queue unavailable"})
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to enqueue export")
	}
	return &state, nil
}

// JobStatus reports the state of one async export.
func (s *ExportService) JobStatus(id string) (*dto.ExportJobResponse, error) {
	s.mu.RLock()
	state, ok := s.states[id]
	s.mu.RUnlock()
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "export job not found")
	}
	return &state, nil
}

// File opens a rendered export for download. Names are restricted to the
// schedule_<timestamp>.<format> shape the renderer produces.
func (s *ExportService) File(filename string) (io.ReadCloser, error) {
	if filename == "" || strings.ContainsAny(filename, `/\`) || strings.Contains(filename, "..") {
		return nil, appErrors.Clone(appErrors.ErrValidation, "invalid export filename")
	}
	reader, err := s.storage.Open(filename)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "export file not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to open export file")
	}
	return reader, nil
}

// Cleanup removes rendered files older than the result TTL.
func (s *ExportService) Cleanup() {
	deleted, err := s.storage.CleanupOlderThan(s.cfg.ResultTTL)
	if err != nil {
		s.logger.Warn("export cleanup failed", zap.Error(err))
		return
	}
	if len(deleted) > 0 {
		s.logger.Info("export files cleaned up", zap.Int("count", len(deleted)))
	}
}

func (s *ExportService) handleJob(ctx context.Context, job jobs.Job) error {
	payload, ok := job.Payload.(exportJob)
	if !ok {
		s.logger.Error("unexpected export payload", zap.String("job_id", job.ID))
		return nil
	}
	data, err := s.render(payload.Format, payload.Schedule)
	if err != nil {
		s.setState(dto.ExportJobResponse{JobID: payload.ID, Status: ExportJobFailed, Error: err.Error()})
		return err
	}
	filename := fmt.Sprintf("schedule_%s.%s", payload.ID, payload.Format)
	if _, err := s.storage.Save(filename, data); err != nil {
		s.setState(dto.ExportJobResponse{JobID: payload.ID, Status: ExportJobFailed, Error: err.Error()})
		return err
	}
	s.setState(dto.ExportJobResponse{JobID: payload.ID, Status: ExportJobDone, Filename: filename})
	s.logger.Info("export rendered", zap.String("job_id", payload.ID), zap.String("file", filename))
	return nil
}

func (s *ExportService) render(format string, schedule export.Schedule) ([]byte, error) {
	var (
		data []byte
		err  error
	)
	switch format {
	case FormatPDF:
		data, err = s.pdf.Render(schedule)
	case FormatCSV:
		data, err = s.csv.Render(schedule)
	default:
		return nil, appErrors.Clone(appErrors.ErrValidation, "unsupported export format")
	}
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render export")
	}
	return data, nil
}

// buildSchedule uses the request events when present, otherwise the saved
// schedule.
func (s *ExportService) buildSchedule(ctx context.Context, req dto.ExportScheduleRequest) (export.Schedule, error) {
	schedule := export.Schedule{Title: req.Title}
	if len(req.Events) > 0 {
		if err := s.validator.Struct(req); err != nil {
			return schedule, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid export payload")
		}
		for _, ev := range req.Events {
			schedule.Events = append(schedule.Events, export.Event{
				Title:    ev.Title,
				Day:      dayNameFromDate(ev.Date),
				Date:     ev.Date,
				Start:    ev.Start,
				End:      ev.End,
				Duration: ev.Duration,
				Status:   ev.Status,
			})
		}
		return schedule, nil
	}

	saved, err := s.events.List(ctx)
	if err != nil {
		return schedule, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load saved schedule")
	}
	if len(saved) == 0 {
		return schedule, appErrors.Clone(appErrors.ErrPreconditionFailed, "no saved schedule to export")
	}
	for _, ev := range saved {
		schedule.Events = append(schedule.Events, export.Event{
			Title:    ev.Title,
			Day:      dayNameFromDate(ev.Date),
			Date:     ev.Date,
			Start:    ev.Start,
			End:      ev.End,
			Duration: ev.Duration,
			Status:   ev.Status,
		})
	}
	return schedule, nil
}

func (s *ExportService) setState(state dto.ExportJobResponse) {
	s.mu.Lock()
	s.states[state.JobID] = state
	s.mu.Unlock()
}

// dayNameFromDate derives the weekday from a MM/DD/YYYY date string.
func dayNameFromDate(date string) string {
	t, err := time.Parse("01/02/2006", date)
	if err != nil {
		return ""
	}
	return t.Weekday().String()
}
