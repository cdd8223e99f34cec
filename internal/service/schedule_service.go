package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/studytime-api/internal/dto"
	"github.com/noah-isme/studytime-api/internal/models"
	"github.com/noah-isme/studytime-api/internal/scheduler"
	appErrors "github.com/noah-isme/studytime-api/pkg/errors"
)

const (
	savedScheduleCacheKey     = "schedule:saved"
	savedScheduleCachePattern = "schedule:*"
)

type courseReader interface {
	List(ctx context.Context) ([]models.Course, error)
}

type taskReader interface {
	List(ctx context.Context, filter models.TaskFilter) ([]models.Task, error)
}

type breakReader interface {
	List(ctx context.Context) ([]models.Break, error)
}

type jobReader interface {
	List(ctx context.Context) ([]models.Job, error)
}

type commuteReader interface {
	List(ctx context.Context) ([]models.Commute, error)
}

type preferenceReader interface {
	GetByUser(ctx context.Context, userID string) (*models.Preferences, error)
}

type eventStore interface {
	ReplaceAll(ctx context.Context, events []models.ScheduledEvent) error
	List(ctx context.Context) ([]models.ScheduledEvent, error)
	SetStatus(ctx context.Context, id, status string, at time.Time) error
	DeleteAll(ctx context.Context) error
}

// ScheduleServiceParams bundles the schedule service dependencies.
type ScheduleServiceParams struct {
	Engine      *scheduler.Engine
	Courses     courseReader
	Tasks       taskReader
	Breaks      breakReader
	Jobs        jobReader
	Commutes    commuteReader
	Preferences preferenceReader
	Events      eventStore
	Cache       *CacheService
	Metrics     *MetricsService
	Validator   *validator.Validate
	Logger      *zap.Logger
	CacheTTL    time.Duration
}

// ScheduleService runs the scheduling engine over ad-hoc payloads or stored
// calendar data and manages the persisted schedule.
type ScheduleService struct {
	engine      *scheduler.Engine
	courses     courseReader
	tasks       taskReader
	breaks      breakReader
	jobs        jobReader
	commutes    commuteReader
	preferences preferenceReader
	events      eventStore
	cache       *CacheService
	metrics     *MetricsService
	validator   *validator.Validate
	logger      *zap.Logger
	cacheTTL    time.Duration
}

// NewScheduleService constructs a ScheduleService.
func NewScheduleService(params ScheduleServiceParams) *ScheduleService {
	if params.Logger == nil {
		params.Logger = zap.NewNop()
	}
	if params.Validator == nil {
		params.Validator = validator.New()
	}
	if params.CacheTTL <= 0 {
		params.CacheTTL = 5 * time.Minute
	}
	return &ScheduleService{
		engine:      params.Engine,
		courses:     params.Courses,
		tasks:       params.Tasks,
		breaks:      params.Breaks,
		jobs:        params.Jobs,
		commutes:    params.Commutes,
		preferences: params.Preferences,
		events:      params.Events,
		cache:       params.Cache,
		metrics:     params.Metrics,
		validator:   params.Validator,
		logger:      params.Logger,
		cacheTTL:    params.CacheTTL,
	}
}

// Generate runs the engine over an ad-hoc payload without touching storage.
func (s *ScheduleService) Generate(ctx context.Context, req dto.GenerateScheduleRequest) (*scheduler.Result, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid schedule payload")
	}
	payload := req.ToEngine()
	now := scheduler.NowIn(payload.Preferences.Timezone)

	start := time.Now()
	result := s.engine.Generate(payload, now)
	s.metrics.ObserveScheduleRun(result.Summary.Scheduled+result.Summary.Exams, missingMinutes(result), false, time.Since(start))

	s.logger.Info("schedule generated",
		zap.Int("tasks", len(payload.Tasks)),
		zap.Int("events", len(result.Events)),
		zap.Int("incomplete", result.Summary.Incomplete))
	return &result, nil
}

// GenerateFromStore loads the stored calendar, pending tasks and user
// preferences, then runs the engine.
func (s *ScheduleService) GenerateFromStore(ctx context.Context, userID string) (*scheduler.Result, error) {
	pending := false
	tasks, err := s.tasks.List(ctx, models.TaskFilter{Completed: &pending})
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load tasks")
	}
	if len(tasks) == 0 {
		return nil, appErrors.Clone(appErrors.ErrPreconditionFailed, "no pending tasks to schedule")
	}
	courses, err := s.courses.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load courses")
	}
	breaks, err := s.breaks.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load breaks")
	}
	jobs, err := s.jobs.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load jobs")
	}
	commutes, err := s.commutes.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load commutes")
	}
	prefs, err := s.loadPreferences(ctx, userID)
	if err != nil {
		return nil, err
	}

	payload := storedPayload(courses, tasks, breaks, jobs, commutes, prefs)
	now := scheduler.NowIn(payload.Preferences.Timezone)

	start := time.Now()
	result := s.engine.Generate(payload, now)
	s.metrics.ObserveScheduleRun(result.Summary.Scheduled+result.Summary.Exams, missingMinutes(result), false, time.Since(start))

	s.logger.Info("schedule generated from store",
		zap.String("user", userID),
		zap.Int("tasks", len(tasks)),
		zap.Int("events", len(result.Events)))
	return &result, nil
}

// Save replaces the stored schedule with the provided events and invalidates
// cached listings.
func (s *ScheduleService) Save(ctx context.Context, req dto.SaveScheduleRequest) ([]models.ScheduledEvent, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid save payload")
	}
	events := make([]models.ScheduledEvent, 0, len(req.Events))
	for _, in := range req.Events {
		status := in.Status
		if status == "" {
			status = models.EventStatusScheduled
		}
		event := models.ScheduledEvent{
			Title:    in.Title,
			Date:     in.Date,
			Start:    in.Start,
			End:      in.End,
			Duration: in.Duration,
			Status:   status,
			Color:    in.Color,
		}
		if in.TaskID != "" {
			event.TaskID = sql.NullString{String: in.TaskID, Valid: true}
		}
		if in.Difficulty != "" {
			event.Difficulty = sql.NullString{String: in.Difficulty, Valid: true}
		}
		events = append(events, event)
	}
	if err := s.events.ReplaceAll(ctx, events); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to save schedule")
	}
	_ = s.cache.Invalidate(ctx, savedScheduleCachePattern)
	s.logger.Info("schedule saved", zap.Int("events", len(events)))
	return events, nil
}

// ListSaved returns the stored schedule, served from cache when possible.
func (s *ScheduleService) ListSaved(ctx context.Context) ([]models.ScheduledEvent, bool, error) {
	var cached []models.ScheduledEvent
	if hit, err := s.cache.Get(ctx, savedScheduleCacheKey, &cached); err == nil && hit {
		return cached, true, nil
	}
	events, err := s.events.List(ctx)
	if err != nil {
		return nil, false, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list schedule")
	}
	if events == nil {
		events = []models.ScheduledEvent{}
	}
	_ = s.cache.Set(ctx, savedScheduleCacheKey, events, s.cacheTTL)
	return events, false, nil
}

// SetEventStatus updates one saved event and invalidates cached listings.
func (s *ScheduleService) SetEventStatus(ctx context.Context, id, status string) error {
	switch status {
	case models.EventStatusScheduled, models.EventStatusCompleted, models.EventStatusCancelled:
	default:
		return appErrors.Clone(appErrors.ErrValidation, "unsupported event status")
	}
	if err := s.events.SetStatus(ctx, id, status, time.Now().UTC()); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "event not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update event")
	}
	_ = s.cache.Invalidate(ctx, savedScheduleCachePattern)
	return nil
}

// Clear deletes the stored schedule.
func (s *ScheduleService) Clear(ctx context.Context) error {
	if err := s.events.DeleteAll(ctx); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to clear schedule")
	}
	_ = s.cache.Invalidate(ctx, savedScheduleCachePattern)
	return nil
}

func (s *ScheduleService) loadPreferences(ctx context.Context, userID string) (models.Preferences, error) {
	prefs, err := s.preferences.GetByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.DefaultPreferences(userID), nil
		}
		return models.Preferences{}, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load preferences")
	}
	return *prefs, nil
}

// storedPayload maps database rows onto engine input.
func storedPayload(courses []models.Course, tasks []models.Task, breaks []models.Break,
	jobs []models.Job, commutes []models.Commute, prefs models.Preferences) scheduler.Payload {
	payload := scheduler.Payload{
		Preferences: scheduler.Preferences{
			Wake:           prefs.Wake,
			Sleep:          prefs.Sleep,
			Timezone:       prefs.Timezone,
			MaxStudyHours:  prefs.MaxStudyHours,
			SessionLength:  prefs.SessionLength,
			BreakDuration:  prefs.BreakDuration,
			BetweenClasses: prefs.BetweenClasses,
			AfterSchool:    prefs.AfterSchool,
			UrgencyMode:    prefs.UrgencyMode,
			StudyTime:      prefs.StudyTime,
			AutoSplit:      prefs.AutoSplit,
			PrioritizeHard: prefs.PrioritizeHard,
			WeekendStudy:   prefs.WeekendStudy,
			DeadlineBuffer: prefs.DeadlineBuffer,
			LunchStart:     prefs.LunchStart,
			LunchEnd:       prefs.LunchEnd,
			DinnerStart:    prefs.DinnerStart,
			DinnerEnd:      prefs.DinnerEnd,
			AutoMeals:      prefs.AutoMeals,
		},
	}
	for _, c := range courses {
		payload.Courses = append(payload.Courses, scheduler.CourseBlock{Name: c.Name, Days: c.Days, Start: c.Start, End: c.End})
	}
	for _, t := range tasks {
		payload.Tasks = append(payload.Tasks, scheduler.Task{
			ID:         t.ID,
			Name:       t.Name,
			Duration:   t.Duration,
			Due:        t.Due,
			Difficulty: scheduler.Difficulty(t.Difficulty),
			IsExam:     t.IsExam,
			Notes:      t.Notes.String,
		})
	}
	for _, b := range breaks {
		payload.Breaks = append(payload.Breaks, scheduler.BreakBlock{Name: b.Name, Day: b.Day, Start: b.Start, End: b.End})
	}
	for _, j := range jobs {
		payload.Jobs = append(payload.Jobs, scheduler.JobBlock{Name: j.Name, Days: j.Days, Start: j.Start, End: j.End})
	}
	for _, c := range commutes {
		payload.Commutes = append(payload.Commutes, scheduler.CommuteBlock{Name: c.Name, Days: c.Days, Start: c.Start, End: c.End})
	}
	return payload
}

func missingMinutes(result scheduler.Result) int {
	total := 0
	for _, ev := range result.Events {
		total += ev.Missing
	}
	return total
}
