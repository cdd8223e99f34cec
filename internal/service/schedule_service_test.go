package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/noah-isme/studytime-api/internal/dto"
	"github.com/noah-isme/studytime-api/internal/models"
	"github.com/noah-isme/studytime-api/internal/scheduler"
	appErrors "github.com/noah-isme/studytime-api/pkg/errors"
)

type courseListStub struct{ items []models.Course }

func (s *courseListStub) List(ctx context.Context) ([]models.Course, error) { return s.items, nil }

type taskListStub struct {
	items []models.Task
	err   error
}

func (s *taskListStub) List(ctx context.Context, filter models.TaskFilter) ([]models.Task, error) {
	return s.items, s.err
}

type breakListStub struct{ items []models.Break }

func (s *breakListStub) List(ctx context.Context) ([]models.Break, error) { return s.items, nil }

type jobListStub struct{ items []models.Job }

func (s *jobListStub) List(ctx context.Context) ([]models.Job, error) { return s.items, nil }

type commuteListStub struct{ items []models.Commute }

func (s *commuteListStub) List(ctx context.Context) ([]models.Commute, error) { return s.items, nil }

type prefReadStub struct{ stored *models.Preferences }

func (s *prefReadStub) GetByUser(ctx context.Context, userID string) (*models.Preferences, error) {
	if s.stored == nil {
		return nil, sql.ErrNoRows
	}
	cp := *s.stored
	return &cp, nil
}

type eventStoreStub struct {
	replaced []models.ScheduledEvent
	listed   []models.ScheduledEvent
	status   map[string]string
	missing  bool
}

func (s *eventStoreStub) ReplaceAll(ctx context.Context, events []models.ScheduledEvent) error {
	s.replaced = events
	return nil
}

func (s *eventStoreStub) List(ctx context.Context) ([]models.ScheduledEvent, error) {
	return s.listed, nil
}

func (s *eventStoreStub) SetStatus(ctx context.Context, id, status string, at time.Time) error {
	if s.missing {
		return sql.ErrNoRows
	}
	if s.status == nil {
		s.status = map[string]string{}
	}
	s.status[id] = status
	return nil
}

func (s *eventStoreStub) DeleteAll(ctx context.Context) error {
	s.listed = nil
	return nil
}

type memoryCacheRepo struct {
	data map[string][]byte
}

func (m *memoryCacheRepo) Get(ctx context.Context, key string, dest interface{}) error {
	raw, ok := m.data[key]
	if !ok {
		return appErrors.ErrCacheMiss
	}
	return json.Unmarshal(raw, dest)
}

func (m *memoryCacheRepo) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	if m.data == nil {
		m.data = map[string][]byte{}
	}
	m.data[key] = raw
	return nil
}

func (m *memoryCacheRepo) DeleteByPattern(ctx context.Context, pattern string) error {
	m.data = map[string][]byte{}
	return nil
}

func newTestScheduleService(tasks *taskListStub, events *eventStoreStub, cacheRepo *memoryCacheRepo) *ScheduleService {
	var cache *CacheService
	if cacheRepo != nil {
		cache = NewCacheService(cacheRepo, nil, time.Minute, zap.NewNop(), true)
	}
	return NewScheduleService(ScheduleServiceParams{
		Engine:      scheduler.NewEngine(zap.NewNop()),
		Courses:     &courseListStub{},
		Tasks:       tasks,
		Breaks:      &breakListStub{},
		Jobs:        &jobListStub{},
		Commutes:    &commuteListStub{},
		Preferences: &prefReadStub{},
		Events:      events,
		Cache:       cache,
		Logger:      zap.NewNop(),
	})
}

func TestScheduleServiceGenerate(t *testing.T) {
	svc := newTestScheduleService(&taskListStub{}, &eventStoreStub{}, nil)

	result, err := svc.Generate(context.Background(), dto.GenerateScheduleRequest{
		Tasks: []dto.TaskInput{
			{Name: "Read chapter 4", Duration: 40, Due: "2030-06-14T17:00:00", Difficulty: "Easy"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Summary.TotalTasks)
	assert.NotEmpty(t, result.Events)
}

func TestScheduleServiceGenerateReportsShortfall(t *testing.T) {
	svc := newTestScheduleService(&taskListStub{}, &eventStoreStub{}, nil)

	result, err := svc.Generate(context.Background(), dto.GenerateScheduleRequest{
		Tasks: []dto.TaskInput{
			{Name: "Overdue essay", Duration: 120, Due: "2020-01-01T00:00:00", Difficulty: "Medium"},
		},
	})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, 1, result.Summary.Incomplete)
	assert.Equal(t, 120, missingMinutes(*result))
}

func TestScheduleServiceGenerateRejectsEmptyTasks(t *testing.T) {
	svc := newTestScheduleService(&taskListStub{}, &eventStoreStub{}, nil)

	_, err := svc.Generate(context.Background(), dto.GenerateScheduleRequest{})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestScheduleServiceGenerateFromStoreNoTasks(t *testing.T) {
	svc := newTestScheduleService(&taskListStub{}, &eventStoreStub{}, nil)

	_, err := svc.GenerateFromStore(context.Background(), "default")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrPreconditionFailed.Code, appErrors.FromError(err).Code)
}

func TestScheduleServiceGenerateFromStore(t *testing.T) {
	tasks := &taskListStub{items: []models.Task{
		{ID: "t-1", Name: "Problem set", Duration: 60, Due: "2030-06-14T17:00:00", Difficulty: "Medium"},
	}}
	svc := newTestScheduleService(tasks, &eventStoreStub{}, nil)

	result, err := svc.GenerateFromStore(context.Background(), "default")
	require.NoError(t, err)
	require.NotEmpty(t, result.Events)
	assert.Equal(t, "t-1", result.Events[0].TaskID)
}

func TestScheduleServiceSaveMapsEvents(t *testing.T) {
	events := &eventStoreStub{}
	svc := newTestScheduleService(&taskListStub{}, events, nil)

	saved, err := svc.Save(context.Background(), dto.SaveScheduleRequest{
		Events: []dto.EventInput{
			{TaskID: "t-1", Title: "Essay (Session 1)", Date: "03/10/2025", Start: "10:00", End: "11:00", Duration: 60},
		},
	})
	require.NoError(t, err)
	require.Len(t, events.replaced, 1)
	assert.Equal(t, models.EventStatusScheduled, saved[0].Status)
	assert.Equal(t, "t-1", saved[0].TaskID.String)
	assert.True(t, saved[0].TaskID.Valid)
}

func TestScheduleServiceListSavedUsesCache(t *testing.T) {
	events := &eventStoreStub{listed: []models.ScheduledEvent{
		{ID: "ev-1", Title: "Essay", Date: "03/10/2025", Start: "10:00", End: "11:00"},
	}}
	cacheRepo := &memoryCacheRepo{}
	svc := newTestScheduleService(&taskListStub{}, events, cacheRepo)

	first, hit, err := svc.ListSaved(context.Background())
	require.NoError(t, err)
	assert.False(t, hit)
	require.Len(t, first, 1)

	events.listed = nil
	second, hit, err := svc.ListSaved(context.Background())
	require.NoError(t, err)
	assert.True(t, hit)
	require.Len(t, second, 1)
	assert.Equal(t, "ev-1", second[0].ID)
}

func TestScheduleServiceSetEventStatus(t *testing.T) {
	events := &eventStoreStub{}
	svc := newTestScheduleService(&taskListStub{}, events, nil)

	require.NoError(t, svc.SetEventStatus(context.Background(), "ev-1", models.EventStatusCompleted))
	assert.Equal(t, models.EventStatusCompleted, events.status["ev-1"])

	err := svc.SetEventStatus(context.Background(), "ev-1", "bogus")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)

	events.missing = true
	err = svc.SetEventStatus(context.Background(), "ghost", models.EventStatusCancelled)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}
