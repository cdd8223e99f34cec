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
	appErrors "github.com/noah-isme/studytime-api/pkg/errors"
)

type taskRepository interface {
	Create(ctx context.Context, task *models.Task) error
	GetByID(ctx context.Context, id string) (*models.Task, error)
	List(ctx context.Context, filter models.TaskFilter) ([]models.Task, error)
	Update(ctx context.Context, task *models.Task) error
	Delete(ctx context.Context, id string) error
}

// TaskService manages assignments and exams.
type TaskService struct {
	repo      taskRepository
	cache     *CacheService
	validator *validator.Validate
	logger    *zap.Logger
}

// NewTaskService constructs a TaskService.
func NewTaskService(repo taskRepository, cache *CacheService, v *validator.Validate, logger *zap.Logger) *TaskService {
	if v == nil {
		v = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TaskService{repo: repo, cache: cache, validator: v, logger: logger}
}

// Create validates and stores a new task.
func (s *TaskService) Create(ctx context.Context, req dto.CreateTaskRequest) (*models.Task, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid task payload")
	}
	difficulty := req.Difficulty
	if difficulty == "" {
		difficulty = models.DifficultyMedium
	}
	task := &models.Task{
		Name:       req.Name,
		Duration:   req.Duration,
		Due:        req.Due,
		Difficulty: difficulty,
		IsExam:     req.IsExam,
		Color:      req.Color,
	}
	if req.CourseID != "" {
		task.CourseID = sql.NullString{String: req.CourseID, Valid: true}
	}
	if req.Notes != "" {
		task.Notes = sql.NullString{String: req.Notes, Valid: true}
	}
	if err := s.repo.Create(ctx, task); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create task")
	}
	_ = s.cache.Invalidate(ctx, savedScheduleCachePattern)
	s.logger.Info("task created", zap.String("id", task.ID), zap.String("name", task.Name))
	return task, nil
}

// Get returns one task.
func (s *TaskService) Get(ctx context.Context, id string) (*models.Task, error) {
	task, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "task not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load task")
	}
	return task, nil
}

// List returns tasks matching the query.
func (s *TaskService) List(ctx context.Context, query dto.TaskQuery) ([]models.Task, error) {
	tasks, err := s.repo.List(ctx, models.TaskFilter{Completed: query.Completed})
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list tasks")
	}
	if tasks == nil {
		tasks = []models.Task{}
	}
	return tasks, nil
}

// Update applies a partial update to one task.
func (s *TaskService) Update(ctx context.Context, id string, req dto.UpdateTaskRequest) (*models.Task, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid task payload")
	}
	task, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		task.Name = *req.Name
	}
	if req.Duration != nil {
		task.Duration = *req.Duration
	}
	if req.Due != nil {
		task.Due = *req.Due
	}
	if req.Difficulty != nil {
		task.Difficulty = *req.Difficulty
	}
	if req.IsExam != nil {
		task.IsExam = *req.IsExam
	}
	if req.Notes != nil {
		task.Notes = sql.NullString{String: *req.Notes, Valid: *req.Notes != ""}
	}
	if req.Color != nil {
		task.Color = *req.Color
	}
	if req.Completed != nil {
		s.applyCompletion(task, *req.Completed)
	}
	if err := s.repo.Update(ctx, task); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update task")
	}
	_ = s.cache.Invalidate(ctx, savedScheduleCachePattern)
	return task, nil
}

// Complete marks a task as done and stamps the completion time.
func (s *TaskService) Complete(ctx context.Context, id string) (*models.Task, error) {
	task, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if task.Completed {
		return nil, appErrors.Clone(appErrors.ErrConflict, "task already completed")
	}
	s.applyCompletion(task, true)
	if err := s.repo.Update(ctx, task); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to complete task")
	}
	_ = s.cache.Invalidate(ctx, savedScheduleCachePattern)
	s.logger.Info("task completed", zap.String("id", task.ID))
	return task, nil
}

// Delete removes one task.
func (s *TaskService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "task not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete task")
	}
	_ = s.cache.Invalidate(ctx, savedScheduleCachePattern)
	return nil
}

func (s *TaskService) applyCompletion(task *models.Task, done bool) {
	task.Completed = done
	if done {
		task.CompletionDate = sql.NullTime{Time: time.Now().UTC(), Valid: true}
	} else {
		task.CompletionDate = sql.NullTime{}
	}
}
