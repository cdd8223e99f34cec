package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/studytime-api/internal/dto"
	"github.com/noah-isme/studytime-api/internal/models"
	appErrors "github.com/noah-isme/studytime-api/pkg/errors"
)

type courseRepository interface {
	Create(ctx context.Context, course *models.Course) error
	GetByID(ctx context.Context, id string) (*models.Course, error)
	List(ctx context.Context) ([]models.Course, error)
	Update(ctx context.Context, course *models.Course) error
	Delete(ctx context.Context, id string) error
}

type jobRepository interface {
	Create(ctx context.Context, job *models.Job) error
	List(ctx context.Context) ([]models.Job, error)
	Update(ctx context.Context, job *models.Job) error
	Delete(ctx context.Context, id string) error
}

type commuteRepository interface {
	Create(ctx context.Context, commute *models.Commute) error
	List(ctx context.Context) ([]models.Commute, error)
	Update(ctx context.Context, commute *models.Commute) error
	Delete(ctx context.Context, id string) error
}

type breakRepository interface {
	Create(ctx context.Context, blk *models.Break) error
	List(ctx context.Context) ([]models.Break, error)
	Update(ctx context.Context, blk *models.Break) error
	Delete(ctx context.Context, id string) error
}

// CalendarService manages the fixed weekly commitments the scheduler works
// around: courses, jobs, commutes and breaks.
type CalendarService struct {
	courses   courseRepository
	jobs      jobRepository
	commutes  commuteRepository
	breaks    breakRepository
	cache     *CacheService
	validator *validator.Validate
	logger    *zap.Logger
}

// NewCalendarService constructs a CalendarService.
func NewCalendarService(courses courseRepository, jobs jobRepository, commutes commuteRepository,
	breaks breakRepository, cache *CacheService, v *validator.Validate, logger *zap.Logger) *CalendarService {
	if v == nil {
		v = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CalendarService{courses: courses, jobs: jobs, commutes: commutes, breaks: breaks,
		cache: cache, validator: v, logger: logger}
}

// CreateCourse validates and stores a new course.
func (s *CalendarService) CreateCourse(ctx context.Context, req dto.CreateCourseRequest) (*models.Course, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid course payload")
	}
	course := &models.Course{
		Name:  req.Name,
		Days:  models.StringList(req.Days),
		Start: req.Start,
		End:   req.End,
		Color: req.Color,
	}
	if err := s.courses.Create(ctx, course); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create course")
	}
	s.invalidateSchedule(ctx)
	return course, nil
}

// ListCourses returns all stored courses.
func (s *CalendarService) ListCourses(ctx context.Context) ([]models.Course, error) {
	courses, err := s.courses.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list courses")
	}
	if courses == nil {
		courses = []models.Course{}
	}
	return courses, nil
}

// UpdateCourse applies a partial update to one course.
func (s *CalendarService) UpdateCourse(ctx context.Context, id string, req dto.UpdateCourseRequest) (*models.Course, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid course payload")
	}
	course, err := s.courses.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "course not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load course")
	}
	if req.Name != nil {
		course.Name = *req.Name
	}
	if req.Days != nil {
		course.Days = models.StringList(req.Days)
	}
	if req.Start != nil {
		course.Start = *req.Start
	}
	if req.End != nil {
		course.End = *req.End
	}
	if req.Color != nil {
		course.Color = *req.Color
	}
	if err := s.courses.Update(ctx, course); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update course")
	}
	s.invalidateSchedule(ctx)
	return course, nil
}

// DeleteCourse removes one course.
func (s *CalendarService) DeleteCourse(ctx context.Context, id string) error {
	if err := s.courses.Delete(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "course not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete course")
	}
	s.invalidateSchedule(ctx)
	return nil
}

// CreateJob validates and stores a new work shift.
func (s *CalendarService) CreateJob(ctx context.Context, req dto.CreateRecurringBlockRequest) (*models.Job, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid job payload")
	}
	job := &models.Job{
		Name:  req.Name,
		Days:  models.StringList(req.Days),
		Start: req.Start,
		End:   req.End,
		Color: req.Color,
	}
	if err := s.jobs.Create(ctx, job); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create job")
	}
	s.invalidateSchedule(ctx)
	return job, nil
}

// ListJobs returns all stored jobs.
func (s *CalendarService) ListJobs(ctx context.Context) ([]models.Job, error) {
	jobs, err := s.jobs.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list jobs")
	}
	if jobs == nil {
		jobs = []models.Job{}
	}
	return jobs, nil
}

// UpdateJob replaces one job's fields.
func (s *CalendarService) UpdateJob(ctx context.Context, id string, req dto.CreateRecurringBlockRequest) (*models.Job, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid job payload")
	}
	job := &models.Job{
		ID:    id,
		Name:  req.Name,
		Days:  models.StringList(req.Days),
		Start: req.Start,
		End:   req.End,
		Color: req.Color,
	}
	if err := s.jobs.Update(ctx, job); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "job not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update job")
	}
	s.invalidateSchedule(ctx)
	return job, nil
}

// DeleteJob removes one job.
func (s *CalendarService) DeleteJob(ctx context.Context, id string) error {
	if err := s.jobs.Delete(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "job not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete job")
	}
	s.invalidateSchedule(ctx)
	return nil
}

// CreateCommute validates and stores a new commute.
func (s *CalendarService) CreateCommute(ctx context.Context, req dto.CreateRecurringBlockRequest) (*models.Commute, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid commute payload")
	}
	commute := &models.Commute{
		Name:  req.Name,
		Days:  models.StringList(req.Days),
		Start: req.Start,
		End:   req.End,
		Color: req.Color,
	}
	if err := s.commutes.Create(ctx, commute); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create commute")
	}
	s.invalidateSchedule(ctx)
	return commute, nil
}

// ListCommutes returns all stored commutes.
func (s *CalendarService) ListCommutes(ctx context.Context) ([]models.Commute, error) {
	commutes, err := s.commutes.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list commutes")
	}
	if commutes == nil {
		commutes = []models.Commute{}
	}
	return commutes, nil
}

// UpdateCommute replaces one commute's fields.
func (s *CalendarService) UpdateCommute(ctx context.Context, id string, req dto.CreateRecurringBlockRequest) (*models.Commute, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid commute payload")
	}
	commute := &models.Commute{
		ID:    id,
		Name:  req.Name,
		Days:  models.StringList(req.Days),
		Start: req.Start,
		End:   req.End,
		Color: req.Color,
	}
	if err := s.commutes.Update(ctx, commute); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "commute not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update commute")
	}
	s.invalidateSchedule(ctx)
	return commute, nil
}

// DeleteCommute removes one commute.
func (s *CalendarService) DeleteCommute(ctx context.Context, id string) error {
	if err := s.commutes.Delete(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "commute not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete commute")
	}
	s.invalidateSchedule(ctx)
	return nil
}

// CreateBreak validates and stores a new blocked window.
func (s *CalendarService) CreateBreak(ctx context.Context, req dto.CreateBreakRequest) (*models.Break, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid break payload")
	}
	blk := &models.Break{
		Name:  req.Name,
		Day:   req.Day,
		Start: req.Start,
		End:   req.End,
		Color: req.Color,
	}
	if err := s.breaks.Create(ctx, blk); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create break")
	}
	s.invalidateSchedule(ctx)
	return blk, nil
}

// ListBreaks returns all stored breaks.
func (s *CalendarService) ListBreaks(ctx context.Context) ([]models.Break, error) {
	breaks, err := s.breaks.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list breaks")
	}
	if breaks == nil {
		breaks = []models.Break{}
	}
	return breaks, nil
}

// UpdateBreak replaces one break's fields.
func (s *CalendarService) UpdateBreak(ctx context.Context, id string, req dto.CreateBreakRequest) (*models.Break, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid break payload")
	}
	blk := &models.Break{
		ID:    id,
		Name:  req.Name,
		Day:   req.Day,
		Start: req.Start,
		End:   req.End,
		Color: req.Color,
	}
	if err := s.breaks.Update(ctx, blk); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "break not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update break")
	}
	s.invalidateSchedule(ctx)
	return blk, nil
}

// DeleteBreak removes one break.
func (s *CalendarService) DeleteBreak(ctx context.Context, id string) error {
	if err := s.breaks.Delete(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "break not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete break")
	}
	s.invalidateSchedule(ctx)
	return nil
}

// Calendar writes make any cached schedule stale.
func (s *CalendarService) invalidateSchedule(ctx context.Context) {
	_ = s.cache.Invalidate(ctx, savedScheduleCachePattern)
}
