package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/studytime-api/internal/dto"
	appErrors "github.com/noah-isme/studytime-api/pkg/errors"
)

const statsCacheKey = "stats:overview"

type entityCounter interface {
	Count(ctx context.Context) (int, error)
}

type taskCounter interface {
	CountByCompletion(ctx context.Context) (total, completed int, err error)
}

// StatsService aggregates entity counts for the overview endpoint.
type StatsService struct {
	courses  entityCounter
	breaks   entityCounter
	jobs     entityCounter
	commutes entityCounter
	tasks    taskCounter
	cache    *CacheService
	logger   *zap.Logger
	cacheTTL time.Duration
}

// NewStatsService constructs a StatsService.
func NewStatsService(courses, breaks, jobs, commutes entityCounter, tasks taskCounter,
	cache *CacheService, logger *zap.Logger, cacheTTL time.Duration) *StatsService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cacheTTL <= 0 {
		cacheTTL = time.Minute
	}
	return &StatsService{courses: courses, breaks: breaks, jobs: jobs, commutes: commutes,
		tasks: tasks, cache: cache, logger: logger, cacheTTL: cacheTTL}
}

// Overview returns stored entity counts, served from cache when possible.
func (s *StatsService) Overview(ctx context.Context) (*dto.StatsResponse, bool, error) {
	var cached dto.StatsResponse
	if hit, err := s.cache.Get(ctx, statsCacheKey, &cached); err == nil && hit {
		return &cached, true, nil
	}

	courses, err := s.courses.Count(ctx)
	if err != nil {
		return nil, false, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to count courses")
	}
	breaks, err := s.breaks.Count(ctx)
	if err != nil {
		return nil, false, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to count breaks")
	}
	jobs, err := s.jobs.Count(ctx)
	if err != nil {
		return nil, false, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to count jobs")
	}
	commutes, err := s.commutes.Count(ctx)
	if err != nil {
		return nil, false, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to count commutes")
	}
	total, completed, err := s.tasks.CountByCompletion(ctx)
	if err != nil {
		return nil, false, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to count tasks")
	}

	stats := &dto.StatsResponse{
		Courses:  courses,
		Breaks:   breaks,
		Jobs:     jobs,
		Commutes: commutes,
		Tasks: dto.TaskStats{
			Total:     total,
			Completed: completed,
			Pending:   total - completed,
		},
	}
	_ = s.cache.Set(ctx, statsCacheKey, stats, s.cacheTTL)
	return stats, false, nil
}
