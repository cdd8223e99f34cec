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

type preferenceRepository interface {
	GetByUser(ctx context.Context, userID string) (*models.Preferences, error)
	Upsert(ctx context.Context, prefs *models.Preferences) error
}

// PreferenceService manages the per-user scheduling preference row.
type PreferenceService struct {
	repo      preferenceRepository
	cache     *CacheService
	validator *validator.Validate
	logger    *zap.Logger
}

// NewPreferenceService constructs a PreferenceService.
func NewPreferenceService(repo preferenceRepository, cache *CacheService, v *validator.Validate, logger *zap.Logger) *PreferenceService {
	if v == nil {
		v = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PreferenceService{repo: repo, cache: cache, validator: v, logger: logger}
}

// Get returns stored preferences, falling back to defaults when the user has
// never saved any.
func (s *PreferenceService) Get(ctx context.Context, userID string) (*models.Preferences, error) {
	prefs, err := s.repo.GetByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			defaults := models.DefaultPreferences(userID)
			return &defaults, nil
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load preferences")
	}
	return prefs, nil
}

// Update replaces the stored preference set.
func (s *PreferenceService) Update(ctx context.Context, userID string, req dto.UpdatePreferencesRequest) (*models.Preferences, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid preferences payload")
	}
	prefs := &models.Preferences{
		UserID:         userID,
		Wake:           req.Wake,
		Sleep:          req.Sleep,
		Timezone:       req.Timezone,
		MaxStudyHours:  req.MaxStudyHours,
		SessionLength:  req.SessionLength,
		BreakDuration:  req.BreakDuration,
		BetweenClasses: req.BetweenClasses,
		AfterSchool:    req.AfterSchool,
		UrgencyMode:    req.UrgencyMode,
		StudyTime:      req.StudyTime,
		AutoSplit:      req.AutoSplit,
		PrioritizeHard: req.PrioritizeHard,
		WeekendStudy:   req.WeekendStudy,
		DeadlineBuffer: req.DeadlineBuffer,
		LunchStart:     req.LunchStart,
		LunchEnd:       req.LunchEnd,
		DinnerStart:    req.DinnerStart,
		DinnerEnd:      req.DinnerEnd,
		AutoMeals:      req.AutoMeals,
	}
	if err := s.repo.Upsert(ctx, prefs); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to save preferences")
	}
	_ = s.cache.Invalidate(ctx, savedScheduleCachePattern)
	s.logger.Info("preferences updated", zap.String("user", userID))
	return prefs, nil
}
