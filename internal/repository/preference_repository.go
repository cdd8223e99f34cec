package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/studytime-api/internal/models"
)

// PreferenceRepository handles per-user preference persistence.
type PreferenceRepository struct {
	db *sqlx.DB
}

// NewPreferenceRepository constructs the repository.
func NewPreferenceRepository(db *sqlx.DB) *PreferenceRepository {
	return &PreferenceRepository{db: db}
}

const preferenceColumns = `id, user_id, wake, sleep, timezone, max_study_hours, session_length,
       break_duration, between_classes, after_school, urgency_mode, study_time, auto_split,
       prioritize_hard, weekend_study, deadline_buffer, lunch_start, lunch_end, dinner_start,
       dinner_end, auto_meals, created_at, updated_at`

// GetByUser retrieves the stored preference row for a user.
func (r *PreferenceRepository) GetByUser(ctx context.Context, userID string) (*models.Preferences, error) {
	query := `SELECT ` + preferenceColumns + ` FROM user_preferences WHERE user_id = $1`
	var prefs models.Preferences
	if err := r.db.GetContext(ctx, &prefs, query, userID); err != nil {
		return nil, err
	}
	return &prefs, nil
}

// Upsert inserts or replaces the preference row for a user.
func (r *PreferenceRepository) Upsert(ctx context.Context, prefs *models.Preferences) error {
	if prefs.ID == "" {
		prefs.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if prefs.CreatedAt.IsZero() {
		prefs.CreatedAt = now
	}
	prefs.UpdatedAt = now
	const query = `INSERT INTO user_preferences
	(id, user_id, wake, sleep, timezone, max_study_hours, session_length, break_duration,
	 between_classes, after_school, urgency_mode, study_time, auto_split, prioritize_hard,
	 weekend_study, deadline_buffer, lunch_start, lunch_end, dinner_start, dinner_end,
	 auto_meals, created_at, updated_at)
	VALUES (:id, :user_id, :wake, :sleep, :timezone, :max_study_hours, :session_length, :break_duration,
	 :between_classes, :after_school, :urgency_mode, :study_time, :auto_split, :prioritize_hard,
	 :weekend_study, :deadline_buffer, :lunch_start, :lunch_end, :dinner_start, :dinner_end,
	 :auto_meals, :created_at, :updated_at)
	ON CONFLICT (user_id) DO UPDATE SET
	 wake = EXCLUDED.wake, sleep = EXCLUDED.sleep, timezone = EXCLUDED.timezone,
	 max_study_hours = EXCLUDED.max_study_hours, session_length = EXCLUDED.session_length,
	 break_duration = EXCLUDED.break_duration, between_classes = EXCLUDED.between_classes,
	 after_school = EXCLUDED.after_school, urgency_mode = EXCLUDED.urgency_mode,
	 study_time = EXCLUDED.study_time, auto_split = EXCLUDED.auto_split,
	 prioritize_hard = EXCLUDED.prioritize_hard, weekend_study = EXCLUDED.weekend_study,
	 deadline_buffer = EXCLUDED.deadline_buffer, lunch_start = EXCLUDED.lunch_start,
	 lunch_end = EXCLUDED.lunch_end, dinner_start = EXCLUDED.dinner_start,
	 dinner_end = EXCLUDED.dinner_end, auto_meals = EXCLUDED.auto_meals,
	 updated_at = EXCLUDED.updated_at`
	if _, err := r.db.NamedExecContext(ctx, query, prefs); err != nil {
		return fmt.Errorf("upsert preferences: %w", err)
	}
	return nil
}
