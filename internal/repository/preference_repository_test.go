package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/studytime-api/internal/models"
)

func TestPreferenceRepositoryGetByUser(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewPreferenceRepository(db)
	rows := sqlmock.NewRows([]string{"id", "user_id", "wake", "sleep", "timezone", "max_study_hours",
		"session_length", "break_duration", "between_classes", "after_school", "urgency_mode",
		"study_time", "auto_split", "prioritize_hard", "weekend_study", "deadline_buffer",
		"lunch_start", "lunch_end", "dinner_start", "dinner_end", "auto_meals", "created_at", "updated_at"}).
		AddRow("p-1", "default", "07:30", "23:30", "America/New_York", 5, 45, 10, 30, 120,
			"urgent", "evening", true, false, true, 6, "12:00", "13:00", "18:00", "19:00", true,
			time.Now(), time.Now())
	mock.ExpectQuery(regexp.QuoteMeta("FROM user_preferences WHERE user_id = $1")).
		WithArgs("default").
		WillReturnRows(rows)

	prefs, err := repo.GetByUser(context.Background(), "default")
	require.NoError(t, err)
	require.Equal(t, "07:30", prefs.Wake)
	require.Equal(t, 5, prefs.MaxStudyHours)
	require.Equal(t, "urgent", prefs.UrgencyMode)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPreferenceRepositoryGetByUserMissing(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewPreferenceRepository(db)
	mock.ExpectQuery(regexp.QuoteMeta("FROM user_preferences WHERE user_id = $1")).
		WithArgs("ghost").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByUser(context.Background(), "ghost")
	require.ErrorIs(t, err, sql.ErrNoRows)
}

func TestPreferenceRepositoryUpsert(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewPreferenceRepository(db)
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO user_preferences")).
		WillReturnResult(sqlmock.NewResult(1, 1))

	prefs := models.DefaultPreferences("default")
	require.NoError(t, repo.Upsert(context.Background(), &prefs))
	require.NotEmpty(t, prefs.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}
