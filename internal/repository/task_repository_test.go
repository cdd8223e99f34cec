package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/studytime-api/internal/models"
)

func taskRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "name", "duration", "due", "difficulty", "is_exam",
		"color", "completed", "completion_date", "course_id", "notes", "created_at", "updated_at"})
}

func TestTaskRepositoryCreate(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewTaskRepository(db)
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO tasks")).
		WillReturnResult(sqlmock.NewResult(1, 1))

	task := &models.Task{
		Name:       "Essay draft",
		Duration:   90,
		Due:        "2025-03-14T17:00:00",
		Difficulty: models.DifficultyMedium,
	}
	require.NoError(t, repo.Create(context.Background(), task))
	require.NotEmpty(t, task.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTaskRepositoryListPendingOnly(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewTaskRepository(db)
	rows := taskRows().
		AddRow("t-1", "Reading", 40, "2025-03-12T09:00:00", "Easy", false, "", false, nil, nil, nil, time.Now(), time.Now())
	mock.ExpectQuery(regexp.QuoteMeta("FROM tasks WHERE completed = $1")).
		WithArgs(false).
		WillReturnRows(rows)

	pending := false
	tasks, err := repo.List(context.Background(), models.TaskFilter{Completed: &pending})
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	require.Equal(t, "Reading", tasks[0].Name)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTaskRepositoryListUnfiltered(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewTaskRepository(db)
	rows := taskRows().
		AddRow("t-1", "Reading", 40, "2025-03-12T09:00:00", "Easy", false, "", false, nil, nil, nil, time.Now(), time.Now()).
		AddRow("t-2", "Problem set", 120, "2025-03-13T23:00:00", "Hard", false, "", true, time.Now(), nil, nil, time.Now(), time.Now())
	mock.ExpectQuery(regexp.QuoteMeta("FROM tasks ORDER BY due")).
		WillReturnRows(rows)

	tasks, err := repo.List(context.Background(), models.TaskFilter{})
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTaskRepositoryCountByCompletion(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewTaskRepository(db)
	rows := sqlmock.NewRows([]string{"total", "completed"}).AddRow(5, 2)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) AS total")).
		WillReturnRows(rows)

	total, completed, err := repo.CountByCompletion(context.Background())
	require.NoError(t, err)
	require.Equal(t, 5, total)
	require.Equal(t, 2, completed)
}
