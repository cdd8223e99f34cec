package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/studytime-api/internal/models"
)

func newRepoMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return sqlx.NewDb(db, "sqlmock"), mock, func() { db.Close() }
}

func TestCourseRepositoryCreateAndGet(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewCourseRepository(db)
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO courses")).
		WillReturnResult(sqlmock.NewResult(1, 1))

	course := &models.Course{
		Name:  "MATH 101",
		Days:  models.StringList{"Monday", "Wednesday"},
		Start: "09:00",
		End:   "10:30",
		Color: "#3F51B5",
	}
	require.NoError(t, repo.Create(context.Background(), course))
	require.NotEmpty(t, course.ID)

	rows := sqlmock.NewRows([]string{"id", "name", "days", "start_time", "end_time", "color", "created_at", "updated_at"}).
		AddRow(course.ID, course.Name, `["Monday","Wednesday"]`, course.Start, course.End, course.Color, time.Now(), time.Now())
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, days, start_time, end_time, color")).
		WithArgs(course.ID).
		WillReturnRows(rows)

	found, err := repo.GetByID(context.Background(), course.ID)
	require.NoError(t, err)
	require.Equal(t, "MATH 101", found.Name)
	require.Equal(t, models.StringList{"Monday", "Wednesday"}, found.Days)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCourseRepositoryList(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewCourseRepository(db)
	rows := sqlmock.NewRows([]string{"id", "name", "days", "start_time", "end_time", "color", "created_at", "updated_at"}).
		AddRow("c-1", "CHEM 200", `["Tuesday"]`, "13:00", "14:30", "#009688", time.Now(), time.Now()).
		AddRow("c-2", "MATH 101", `["Monday"]`, "09:00", "10:30", "#3F51B5", time.Now(), time.Now())
	mock.ExpectQuery(regexp.QuoteMeta("FROM courses ORDER BY name")).
		WillReturnRows(rows)

	courses, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, courses, 2)
	require.Equal(t, "CHEM 200", courses[0].Name)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCourseRepositoryDeleteMissing(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewCourseRepository(db)
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM courses WHERE id = $1")).
		WithArgs("missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), "missing")
	require.ErrorIs(t, err, sql.ErrNoRows)
}
