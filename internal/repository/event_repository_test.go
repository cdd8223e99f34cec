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

func TestEventRepositoryReplaceAll(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewEventRepository(db)
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM scheduled_events")).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO scheduled_events")).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO scheduled_events")).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	events := []models.ScheduledEvent{
		{Title: "MATH 101 homework (Session 1)", Date: "03/10/2025", Start: "10:00", End: "11:00", Duration: 60, Status: models.EventStatusScheduled},
		{Title: "EXAM: MATH 101 midterm", Date: "03/17/2025", Start: "09:00", End: "10:30", Duration: 90, Status: models.EventStatusExam},
	}
	require.NoError(t, repo.ReplaceAll(context.Background(), events))
	require.NotEmpty(t, events[0].ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepositoryReplaceAllRollsBack(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewEventRepository(db)
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM scheduled_events")).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO scheduled_events")).
		WillReturnError(context.DeadlineExceeded)
	mock.ExpectRollback()

	events := []models.ScheduledEvent{{Title: "broken", Date: "03/10/2025", Start: "10:00", End: "11:00"}}
	require.Error(t, repo.ReplaceAll(context.Background(), events))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepositorySetStatus(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewEventRepository(db)
	mock.ExpectExec(regexp.QuoteMeta("UPDATE scheduled_events SET status = $2")).
		WithArgs("ev-1", models.EventStatusCompleted, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.SetStatus(context.Background(), "ev-1", models.EventStatusCompleted, time.Now()))
	require.NoError(t, mock.ExpectationsWereMet())
}
