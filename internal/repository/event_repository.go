package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/studytime-api/internal/models"
)

// EventRepository handles persisted scheduled session rows.
type EventRepository struct {
	db *sqlx.DB
}

// NewEventRepository constructs the repository.
func NewEventRepository(db *sqlx.DB) *EventRepository {
	return &EventRepository{db: db}
}

const eventColumns = `id, task_id, title, date, start_time, end_time, duration, status,
       difficulty, color, completed, completed_at, created_at, updated_at`

// ReplaceAll swaps the stored schedule for a freshly generated one in a
// single transaction.
func (r *EventRepository) ReplaceAll(ctx context.Context, events []models.ScheduledEvent) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin replace events: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM scheduled_events`); err != nil {
		return fmt.Errorf("clear events: %w", err)
	}
	const query = `INSERT INTO scheduled_events
	(id, task_id, title, date, start_time, end_time, duration, status, difficulty, color, completed, completed_at, created_at, updated_at)
	VALUES (:id, :task_id, :title, :date, :start_time, :end_time, :duration, :status, :difficulty, :color, :completed, :completed_at, :created_at, :updated_at)`
	now := time.Now().UTC()
	for i := range events {
		if events[i].ID == "" {
			events[i].ID = uuid.NewString()
		}
		events[i].CreatedAt = now
		events[i].UpdatedAt = now
		if _, err := tx.NamedExecContext(ctx, query, events[i]); err != nil {
			return fmt.Errorf("insert event: %w", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit replace events: %w", err)
	}
	return nil
}

// List returns all stored events ordered chronologically. The date column
// carries MM/DD/YYYY strings so ordering converts it first.
func (r *EventRepository) List(ctx context.Context) ([]models.ScheduledEvent, error) {
	query := `SELECT ` + eventColumns + ` FROM scheduled_events
	ORDER BY to_date(date, 'MM/DD/YYYY') ASC, start_time ASC`
	var events []models.ScheduledEvent
	if err := r.db.SelectContext(ctx, &events, query); err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return events, nil
}

// SetStatus updates the status of one event; a completed status also stamps
// the completion time.
func (r *EventRepository) SetStatus(ctx context.Context, id, status string, at time.Time) error {
	const query = `UPDATE scheduled_events SET status = $2,
	completed = ($2 = 'completed'),
	completed_at = CASE WHEN $2 = 'completed' THEN $3 ELSE NULL END,
	updated_at = $3 WHERE id = $1`
	res, err := r.db.ExecContext(ctx, query, id, status, at)
	if err != nil {
		return fmt.Errorf("set event status: %w", err)
	}
	return requireRow(res, "event status update")
}

// DeleteAll clears the stored schedule.
func (r *EventRepository) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM scheduled_events`); err != nil {
		return fmt.Errorf("delete events: %w", err)
	}
	return nil
}
