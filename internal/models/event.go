package models

import (
	"database/sql"
	"time"
)

// Scheduled event status values.
const (
	EventStatusScheduled  = "scheduled"
	EventStatusIncomplete = "incomplete"
	EventStatusExam       = "exam"
	EventStatusCompleted  = "completed"
	EventStatusCancelled  = "cancelled"
)

// ScheduledEvent is a persisted study session produced by the scheduler.
type ScheduledEvent struct {
	ID          string         `db:"id" json:"id"`
	TaskID      sql.NullString `db:"task_id" json:"task_id,omitempty"`
	Title       string         `db:"title" json:"title"`
	Date        string         `db:"date" json:"date"`
	Start       string         `db:"start_time" json:"start"`
	End         string         `db:"end_time" json:"end"`
	Duration    int            `db:"duration" json:"duration"`
	Status      string         `db:"status" json:"status"`
	Difficulty  sql.NullString `db:"difficulty" json:"difficulty,omitempty"`
	Color       string         `db:"color" json:"color"`
	Completed   bool           `db:"completed" json:"completed"`
	CompletedAt sql.NullTime   `db:"completed_at" json:"completed_at,omitempty"`
	CreatedAt   time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at" json:"updated_at"`
}
