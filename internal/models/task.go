package models

import (
	"database/sql"
	"time"
)

// Task difficulty grades accepted by the API.
const (
	DifficultyEasy   = "Easy"
	DifficultyMedium = "Medium"
	DifficultyHard   = "Hard"
)

// Task is a pending assignment, project or exam entry.
type Task struct {
	ID             string         `db:"id" json:"id"`
	Name           string         `db:"name" json:"name"`
	Duration       int            `db:"duration" json:"duration"`
	Due            string         `db:"due" json:"due"`
	Difficulty     string         `db:"difficulty" json:"difficulty"`
	IsExam         bool           `db:"is_exam" json:"is_exam"`
	Color          string         `db:"color" json:"color"`
	Completed      bool           `db:"completed" json:"completed"`
	CompletionDate sql.NullTime   `db:"completion_date" json:"completion_date,omitempty"`
	CourseID       sql.NullString `db:"course_id" json:"course_id,omitempty"`
	Notes          sql.NullString `db:"notes" json:"notes,omitempty"`
	CreatedAt      time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time      `db:"updated_at" json:"updated_at"`
}

// TaskFilter narrows task listings.
type TaskFilter struct {
	Completed *bool
}
