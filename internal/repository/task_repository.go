package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/studytime-api/internal/models"
)

// TaskRepository handles task persistence.
type TaskRepository struct {
	db *sqlx.DB
}

// NewTaskRepository constructs the repository.
func NewTaskRepository(db *sqlx.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

const taskColumns = `id, name, duration, due, difficulty, is_exam, color, completed,
       completion_date, course_id, notes, created_at, updated_at`

// Create stores a new task.
func (r *TaskRepository) Create(ctx context.Context, task *models.Task) error {
	if task.ID == "" {
		task.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	task.CreatedAt = now
	task.UpdatedAt = now
	const query = `INSERT INTO tasks
	(id, name, duration, due, difficulty, is_exam, color, completed, completion_date, course_id, notes, created_at, updated_at)
	VALUES (:id, :name, :duration, :due, :difficulty, :is_exam, :color, :completed, :completion_date, :course_id, :notes, :created_at, :updated_at)`
	if _, err := r.db.NamedExecContext(ctx, query, task); err != nil {
		return fmt.Errorf("create task: %w", err)
	}
	return nil
}

// GetByID retrieves one task row.
func (r *TaskRepository) GetByID(ctx context.Context, id string) (*models.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = $1`
	var task models.Task
	if err := r.db.GetContext(ctx, &task, query, id); err != nil {
		return nil, err
	}
	return &task, nil
}

// List returns tasks matching the filter, soonest due first.
func (r *TaskRepository) List(ctx context.Context, filter models.TaskFilter) ([]models.Task, error) {
	builder := strings.Builder{}
	builder.WriteString(`SELECT ` + taskColumns + ` FROM tasks`)
	args := make([]interface{}, 0, 1)
	if filter.Completed != nil {
		args = append(args, *filter.Completed)
		builder.WriteString(" WHERE completed = $1")
	}
	builder.WriteString(" ORDER BY due ASC, name ASC")

	var tasks []models.Task
	if err := r.db.SelectContext(ctx, &tasks, builder.String(), args...); err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	return tasks, nil
}

// Update rewrites a task row.
func (r *TaskRepository) Update(ctx context.Context, task *models.Task) error {
	task.UpdatedAt = time.Now().UTC()
	const query = `UPDATE tasks SET name = :name, duration = :duration, due = :due,
	difficulty = :difficulty, is_exam = :is_exam, color = :color, completed = :completed,
	completion_date = :completion_date, notes = :notes, updated_at = :updated_at WHERE id = :id`
	res, err := r.db.NamedExecContext(ctx, query, task)
	if err != nil {
		return fmt.Errorf("update task: %w", err)
	}
	return requireRow(res, "task update")
}

// Delete removes a task row.
func (r *TaskRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	return requireRow(res, "task delete")
}

// CountByCompletion returns total, completed and pending task counts.
func (r *TaskRepository) CountByCompletion(ctx context.Context) (total, completed int, err error) {
	const query = `SELECT COUNT(*) AS total,
       COUNT(*) FILTER (WHERE completed) AS completed FROM tasks`
	row := struct {
		Total     int `db:"total"`
		Completed int `db:"completed"`
	}{}
	if err := r.db.GetContext(ctx, &row, query); err != nil {
		return 0, 0, fmt.Errorf("count tasks: %w", err)
	}
	return row.Total, row.Completed, nil
}
