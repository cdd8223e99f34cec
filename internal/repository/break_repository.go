package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/studytime-api/internal/models"
)

// BreakRepository handles blocked-window persistence.
type BreakRepository struct {
	db *sqlx.DB
}

// NewBreakRepository constructs the repository.
func NewBreakRepository(db *sqlx.DB) *BreakRepository {
	return &BreakRepository{db: db}
}

// Create stores a new break.
func (r *BreakRepository) Create(ctx context.Context, blk *models.Break) error {
	if blk.ID == "" {
		blk.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	blk.CreatedAt = now
	blk.UpdatedAt = now
	const query = `INSERT INTO breaks (id, name, day, start_time, end_time, color, created_at, updated_at)
	VALUES (:id, :name, :day, :start_time, :end_time, :color, :created_at, :updated_at)`
	if _, err := r.db.NamedExecContext(ctx, query, blk); err != nil {
		return fmt.Errorf("create break: %w", err)
	}
	return nil
}

// List returns all breaks ordered by day then start time.
func (r *BreakRepository) List(ctx context.Context) ([]models.Break, error) {
	const query = `SELECT id, name, day, start_time, end_time, color, created_at, updated_at
	FROM breaks ORDER BY day ASC, start_time ASC`
	var breaks []models.Break
	if err := r.db.SelectContext(ctx, &breaks, query); err != nil {
		return nil, fmt.Errorf("list breaks: %w", err)
	}
	return breaks, nil
}

// Update rewrites a break row.
func (r *BreakRepository) Update(ctx context.Context, blk *models.Break) error {
	blk.UpdatedAt = time.Now().UTC()
	const query = `UPDATE breaks SET name = :name, day = :day, start_time = :start_time,
	end_time = :end_time, color = :color, updated_at = :updated_at WHERE id = :id`
	res, err := r.db.NamedExecContext(ctx, query, blk)
	if err != nil {
		return fmt.Errorf("update break: %w", err)
	}
	return requireRow(res, "break update")
}

// Delete removes a break row.
func (r *BreakRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM breaks WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete break: %w", err)
	}
	return requireRow(res, "break delete")
}

// Count returns the number of stored breaks.
func (r *BreakRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM breaks`); err != nil {
		return 0, fmt.Errorf("count breaks: %w", err)
	}
	return count, nil
}
