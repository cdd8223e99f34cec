package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/studytime-api/internal/models"
)

// CommuteRepository handles commute persistence.
type CommuteRepository struct {
	db *sqlx.DB
}

// NewCommuteRepository constructs the repository.
func NewCommuteRepository(db *sqlx.DB) *CommuteRepository {
	return &CommuteRepository{db: db}
}

// Create stores a new commute.
func (r *CommuteRepository) Create(ctx context.Context, commute *models.Commute) error {
	if commute.ID == "" {
		commute.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	commute.CreatedAt = now
	commute.UpdatedAt = now
	const query = `INSERT INTO commutes (id, name, days, start_time, end_time, color, created_at, updated_at)
	VALUES (:id, :name, :days, :start_time, :end_time, :color, :created_at, :updated_at)`
	if _, err := r.db.NamedExecContext(ctx, query, commute); err != nil {
		return fmt.Errorf("create commute: %w", err)
	}
	return nil
}

// List returns all commutes ordered by name.
func (r *CommuteRepository) List(ctx context.Context) ([]models.Commute, error) {
	const query = `SELECT id, name, days, start_time, end_time, color, created_at, updated_at
	FROM commutes ORDER BY name ASC`
	var commutes []models.Commute
	if err := r.db.SelectContext(ctx, &commutes, query); err != nil {
		return nil, fmt.Errorf("list commutes: %w", err)
	}
	return commutes, nil
}

// Update rewrites a commute row.
func (r *CommuteRepository) Update(ctx context.Context, commute *models.Commute) error {
	commute.UpdatedAt = time.Now().UTC()
	const query = `UPDATE commutes SET name = :name, days = :days, start_time = :start_time,
	end_time = :end_time, color = :color, updated_at = :updated_at WHERE id = :id`
	res, err := r.db.NamedExecContext(ctx, query, commute)
	if err != nil {
		return fmt.Errorf("update commute: %w", err)
	}
	return requireRow(res, "commute update")
}

// Delete removes a commute row.
func (r *CommuteRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM commutes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete commute: %w", err)
	}
	return requireRow(res, "commute delete")
}

// Count returns the number of stored commutes.
func (r *CommuteRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM commutes`); err != nil {
		return 0, fmt.Errorf("count commutes: %w", err)
	}
	return count, nil
}
