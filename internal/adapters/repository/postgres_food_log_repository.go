package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/foodtrack/foodtrack-server/internal/core/domain"
)

type PostgresFoodLogRepository struct {
	db *sqlx.DB
}

func NewPostgresFoodLogRepository(db *sqlx.DB) *PostgresFoodLogRepository {
	return &PostgresFoodLogRepository{db: db}
}

func (r *PostgresFoodLogRepository) Insert(ctx context.Context, entry *domain.FoodLogEntry) error {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}

	query := `
		INSERT INTO food_logs (
			id, user_id, name, calories, protein, fats, carbs,
			weight_g, grade, source, created_at
		) VALUES (
			:id, :user_id, :name, :calories, :protein, :fats, :carbs,
			:weight_g, :grade, :source, :created_at
		)`

	_, err := r.db.NamedExecContext(ctx, query, entry)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23503" {
			return domain.ErrUserNotFound
		}
		return err
	}
	return nil
}

func (r *PostgresFoodLogRepository) Update(ctx context.Context, entry *domain.FoodLogEntry) error {
	query := `
		UPDATE food_logs
		SET name = :name,
		    calories = :calories,
		    protein = :protein,
		    fats = :fats,
		    carbs = :carbs,
		    weight_g = :weight_g
		WHERE id = :id`

	result, err := r.db.NamedExecContext(ctx, query, entry)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrFoodLogNotFound
	}
	return nil
}

func (r *PostgresFoodLogRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM food_logs WHERE id = $1`, id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrFoodLogNotFound
	}
	return nil
}

func (r *PostgresFoodLogRepository) GetByID(ctx context.Context, id string) (*domain.FoodLogEntry, error) {
	var entry domain.FoodLogEntry
	query := `SELECT * FROM food_logs WHERE id = $1`

	err := r.db.GetContext(ctx, &entry, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrFoodLogNotFound
		}
		return nil, err
	}
	return &entry, nil
}

func (r *PostgresFoodLogRepository) ListByUserAndRange(ctx context.Context, userID int64, from, to time.Time) ([]*domain.FoodLogEntry, error) {
	entries := []*domain.FoodLogEntry{}

	query := `
		SELECT * FROM food_logs
		WHERE user_id = $1
		  AND created_at >= $2
		  AND created_at <= $3
		ORDER BY created_at DESC`

	if err := r.db.SelectContext(ctx, &entries, query, userID, from, to); err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *PostgresFoodLogRepository) ListRecent(ctx context.Context, userID int64, limit int) ([]*domain.FoodLogEntry, error) {
	entries := []*domain.FoodLogEntry{}

	query := `
		SELECT * FROM food_logs
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2`

	if err := r.db.SelectContext(ctx, &entries, query, userID, limit); err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *PostgresFoodLogRepository) CountInRange(ctx context.Context, userID int64, from, to time.Time) (int, error) {
	var count int
	query := `
		SELECT count(*) FROM food_logs
		WHERE user_id = $1
		  AND created_at >= $2
		  AND created_at <= $3`

	if err := r.db.GetContext(ctx, &count, query, userID, from, to); err != nil {
		return 0, err
	}
	return count, nil
}
