package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/foodtrack/foodtrack-server/internal/core/domain"
)

type PostgresMeasurementRepository struct {
	db *sqlx.DB
}

func NewPostgresMeasurementRepository(db *sqlx.DB) *PostgresMeasurementRepository {
	return &PostgresMeasurementRepository{db: db}
}

func (r *PostgresMeasurementRepository) Insert(ctx context.Context, m *domain.Measurement) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}

	query := `
		INSERT INTO measurements (
			id, user_id, weight, arm_l, arm_r, chest, waist, hips, leg_l, leg_r, created_at
		) VALUES (
			:id, :user_id, :weight, :arm_l, :arm_r, :chest, :waist, :hips, :leg_l, :leg_r, :created_at
		)`

	_, err := r.db.NamedExecContext(ctx, query, m)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23503" {
			return domain.ErrUserNotFound
		}
		return err
	}
	return nil
}

func (r *PostgresMeasurementRepository) ListByUser(ctx context.Context, userID int64) ([]*domain.Measurement, error) {
	measurements := []*domain.Measurement{}

	query := `
		SELECT * FROM measurements
		WHERE user_id = $1
		ORDER BY created_at DESC`

	if err := r.db.SelectContext(ctx, &measurements, query, userID); err != nil {
		return nil, err
	}
	return measurements, nil
}
