package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/foodtrack/foodtrack-server/internal/core/domain"
)

type PostgresWaterLogRepository struct {
	db *sqlx.DB
}

func NewPostgresWaterLogRepository(db *sqlx.DB) *PostgresWaterLogRepository {
	return &PostgresWaterLogRepository{db: db}
}

func (r *PostgresWaterLogRepository) Insert(ctx context.Context, entry *domain.WaterLogEntry) error {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}

	query := `
		INSERT INTO water_logs (id, user_id, amount_ml, created_at)
		VALUES (:id, :user_id, :amount_ml, :created_at)`

	_, err := r.db.NamedExecContext(ctx, query, entry)
	return err
}

func (r *PostgresWaterLogRepository) ListByUserAndRange(ctx context.Context, userID int64, from, to time.Time) ([]*domain.WaterLogEntry, error) {
	entries := []*domain.WaterLogEntry{}

	query := `
		SELECT * FROM water_logs
		WHERE user_id = $1
		  AND created_at >= $2
		  AND created_at <= $3
		ORDER BY created_at ASC`

	if err := r.db.SelectContext(ctx, &entries, query, userID, from, to); err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *PostgresWaterLogRepository) ListByUser(ctx context.Context, userID int64) ([]*domain.WaterLogEntry, error) {
	entries := []*domain.WaterLogEntry{}

	query := `
		SELECT * FROM water_logs
		WHERE user_id = $1
		ORDER BY created_at ASC`

	if err := r.db.SelectContext(ctx, &entries, query, userID); err != nil {
		return nil, err
	}
	return entries, nil
}
