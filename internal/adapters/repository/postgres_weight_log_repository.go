package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/foodtrack/foodtrack-server/internal/core/domain"
)

type PostgresWeightLogRepository struct {
	db *sqlx.DB
}

func NewPostgresWeightLogRepository(db *sqlx.DB) *PostgresWeightLogRepository {
	return &PostgresWeightLogRepository{db: db}
}

// UpsertDay overwrites the existing same-day row when there is one, so a
// user ends each calendar day with exactly one authoritative weight.
func (r *PostgresWeightLogRepository) UpsertDay(ctx context.Context, entry *domain.WeightLogEntry) error {
	dayStart, dayEnd := domain.DayBounds(entry.CreatedAt)

	result, err := r.db.ExecContext(ctx, `
		UPDATE weight_logs
		SET weight = $1
		WHERE user_id = $2
		  AND created_at >= $3
		  AND created_at <= $4`,
		entry.WeightKG, entry.UserID, dayStart, dayEnd)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows > 0 {
		return nil
	}

	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}

	_, err = r.db.NamedExecContext(ctx, `
		INSERT INTO weight_logs (id, user_id, weight, created_at)
		VALUES (:id, :user_id, :weight, :created_at)`, entry)
	return err
}

func (r *PostgresWeightLogRepository) ListByUser(ctx context.Context, userID int64, limit int) ([]*domain.WeightLogEntry, error) {
	entries := []*domain.WeightLogEntry{}

	query := `
		SELECT * FROM weight_logs
		WHERE user_id = $1
		ORDER BY created_at ASC
		LIMIT $2`

	if err := r.db.SelectContext(ctx, &entries, query, userID, limit); err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *PostgresWeightLogRepository) CountInRange(ctx context.Context, userID int64, from, to time.Time) (int, error) {
	var count int
	query := `
		SELECT count(*) FROM weight_logs
		WHERE user_id = $1
		  AND created_at >= $2
		  AND created_at <= $3`

	if err := r.db.GetContext(ctx, &count, query, userID, from, to); err != nil {
		return 0, err
	}
	return count, nil
}
