package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/foodtrack/foodtrack-server/internal/core/domain"
)

type PostgresChecklistRepository struct {
	db *sqlx.DB
}

func NewPostgresChecklistRepository(db *sqlx.DB) *PostgresChecklistRepository {
	return &PostgresChecklistRepository{db: db}
}

// Upsert writes the full row keyed by (user_id, date). Replaying an
// identical checkin leaves one row in the same state, never a duplicate.
func (r *PostgresChecklistRepository) Upsert(ctx context.Context, checklist *domain.DailyChecklist) error {
	query := `
		INSERT INTO daily_checklists (
			user_id, date, food_logged, weight_logged, water_goal_met,
			did_live_workout, did_recorded_workout, updated_at
		) VALUES (
			:user_id, :date, :food_logged, :weight_logged, :water_goal_met,
			:did_live_workout, :did_recorded_workout, :updated_at
		)
		ON CONFLICT (user_id, date) DO UPDATE SET
			food_logged = EXCLUDED.food_logged,
			weight_logged = EXCLUDED.weight_logged,
			water_goal_met = EXCLUDED.water_goal_met,
			did_live_workout = EXCLUDED.did_live_workout,
			did_recorded_workout = EXCLUDED.did_recorded_workout,
			updated_at = EXCLUDED.updated_at`

	_, err := r.db.NamedExecContext(ctx, query, checklist)
	return err
}

func (r *PostgresChecklistRepository) Get(ctx context.Context, userID int64, date string) (*domain.DailyChecklist, error) {
	var checklist domain.DailyChecklist
	query := `SELECT * FROM daily_checklists WHERE user_id = $1 AND date = $2`

	err := r.db.GetContext(ctx, &checklist, query, userID, date)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrChecklistNotFound
		}
		return nil, err
	}
	return &checklist, nil
}
