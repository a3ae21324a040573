package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/foodtrack/foodtrack-server/internal/core/domain"
)

type PostgresUserRepository struct {
	db *sqlx.DB
}

func NewPostgresUserRepository(db *sqlx.DB) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

func (r *PostgresUserRepository) Upsert(ctx context.Context, user *domain.UserProfile) error {
	query := `
		INSERT INTO users (
			telegram_id, first_name, username, phone, avatar_url,
			gender, birth_date, age, height, weight, target_weight,
			activity_level, target_goal,
			daily_calories_goal, daily_protein_goal, daily_fats_goal, daily_carbs_goal,
			daily_water_goal_ml, created_at, updated_at
		) VALUES (
			:telegram_id, :first_name, :username, :phone, :avatar_url,
			:gender, :birth_date, :age, :height, :weight, :target_weight,
			:activity_level, :target_goal,
			:daily_calories_goal, :daily_protein_goal, :daily_fats_goal, :daily_carbs_goal,
			:daily_water_goal_ml, :created_at, :updated_at
		)
		ON CONFLICT (telegram_id) DO UPDATE SET
			first_name = EXCLUDED.first_name,
			username = EXCLUDED.username,
			phone = EXCLUDED.phone,
			avatar_url = EXCLUDED.avatar_url,
			gender = EXCLUDED.gender,
			birth_date = EXCLUDED.birth_date,
			age = EXCLUDED.age,
			height = EXCLUDED.height,
			weight = EXCLUDED.weight,
			target_weight = EXCLUDED.target_weight,
			activity_level = EXCLUDED.activity_level,
			target_goal = EXCLUDED.target_goal,
			daily_calories_goal = EXCLUDED.daily_calories_goal,
			daily_protein_goal = EXCLUDED.daily_protein_goal,
			daily_fats_goal = EXCLUDED.daily_fats_goal,
			daily_carbs_goal = EXCLUDED.daily_carbs_goal,
			daily_water_goal_ml = EXCLUDED.daily_water_goal_ml,
			updated_at = EXCLUDED.updated_at`

	if _, err := r.db.NamedExecContext(ctx, query, user); err != nil {
		return fmt.Errorf("repository: upsert user failed: %w", err)
	}
	return nil
}

func (r *PostgresUserRepository) GetByTelegramID(ctx context.Context, telegramID int64) (*domain.UserProfile, error) {
	var user domain.UserProfile
	query := `SELECT * FROM users WHERE telegram_id = $1`

	err := r.db.GetContext(ctx, &user, query, telegramID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("repository: get user failed: %w", err)
	}
	return &user, nil
}

func (r *PostgresUserRepository) Update(ctx context.Context, user *domain.UserProfile) error {
	query := `
		UPDATE users SET
			first_name = :first_name,
			username = :username,
			phone = :phone,
			avatar_url = :avatar_url,
			gender = :gender,
			birth_date = :birth_date,
			age = :age,
			height = :height,
			weight = :weight,
			target_weight = :target_weight,
			activity_level = :activity_level,
			target_goal = :target_goal,
			daily_calories_goal = :daily_calories_goal,
			daily_protein_goal = :daily_protein_goal,
			daily_fats_goal = :daily_fats_goal,
			daily_carbs_goal = :daily_carbs_goal,
			daily_water_goal_ml = :daily_water_goal_ml,
			updated_at = :updated_at
		WHERE telegram_id = :telegram_id`

	result, err := r.db.NamedExecContext(ctx, query, user)
	if err != nil {
		return fmt.Errorf("repository: update user failed: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (r *PostgresUserRepository) ListAll(ctx context.Context) ([]*domain.UserProfile, error) {
	users := []*domain.UserProfile{}
	query := `SELECT * FROM users ORDER BY telegram_id`

	if err := r.db.SelectContext(ctx, &users, query); err != nil {
		return nil, fmt.Errorf("repository: list users failed: %w", err)
	}
	return users, nil
}
