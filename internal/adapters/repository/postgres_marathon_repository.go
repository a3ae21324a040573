package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/jmoiron/sqlx/types"
	"github.com/lib/pq"

	"github.com/foodtrack/foodtrack-server/internal/core/domain"
)

type PostgresMarathonRepository struct {
	db *sqlx.DB
}

func NewPostgresMarathonRepository(db *sqlx.DB) *PostgresMarathonRepository {
	return &PostgresMarathonRepository{db: db}
}

func (r *PostgresMarathonRepository) GetByID(ctx context.Context, id int64) (*domain.Marathon, error) {
	var m domain.Marathon
	query := `SELECT * FROM marathons WHERE id = $1`

	err := r.db.GetContext(ctx, &m, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrMarathonNotFound
		}
		return nil, err
	}
	return &m, nil
}

func (r *PostgresMarathonRepository) ListActive(ctx context.Context) ([]*domain.Marathon, error) {
	marathons := []*domain.Marathon{}
	query := `SELECT * FROM marathons WHERE start_date <= now() ORDER BY start_date DESC`

	if err := r.db.SelectContext(ctx, &marathons, query); err != nil {
		return nil, err
	}
	return marathons, nil
}

func (r *PostgresMarathonRepository) AddParticipant(ctx context.Context, p *domain.MarathonParticipant) error {
	query := `
		INSERT INTO marathon_participants (marathon_id, user_id, start_weight, joined_at)
		VALUES (:marathon_id, :user_id, :start_weight, :joined_at)`

	_, err := r.db.NamedExecContext(ctx, query, p)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) {
			if pqErr.Code == "23505" {
				return domain.ErrAlreadyJoined
			}
			if pqErr.Code == "23503" {
				return domain.ErrUserNotFound
			}
		}
		return err
	}
	return nil
}

func (r *PostgresMarathonRepository) HasParticipant(ctx context.Context, marathonID, userID int64) (bool, error) {
	var exists bool
	query := `
		SELECT EXISTS (
			SELECT 1 FROM marathon_participants
			WHERE marathon_id = $1 AND user_id = $2
		)`

	if err := r.db.GetContext(ctx, &exists, query, marathonID, userID); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *PostgresMarathonRepository) SaveAssessment(ctx context.Context, a *domain.MarathonAssessment) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}

	query := `
		INSERT INTO marathon_assessments (id, marathon_id, user_id, type, answers, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.db.ExecContext(ctx, query,
		a.ID, a.MarathonID, a.UserID, a.Type, types.JSONText(a.Answers), a.CreatedAt)
	return err
}

func (r *PostgresMarathonRepository) ListLadderRows(ctx context.Context, marathonID int64) ([]*domain.LadderRow, error) {
	rows := []*domain.LadderRow{}

	query := `
		SELECT p.user_id, u.first_name, u.avatar_url, p.start_weight,
		       u.weight, u.target_weight
		FROM marathon_participants p
		JOIN users u ON u.telegram_id = p.user_id
		WHERE p.marathon_id = $1`

	if err := r.db.SelectContext(ctx, &rows, query, marathonID); err != nil {
		return nil, err
	}
	return rows, nil
}
