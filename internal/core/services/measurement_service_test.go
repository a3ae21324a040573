package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foodtrack/foodtrack-server/internal/core/domain"
	"github.com/foodtrack/foodtrack-server/internal/core/services"
)

type stubMeasurementRepo struct {
	rows []*domain.Measurement
	err  error
}

func (s *stubMeasurementRepo) Insert(ctx context.Context, m *domain.Measurement) error {
	if s.err != nil {
		return s.err
	}
	s.rows = append(s.rows, m)
	return nil
}

func (s *stubMeasurementRepo) ListByUser(ctx context.Context, userID int64) ([]*domain.Measurement, error) {
	if s.err != nil {
		return nil, s.err
	}
	out := []*domain.Measurement{}
	for _, m := range s.rows {
		if m.UserID == userID {
			out = append(out, m)
		}
	}
	return out, nil
}

func TestMeasurementService_Add(t *testing.T) {
	t.Run("stores weight with optional body measurements", func(t *testing.T) {
		repo := &stubMeasurementRepo{}
		svc := services.NewMeasurementService(repo)

		m, err := svc.Add(context.Background(), services.MeasurementInput{
			UserID:   42,
			WeightKG: 79.4,
			Waist:    82.5,
			Chest:    101,
		})

		require.NoError(t, err)
		require.Len(t, repo.rows, 1)
		assert.Equal(t, 79.4, m.WeightKG)
		assert.Equal(t, 82.5, m.Waist)
		assert.Equal(t, 101.0, m.Chest)
		assert.Zero(t, m.Hips)
		assert.False(t, m.CreatedAt.IsZero())
	})

	t.Run("rejects a measurement without weight", func(t *testing.T) {
		svc := services.NewMeasurementService(&stubMeasurementRepo{})

		_, err := svc.Add(context.Background(), services.MeasurementInput{
			UserID: 42,
			Waist:  82.5,
		})

		assert.ErrorIs(t, err, domain.ErrWeightRequired)
	})

	t.Run("rejects an invalid user id", func(t *testing.T) {
		svc := services.NewMeasurementService(&stubMeasurementRepo{})

		_, err := svc.Add(context.Background(), services.MeasurementInput{WeightKG: 79.4})

		assert.ErrorIs(t, err, domain.ErrInvalidTelegramID)
	})
}

func TestMeasurementService_History(t *testing.T) {
	repo := &stubMeasurementRepo{}
	svc := services.NewMeasurementService(repo)

	for _, w := range []float64{81.0, 80.2, 79.4} {
		_, err := svc.Add(context.Background(), services.MeasurementInput{UserID: 42, WeightKG: w})
		require.NoError(t, err)
	}
	_, err := svc.Add(context.Background(), services.MeasurementInput{UserID: 7, WeightKG: 95})
	require.NoError(t, err)

	history, err := svc.History(context.Background(), 42)

	require.NoError(t, err)
	require.Len(t, history, 3)
	assert.Equal(t, 81.0, history[0].WeightKG)
	assert.Equal(t, 79.4, history[2].WeightKG)
}
