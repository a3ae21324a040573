package services

import (
	"context"

	"github.com/foodtrack/foodtrack-server/internal/core/domain"
)

type MeasurementService struct {
	repo domain.MeasurementRepository
}

func NewMeasurementService(repo domain.MeasurementRepository) *MeasurementService {
	return &MeasurementService{repo: repo}
}

type MeasurementInput struct {
	UserID   int64
	WeightKG float64
	ArmL     float64
	ArmR     float64
	Chest    float64
	Waist    float64
	Hips     float64
	LegL     float64
	LegR     float64
}

func (s *MeasurementService) Add(ctx context.Context, input MeasurementInput) (*domain.Measurement, error) {
	m, err := domain.NewMeasurement(input.UserID, input.WeightKG)
	if err != nil {
		return nil, err
	}

	m.ArmL = input.ArmL
	m.ArmR = input.ArmR
	m.Chest = input.Chest
	m.Waist = input.Waist
	m.Hips = input.Hips
	m.LegL = input.LegL
	m.LegR = input.LegR

	if err := s.repo.Insert(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *MeasurementService) History(ctx context.Context, userID int64) ([]*domain.Measurement, error) {
	return s.repo.ListByUser(ctx, userID)
}
