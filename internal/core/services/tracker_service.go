package services

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/foodtrack/foodtrack-server/internal/core/domain"
)

type TrackerService struct {
	userRepo   domain.UserRepository
	waterRepo  domain.WaterLogRepository
	weightRepo domain.WeightLogRepository
}

func NewTrackerService(userRepo domain.UserRepository, waterRepo domain.WaterLogRepository, weightRepo domain.WeightLogRepository) *TrackerService {
	return &TrackerService{
		userRepo:   userRepo,
		waterRepo:  waterRepo,
		weightRepo: weightRepo,
	}
}

// AddWater records a signed amount. Negative amounts are corrections;
// clamping happens only at display time.
func (s *TrackerService) AddWater(ctx context.Context, userID int64, amountML int) (*domain.WaterLogEntry, error) {
	entry, err := domain.NewWaterLogEntry(userID, amountML)
	if err != nil {
		return nil, err
	}

	if err := s.waterRepo.Insert(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// RecordWeight applies a signed delta to the profile weight, rounded to
// one decimal, recomputes all daily goals together (the goals invariant:
// a weight change never leaves stale goals behind) and overwrites
// today's authoritative weight row.
func (s *TrackerService) RecordWeight(ctx context.Context, userID int64, deltaKG float64) (float64, error) {
	user, err := s.userRepo.GetByTelegramID(ctx, userID)
	if err != nil {
		return 0, err
	}

	newWeight := math.Round((user.WeightKG+deltaKG)*10) / 10
	if newWeight <= 0 {
		return 0, domain.ErrInvalidWeight
	}

	now := time.Now()
	user.WeightKG = newWeight

	if goals, err := CalculateGoals(user, now); err == nil {
		user.SetGoals(goals)
	} else if !errors.Is(err, domain.ErrProfileIncomplete) {
		return 0, err
	}
	user.UpdatedAt = now.UTC()

	if err := s.userRepo.Update(ctx, user); err != nil {
		return 0, err
	}

	entry, err := domain.NewWeightLogEntry(userID, newWeight)
	if err != nil {
		return 0, err
	}
	if err := s.weightRepo.UpsertDay(ctx, entry); err != nil {
		return 0, err
	}

	return newWeight, nil
}
