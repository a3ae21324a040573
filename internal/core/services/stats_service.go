package services

import (
	"context"
	"time"

	"github.com/foodtrack/foodtrack-server/internal/core/domain"
)

type StatsService struct {
	userRepo   domain.UserRepository
	foodRepo   domain.FoodLogRepository
	waterRepo  domain.WaterLogRepository
	weightRepo domain.WeightLogRepository
}

func NewStatsService(userRepo domain.UserRepository, foodRepo domain.FoodLogRepository, waterRepo domain.WaterLogRepository, weightRepo domain.WeightLogRepository) *StatsService {
	return &StatsService{
		userRepo:   userRepo,
		foodRepo:   foodRepo,
		waterRepo:  waterRepo,
		weightRepo: weightRepo,
	}
}

// Aggregate sums macro fields across entries. The sum over an empty set
// is the zero total, not an error.
func Aggregate(entries []*domain.FoodLogEntry) domain.MacroTotals {
	var totals domain.MacroTotals
	for _, e := range entries {
		totals = totals.Add(e)
	}
	return totals
}

// WaterTotal returns the signed sum of water amounts. Negative
// correction entries may drive it below zero; display clamping is the
// caller's concern.
func WaterTotal(entries []*domain.WaterLogEntry) int {
	total := 0
	for _, e := range entries {
		total += e.AmountML
	}
	return total
}

// DailyStats assembles the current-vs-goal snapshot for the day
// containing now.
func (s *StatsService) DailyStats(ctx context.Context, userID int64, now time.Time) (*domain.DailyStats, error) {
	user, err := s.userRepo.GetByTelegramID(ctx, userID)
	if err != nil {
		return nil, err
	}

	dayStart, dayEnd := domain.DayBounds(now)

	foodLogs, err := s.foodRepo.ListByUserAndRange(ctx, userID, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}

	waterLogs, err := s.waterRepo.ListByUserAndRange(ctx, userID, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}

	recent, err := s.foodRepo.ListRecent(ctx, userID, StreakHistoryLimit)
	if err != nil {
		return nil, err
	}
	timestamps := make([]time.Time, 0, len(recent))
	for _, e := range recent {
		timestamps = append(timestamps, e.CreatedAt)
	}

	rawWater := WaterTotal(waterLogs)

	return &domain.DailyStats{
		User:       user,
		Goals:      user.Goals(),
		Current:    Aggregate(foodLogs),
		WaterML:    max(0, rawWater),
		RawWaterML: rawWater,
		Streak:     CalculateStreak(timestamps, now),
		Logs:       foodLogs,
	}, nil
}

// HistoryDay returns totals-vs-goals for the day containing date.
func (s *StatsService) HistoryDay(ctx context.Context, userID int64, date time.Time) (*domain.DayHistory, error) {
	user, err := s.userRepo.GetByTelegramID(ctx, userID)
	if err != nil {
		return nil, err
	}

	dayStart, dayEnd := domain.DayBounds(date)
	logs, err := s.foodRepo.ListByUserAndRange(ctx, userID, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}

	return &domain.DayHistory{
		Totals: Aggregate(logs),
		Goals:  user.Goals(),
	}, nil
}

// ChartsData builds the weight trend (up to 100 points) and per-day
// water totals for the progress charts.
func (s *StatsService) ChartsData(ctx context.Context, userID int64) (*domain.ChartsData, error) {
	weights, err := s.weightRepo.ListByUser(ctx, userID, 100)
	if err != nil {
		return nil, err
	}

	waters, err := s.waterRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	weightPoints := make([]domain.ChartPoint, 0, len(weights))
	for _, w := range weights {
		weightPoints = append(weightPoints, domain.ChartPoint{
			Date:  domain.DayKey(w.CreatedAt),
			Value: w.WeightKG,
		})
	}

	grouped := make(map[string]int)
	order := make([]string, 0)
	for _, w := range waters {
		key := domain.DayKey(w.CreatedAt)
		if _, seen := grouped[key]; !seen {
			order = append(order, key)
		}
		grouped[key] += w.AmountML
	}

	waterPoints := make([]domain.ChartPoint, 0, len(order))
	for _, key := range order {
		waterPoints = append(waterPoints, domain.ChartPoint{Date: key, Value: float64(grouped[key])})
	}

	return &domain.ChartsData{Weight: weightPoints, Water: waterPoints}, nil
}
