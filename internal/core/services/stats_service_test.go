package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foodtrack/foodtrack-server/internal/adapters/repository"
	"github.com/foodtrack/foodtrack-server/internal/core/domain"
	"github.com/foodtrack/foodtrack-server/internal/core/services"
)

type stubWaterRepo struct {
	entries []*domain.WaterLogEntry
	err     error
}

func (s *stubWaterRepo) Insert(ctx context.Context, entry *domain.WaterLogEntry) error {
	if s.err != nil {
		return s.err
	}
	s.entries = append(s.entries, entry)
	return nil
}

func (s *stubWaterRepo) ListByUserAndRange(ctx context.Context, userID int64, from, to time.Time) ([]*domain.WaterLogEntry, error) {
	if s.err != nil {
		return nil, s.err
	}
	var list []*domain.WaterLogEntry
	for _, e := range s.entries {
		if e.UserID == userID && !e.CreatedAt.Before(from) && !e.CreatedAt.After(to) {
			list = append(list, e)
		}
	}
	return list, nil
}

func (s *stubWaterRepo) ListByUser(ctx context.Context, userID int64) ([]*domain.WaterLogEntry, error) {
	if s.err != nil {
		return nil, s.err
	}
	var list []*domain.WaterLogEntry
	for _, e := range s.entries {
		if e.UserID == userID {
			list = append(list, e)
		}
	}
	return list, nil
}

type stubWeightRepo struct {
	logs    []*domain.WeightLogEntry
	upserts []*domain.WeightLogEntry
	err     error
}

func (s *stubWeightRepo) UpsertDay(ctx context.Context, entry *domain.WeightLogEntry) error {
	if s.err != nil {
		return s.err
	}
	s.upserts = append(s.upserts, entry)
	s.logs = append(s.logs, entry)
	return nil
}

func (s *stubWeightRepo) ListByUser(ctx context.Context, userID int64, limit int) ([]*domain.WeightLogEntry, error) {
	if s.err != nil {
		return nil, s.err
	}
	var list []*domain.WeightLogEntry
	for _, e := range s.logs {
		if e.UserID == userID {
			list = append(list, e)
		}
	}
	if len(list) > limit {
		list = list[:limit]
	}
	return list, nil
}

func (s *stubWeightRepo) CountInRange(ctx context.Context, userID int64, from, to time.Time) (int, error) {
	if s.err != nil {
		return 0, s.err
	}
	count := 0
	for _, e := range s.logs {
		if e.UserID == userID && !e.CreatedAt.Before(from) && !e.CreatedAt.After(to) {
			count++
		}
	}
	return count, nil
}

func waterAt(userID int64, amount int, at time.Time) *domain.WaterLogEntry {
	return &domain.WaterLogEntry{UserID: userID, AmountML: amount, CreatedAt: at}
}

func TestAggregate(t *testing.T) {
	t.Run("No entries yields the zero identity", func(t *testing.T) {
		assert.Equal(t, domain.MacroTotals{}, services.Aggregate(nil))
	})

	t.Run("Sums every macro independently", func(t *testing.T) {
		entries := []*domain.FoodLogEntry{
			{Calories: 500, Protein: 30, Fats: 20, Carbs: 45},
			{Calories: 300.5, Protein: 10.5, Fats: 5, Carbs: 40},
			{Calories: 200},
		}

		totals := services.Aggregate(entries)
		assert.InDelta(t, 1000.5, totals.Calories, 0.001)
		assert.InDelta(t, 40.5, totals.Protein, 0.001)
		assert.InDelta(t, 25, totals.Fats, 0.001)
		assert.InDelta(t, 85, totals.Carbs, 0.001)
	})
}

func TestWaterTotal(t *testing.T) {
	entries := []*domain.WaterLogEntry{
		{AmountML: 500},
		{AmountML: 300},
		{AmountML: -200},
	}
	assert.Equal(t, 600, services.WaterTotal(entries))
}

func TestStatsService_DailyStats(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	newFixture := func(t *testing.T) (*services.StatsService, *repository.InMemoryFoodLogRepository, *stubWaterRepo) {
		userRepo := repository.NewInMemoryUserRepository()
		foodRepo := repository.NewInMemoryFoodLogRepository()
		waterRepo := &stubWaterRepo{}
		weightRepo := &stubWeightRepo{}

		user, err := domain.NewUserProfile(42, "Ivan", "ivan")
		require.NoError(t, err)
		user.DailyProteinGoal = 150
		require.NoError(t, userRepo.Upsert(ctx, user))

		return services.NewStatsService(userRepo, foodRepo, waterRepo, weightRepo), foodRepo, waterRepo
	}

	t.Run("Empty day", func(t *testing.T) {
		svc, _, _ := newFixture(t)

		stats, err := svc.DailyStats(ctx, 42, now)
		require.NoError(t, err)

		assert.Equal(t, domain.MacroTotals{}, stats.Current)
		assert.Equal(t, 0, stats.WaterML)
		assert.Equal(t, 0, stats.Streak)
		assert.Empty(t, stats.Logs)
		assert.Equal(t, domain.DefaultCaloriesGoal, stats.Goals.Calories)
	})

	t.Run("Negative water sum is clamped for display only", func(t *testing.T) {
		svc, _, waterRepo := newFixture(t)
		waterRepo.entries = []*domain.WaterLogEntry{
			waterAt(42, 200, now),
			waterAt(42, -500, now),
		}

		stats, err := svc.DailyStats(ctx, 42, now)
		require.NoError(t, err)

		assert.Equal(t, 0, stats.WaterML)
		assert.Equal(t, -300, stats.RawWaterML)
	})

	t.Run("Streak counts today's log", func(t *testing.T) {
		svc, foodRepo, _ := newFixture(t)

		entry, err := domain.NewFoodLogEntry(42, "Овсянка", 350, 12, 6, 60, 250, "B", "text")
		require.NoError(t, err)
		require.NoError(t, foodRepo.Insert(ctx, entry))

		stats, err := svc.DailyStats(ctx, 42, now)
		require.NoError(t, err)

		assert.Equal(t, 1, stats.Streak)
		assert.Len(t, stats.Logs, 1)
		assert.InDelta(t, 350, stats.Current.Calories, 0.001)
	})

	t.Run("Unknown user", func(t *testing.T) {
		svc, _, _ := newFixture(t)

		_, err := svc.DailyStats(ctx, 777, now)
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
	})
}

func TestStatsService_ChartsData(t *testing.T) {
	ctx := context.Background()

	userRepo := repository.NewInMemoryUserRepository()
	foodRepo := repository.NewInMemoryFoodLogRepository()
	waterRepo := &stubWaterRepo{}
	weightRepo := &stubWeightRepo{}
	svc := services.NewStatsService(userRepo, foodRepo, waterRepo, weightRepo)

	day1 := time.Date(2026, 3, 1, 10, 0, 0, 0, time.Local)
	day2 := time.Date(2026, 3, 2, 10, 0, 0, 0, time.Local)

	weightRepo.logs = []*domain.WeightLogEntry{
		{UserID: 42, WeightKG: 80.5, CreatedAt: day1},
		{UserID: 42, WeightKG: 80.1, CreatedAt: day2},
	}
	waterRepo.entries = []*domain.WaterLogEntry{
		waterAt(42, 500, day1),
		waterAt(42, 300, day1.Add(4*time.Hour)),
		waterAt(42, 700, day2),
	}

	charts, err := svc.ChartsData(ctx, 42)
	require.NoError(t, err)

	require.Len(t, charts.Weight, 2)
	assert.Equal(t, "2026-03-01", charts.Weight[0].Date)
	assert.InDelta(t, 80.5, charts.Weight[0].Value, 0.001)

	require.Len(t, charts.Water, 2, "same-day water entries are grouped")
	assert.Equal(t, domain.ChartPoint{Date: "2026-03-01", Value: 800}, charts.Water[0])
	assert.Equal(t, domain.ChartPoint{Date: "2026-03-02", Value: 700}, charts.Water[1])
}
