package services

import (
	"context"
	"errors"
	"time"

	"github.com/foodtrack/foodtrack-server/internal/core/domain"
)

// Checklist fact weights. They sum to exactly 100, so the index can
// never leave [0, 100].
const (
	weightFoodLogged   = 40
	weightWeightLogged = 20
	weightWaterGoalMet = 20
	weightWorkoutDone  = 20

	// waterGoalShare is how much of the daily water goal counts as met.
	waterGoalShare = 0.8
)

type DisciplineService struct {
	userRepo      domain.UserRepository
	foodRepo      domain.FoodLogRepository
	waterRepo     domain.WaterLogRepository
	weightRepo    domain.WeightLogRepository
	checklistRepo domain.ChecklistRepository
}

func NewDisciplineService(userRepo domain.UserRepository, foodRepo domain.FoodLogRepository, waterRepo domain.WaterLogRepository, weightRepo domain.WeightLogRepository, checklistRepo domain.ChecklistRepository) *DisciplineService {
	return &DisciplineService{
		userRepo:      userRepo,
		foodRepo:      foodRepo,
		waterRepo:     waterRepo,
		weightRepo:    weightRepo,
		checklistRepo: checklistRepo,
	}
}

// ScoreDiscipline turns the four checklist facts into the 0-100 index.
// Boundaries are half-open on the lower side: exactly 40 is red and
// exactly 80 is yellow.
func ScoreDiscipline(facts domain.ChecklistFacts) domain.DisciplineIndex {
	index := 0
	if facts.FoodLogged {
		index += weightFoodLogged
	}
	if facts.WeightLogged {
		index += weightWeightLogged
	}
	if facts.WaterGoalMet {
		index += weightWaterGoalMet
	}
	if facts.WorkoutDone {
		index += weightWorkoutDone
	}

	var level, status string
	switch {
	case index > 80:
		level, status = domain.LevelGreen, "Отличный результат!"
	case index > 40:
		level, status = domain.LevelYellow, "Есть над чем поработать"
	default:
		level, status = domain.LevelRed, "Нужно взять себя в руки"
	}

	return domain.DisciplineIndex{
		Index:      index,
		Level:      level,
		StatusText: status,
		Checklist:  facts,
	}
}

// GetIndex derives today's facts from the day's logs (food, weight,
// water) and the stored checklist row (workout flags), then scores them.
// An absent checklist row means no workout was checked in.
func (s *DisciplineService) GetIndex(ctx context.Context, userID int64, now time.Time) (*domain.DisciplineIndex, error) {
	user, err := s.userRepo.GetByTelegramID(ctx, userID)
	if err != nil {
		return nil, err
	}

	dayStart, dayEnd := domain.DayBounds(now)

	foodCount, err := s.foodRepo.CountInRange(ctx, userID, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}

	weightCount, err := s.weightRepo.CountInRange(ctx, userID, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}

	waterLogs, err := s.waterRepo.ListByUserAndRange(ctx, userID, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}

	checklist, err := s.checklistRepo.Get(ctx, userID, domain.DayKey(now))
	if err != nil {
		if !errors.Is(err, domain.ErrChecklistNotFound) {
			return nil, err
		}
		checklist = &domain.DailyChecklist{UserID: userID, Date: domain.DayKey(now)}
	}

	facts := domain.ChecklistFacts{
		FoodLogged:   foodCount > 0,
		WeightLogged: weightCount > 0,
		WaterGoalMet: float64(WaterTotal(waterLogs)) >= waterGoalShare*float64(user.WaterGoalML()),
		WorkoutDone:  checklist.WorkoutDone(),
	}

	index := ScoreDiscipline(facts)
	return &index, nil
}

// CheckinInput carries the flags a daily check-in may set. Nil pointers
// leave the stored value untouched, which makes replays idempotent.
type CheckinInput struct {
	UserID             int64
	Date               string
	DidLiveWorkout     *bool
	DidRecordedWorkout *bool
}

// SetCheckin merges the input into the (user, date) checklist row and
// upserts it.
func (s *DisciplineService) SetCheckin(ctx context.Context, input CheckinInput) (*domain.DailyChecklist, error) {
	if input.Date == "" {
		input.Date = domain.DayKey(time.Now())
	}
	if _, err := time.Parse(domain.DayKeyLayout, input.Date); err != nil {
		return nil, err
	}

	checklist, err := s.checklistRepo.Get(ctx, input.UserID, input.Date)
	if err != nil {
		if !errors.Is(err, domain.ErrChecklistNotFound) {
			return nil, err
		}
		checklist = &domain.DailyChecklist{UserID: input.UserID, Date: input.Date}
	}

	if input.DidLiveWorkout != nil {
		checklist.DidLiveWorkout = *input.DidLiveWorkout
	}
	if input.DidRecordedWorkout != nil {
		checklist.DidRecordedWorkout = *input.DidRecordedWorkout
	}
	checklist.UpdatedAt = time.Now().UTC()

	if err := s.checklistRepo.Upsert(ctx, checklist); err != nil {
		return nil, err
	}
	return checklist, nil
}
