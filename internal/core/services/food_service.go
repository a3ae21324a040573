package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/foodtrack/foodtrack-server/internal/core/domain"
)

// Notifier is the fire-and-forget outbound message capability. Delivery
// failures are never fatal to the operation they are attached to.
type Notifier interface {
	Send(ctx context.Context, userID int64, text string) error
}

type FoodService struct {
	foodRepo domain.FoodLogRepository
	userRepo domain.UserRepository
	notifier Notifier
}

func NewFoodService(foodRepo domain.FoodLogRepository, userRepo domain.UserRepository, notifier Notifier) *FoodService {
	return &FoodService{
		foodRepo: foodRepo,
		userRepo: userRepo,
		notifier: notifier,
	}
}

type LogFoodInput struct {
	UserID   int64
	Name     string
	Calories float64
	Protein  float64
	Fats     float64
	Carbs    float64
	WeightG  float64
	Grade    string
	Source   string
}

type EditFoodInput struct {
	ID       string
	UserID   int64
	Name     string
	Calories float64
	Protein  float64
	Fats     float64
	Carbs    float64
	WeightG  float64
}

// Log persists a new food entry and then runs the overlimit check for
// the day it lands in. The check is best-effort: its failures never
// surface to the caller.
func (s *FoodService) Log(ctx context.Context, input LogFoodInput) (*domain.FoodLogEntry, error) {
	entry, err := domain.NewFoodLogEntry(input.UserID, input.Name, input.Calories, input.Protein, input.Fats, input.Carbs, input.WeightG, input.Grade, input.Source)
	if err != nil {
		return nil, err
	}

	if err := s.foodRepo.Insert(ctx, entry); err != nil {
		return nil, err
	}

	s.checkOverlimit(ctx, input.UserID, input.Calories)

	return entry, nil
}

func (s *FoodService) Edit(ctx context.Context, input EditFoodInput) (*domain.FoodLogEntry, error) {
	entry, err := s.foodRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if entry.UserID != input.UserID {
		return nil, domain.ErrFoodLogNotFound
	}

	if err := entry.ReplaceNutrition(input.Name, input.Calories, input.Protein, input.Fats, input.Carbs, input.WeightG); err != nil {
		return nil, err
	}

	if err := s.foodRepo.Update(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *FoodService) Delete(ctx context.Context, id string, userID int64) error {
	entry, err := s.foodRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if entry.UserID != userID {
		return domain.ErrFoodLogNotFound
	}

	return s.foodRepo.Delete(ctx, id)
}

// checkOverlimit fires a notification exactly once per day: when the
// entry just added is the one that pushed the daily total over the goal.
// previous <= goal && total > goal is the whole edge trigger; there is
// no stored "already over" flag. All failures are logged and swallowed.
func (s *FoodService) checkOverlimit(ctx context.Context, userID int64, addedCalories float64) {
	user, err := s.userRepo.GetByTelegramID(ctx, userID)
	if err != nil {
		log.Printf("overlimit check skipped for user %d: %v", userID, err)
		return
	}
	if user.DailyCaloriesGoal <= 0 {
		return
	}

	dayStart, dayEnd := domain.DayBounds(time.Now())
	logs, err := s.foodRepo.ListByUserAndRange(ctx, userID, dayStart, dayEnd)
	if err != nil {
		log.Printf("overlimit check skipped for user %d: %v", userID, err)
		return
	}

	total := Aggregate(logs).Calories
	previous := total - addedCalories
	goal := float64(user.DailyCaloriesGoal)

	if previous <= goal && total > goal {
		over := int(total - goal)
		text := fmt.Sprintf("🚨 <b>Лимит превышен!</b>\nЛишние: <b>%d ккал</b>.\nНичего страшного, завтра скорректируем!", over)
		if err := s.notifier.Send(ctx, userID, text); err != nil {
			log.Printf("overlimit notification failed for user %d: %v", userID, err)
		}
	}
}
