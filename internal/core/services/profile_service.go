package services

import (
	"context"
	"errors"
	"time"

	"github.com/foodtrack/foodtrack-server/internal/core/domain"
)

type ProfileService struct {
	userRepo domain.UserRepository
}

func NewProfileService(userRepo domain.UserRepository) *ProfileService {
	return &ProfileService{userRepo: userRepo}
}

type SyncProfileInput struct {
	TelegramID     int64
	FirstName      string
	Username       string
	AvatarURL      string
	Gender         string
	BirthDate      *time.Time
	Age            int
	HeightCM       float64
	WeightKG       float64
	TargetWeightKG float64
	ActivityLevel  string
	TargetGoal     string
	WaterGoalML    int
}

// Sync upserts the profile coming from the mini-app onboarding form and
// recomputes the four daily goals together. When the profile is still
// incomplete the goals are left untouched; the caller routes the user
// back to data entry instead of showing a zero calorie goal.
func (s *ProfileService) Sync(ctx context.Context, input SyncProfileInput) (*domain.UserProfile, error) {
	if input.TelegramID <= 0 {
		return nil, domain.ErrInvalidTelegramID
	}

	now := time.Now()

	user, err := s.userRepo.GetByTelegramID(ctx, input.TelegramID)
	if err != nil {
		if !errors.Is(err, domain.ErrUserNotFound) {
			return nil, err
		}
		user, err = domain.NewUserProfile(input.TelegramID, input.FirstName, input.Username)
		if err != nil {
			return nil, err
		}
	}

	if input.FirstName != "" {
		user.FirstName = input.FirstName
	}
	if input.Username != "" {
		user.Username = input.Username
	}
	if input.AvatarURL != "" {
		user.AvatarURL = input.AvatarURL
	}
	if input.Gender != "" {
		user.Gender = input.Gender
	}
	if input.BirthDate != nil {
		user.BirthDate = input.BirthDate
	}
	if input.Age > 0 {
		user.Age = input.Age
	}
	if input.HeightCM > 0 {
		user.HeightCM = input.HeightCM
	}
	if input.WeightKG > 0 {
		user.WeightKG = input.WeightKG
	}
	if input.TargetWeightKG > 0 {
		user.TargetWeightKG = input.TargetWeightKG
	}
	if input.ActivityLevel != "" {
		user.ActivityLevel = input.ActivityLevel
	}
	if input.TargetGoal != "" {
		user.TargetGoal = input.TargetGoal
	}
	if input.WaterGoalML > 0 {
		user.DailyWaterGoalML = input.WaterGoalML
	}

	if user.BirthDate != nil {
		user.Age = domain.AgeAt(*user.BirthDate, now)
	}

	if goals, err := CalculateGoals(user, now); err == nil {
		user.SetGoals(goals)
	} else if !errors.Is(err, domain.ErrProfileIncomplete) {
		return nil, err
	}

	user.UpdatedAt = now.UTC()

	if err := s.userRepo.Upsert(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Register creates the minimal profile the bot's /start flow needs,
// leaving onboarding to the mini-app.
func (s *ProfileService) Register(ctx context.Context, telegramID int64, firstName, username string) (*domain.UserProfile, error) {
	existing, err := s.userRepo.GetByTelegramID(ctx, telegramID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	user, err := domain.NewUserProfile(telegramID, firstName, username)
	if err != nil {
		return nil, err
	}

	if err := s.userRepo.Upsert(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// SavePhone stores the phone number captured by the bot's contact flow.
func (s *ProfileService) SavePhone(ctx context.Context, telegramID int64, phone string) error {
	user, err := s.userRepo.GetByTelegramID(ctx, telegramID)
	if err != nil {
		return err
	}

	user.Phone = phone
	user.UpdatedAt = time.Now().UTC()
	return s.userRepo.Update(ctx, user)
}

func (s *ProfileService) Get(ctx context.Context, telegramID int64) (*domain.UserProfile, error) {
	return s.userRepo.GetByTelegramID(ctx, telegramID)
}
