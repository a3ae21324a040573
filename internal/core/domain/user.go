package domain

import (
	"errors"
	"time"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrProfileIncomplete = errors.New("profile is missing fields required for goal calculation")
	ErrInvalidTelegramID = errors.New("invalid telegram id")
)

const (
	GenderMale   = "male"
	GenderFemale = "female"

	ActivitySedentary = "sedentary"
	ActivityLight     = "light"
	ActivityModerate  = "moderate"
	ActivityActive    = "active"

	GoalLoss        = "loss"
	GoalMaintenance = "maintenance"
	GoalGain        = "gain"

	DefaultWaterGoalML  = 2000
	DefaultCaloriesGoal = 2000
)

type UserProfile struct {
	TelegramID int64  `json:"telegram_id" db:"telegram_id"`
	FirstName  string `json:"first_name" db:"first_name"`
	Username   string `json:"username" db:"username"`
	Phone      string `json:"phone" db:"phone"`
	AvatarURL  string `json:"avatar_url" db:"avatar_url"`

	Gender         string     `json:"gender" db:"gender"`
	BirthDate      *time.Time `json:"birth_date,omitempty" db:"birth_date"`
	Age            int        `json:"age" db:"age"`
	HeightCM       float64    `json:"height" db:"height"`
	WeightKG       float64    `json:"weight" db:"weight"`
	TargetWeightKG float64    `json:"target_weight" db:"target_weight"`
	ActivityLevel  string     `json:"activity_level" db:"activity_level"`
	TargetGoal     string     `json:"target_goal" db:"target_goal"`

	DailyCaloriesGoal int `json:"daily_calories_goal" db:"daily_calories_goal"`
	DailyProteinGoal  int `json:"daily_protein_goal" db:"daily_protein_goal"`
	DailyFatsGoal     int `json:"daily_fats_goal" db:"daily_fats_goal"`
	DailyCarbsGoal    int `json:"daily_carbs_goal" db:"daily_carbs_goal"`
	DailyWaterGoalML  int `json:"daily_water_goal_ml" db:"daily_water_goal_ml"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// MacroGoals is the derived daily target bundle. The four fields are only
// ever written together; a profile either has a complete set or none.
type MacroGoals struct {
	Calories int `json:"calories"`
	Protein  int `json:"protein"`
	Fats     int `json:"fats"`
	Carbs    int `json:"carbs"`
}

// CurrentAge prefers the birth date over the stored age when both exist.
func (u *UserProfile) CurrentAge(now time.Time) int {
	if u.BirthDate != nil {
		return AgeAt(*u.BirthDate, now)
	}
	return u.Age
}

// HasGoalInputs reports whether the profile carries every field the
// metabolic calculator requires. A profile without them must keep its
// goals unset rather than receive a silently wrong zero.
func (u *UserProfile) HasGoalInputs(now time.Time) bool {
	return u.CurrentAge(now) > 0 && u.WeightKG > 0 && u.HeightCM > 0
}

func (u *UserProfile) Goals() MacroGoals {
	return MacroGoals{
		Calories: u.DailyCaloriesGoal,
		Protein:  u.DailyProteinGoal,
		Fats:     u.DailyFatsGoal,
		Carbs:    u.DailyCarbsGoal,
	}
}

// SetGoals replaces all four daily goals at once.
func (u *UserProfile) SetGoals(g MacroGoals) {
	u.DailyCaloriesGoal = g.Calories
	u.DailyProteinGoal = g.Protein
	u.DailyFatsGoal = g.Fats
	u.DailyCarbsGoal = g.Carbs
	u.UpdatedAt = time.Now().UTC()
}

// WaterGoalML falls back to the default when onboarding never set one.
func (u *UserProfile) WaterGoalML() int {
	if u.DailyWaterGoalML > 0 {
		return u.DailyWaterGoalML
	}
	return DefaultWaterGoalML
}

func NewUserProfile(telegramID int64, firstName, username string) (*UserProfile, error) {
	if telegramID <= 0 {
		return nil, ErrInvalidTelegramID
	}

	now := time.Now().UTC()
	return &UserProfile{
		TelegramID:        telegramID,
		FirstName:         firstName,
		Username:          username,
		DailyCaloriesGoal: DefaultCaloriesGoal,
		DailyWaterGoalML:  DefaultWaterGoalML,
		CreatedAt:         now,
		UpdatedAt:         now,
	}, nil
}
