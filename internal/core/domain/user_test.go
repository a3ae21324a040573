package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUserProfile(t *testing.T) {
	t.Run("defaults applied", func(t *testing.T) {
		u, err := NewUserProfile(42, "Ivan", "ivan94")
		require.NoError(t, err)

		assert.Equal(t, int64(42), u.TelegramID)
		assert.Equal(t, DefaultCaloriesGoal, u.DailyCaloriesGoal)
		assert.Equal(t, DefaultWaterGoalML, u.DailyWaterGoalML)
	})

	t.Run("rejects non-positive telegram id", func(t *testing.T) {
		_, err := NewUserProfile(0, "Ivan", "")
		assert.ErrorIs(t, err, ErrInvalidTelegramID)
	})
}

func TestUserProfile_CurrentAge(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	t.Run("birth date wins over stored age", func(t *testing.T) {
		birth := time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC)
		u := &UserProfile{Age: 99, BirthDate: &birth}
		assert.Equal(t, 34, u.CurrentAge(now))
	})

	t.Run("stored age used when no birth date", func(t *testing.T) {
		u := &UserProfile{Age: 25}
		assert.Equal(t, 25, u.CurrentAge(now))
	})
}

func TestUserProfile_HasGoalInputs(t *testing.T) {
	now := time.Now().UTC()

	complete := &UserProfile{Age: 30, WeightKG: 80, HeightCM: 180}
	assert.True(t, complete.HasGoalInputs(now))

	tests := []struct {
		name string
		mut  func(u *UserProfile)
	}{
		{"zero age", func(u *UserProfile) { u.Age = 0 }},
		{"zero weight", func(u *UserProfile) { u.WeightKG = 0 }},
		{"zero height", func(u *UserProfile) { u.HeightCM = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := &UserProfile{Age: 30, WeightKG: 80, HeightCM: 180}
			tt.mut(u)
			assert.False(t, u.HasGoalInputs(now))
		})
	}
}

func TestUserProfile_SetGoals(t *testing.T) {
	u := &UserProfile{}
	g := MacroGoals{Calories: 2200, Protein: 165, Fats: 73, Carbs: 220}

	u.SetGoals(g)

	assert.Equal(t, g, u.Goals())
}

func TestDailyChecklist_WorkoutDone(t *testing.T) {
	tests := []struct {
		name     string
		live     bool
		recorded bool
		want     bool
	}{
		{"neither", false, false, false},
		{"live only", true, false, true},
		{"recorded only", false, true, true},
		{"both", true, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &DailyChecklist{DidLiveWorkout: tt.live, DidRecordedWorkout: tt.recorded}
			assert.Equal(t, tt.want, c.WorkoutDone())
		})
	}
}

func TestNewFoodLogEntry_Validation(t *testing.T) {
	t.Run("valid entry", func(t *testing.T) {
		e, err := NewFoodLogEntry(42, " Гречка с курицей ", 450, 35, 10, 55, 300, "B", SourceText)
		require.NoError(t, err)
		assert.Equal(t, "Гречка с курицей", e.Name)
		assert.Equal(t, "B", e.Grade)
	})

	t.Run("bad grade", func(t *testing.T) {
		_, err := NewFoodLogEntry(42, "Борщ", 200, 10, 8, 20, 350, "E", SourceText)
		assert.ErrorIs(t, err, ErrInvalidGrade)
	})

	t.Run("empty name", func(t *testing.T) {
		_, err := NewFoodLogEntry(42, "  ", 200, 10, 8, 20, 350, "A", SourceImage)
		assert.ErrorIs(t, err, ErrFoodNameEmpty)
	})
}
