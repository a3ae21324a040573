package services

import (
	"math"
	"time"

	"github.com/foodtrack/foodtrack-server/internal/core/domain"
)

// Fixed energy densities for the macro split: 4 kcal/g for protein and
// carbs, 9 kcal/g for fat. The split itself is 30/30/40.
const (
	proteinShare = 0.30
	fatsShare    = 0.30
	carbsShare   = 0.40

	kcalPerGramProtein = 4
	kcalPerGramFat     = 9
	kcalPerGramCarb    = 4
)

var activityMultipliers = map[string]float64{
	domain.ActivitySedentary: 1.2,
	domain.ActivityLight:     1.375,
	domain.ActivityModerate:  1.55,
	domain.ActivityActive:    1.725,
}

// BMR computes the Harris-Benedict basal metabolic rate. Callers are
// responsible for checking the inputs are positive first.
func BMR(gender string, weightKG, heightCM float64, age int) float64 {
	if gender == domain.GenderFemale {
		return 447.6 + 9.2*weightKG + 3.1*heightCM - 4.3*float64(age)
	}
	return 88.36 + 13.4*weightKG + 4.8*heightCM - 5.7*float64(age)
}

// goalMultiplier is categorical by target goal. The comparative
// current-vs-target-weight rule was deliberately not adopted; the two can
// disagree and must never be mixed.
func goalMultiplier(targetGoal string) float64 {
	switch targetGoal {
	case domain.GoalLoss:
		return 0.85
	case domain.GoalGain:
		return 1.15
	default:
		return 1.0
	}
}

// CalculateGoals derives the four daily goals from a profile. It is a
// pure function: no I/O, no mutation of the profile. A profile missing
// age, weight or height yields ErrProfileIncomplete so callers skip goal
// derivation instead of storing zeros.
func CalculateGoals(u *domain.UserProfile, now time.Time) (domain.MacroGoals, error) {
	if !u.HasGoalInputs(now) {
		return domain.MacroGoals{}, domain.ErrProfileIncomplete
	}

	bmr := BMR(u.Gender, u.WeightKG, u.HeightCM, u.CurrentAge(now))

	activity, ok := activityMultipliers[u.ActivityLevel]
	if !ok {
		activity = 1.2
	}

	// TDEE is rounded before the goal adjustment, matching how the
	// stored goals were historically derived.
	tdee := math.Round(bmr * activity)
	calories := int(math.Round(tdee * goalMultiplier(u.TargetGoal)))

	return domain.MacroGoals{
		Calories: calories,
		Protein:  int(math.Round(float64(calories) * proteinShare / kcalPerGramProtein)),
		Fats:     int(math.Round(float64(calories) * fatsShare / kcalPerGramFat)),
		Carbs:    int(math.Round(float64(calories) * carbsShare / kcalPerGramCarb)),
	}, nil
}
