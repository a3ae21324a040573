package domain

import (
	"errors"
	"time"
)

var ErrChecklistNotFound = errors.New("daily checklist not found")

// DailyChecklist is keyed by (user, date) and upserted idempotently:
// replaying the same checkin twice leaves one row in the same state.
type DailyChecklist struct {
	UserID int64  `json:"user_id" db:"user_id"`
	Date   string `json:"date" db:"date"`

	FoodLogged         bool `json:"food_logged" db:"food_logged"`
	WeightLogged       bool `json:"weight_logged" db:"weight_logged"`
	WaterGoalMet       bool `json:"water_goal_met" db:"water_goal_met"`
	DidLiveWorkout     bool `json:"did_live_workout" db:"did_live_workout"`
	DidRecordedWorkout bool `json:"did_recorded_workout" db:"did_recorded_workout"`

	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// WorkoutDone is the derived fourth checklist fact: either kind of
// workout counts.
func (c *DailyChecklist) WorkoutDone() bool {
	return c.DidLiveWorkout || c.DidRecordedWorkout
}

// ChecklistFacts are the four booleans the discipline index is scored
// from. Food, weight and water facts are derived from the day's logs at
// read time; the workout fact comes from the stored checklist row.
type ChecklistFacts struct {
	FoodLogged   bool `json:"food_logged"`
	WeightLogged bool `json:"weight_logged"`
	WaterGoalMet bool `json:"water_goal_met"`
	WorkoutDone  bool `json:"workout_done"`
}
