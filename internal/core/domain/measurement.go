package domain

import (
	"errors"
	"time"
)

var ErrWeightRequired = errors.New("weight is required for a measurement")

// Measurement is a weekly check-in row. Weight is mandatory; the body
// measurements are optional and stored as zero when not provided.
type Measurement struct {
	ID     string `json:"id" db:"id"`
	UserID int64  `json:"user_id" db:"user_id"`

	WeightKG float64 `json:"weight" db:"weight"`
	ArmL     float64 `json:"arm_l" db:"arm_l"`
	ArmR     float64 `json:"arm_r" db:"arm_r"`
	Chest    float64 `json:"chest" db:"chest"`
	Waist    float64 `json:"waist" db:"waist"`
	Hips     float64 `json:"hips" db:"hips"`
	LegL     float64 `json:"leg_l" db:"leg_l"`
	LegR     float64 `json:"leg_r" db:"leg_r"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

func NewMeasurement(userID int64, weightKG float64) (*Measurement, error) {
	if userID <= 0 {
		return nil, ErrInvalidTelegramID
	}
	if weightKG <= 0 {
		return nil, ErrWeightRequired
	}

	return &Measurement{
		UserID:    userID,
		WeightKG:  weightKG,
		CreatedAt: time.Now().UTC(),
	}, nil
}
