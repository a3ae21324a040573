package domain

import (
	"errors"
	"time"
)

var ErrInvalidWeight = errors.New("weight must be positive")

// WeightLogEntry stores the day's absolute weight, not a delta. There is
// at most one authoritative row per user per calendar day; a second
// same-day write overwrites the existing row.
type WeightLogEntry struct {
	ID        string    `json:"id" db:"id"`
	UserID    int64     `json:"user_id" db:"user_id"`
	WeightKG  float64   `json:"weight" db:"weight"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

func NewWeightLogEntry(userID int64, weightKG float64) (*WeightLogEntry, error) {
	if userID <= 0 {
		return nil, ErrInvalidTelegramID
	}
	if weightKG <= 0 {
		return nil, ErrInvalidWeight
	}

	return &WeightLogEntry{
		UserID:    userID,
		WeightKG:  weightKG,
		CreatedAt: time.Now().UTC(),
	}, nil
}
