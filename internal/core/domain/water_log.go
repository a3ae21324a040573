package domain

import "time"

// WaterLogEntry amounts may be negative: corrections are logged as
// compensating entries rather than edits of previous rows.
type WaterLogEntry struct {
	ID        string    `json:"id" db:"id"`
	UserID    int64     `json:"user_id" db:"user_id"`
	AmountML  int       `json:"amount_ml" db:"amount_ml"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

func NewWaterLogEntry(userID int64, amountML int) (*WaterLogEntry, error) {
	if userID <= 0 {
		return nil, ErrInvalidTelegramID
	}

	return &WaterLogEntry{
		UserID:    userID,
		AmountML:  amountML,
		CreatedAt: time.Now().UTC(),
	}, nil
}
