package domain

import (
	"encoding/json"
	"errors"
	"time"
)

var (
	ErrMarathonNotFound  = errors.New("marathon not found")
	ErrInvalidAccessCode = errors.New("invalid marathon access code")
	ErrAlreadyJoined     = errors.New("user already joined this marathon")
	ErrNotParticipant    = errors.New("user is not a participant of this marathon")
)

// Marathon is a weight-loss group joined by access code. Only the bcrypt
// hash of the code is stored.
type Marathon struct {
	ID             int64     `json:"id" db:"id"`
	Title          string    `json:"title" db:"title"`
	AccessCodeHash string    `json:"-" db:"access_code_hash"`
	StartDate      time.Time `json:"start_date" db:"start_date"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
}

type MarathonParticipant struct {
	MarathonID    int64     `json:"marathon_id" db:"marathon_id"`
	UserID        int64     `json:"user_id" db:"user_id"`
	StartWeightKG float64   `json:"start_weight" db:"start_weight"`
	JoinedAt      time.Time `json:"joined_at" db:"joined_at"`
}

// MarathonAssessment is a participant questionnaire (start or final
// check-in). Answers are stored as the raw JSON the mini-app submitted.
type MarathonAssessment struct {
	ID         string          `json:"id" db:"id"`
	MarathonID int64           `json:"marathon_id" db:"marathon_id"`
	UserID     int64           `json:"user_id" db:"user_id"`
	Type       string          `json:"type" db:"type"`
	Answers    json.RawMessage `json:"answers" db:"answers"`
	CreatedAt  time.Time       `json:"created_at" db:"created_at"`
}

// LadderRow is a participant joined with the profile fields the ladder
// renders, as read straight from storage.
type LadderRow struct {
	UserID         int64   `db:"user_id"`
	FirstName      string  `db:"first_name"`
	AvatarURL      string  `db:"avatar_url"`
	StartWeightKG  float64 `db:"start_weight"`
	WeightKG       float64 `db:"weight"`
	TargetWeightKG float64 `db:"target_weight"`
}

type LadderUser struct {
	FirstName    string  `json:"first_name"`
	AvatarURL    string  `json:"avatar_url"`
	Weight       float64 `json:"weight"`
	TargetWeight float64 `json:"target_weight"`
}

type LadderEntry struct {
	User     LadderUser `json:"user"`
	Progress float64    `json:"progress"`
}
