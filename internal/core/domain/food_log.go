package domain

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrFoodLogNotFound = errors.New("food log entry not found")
	ErrInvalidGrade    = errors.New("invalid grade (must be A, B, C or D)")
	ErrFoodNameEmpty   = errors.New("food name cannot be empty")
)

const (
	SourceImage = "image"
	SourceText  = "text"
)

type FoodLogEntry struct {
	ID     string `json:"id" db:"id"`
	UserID int64  `json:"user_id" db:"user_id"`

	Name     string  `json:"name" db:"name"`
	Calories float64 `json:"calories" db:"calories"`
	Protein  float64 `json:"protein" db:"protein"`
	Fats     float64 `json:"fats" db:"fats"`
	Carbs    float64 `json:"carbs" db:"carbs"`
	WeightG  float64 `json:"weight_g" db:"weight_g"`
	Grade    string  `json:"grade" db:"grade"`
	Source   string  `json:"source" db:"source"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

func ValidGrade(grade string) bool {
	switch grade {
	case "A", "B", "C", "D":
		return true
	}
	return false
}

func NewFoodLogEntry(userID int64, name string, calories, protein, fats, carbs, weightG float64, grade, source string) (*FoodLogEntry, error) {
	if userID <= 0 {
		return nil, ErrInvalidTelegramID
	}
	if strings.TrimSpace(name) == "" {
		return nil, ErrFoodNameEmpty
	}
	if !ValidGrade(grade) {
		return nil, ErrInvalidGrade
	}

	return &FoodLogEntry{
		UserID:    userID,
		Name:      strings.TrimSpace(name),
		Calories:  calories,
		Protein:   protein,
		Fats:      fats,
		Carbs:     carbs,
		WeightG:   weightG,
		Grade:     grade,
		Source:    source,
		CreatedAt: time.Now().UTC(),
	}, nil
}

// ReplaceNutrition is the only supported edit: a full replace of the
// user-visible nutrition fields. Grade and source survive the edit.
func (e *FoodLogEntry) ReplaceNutrition(name string, calories, protein, fats, carbs, weightG float64) error {
	if strings.TrimSpace(name) == "" {
		return ErrFoodNameEmpty
	}

	e.Name = strings.TrimSpace(name)
	e.Calories = calories
	e.Protein = protein
	e.Fats = fats
	e.Carbs = carbs
	e.WeightG = weightG
	return nil
}
