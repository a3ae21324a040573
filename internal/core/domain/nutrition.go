package domain

import "errors"

var ErrUnrecognizedFood = errors.New("could not recognize food from input")

// NutritionEstimate is the structured output of the AI food analyzer.
// By the time it reaches the core, numeric fields default to zero and
// the grade is one of A-D; normalization happens at the adapter edge.
type NutritionEstimate struct {
	Name     string  `json:"name"`
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Fats     float64 `json:"fats"`
	Carbs    float64 `json:"carbs"`
	WeightG  float64 `json:"weight_g"`
	Grade    string  `json:"grade"`
	Advice   string  `json:"advice"`
}

type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}
