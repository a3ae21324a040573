package domain

// MacroTotals is the day's consumed sum over food log entries. Missing
// macro fields on an entry contribute zero, never an error.
type MacroTotals struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Fats     float64 `json:"fats"`
	Carbs    float64 `json:"carbs"`
}

func (t MacroTotals) Add(e *FoodLogEntry) MacroTotals {
	t.Calories += e.Calories
	t.Protein += e.Protein
	t.Fats += e.Fats
	t.Carbs += e.Carbs
	return t
}

// DailyStats is the current-vs-goal snapshot the home screen renders.
// WaterML is clamped to zero for display; RawWaterML keeps the signed
// sum so corrections remain traceable.
type DailyStats struct {
	User       *UserProfile    `json:"user"`
	Goals      MacroGoals      `json:"goals"`
	Current    MacroTotals     `json:"current"`
	WaterML    int             `json:"water"`
	RawWaterML int             `json:"-"`
	Streak     int             `json:"streak"`
	Logs       []*FoodLogEntry `json:"logs"`
}

type ChartPoint struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}

type ChartsData struct {
	Weight []ChartPoint `json:"weight"`
	Water  []ChartPoint `json:"water"`
}

// DayHistory is the totals-vs-goals view for an arbitrary past day.
type DayHistory struct {
	Totals MacroTotals `json:"totals"`
	Goals  MacroGoals  `json:"goals"`
}
