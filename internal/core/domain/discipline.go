package domain

const (
	LevelGreen  = "green"
	LevelYellow = "yellow"
	LevelRed    = "red"
)

// DisciplineIndex is a pure derived value: never persisted, recomputed
// from the day's checklist facts on every request.
type DisciplineIndex struct {
	Index      int            `json:"index"`
	Level      string         `json:"level"`
	StatusText string         `json:"status_text"`
	Checklist  ChecklistFacts `json:"checklist"`
}
