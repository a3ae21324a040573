package domain

import (
	"context"
	"time"
)

type UserRepository interface {
	// Upsert inserts the profile or, when a row for the telegram id
	// already exists, replaces its mutable fields.
	Upsert(ctx context.Context, user *UserProfile) error

	GetByTelegramID(ctx context.Context, telegramID int64) (*UserProfile, error)

	// Update writes back an already-loaded profile. Derived goals are
	// part of the row, so callers must have recomputed them together.
	Update(ctx context.Context, user *UserProfile) error

	// ListAll is used by the notification sweeps, which walk every user
	// sequentially.
	ListAll(ctx context.Context) ([]*UserProfile, error)
}

type FoodLogRepository interface {
	Insert(ctx context.Context, entry *FoodLogEntry) error

	// Update performs the full-replace edit of nutrition fields.
	Update(ctx context.Context, entry *FoodLogEntry) error

	Delete(ctx context.Context, id string) error

	GetByID(ctx context.Context, id string) (*FoodLogEntry, error)

	// ListByUserAndRange returns entries inside [from, to], newest first.
	ListByUserAndRange(ctx context.Context, userID int64, from, to time.Time) ([]*FoodLogEntry, error)

	// ListRecent returns the newest entries up to limit, for streak
	// computation over the recent history window.
	ListRecent(ctx context.Context, userID int64, limit int) ([]*FoodLogEntry, error)

	CountInRange(ctx context.Context, userID int64, from, to time.Time) (int, error)
}

type WaterLogRepository interface {
	Insert(ctx context.Context, entry *WaterLogEntry) error
	ListByUserAndRange(ctx context.Context, userID int64, from, to time.Time) ([]*WaterLogEntry, error)
	ListByUser(ctx context.Context, userID int64) ([]*WaterLogEntry, error)
}

type WeightLogRepository interface {
	// UpsertDay keeps at most one row per user per calendar day: the
	// existing same-day row is overwritten, otherwise a new one is
	// inserted.
	UpsertDay(ctx context.Context, entry *WeightLogEntry) error

	ListByUser(ctx context.Context, userID int64, limit int) ([]*WeightLogEntry, error)

	CountInRange(ctx context.Context, userID int64, from, to time.Time) (int, error)
}

type ChecklistRepository interface {
	// Upsert writes the full row keyed by (user, date); replaying an
	// identical row is a no-op on state.
	Upsert(ctx context.Context, checklist *DailyChecklist) error

	// Get returns the row for (user, date). An absent row means all
	// facts are false; implementations signal it with ErrChecklistNotFound.
	Get(ctx context.Context, userID int64, date string) (*DailyChecklist, error)
}

type MeasurementRepository interface {
	Insert(ctx context.Context, m *Measurement) error
	ListByUser(ctx context.Context, userID int64) ([]*Measurement, error)
}

type MarathonRepository interface {
	GetByID(ctx context.Context, id int64) (*Marathon, error)
	ListActive(ctx context.Context) ([]*Marathon, error)
	AddParticipant(ctx context.Context, p *MarathonParticipant) error
	HasParticipant(ctx context.Context, marathonID, userID int64) (bool, error)
	ListLadderRows(ctx context.Context, marathonID int64) ([]*LadderRow, error)
	SaveAssessment(ctx context.Context, a *MarathonAssessment) error
}
