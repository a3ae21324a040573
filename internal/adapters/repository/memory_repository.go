package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/foodtrack/foodtrack-server/internal/core/domain"
)

// In-memory repositories back fast tests and local runs without
// postgres. They implement the same interfaces as their postgres
// counterparts, including the one-row-per-day weight semantics.

type InMemoryUserRepository struct {
	store map[int64]*domain.UserProfile

	mu sync.RWMutex
}

func NewInMemoryUserRepository() *InMemoryUserRepository {
	return &InMemoryUserRepository{
		store: make(map[int64]*domain.UserProfile),
	}
}

func (r *InMemoryUserRepository) Upsert(ctx context.Context, user *domain.UserProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	clone := *user
	r.store[user.TelegramID] = &clone
	return nil
}

func (r *InMemoryUserRepository) GetByTelegramID(ctx context.Context, telegramID int64) (*domain.UserProfile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.store[telegramID]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *user
	return &clone, nil
}

func (r *InMemoryUserRepository) Update(ctx context.Context, user *domain.UserProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.store[user.TelegramID]; !ok {
		return domain.ErrUserNotFound
	}
	clone := *user
	r.store[user.TelegramID] = &clone
	return nil
}

func (r *InMemoryUserRepository) ListAll(ctx context.Context) ([]*domain.UserProfile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := make([]*domain.UserProfile, 0, len(r.store))
	for _, u := range r.store {
		clone := *u
		users = append(users, &clone)
	}

	sort.Slice(users, func(i, j int) bool {
		return users[i].TelegramID < users[j].TelegramID
	})
	return users, nil
}

type InMemoryFoodLogRepository struct {
	store map[string]*domain.FoodLogEntry

	mu sync.RWMutex
}

func NewInMemoryFoodLogRepository() *InMemoryFoodLogRepository {
	return &InMemoryFoodLogRepository{
		store: make(map[string]*domain.FoodLogEntry),
	}
}

func (r *InMemoryFoodLogRepository) Insert(ctx context.Context, entry *domain.FoodLogEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	clone := *entry
	r.store[entry.ID] = &clone
	return nil
}

func (r *InMemoryFoodLogRepository) Update(ctx context.Context, entry *domain.FoodLogEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.store[entry.ID]; !ok {
		return domain.ErrFoodLogNotFound
	}
	clone := *entry
	r.store[entry.ID] = &clone
	return nil
}

func (r *InMemoryFoodLogRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.store[id]; !ok {
		return domain.ErrFoodLogNotFound
	}
	delete(r.store, id)
	return nil
}

func (r *InMemoryFoodLogRepository) GetByID(ctx context.Context, id string) (*domain.FoodLogEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.store[id]
	if !ok {
		return nil, domain.ErrFoodLogNotFound
	}
	clone := *entry
	return &clone, nil
}

func (r *InMemoryFoodLogRepository) ListByUserAndRange(ctx context.Context, userID int64, from, to time.Time) ([]*domain.FoodLogEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var entries []*domain.FoodLogEntry
	for _, e := range r.store {
		if e.UserID == userID && !e.CreatedAt.Before(from) && !e.CreatedAt.After(to) {
			clone := *e
			entries = append(entries, &clone)
		}
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].CreatedAt.After(entries[j].CreatedAt)
	})
	return entries, nil
}

func (r *InMemoryFoodLogRepository) ListRecent(ctx context.Context, userID int64, limit int) ([]*domain.FoodLogEntry, error) {
	entries, err := r.ListByUserAndRange(ctx, userID, time.Time{}, time.Now().Add(24*time.Hour))
	if err != nil {
		return nil, err
	}
	if len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}

func (r *InMemoryFoodLogRepository) CountInRange(ctx context.Context, userID int64, from, to time.Time) (int, error) {
	entries, err := r.ListByUserAndRange(ctx, userID, from, to)
	if err != nil {
		return 0, err
	}
	return len(entries), nil
}

type InMemoryChecklistRepository struct {
	store map[string]*domain.DailyChecklist

	mu sync.RWMutex
}

func NewInMemoryChecklistRepository() *InMemoryChecklistRepository {
	return &InMemoryChecklistRepository{
		store: make(map[string]*domain.DailyChecklist),
	}
}

func checklistKey(userID int64, date string) string {
	return fmt.Sprintf("%d/%s", userID, date)
}

func (r *InMemoryChecklistRepository) Upsert(ctx context.Context, checklist *domain.DailyChecklist) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	clone := *checklist
	r.store[checklistKey(checklist.UserID, checklist.Date)] = &clone
	return nil
}

func (r *InMemoryChecklistRepository) Get(ctx context.Context, userID int64, date string) (*domain.DailyChecklist, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	checklist, ok := r.store[checklistKey(userID, date)]
	if !ok {
		return nil, domain.ErrChecklistNotFound
	}
	clone := *checklist
	return &clone, nil
}
