package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/foodtrack/foodtrack-server/internal/core/domain"
)

var _ domain.UserRepository = (*CachedUserRepository)(nil)

// CachedUserRepository fronts the user storage with a redis read cache.
// Profiles are read on nearly every request (stats, discipline,
// overlimit checks) but written rarely, so a short TTL keeps the cache
// honest without pinning it to write paths.
type CachedUserRepository struct {
	next  domain.UserRepository
	cache *redis.Client
}

func NewCachedUserRepository(next domain.UserRepository, cache *redis.Client) *CachedUserRepository {
	return &CachedUserRepository{
		next:  next,
		cache: cache,
	}
}

func (r *CachedUserRepository) cacheKey(telegramID int64) string {
	return fmt.Sprintf("profile:%d", telegramID)
}

func (r *CachedUserRepository) invalidate(ctx context.Context, telegramID int64) {
	if err := r.cache.Del(ctx, r.cacheKey(telegramID)).Err(); err != nil {
		log.Printf("[CACHE] Failed to invalidate profile %d: %v", telegramID, err)
	}
}

func (r *CachedUserRepository) GetByTelegramID(ctx context.Context, telegramID int64) (*domain.UserProfile, error) {
	key := r.cacheKey(telegramID)

	val, err := r.cache.Get(ctx, key).Result()
	if err == nil {
		var user domain.UserProfile
		if err := json.Unmarshal([]byte(val), &user); err == nil {
			return &user, nil
		}

		log.Printf("[CACHE] Corrupted profile for user %d, cleaning up key", telegramID)
		r.cache.Del(ctx, key)
	} else if err != redis.Nil {
		log.Printf("[CACHE] Redis read error: %v", err)
	}

	user, err := r.next.GetByTelegramID(ctx, telegramID)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(user); err == nil {
		if setErr := r.cache.Set(ctx, key, data, 10*time.Minute).Err(); setErr != nil {
			log.Printf("[CACHE] Redis set error: %v", setErr)
		}
	}

	return user, nil
}

func (r *CachedUserRepository) Upsert(ctx context.Context, user *domain.UserProfile) error {
	if err := r.next.Upsert(ctx, user); err != nil {
		return err
	}
	r.invalidate(ctx, user.TelegramID)
	return nil
}

func (r *CachedUserRepository) Update(ctx context.Context, user *domain.UserProfile) error {
	if err := r.next.Update(ctx, user); err != nil {
		return err
	}
	r.invalidate(ctx, user.TelegramID)
	return nil
}

func (r *CachedUserRepository) ListAll(ctx context.Context) ([]*domain.UserProfile, error) {
	return r.next.ListAll(ctx)
}
