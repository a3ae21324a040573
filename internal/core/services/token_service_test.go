package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foodtrack/foodtrack-server/internal/adapters/repository"
	"github.com/foodtrack/foodtrack-server/internal/core/domain"
	"github.com/foodtrack/foodtrack-server/internal/core/services"
)

func newTokenFixture(t *testing.T, duration time.Duration) *services.TokenService {
	t.Helper()

	userRepo := repository.NewInMemoryUserRepository()
	user, err := domain.NewUserProfile(42, "Ivan", "ivan")
	require.NoError(t, err)
	require.NoError(t, userRepo.Upsert(context.Background(), user))

	return services.NewTokenService("test-secret", "foodtrack-test", duration, userRepo)
}

func TestTokenService(t *testing.T) {
	t.Run("Round trip", func(t *testing.T) {
		svc := newTokenFixture(t, time.Hour)

		token, err := svc.GenerateToken(42)
		require.NoError(t, err)

		got, err := svc.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, int64(42), got)
	})

	t.Run("Deleted user invalidates the token", func(t *testing.T) {
		svc := newTokenFixture(t, time.Hour)

		token, err := svc.GenerateToken(99)
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		assert.Error(t, err)
	})

	t.Run("Expired token", func(t *testing.T) {
		svc := newTokenFixture(t, -time.Minute)

		token, err := svc.GenerateToken(42)
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		assert.Error(t, err)
	})

	t.Run("Token signed with a different secret", func(t *testing.T) {
		svc := newTokenFixture(t, time.Hour)
		other := services.NewTokenService("other-secret", "foodtrack-test", time.Hour, repository.NewInMemoryUserRepository())

		token, err := other.GenerateToken(42)
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		assert.Error(t, err)
	})

	t.Run("Wrong issuer", func(t *testing.T) {
		userRepo := repository.NewInMemoryUserRepository()
		user, err := domain.NewUserProfile(42, "Ivan", "ivan")
		require.NoError(t, err)
		require.NoError(t, userRepo.Upsert(context.Background(), user))

		issuerA := services.NewTokenService("test-secret", "issuer-a", time.Hour, userRepo)
		issuerB := services.NewTokenService("test-secret", "issuer-b", time.Hour, userRepo)

		token, err := issuerA.GenerateToken(42)
		require.NoError(t, err)

		_, err = issuerB.ValidateToken(token)
		assert.Error(t, err)
	})

	t.Run("Garbage token", func(t *testing.T) {
		svc := newTokenFixture(t, time.Hour)

		_, err := svc.ValidateToken("not.a.jwt")
		assert.Error(t, err)
	})
}
