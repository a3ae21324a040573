package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foodtrack/foodtrack-server/internal/adapters/repository"
	"github.com/foodtrack/foodtrack-server/internal/core/domain"
	"github.com/foodtrack/foodtrack-server/internal/core/services"
)

type stubCompleter struct {
	reply        string
	systemPrompt string
	history      []domain.ChatMessage
	message      string
}

func (s *stubCompleter) Complete(ctx context.Context, systemPrompt string, history []domain.ChatMessage, userMessage string) (string, error) {
	s.systemPrompt = systemPrompt
	s.history = history
	s.message = userMessage
	return s.reply, nil
}

func TestChatService_Reply(t *testing.T) {
	ctx := context.Background()

	newFixture := func(t *testing.T) (*services.ChatService, *repository.InMemoryFoodLogRepository, *stubCompleter) {
		userRepo := repository.NewInMemoryUserRepository()
		foodRepo := repository.NewInMemoryFoodLogRepository()
		completer := &stubCompleter{reply: "Совет: больше белка."}

		user, err := domain.NewUserProfile(42, "Ivan", "ivan")
		require.NoError(t, err)
		user.TargetGoal = domain.GoalLoss
		require.NoError(t, userRepo.Upsert(ctx, user))

		return services.NewChatService(userRepo, foodRepo, completer), foodRepo, completer
	}

	t.Run("Prompt carries profile and recent food context", func(t *testing.T) {
		svc, foodRepo, completer := newFixture(t)

		entry, err := domain.NewFoodLogEntry(42, "Борщ", 250, 10, 8, 25, 350, "B", "text")
		require.NoError(t, err)
		require.NoError(t, foodRepo.Insert(ctx, entry))

		reply, err := svc.Reply(ctx, 42, "Что мне съесть на ужин?", nil)
		require.NoError(t, err)
		assert.Equal(t, "Совет: больше белка.", reply)

		assert.Contains(t, completer.systemPrompt, "Ivan")
		assert.Contains(t, completer.systemPrompt, domain.GoalLoss)
		assert.Contains(t, completer.systemPrompt, "Борщ")
		assert.Contains(t, completer.systemPrompt, "Grade: B")
		assert.Equal(t, "Что мне съесть на ужин?", completer.message)
	})

	t.Run("No recent logs", func(t *testing.T) {
		svc, _, completer := newFixture(t)

		_, err := svc.Reply(ctx, 42, "Привет", nil)
		require.NoError(t, err)
		assert.Contains(t, completer.systemPrompt, "hasn't logged food recently")
	})

	t.Run("History is passed through untouched", func(t *testing.T) {
		svc, _, completer := newFixture(t)

		history := []domain.ChatMessage{
			{Role: "user", Content: "Привет"},
			{Role: "assistant", Content: "Здравствуй!"},
		}
		_, err := svc.Reply(ctx, 42, "Продолжим", history)
		require.NoError(t, err)
		assert.Equal(t, history, completer.history)
	})

	t.Run("Unknown user", func(t *testing.T) {
		svc, _, _ := newFixture(t)

		_, err := svc.Reply(ctx, 99, "Привет", nil)
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
	})
}
