package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/foodtrack/foodtrack-server/internal/core/domain"
)

// ChatCompleter is the conversational AI collaborator.
type ChatCompleter interface {
	Complete(ctx context.Context, systemPrompt string, history []domain.ChatMessage, userMessage string) (string, error)
}

type ChatService struct {
	userRepo  domain.UserRepository
	foodRepo  domain.FoodLogRepository
	completer ChatCompleter
}

func NewChatService(userRepo domain.UserRepository, foodRepo domain.FoodLogRepository, completer ChatCompleter) *ChatService {
	return &ChatService{
		userRepo:  userRepo,
		foodRepo:  foodRepo,
		completer: completer,
	}
}

const chatContextDays = 3
const chatContextLimit = 20

// Reply answers one coach-chat turn. The system prompt carries the
// user's goal and their last few days of food logs so the model can be
// concrete.
func (s *ChatService) Reply(ctx context.Context, userID int64, message string, history []domain.ChatMessage) (string, error) {
	user, err := s.userRepo.GetByTelegramID(ctx, userID)
	if err != nil {
		return "", err
	}

	since := time.Now().AddDate(0, 0, -chatContextDays)
	logs, err := s.foodRepo.ListByUserAndRange(ctx, userID, since, time.Now())
	if err != nil {
		return "", err
	}
	if len(logs) > chatContextLimit {
		logs = logs[:chatContextLimit]
	}

	foodContext := "User hasn't logged food recently."
	if len(logs) > 0 {
		lines := make([]string, 0, len(logs))
		for _, l := range logs {
			lines = append(lines, fmt.Sprintf("- %s (%.0fkcal, Grade: %s)", l.Name, l.Calories, l.Grade))
		}
		foodContext = strings.Join(lines, "\n")
	}

	systemPrompt := fmt.Sprintf(
		"You are a friendly AI Nutritionist. User: %s, Goal: %s. Recent Food: %s. Answer in Russian.",
		user.FirstName, user.TargetGoal, foodContext,
	)

	return s.completer.Complete(ctx, systemPrompt, history, message)
}
