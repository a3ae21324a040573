package ai

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/sashabaranov/go-openai"

	"github.com/foodtrack/foodtrack-server/internal/core/domain"
)

const analysisModel = openai.GPT4o

const analysisSystemPrompt = `You are a professional nutritionist. Analyze the food.
1. Identify the food name (translate to Russian).
2. Estimate weight if not specified (standard portion).
3. Calculate macros.
4. GRADE the food from 'A' (Very Healthy) to 'D' (Unhealthy) based on balance/sugar/trans-fats.
5. Give a short, actionable advice in Russian (max 10 words).

Return ONLY JSON:
{ "name": "string", "calories": number, "protein": number, "fats": number, "carbs": number, "weight_g": number, "grade": "A" | "B" | "C" | "D", "advice": "string" }`

// Client wraps the OpenAI API behind the core's analyzer and chat
// interfaces.
type Client struct {
	api *openai.Client
}

func NewClient(apiKey string) *Client {
	return &Client{api: openai.NewClient(apiKey)}
}

func (c *Client) AnalyzeText(ctx context.Context, description string) (*domain.NutritionEstimate, error) {
	return c.analyze(ctx, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: description,
	})
}

func (c *Client) AnalyzeImage(ctx context.Context, imageURL string) (*domain.NutritionEstimate, error) {
	return c.analyze(ctx, openai.ChatCompletionMessage{
		Role: openai.ChatMessageRoleUser,
		MultiContent: []openai.ChatMessagePart{
			{Type: openai.ChatMessagePartTypeText, Text: "Analyze image"},
			{Type: openai.ChatMessagePartTypeImageURL, ImageURL: &openai.ChatMessageImageURL{URL: imageURL}},
		},
	})
}

func (c *Client) analyze(ctx context.Context, userMessage openai.ChatCompletionMessage) (*domain.NutritionEstimate, error) {
	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: analysisModel,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: analysisSystemPrompt},
			userMessage,
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("food analysis request: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("food analysis: empty completion")
	}

	var estimate domain.NutritionEstimate
	if err := json.Unmarshal([]byte(resp.Choices[0].Message.Content), &estimate); err != nil {
		return nil, fmt.Errorf("food analysis response: %w", err)
	}

	return &estimate, nil
}

// Complete sends a chat turn: the caller-built system prompt, the
// prior history and the new user message.
func (c *Client) Complete(ctx context.Context, systemPrompt string, history []domain.ChatMessage, message string) (string, error) {
	messages := make([]openai.ChatCompletionMessage, 0, len(history)+2)
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleSystem,
		Content: systemPrompt,
	})
	for _, m := range history {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    m.Role,
			Content: m.Content,
		})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: message,
	})

	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:    analysisModel,
		Messages: messages,
	})
	if err != nil {
		return "", fmt.Errorf("chat completion request: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("chat completion: empty completion")
	}

	return resp.Choices[0].Message.Content, nil
}
