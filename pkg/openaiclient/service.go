package openaiclient

import (
	"context"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"

	"summarizer-backend/pkg/prompt"
)

// completionClient narrows the go-openai client so tests can inject a mock.
type completionClient interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

type Service struct {
	client completionClient
	model  string
}

// NewService builds a client for any OpenAI-compatible completion endpoint.
// An empty baseURL targets api.openai.com; an empty model falls back to gpt-4o-mini.
func NewService(apiKey, baseURL, model string) *Service {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	if model == "" {
		model = openai.GPT4oMini
	}
	return &Service{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
	}
}

func (s *Service) Summarize(ctx context.Context, transcript, instruction string) (string, error) {
	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: s.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: prompt.System},
			{Role: openai.ChatMessageRoleUser, Content: prompt.UserContent(transcript, instruction)},
		},
	})
	if err != nil {
		return "", fmt.Errorf("openai completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no completion choices returned")
	}

	summary := strings.TrimSpace(resp.Choices[0].Message.Content)
	if summary == "" {
		return "", fmt.Errorf("empty completion returned")
	}
	return summary, nil
}
