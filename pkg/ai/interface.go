package ai

import "context"

// SummarizerService is the interface for AI transcript summarization.
// Implement this interface to add new AI providers (Gemini, OpenAI, etc.)
type SummarizerService interface {
	Summarize(ctx context.Context, transcript, instruction string) (string, error)
}

// ProviderType represents the AI provider type
type ProviderType string

const (
	ProviderGemini ProviderType = "gemini"
	ProviderOpenAI ProviderType = "openai"
	ProviderAuto   ProviderType = "auto"
)
