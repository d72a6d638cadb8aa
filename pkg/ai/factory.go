package ai

import (
	"fmt"

	"summarizer-backend/pkg/gemini"
	"summarizer-backend/pkg/openaiclient"
)

// Config holds AI provider configuration
type Config struct {
	Provider ProviderType // "gemini", "openai" or "auto"

	// Gemini config
	GeminiAPIKey string
	GeminiModel  string

	// OpenAI-compatible config
	OpenAIAPIKey  string
	OpenAIBaseURL string
	OpenAIModel   string
}

// NewSummarizerService creates a SummarizerService based on the config.
// This is the factory function - switch AI provider by changing config.Provider
func NewSummarizerService(cfg Config) (SummarizerService, error) {
	switch cfg.Provider {
	case ProviderGemini:
		if cfg.GeminiAPIKey == "" {
			return nil, fmt.Errorf("GEMINI_API_KEY is required for the gemini provider")
		}
		return gemini.NewService(cfg.GeminiAPIKey, cfg.GeminiModel), nil

	case ProviderOpenAI:
		if cfg.OpenAIAPIKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY is required for the openai provider")
		}
		return openaiclient.NewService(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL, cfg.OpenAIModel), nil

	case ProviderAuto, "":
		// Use whichever providers have credentials; with both, Gemini is
		// primary and the OpenAI-compatible endpoint is the fallback.
		var primary, secondary SummarizerService
		if cfg.GeminiAPIKey != "" {
			primary = gemini.NewService(cfg.GeminiAPIKey, cfg.GeminiModel)
		}
		if cfg.OpenAIAPIKey != "" {
			secondary = openaiclient.NewService(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL, cfg.OpenAIModel)
		}

		switch {
		case primary != nil && secondary != nil:
			return NewFallbackService(primary, secondary), nil
		case primary != nil:
			return primary, nil
		case secondary != nil:
			return secondary, nil
		default:
			return nil, fmt.Errorf("no AI provider configured: set GEMINI_API_KEY or OPENAI_API_KEY")
		}

	default:
		return nil, fmt.Errorf("unknown AI provider: %s", cfg.Provider)
	}
}
