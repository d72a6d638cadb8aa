package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"summarizer-backend/pkg/ai"
)

// Validation errors map to 4xx at the HTTP layer; everything else is a
// provider failure and maps to 5xx.
var (
	ErrEmptyTranscript    = errors.New("transcript must not be empty")
	ErrEmptyPrompt        = errors.New("prompt must not be empty")
	ErrTranscriptTooLarge = errors.New("transcript exceeds the maximum allowed size")
)

// IsValidationError reports whether err was caused by bad client input.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrEmptyTranscript) ||
		errors.Is(err, ErrEmptyPrompt) ||
		errors.Is(err, ErrTranscriptTooLarge)
}

type SummaryUsecase interface {
	Summarize(ctx context.Context, transcript, instruction string) (string, error)
}

type summaryUsecase struct {
	aiService ai.SummarizerService
	timeout   time.Duration
	maxBytes  int64
}

func NewSummaryUsecase(aiService ai.SummarizerService, timeout time.Duration, maxTranscriptBytes int64) SummaryUsecase {
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	if maxTranscriptBytes <= 0 {
		maxTranscriptBytes = 1 << 20
	}
	return &summaryUsecase{
		aiService: aiService,
		timeout:   timeout,
		maxBytes:  maxTranscriptBytes,
	}
}

// Summarize validates the input and asks the configured AI provider for a
// summary. Validation happens before any provider call so malformed input
// never costs an API request.
func (u *summaryUsecase) Summarize(ctx context.Context, transcript, instruction string) (string, error) {
	transcript = strings.TrimSpace(transcript)
	instruction = strings.TrimSpace(instruction)

	if transcript == "" {
		return "", ErrEmptyTranscript
	}
	if instruction == "" {
		return "", ErrEmptyPrompt
	}
	if int64(len(transcript)) > u.maxBytes {
		return "", ErrTranscriptTooLarge
	}

	ctx, cancel := context.WithTimeout(ctx, u.timeout)
	defer cancel()

	summary, err := u.aiService.Summarize(ctx, transcript, instruction)
	if err != nil {
		return "", fmt.Errorf("generate summary: %w", err)
	}

	summary = strings.TrimSpace(summary)
	if summary == "" {
		return "", fmt.Errorf("provider returned an empty summary")
	}
	return summary, nil
}
