package ai

import (
	"context"
	"fmt"
	"net"
	"strings"

	"summarizer-backend/pkg/logger"
)

// FallbackService routes summarization to a primary provider and retries
// the secondary one when the primary is unreachable or out of quota.
type FallbackService struct {
	primary   SummarizerService
	secondary SummarizerService
}

// NewFallbackService creates a new fallback service with both providers
func NewFallbackService(primary, secondary SummarizerService) *FallbackService {
	return &FallbackService{
		primary:   primary,
		secondary: secondary,
	}
}

// isConnectionError checks if the error is a network/connection error
func isConnectionError(err error) bool {
	if err == nil {
		return false
	}

	if _, ok := err.(net.Error); ok {
		return true
	}

	errStr := strings.ToLower(err.Error())
	connectionIndicators := []string{
		"connection refused",
		"no such host",
		"network is unreachable",
		"connection reset",
		"timeout",
		"dial tcp",
		"eof",
	}

	for _, indicator := range connectionIndicators {
		if strings.Contains(errStr, indicator) {
			return true
		}
	}

	return false
}

// isQuotaError checks if the error indicates API quota exhaustion (429)
func isQuotaError(err error) bool {
	if err == nil {
		return false
	}

	errStr := strings.ToLower(err.Error())
	quotaIndicators := []string{
		"429",
		"quota",
		"rate limit",
		"too many requests",
		"resource exhausted",
	}

	for _, indicator := range quotaIndicators {
		if strings.Contains(errStr, indicator) {
			return true
		}
	}

	return false
}

// Summarize tries the primary provider first and falls back to the secondary
// on connection or quota errors. Other primary errors also fall through, but
// the original failure is reported if the secondary fails too.
func (f *FallbackService) Summarize(ctx context.Context, transcript, instruction string) (string, error) {
	result, primaryErr := f.primary.Summarize(ctx, transcript, instruction)
	if primaryErr == nil {
		return result, nil
	}

	if ctx.Err() != nil {
		// The request itself died; the secondary has no chance either.
		return "", primaryErr
	}

	switch {
	case isConnectionError(primaryErr):
		logger.Warnf("[AI] primary provider unreachable: %v, falling back", primaryErr)
	case isQuotaError(primaryErr):
		logger.Warnf("[AI] primary provider quota exhausted: %v, falling back", primaryErr)
	default:
		logger.Warnf("[AI] primary provider error: %v, falling back", primaryErr)
	}

	result, err := f.secondary.Summarize(ctx, transcript, instruction)
	if err != nil {
		return "", fmt.Errorf("all providers failed: %w", primaryErr)
	}

	logger.Infof("[AI] fallback provider succeeded")
	return result, nil
}
