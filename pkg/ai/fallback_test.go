package ai

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubProvider struct {
	summary string
	err     error
	calls   int
}

func (s *stubProvider) Summarize(ctx context.Context, transcript, instruction string) (string, error) {
	s.calls++
	if s.err != nil {
		return "", s.err
	}
	return s.summary, nil
}

func TestFallbackPrimarySucceeds(t *testing.T) {
	primary := &stubProvider{summary: "primary summary"}
	secondary := &stubProvider{summary: "secondary summary"}

	got, err := NewFallbackService(primary, secondary).Summarize(context.Background(), "t", "i")
	require.NoError(t, err)
	assert.Equal(t, "primary summary", got)
	assert.Equal(t, 1, primary.calls)
	assert.Equal(t, 0, secondary.calls)
}

func TestFallbackOnConnectionError(t *testing.T) {
	primary := &stubProvider{err: errors.New("dial tcp 127.0.0.1:443: connection refused")}
	secondary := &stubProvider{summary: "secondary summary"}

	got, err := NewFallbackService(primary, secondary).Summarize(context.Background(), "t", "i")
	require.NoError(t, err)
	assert.Equal(t, "secondary summary", got)
	assert.Equal(t, 1, secondary.calls)
}

func TestFallbackReportsPrimaryErrorWhenBothFail(t *testing.T) {
	primaryErr := errors.New("gemini API error: RESOURCE_EXHAUSTED")
	primary := &stubProvider{err: primaryErr}
	secondary := &stubProvider{err: errors.New("openai completion: connection refused")}

	_, err := NewFallbackService(primary, secondary).Summarize(context.Background(), "t", "i")
	require.Error(t, err)
	assert.ErrorIs(t, err, primaryErr)
}

func TestFallbackSkipsSecondaryOnCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	primary := &stubProvider{err: context.Canceled}
	secondary := &stubProvider{summary: "unused"}

	_, err := NewFallbackService(primary, secondary).Summarize(ctx, "t", "i")
	require.Error(t, err)
	assert.Equal(t, 0, secondary.calls)
}

func TestIsConnectionError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"dial tcp", errors.New("dial tcp: connection refused"), true},
		{"no such host", errors.New("lookup api.example.com: no such host"), true},
		{"unexpected EOF", errors.New("unexpected EOF"), true},
		{"plain failure", errors.New("invalid request body"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isConnectionError(tt.err))
		})
	}
}

func TestIsQuotaError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"429", errors.New("status code 429"), true},
		{"resource exhausted", errors.New("rpc error: RESOURCE_EXHAUSTED"), true},
		{"rate limit", errors.New("rate limit exceeded"), true},
		{"plain failure", errors.New("bad gateway"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isQuotaError(tt.err))
		})
	}
}
