package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "AI_PROVIDER", "GEMINI_MODEL", "SMTP_HOST", "SMTP_PORT", "SUMMARY_TIMEOUT", "MAX_TRANSCRIPT_BYTES"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "8000", cfg.Port)
	assert.Equal(t, "auto", cfg.AIProvider)
	assert.Equal(t, "gemini-1.5-flash", cfg.GeminiModel)
	assert.Equal(t, "smtp.gmail.com", cfg.SMTPHost)
	assert.Equal(t, 587, cfg.SMTPPort)
	assert.Equal(t, 60*time.Second, cfg.SummaryTimeout)
	assert.Equal(t, int64(1<<20), cfg.MaxTranscriptBytes)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("AI_PROVIDER", "gemini")
	t.Setenv("GEMINI_MODEL", "gemini-1.5-pro")
	t.Setenv("SUMMARY_TIMEOUT", "30s")
	t.Setenv("MAX_TRANSCRIPT_BYTES", "2048")
	t.Setenv("SMTP_PORT", "2525")
	t.Setenv("SMTP_USER", "bot@example.com")

	cfg := Load()

	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "gemini", cfg.AIProvider)
	assert.Equal(t, "gemini-1.5-pro", cfg.GeminiModel)
	assert.Equal(t, 30*time.Second, cfg.SummaryTimeout)
	assert.Equal(t, int64(2048), cfg.MaxTranscriptBytes)
	assert.Equal(t, 2525, cfg.SMTPPort)
	assert.Equal(t, "bot@example.com", cfg.SMTPUser)
}

func TestFromEmailFallsBackToSMTPUser(t *testing.T) {
	t.Setenv("SMTP_USER", "bot@example.com")
	t.Setenv("FROM_EMAIL", "")

	cfg := Load()
	assert.Equal(t, "bot@example.com", cfg.FromEmail)
}

func TestInvalidDurationKeepsDefault(t *testing.T) {
	t.Setenv("SUMMARY_TIMEOUT", "soon")

	cfg := Load()
	assert.Equal(t, 60*time.Second, cfg.SummaryTimeout)
}
