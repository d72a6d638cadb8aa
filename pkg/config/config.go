package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port string

	AIProvider   string
	GeminiApiKey string
	GeminiModel  string

	OpenAIApiKey  string
	OpenAIBaseURL string
	OpenAIModel   string

	SummaryTimeout     time.Duration
	MaxTranscriptBytes int64

	SMTPHost  string
	SMTPPort  int
	SMTPUser  string
	SMTPPass  string
	FromEmail string
}

func Load() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()

	summaryTimeout := 60 * time.Second
	if t := os.Getenv("SUMMARY_TIMEOUT"); t != "" {
		if parsed, err := time.ParseDuration(t); err == nil {
			summaryTimeout = parsed
		}
	}

	// 1 MiB is a conservative ceiling for a pasted meeting transcript
	maxTranscriptBytes := int64(1 << 20)
	if m := os.Getenv("MAX_TRANSCRIPT_BYTES"); m != "" {
		if parsed, err := strconv.ParseInt(m, 10, 64); err == nil && parsed > 0 {
			maxTranscriptBytes = parsed
		}
	}

	smtpPort := 587
	if p := os.Getenv("SMTP_PORT"); p != "" {
		if parsed, err := strconv.Atoi(p); err == nil && parsed > 0 {
			smtpPort = parsed
		}
	}

	smtpUser := getEnv("SMTP_USER", "")

	return &Config{
		Port:               getEnv("PORT", "8000"),
		AIProvider:         getEnv("AI_PROVIDER", "auto"),
		GeminiApiKey:       getEnv("GEMINI_API_KEY", ""),
		GeminiModel:        getEnv("GEMINI_MODEL", "gemini-1.5-flash"),
		OpenAIApiKey:       getEnv("OPENAI_API_KEY", ""),
		OpenAIBaseURL:      getEnv("OPENAI_BASE_URL", ""),
		OpenAIModel:        getEnv("OPENAI_MODEL", ""),
		SummaryTimeout:     summaryTimeout,
		MaxTranscriptBytes: maxTranscriptBytes,
		SMTPHost:           getEnv("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:           smtpPort,
		SMTPUser:           smtpUser,
		SMTPPass:           getEnv("SMTP_PASS", ""),
		FromEmail:          getEnv("FROM_EMAIL", smtpUser),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
