package main

import (
	api "summarizer-backend/cmd/api"
	mailUsecase "summarizer-backend/internal/mail/usecase"
	summaryUsecase "summarizer-backend/internal/summary/usecase"
	"summarizer-backend/pkg/ai"
	"summarizer-backend/pkg/config"
	"summarizer-backend/pkg/logger"
	"summarizer-backend/pkg/mailer"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize AI service (dependency injection)
	aiService, err := ai.NewSummarizerService(ai.Config{
		Provider:      ai.ProviderType(cfg.AIProvider),
		GeminiAPIKey:  cfg.GeminiApiKey,
		GeminiModel:   cfg.GeminiModel,
		OpenAIAPIKey:  cfg.OpenAIApiKey,
		OpenAIBaseURL: cfg.OpenAIBaseURL,
		OpenAIModel:   cfg.OpenAIModel,
	})
	if err != nil {
		logger.Fatalf("Failed to initialize AI service: %v", err)
	}
	logger.Infof("AI service initialized with provider: %s", cfg.AIProvider)

	// Initialize SMTP sender
	sender := mailer.NewSMTPSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.FromEmail)
	if !sender.Configured() {
		logger.Warnf("SMTP not fully configured, email delivery will fail until SMTP_* and FROM_EMAIL are set")
	}

	// Initialize use cases
	summaryUc := summaryUsecase.NewSummaryUsecase(aiService, cfg.SummaryTimeout, cfg.MaxTranscriptBytes)
	mailUc := mailUsecase.NewMailUsecase(sender)

	// Initialize HTTP handler
	handler := api.NewHandler(summaryUc, mailUc, cfg)

	// Start server
	logger.Infof("Server starting on port %s", cfg.Port)
	if err := handler.Start(":" + cfg.Port); err != nil {
		logger.Fatalf("Failed to start server: %v", err)
	}
}
