package api

import (
	mailUsecase "summarizer-backend/internal/mail/usecase"
	summaryUsecase "summarizer-backend/internal/summary/usecase"
	"summarizer-backend/pkg/config"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	summaryUsecase summaryUsecase.SummaryUsecase
	mailUsecase    mailUsecase.MailUsecase
	config         *config.Config
}

func NewHandler(summaryUc summaryUsecase.SummaryUsecase, mailUc mailUsecase.MailUsecase, cfg *config.Config) *Handler {
	return &Handler{
		summaryUsecase: summaryUc,
		mailUsecase:    mailUc,
		config:         cfg,
	}
}

func (h *Handler) Start(addr string) error {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(CORSMiddleware())
	r.Use(ObservabilityMiddleware())

	SetupRoutes(r, h.summaryUsecase, h.mailUsecase)

	return r.Run(addr)
}
