package api

import (
	"net/http"

	mailDelivery "summarizer-backend/internal/mail/delivery"
	mailUsecase "summarizer-backend/internal/mail/usecase"
	summaryDelivery "summarizer-backend/internal/summary/delivery"
	summaryUsecase "summarizer-backend/internal/summary/usecase"
	"summarizer-backend/pkg/metrics"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, summaryUc summaryUsecase.SummaryUsecase, mailUc mailUsecase.MailUsecase) {
	summaryHandler := summaryDelivery.NewSummaryHandler(summaryUc)
	mailHandler := mailDelivery.NewMailHandler(mailUc)

	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	api := r.Group("/api")
	{
		// Health check
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		api.POST("/summarize", summaryHandler.Summarize)
		api.POST("/summarize/upload", summaryHandler.UploadAndSummarize)
		api.POST("/email", mailHandler.SendSummary)
	}
}
