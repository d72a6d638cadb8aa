package delivery

import (
	"net/http"

	maildto "summarizer-backend/internal/mail/dto"
	"summarizer-backend/internal/mail/usecase"

	"github.com/gin-gonic/gin"
)

type MailHandler struct {
	mailUsecase usecase.MailUsecase
}

func NewMailHandler(mailUsecase usecase.MailUsecase) *MailHandler {
	return &MailHandler{
		mailUsecase: mailUsecase,
	}
}

// POST /api/email
// Sends the (possibly edited) summary to the listed recipients.
func (h *MailHandler) SendSummary(c *gin.Context) {
	var req maildto.SendEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.mailUsecase.SendSummary(c.Request.Context(), req.Recipients, req.Subject, req.Summary); err != nil {
		if usecase.IsValidationError(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, maildto.SendEmailResponse{Ok: true})
}
