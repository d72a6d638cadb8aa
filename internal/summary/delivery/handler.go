package delivery

import (
	"io"
	"net/http"

	summarydto "summarizer-backend/internal/summary/dto"
	"summarizer-backend/internal/summary/usecase"

	"github.com/gin-gonic/gin"
)

// DefaultUploadPrompt is used when a transcript file is uploaded without an
// accompanying prompt form field.
const DefaultUploadPrompt = "Summarize the meeting and extract action items."

type SummaryHandler struct {
	summaryUsecase usecase.SummaryUsecase
}

func NewSummaryHandler(summaryUsecase usecase.SummaryUsecase) *SummaryHandler {
	return &SummaryHandler{
		summaryUsecase: summaryUsecase,
	}
}

// POST /api/summarize
func (h *SummaryHandler) Summarize(c *gin.Context) {
	var req summarydto.SummarizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.respond(c, req.Transcript, req.Prompt)
}

// POST /api/summarize/upload
// Accepts a multipart .txt transcript upload plus an optional prompt field.
func (h *SummaryHandler) UploadAndSummarize(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "transcript file is required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to open uploaded file"})
		return
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read uploaded file"})
		return
	}

	prompt := c.DefaultPostForm("prompt", DefaultUploadPrompt)

	h.respond(c, string(content), prompt)
}

func (h *SummaryHandler) respond(c *gin.Context, transcript, prompt string) {
	summary, err := h.summaryUsecase.Summarize(c.Request.Context(), transcript, prompt)
	if err != nil {
		if usecase.IsValidationError(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, summarydto.SummarizeResponse{Summary: summary})
}
