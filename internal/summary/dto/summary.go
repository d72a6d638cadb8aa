package dto

type SummarizeRequest struct {
	Transcript string `json:"transcript" binding:"required"`
	Prompt     string `json:"prompt" binding:"required"`
}

type SummarizeResponse struct {
	Summary string `json:"summary"`
}
