package dto

type SendEmailRequest struct {
	Summary    string   `json:"summary" binding:"required"`
	Recipients []string `json:"recipients" binding:"required,min=1,dive,required,email"`
	Subject    string   `json:"subject"`
}

type SendEmailResponse struct {
	Ok bool `json:"ok"`
}
