package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"summarizer-backend/pkg/mailer"

	"github.com/go-playground/validator/v10"
)

// DefaultSubject is used when the client omits a subject.
const DefaultSubject = "Meeting Summary"

var (
	ErrNoRecipients = errors.New("at least one recipient is required")
	ErrEmptyBody    = errors.New("summary body must not be empty")
)

// InvalidRecipientError identifies the address that failed syntax validation.
type InvalidRecipientError struct {
	Address string
}

func (e *InvalidRecipientError) Error() string {
	return fmt.Sprintf("invalid recipient address: %q", e.Address)
}

// IsValidationError reports whether err was caused by bad client input.
func IsValidationError(err error) bool {
	var invalidRecipient *InvalidRecipientError
	return errors.Is(err, ErrNoRecipients) ||
		errors.Is(err, ErrEmptyBody) ||
		errors.As(err, &invalidRecipient)
}

type MailUsecase interface {
	SendSummary(ctx context.Context, recipients []string, subject, body string) error
}

type mailUsecase struct {
	sender   mailer.Sender
	validate *validator.Validate
}

func NewMailUsecase(sender mailer.Sender) MailUsecase {
	return &mailUsecase{
		sender:   sender,
		validate: validator.New(),
	}
}

// SendSummary validates every recipient before the relay is dialed; one bad
// address rejects the whole request and nothing is sent.
func (u *mailUsecase) SendSummary(ctx context.Context, recipients []string, subject, body string) error {
	body = strings.TrimSpace(body)
	if body == "" {
		return ErrEmptyBody
	}
	if len(recipients) == 0 {
		return ErrNoRecipients
	}

	cleaned := make([]string, 0, len(recipients))
	for _, recipient := range recipients {
		recipient = strings.TrimSpace(recipient)
		if err := u.validate.Var(recipient, "required,email"); err != nil {
			return &InvalidRecipientError{Address: recipient}
		}
		cleaned = append(cleaned, recipient)
	}

	if subject == "" {
		subject = DefaultSubject
	}

	msg := mailer.Message{
		To:      cleaned,
		Subject: subject,
		Body:    body,
	}
	if err := u.sender.Send(ctx, msg); err != nil {
		return fmt.Errorf("send summary email: %w", err)
	}
	return nil
}
