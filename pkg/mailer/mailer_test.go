package mailer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ Sender = (*SMTPSender)(nil)

func TestConfigured(t *testing.T) {
	tests := []struct {
		name   string
		sender *SMTPSender
		want   bool
	}{
		{"complete", NewSMTPSender("smtp.example.com", 587, "u@example.com", "secret", "u@example.com"), true},
		{"from defaults to user", NewSMTPSender("smtp.example.com", 587, "u@example.com", "secret", ""), true},
		{"missing host", NewSMTPSender("", 587, "u@example.com", "secret", ""), false},
		{"missing password", NewSMTPSender("smtp.example.com", 587, "u@example.com", "", ""), false},
		{"missing user and from", NewSMTPSender("smtp.example.com", 587, "", "secret", ""), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.sender.Configured())
		})
	}
}

func TestSendUnconfigured(t *testing.T) {
	s := NewSMTPSender("", 0, "", "", "")

	err := s.Send(context.Background(), Message{To: []string{"a@example.com"}, Subject: "Notes", Body: "hi"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SMTP not configured")
}

func TestHTMLBodyEscapes(t *testing.T) {
	got := htmlBody("a < b & c")

	assert.Contains(t, got, "a &lt; b &amp; c")
	assert.Contains(t, got, "<pre")
}
