package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/resend/resend-go/v2"
)

// ResendEmailSender sends transactional email through Resend. A sender built
// without an API key is inert and callers treat it as not configured.
type ResendEmailSender struct {
	client *resend.Client
	from   string
}

func NewResendEmailSender(apiKey string, from string) *ResendEmailSender {
	if strings.TrimSpace(apiKey) == "" || strings.TrimSpace(from) == "" {
		return &ResendEmailSender{}
	}
	return &ResendEmailSender{
		client: resend.NewClient(apiKey),
		from:   from,
	}
}

func (s *ResendEmailSender) Configured() bool {
	return s.client != nil
}

func (s *ResendEmailSender) SendWelcomeEmail(ctx context.Context, email string, name string) error {
	if s.client == nil {
		return fmt.Errorf("email sender not configured")
	}
	params := &resend.SendEmailRequest{
		From:    s.from,
		To:      []string{email},
		Subject: "Welcome to AutoCatalog",
		Html:    fmt.Sprintf("<p>Hi %s,</p><p>Your account is ready. Happy trading!</p>", name),
		Text:    fmt.Sprintf("Hi %s, your account is ready.", name),
	}
	_, err := s.client.Emails.Send(params)
	return err
}
