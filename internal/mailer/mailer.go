// Package mailer delivers password-reset codes out of band. Codes are never
// returned through the API, so a working Mailer is the only way a user
// receives one.
package mailer

import (
	"fmt"

	"github.com/mailjet/mailjet-apiv3-go"

	"grana/internal/config"
	"grana/internal/logger"
)

// Mailer sends transactional mail to a single recipient.
type Mailer interface {
	SendResetCode(email, code string) error
}

// New returns a Mailjet-backed mailer when credentials are configured, and a
// logging dev mailer otherwise.
func New(cfg *config.Config) Mailer {
	if cfg.MailAPIKey == "" || cfg.MailAPISecret == "" {
		logger.Get().Warn("Mail credentials not configured; reset codes will be logged instead of emailed")
		return &logMailer{}
	}
	return &mailjetMailer{
		client:     mailjet.NewMailjetClient(cfg.MailAPIKey, cfg.MailAPISecret),
		sender:     cfg.MailSender,
		senderName: cfg.MailSenderName,
	}
}

// mailjetMailer sends mail through the Mailjet v3.1 API.
type mailjetMailer struct {
	client     *mailjet.Client
	sender     string
	senderName string
}

func (m *mailjetMailer) SendResetCode(email, code string) error {
	body := fmt.Sprintf("Your password reset code is: %s\n\n"+
		"The code expires in 15 minutes. If you did not request a reset, you can ignore this message.", code)

	messages := mailjet.MessagesV31{Info: []mailjet.InfoMessagesV31{
		{
			From: &mailjet.RecipientV31{
				Email: m.sender,
				Name:  m.senderName,
			},
			To: &mailjet.RecipientsV31{
				{Email: email},
			},
			Subject:  "Grana password reset code",
			TextPart: body,
		},
	}}

	if _, err := m.client.SendMailV31(&messages); err != nil {
		return fmt.Errorf("failed to send reset code: %w", err)
	}
	return nil
}

// logMailer is a development fallback that logs the code instead of sending it.
type logMailer struct{}

func (m *logMailer) SendResetCode(email, code string) error {
	logger.Get().Infow("password reset code issued (dev mailer)",
		"email", email,
		"code", code,
	)
	return nil
}
