package service

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/reviewzone/ReviewZone_Backend/internal/config"
)

// EmailSender abstracts outbound mail so flows that send email can be tested
// without a live SendGrid account.
type EmailSender interface {
	SendPasswordResetEmail(toEmail, toName, token string) error
}

// LogEmailSender logs reset links instead of sending mail. Used in
// development when no SendGrid key is configured.
type LogEmailSender struct{}

// SendPasswordResetEmail logs the reset token for manual redemption.
func (s *LogEmailSender) SendPasswordResetEmail(toEmail, toName, token string) error {
	log.Info().
		Str("to", toEmail).
		Str("name", toName).
		Str("token", token).
		Msg("Password reset email (not sent, no mail provider configured)")
	return nil
}

// EmailService sends transactional mail through SendGrid.
type EmailService struct {
	cfg *config.EmailSettings
}

// NewEmailService creates a new EmailService.
func NewEmailService(cfg *config.EmailSettings) (*EmailService, error) {
	if cfg.SendGridAPIKey == "" {
		return nil, fmt.Errorf("SendGrid API key not configured")
	}
	return &EmailService{cfg: cfg}, nil
}

// SendPasswordResetEmail sends a password reset link to the given address.
// The token is embedded in the link path and redeemed within five minutes.
func (s *EmailService) SendPasswordResetEmail(toEmail, toName, token string) error {
	from := mail.NewEmail(s.cfg.FromName, s.cfg.FromAddress)
	to := mail.NewEmail(toName, toEmail)
	subject := "ReviewZone Password Reset"

	resetLink := fmt.Sprintf("%s/%s", s.cfg.ResetURLBase, token)
	plainTextContent := fmt.Sprintf(
		"Hello %s,\n\nYou requested a password reset for your ReviewZone account. "+
			"Use the link below within 5 minutes to choose a new password:\n\n%s\n\n"+
			"If you did not request this, you can ignore this email.",
		toName, resetLink,
	)
	htmlContent := fmt.Sprintf(
		"<p>Hello %s,</p><p>You requested a password reset for your ReviewZone account. "+
			"Use the link below within <strong>5 minutes</strong> to choose a new password:</p>"+
			"<p><a href=%q>Reset your password</a></p>"+
			"<p>If you did not request this, you can ignore this email.</p>",
		toName, resetLink,
	)

	message := mail.NewSingleEmail(from, subject, to, plainTextContent, htmlContent)
	client := sendgrid.NewSendClient(s.cfg.SendGridAPIKey)

	response, err := client.Send(message)
	if err != nil {
		log.Error().Err(err).Msg("Failed to send password reset email")
		return err
	}

	log.Info().Int("status_code", response.StatusCode).Msg("Password reset email sent")
	return nil
}
