package external_services

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	"gopkg.in/gomail.v2"

	"github.com/echolabs-dev/echo-api/internal/domain/contract"
)

// EmailService sends transactional HTML mail over SMTP.
type EmailService struct {
	dialer *gomail.Dialer
	from   string
}

// EmailService factory
func NewEmailService(host string, port int, username, password, from string) *EmailService {
	return &EmailService{
		dialer: gomail.NewDialer(host, port, username, password),
		from:   from,
	}
}

// make sure EmailService implements contract.IMailService
var _ contract.IMailService = (*EmailService)(nil)

// SendVerificationEmail delivers the account verification mail carrying the
// given link.
func (es *EmailService) SendVerificationEmail(ctx context.Context, to, displayName, verificationURL string) error {
	body, err := renderTemplate(verificationEmailTmpl, templateData{
		DisplayName: displayName,
		URL:         verificationURL,
	})
	if err != nil {
		return fmt.Errorf("failed to render verification email: %w", err)
	}
	return es.send(to, "Verify your Echo account", body)
}

// SendPasswordResetEmail delivers the password reset mail. No route issues
// reset tokens yet; the template and sender are kept ready for when one does.
func (es *EmailService) SendPasswordResetEmail(ctx context.Context, to, displayName, resetURL string) error {
	body, err := renderTemplate(passwordResetEmailTmpl, templateData{
		DisplayName: displayName,
		URL:         resetURL,
	})
	if err != nil {
		return fmt.Errorf("failed to render password reset email: %w", err)
	}
	return es.send(to, "Reset your Echo password", body)
}

func (es *EmailService) send(to, subject, htmlBody string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", es.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)

	if err := es.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

type templateData struct {
	DisplayName string
	URL         string
}

func renderTemplate(tmpl *template.Template, data templateData) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
