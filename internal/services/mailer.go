package services

import (
	"fmt"

	"github.com/rs/zerolog/log"
	gomail "gopkg.in/gomail.v2"

	"github.com/SallahBoussettah/portfolio-api/internal/config"
	"github.com/SallahBoussettah/portfolio-api/internal/models"
)

// Mailer sends transactional emails. Delivery is at-least-effort: failures
// are logged and never propagate to the originating request.
type Mailer interface {
	// SendContactNotification notifies the admin of a new contact submission
	SendContactNotification(contact *models.Contact)

	// SendAutoReply confirms receipt to the submitter
	SendAutoReply(contact *models.Contact)

	// SendResetCode delivers a password reset code to the admin address
	SendResetCode(to, code string)
}

// SMTPMailer sends email through an SMTP transport.
type SMTPMailer struct {
	dialer     *gomail.Dialer
	from       string
	adminEmail string
}

// NewMailer returns an SMTP mailer, or a no-op mailer when SMTP is not
// configured so the rest of the app does not need to care.
func NewMailer(cfg *config.Config) Mailer {
	if cfg.SMTPHost == "" {
		log.Warn().Msg("SMTP not configured, email delivery disabled")
		return &nopMailer{}
	}

	from := cfg.SMTPFrom
	if from == "" {
		from = cfg.SMTPUser
	}

	return &SMTPMailer{
		dialer:     gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword),
		from:       from,
		adminEmail: cfg.AdminEmail,
	}
}

func (m *SMTPMailer) send(to, subject, htmlBody string) {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)

	if err := m.dialer.DialAndSend(msg); err != nil {
		log.Error().Err(err).Str("to", to).Str("subject", subject).Msg("Failed to send email")
		return
	}
	log.Info().Str("to", to).Str("subject", subject).Msg("Email sent")
}

func (m *SMTPMailer) SendContactNotification(contact *models.Contact) {
	if m.adminEmail == "" {
		log.Warn().Msg("ADMIN_EMAIL not set, skipping contact notification")
		return
	}

	subject := fmt.Sprintf("New contact message: %s", contact.Subject)
	body := fmt.Sprintf(
		"<h2>New contact submission</h2>"+
			"<p><strong>From:</strong> %s &lt;%s&gt;</p>"+
			"<p><strong>Subject:</strong> %s</p>"+
			"<p>%s</p>",
		contact.Name, contact.Email, contact.Subject, contact.Message)
	m.send(m.adminEmail, subject, body)
}

func (m *SMTPMailer) SendAutoReply(contact *models.Contact) {
	subject := "Thanks for getting in touch"
	body := fmt.Sprintf(
		"<p>Hi %s,</p>"+
			"<p>Thanks for your message about \"%s\". I'll get back to you as soon as I can.</p>",
		contact.Name, contact.Subject)
	m.send(contact.Email, subject, body)
}

func (m *SMTPMailer) SendResetCode(to, code string) {
	subject := "Password reset code"
	body := fmt.Sprintf(
		"<p>Your password reset code is:</p><h2>%s</h2>"+
			"<p>It expires in 15 minutes. If you did not request this, ignore this email.</p>",
		code)
	m.send(to, subject, body)
}

// nopMailer drops every message. Used when SMTP is not configured and in tests.
type nopMailer struct{}

func (n *nopMailer) SendContactNotification(*models.Contact) {}
func (n *nopMailer) SendAutoReply(*models.Contact)           {}
func (n *nopMailer) SendResetCode(string, string)            {}
