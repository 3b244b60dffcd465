package mailer

import (
	"fmt"
	"net/smtp"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/lucasmonteiro/portfolio-api/internal/config"
	"github.com/lucasmonteiro/portfolio-api/internal/models"
)

// Mailer sends transactional mail through a plain SMTP relay
// (Mailpit-compatible in development).
type Mailer struct {
	addr string
	from string

	ownerName  string
	ownerEmail string

	log *zap.Logger
}

func New(cfg *config.Config, log *zap.Logger) *Mailer {
	from := strings.TrimSpace(cfg.SMTPFrom)
	if from == "" {
		from = "no-reply@portfolio.local"
	}

	return &Mailer{
		addr:       cfg.SMTPAddr(),
		from:       from,
		ownerName:  cfg.OwnerName,
		ownerEmail: cfg.OwnerEmail,
		log:        log,
	}
}

// BookingReceived notifies the owner of a new booking request and echoes
// a confirmation back to the visitor. Best effort: a mail failure never
// fails the booking, it is only logged.
func (m *Mailer) BookingReceived(ap *models.Appointment) {
	go func() {
		subject, body, err := bookingOwnerMessage(ap)
		if err == nil {
			err = m.send(m.ownerEmail, subject, body)
		}
		if err != nil {
			m.log.Error("owner booking notification failed",
				zap.String("reference", ap.Reference),
				zap.Error(err),
			)
		}

		subject, body, err = bookingVisitorMessage(ap, m.ownerName)
		if err == nil {
			err = m.send(ap.Email, subject, body)
		}
		if err != nil {
			m.log.Error("visitor booking confirmation failed",
				zap.String("reference", ap.Reference),
				zap.Error(err),
			)
		}
	}()
}

// RelayContact forwards a contact-form message to the owner.
func (m *Mailer) RelayContact(msg *models.ContactMessage) error {
	subject, body, err := contactRelayMessage(msg)
	if err != nil {
		return err
	}
	return m.send(m.ownerEmail, subject, body)
}

func (m *Mailer) send(to, subject, body string) error {
	raw := buildMessage(m.from, to, subject, body)
	return smtp.SendMail(m.addr, nil, m.from, []string{to}, []byte(raw))
}

// buildMessage assembles a minimal RFC 5322 HTML message.
func buildMessage(from, to, subject, body string) string {
	return fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\nDate: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/html; charset=utf-8\r\n\r\n%s\r\n",
		from,
		to,
		subject,
		time.Now().Format(time.RFC1123Z),
		body,
	)
}
