// SPDX-License-Identifier: MIT
package email

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net"
	"net/smtp"
	"os"
	"strings"
	"time"

	"github.com/devcontracting/dcsite/internal/logger"
	"github.com/devcontracting/dcsite/internal/models"
)

// ErrNotConfigured is returned when SMTP settings are missing.
var ErrNotConfigured = errors.New("missing SMTP configuration in environment")

// Sender delivers a plain text message.
type Sender interface {
	Send(ctx context.Context, to, subject, body string) error
}

type EmailService struct {
	host     string
	port     string
	email    string
	password string
	log      *logger.Logger
}

// NewEmailService reads SMTP, SMTP_PORT, EMAIL and SMTP_SECRET from the environment
func NewEmailService(log *logger.Logger) (*EmailService, error) {
	host := os.Getenv("SMTP")
	port := os.Getenv("SMTP_PORT")
	email := os.Getenv("EMAIL")
	password := os.Getenv("SMTP_SECRET")

	if host == "" || port == "" || email == "" || password == "" {
		return nil, ErrNotConfigured
	}
	if log == nil {
		log = logger.Nop()
	}

	return &EmailService{
		host:     host,
		port:     port,
		email:    email,
		password: password,
		log:      log,
	}, nil
}

// From returns the sender address
func (es *EmailService) From() string {
	return es.email
}

// Send delivers one message. The context deadline bounds the whole SMTP exchange.
func (es *EmailService) Send(ctx context.Context, to, subject, body string) error {
	addr := net.JoinHostPort(es.host, es.port)
	tlsconfig := &tls.Config{ServerName: es.host}

	var conn net.Conn
	var err error
	dialer := &net.Dialer{Timeout: 10 * time.Second}

	if es.port == "587" {
		// STARTTLS: connect plain, upgrade below
		conn, err = dialer.DialContext(ctx, "tcp", addr)
	} else {
		// Implicit TLS (465)
		td := &tls.Dialer{NetDialer: dialer, Config: tlsconfig}
		conn, err = td.DialContext(ctx, "tcp", addr)
	}
	if err != nil {
		return fmt.Errorf("failed to dial SMTP: %w", err)
	}
	defer conn.Close()

	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetDeadline(deadline)
	}

	client, err := smtp.NewClient(conn, es.host)
	if err != nil {
		return fmt.Errorf("failed to create SMTP client: %w", err)
	}
	defer client.Close()

	if es.port == "587" {
		if err = client.StartTLS(tlsconfig); err != nil {
			return fmt.Errorf("failed to start TLS: %w", err)
		}
	}

	if err := client.Auth(smtp.PlainAuth("", es.email, es.password, es.host)); err != nil {
		return fmt.Errorf("SMTP authentication failed: %w", err)
	}

	if err := client.Mail(es.email); err != nil {
		return fmt.Errorf("failed to set sender: %w", err)
	}

	if err := client.Rcpt(to); err != nil {
		return fmt.Errorf("failed to set recipient: %w", err)
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("failed to write data: %w", err)
	}

	if _, err := w.Write(BuildMessage(es.email, to, subject, body)); err != nil {
		w.Close()
		return fmt.Errorf("failed to write message: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("failed to finish message: %w", err)
	}

	// Some servers answer QUIT with a non-standard code after accepting the message
	if err := client.Quit(); err != nil {
		es.log.WithFields(map[string]any{"error": err.Error()}).Debug("SMTP QUIT returned non-standard response")
	}

	es.log.WithFields(map[string]any{"to": to, "subject": subject}).Info("email sent")
	return nil
}

// BuildMessage renders headers and body with CRLF line endings
func BuildMessage(from, to, subject, body string) []byte {
	body = strings.ReplaceAll(body, "\r\n", "\n")
	body = strings.ReplaceAll(body, "\n", "\r\n")
	return []byte(fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/plain; charset=UTF-8\r\n\r\n%s",
		from, to, headerSafe(subject), body))
}

// headerSafe strips line breaks so visitor text cannot inject headers.
func headerSafe(s string) string {
	return strings.NewReplacer("\r", " ", "\n", " ").Replace(s)
}

// ContactSubject is the subject line for a lead notification
func ContactSubject(lead *models.ContactSubmission) string {
	return headerSafe(fmt.Sprintf("New project inquiry from %s", lead.Name))
}

// ContactBody is the plain text notification for a lead
func ContactBody(lead *models.ContactSubmission) string {
	phone := lead.Phone
	if phone == "" {
		phone = "(not provided)"
	}
	project := lead.Project
	if project == "" {
		project = "(no details)"
	}
	return fmt.Sprintf(`A new inquiry came in through the website.

Name:      %s
Email:     %s
Phone:     %s
Reference: %s
Received:  %s

Project details:
%s
`, lead.Name, lead.Email, phone, lead.Reference, lead.CreatedAt.Format(time.RFC1123), project)
}

// SendContactNotification tells the contractor about a new lead
func SendContactNotification(ctx context.Context, s Sender, to string, lead *models.ContactSubmission) error {
	if s == nil {
		return ErrNotConfigured
	}
	return s.Send(ctx, to, ContactSubject(lead), ContactBody(lead))
}
