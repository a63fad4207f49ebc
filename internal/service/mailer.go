package service

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/smtp"
	"strconv"
	"strings"
	"time"

	"ai_linguo/internal/config"
	"ai_linguo/internal/middleware"
)

// Mailer delivers plain-text study reminders.
//
//go:generate mockery --name Mailer --output ./mocks --outpkg mocks --case=underscore
type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}

// LogMailer writes reminders to the log instead of sending them.
type LogMailer struct{}

func (m *LogMailer) Send(ctx context.Context, to, subject, body string) error {
	middleware.GetLogger(ctx).Info("Reminder mail (not sent)", "to", to, "subject", subject, "body", body)
	return nil
}

// SmtpMailer talks plain SMTP without auth, e.g. to a local MailHog.
type SmtpMailer struct {
	addr string
	from string
	now  func() time.Time
}

func NewSmtpMailer(cfg *config.SMTPConfig) *SmtpMailer {
	return &SmtpMailer{
		addr: net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
		from: cfg.From,
		now:  time.Now,
	}
}

func (m *SmtpMailer) Send(ctx context.Context, to, subject, body string) error {
	logger := middleware.GetLogger(ctx).With("smtp_addr", m.addr, "to", to)

	var dialer net.Dialer
	conn, err := dialer.DialContext(ctx, "tcp", m.addr)
	if err != nil {
		logger.Error("Failed to connect to SMTP server", "error", err)
		return fmt.Errorf("SmtpMailer.Send: dial: %w", err)
	}
	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetDeadline(deadline)
	}

	host, _, _ := net.SplitHostPort(m.addr)
	c, err := smtp.NewClient(conn, host)
	if err != nil {
		conn.Close()
		return fmt.Errorf("SmtpMailer.Send: handshake: %w", err)
	}
	defer c.Close()

	if err := c.Mail(m.from); err != nil {
		return fmt.Errorf("SmtpMailer.Send: MAIL FROM: %w", err)
	}
	if err := c.Rcpt(to); err != nil {
		return fmt.Errorf("SmtpMailer.Send: RCPT TO: %w", err)
	}
	wc, err := c.Data()
	if err != nil {
		return fmt.Errorf("SmtpMailer.Send: DATA: %w", err)
	}
	if _, err := wc.Write(buildPlainMessage(m.from, to, subject, body, m.now())); err != nil {
		wc.Close()
		return fmt.Errorf("SmtpMailer.Send: write: %w", err)
	}
	if err := wc.Close(); err != nil {
		return fmt.Errorf("SmtpMailer.Send: end of data: %w", err)
	}
	if err := c.Quit(); err != nil {
		logger.Warn("SMTP QUIT failed", "error", err)
	}

	logger.Info("Reminder mail sent via SMTP", "subject", subject)
	return nil
}

// buildPlainMessage renders an RFC 5322 text/plain message with CRLF line endings.
func buildPlainMessage(from, to, subject, body string, date time.Time) []byte {
	var b strings.Builder
	b.WriteString("From: " + from + "\r\n")
	b.WriteString("To: " + to + "\r\n")
	b.WriteString("Subject: " + subject + "\r\n")
	b.WriteString("Date: " + date.Format(time.RFC1123Z) + "\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
	b.WriteString("\r\n")
	b.WriteString(strings.ReplaceAll(strings.ReplaceAll(body, "\r\n", "\n"), "\n", "\r\n"))
	b.WriteString("\r\n")
	return []byte(b.String())
}

// NewMailer returns the mailer named by cfg.Mailer.Type. Unknown types fall
// back to the log mailer.
func NewMailer(cfg *config.Config) (Mailer, error) {
	switch cfg.Mailer.Type {
	case "smtp":
		slog.Info("Reminder mailer: SMTP", "host", cfg.SMTP.Host, "port", cfg.SMTP.Port)
		return NewSmtpMailer(&cfg.SMTP), nil
	case "ses":
		slog.Info("Reminder mailer: SES", "region", cfg.SES.Region)
		m, err := NewSESMailer(cfg)
		if err != nil {
			return nil, err
		}
		return m, nil
	case "log", "":
		return &LogMailer{}, nil
	default:
		slog.Warn("Unknown mailer type, reminders will only be logged", "type", cfg.Mailer.Type)
		return &LogMailer{}, nil
	}
}
