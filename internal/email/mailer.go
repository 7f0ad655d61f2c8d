// Package email delivers verification codes to members.
package email

import (
	"context"
	"fmt"
	"log/slog"
	"net/smtp"

	"github.com/rolandaayo/Astral-cu/internal/config"
)

// Mailer sends a verification code to an address. Implementations must
// report delivery failure so callers can roll back signup state.
type Mailer interface {
	SendVerificationCode(ctx context.Context, to, code string) error
}

// SMTPMailer sends verification emails over SMTP.
type SMTPMailer struct {
	addr string
	auth smtp.Auth
	from string
}

// NewSMTPMailer creates an SMTP-backed mailer from config.
func NewSMTPMailer(cfg *config.SMTPConfig) *SMTPMailer {
	var auth smtp.Auth
	if cfg.Username != "" {
		auth = smtp.PlainAuth("", cfg.Username, cfg.Password, cfg.Host)
	}
	return &SMTPMailer{
		addr: cfg.Host + ":" + cfg.Port,
		auth: auth,
		from: cfg.From,
	}
}

// SendVerificationCode delivers the 6-digit code. The message body mirrors
// the account-opening email members receive in other channels.
func (m *SMTPMailer) SendVerificationCode(_ context.Context, to, code string) error {
	body := fmt.Sprintf(
		"From: Astral Credit Union <%s>\r\n"+
			"To: %s\r\n"+
			"Subject: Astral Credit Union - Email Verification\r\n"+
			"MIME-Version: 1.0\r\n"+
			"Content-Type: text/plain; charset=utf-8\r\n"+
			"\r\n"+
			"Thank you for signing up with Astral Credit Union.\r\n"+
			"\r\n"+
			"Your verification code is: %s\r\n"+
			"\r\n"+
			"This code expires in 10 minutes. If you didn't create an account\r\n"+
			"with us, please ignore this email.\r\n",
		m.from, to, code,
	)

	if err := smtp.SendMail(m.addr, m.auth, m.from, []string{to}, []byte(body)); err != nil {
		return fmt.Errorf("failed to send verification email: %w", err)
	}

	return nil
}

// LogMailer logs verification codes instead of sending them. Used in
// development when no SMTP host is configured.
type LogMailer struct {
	logger *slog.Logger
}

// NewLogMailer creates a logging mailer.
func NewLogMailer(logger *slog.Logger) *LogMailer {
	return &LogMailer{logger: logger}
}

func (m *LogMailer) SendVerificationCode(ctx context.Context, to, code string) error {
	m.logger.InfoContext(ctx, "verification code issued",
		"email", to,
		"code", code,
	)
	return nil
}
