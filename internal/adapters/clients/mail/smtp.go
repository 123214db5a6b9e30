// Package mail delivers contact-form messages over SMTP with go-mail.
package mail

import (
	"context"
	"crypto/tls"
	"fmt"
	"log/slog"

	gomail "github.com/wneessen/go-mail"

	"github.com/MiguelCav2025/sitecav/internal/domain"
	"github.com/MiguelCav2025/sitecav/internal/platform/config"
	"github.com/MiguelCav2025/sitecav/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.Mailer = (*SMTP)(nil)
	_ ports.Mailer = Disabled{}
)

// TLS modes accepted in MailConfig.TLS.
const (
	TLSStartTLS = "starttls"
	TLSImplicit = "tls"
	TLSNone     = "none"
)

// SMTP sends every message to the configured inbox.
type SMTP struct {
	cfg    config.MailConfig
	logger *slog.Logger
}

// NewSMTP creates an SMTP mailer. No connection is made until Send.
func NewSMTP(cfg config.MailConfig, logger *slog.Logger) *SMTP {
	return &SMTP{cfg: cfg, logger: logger}
}

// Send delivers a plain-text message from cfg.From to cfg.To.
func (s *SMTP) Send(ctx context.Context, replyTo, subject, body string) error {
	msg, err := s.message(replyTo, subject, body)
	if err != nil {
		return err
	}

	client, err := gomail.NewClient(s.cfg.Host, s.clientOptions()...)
	if err != nil {
		return fmt.Errorf("creating smtp client for %s:%d: %w", s.cfg.Host, s.cfg.Port, err)
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		s.logger.ErrorContext(ctx, "smtp delivery failed",
			slog.String("host", s.cfg.Host),
			slog.Int("port", s.cfg.Port),
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("%w: sending mail via %s:%d: %w", domain.ErrUnavailable, s.cfg.Host, s.cfg.Port, err)
	}
	return nil
}

func (s *SMTP) message(replyTo, subject, body string) (*gomail.Msg, error) {
	msg := gomail.NewMsg()
	if err := msg.From(s.cfg.From); err != nil {
		return nil, fmt.Errorf("setting sender %q: %w", s.cfg.From, err)
	}
	if err := msg.To(s.cfg.To); err != nil {
		return nil, fmt.Errorf("setting recipient %q: %w", s.cfg.To, err)
	}
	if replyTo != "" {
		if err := msg.ReplyTo(replyTo); err != nil {
			return nil, domain.NewValidationError("email", "endereço inválido")
		}
	}
	msg.Subject(subject)
	msg.SetBodyString(gomail.TypeTextPlain, body)
	return msg, nil
}

func (s *SMTP) clientOptions() []gomail.Option {
	opts := []gomail.Option{gomail.WithPort(s.cfg.Port)}

	switch s.cfg.TLS {
	case TLSImplicit:
		opts = append(opts, gomail.WithSSL(), gomail.WithTLSConfig(&tls.Config{
			ServerName: s.cfg.Host,
			MinVersion: tls.VersionTLS12,
		}))
	case TLSNone:
		opts = append(opts, gomail.WithTLSPolicy(gomail.NoTLS))
	default:
		opts = append(opts, gomail.WithTLSPolicy(gomail.TLSMandatory), gomail.WithTLSConfig(&tls.Config{
			ServerName: s.cfg.Host,
			MinVersion: tls.VersionTLS12,
		}))
	}

	if s.cfg.Username != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(s.cfg.Username),
			gomail.WithPassword(s.cfg.Password),
		)
	}
	return opts
}

// Disabled is the mailer used when mail is turned off.
type Disabled struct{}

// Send always fails with domain.ErrUnavailable.
func (Disabled) Send(context.Context, string, string, string) error {
	return fmt.Errorf("%w: mail delivery is disabled", domain.ErrUnavailable)
}
