package app

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/MiguelCav2025/sitecav/internal/domain/content"
	"github.com/MiguelCav2025/sitecav/internal/ports"
)

var _ ports.ContactService = (*ContactService)(nil)

// ContactService forwards contact-form messages to the center's inbox.
type ContactService struct {
	mailer ports.Mailer
	logger *slog.Logger
}

// NewContactService creates a ContactService.
func NewContactService(mailer ports.Mailer, logger *slog.Logger) *ContactService {
	return &ContactService{mailer: mailer, logger: discardIfNil(logger)}
}

// Send validates msg and mails it with the sender as Reply-To.
func (s *ContactService) Send(ctx context.Context, msg *content.ContactMessage) error {
	if err := msg.Validate(); err != nil {
		return err
	}

	subject := "[Contato] " + strings.TrimSpace(msg.Subject)
	if err := s.mailer.Send(ctx, msg.Email, subject, contactBody(msg)); err != nil {
		s.logger.ErrorContext(ctx, "failed to send contact message",
			slog.String("operation", "ContactService.Send"),
			slog.Any("error", err),
		)
		return err
	}

	s.logger.InfoContext(ctx, "contact message sent")
	return nil
}

func contactBody(msg *content.ContactMessage) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Nome: %s\n", strings.TrimSpace(msg.Name))
	fmt.Fprintf(&b, "E-mail: %s\n", msg.Email)
	if phone := strings.TrimSpace(msg.Phone); phone != "" {
		fmt.Fprintf(&b, "Telefone: %s\n", phone)
	}
	fmt.Fprintf(&b, "Assunto: %s\n\n", strings.TrimSpace(msg.Subject))
	b.WriteString(strings.TrimSpace(msg.Message))
	b.WriteString("\n")
	return b.String()
}
