package email

import (
	"context"
	"fmt"
	"html"

	"gopkg.in/gomail.v2"

	"leafsmp/internal/domain/ticket"
	"leafsmp/internal/shared/config"
	"leafsmp/internal/shared/logger"
)

// Sender delivers composed messages. *gomail.Dialer satisfies it.
type Sender interface {
	DialAndSend(m ...*gomail.Message) error
}

// SMTPTicketNotifier mails the staff inbox whenever a ticket is opened.
type SMTPTicketNotifier struct {
	config config.EmailConfig
	sender Sender
	logger logger.Interface
}

func NewSMTPTicketNotifier(cfg config.EmailConfig, logger logger.Interface) *SMTPTicketNotifier {
	dialer := gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword)
	return NewSMTPTicketNotifierWithSender(cfg, dialer, logger)
}

func NewSMTPTicketNotifierWithSender(cfg config.EmailConfig, sender Sender, logger logger.Interface) *SMTPTicketNotifier {
	return &SMTPTicketNotifier{
		config: cfg,
		sender: sender,
		logger: logger,
	}
}

func (s *SMTPTicketNotifier) NotifyTicketCreated(ctx context.Context, event ticket.CreatedEvent) error {
	if s.config.StaffAddress == "" {
		s.logger.Debugw("staff address not configured, skipping ticket notification",
			"ticket_number", event.Number)
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	subject := fmt.Sprintf("[LeafSMP] New ticket %s: %s", event.Number, event.SelectedRank)

	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>New ticket %s</h2>
			<p><strong>Minecraft:</strong> %s</p>
			<p><strong>Discord:</strong> %s</p>
			<p><strong>Rank:</strong> %s</p>
			<p><strong>Category:</strong> %s</p>
			<p>Opened at %s</p>
		</body>
		</html>
	`,
		html.EscapeString(event.Number),
		html.EscapeString(event.MinecraftUsername),
		html.EscapeString(event.DiscordUsername),
		html.EscapeString(event.SelectedRank),
		html.EscapeString(event.Category),
		event.Timestamp.UTC().Format("2006-01-02 15:04:05 UTC"),
	)

	plainBody := fmt.Sprintf(`
New ticket %s

Minecraft: %s
Discord:   %s
Rank:      %s
Category:  %s

Opened at %s
	`,
		event.Number,
		event.MinecraftUsername,
		event.DiscordUsername,
		event.SelectedRank,
		event.Category,
		event.Timestamp.UTC().Format("2006-01-02 15:04:05 UTC"),
	)

	if err := s.sendEmail(s.config.StaffAddress, subject, htmlBody, plainBody); err != nil {
		return err
	}

	s.logger.Infow("staff notified about new ticket",
		"ticket_number", event.Number,
		"to", s.config.StaffAddress)
	return nil
}

func (s *SMTPTicketNotifier) sendEmail(to, subject, htmlBody, plainBody string) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.config.FromAddress, s.config.FromName)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", plainBody)
	m.AddAlternative("text/html", htmlBody)

	if err := s.sender.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
