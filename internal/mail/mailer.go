package mail

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/snipx/snipx-backend/internal/config"
	"github.com/snipx/snipx-backend/internal/domain"
	gomail "github.com/wneessen/go-mail"
)

// Mailer sends ticket confirmation emails over SMTP with STARTTLS.
type Mailer struct {
	cfg config.SMTPConfig
}

// NewMailer creates a new mailer
func NewMailer(cfg config.SMTPConfig) *Mailer {
	return &Mailer{cfg: cfg}
}

// SendTicketConfirmation sends a plain-text confirmation for a freshly
// created ticket. With no SMTP credentials configured the send is skipped
// and logged, not treated as an error.
func (m *Mailer) SendTicketConfirmation(ctx context.Context, ticket *domain.Ticket) error {
	if !m.cfg.Configured() {
		log.Info().Msg("SMTP credentials not configured, skipping confirmation email")
		return nil
	}

	msg := gomail.NewMsg()
	if err := msg.From(m.cfg.Username); err != nil {
		return fmt.Errorf("invalid sender address: %w", err)
	}
	if err := msg.To(ticket.Email); err != nil {
		return fmt.Errorf("invalid recipient address: %w", err)
	}
	msg.Subject(fmt.Sprintf("Support Ticket Created - #%s", ticket.ShortRef()))
	msg.SetBodyString(gomail.TypeTextPlain, confirmationBody(ticket))

	client, err := gomail.NewClient(m.cfg.Server,
		gomail.WithPort(m.cfg.Port),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(m.cfg.Username),
		gomail.WithPassword(m.cfg.Password),
		gomail.WithTLSPolicy(gomail.TLSMandatory),
	)
	if err != nil {
		return fmt.Errorf("failed to create SMTP client: %w", err)
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	log.Info().Str("to", ticket.Email).Str("ticket", ticket.ShortRef()).Msg("confirmation email sent")
	return nil
}
