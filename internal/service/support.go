package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/snipx/snipx-backend/internal/domain"
)

// ConfirmationMailer sends the ticket-created confirmation email
type ConfirmationMailer interface {
	SendTicketConfirmation(ctx context.Context, ticket *domain.Ticket) error
}

// SupportService handles support ticket operations
type SupportService struct {
	tickets domain.TicketRepository
	mailer  ConfirmationMailer
}

// NewSupportService creates a new support service
func NewSupportService(tickets domain.TicketRepository, mailer ConfirmationMailer) *SupportService {
	return &SupportService{
		tickets: tickets,
		mailer:  mailer,
	}
}

// CreateTicket validates and stores a new ticket, then best-effort sends a
// confirmation email. Email failure is logged and swallowed; it never fails
// the creation.
func (s *SupportService) CreateTicket(ctx context.Context, input domain.TicketCreate) (string, error) {
	if err := requireTicketFields(input); err != nil {
		return "", err
	}

	now := time.Now().UTC()
	ticket := &domain.Ticket{
		Name:        input.Name,
		Email:       input.Email,
		Subject:     input.Subject,
		Description: input.Description,
		Priority:    input.Priority,
		Type:        input.Type,
		Status:      domain.TicketStatusOpen,
		Responses:   []domain.TicketResponse{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	id, err := s.tickets.Insert(ctx, ticket)
	if err != nil {
		return "", fmt.Errorf("failed to create ticket: %w", err)
	}
	ticket.ID = id

	if err := s.mailer.SendTicketConfirmation(ctx, ticket); err != nil {
		log.Error().Err(err).Str("ticket", ticket.ShortRef()).Msg("failed to send confirmation email")
	}

	return id, nil
}

func requireTicketFields(input domain.TicketCreate) error {
	fields := []struct {
		name  string
		value string
	}{
		{"name", input.Name},
		{"email", input.Email},
		{"subject", input.Subject},
		{"description", input.Description},
		{"priority", string(input.Priority)},
		{"type", input.Type},
	}
	for _, f := range fields {
		if f.value == "" {
			return &domain.MissingFieldError{Field: f.name}
		}
	}
	return nil
}

// GetTicket retrieves a ticket by id
func (s *SupportService) GetTicket(ctx context.Context, id string) (*domain.Ticket, error) {
	return s.tickets.GetByID(ctx, id)
}

// ListTickets returns tickets newest-created-first, optionally filtered by
// status.
func (s *SupportService) ListTickets(ctx context.Context, status string) ([]domain.Ticket, error) {
	return s.tickets.List(ctx, status)
}

// SetStatus updates a ticket's status. Returns whether a ticket matched.
func (s *SupportService) SetStatus(ctx context.Context, id, status string) (bool, error) {
	return s.tickets.SetStatus(ctx, id, status)
}

// AddResponse appends a message to the ticket thread. Author type defaults
// to "support". Returns whether a ticket matched.
func (s *SupportService) AddResponse(ctx context.Context, id string, input domain.ResponseCreate) (bool, error) {
	authorType := input.AuthorType
	if authorType == "" {
		authorType = "support"
	}

	return s.tickets.PushResponse(ctx, id, domain.TicketResponse{
		Message:    input.Message,
		Author:     input.Author,
		AuthorType: authorType,
		CreatedAt:  time.Now().UTC(),
	})
}
