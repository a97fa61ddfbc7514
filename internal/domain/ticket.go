package domain

import (
	"context"
	"time"
)

// TicketPriority is the urgency level attached to a support ticket
type TicketPriority string

const (
	PriorityUrgent TicketPriority = "urgent"
	PriorityHigh   TicketPriority = "high"
	PriorityMedium TicketPriority = "medium"
	PriorityLow    TicketPriority = "low"
)

// TicketStatusOpen is the status assigned to every newly created ticket.
// Later statuses ("in_progress", "closed", ...) are free-form strings set
// by support staff.
const TicketStatusOpen = "open"

// Ticket represents a support ticket with its threaded responses
type Ticket struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Email       string           `json:"email"`
	Subject     string           `json:"subject"`
	Description string           `json:"description"`
	Priority    TicketPriority   `json:"priority"`
	Type        string           `json:"type"`
	Status      string           `json:"status"`
	Responses   []TicketResponse `json:"responses"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

// ShortRef returns the human-readable ticket reference quoted in emails.
// First 8 hex characters of the id; not globally unique, but close enough
// for a support conversation.
func (t *Ticket) ShortRef() string {
	if len(t.ID) < 8 {
		return t.ID
	}
	return t.ID[:8]
}

// TicketResponse is a single message in a ticket's thread
type TicketResponse struct {
	Message    string    `json:"message"`
	Author     string    `json:"author"`
	AuthorType string    `json:"author_type"`
	CreatedAt  time.Time `json:"created_at"`
}

// TicketCreate carries the caller-supplied fields for a new ticket
type TicketCreate struct {
	Name        string         `json:"name" validate:"required,max=200"`
	Email       string         `json:"email" validate:"required,email"`
	Subject     string         `json:"subject" validate:"required,max=300"`
	Description string         `json:"description" validate:"required"`
	Priority    TicketPriority `json:"priority" validate:"required,oneof=urgent high medium low"`
	Type        string         `json:"type" validate:"required,max=100"`
}

// ResponseCreate carries a new thread entry for an existing ticket
type ResponseCreate struct {
	Message    string `json:"message" validate:"required"`
	Author     string `json:"author" validate:"required,max=200"`
	AuthorType string `json:"author_type" validate:"omitempty,oneof=support user"`
}

// TicketRepository defines the interface for ticket storage
type TicketRepository interface {
	Insert(ctx context.Context, ticket *Ticket) (string, error)
	GetByID(ctx context.Context, id string) (*Ticket, error)
	// List returns tickets newest-created-first, optionally filtered by status.
	List(ctx context.Context, status string) ([]Ticket, error)
	SetStatus(ctx context.Context, id, status string) (bool, error)
	PushResponse(ctx context.Context, id string, resp TicketResponse) (bool, error)
}
