package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/snipx/snipx-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func validTicketInput() domain.TicketCreate {
	return domain.TicketCreate{
		Name:        "Ada",
		Email:       "ada@example.com",
		Subject:     "Export stuck",
		Description: "The export hangs at 99%",
		Priority:    domain.PriorityHigh,
		Type:        "technical_issue",
	}
}

func TestCreateTicket(t *testing.T) {
	repo := new(MockTicketRepository)
	mailer := new(MockMailer)

	repo.On("Insert", mock.Anything, mock.MatchedBy(func(tk *domain.Ticket) bool {
		return tk.Status == domain.TicketStatusOpen &&
			tk.Responses != nil && len(tk.Responses) == 0 &&
			!tk.CreatedAt.IsZero() && tk.UpdatedAt.Equal(tk.CreatedAt)
	})).Return("64f1c0ffee0ddba11ca7e9b2", nil)
	mailer.On("SendTicketConfirmation", mock.Anything, mock.MatchedBy(func(tk *domain.Ticket) bool {
		return tk.ID == "64f1c0ffee0ddba11ca7e9b2"
	})).Return(nil)

	svc := NewSupportService(repo, mailer)
	id, err := svc.CreateTicket(context.Background(), validTicketInput())

	require.NoError(t, err)
	assert.Equal(t, "64f1c0ffee0ddba11ca7e9b2", id)
	repo.AssertExpectations(t)
	mailer.AssertExpectations(t)
}

func TestCreateTicket_MissingField(t *testing.T) {
	svc := NewSupportService(new(MockTicketRepository), new(MockMailer))

	tests := []struct {
		field string
		mod   func(*domain.TicketCreate)
	}{
		{"name", func(in *domain.TicketCreate) { in.Name = "" }},
		{"email", func(in *domain.TicketCreate) { in.Email = "" }},
		{"subject", func(in *domain.TicketCreate) { in.Subject = "" }},
		{"description", func(in *domain.TicketCreate) { in.Description = "" }},
		{"priority", func(in *domain.TicketCreate) { in.Priority = "" }},
		{"type", func(in *domain.TicketCreate) { in.Type = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			input := validTicketInput()
			tt.mod(&input)

			_, err := svc.CreateTicket(context.Background(), input)
			require.Error(t, err)
			assert.True(t, domain.IsMissingField(err))
			assert.Contains(t, err.Error(), tt.field)
		})
	}
}

// Email failure is logged and swallowed; ticket creation still succeeds.
func TestCreateTicket_EmailFailureIsSwallowed(t *testing.T) {
	repo := new(MockTicketRepository)
	mailer := new(MockMailer)

	repo.On("Insert", mock.Anything, mock.Anything).Return("t1", nil)
	mailer.On("SendTicketConfirmation", mock.Anything, mock.Anything).
		Return(errors.New("smtp: connection refused"))

	svc := NewSupportService(repo, mailer)
	id, err := svc.CreateTicket(context.Background(), validTicketInput())

	require.NoError(t, err)
	assert.Equal(t, "t1", id)
}

func TestGetTicket_NotFound(t *testing.T) {
	repo := new(MockTicketRepository)
	repo.On("GetByID", mock.Anything, "missing").Return(nil, domain.ErrTicketNotFound)

	svc := NewSupportService(repo, new(MockMailer))
	_, err := svc.GetTicket(context.Background(), "missing")

	assert.ErrorIs(t, err, domain.ErrTicketNotFound)
}

func TestListTickets_PassesStatusFilter(t *testing.T) {
	now := time.Now().UTC()
	newest := domain.Ticket{ID: "t3", CreatedAt: now}
	middle := domain.Ticket{ID: "t2", CreatedAt: now.Add(-time.Minute)}
	oldest := domain.Ticket{ID: "t1", CreatedAt: now.Add(-2 * time.Minute)}

	repo := new(MockTicketRepository)
	repo.On("List", mock.Anything, "open").Return([]domain.Ticket{newest, middle, oldest}, nil)

	svc := NewSupportService(repo, new(MockMailer))
	tickets, err := svc.ListTickets(context.Background(), "open")

	require.NoError(t, err)
	require.Len(t, tickets, 3)
	assert.True(t, tickets[0].CreatedAt.After(tickets[1].CreatedAt))
	assert.True(t, tickets[1].CreatedAt.After(tickets[2].CreatedAt))
}

func TestAddResponse_DefaultsAuthorType(t *testing.T) {
	repo := new(MockTicketRepository)
	repo.On("PushResponse", mock.Anything, "t1", mock.MatchedBy(func(r domain.TicketResponse) bool {
		return r.Message == "on it" && r.Author == "sam" && r.AuthorType == "support" && !r.CreatedAt.IsZero()
	})).Return(true, nil)

	svc := NewSupportService(repo, new(MockMailer))
	found, err := svc.AddResponse(context.Background(), "t1", domain.ResponseCreate{
		Message: "on it",
		Author:  "sam",
	})

	require.NoError(t, err)
	assert.True(t, found)
	repo.AssertExpectations(t)
}

func TestSetStatus(t *testing.T) {
	repo := new(MockTicketRepository)
	repo.On("SetStatus", mock.Anything, "t1", "closed").Return(true, nil)
	repo.On("SetStatus", mock.Anything, "missing", "closed").Return(false, nil)

	svc := NewSupportService(repo, new(MockMailer))

	found, err := svc.SetStatus(context.Background(), "t1", "closed")
	require.NoError(t, err)
	assert.True(t, found)

	found, err = svc.SetStatus(context.Background(), "missing", "closed")
	require.NoError(t, err)
	assert.False(t, found)
}
