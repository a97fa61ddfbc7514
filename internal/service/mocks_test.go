package service

import (
	"context"

	"github.com/snipx/snipx-backend/internal/domain"
	"github.com/stretchr/testify/mock"
)

// MockUserRepository mocks domain.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Insert(ctx context.Context, user *domain.User) (string, error) {
	args := m.Called(ctx, user)
	return args.String(0), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, id string, update domain.UserUpdate) error {
	args := m.Called(ctx, id, update)
	return args.Error(0)
}

func (m *MockUserRepository) UpsertByEmail(ctx context.Context, user *domain.User) (*domain.User, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// MockTicketRepository mocks domain.TicketRepository
type MockTicketRepository struct {
	mock.Mock
}

func (m *MockTicketRepository) Insert(ctx context.Context, ticket *domain.Ticket) (string, error) {
	args := m.Called(ctx, ticket)
	return args.String(0), args.Error(1)
}

func (m *MockTicketRepository) GetByID(ctx context.Context, id string) (*domain.Ticket, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Ticket), args.Error(1)
}

func (m *MockTicketRepository) List(ctx context.Context, status string) ([]domain.Ticket, error) {
	args := m.Called(ctx, status)
	return args.Get(0).([]domain.Ticket), args.Error(1)
}

func (m *MockTicketRepository) SetStatus(ctx context.Context, id, status string) (bool, error) {
	args := m.Called(ctx, id, status)
	return args.Bool(0), args.Error(1)
}

func (m *MockTicketRepository) PushResponse(ctx context.Context, id string, resp domain.TicketResponse) (bool, error) {
	args := m.Called(ctx, id, resp)
	return args.Bool(0), args.Error(1)
}

// MockMailer mocks ConfirmationMailer
type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) SendTicketConfirmation(ctx context.Context, ticket *domain.Ticket) error {
	args := m.Called(ctx, ticket)
	return args.Error(0)
}
