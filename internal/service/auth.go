package service

import (
	"context"
	"fmt"
	"time"

	"github.com/snipx/snipx-backend/internal/domain"
	"github.com/snipx/snipx-backend/internal/security"
	"golang.org/x/crypto/bcrypt"
)

// Demo account provisioned for try-before-signup sessions.
const (
	demoEmail    = "demo@snipx.com"
	demoPassword = "demo1234"
)

// AuthService handles registration, login and session tokens
type AuthService struct {
	userRepo domain.UserRepository
	tokens   *security.TokenManager
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo domain.UserRepository, tokens *security.TokenManager) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		tokens:   tokens,
	}
}

// Register creates a new user account and returns its id.
// Returns domain.ErrDuplicateEmail when the email is already registered.
func (s *AuthService) Register(ctx context.Context, input domain.UserCreate) (string, error) {
	existing, err := s.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		return "", fmt.Errorf("failed to check email: %w", err)
	}
	if existing != nil {
		return "", domain.ErrDuplicateEmail
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now().UTC()
	id, err := s.userRepo.Insert(ctx, &domain.User{
		Email:        input.Email,
		PasswordHash: hash,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return "", err
	}

	return id, nil
}

// Login authenticates a user and returns a fresh session. An unknown email
// and a wrong password both fail with domain.ErrInvalidCredentials so a
// caller cannot probe which emails are registered.
func (s *AuthService) Login(ctx context.Context, input domain.UserLogin) (*domain.Session, error) {
	user, err := s.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return nil, domain.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(input.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Generate(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &domain.Session{
		Token: token,
		User:  user.PublicView(),
	}, nil
}

// IssueToken signs a session token for the given user id
func (s *AuthService) IssueToken(userID string) (string, error) {
	return s.tokens.Generate(userID)
}

// VerifyToken validates a session token and returns the embedded user id.
// A pure signature and expiry check, no database lookup.
func (s *AuthService) VerifyToken(token string) (string, error) {
	return s.tokens.Verify(token)
}

// ProvisionDemoUser idempotently ensures the shared demo account exists and
// returns a fresh session for it. The upsert makes concurrent first calls
// converge on the single account.
func (s *AuthService) ProvisionDemoUser(ctx context.Context) (*domain.Session, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(demoPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash demo password: %w", err)
	}

	now := time.Now().UTC()
	user, err := s.userRepo.UpsertByEmail(ctx, &domain.User{
		Email:        demoEmail,
		PasswordHash: hash,
		FirstName:    "Demo",
		LastName:     "User",
		IsDemo:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to provision demo user: %w", err)
	}

	token, err := s.tokens.Generate(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &domain.Session{
		Token: token,
		User:  user.PublicView(),
	}, nil
}

// GetUserByID retrieves a user by id
func (s *AuthService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}

// UpdateUser applies a profile update and returns the updated record
func (s *AuthService) UpdateUser(ctx context.Context, userID string, update domain.UserUpdate) (*domain.User, error) {
	if err := s.userRepo.Update(ctx, userID, update); err != nil {
		return nil, err
	}
	return s.userRepo.GetByID(ctx, userID)
}
