package service

import (
	"context"
	"testing"
	"time"

	"github.com/snipx/snipx-backend/internal/domain"
	"github.com/snipx/snipx-backend/internal/security"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestAuthService(repo *MockUserRepository) *AuthService {
	tokens := security.NewTokenManager("test-secret", 24*time.Hour)
	return NewAuthService(repo, tokens)
}

func TestRegister(t *testing.T) {
	repo := new(MockUserRepository)
	repo.On("GetByEmail", mock.Anything, "new@example.com").Return(nil, nil)
	repo.On("Insert", mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
		return u.Email == "new@example.com" &&
			u.FirstName == "Ada" &&
			bcrypt.CompareHashAndPassword(u.PasswordHash, []byte("hunter22")) == nil
	})).Return("64f1c0ffee0ddba11ca7e9b2", nil)

	svc := newTestAuthService(repo)
	id, err := svc.Register(context.Background(), domain.UserCreate{
		Email:     "new@example.com",
		Password:  "hunter22",
		FirstName: "Ada",
	})

	require.NoError(t, err)
	assert.Equal(t, "64f1c0ffee0ddba11ca7e9b2", id)
	repo.AssertExpectations(t)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	repo := new(MockUserRepository)
	repo.On("GetByEmail", mock.Anything, "taken@example.com").
		Return(&domain.User{ID: "u1", Email: "taken@example.com"}, nil)

	svc := newTestAuthService(repo)
	_, err := svc.Register(context.Background(), domain.UserCreate{
		Email:    "taken@example.com",
		Password: "hunter22",
	})

	assert.ErrorIs(t, err, domain.ErrDuplicateEmail)
	repo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

func TestLogin(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter22"), bcrypt.MinCost)
	require.NoError(t, err)

	repo := new(MockUserRepository)
	repo.On("GetByEmail", mock.Anything, "ada@example.com").Return(&domain.User{
		ID:           "u1",
		Email:        "ada@example.com",
		PasswordHash: hash,
		FirstName:    "Ada",
		LastName:     "L",
	}, nil)

	svc := newTestAuthService(repo)
	session, err := svc.Login(context.Background(), domain.UserLogin{
		Email:    "ada@example.com",
		Password: "hunter22",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, session.Token)
	assert.Equal(t, "u1", session.User.ID)
	assert.Equal(t, "Ada", session.User.FirstName)

	uid, err := svc.VerifyToken(session.Token)
	require.NoError(t, err)
	assert.Equal(t, "u1", uid)
}

// Unknown email and wrong password must be indistinguishable to the caller.
func TestLogin_EnumerationResistance(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("right-password"), bcrypt.MinCost)
	require.NoError(t, err)

	repo := new(MockUserRepository)
	repo.On("GetByEmail", mock.Anything, "ada@example.com").
		Return(&domain.User{ID: "u1", Email: "ada@example.com", PasswordHash: hash}, nil)
	repo.On("GetByEmail", mock.Anything, "nobody@example.com").Return(nil, nil)

	svc := newTestAuthService(repo)

	_, errWrongPassword := svc.Login(context.Background(), domain.UserLogin{
		Email:    "ada@example.com",
		Password: "wrong-password",
	})
	_, errUnknownEmail := svc.Login(context.Background(), domain.UserLogin{
		Email:    "nobody@example.com",
		Password: "whatever",
	})

	assert.ErrorIs(t, errWrongPassword, domain.ErrInvalidCredentials)
	assert.ErrorIs(t, errUnknownEmail, domain.ErrInvalidCredentials)
	assert.Equal(t, errWrongPassword.Error(), errUnknownEmail.Error())
}

func TestIssueAndVerifyToken(t *testing.T) {
	svc := newTestAuthService(new(MockUserRepository))

	token, err := svc.IssueToken("u42")
	require.NoError(t, err)

	uid, err := svc.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, "u42", uid)
}

func TestProvisionDemoUser(t *testing.T) {
	repo := new(MockUserRepository)
	repo.On("UpsertByEmail", mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
		return u.Email == "demo@snipx.com" && u.IsDemo && u.FirstName == "Demo"
	})).Return(&domain.User{
		ID:        "demo-id",
		Email:     "demo@snipx.com",
		FirstName: "Demo",
		LastName:  "User",
		IsDemo:    true,
	}, nil)

	svc := newTestAuthService(repo)

	// every call issues a fresh token for the same account
	first, err := svc.ProvisionDemoUser(context.Background())
	require.NoError(t, err)
	second, err := svc.ProvisionDemoUser(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "demo-id", first.User.ID)
	assert.Equal(t, "demo-id", second.User.ID)
	assert.True(t, first.User.IsDemo)
	assert.NotEmpty(t, first.Token)

	uid, err := svc.VerifyToken(second.Token)
	require.NoError(t, err)
	assert.Equal(t, "demo-id", uid)
}

func TestUpdateUser(t *testing.T) {
	name := "Grace"
	repo := new(MockUserRepository)
	repo.On("Update", mock.Anything, "u1", domain.UserUpdate{FirstName: &name}).Return(nil)
	repo.On("GetByID", mock.Anything, "u1").
		Return(&domain.User{ID: "u1", Email: "g@example.com", FirstName: "Grace"}, nil)

	svc := newTestAuthService(repo)
	user, err := svc.UpdateUser(context.Background(), "u1", domain.UserUpdate{FirstName: &name})

	require.NoError(t, err)
	assert.Equal(t, "Grace", user.FirstName)
}

func TestUpdateUser_NotFound(t *testing.T) {
	name := "Grace"
	repo := new(MockUserRepository)
	repo.On("Update", mock.Anything, "missing", mock.Anything).Return(domain.ErrUserNotFound)

	svc := newTestAuthService(repo)
	_, err := svc.UpdateUser(context.Background(), "missing", domain.UserUpdate{FirstName: &name})

	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
