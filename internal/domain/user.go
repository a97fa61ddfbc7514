package domain

import (
	"context"
	"time"
)

// User represents a platform user
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash []byte    `json:"-"`
	FirstName    string    `json:"first_name,omitempty"`
	LastName     string    `json:"last_name,omitempty"`
	IsDemo       bool      `json:"is_demo,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// PublicView returns the user fields safe to hand back to clients.
func (u *User) PublicView() PublicUser {
	return PublicUser{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		IsDemo:    u.IsDemo,
	}
}

// PublicUser is the redacted user view returned by login and demo sessions
type PublicUser struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	IsDemo    bool   `json:"isDemo,omitempty"`
}

// UserCreate represents user registration data
type UserCreate struct {
	Email     string `json:"email" validate:"required,email,max=255"`
	Password  string `json:"password" validate:"required,min=8,max=72"`
	FirstName string `json:"first_name" validate:"max=100"`
	LastName  string `json:"last_name" validate:"max=100"`
}

// UserLogin represents login credentials
type UserLogin struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserUpdate holds the mutable profile fields. Nil pointers are left untouched.
type UserUpdate struct {
	FirstName *string `json:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"`
}

// Session is a signed token plus the public view of its owner
type Session struct {
	Token string     `json:"token"`
	User  PublicUser `json:"user"`
}

// UserRepository defines the interface for user storage
type UserRepository interface {
	Insert(ctx context.Context, user *User) (string, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
	Update(ctx context.Context, id string, update UserUpdate) error
	UpsertByEmail(ctx context.Context, user *User) (*User, error)
}
