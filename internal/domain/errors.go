package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors surfaced to callers. Collaborator failures (AI providers,
// SMTP) are handled where they occur and never reach this taxonomy.
var (
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrTokenExpired       = errors.New("token has expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrUserNotFound       = errors.New("user not found")
	ErrTicketNotFound     = errors.New("ticket not found")
)

// MissingFieldError reports a required ticket field that was not supplied.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing required field: %s", e.Field)
}

// IsMissingField reports whether err is a MissingFieldError.
func IsMissingField(err error) bool {
	var mfe *MissingFieldError
	return errors.As(err, &mfe)
}
