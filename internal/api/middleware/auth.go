package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/snipx/snipx-backend/internal/api/response"
	"github.com/snipx/snipx-backend/internal/domain"
	"github.com/snipx/snipx-backend/internal/security"
)

type contextKey string

const userIDKey contextKey = "userID"

// AuthMiddleware handles session token authentication
type AuthMiddleware struct {
	tokens *security.TokenManager
}

// NewAuthMiddleware creates a new auth middleware
func NewAuthMiddleware(tokens *security.TokenManager) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

// Authenticate validates the bearer token and puts the user id in context
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			response.Unauthorized(w, "missing authorization header")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			response.Unauthorized(w, "invalid authorization header format")
			return
		}

		userID, err := m.tokens.Verify(parts[1])
		if err != nil {
			if errors.Is(err, domain.ErrTokenExpired) {
				response.Unauthorized(w, "token has expired")
				return
			}
			response.Unauthorized(w, "invalid token")
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUserID gets the authenticated user id from context
func GetUserID(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(userIDKey).(string)
	return userID, ok
}
