package middleware

import (
	"net"
	"net/http"

	"github.com/rs/zerolog/log"
	"github.com/snipx/snipx-backend/internal/api/response"
	"github.com/snipx/snipx-backend/internal/repository/redis"
)

// RateLimitMiddleware throttles per client IP
type RateLimitMiddleware struct {
	limiter *redis.RateLimiter
}

// NewRateLimitMiddleware creates a new rate limit middleware
func NewRateLimitMiddleware(limiter *redis.RateLimiter) *RateLimitMiddleware {
	return &RateLimitMiddleware{limiter: limiter}
}

// Limit applies the per-IP limit. A failing limiter lets the request
// through.
func (m *RateLimitMiddleware) Limit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			ip = r.RemoteAddr
		}

		allowed, err := m.limiter.Allow(r.Context(), ip)
		if err != nil {
			log.Warn().Err(err).Msg("rate limiter unavailable, allowing request")
			next.ServeHTTP(w, r)
			return
		}

		if !allowed {
			response.Error(w, http.StatusTooManyRequests, "rate limit exceeded")
			return
		}

		next.ServeHTTP(w, r)
	})
}
