package middleware

import (
	"fmt"
	"net/http"
	"strconv"
	"time"
)

// RateLimitConfig holds configuration for a specific rate limit
type RateLimitConfig struct {
	Name   string
	Limit  int
	Window time.Duration
	// KeyFn defaults to the client IP
	KeyFn func(*http.Request) string
}

// RateLimit creates a fixed-window rate limiting middleware backed by the
// shared counter. Counter errors let the request through.
func (m *Middleware) RateLimit(cfg RateLimitConfig) func(http.Handler) http.Handler {
	if cfg.KeyFn == nil {
		cfg.KeyFn = m.ClientIP
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !m.cfg.Security.RateLimiting.Enabled {
				next.ServeHTTP(w, r)
				return
			}

			ctx := r.Context()
			key := fmt.Sprintf("ratelimit:%s:%s", cfg.Name, cfg.KeyFn(r))

			count, err := m.counter.Incr(ctx, key)
			if err != nil {
				m.log.Error().Err(err).Msg("failed to increment rate limit counter")
				next.ServeHTTP(w, r)
				return
			}

			// Set expiry on first request
			if count == 1 {
				if err := m.counter.Expire(ctx, key, cfg.Window); err != nil {
					m.log.Error().Err(err).Str("key", key).Msg("failed to set rate limit expiry")
				}
			}

			ttl, err := m.counter.TTL(ctx, key)
			if err != nil || ttl < 0 {
				ttl = cfg.Window
			}
			resetTime := time.Now().Add(ttl).Unix()

			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(cfg.Limit))
			w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(max(0, cfg.Limit-int(count))))
			w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(resetTime, 10))

			if int(count) > cfg.Limit {
				w.Header().Set("Retry-After", strconv.FormatInt(int64(ttl.Seconds()), 10))
				m.log.Warn().Str("key", key).Int64("count", count).Msg("rate limit exceeded")
				writeJSONError(w, http.StatusTooManyRequests, `{"error":"Too Many Requests"}`)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
