package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"
)

// CronAuth requires "Authorization: Bearer <cron.secret>" when a secret is
// configured. With no secret the endpoint is open.
func (m *Middleware) CronAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		secret := m.cfg.Cron.Secret
		if secret == "" {
			next.ServeHTTP(w, r)
			return
		}

		var token string
		scheme, value, ok := strings.Cut(r.Header.Get("Authorization"), " ")
		if ok && strings.EqualFold(scheme, "bearer") {
			token = strings.TrimSpace(value)
		}

		if subtle.ConstantTimeCompare([]byte(token), []byte(secret)) != 1 {
			m.log.Warn().
				Str("path", r.URL.Path).
				Str("client_ip", m.ClientIP(r)).
				Str("request_id", GetRequestID(r.Context())).
				Msg("cron request rejected")
			writeJSONError(w, http.StatusUnauthorized, `{"error":"Unauthorized"}`)
			return
		}

		next.ServeHTTP(w, r)
	})
}
