package middleware

import (
	"net/http"
	"slices"
	"strings"
)

// AllowMethods answers any method outside the list with 405 before the
// wrapped handler runs.
func (m *Middleware) AllowMethods(methods ...string) func(http.Handler) http.Handler {
	allow := strings.Join(methods, ", ")
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !slices.Contains(methods, r.Method) {
				w.Header().Set("Allow", allow)
				writeJSONError(w, http.StatusMethodNotAllowed, `{"error":"Method Not Allowed"}`)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
