package middleware

import (
	"errors"
	"net/http"
	"runtime/debug"
)

// Recover turns a handler panic into a 500. When the handler already started
// the response only the log line is written. http.ErrAbortHandler is passed
// through so the server can drop the connection.
func (m *Middleware) Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := record(w)
		defer func() {
			v := recover()
			if v == nil {
				return
			}
			if err, ok := v.(error); ok && errors.Is(err, http.ErrAbortHandler) {
				panic(v)
			}

			m.log.Error().
				Interface("panic", v).
				Bytes("stack", debug.Stack()).
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Str("request_id", GetRequestID(r.Context())).
				Bool("response_started", rec.wroteHeader).
				Msg("handler panicked")

			if !rec.wroteHeader {
				writeJSONError(rec, http.StatusInternalServerError, `{"error":"Internal Server Error"}`)
			}
		}()

		next.ServeHTTP(rec, r)
	})
}
