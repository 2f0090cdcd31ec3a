package middleware

import (
	"net/http"
	"time"

	"github.com/medsystem/medsystem/internal/logger"
)

// statusRecorder remembers what was sent downstream
type statusRecorder struct {
	http.ResponseWriter
	status      int
	bytes       int
	wroteHeader bool
}

func (rec *statusRecorder) WriteHeader(code int) {
	if rec.wroteHeader {
		return
	}
	rec.status = code
	rec.wroteHeader = true
	rec.ResponseWriter.WriteHeader(code)
}

func (rec *statusRecorder) Write(b []byte) (int, error) {
	if !rec.wroteHeader {
		rec.WriteHeader(http.StatusOK)
	}
	n, err := rec.ResponseWriter.Write(b)
	rec.bytes += n
	return n, err
}

func (rec *statusRecorder) Unwrap() http.ResponseWriter {
	return rec.ResponseWriter
}

func record(w http.ResponseWriter) *statusRecorder {
	if rec, ok := w.(*statusRecorder); ok {
		return rec
	}
	return &statusRecorder{ResponseWriter: w, status: http.StatusOK}
}

// Logger writes one access log line per request
func (m *Middleware) Logger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := record(w)

		next.ServeHTTP(rec, r)

		m.log.HTTPRequest(logger.RequestLog{
			Method:    r.Method,
			Path:      r.URL.Path,
			Status:    rec.status,
			Bytes:     rec.bytes,
			Duration:  time.Since(start),
			ClientIP:  m.ClientIP(r),
			RequestID: GetRequestID(r.Context()),
		})
	})
}
