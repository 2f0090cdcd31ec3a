package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Logger wraps zerolog.Logger with application-specific methods
type Logger struct {
	zerolog.Logger
}

// New creates a new Logger instance
func New(level string, format string) *Logger {
	return NewWithWriter(os.Stdout, level, format)
}

// NewWithWriter creates a Logger writing to w
func NewWithWriter(w io.Writer, level string, format string) *Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}

	var logger zerolog.Logger

	if format == "text" || format == "console" {
		// Human-readable output for development
		output := zerolog.ConsoleWriter{
			Out:        w,
			TimeFormat: time.RFC3339,
		}
		logger = zerolog.New(output).With().Timestamp().Caller().Logger()
	} else {
		logger = zerolog.New(w).With().Timestamp().Caller().Logger()
	}

	return &Logger{Logger: logger.Level(lvl)}
}

// Nop returns a logger that discards everything
func Nop() *Logger {
	return &Logger{Logger: zerolog.Nop()}
}

// WithRequestID returns a new logger with the request ID attached
func (l *Logger) WithRequestID(requestID string) *Logger {
	return &Logger{
		Logger: l.With().Str("request_id", requestID).Logger(),
	}
}

// WithComponent returns a new logger with the component name attached
func (l *Logger) WithComponent(component string) *Logger {
	return &Logger{
		Logger: l.With().Str("component", component).Logger(),
	}
}

// RequestLog describes one served HTTP request
type RequestLog struct {
	Method    string
	Path      string
	Status    int
	Bytes     int
	Duration  time.Duration
	ClientIP  string
	RequestID string
}

// HTTPRequest logs a served request. 5xx responses log at error level and
// 4xx at warn.
func (l *Logger) HTTPRequest(req RequestLog) {
	event := l.Info()
	switch {
	case req.Status >= 500:
		event = l.Error()
	case req.Status >= 400:
		event = l.Warn()
	}
	event.
		Str("method", req.Method).
		Str("path", req.Path).
		Int("status", req.Status).
		Int("bytes", req.Bytes).
		Dur("duration", req.Duration).
		Str("client_ip", req.ClientIP).
		Str("request_id", req.RequestID).
		Msg("HTTP request")
}

// ReminderOutcome logs the result of one appointment reminder
func (l *Logger) ReminderOutcome(appointmentID int64, email, status string) {
	event := l.Info()
	if status == "failed" {
		event = l.Warn()
	}
	event.
		Int64("appointment_id", appointmentID).
		Str("email", email).
		Str("status", status).
		Msg("reminder processed")
}
