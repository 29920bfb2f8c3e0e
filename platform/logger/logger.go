// Package logger provides structured logging infrastructure for the application.
// This is part of the platform layer and contains no business logic.
package logger

import (
	"context"
	"log/slog"
	"os"
	"strings"
)

type contextKey string

const (
	// RequestIDKey is the context key for the request ID.
	RequestIDKey contextKey = "request_id"
	// UserIDKey is the context key for the authenticated user ID.
	UserIDKey contextKey = "user_id"
)

// Logger wraps slog.Logger for structured logging.
type Logger struct {
	*slog.Logger
}

// New creates a logger for the given environment: human-readable text output
// at debug level in development, JSON at info level everywhere else.
func New(env string) *Logger {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}

	var handler slog.Handler
	if strings.EqualFold(env, "development") {
		opts.Level = slog.LevelDebug
		handler = slog.NewTextHandler(os.Stdout, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}

	return &Logger{Logger: slog.New(handler)}
}

// WithContext returns a logger enriched with request-scoped values.
func (l *Logger) WithContext(ctx context.Context) *Logger {
	if ctx == nil {
		return l
	}

	out := l
	if requestID, ok := ctx.Value(RequestIDKey).(string); ok && requestID != "" {
		out = out.WithRequestID(requestID)
	}
	if userID, ok := ctx.Value(UserIDKey).(string); ok && userID != "" {
		out = &Logger{Logger: out.With(slog.String("user_id", userID))}
	}
	return out
}

// WithRequestID returns a logger tagged with the request ID.
func (l *Logger) WithRequestID(requestID string) *Logger {
	return &Logger{Logger: l.With(slog.String("request_id", requestID))}
}

// HTTPRequest logs a completed HTTP request.
func (l *Logger) HTTPRequest(method, path string, status int, latencyMs float64, clientIP string) {
	l.Info("http_request",
		slog.String("method", method),
		slog.String("path", path),
		slog.Int("status", status),
		slog.Float64("latency_ms", latencyMs),
		slog.String("client_ip", clientIP),
	)
}

// AuthEvent logs authentication events.
func (l *Logger) AuthEvent(event, email string, success bool, reason string) {
	if success {
		l.Info("auth_event",
			slog.String("event", event),
			slog.String("email", email),
			slog.Bool("success", success),
		)
		return
	}
	l.Warn("auth_event",
		slog.String("event", event),
		slog.String("email", email),
		slog.Bool("success", success),
		slog.String("reason", reason),
	)
}

// DatabaseError logs database errors.
func (l *Logger) DatabaseError(operation string, err error) {
	l.Error("database_error",
		slog.String("operation", operation),
		slog.String("error", err.Error()),
	)
}

// RateLimitExceeded logs rate limit rejections.
func (l *Logger) RateLimitExceeded(clientIP, path string) {
	l.Warn("rate_limit_exceeded",
		slog.String("client_ip", clientIP),
		slog.String("path", path),
	)
}
