// Package context carries request-scoped values (request ID, logger and the
// authenticated principal) between the delivery layer and use cases.
package context

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ContextKey is a custom type for context keys to avoid collisions.
type ContextKey string

const (
	// KeyRequestID is the key for storing request ID in context.
	KeyRequestID ContextKey = "request_id"

	// KeyLogger is the key for storing request-scoped logger in context.
	KeyLogger ContextKey = "logger"

	// KeyPrincipalID is the key for the authenticated user's ID.
	KeyPrincipalID ContextKey = "principal_id"

	// HeaderXRequestID is the HTTP header name for request ID.
	HeaderXRequestID = "X-Request-Id"

	maxRequestIDLength = 64
)

// GetRequestID returns the request ID stored on the echo.Context, or an empty string.
func GetRequestID(c echo.Context) string {
	id, _ := c.Get(string(KeyRequestID)).(string)

	return id
}

// SetRequestID sets the request ID in echo.Context.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(string(KeyRequestID), requestID)
}

// NormalizeRequestID keeps a client supplied ID when it is short and printable,
// otherwise it mints a fresh one.
func NormalizeRequestID(requestID string) string {
	if requestID == "" || len(requestID) > maxRequestIDLength {
		return uuid.NewString()
	}
	for _, r := range requestID {
		if r < 0x21 || r > 0x7e {
			return uuid.NewString()
		}
	}

	return requestID
}

// GetRequestIDFromContext extracts the request ID from standard context.Context.
// If not found, returns empty string.
func GetRequestIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(KeyRequestID).(string); ok {
		return id
	}

	return ""
}

// WithRequestID returns a new context with the request ID.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, KeyRequestID, requestID)
}

// GetLogger extracts the request-scoped logger from context.Context.
func GetLogger(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(KeyLogger).(*slog.Logger); ok {
		return logger
	}

	return nil
}

// GetLoggerOrDefault extracts the request-scoped logger from context.Context.
// If not found, returns the provided fallback logger.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger := GetLogger(ctx); logger != nil {
		return logger
	}

	return fallback
}

// WithLogger returns a new context with the logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, KeyLogger, logger)
}

// WithPrincipal records the authenticated user on the context and enriches
// the request-scoped logger with the user's ID and role.
func WithPrincipal(ctx context.Context, userID uuid.UUID, role string) context.Context {
	ctx = context.WithValue(ctx, KeyPrincipalID, userID)
	if logger := GetLogger(ctx); logger != nil {
		ctx = WithLogger(ctx, logger.With(
			slog.String("principal_id", userID.String()),
			slog.String("principal_role", role),
		))
	}

	return ctx
}

// GetPrincipalID returns the authenticated user's ID, if any.
func GetPrincipalID(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(KeyPrincipalID).(uuid.UUID)

	return id, ok
}
