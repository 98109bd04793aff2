// Package utils holds small helpers shared by the envkeeper client and the
// sync server: typed context keys, HMAC hashing, JSON responses, the resty
// client wrapper, JWT issuing and parsing, and identifier generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys so that values stored by
// this package never collide with string keys of other packages.
type contextKey string

func (c contextKey) String() string {
	return string(c)
}

// UserIDCtxKey stores the authenticated user's ID (int64) in a request
// context. It is set by the auth middleware.
var UserIDCtxKey = contextKey("userID")

// TraceIDCtxKey stores the request trace identifier (string).
var TraceIDCtxKey = contextKey("traceID")

// WithUserID returns a copy of ctx carrying userID.
func WithUserID(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, UserIDCtxKey, userID)
}

// GetUserIDFromContext returns the user ID stored under UserIDCtxKey.
// ok is false when the value is missing or is not an int64.
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(int64)
	return userID, ok
}

// WithTraceID returns a copy of ctx carrying traceID.
func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, TraceIDCtxKey, traceID)
}

// GetTraceIDFromContext returns the trace ID stored under TraceIDCtxKey, or
// an empty string.
func GetTraceIDFromContext(ctx context.Context) string {
	traceID, _ := ctx.Value(TraceIDCtxKey).(string)
	return traceID
}
