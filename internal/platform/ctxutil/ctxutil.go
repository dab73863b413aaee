// Copyright (c) 2026 Artistly. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package ctxutil stores per-request values on a [context.Context]: the
// correlation ID, the request-scoped logger and the authenticated caller.
//
// Each value has its own unexported key type, so nothing outside this package
// can read or overwrite them by accident.
package ctxutil

import (
	"context"
	"log/slog"

	"github.com/taibuivan/artistly/internal/platform/sec"
)

type (
	requestIDKey struct{}
	loggerKey    struct{}
	callerKey    struct{}
)

func lookup[T any](ctx context.Context, key any) (T, bool) {
	value, ok := ctx.Value(key).(T)
	return value, ok
}

// # Request Tracing

// WithRequestID attaches the X-Request-ID correlation value.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// GetRequestID returns the correlation value, or "" outside a request.
func GetRequestID(ctx context.Context) string {
	id, _ := lookup[string](ctx, requestIDKey{})
	return id
}

// # Structured Logging

// WithLogger attaches a request-scoped logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// GetLogger returns the request logger, falling back to [slog.Default].
func GetLogger(ctx context.Context) *slog.Logger {
	if logger, ok := lookup[*slog.Logger](ctx, loggerKey{}); ok && logger != nil {
		return logger
	}
	return slog.Default()
}

// # Identity & Access

// WithAuthUser attaches the verified claims of the caller.
func WithAuthUser(ctx context.Context, claims *sec.AuthClaims) context.Context {
	return context.WithValue(ctx, callerKey{}, claims)
}

// GetAuthUser returns the caller's claims, or nil for anonymous requests.
func GetAuthUser(ctx context.Context) *sec.AuthClaims {
	claims, _ := lookup[*sec.AuthClaims](ctx, callerKey{})
	return claims
}

// GetSessionID returns the session bound to the caller, or "" for anonymous
// requests.
func GetSessionID(ctx context.Context) string {
	if claims := GetAuthUser(ctx); claims != nil {
		return claims.SessionID
	}
	return ""
}
