// Copyright (c) 2026 Artistly. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package middleware provides the HTTP chain shared by every Artistly route.

Order used by the API server:

  - RequestID: correlation ID in context and response header.
  - StructuredLogger: per-request slog logger and one summary line.
  - PanicRecovery: a panic becomes a 500 envelope.
  - CORS and RateLimit: origin policy and per-IP token buckets.
  - Authenticate, RequireAuth, RequireRole: bearer sessions (authz.go).

Every rejection is written with [respond.Error], so clients always see the
same error envelope.
*/
package middleware

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"runtime"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/taibuivan/artistly/internal/platform/apperr"
	"github.com/taibuivan/artistly/internal/platform/constants"
	"github.com/taibuivan/artistly/internal/platform/ctxutil"
	"github.com/taibuivan/artistly/internal/platform/respond"
	"github.com/taibuivan/artistly/pkg/uuid"
)

// # Request Tracing

// RequestID reuses the client's X-Request-ID or generates one.
func RequestID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			requestID := request.Header.Get(constants.HeaderXRequestID)
			if requestID == "" {
				requestID = uuid.New()
			}

			writer.Header().Set(constants.HeaderXRequestID, requestID)
			next.ServeHTTP(writer, request.WithContext(ctxutil.WithRequestID(request.Context(), requestID)))
		})
	}
}

// # Activity Logging

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (recorder *statusRecorder) WriteHeader(code int) {
	recorder.status = code
	recorder.ResponseWriter.WriteHeader(code)
}

/*
StructuredLogger injects a request-scoped logger and logs one
"http_request_finished" line per request.

Description: 5xx responses log at error level and 4xx at warn. The caller's
user and session IDs are added when Authenticate ran further down the chain
and left claims on the request.
*/
func StructuredLogger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			started := time.Now()

			requestLogger := logger.With(
				slog.String("request_id", ctxutil.GetRequestID(request.Context())),
				slog.String("method", request.Method),
				slog.String("path", request.URL.Path),
				slog.String("ip", RealIP(request)),
			)

			ctx := ctxutil.WithLogger(request.Context(), requestLogger)
			recorder := &statusRecorder{ResponseWriter: writer, status: http.StatusOK}
			identity := &identityProbe{}

			next.ServeHTTP(recorder, request.WithContext(withProbe(ctx, identity)))

			level := slog.LevelInfo
			switch {
			case recorder.status >= 500:
				level = slog.LevelError
			case recorder.status >= 400:
				level = slog.LevelWarn
			}

			attrs := []any{
				slog.Int("status", recorder.status),
				slog.Int64("latency_ms", time.Since(started).Milliseconds()),
			}
			if identity.userID != "" {
				attrs = append(attrs,
					slog.String("user_id", identity.userID),
					slog.String("session_id", identity.sessionID),
				)
			}

			requestLogger.Log(ctx, level, "http_request_finished", attrs...)
		})
	}
}

// identityProbe lets Authenticate report the caller back up to the logger,
// which only sees the context it created.
type identityProbe struct {
	userID    string
	sessionID string
}

type probeKey struct{}

func withProbe(ctx context.Context, probe *identityProbe) context.Context {
	return context.WithValue(ctx, probeKey{}, probe)
}

func reportIdentity(ctx context.Context, userID, sessionID string) {
	if probe, ok := ctx.Value(probeKey{}).(*identityProbe); ok {
		probe.userID = userID
		probe.sessionID = sessionID
	}
}

// # Rate Limiting

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

type visitors struct {
	mu    sync.Mutex
	byIP  map[string]*visitor
	rps   rate.Limit
	burst int
}

func (v *visitors) allow(ip string, now time.Time) bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	entry, ok := v.byIP[ip]
	if !ok {
		entry = &visitor{limiter: rate.NewLimiter(v.rps, v.burst)}
		v.byIP[ip] = entry
	}
	entry.lastSeen = now
	return entry.limiter.AllowN(now, 1)
}

func (v *visitors) evictIdle(now time.Time) {
	v.mu.Lock()
	defer v.mu.Unlock()

	for ip, entry := range v.byIP {
		if now.Sub(entry.lastSeen) > constants.RateLimitClientTTL {
			delete(v.byIP, ip)
		}
	}
}

// RateLimit allows rps requests per second per client IP, with bursts up to
// burst. Idle IPs are forgotten by a janitor goroutine that stops with ctx.
func RateLimit(ctx context.Context, rps float64, burst int) func(http.Handler) http.Handler {
	limits := &visitors{byIP: make(map[string]*visitor), rps: rate.Limit(rps), burst: burst}

	go func() {
		ticker := time.NewTicker(constants.RateLimitCleanupInterval)
		defer ticker.Stop()

		for {
			select {
			case now := <-ticker.C:
				limits.evictIdle(now)
			case <-ctx.Done():
				return
			}
		}
	}()

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			if !limits.allow(RealIP(request), time.Now()) {
				respond.Error(writer, request, apperr.TooManyRequests())
				return
			}
			next.ServeHTTP(writer, request)
		})
	}
}

// # Reliability & Safety

// PanicRecovery turns a panic into a logged stack trace and a 500 envelope.
func PanicRecovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			defer func() {
				recovered := recover()
				if recovered == nil {
					return
				}
				if recovered == http.ErrAbortHandler {
					panic(recovered)
				}

				stack := make([]byte, 4096)
				stack = stack[:runtime.Stack(stack, false)]

				ctxutil.GetLogger(request.Context()).ErrorContext(request.Context(), "panic_recovered",
					slog.Any("error", recovered),
					slog.String("stack", string(stack)),
				)
				respond.Error(writer, request, apperr.Internal(fmt.Errorf("panic: %v", recovered)))
			}()

			next.ServeHTTP(writer, request)
		})
	}
}

// # Cross-Origin Resource Sharing

// AppConfig is the part of the configuration the CORS policy reads.
type AppConfig interface {
	IsDevelopment() bool
	OriginSuffix() string
}

// CORS reflects allowed origins. Development allows any origin; otherwise
// the origin host must be the configured domain or one of its subdomains.
func CORS(cfg AppConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			origin := request.Header.Get(constants.HeaderOrigin)
			if origin == "" {
				next.ServeHTTP(writer, request)
				return
			}

			if cfg.IsDevelopment() || originAllowed(origin, cfg.OriginSuffix()) {
				header := writer.Header()
				header.Set("Access-Control-Allow-Origin", origin)
				header.Set("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
				header.Set("Access-Control-Allow-Headers", "Accept, Content-Type, Authorization, X-Request-ID")
				header.Set("Access-Control-Expose-Headers", "X-Request-ID")
				header.Set("Access-Control-Max-Age", "300")
				header.Add("Vary", "Origin")
			}

			if request.Method == http.MethodOptions {
				writer.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(writer, request)
		})
	}
}

// # Helpers

// originAllowed matches on whole DNS labels, so "evilartistly.app" does not
// pass for "artistly.app".
func originAllowed(origin, domain string) bool {
	domain = strings.ToLower(strings.TrimPrefix(domain, "."))
	if domain == "" {
		return false
	}

	parsed, err := url.Parse(origin)
	if err != nil || parsed.Scheme == "" {
		return false
	}

	host := strings.ToLower(parsed.Hostname())
	return host == domain || strings.HasSuffix(host, "."+domain)
}

// RealIP returns the client address, preferring X-Real-IP and then the first
// X-Forwarded-For hop over the socket address.
func RealIP(request *http.Request) string {
	if ip := request.Header.Get(constants.HeaderXRealIP); ip != "" {
		return ip
	}

	if forwarded := request.Header.Get(constants.HeaderXForwardedFor); forwarded != "" {
		first, _, _ := strings.Cut(forwarded, ",")
		return strings.TrimSpace(first)
	}

	host, _, err := net.SplitHostPort(request.RemoteAddr)
	if err != nil {
		return request.RemoteAddr
	}
	return host
}
