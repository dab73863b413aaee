// Copyright (c) 2026 Artistly. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package middleware_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/taibuivan/artistly/internal/platform/middleware"
	"github.com/taibuivan/artistly/internal/platform/sec"
)

type mockVerifier struct {
	mock.Mock
}

func (m *mockVerifier) VerifyToken(ctx context.Context, token string) (*sec.AuthClaims, error) {
	args := m.Called(ctx, token)
	claims, _ := args.Get(0).(*sec.AuthClaims)
	return claims, args.Error(1)
}

func newVerifier() *mockVerifier {
	verifier := &mockVerifier{}
	verifier.On("VerifyToken", mock.Anything, "admin-token").
		Return(&sec.AuthClaims{UserID: "2", Role: string(sec.RoleAdmin), SessionID: "s2"}, nil)
	verifier.On("VerifyToken", mock.Anything, "user-token").
		Return(&sec.AuthClaims{UserID: "1", Role: string(sec.RoleUser), SessionID: "s1"}, nil)
	verifier.On("VerifyToken", mock.Anything, mock.Anything).
		Return(nil, errors.New("session cleared"))
	return verifier
}

func TestAuthz(t *testing.T) {
	verifier := newVerifier()

	tests := []struct {
		name   string
		guard  func(http.Handler) http.Handler
		header string
		want   int
	}{
		{"anonymous_passes_authenticate", func(h http.Handler) http.Handler { return h }, "", http.StatusOK},
		{"bad_scheme", func(h http.Handler) http.Handler { return h }, "Basic abc", http.StatusUnauthorized},
		{"cleared_session", func(h http.Handler) http.Handler { return h }, "Bearer stale", http.StatusUnauthorized},
		{"require_auth_anonymous", middleware.RequireAuth, "", http.StatusUnauthorized},
		{"require_auth_user", middleware.RequireAuth, "Bearer user-token", http.StatusOK},
		{"admin_route_anonymous", middleware.RequireRole(sec.RoleAdmin), "", http.StatusUnauthorized},
		{"admin_route_user", middleware.RequireRole(sec.RoleAdmin), "Bearer user-token", http.StatusForbidden},
		{"admin_route_admin", middleware.RequireRole(sec.RoleAdmin), "bearer admin-token", http.StatusOK},
		{"artist_route_admin", middleware.RequireRole(sec.RoleArtist), "Bearer admin-token", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := middleware.Authenticate(verifier)(tt.guard(ok))

			request := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				request.Header.Set("Authorization", tt.header)
			}
			recorder := httptest.NewRecorder()
			handler.ServeHTTP(recorder, request)

			assert.Equal(t, tt.want, recorder.Code)
		})
	}
}
