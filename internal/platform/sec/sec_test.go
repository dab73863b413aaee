// Copyright (c) 2026 Artistly. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sec_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/artistly/internal/platform/sec"
)

/*
TestTokenService_RoundTrip verifies that a signed token parses back into the same claims.
*/
func TestTokenService_RoundTrip(t *testing.T) {
	tokens, err := sec.NewTokenService("test-secret-0123456789", "artistly.test")
	require.NoError(t, err)

	signed, err := tokens.GenerateAccessToken("3", "Priya Artist", "artist", "sess-9", time.Minute)
	require.NoError(t, err)

	claims, err := tokens.ParseToken(signed)
	require.NoError(t, err)
	assert.Equal(t, "3", claims.UserID)
	assert.Equal(t, "Priya Artist", claims.Name)
	assert.Equal(t, "artist", claims.Role)
	assert.Equal(t, "sess-9", claims.SessionID)
}

/*
TestTokenService_Rejects covers expired tokens, foreign secrets and garbage input.
*/
func TestTokenService_Rejects(t *testing.T) {
	tokens, err := sec.NewTokenService("test-secret-0123456789", "artistly.test")
	require.NoError(t, err)
	other, err := sec.NewTokenService("another-secret-987654", "artistly.test")
	require.NoError(t, err)

	expired, err := tokens.GenerateAccessToken("1", "John Doe", "user", "s", -time.Minute)
	require.NoError(t, err)
	foreign, err := other.GenerateAccessToken("1", "John Doe", "user", "s", time.Minute)
	require.NoError(t, err)

	for name, token := range map[string]string{
		"expired": expired,
		"foreign": foreign,
		"garbage": "not-a-token",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := tokens.ParseToken(token)
			assert.Error(t, err)
		})
	}

	_, err = sec.NewTokenService("", "artistly.test")
	assert.Error(t, err)
}

/*
TestRole_AtLeast checks the role hierarchy used by the route guards.
*/
func TestRole_AtLeast(t *testing.T) {
	assert.True(t, sec.RoleAdmin.AtLeast(sec.RoleArtist))
	assert.True(t, sec.RoleArtist.AtLeast(sec.RoleUser))
	assert.False(t, sec.RoleUser.AtLeast(sec.RoleAdmin))
	assert.False(t, sec.UserRole("guest").Valid())
	assert.True(t, sec.RoleUser.Valid())
}

/*
TestPassword_Hash checks bcrypt hashing and comparison.
*/
func TestPassword_Hash(t *testing.T) {
	hash, err := sec.HashPassword("admin123")
	require.NoError(t, err)

	assert.True(t, sec.CheckPasswordHash("admin123", hash))
	assert.False(t, sec.CheckPasswordHash("admin124", hash))
}
