// Copyright (c) 2026 Artistly. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package auth implements accounts and the explicit session object.

A login creates a server-side session; the access token handed to the client
names that session, so clearing the session revokes the token at once.

# Architecture

  - UserRepository: accounts, seeded with the demo logins.
  - SessionRepository: live sessions with an expiry (Redis or memory).
  - Service: Login, Register, Restore, Logout and token verification for the
    authentication middleware.
*/
package auth

import (
	"time"

	"github.com/taibuivan/artistly/internal/platform/sec"
)

// # Domain Entities

// User is an account that can log in.
type User struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Email        string       `json:"email"`
	PasswordHash string       `json:"-"`
	Role         sec.UserRole `json:"role"`
	CreatedAt    time.Time    `json:"created_at"`
}

// SessionRecord is the stored form of a session.
type SessionRecord struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Expired reports whether the session has lapsed at now.
func (r *SessionRecord) Expired(now time.Time) bool {
	return !now.Before(r.ExpiresAt)
}

// Session is the authenticated state handed to the client and passed
// explicitly to whatever needs to know who is logged in.
type Session struct {
	ID          string    `json:"id"`
	User        *User     `json:"user"`
	AccessToken string    `json:"access_token"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// # Field Identifiers

const (
	FieldName     = "name"
	FieldEmail    = "email"
	FieldPassword = "password"
	FieldRole     = "role"
)
