// Copyright (c) 2026 Artistly. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import "github.com/taibuivan/artistly/internal/platform/sec"

// # Account Constraints

const (
	// PasswordMinLen is the shortest accepted password.
	PasswordMinLen = 6

	// NameMinLen is the shortest accepted display name.
	NameMinLen = 2
)

// # Demo Accounts

type demoAccount struct {
	id       string
	name     string
	email    string
	password string
	role     sec.UserRole
}

var demoAccounts = []demoAccount{
	{id: "1", name: "John Doe", email: "user@demo.com", password: "password123", role: sec.RoleUser},
	{id: "2", name: "Artist Manager", email: "admin@demo.com", password: "admin123", role: sec.RoleAdmin},
	{id: "3", name: "Priya Artist", email: "artist@demo.com", password: "artist123", role: sec.RoleArtist},
}
