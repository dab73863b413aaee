// Copyright (c) 2026 Artistly. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sec

// # User Roles

// UserRole represents the authorization level granted to an account.
type UserRole string

const (
	// Reviews artist applications from the dashboard
	RoleAdmin UserRole = "admin"

	// Performer who can submit an onboarding application
	RoleArtist UserRole = "artist"

	// Event planner browsing the catalog
	RoleUser UserRole = "user"
)

// Valid reports whether r is one of the known roles.
func (r UserRole) Valid() bool {
	return r.level() > 0
}

// # Role Hierarchy

// AtLeast checks if the current role meets or exceeds the required target role.
func (r UserRole) AtLeast(target UserRole) bool {
	return r.level() >= target.level()
}

func (r UserRole) level() int {
	switch r {
	case RoleAdmin:
		return 30
	case RoleArtist:
		return 20
	case RoleUser:
		return 10
	default:
		return 0
	}
}
