// Copyright (c) 2026 Artistly. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package uuid generates the identifiers used for sessions, drafts, submissions
and request tracing.

Identifiers are UUIDv7 strings so that keys created later sort later.
*/
package uuid

import "github.com/google/uuid"

// New returns a new UUIDv7 string, falling back to a random v4 if the clock
// source fails.
func New() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// Valid reports whether s parses as a UUID of any version.
func Valid(s string) bool {
	return uuid.Validate(s) == nil
}
