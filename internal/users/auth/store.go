// Copyright (c) 2026 Artistly. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import "context"

// # User Data Access

// UserRepository defines the data access contract for accounts.
type UserRepository interface {

	/*
		FindByID returns the account with the given ID.

		Returns:
		  - *User: Hydrated entity
		  - error: NOT_FOUND or retrieval failures
	*/
	FindByID(context context.Context, id string) (*User, error)

	/*
		FindByEmail returns the account with the given email, compared
		case-insensitively.

		Returns:
		  - *User: Hydrated entity
		  - error: NOT_FOUND or retrieval failures
	*/
	FindByEmail(context context.Context, email string) (*User, error)

	/*
		Create persists a new account.

		Returns:
		  - error: CONFLICT when the email is taken
	*/
	Create(context context.Context, user *User) error
}

// # Session Data Access

// SessionRepository defines the data access contract for live sessions.
type SessionRepository interface {

	/*
		Create stores a session until its ExpiresAt.

		Returns:
		  - error: Persistence failures
	*/
	Create(context context.Context, session *SessionRecord) error

	/*
		Get returns a stored session.

		Description: An absent, expired or corrupt entry is NOT_FOUND.

		Returns:
		  - *SessionRecord: The stored session
		  - error: NOT_FOUND or connectivity errors
	*/
	Get(context context.Context, id string) (*SessionRecord, error)

	/*
		Delete removes a session. Deleting an absent session is not an error.

		Returns:
		  - error: Persistence failures
	*/
	Delete(context context.Context, id string) error
}
