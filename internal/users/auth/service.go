// Copyright (c) 2026 Artistly. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/taibuivan/artistly/internal/platform/apperr"
	"github.com/taibuivan/artistly/internal/platform/sec"
	"github.com/taibuivan/artistly/internal/platform/validate"
	"github.com/taibuivan/artistly/pkg/uuid"
)

// # Contracts & Types

// TokenProvider signs and parses access tokens.
type TokenProvider interface {
	// GenerateAccessToken creates a signed token bound to sessionID.
	GenerateAccessToken(userID, name, role, sessionID string, timeToLive time.Duration) (string, error)

	// ParseToken checks signature and expiry and returns the claims.
	ParseToken(token string) (*sec.AuthClaims, error)
}

// Service implements the session use cases.
type Service struct {
	userRepository    UserRepository
	sessionRepository SessionRepository
	tokenProvider     TokenProvider
	sessionTTL        time.Duration
	logger            *slog.Logger
	now               func() time.Time
}

// NewService constructs a new auth [Service] with its dependencies.
func NewService(
	userRepo UserRepository,
	sessionRepo SessionRepository,
	tokenProv TokenProvider,
	sessionTTL time.Duration,
	logger *slog.Logger,
) *Service {
	return &Service{
		userRepository:    userRepo,
		sessionRepository: sessionRepo,
		tokenProvider:     tokenProv,
		sessionTTL:        sessionTTL,
		logger:            logger,
		now:               time.Now,
	}
}

// # Authentication Flow

/*
Login checks credentials and opens a session.

Description: An unknown email and a wrong password fail with the same
message so accounts cannot be enumerated.

Parameters:
  - context: context.Context
  - email: string
  - password: string

Returns:
  - *Session: The new session with its access token
  - error: UNAUTHORIZED or internal failures
*/
func (service *Service) Login(context context.Context, email, password string) (*Session, error) {
	user, err := service.userRepository.FindByEmail(context, email)
	if err != nil {
		return nil, apperr.Unauthorized("Invalid email or password")
	}

	if !sec.CheckPasswordHash(password, user.PasswordHash) {
		return nil, apperr.Unauthorized("Invalid email or password")
	}

	return service.open(context, user)
}

// RegisterInput holds the data required to create an account.
type RegisterInput struct {
	Name     string       `json:"name"`
	Email    string       `json:"email"`
	Password string       `json:"password"`
	Role     sec.UserRole `json:"role"`
}

/*
Register creates an account and logs it in.

Description: Only the user and artist roles can self-register. The role
defaults to user.

Returns:
  - *Session: The new session
  - error: VALIDATION_ERROR, CONFLICT (email taken) or internal failures
*/
func (service *Service) Register(context context.Context, input RegisterInput) (*Session, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.Email = strings.TrimSpace(input.Email)
	if input.Role == "" {
		input.Role = sec.RoleUser
	}

	validator := &validate.Validator{}
	validator.MinLen(FieldName, input.Name, NameMinLen, "Name must be at least 2 characters").
		Email(FieldEmail, input.Email, "Please enter a valid email address").
		MinLen(FieldPassword, input.Password, PasswordMinLen, "Password must be at least 6 characters").
		OneOf(FieldRole, string(input.Role), []string{string(sec.RoleUser), string(sec.RoleArtist)})
	if err := validator.Err(); err != nil {
		return nil, err
	}

	if _, err := service.userRepository.FindByEmail(context, input.Email); err == nil {
		return nil, apperr.Conflict("Email is already registered")
	}

	hashedPassword, err := sec.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("auth_service_hash_failed: %w", err)
	}

	user := &User{
		ID:           uuid.New(),
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hashedPassword,
		Role:         input.Role,
		CreatedAt:    service.now(),
	}
	if err := service.userRepository.Create(context, user); err != nil {
		return nil, err
	}

	service.logger.InfoContext(context, "user_registered",
		slog.String("user_id", user.ID),
		slog.String("role", string(user.Role)),
	)
	return service.open(context, user)
}

// # Session Management

/*
Restore resumes a stored session and issues a fresh access token.

Description: A missing, expired or corrupt session, or one whose account no
longer exists, is dropped and reported as UNAUTHORIZED.

Returns:
  - *Session: The live session
  - error: UNAUTHORIZED or connectivity failures
*/
func (service *Service) Restore(context context.Context, sessionID string) (*Session, error) {
	record, err := service.sessionRepository.Get(context, sessionID)
	if err != nil {
		if apperr.HasCode(err, apperr.CodeNotFound) {
			return nil, apperr.Unauthorized("Session is invalid or expired")
		}
		return nil, fmt.Errorf("auth_service_restore_failed: %w", err)
	}

	if record.Expired(service.now()) {
		service.drop(context, sessionID)
		return nil, apperr.Unauthorized("Session is invalid or expired")
	}

	user, err := service.userRepository.FindByID(context, record.UserID)
	if err != nil {
		service.drop(context, sessionID)
		return nil, apperr.Unauthorized("Session is invalid or expired")
	}

	return service.issue(user, record)
}

// Logout clears a session. Logging out twice is not an error.
func (service *Service) Logout(context context.Context, sessionID string) error {
	if err := service.sessionRepository.Delete(context, sessionID); err != nil {
		return fmt.Errorf("auth_service_logout_failed: %w", err)
	}

	service.logger.InfoContext(context, "session_cleared", slog.String("session_id", sessionID))
	return nil
}

/*
VerifyToken resolves a bearer token for the authentication middleware.

Description: Besides the signature and expiry checks, the session named by
the token must still exist and belong to the token's user.

Returns:
  - *sec.AuthClaims: Claims of a live session
  - error: UNAUTHORIZED
*/
func (service *Service) VerifyToken(context context.Context, token string) (*sec.AuthClaims, error) {
	claims, err := service.tokenProvider.ParseToken(token)
	if err != nil {
		return nil, apperr.Unauthorized("Invalid or expired session")
	}

	record, err := service.sessionRepository.Get(context, claims.SessionID)
	if err != nil || record.UserID != claims.UserID || record.Expired(service.now()) {
		return nil, apperr.Unauthorized("Invalid or expired session")
	}

	return claims, nil
}

// # Internals

func (service *Service) open(context context.Context, user *User) (*Session, error) {
	now := service.now()
	record := &SessionRecord{
		ID:        uuid.New(),
		UserID:    user.ID,
		CreatedAt: now,
		ExpiresAt: now.Add(service.sessionTTL),
	}

	if err := service.sessionRepository.Create(context, record); err != nil {
		return nil, fmt.Errorf("auth_service_session_creation_failed: %w", err)
	}

	service.logger.InfoContext(context, "session_created",
		slog.String("session_id", record.ID),
		slog.String("user_id", user.ID),
	)
	return service.issue(user, record)
}

func (service *Service) issue(user *User, record *SessionRecord) (*Session, error) {
	ttl := record.ExpiresAt.Sub(service.now())
	accessToken, err := service.tokenProvider.GenerateAccessToken(user.ID, user.Name, string(user.Role), record.ID, ttl)
	if err != nil {
		return nil, fmt.Errorf("auth_service_token_generation_failed: %w", err)
	}

	return &Session{
		ID:          record.ID,
		User:        user,
		AccessToken: accessToken,
		ExpiresAt:   record.ExpiresAt,
	}, nil
}

func (service *Service) drop(context context.Context, sessionID string) {
	if err := service.sessionRepository.Delete(context, sessionID); err != nil {
		service.logger.WarnContext(context, "session_drop_failed",
			slog.String("session_id", sessionID),
			slog.Any("error", err),
		)
	}
}
