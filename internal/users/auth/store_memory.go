// Copyright (c) 2026 Artistly. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/taibuivan/artistly/internal/platform/apperr"
	"github.com/taibuivan/artistly/internal/platform/sec"
)

// # Users

// MemoryUserRepository implements [UserRepository] in process memory.
type MemoryUserRepository struct {
	mu      sync.RWMutex
	byID    map[string]*User
	byEmail map[string]*User
}

// NewMemoryUserRepository returns a repository holding users.
func NewMemoryUserRepository(users ...User) *MemoryUserRepository {
	repository := &MemoryUserRepository{
		byID:    make(map[string]*User, len(users)),
		byEmail: make(map[string]*User, len(users)),
	}
	for i := range users {
		user := users[i]
		repository.byID[user.ID] = &user
		repository.byEmail[emailKey(user.Email)] = &user
	}
	return repository
}

// DemoUsers returns the seeded demo accounts with bcrypt-hashed passwords.
func DemoUsers(now time.Time) ([]User, error) {
	users := make([]User, 0, len(demoAccounts))
	for _, account := range demoAccounts {
		hash, err := sec.HashPassword(account.password)
		if err != nil {
			return nil, fmt.Errorf("auth: hash demo password: %w", err)
		}
		users = append(users, User{
			ID:           account.id,
			Name:         account.name,
			Email:        account.email,
			PasswordHash: hash,
			Role:         account.role,
			CreatedAt:    now,
		})
	}
	return users, nil
}

func (repository *MemoryUserRepository) FindByID(_ context.Context, id string) (*User, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	user, ok := repository.byID[id]
	if !ok {
		return nil, apperr.NotFound("User")
	}
	copied := *user
	return &copied, nil
}

func (repository *MemoryUserRepository) FindByEmail(_ context.Context, email string) (*User, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	user, ok := repository.byEmail[emailKey(email)]
	if !ok {
		return nil, apperr.NotFound("User")
	}
	copied := *user
	return &copied, nil
}

func (repository *MemoryUserRepository) Create(_ context.Context, user *User) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	key := emailKey(user.Email)
	if _, taken := repository.byEmail[key]; taken {
		return apperr.Conflict("Email is already registered")
	}

	stored := *user
	repository.byID[stored.ID] = &stored
	repository.byEmail[key] = &stored
	return nil
}

func emailKey(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// # Sessions

// MemorySessionRepository implements [SessionRepository] in process memory.
type MemorySessionRepository struct {
	mu       sync.Mutex
	sessions map[string]SessionRecord
	now      func() time.Time
}

// NewMemorySessionRepository returns an empty session store.
func NewMemorySessionRepository() *MemorySessionRepository {
	return &MemorySessionRepository{sessions: make(map[string]SessionRecord), now: time.Now}
}

func (repository *MemorySessionRepository) Create(_ context.Context, session *SessionRecord) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	repository.sessions[session.ID] = *session
	return nil
}

// Get evicts and reports an expired session as NOT_FOUND.
func (repository *MemorySessionRepository) Get(_ context.Context, id string) (*SessionRecord, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	session, ok := repository.sessions[id]
	if ok && session.Expired(repository.now()) {
		delete(repository.sessions, id)
		ok = false
	}
	if !ok {
		return nil, apperr.NotFound("Session")
	}
	return &session, nil
}

func (repository *MemorySessionRepository) Delete(_ context.Context, id string) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	delete(repository.sessions, id)
	return nil
}

// RunJanitor drops expired sessions every interval until ctx is done.
func (repository *MemorySessionRepository) RunJanitor(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			repository.EvictExpired()
		case <-ctx.Done():
			return
		}
	}
}

// EvictExpired removes every lapsed session and returns how many were dropped.
func (repository *MemorySessionRepository) EvictExpired() int {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	now := repository.now()
	evicted := 0
	for id, session := range repository.sessions {
		if session.Expired(now) {
			delete(repository.sessions, id)
			evicted++
		}
	}
	return evicted
}

// Len returns the number of stored sessions, expired or not.
func (repository *MemorySessionRepository) Len() int {
	repository.mu.Lock()
	defer repository.mu.Unlock()
	return len(repository.sessions)
}
