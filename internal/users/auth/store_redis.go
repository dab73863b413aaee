// Copyright (c) 2026 Artistly. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/taibuivan/artistly/internal/platform/apperr"
	"github.com/taibuivan/artistly/internal/platform/constants"
	redisstore "github.com/taibuivan/artistly/internal/platform/redis"
)

// RedisSessionRepository implements [SessionRepository] using Redis. Keys
// expire together with their session.
type RedisSessionRepository struct {
	client *redis.Client
	now    func() time.Time
}

// NewRedisSessionRepository creates a new Redis-backed session store.
func NewRedisSessionRepository(client *redis.Client) *RedisSessionRepository {
	return &RedisSessionRepository{client: client, now: time.Now}
}

/*
Create stores the session with a TTL that ends at its ExpiresAt.

Parameters:
  - context: context.Context
  - session: *SessionRecord

Returns:
  - error: Encoding or connectivity errors
*/
func (repository *RedisSessionRepository) Create(context context.Context, session *SessionRecord) error {
	ttl := session.ExpiresAt.Sub(repository.now())
	if ttl <= 0 {
		return nil
	}

	if err := redisstore.SetJSON(context, repository.client, sessionKey(session.ID), session, ttl); err != nil {
		return fmt.Errorf("redis_session_set_failed: %w", err)
	}
	return nil
}

/*
Get loads a session.

Description: Returns apperr.NotFound if the key is absent, expired or corrupt.

Returns:
  - *SessionRecord: The stored session
  - error: apperr.NotFound or connectivity errors
*/
func (repository *RedisSessionRepository) Get(context context.Context, id string) (*SessionRecord, error) {
	var session SessionRecord
	err := redisstore.GetJSON(context, repository.client, sessionKey(id), &session)
	if errors.Is(err, redisstore.ErrMissing) {
		return nil, apperr.NotFound("Session")
	}
	if err != nil {
		return nil, fmt.Errorf("redis_session_get_failed: %w", err)
	}
	return &session, nil
}

// Delete removes the session key.
func (repository *RedisSessionRepository) Delete(context context.Context, id string) error {
	if err := redisstore.Delete(context, repository.client, sessionKey(id)); err != nil {
		return fmt.Errorf("redis_session_delete_failed: %w", err)
	}
	return nil
}

func sessionKey(id string) string {
	return constants.RedisPrefixSession + id
}
