// Copyright (c) 2026 Artistly. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package onboarding

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

// RedisDraftRepository implements [DraftRepository] using Redis.
type RedisDraftRepository struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisDraftRepository creates a Redis-backed draft store whose keys expire after ttl.
func NewRedisDraftRepository(client *redis.Client, ttl time.Duration) *RedisDraftRepository {
	return &RedisDraftRepository{client: client, ttl: ttl}
}

/*
Save stores the wizard as JSON and refreshes its TTL.

Parameters:
  - context: context.Context
  - wizard: *Wizard

Returns:
  - error: Encoding or connectivity errors
*/
func (repository *RedisDraftRepository) Save(context context.Context, wizard *Wizard) error {
	if err := redisstore.SetJSON(context, repository.client, draftKey(wizard.ID), wizard, repository.ttl); err != nil {
		return fmt.Errorf("redis_draft_save_failed: %w", err)
	}
	return nil
}

/*
Get loads a draft.

Description: A missing, expired or undecodable entry is reported as
NOT_FOUND; the undecodable one is also deleted.

Returns:
  - *Wizard: The stored wizard
  - error: apperr.NotFound or connectivity errors
*/
func (repository *RedisDraftRepository) Get(context context.Context, id string) (*Wizard, error) {
	var wizard Wizard
	err := redisstore.GetJSON(context, repository.client, draftKey(id), &wizard)
	if errors.Is(err, redisstore.ErrMissing) {
		return nil, apperr.NotFound("Draft")
	}
	if err != nil {
		return nil, fmt.Errorf("redis_draft_get_failed: %w", err)
	}
	return &wizard, nil
}

// Delete removes the draft key.
func (repository *RedisDraftRepository) Delete(context context.Context, id string) error {
	if err := redisstore.Delete(context, repository.client, draftKey(id)); err != nil {
		return fmt.Errorf("redis_draft_delete_failed: %w", err)
	}
	return nil
}

func draftKey(id string) string {
	return constants.RedisPrefixDraft + id
}
