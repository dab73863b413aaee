// Copyright (c) 2026 Artistly. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package onboarding

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/taibuivan/artistly/internal/platform/apperr"
)

type memoryDraft struct {
	payload   []byte
	expiresAt time.Time
}

// MemoryDraftRepository implements [DraftRepository] in process memory.
//
// Wizards are stored as JSON so callers never share state with the store,
// matching the Redis implementation.
type MemoryDraftRepository struct {
	mu     sync.Mutex
	drafts map[string]memoryDraft
	ttl    time.Duration
	now    func() time.Time
}

// NewMemoryDraftRepository creates an empty store whose drafts live for ttl.
func NewMemoryDraftRepository(ttl time.Duration) *MemoryDraftRepository {
	return &MemoryDraftRepository{
		drafts: make(map[string]memoryDraft),
		ttl:    ttl,
		now:    time.Now,
	}
}

// Save stores wizard and refreshes its expiry.
func (repository *MemoryDraftRepository) Save(_ context.Context, wizard *Wizard) error {
	payload, err := json.Marshal(wizard)
	if err != nil {
		return fmt.Errorf("memory_draft_encode_failed: %w", err)
	}

	repository.mu.Lock()
	defer repository.mu.Unlock()

	repository.drafts[wizard.ID] = memoryDraft{payload: payload, expiresAt: repository.now().Add(repository.ttl)}
	return nil
}

// RunJanitor drops expired drafts every interval until ctx is done. Get also
// evicts on access, so the janitor only bounds memory held by abandoned drafts.
func (repository *MemoryDraftRepository) RunJanitor(ctx context.Context, interval time.Duration) {
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

// EvictExpired removes every expired draft and returns how many were dropped.
func (repository *MemoryDraftRepository) EvictExpired() int {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	now := repository.now()
	evicted := 0
	for id, draft := range repository.drafts {
		if !now.Before(draft.expiresAt) {
			delete(repository.drafts, id)
			evicted++
		}
	}
	return evicted
}

// Len returns the number of stored drafts, expired or not.
func (repository *MemoryDraftRepository) Len() int {
	repository.mu.Lock()
	defer repository.mu.Unlock()
	return len(repository.drafts)
}

// Get loads a live draft. Expired drafts are evicted on access.
func (repository *MemoryDraftRepository) Get(_ context.Context, id string) (*Wizard, error) {
	repository.mu.Lock()
	draft, ok := repository.drafts[id]
	if ok && !repository.now().Before(draft.expiresAt) {
		delete(repository.drafts, id)
		ok = false
	}
	repository.mu.Unlock()

	if !ok {
		return nil, apperr.NotFound("Draft")
	}

	var wizard Wizard
	if err := json.Unmarshal(draft.payload, &wizard); err != nil {
		return nil, fmt.Errorf("memory_draft_decode_failed: %w", err)
	}
	return &wizard, nil
}

// Delete removes a draft. Deleting an absent draft is not an error.
func (repository *MemoryDraftRepository) Delete(_ context.Context, id string) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	delete(repository.drafts, id)
	return nil
}
