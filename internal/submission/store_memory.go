// Copyright (c) 2026 Artistly. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package submission

import (
	"cmp"
	"context"
	"slices"
	"sync"
	"time"

	"github.com/taibuivan/artistly/internal/platform/apperr"
)

// MemoryRepository implements [Repository] in process memory.
type MemoryRepository struct {
	mu          sync.RWMutex
	submissions map[string]*Submission
}

// NewMemoryRepository returns a repository holding copies of initial.
func NewMemoryRepository(initial []Submission) *MemoryRepository {
	repository := &MemoryRepository{submissions: make(map[string]*Submission, len(initial))}
	for i := range initial {
		repository.submissions[initial[i].ID] = clone(&initial[i])
	}
	return repository
}

func (repository *MemoryRepository) Create(_ context.Context, sub *Submission) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	if _, exists := repository.submissions[sub.ID]; exists {
		return apperr.Conflict("Submission already exists")
	}
	repository.submissions[sub.ID] = clone(sub)
	return nil
}

func (repository *MemoryRepository) List(_ context.Context, filter Filter) ([]Submission, error) {
	repository.mu.RLock()
	out := make([]Submission, 0, len(repository.submissions))
	for _, sub := range repository.submissions {
		if filter.Matches(sub) {
			out = append(out, *clone(sub))
		}
	}
	repository.mu.RUnlock()

	slices.SortFunc(out, newestFirst)
	return out, nil
}

func (repository *MemoryRepository) Get(_ context.Context, id string) (*Submission, error) {
	repository.mu.RLock()
	defer repository.mu.RUnlock()

	sub, ok := repository.submissions[id]
	if !ok {
		return nil, apperr.NotFound("Submission")
	}
	return clone(sub), nil
}

func (repository *MemoryRepository) Review(_ context.Context, id string, decision Decision, at time.Time) (*Submission, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	sub, ok := repository.submissions[id]
	if !ok {
		return nil, apperr.NotFound("Submission")
	}
	if err := sub.Resolve(decision, at); err != nil {
		return nil, err
	}
	return clone(sub), nil
}

func clone(sub *Submission) *Submission {
	out := *sub
	out.Categories = slices.Clone(sub.Categories)
	out.Languages = slices.Clone(sub.Languages)
	if sub.ReviewedAt != nil {
		at := *sub.ReviewedAt
		out.ReviewedAt = &at
	}
	return &out
}

// newestFirst orders by submission time, latest first, then by ID.
func newestFirst(a, b Submission) int {
	if c := b.SubmittedAt.Compare(a.SubmittedAt); c != 0 {
		return c
	}
	return cmp.Compare(a.ID, b.ID)
}
