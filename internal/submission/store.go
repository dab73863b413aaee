// Copyright (c) 2026 Artistly. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package submission

import (
	"context"
	"time"
)

// Repository stores applications.
type Repository interface {
	// Create inserts sub. A duplicate ID is a CONFLICT.
	Create(ctx context.Context, sub *Submission) error

	// List returns the submissions that pass filter, newest first.
	List(ctx context.Context, filter Filter) ([]Submission, error)

	// Get returns one submission or NOT_FOUND.
	Get(ctx context.Context, id string) (*Submission, error)

	// Review atomically applies [Submission.Resolve] and stores the result.
	Review(ctx context.Context, id string, decision Decision, at time.Time) (*Submission, error)
}
