// Copyright (c) 2026 Artistly. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package submission

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/taibuivan/artistly/internal/platform/apperr"
	"github.com/taibuivan/artistly/pkg/uuid"
)

// FilterAll is the status filter value that lists every application.
const FilterAll = "all"

// Service implements the review workflow on top of a [Repository].
//
// It is also the application sink of the onboarding wizard.
type Service struct {
	repository Repository
	logger     *slog.Logger
	now        func() time.Time
}

// NewService constructs a new submission [Service].
func NewService(repository Repository, logger *slog.Logger) *Service {
	return &Service{repository: repository, logger: logger, now: time.Now}
}

// WithClock replaces the time source used for stamps and monthly stats.
func (service *Service) WithClock(now func() time.Time) *Service {
	service.now = now
	return service
}

/*
Create stores a new application as pending.

Description: The ID, status and submission time are assigned here, whatever
the caller put in them.

Returns:
  - error: Storage failures
*/
func (service *Service) Create(context context.Context, sub *Submission) error {
	sub.ID = uuid.New()
	sub.Status = StatusPending
	sub.SubmittedAt = service.now().UTC()
	sub.ReviewedAt = nil

	if err := service.repository.Create(context, sub); err != nil {
		return fmt.Errorf("submission_create_failed: %w", err)
	}

	service.logger.InfoContext(context, "submission_created",
		slog.String("submission_id", sub.ID),
		slog.String("artist_name", sub.Name),
	)
	return nil
}

// ParseFilter converts a status query value. Empty and "all" match everything.
func ParseFilter(raw string) (Filter, error) {
	if raw == "" || raw == FilterAll {
		return Filter{}, nil
	}
	status := Status(raw)
	if !status.Valid() {
		return Filter{}, apperr.ValidationError("Invalid status filter", apperr.FieldError{
			Field:   "status",
			Message: "Must be one of: all, pending, approved, rejected",
		})
	}
	return Filter{Status: status}, nil
}

// List returns the applications that pass filter, newest first.
func (service *Service) List(context context.Context, filter Filter) ([]Submission, error) {
	submissions, err := service.repository.List(context, filter)
	if err != nil {
		return nil, fmt.Errorf("submission_list_failed: %w", err)
	}
	return submissions, nil
}

// Get returns one application or a NOT_FOUND error.
func (service *Service) Get(context context.Context, id string) (*Submission, error) {
	return service.repository.Get(context, id)
}

// ReviewResult is returned by a successful [Service.Review].
type ReviewResult struct {
	Submission *Submission `json:"submission"`
	Message    string      `json:"message"`
}

/*
Review resolves a pending application.

Parameters:
  - context: context.Context
  - id: string (submission identifier)
  - decision: Decision (approved or rejected)

Returns:
  - *ReviewResult: The resolved application and a confirmation message
  - error: NOT_FOUND, VALIDATION_ERROR, CONFLICT when already resolved
*/
func (service *Service) Review(context context.Context, id string, decision Decision) (*ReviewResult, error) {
	sub, err := service.repository.Review(context, id, decision, service.now().UTC())
	if err != nil {
		return nil, err
	}

	service.logger.InfoContext(context, "submission_reviewed",
		slog.String("submission_id", sub.ID),
		slog.String("status", string(sub.Status)),
	)

	return &ReviewResult{
		Submission: sub,
		Message:    fmt.Sprintf("%s's application %s", sub.Name, sub.Status),
	}, nil
}

// Stats returns the dashboard counters.
func (service *Service) Stats(context context.Context) (Stats, error) {
	submissions, err := service.repository.List(context, Filter{})
	if err != nil {
		return Stats{}, fmt.Errorf("submission_stats_failed: %w", err)
	}
	return Summarize(submissions, service.now()), nil
}

// Summarize counts submissions by status. ThisMonth counts those submitted in
// the calendar month of now, in now's time zone.
func Summarize(submissions []Submission, now time.Time) Stats {
	stats := Stats{Total: len(submissions)}
	year, month, _ := now.Date()

	for i := range submissions {
		sub := &submissions[i]
		switch sub.Status {
		case StatusPending:
			stats.Pending++
		case StatusApproved:
			stats.Approved++
		case StatusRejected:
			stats.Rejected++
		}

		y, m, _ := sub.SubmittedAt.In(now.Location()).Date()
		if y == year && m == month {
			stats.ThisMonth++
		}
	}
	return stats
}
