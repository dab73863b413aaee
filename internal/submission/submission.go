// Copyright (c) 2026 Artistly. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package submission implements the artist application lifecycle.

An application enters as pending when the onboarding wizard submits it and is
resolved exactly once by an admin, to approved or rejected. A resolved
application is terminal: a second review is refused with a conflict.
*/
package submission

import (
	"time"

	"github.com/taibuivan/artistly/internal/catalog"
	"github.com/taibuivan/artistly/internal/platform/apperr"
)

// Status is the review state of an application.
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// Valid reports whether s is a known status.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// Terminal reports whether no further transition is allowed from s.
func (s Status) Terminal() bool {
	return s == StatusApproved || s == StatusRejected
}

// Decision is a reviewer's verdict.
type Decision string

const (
	DecisionApprove Decision = "approved"
	DecisionReject  Decision = "rejected"
)

// Valid reports whether d is one of the two verdicts.
func (d Decision) Valid() bool {
	return d == DecisionApprove || d == DecisionReject
}

// Submission is an artist application. It carries the artist's professional
// profile plus contact details and review state.
type Submission struct {
	catalog.Artist

	Email       string             `json:"email"`
	Phone       string             `json:"phone"`
	Experience  catalog.Experience `json:"experience,omitempty"`
	Portfolio   string             `json:"portfolio,omitempty"`
	Status      Status             `json:"status"`
	SubmittedAt time.Time          `json:"submitted_at"`
	ReviewedAt  *time.Time         `json:"reviewed_at,omitempty"`
}

// Resolve applies decision to a pending submission.
//
// A submission that is already approved or rejected is left unchanged and a
// CONFLICT error is returned.
func (s *Submission) Resolve(decision Decision, at time.Time) error {
	if !decision.Valid() {
		return apperr.ValidationError("Invalid decision", apperr.FieldError{
			Field:   "decision",
			Message: "Must be one of: approved, rejected",
		})
	}
	if s.Status != StatusPending {
		return apperr.Conflict("Application has already been " + string(s.Status))
	}

	s.Status = Status(decision)
	s.ReviewedAt = &at
	return nil
}

// Filter selects submissions by status. The zero Filter matches everything.
type Filter struct {
	Status Status
}

// Matches reports whether s passes the filter.
func (f Filter) Matches(s *Submission) bool {
	return f.Status == "" || s.Status == f.Status
}

// Stats are the dashboard counters.
type Stats struct {
	Total     int `json:"total"`
	Pending   int `json:"pending"`
	Approved  int `json:"approved"`
	Rejected  int `json:"rejected"`
	ThisMonth int `json:"this_month"`
}
