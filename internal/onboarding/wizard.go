// Copyright (c) 2026 Artistly. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package onboarding implements the artist intake wizard.

The wizard is a four-step form that only moves forward when the fields of the
current step validate:

	Personal -> Professional -> Pricing -> Review -> Submitted

Architecture:

  - Wizard: the pure state machine; no I/O and no clock of its own.
  - DraftRepository: keeps an in-progress wizard between HTTP requests.
  - Service: load / transition / save, the submission delay and the hand-off
    to the application [Sink].
*/
package onboarding

import (
	"time"

	"github.com/taibuivan/artistly/internal/catalog"
	"github.com/taibuivan/artistly/internal/platform/apperr"
	"github.com/taibuivan/artistly/internal/platform/validate"
	"github.com/taibuivan/artistly/internal/submission"
)

// # Steps

// Step is a 1-based wizard position.
type Step int

const (
	StepPersonal Step = iota + 1
	StepProfessional
	StepPricing
	StepReview
	StepSubmitted
)

// TotalSteps is the number of form steps. Submitted is not counted.
const TotalSteps = 4

type stepInfo struct {
	title       string
	description string
	fields      []string
	check       func(Form, *validate.Validator)
}

var steps = map[Step]stepInfo{
	StepPersonal: {
		title:       "Personal Info",
		description: "Basic information about you",
		fields:      []string{FieldName, FieldEmail, FieldPhone, FieldLocation},
		check:       validatePersonal,
	},
	StepProfessional: {
		title:       "Professional Details",
		description: "Your skills and expertise",
		fields:      []string{FieldBio, FieldCategories, FieldLanguages},
		check:       validateProfessional,
	},
	StepPricing: {
		title:       "Pricing & Availability",
		description: "Set your rates and preferences",
		fields:      []string{FieldPriceRange, FieldExperience},
		check:       validatePricing,
	},
	StepReview: {
		title:       "Review & Submit",
		description: "Review your application",
	},
	StepSubmitted: {
		title:       "Application Submitted",
		description: "We'll review your profile and get back to you within 24 hours",
	},
}

// Title returns the heading shown for s.
func (s Step) Title() string { return steps[s].title }

// Description returns the subheading shown for s.
func (s Step) Description() string { return steps[s].description }

// # Wizard

// Wizard is one applicant's progress through the intake form.
//
// It is owned by a single caller at a time and is not safe for concurrent use.
type Wizard struct {
	ID           string            `json:"id"`
	Step         Step              `json:"step"`
	Form         Form              `json:"form"`
	Errors       map[string]string `json:"errors"`
	SubmissionID string            `json:"submission_id,omitempty"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
}

// New returns a wizard on the first step with an empty form.
func New(id string, now time.Time) *Wizard {
	return &Wizard{
		ID:        id,
		Step:      StepPersonal,
		Form:      Form{Categories: []catalog.Category{}, Languages: []catalog.Language{}},
		Errors:    map[string]string{},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Submitted reports whether the wizard reached its terminal state.
func (w *Wizard) Submitted() bool {
	return w.Step == StepSubmitted
}

// Progress is currentStep / TotalSteps, capped at 1 once submitted.
func (w *Wizard) Progress() float64 {
	if w.Step >= TotalSteps {
		return 1
	}
	return float64(w.Step) / TotalSteps
}

// Update merges edited values into the form and clears the errors of every
// field the patch touched.
func (w *Wizard) Update(p Patch) error {
	if err := w.ensureOpen(); err != nil {
		return err
	}
	for _, field := range w.Form.apply(p) {
		delete(w.Errors, field)
	}
	return nil
}

/*
Advance validates the current step and moves to the next one.

Returns:
  - error: VALIDATION_ERROR with one detail per failing field (the wizard stays
    put and records the messages in Errors); UNPROCESSABLE on the review step,
    which only submits; CONFLICT once submitted.
*/
func (w *Wizard) Advance() error {
	if err := w.ensureOpen(); err != nil {
		return err
	}
	if w.Step == StepReview {
		return apperr.Unprocessable("The review step can only be submitted")
	}

	if err := w.check(w.Step); err != nil {
		return err
	}
	w.Step++
	return nil
}

// Retreat moves back one step without validation. It is a no-op on the first step.
func (w *Wizard) Retreat() error {
	if err := w.ensureOpen(); err != nil {
		return err
	}
	if w.Step > StepPersonal {
		w.Step--
	}
	return nil
}

/*
CheckSubmit verifies that the wizard may be submitted.

Description: Only the review step can submit. Every step is re-validated;
failures are recorded in Errors and the wizard stays on review.

Returns:
  - error: UNPROCESSABLE off the review step, CONFLICT once submitted,
    VALIDATION_ERROR listing every failing field
*/
func (w *Wizard) CheckSubmit() error {
	if err := w.ensureOpen(); err != nil {
		return err
	}
	if w.Step != StepReview {
		return apperr.Unprocessable("Applications can only be submitted from the review step")
	}
	return w.check(StepPersonal, StepProfessional, StepPricing)
}

// Application builds the pending submission the form describes.
func (w *Wizard) Application() *submission.Submission {
	f := w.Form
	return &submission.Submission{
		Artist: catalog.Artist{
			Name:       f.Name,
			Categories: f.Categories,
			Location:   f.Location,
			PriceRange: f.PriceRange,
			Languages:  f.Languages,
			Bio:        f.Bio,
			ImageURL:   f.ProfileImage,
		},
		Email:      f.Email,
		Phone:      f.Phone,
		Experience: f.Experience,
		Portfolio:  f.Portfolio,
		Status:     submission.StatusPending,
	}
}

// Complete moves a wizard on the review step to Submitted.
func (w *Wizard) Complete(submissionID string) {
	w.Step = StepSubmitted
	w.SubmissionID = submissionID
	w.Errors = map[string]string{}
}

// check validates the given steps, replacing the recorded errors of their fields.
func (w *Wizard) check(stepsToCheck ...Step) error {
	validator := &validate.Validator{}
	for _, s := range stepsToCheck {
		info := steps[s]
		for _, field := range info.fields {
			delete(w.Errors, field)
		}
		info.check(w.Form, validator)
	}

	if !validator.HasErrors() {
		return nil
	}
	for field, message := range validator.FirstByField() {
		w.Errors[field] = message
	}
	return validator.Err()
}

func (w *Wizard) ensureOpen() error {
	if w.Submitted() {
		return apperr.Conflict("Application has already been submitted")
	}
	if w.Errors == nil {
		w.Errors = map[string]string{}
	}
	return nil
}

// # Snapshot

// View is the client-facing rendering of a wizard.
type View struct {
	ID              string            `json:"id"`
	Step            Step              `json:"step"`
	StepTitle       string            `json:"step_title"`
	StepDescription string            `json:"step_description"`
	TotalSteps      int               `json:"total_steps"`
	Progress        float64           `json:"progress"`
	Form            Form              `json:"form"`
	Errors          map[string]string `json:"errors"`
	Submitted       bool              `json:"submitted"`
	SubmissionID    string            `json:"submission_id,omitempty"`
}

// View returns a snapshot that shares no mutable state with w.
func (w *Wizard) View() View {
	errs := make(map[string]string, len(w.Errors))
	for field, message := range w.Errors {
		errs[field] = message
	}

	form := w.Form
	form.Categories = append([]catalog.Category{}, w.Form.Categories...)
	form.Languages = append([]catalog.Language{}, w.Form.Languages...)

	return View{
		ID:              w.ID,
		Step:            w.Step,
		StepTitle:       w.Step.Title(),
		StepDescription: w.Step.Description(),
		TotalSteps:      TotalSteps,
		Progress:        w.Progress(),
		Form:            form,
		Errors:          errs,
		Submitted:       w.Submitted(),
		SubmissionID:    w.SubmissionID,
	}
}
