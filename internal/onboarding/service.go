// Copyright (c) 2026 Artistly. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package onboarding

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/taibuivan/artistly/internal/platform/apperr"
	"github.com/taibuivan/artistly/internal/submission"
	"github.com/taibuivan/artistly/pkg/uuid"
)

// SubmittedMessage is the confirmation shown after a successful submission.
const SubmittedMessage = "Application submitted successfully! We'll review your profile and get back to you within 24 hours."

// Sink receives completed applications. Create stamps the identifier, status
// and submission time on sub.
type Sink interface {
	Create(ctx context.Context, sub *submission.Submission) error
}

// Service drives wizards stored in a [DraftRepository].
//
// Every operation loads the draft, applies one transition, saves it and then
// notifies subscribers with the new [View].
type Service struct {
	drafts      DraftRepository
	sink        Sink
	submitDelay time.Duration
	logger      *slog.Logger
	now         func() time.Time

	mu          sync.Mutex
	inFlight    map[string]struct{}
	locks       map[string]*draftLock
	subscribers map[int]func(View)
	nextSubID   int
}

// draftLock serializes load/mutate/save cycles on one draft. refs counts the
// holders and waiters so the entry can be dropped when the last one leaves.
type draftLock struct {
	mu   sync.Mutex
	refs int
}

// NewService constructs a wizard [Service].
//
// # Parameters
//   - drafts: Draft storage (Redis or in-memory).
//   - sink: Receives submitted applications.
//   - submitDelay: Simulated submission latency applied before the sink call.
//   - logger: Structured logger for wizard events.
func NewService(drafts DraftRepository, sink Sink, submitDelay time.Duration, logger *slog.Logger) *Service {
	return &Service{
		drafts:      drafts,
		sink:        sink,
		submitDelay: submitDelay,
		logger:      logger,
		now:         time.Now,
		inFlight:    make(map[string]struct{}),
		locks:       make(map[string]*draftLock),
		subscribers: make(map[int]func(View)),
	}
}

// Subscribe registers fn to receive the view after every successful
// transition. Call the returned function to unsubscribe.
func (service *Service) Subscribe(fn func(View)) (unsubscribe func()) {
	service.mu.Lock()
	id := service.nextSubID
	service.nextSubID++
	service.subscribers[id] = fn
	service.mu.Unlock()

	return func() {
		service.mu.Lock()
		delete(service.subscribers, id)
		service.mu.Unlock()
	}
}

// LogTransitions returns a subscriber that writes one debug line per
// transition. Form contents are not logged.
func LogTransitions(logger *slog.Logger) func(View) {
	return func(view View) {
		logger.Debug("wizard_transition",
			slog.String("draft_id", view.ID),
			slog.String("step", view.StepTitle),
			slog.Float64("progress", view.Progress),
			slog.Int("errors", len(view.Errors)),
			slog.Bool("submitted", view.Submitted),
		)
	}
}

// # Draft Lifecycle

// Start creates a new draft on the first step.
func (service *Service) Start(context context.Context) (View, error) {
	wizard := New(uuid.New(), service.now())
	if err := service.drafts.Save(context, wizard); err != nil {
		return View{}, fmt.Errorf("onboarding_start_failed: %w", err)
	}

	service.logger.InfoContext(context, "wizard_started", slog.String("draft_id", wizard.ID))
	return service.publish(wizard), nil
}

// Get returns the current view of a draft.
func (service *Service) Get(context context.Context, draftID string) (View, error) {
	wizard, err := service.drafts.Get(context, draftID)
	if err != nil {
		return View{}, err
	}
	return wizard.View(), nil
}

// Update merges edited field values into the draft.
func (service *Service) Update(context context.Context, draftID string, patch Patch) (View, error) {
	return service.transition(context, draftID, func(wizard *Wizard) error {
		return wizard.Update(patch)
	})
}

/*
Advance validates the current step and moves forward.

Description: On a validation failure the recorded field errors are saved with
the draft before the error is returned, so a later GET shows them too.

Returns:
  - View: The wizard on its new step
  - error: VALIDATION_ERROR, UNPROCESSABLE (review step), CONFLICT (submitted)
*/
func (service *Service) Advance(context context.Context, draftID string) (View, error) {
	view, err := service.transition(context, draftID, func(wizard *Wizard) error {
		return wizard.Advance()
	})
	if err == nil {
		service.logger.InfoContext(context, "wizard_advanced",
			slog.String("draft_id", draftID),
			slog.Int("step", int(view.Step)),
		)
	}
	return view, err
}

// Retreat moves the draft back one step. It is a no-op on the first step.
func (service *Service) Retreat(context context.Context, draftID string) (View, error) {
	return service.transition(context, draftID, func(wizard *Wizard) error {
		return wizard.Retreat()
	})
}

// Discard deletes a draft. Discarding an unknown draft is not an error.
func (service *Service) Discard(context context.Context, draftID string) error {
	unlock, err := service.claim(draftID)
	if err != nil {
		return err
	}
	defer unlock()

	if err := service.drafts.Delete(context, draftID); err != nil {
		return fmt.Errorf("onboarding_discard_failed: %w", err)
	}

	service.logger.InfoContext(context, "wizard_discarded", slog.String("draft_id", draftID))
	return nil
}

// SubmitResult is returned by a successful [Service.Submit].
type SubmitResult struct {
	Wizard     View                   `json:"wizard"`
	Submission *submission.Submission `json:"submission"`
	Message    string                 `json:"message"`
}

/*
Submit re-validates the whole form and hands the application to the sink.

Description: Only one submission per draft may run at a time. Submit holds
the draft lock from load to save, so an edit that started earlier is either
fully applied before the draft is read or refused with a conflict. After
validation the call waits for the configured delay, then creates the pending
submission and moves the wizard to Submitted. If ctx ends during the delay, or
the sink fails, the wizard stays on the review step.

Parameters:
  - context: context.Context (cancellation aborts the wait)
  - draftID: string

Returns:
  - *SubmitResult: Final wizard view, stored submission and confirmation
  - error: CONFLICT (already submitting or submitted), UNPROCESSABLE (not on
    review), VALIDATION_ERROR, or the cancellation / sink error
*/
func (service *Service) Submit(context context.Context, draftID string) (*SubmitResult, error) {
	if !service.acquire(draftID) {
		return nil, errSubmitting()
	}
	defer service.release(draftID)

	unlock := service.lockDraft(draftID)
	defer unlock()

	wizard, err := service.drafts.Get(context, draftID)
	if err != nil {
		return nil, err
	}

	if err := wizard.CheckSubmit(); err != nil {
		if isValidation(err) {
			service.saveErrors(context, wizard)
		}
		return nil, err
	}

	if err := service.wait(context); err != nil {
		service.logger.WarnContext(context, "wizard_submit_cancelled", slog.String("draft_id", draftID))
		return nil, fmt.Errorf("onboarding_submit_cancelled: %w", err)
	}

	application := wizard.Application()
	if err := service.sink.Create(context, application); err != nil {
		return nil, fmt.Errorf("onboarding_submit_failed: %w", err)
	}

	wizard.Complete(application.ID)
	wizard.UpdatedAt = service.now()
	if err := service.drafts.Save(context, wizard); err != nil {
		// The application exists; a lost draft only affects what GET shows.
		service.logger.ErrorContext(context, "wizard_save_after_submit_failed",
			slog.String("draft_id", draftID),
			slog.Any("error", err),
		)
	}

	service.logger.InfoContext(context, "wizard_submitted",
		slog.String("draft_id", draftID),
		slog.String("submission_id", application.ID),
	)

	return &SubmitResult{
		Wizard:     service.publish(wizard),
		Submission: application,
		Message:    SubmittedMessage,
	}, nil
}

// # Internals

// transition loads a draft, applies step and saves the result under the
// draft lock. A failed transition still saves the draft when it recorded new
// field errors.
func (service *Service) transition(context context.Context, draftID string, step func(*Wizard) error) (View, error) {
	unlock, err := service.claim(draftID)
	if err != nil {
		return View{}, err
	}
	defer unlock()

	wizard, err := service.drafts.Get(context, draftID)
	if err != nil {
		return View{}, err
	}

	if err := step(wizard); err != nil {
		if isValidation(err) {
			service.saveErrors(context, wizard)
		}
		return View{}, err
	}

	wizard.UpdatedAt = service.now()
	if err := service.drafts.Save(context, wizard); err != nil {
		return View{}, fmt.Errorf("onboarding_save_failed: %w", err)
	}

	return service.publish(wizard), nil
}

func isValidation(err error) bool {
	return apperr.HasCode(err, apperr.CodeValidation)
}

func (service *Service) saveErrors(context context.Context, wizard *Wizard) {
	wizard.UpdatedAt = service.now()
	if err := service.drafts.Save(context, wizard); err != nil {
		service.logger.WarnContext(context, "wizard_errors_not_saved",
			slog.String("draft_id", wizard.ID),
			slog.Any("error", err),
		)
	}
}

func (service *Service) wait(context context.Context) error {
	if service.submitDelay <= 0 {
		return context.Err()
	}

	timer := time.NewTimer(service.submitDelay)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-context.Done():
		return context.Err()
	}
}

func (service *Service) publish(wizard *Wizard) View {
	view := wizard.View()

	service.mu.Lock()
	listeners := make([]func(View), 0, len(service.subscribers))
	for _, fn := range service.subscribers {
		listeners = append(listeners, fn)
	}
	service.mu.Unlock()

	for _, fn := range listeners {
		fn(view)
	}
	return view
}

func (service *Service) acquire(draftID string) bool {
	service.mu.Lock()
	defer service.mu.Unlock()

	if _, running := service.inFlight[draftID]; running {
		return false
	}
	service.inFlight[draftID] = struct{}{}
	return true
}

func (service *Service) release(draftID string) {
	service.mu.Lock()
	delete(service.inFlight, draftID)
	service.mu.Unlock()
}

// claim takes the draft lock for a non-submit operation. It fails fast with a
// conflict while a submission runs, and checks again once the lock is held
// because a submit may have started while this call waited.
func (service *Service) claim(draftID string) (unlock func(), err error) {
	if service.busy(draftID) {
		return nil, errSubmitting()
	}

	unlock = service.lockDraft(draftID)
	if service.busy(draftID) {
		unlock()
		return nil, errSubmitting()
	}
	return unlock, nil
}

func errSubmitting() error {
	return apperr.Conflict("A submission for this application is already in progress")
}

func (service *Service) lockDraft(draftID string) (unlock func()) {
	service.mu.Lock()
	lock, ok := service.locks[draftID]
	if !ok {
		lock = &draftLock{}
		service.locks[draftID] = lock
	}
	lock.refs++
	service.mu.Unlock()

	lock.mu.Lock()
	return func() {
		lock.mu.Unlock()

		service.mu.Lock()
		lock.refs--
		if lock.refs == 0 {
			delete(service.locks, draftID)
		}
		service.mu.Unlock()
	}
}

func (service *Service) busy(draftID string) bool {
	service.mu.Lock()
	defer service.mu.Unlock()

	_, running := service.inFlight[draftID]
	return running
}
