// Copyright (c) 2026 Artistly. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package onboarding_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/artistly/internal/onboarding"
	"github.com/taibuivan/artistly/internal/submission"
	"github.com/taibuivan/artistly/pkg/pointer"
)

// # Mocks

type mockSink struct {
	mock.Mock
}

func (m *mockSink) Create(ctx context.Context, sub *submission.Submission) error {
	args := m.Called(ctx, sub)
	return args.Error(0)
}

// stamp makes the mock behave like the submission store.
func stamp(id string) func(mock.Arguments) {
	return func(args mock.Arguments) {
		sub := args.Get(1).(*submission.Submission)
		sub.ID = id
		sub.SubmittedAt = time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)
	}
}

// gatedDrafts blocks the first Get after arm until the gate is opened.
type gatedDrafts struct {
	onboarding.DraftRepository

	mu      sync.Mutex
	armed   bool
	entered chan struct{}
	gate    chan struct{}
}

func (g *gatedDrafts) arm() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.armed = true
	g.entered = make(chan struct{})
	g.gate = make(chan struct{})
}

func (g *gatedDrafts) Get(ctx context.Context, id string) (*onboarding.Wizard, error) {
	g.mu.Lock()
	armed, entered, gate := g.armed, g.entered, g.gate
	g.armed = false
	g.mu.Unlock()

	if armed {
		close(entered)
		<-gate
	}
	return g.DraftRepository.Get(ctx, id)
}

func newService(sink onboarding.Sink, delay time.Duration) *onboarding.Service {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return onboarding.NewService(onboarding.NewMemoryDraftRepository(time.Hour), sink, delay, logger)
}

// startAtReview creates a draft holding a valid form and walks it to the review step.
func startAtReview(t *testing.T, service *onboarding.Service) string {
	t.Helper()
	ctx := context.Background()

	view, err := service.Start(ctx)
	require.NoError(t, err)
	_, err = service.Update(ctx, view.ID, validPatch())
	require.NoError(t, err)

	for range 3 {
		view, err = service.Advance(ctx, view.ID)
		require.NoError(t, err)
	}
	require.Equal(t, onboarding.StepReview, view.Step)
	return view.ID
}

// # Tests

func TestService_StartAndGet(t *testing.T) {
	service := newService(&mockSink{}, 0)
	ctx := context.Background()

	started, err := service.Start(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, started.ID)
	assert.Equal(t, onboarding.StepPersonal, started.Step)
	assert.Equal(t, "Personal Info", started.StepTitle)

	loaded, err := service.Get(ctx, started.ID)
	require.NoError(t, err)
	assert.Equal(t, started, loaded)

	_, err = service.Get(ctx, "missing")
	assert.Equal(t, http.StatusNotFound, statusOf(err))
}

func TestService_AdvancePersistsErrors(t *testing.T) {
	service := newService(&mockSink{}, 0)
	ctx := context.Background()

	view, err := service.Start(ctx)
	require.NoError(t, err)
	_, err = service.Update(ctx, view.ID, onboarding.Patch{Name: pointer.To("J")})
	require.NoError(t, err)

	_, err = service.Advance(ctx, view.ID)
	require.Error(t, err)

	loaded, err := service.Get(ctx, view.ID)
	require.NoError(t, err)
	assert.Equal(t, onboarding.StepPersonal, loaded.Step)
	assert.Equal(t, "Name must be at least 2 characters", loaded.Errors["name"])
}

func TestService_Submit(t *testing.T) {
	sink := &mockSink{}
	sink.On("Create", mock.Anything, mock.MatchedBy(func(sub *submission.Submission) bool {
		return sub.Status == submission.StatusPending && sub.Email == "priya.nair@email.com"
	})).Run(stamp("sub-1")).Return(nil).Once()

	service := newService(sink, 0)
	draftID := startAtReview(t, service)

	result, err := service.Submit(context.Background(), draftID)
	require.NoError(t, err)

	assert.True(t, result.Wizard.Submitted)
	assert.Equal(t, onboarding.StepSubmitted, result.Wizard.Step)
	assert.Equal(t, "sub-1", result.Wizard.SubmissionID)
	assert.Equal(t, "sub-1", result.Submission.ID)
	assert.Equal(t, onboarding.SubmittedMessage, result.Message)
	sink.AssertNumberOfCalls(t, "Create", 1)

	// A submitted draft refuses every further transition.
	_, err = service.Submit(context.Background(), draftID)
	assert.Equal(t, http.StatusConflict, statusOf(err))
	_, err = service.Retreat(context.Background(), draftID)
	assert.Equal(t, http.StatusConflict, statusOf(err))
	sink.AssertNumberOfCalls(t, "Create", 1)
}

func TestService_SubmitOffReview(t *testing.T) {
	sink := &mockSink{}
	service := newService(sink, 0)

	view, err := service.Start(context.Background())
	require.NoError(t, err)

	_, err = service.Submit(context.Background(), view.ID)
	assert.Equal(t, http.StatusUnprocessableEntity, statusOf(err))
	sink.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_SubmitCancelled(t *testing.T) {
	sink := &mockSink{}
	service := newService(sink, time.Hour)
	draftID := startAtReview(t, service)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := service.Submit(ctx, draftID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
	sink.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)

	view, err := service.Get(context.Background(), draftID)
	require.NoError(t, err)
	assert.Equal(t, onboarding.StepReview, view.Step)
	assert.False(t, view.Submitted)
}

func TestService_SubmitSinkFailure(t *testing.T) {
	sink := &mockSink{}
	sink.On("Create", mock.Anything, mock.Anything).Return(errors.New("db down")).Once()

	service := newService(sink, 0)
	draftID := startAtReview(t, service)

	_, err := service.Submit(context.Background(), draftID)
	require.Error(t, err)

	view, err := service.Get(context.Background(), draftID)
	require.NoError(t, err)
	assert.Equal(t, onboarding.StepReview, view.Step)
}

func TestService_SubmitInFlight(t *testing.T) {
	entered := make(chan struct{})
	release := make(chan struct{})

	sink := &mockSink{}
	sink.On("Create", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		close(entered)
		<-release
		stamp("sub-1")(args)
	}).Return(nil).Once()

	service := newService(sink, 0)
	draftID := startAtReview(t, service)

	done := make(chan error, 1)
	go func() {
		_, err := service.Submit(context.Background(), draftID)
		done <- err
	}()
	<-entered

	_, err := service.Submit(context.Background(), draftID)
	assert.Equal(t, http.StatusConflict, statusOf(err))
	_, err = service.Retreat(context.Background(), draftID)
	assert.Equal(t, http.StatusConflict, statusOf(err))
	_, err = service.Update(context.Background(), draftID, onboarding.Patch{Name: pointer.To("Other")})
	assert.Equal(t, http.StatusConflict, statusOf(err))

	close(release)
	require.NoError(t, <-done)
	sink.AssertNumberOfCalls(t, "Create", 1)
}

func TestService_SubmitWaitsForEarlierEdit(t *testing.T) {
	const newBio = "Kathak and contemporary dancer touring festivals across Europe and South Asia every season."

	var submitted *submission.Submission
	sink := &mockSink{}
	sink.On("Create", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		submitted = args.Get(1).(*submission.Submission)
		stamp("sub-1")(args)
	}).Return(nil).Once()

	drafts := &gatedDrafts{DraftRepository: onboarding.NewMemoryDraftRepository(time.Hour)}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := onboarding.NewService(drafts, sink, 10*time.Millisecond, logger)
	draftID := startAtReview(t, service)

	// The edit loads the draft first and stalls before saving.
	drafts.arm()
	updated := make(chan error, 1)
	go func() {
		_, err := service.Update(context.Background(), draftID, onboarding.Patch{Bio: pointer.To(newBio)})
		updated <- err
	}()
	<-drafts.entered

	result := make(chan error, 1)
	go func() {
		_, err := service.Submit(context.Background(), draftID)
		result <- err
	}()

	time.Sleep(20 * time.Millisecond)
	close(drafts.gate)

	require.NoError(t, <-updated)
	require.NoError(t, <-result)

	require.NotNil(t, submitted)
	assert.Equal(t, newBio, submitted.Bio)

	view, err := service.Get(context.Background(), draftID)
	require.NoError(t, err)
	assert.True(t, view.Submitted)
	assert.Equal(t, newBio, view.Form.Bio)
}

func TestService_SubmitRevalidates(t *testing.T) {
	sink := &mockSink{}
	service := newService(sink, 0)
	draftID := startAtReview(t, service)

	_, err := service.Update(context.Background(), draftID, onboarding.Patch{Bio: pointer.To("short")})
	require.NoError(t, err)

	_, err = service.Submit(context.Background(), draftID)
	assert.Equal(t, http.StatusBadRequest, statusOf(err))
	sink.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)

	view, err := service.Get(context.Background(), draftID)
	require.NoError(t, err)
	assert.Equal(t, "Bio must be at least 50 characters", view.Errors["bio"])
}

func TestService_Subscribe(t *testing.T) {
	service := newService(&mockSink{}, 0)

	var seen []onboarding.Step
	unsubscribe := service.Subscribe(func(view onboarding.View) {
		seen = append(seen, view.Step)
	})

	view, err := service.Start(context.Background())
	require.NoError(t, err)
	_, err = service.Update(context.Background(), view.ID, validPatch())
	require.NoError(t, err)
	_, err = service.Advance(context.Background(), view.ID)
	require.NoError(t, err)

	// Failed transitions do not notify.
	_, err = service.Advance(context.Background(), "missing")
	require.Error(t, err)

	unsubscribe()
	_, err = service.Retreat(context.Background(), view.ID)
	require.NoError(t, err)

	assert.Equal(t, []onboarding.Step{
		onboarding.StepPersonal,
		onboarding.StepPersonal,
		onboarding.StepProfessional,
	}, seen)
}

func TestLogTransitions(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	service := newService(&mockSink{}, 0)
	service.Subscribe(onboarding.LogTransitions(logger))

	view, err := service.Start(context.Background())
	require.NoError(t, err)
	_, err = service.Update(context.Background(), view.ID, validPatch())
	require.NoError(t, err)
	_, err = service.Advance(context.Background(), view.ID)
	require.NoError(t, err)

	var lines []map[string]any
	for _, raw := range bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n")) {
		var line map[string]any
		require.NoError(t, json.Unmarshal(raw, &line))
		lines = append(lines, line)
	}

	require.Len(t, lines, 3)
	last := lines[2]
	assert.Equal(t, "wizard_transition", last["msg"])
	assert.Equal(t, view.ID, last["draft_id"])
	assert.Equal(t, "Professional Details", last["step"])
	assert.Equal(t, false, last["submitted"])
	assert.NotContains(t, buf.String(), "priya.nair@email.com")
}

func TestService_Discard(t *testing.T) {
	service := newService(&mockSink{}, 0)
	ctx := context.Background()

	view, err := service.Start(ctx)
	require.NoError(t, err)

	require.NoError(t, service.Discard(ctx, view.ID))
	_, err = service.Get(ctx, view.ID)
	assert.Equal(t, http.StatusNotFound, statusOf(err))
}
