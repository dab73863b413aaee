// Copyright (c) 2026 Artistly. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package onboarding

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/taibuivan/artistly/internal/platform/request"
	"github.com/taibuivan/artistly/internal/platform/respond"
)

// Handler exposes the intake wizard over HTTP.
//
// The wizard is public: anyone may apply, and the draft ID returned by POST /
// is the only handle on a draft.
type Handler struct {
	service *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the wizard routes, mounted under /onboarding.
//
// # Endpoints
//   - POST  /                   : Start a draft.
//   - GET   /{draftID}          : Current step, values and errors.
//   - PATCH /{draftID}          : Edit field values.
//   - DELETE /{draftID}         : Discard the draft.
//   - POST  /{draftID}/advance  : Validate the step and move forward.
//   - POST  /{draftID}/retreat  : Move back one step.
//   - POST  /{draftID}/submit   : Submit from the review step.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Post("/", handler.start)
	router.Route("/{draftID}", func(r chi.Router) {
		r.Get("/", handler.get)
		r.Patch("/", handler.update)
		r.Delete("/", handler.discard)
		r.Post("/advance", handler.advance)
		r.Post("/retreat", handler.retreat)
		r.Post("/submit", handler.submit)
	})

	return router
}

/*
POST /api/v1/onboarding

Response:
  - 201: View on the first step
*/
func (handler *Handler) start(writer http.ResponseWriter, request *http.Request) {
	view, err := handler.service.Start(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, view)
}

func (handler *Handler) get(writer http.ResponseWriter, request *http.Request) {
	view, err := handler.service.Get(request.Context(), requestutil.Param(request, "draftID"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, view)
}

/*
PATCH /api/v1/onboarding/{draftID}

Request:
  - Body: Patch (any subset of the form fields)

Response:
  - 200: View with the merged values
  - 400: Invalid JSON
  - 409: Already submitted
*/
func (handler *Handler) update(writer http.ResponseWriter, request *http.Request) {
	var patch Patch
	if err := requestutil.DecodeJSON(writer, request, &patch); err != nil {
		respond.Error(writer, request, err)
		return
	}

	view, err := handler.service.Update(request.Context(), requestutil.Param(request, "draftID"), patch)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, view)
}

func (handler *Handler) discard(writer http.ResponseWriter, request *http.Request) {
	if err := handler.service.Discard(request.Context(), requestutil.Param(request, "draftID")); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

/*
POST /api/v1/onboarding/{draftID}/advance

Response:
  - 200: View on the next step
  - 400: VALIDATION_ERROR with one detail per failing field
  - 422: On the review step
*/
func (handler *Handler) advance(writer http.ResponseWriter, request *http.Request) {
	view, err := handler.service.Advance(request.Context(), requestutil.Param(request, "draftID"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, view)
}

func (handler *Handler) retreat(writer http.ResponseWriter, request *http.Request) {
	view, err := handler.service.Retreat(request.Context(), requestutil.Param(request, "draftID"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, view)
}

/*
POST /api/v1/onboarding/{draftID}/submit

Description: Blocks for the configured submission delay.

Response:
  - 201: SubmitResult
  - 400: VALIDATION_ERROR
  - 409: Already submitted or a submission is in progress
  - 422: Not on the review step
*/
func (handler *Handler) submit(writer http.ResponseWriter, request *http.Request) {
	result, err := handler.service.Submit(request.Context(), requestutil.Param(request, "draftID"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, result)
}
