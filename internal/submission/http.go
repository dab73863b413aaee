// Copyright (c) 2026 Artistly. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package submission

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/taibuivan/artistly/internal/platform/request"
	"github.com/taibuivan/artistly/internal/platform/respond"
)

// Handler exposes the admin review dashboard over HTTP.
//
// Access control is applied by the caller when mounting [Handler.Routes].
type Handler struct {
	service *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the review routes, mounted under /submissions.
//
// # Endpoints
//   - GET  /              : List, optionally ?status=all|pending|approved|rejected.
//   - GET  /stats         : Dashboard counters.
//   - GET  /{id}          : One application.
//   - POST /{id}/review   : Approve or reject.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.list)
	router.Get("/stats", handler.stats)
	router.Get("/{id}", handler.get)
	router.Post("/{id}/review", handler.review)

	return router
}

func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	filter, err := ParseFilter(request.URL.Query().Get("status"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	submissions, err := handler.service.List(request.Context(), filter)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, submissions)
}

func (handler *Handler) stats(writer http.ResponseWriter, request *http.Request) {
	stats, err := handler.service.Stats(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, stats)
}

func (handler *Handler) get(writer http.ResponseWriter, request *http.Request) {
	sub, err := handler.service.Get(request.Context(), requestutil.Param(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, sub)
}

type reviewRequest struct {
	Decision Decision `json:"decision"`
}

/*
POST /api/v1/submissions/{id}/review

Request:
  - Body: {"decision": "approved" | "rejected"}

Response:
  - 200: ReviewResult
  - 400: VALIDATION_ERROR for an unknown decision
  - 404: NOT_FOUND
  - 409: CONFLICT when the application was already reviewed
*/
func (handler *Handler) review(writer http.ResponseWriter, request *http.Request) {
	var body reviewRequest
	if err := requestutil.DecodeJSON(writer, request, &body); err != nil {
		respond.Error(writer, request, err)
		return
	}

	result, err := handler.service.Review(request.Context(), requestutil.Param(request, "id"), body.Decision)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, result)
}
