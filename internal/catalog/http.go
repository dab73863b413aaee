// Copyright (c) 2026 Artistly. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/taibuivan/artistly/internal/platform/request"
	"github.com/taibuivan/artistly/internal/platform/respond"
)

// Handler exposes the catalog over HTTP.
type Handler struct {
	service *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the artist routes, mounted under /artists.
//
// # Endpoints
//   - GET  /            : Search with q, category, location, price, sort.
//   - GET  /{id}        : Artist detail.
//   - POST /{id}/quote  : Request a quote.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.search)
	router.Get("/{id}", handler.get)
	router.Post("/{id}/quote", handler.quote)

	return router
}

// RegistryHandler serves GET /registry.
func (handler *Handler) RegistryHandler(writer http.ResponseWriter, request *http.Request) {
	respond.OK(writer, handler.service.Registry())
}

/*
GET /api/v1/artists

Response:
  - 200: View
  - 400: VALIDATION_ERROR for an unknown category, location, price or sort
*/
func (handler *Handler) search(writer http.ResponseWriter, request *http.Request) {
	state, err := ParseQueryState(request.URL.Query())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	view, err := handler.service.Search(request.Context(), state)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, view)
}

/*
GET /api/v1/artists/{id}

Response:
  - 200: Artist
  - 404: NOT_FOUND
*/
func (handler *Handler) get(writer http.ResponseWriter, request *http.Request) {
	artist, err := handler.service.GetArtist(request.Context(), requestutil.Param(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, artist)
}

/*
POST /api/v1/artists/{id}/quote

Response:
  - 200: QuoteAck
  - 404: NOT_FOUND
*/
func (handler *Handler) quote(writer http.ResponseWriter, request *http.Request) {
	ack, err := handler.service.RequestQuote(request.Context(), requestutil.Param(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, ack)
}
