// Copyright (c) 2026 Artistly. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"context"
	"fmt"
	"log/slog"
)

// Service implements the catalog use cases on top of a [Repository].
type Service struct {
	repository Repository
	logger     *slog.Logger
}

// NewService constructs a new catalog [Service].
func NewService(repository Repository, logger *slog.Logger) *Service {
	return &Service{repository: repository, logger: logger}
}

/*
Search runs the query engine over the current catalog.

Description: The catalog is loaded in full and filtered in memory; the
repository is never asked to filter.

Parameters:
  - context: context.Context
  - state: QueryState (already validated by [ParseQueryState])

Returns:
  - View: Matching artists and summary counters
  - error: Catalog source failures only; no match is not an error
*/
func (service *Service) Search(context context.Context, state QueryState) (View, error) {
	artists, err := service.repository.ListArtists(context)
	if err != nil {
		return View{}, fmt.Errorf("catalog_search_failed: %w", err)
	}
	return NewView(artists, state), nil
}

// GetArtist returns one artist or a NOT_FOUND error.
func (service *Service) GetArtist(context context.Context, id string) (*Artist, error) {
	return service.repository.GetArtist(context, id)
}

// QuoteAck acknowledges a quote request.
type QuoteAck struct {
	ArtistID   string `json:"artist_id"`
	ArtistName string `json:"artist_name"`
	Message    string `json:"message"`
}

/*
RequestQuote records that an event planner asked an artist for a quote.

Description: Nothing is delivered to the artist; the request is logged and
acknowledged with the confirmation shown to the planner.

Returns:
  - *QuoteAck: Confirmation message naming the artist
  - error: NOT_FOUND for an unknown artist
*/
func (service *Service) RequestQuote(context context.Context, artistID string) (*QuoteAck, error) {
	artist, err := service.repository.GetArtist(context, artistID)
	if err != nil {
		return nil, err
	}

	service.logger.InfoContext(context, "quote_requested",
		slog.String("artist_id", artist.ID),
		slog.String("artist_name", artist.Name),
	)

	return &QuoteAck{
		ArtistID:   artist.ID,
		ArtistName: artist.Name,
		Message:    fmt.Sprintf("Quote request sent to %s! They'll respond within 24 hours.", artist.Name),
	}, nil
}

// Registry returns the enumerated option lists.
func (service *Service) Registry() Registry {
	return Registries()
}
