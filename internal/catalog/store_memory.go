// Copyright (c) 2026 Artistly. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"context"
	"slices"

	"github.com/taibuivan/artistly/internal/platform/apperr"
)

// MemoryRepository serves a fixed catalog from memory.
//
// The catalog is read-only after construction, so no locking is needed.
type MemoryRepository struct {
	artists []Artist
	byID    map[string]int
}

// NewMemoryRepository copies artists into a new repository.
func NewMemoryRepository(artists []Artist) *MemoryRepository {
	repository := &MemoryRepository{
		artists: slices.Clone(artists),
		byID:    make(map[string]int, len(artists)),
	}
	for i, artist := range repository.artists {
		repository.byID[artist.ID] = i
	}
	return repository
}

// ListArtists returns a copy of the catalog in its original order.
func (repository *MemoryRepository) ListArtists(_ context.Context) ([]Artist, error) {
	return slices.Clone(repository.artists), nil
}

// GetArtist returns the artist with the given id or a NOT_FOUND error.
func (repository *MemoryRepository) GetArtist(_ context.Context, id string) (*Artist, error) {
	i, ok := repository.byID[id]
	if !ok {
		return nil, apperr.NotFound("Artist")
	}
	artist := repository.artists[i]
	return &artist, nil
}
