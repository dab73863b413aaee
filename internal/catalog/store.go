// Copyright (c) 2026 Artistly. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import "context"

// Repository is the catalog source. Implementations return records in catalog
// order, which is the order [Query] falls back to for equal sort keys.
type Repository interface {
	ListArtists(ctx context.Context) ([]Artist, error)
	GetArtist(ctx context.Context, id string) (*Artist, error)
}
