// Copyright (c) 2026 Artistly. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/artistly/internal/catalog"
)

func TestSeedArtists_SatisfyInvariants(t *testing.T) {
	for _, artist := range seed(t) {
		assert.NoError(t, artist.Check())
		assert.NotEmpty(t, artist.Categories)
	}
}

func TestDecodeArtists_Rejects(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"no_categories", `artists: [{id: "1", name: A, categories: [], location: Pune, price_range: "0-25000"}]`},
		{"unknown_category", `artists: [{id: "1", name: A, categories: [jugglers], location: Pune, price_range: "0-25000"}]`},
		{"unknown_city", `artists: [{id: "1", name: A, categories: [djs], location: Paris, price_range: "0-25000"}]`},
		{"rating_out_of_range", `artists: [{id: "1", name: A, categories: [djs], location: Pune, price_range: "0-25000", rating: 7}]`},
		{"unknown_field", `artists: [{id: "1", name: A, categories: [djs], location: Pune, price_range: "0-25000", genre: x}]`},
		{"duplicate_id", `artists: [{id: "1", name: A, categories: [djs], location: Pune, price_range: "0-25000"}, {id: "1", name: B, categories: [djs], location: Pune, price_range: "0-25000"}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := catalog.DecodeArtists([]byte(tt.doc))
			require.Error(t, err)
		})
	}
}
