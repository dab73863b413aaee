// Copyright (c) 2026 Artistly. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package submission_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/artistly/internal/catalog"
	"github.com/taibuivan/artistly/internal/submission"
)

func seed(t *testing.T) []submission.Submission {
	t.Helper()
	artists, err := catalog.SeedArtists()
	require.NoError(t, err)
	subs, err := submission.SeedSubmissions(artists)
	require.NoError(t, err)
	return subs
}

func TestSeedSubmissions(t *testing.T) {
	subs := seed(t)
	require.Len(t, subs, 3)

	first := subs[0]
	assert.Equal(t, "1", first.ID)
	assert.Equal(t, "Arjun Sharma", first.Name)
	assert.Equal(t, "arjun.sharma@email.com", first.Email)
	assert.Equal(t, submission.StatusApproved, first.Status)
	assert.Equal(t, time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC), first.SubmittedAt.UTC())

	assert.Equal(t, submission.StatusPending, subs[1].Status)
	assert.Equal(t, "4", subs[2].ID)
	assert.Equal(t, submission.StatusRejected, subs[2].Status)
}

func TestDecodeSubmissions_Rejects(t *testing.T) {
	artists := []catalog.Artist{{ID: "1", Name: "Arjun Sharma"}}

	tests := []struct {
		name string
		doc  string
	}{
		{"unknown_artist", "submissions:\n  - artist_id: \"9\"\n    status: pending\n"},
		{"unknown_status", "submissions:\n  - artist_id: \"1\"\n    status: archived\n"},
		{"unknown_key", "submissions:\n  - artist_id: \"1\"\n    rating: 5\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := submission.DecodeSubmissions([]byte(tt.doc), artists)
			assert.Error(t, err)
		})
	}
}
