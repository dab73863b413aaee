// Copyright (c) 2026 Artistly. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package submission

import (
	"bytes"
	_ "embed"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/taibuivan/artistly/internal/catalog"
)

//go:embed seed/submissions.yaml
var seedSubmissions []byte

type seedEntry struct {
	ArtistID    string    `yaml:"artist_id"`
	Email       string    `yaml:"email"`
	Phone       string    `yaml:"phone"`
	Status      Status    `yaml:"status"`
	SubmittedAt time.Time `yaml:"submitted_at"`
}

type seedFile struct {
	Submissions []seedEntry `yaml:"submissions"`
}

// SeedSubmissions builds the demo applications from the embedded seed file.
// Each entry copies the profile of the catalog artist it names and reuses the
// artist's id.
func SeedSubmissions(artists []catalog.Artist) ([]Submission, error) {
	return DecodeSubmissions(seedSubmissions, artists)
}

// DecodeSubmissions parses a YAML document with a top-level "submissions" list.
func DecodeSubmissions(data []byte, artists []catalog.Artist) ([]Submission, error) {
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	var file seedFile
	if err := decoder.Decode(&file); err != nil {
		return nil, fmt.Errorf("submission: decode seed: %w", err)
	}

	byID := make(map[string]catalog.Artist, len(artists))
	for _, artist := range artists {
		byID[artist.ID] = artist
	}

	out := make([]Submission, 0, len(file.Submissions))
	for _, entry := range file.Submissions {
		artist, ok := byID[entry.ArtistID]
		if !ok {
			return nil, fmt.Errorf("submission: seed references unknown artist %s", entry.ArtistID)
		}
		if !entry.Status.Valid() {
			return nil, fmt.Errorf("submission: seed for artist %s has status %q", entry.ArtistID, entry.Status)
		}

		out = append(out, Submission{
			Artist:      artist,
			Email:       entry.Email,
			Phone:       entry.Phone,
			Status:      entry.Status,
			SubmittedAt: entry.SubmittedAt,
		})
	}
	return out, nil
}
