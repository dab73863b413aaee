// Copyright (c) 2026 Artistly. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"bytes"
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed seed/catalog.yaml
var seedCatalog []byte

type seedFile struct {
	Artists []Artist `yaml:"artists"`
}

// SeedArtists decodes the embedded demo catalog and checks every record.
func SeedArtists() ([]Artist, error) {
	return DecodeArtists(seedCatalog)
}

// DecodeArtists parses a YAML document with a top-level "artists" list.
// Unknown keys, duplicate ids and records that fail [Artist.Check] are rejected.
func DecodeArtists(data []byte) ([]Artist, error) {
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	var file seedFile
	if err := decoder.Decode(&file); err != nil {
		return nil, fmt.Errorf("catalog: decode seed: %w", err)
	}

	seen := make(map[string]struct{}, len(file.Artists))
	for _, artist := range file.Artists {
		if err := artist.Check(); err != nil {
			return nil, err
		}
		if _, dup := seen[artist.ID]; dup {
			return nil, fmt.Errorf("catalog: duplicate artist id %s", artist.ID)
		}
		seen[artist.ID] = struct{}{}
	}
	return file.Artists, nil
}
