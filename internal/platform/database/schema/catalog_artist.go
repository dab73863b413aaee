// Copyright (c) 2026 Artistly. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package schema names the tables and columns used by the PostgreSQL stores.
package schema

import "strings"

// CatalogArtistTable represents the 'catalog.artist' table
type CatalogArtistTable struct {
	Table       string
	ID          string
	Position    string
	Name        string
	Categories  string
	Location    string
	PriceRange  string
	Languages   string
	Bio         string
	ImageURL    string
	Rating      string
	ReviewCount string
	Verified    string
}

// CatalogArtist is the schema definition for catalog.artist
var CatalogArtist = CatalogArtistTable{
	Table:       "catalog.artist",
	ID:          "id",
	Position:    "position",
	Name:        "name",
	Categories:  "categories",
	Location:    "location",
	PriceRange:  "pricerange",
	Languages:   "languages",
	Bio:         "bio",
	ImageURL:    "imageurl",
	Rating:      "rating",
	ReviewCount: "reviewcount",
	Verified:    "verified",
}

// Columns returns the artist columns in scan order. Position is excluded.
func (t CatalogArtistTable) Columns() []string {
	return []string{
		t.ID, t.Name, t.Categories, t.Location, t.PriceRange, t.Languages, t.Bio, t.ImageURL, t.Rating, t.ReviewCount, t.Verified,
	}
}

// List joins columns for a SELECT or INSERT column list.
func List(columns []string) string {
	return strings.Join(columns, ", ")
}
