// Copyright (c) 2026 Artistly. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package catalog implements artist discovery for event planners.

It owns the artist records, the enumerated registries used to filter them
(categories, cities, price brackets, languages) and the query engine that turns
a catalog plus a [QueryState] into an ordered [View].

Architecture:

  - Query: pure function over an in-memory slice, no I/O.
  - Browser: holds one QueryState and notifies subscribers after each change.
  - Repository: supplies the catalog (embedded seed or PostgreSQL).
  - Service / Handler: search, detail and quote-request use cases over HTTP.
*/
package catalog

import "fmt"

// Artist is a performer listed in the catalog. Records are immutable once loaded.
type Artist struct {
	ID          string       `json:"id" yaml:"id"`
	Name        string       `json:"name" yaml:"name"`
	Categories  []Category   `json:"categories" yaml:"categories"`
	Location    Location     `json:"location" yaml:"location"`
	PriceRange  PriceBracket `json:"price_range" yaml:"price_range"`
	Languages   []Language   `json:"languages" yaml:"languages"`
	Bio         string       `json:"bio" yaml:"bio"`
	ImageURL    string       `json:"image_url,omitempty" yaml:"image_url"`
	Rating      float64      `json:"rating" yaml:"rating"`
	ReviewCount int          `json:"review_count" yaml:"review_count"`
	Verified    bool         `json:"verified" yaml:"verified"`
}

// HasCategory reports whether a performs in category c.
func (a Artist) HasCategory(c Category) bool {
	for _, own := range a.Categories {
		if own == c {
			return true
		}
	}
	return false
}

// Check verifies the invariants every stored record must satisfy: a non-empty
// category set drawn from the registry, a registered city and bracket, and a
// rating within 0 to 5.
func (a Artist) Check() error {
	if a.ID == "" {
		return fmt.Errorf("catalog: artist %q has no id", a.Name)
	}
	if len(a.Categories) == 0 {
		return fmt.Errorf("catalog: artist %s has no categories", a.ID)
	}
	for _, c := range a.Categories {
		if !c.Valid() {
			return fmt.Errorf("catalog: artist %s has unknown category %q", a.ID, c)
		}
	}
	for _, l := range a.Languages {
		if !l.Valid() {
			return fmt.Errorf("catalog: artist %s has unknown language %q", a.ID, l)
		}
	}
	if !a.Location.Valid() {
		return fmt.Errorf("catalog: artist %s has unknown location %q", a.ID, a.Location)
	}
	if !a.PriceRange.Valid() {
		return fmt.Errorf("catalog: artist %s has unknown price range %q", a.ID, a.PriceRange)
	}
	if a.Rating < 0 || a.Rating > 5 {
		return fmt.Errorf("catalog: artist %s has rating %.1f outside 0-5", a.ID, a.Rating)
	}
	if a.ReviewCount < 0 {
		return fmt.Errorf("catalog: artist %s has negative review count", a.ID)
	}
	return nil
}
