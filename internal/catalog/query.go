// Copyright (c) 2026 Artistly. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"cmp"
	"slices"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// # Query State

// SortKey selects the ordering applied after filtering.
type SortKey string

const (
	// SortRating orders by rating, highest first.
	SortRating SortKey = "rating"

	// SortReviews orders by review count, highest first.
	SortReviews SortKey = "reviews"

	// SortName orders by name, A to Z, using locale-aware collation.
	SortName SortKey = "name"

	// SortLocation orders by city, A to Z, using locale-aware collation.
	SortLocation SortKey = "location"
)

// SortKeys lists every accepted sort key.
var SortKeys = []SortKey{SortRating, SortReviews, SortName, SortLocation}

// Valid reports whether k is a known sort key.
func (k SortKey) Valid() bool {
	return slices.Contains(SortKeys, k)
}

// QueryState is the full set of inputs to [Query].
//
// Empty Search, an empty Categories set, and zero Location / PriceRange mean
// "no constraint". Search is matched as typed: whitespace is part of the
// needle.
type QueryState struct {
	Search     string       `json:"search"`
	Categories []Category   `json:"categories"`
	Location   Location     `json:"location,omitempty"`
	PriceRange PriceBracket `json:"price_range,omitempty"`
	Sort       SortKey      `json:"sort"`
}

// DefaultQueryState returns an unfiltered state sorted by rating.
func DefaultQueryState() QueryState {
	return QueryState{Categories: []Category{}, Sort: SortRating}
}

// Cleared returns s with every filter reset. The sort key is kept.
func (s QueryState) Cleared() QueryState {
	cleared := DefaultQueryState()
	cleared.Sort = s.Sort
	return cleared
}

// ActiveFilters counts selected categories plus one each for a selected
// location and price range. Search text is not counted.
func (s QueryState) ActiveFilters() int {
	count := len(s.Categories)
	if s.Location != "" {
		count++
	}
	if s.PriceRange != "" {
		count++
	}
	return count
}

// clone returns a copy that shares no backing array with s.
func (s QueryState) clone() QueryState {
	s.Categories = slices.Clone(s.Categories)
	if s.Categories == nil {
		s.Categories = []Category{}
	}
	return s
}

// # Engine

// Query filters catalog by state and returns the matches in sort order.
//
// The result is always a new slice holding a subset of catalog; catalog itself
// is not modified. Records with equal sort keys keep their catalog order.
func Query(catalog []Artist, state QueryState) []Artist {
	match := newMatcher(state)

	result := make([]Artist, 0, len(catalog))
	for _, artist := range catalog {
		if match.accepts(artist) {
			result = append(result, artist)
		}
	}

	sortArtists(result, state.Sort)
	return result
}

// matcher holds the per-query lowercase needle. It is not safe for concurrent use.
type matcher struct {
	state  QueryState
	fold   cases.Caser
	needle string
}

func newMatcher(state QueryState) *matcher {
	fold := cases.Fold()
	return &matcher{
		state:  state,
		fold:   fold,
		needle: fold.String(state.Search),
	}
}

func (m *matcher) accepts(artist Artist) bool {
	return m.matchesSearch(artist) &&
		m.matchesCategories(artist) &&
		(m.state.Location == "" || artist.Location == m.state.Location) &&
		(m.state.PriceRange == "" || artist.PriceRange == m.state.PriceRange)
}

func (m *matcher) matchesSearch(artist Artist) bool {
	if m.needle == "" {
		return true
	}
	if m.contains(artist.Name) || m.contains(string(artist.Location)) || m.contains(artist.Bio) {
		return true
	}
	for _, c := range artist.Categories {
		if m.contains(string(c)) {
			return true
		}
	}
	return false
}

func (m *matcher) contains(haystack string) bool {
	return strings.Contains(m.fold.String(haystack), m.needle)
}

// matchesCategories applies OR semantics: one shared category is enough.
func (m *matcher) matchesCategories(artist Artist) bool {
	if len(m.state.Categories) == 0 {
		return true
	}
	for _, wanted := range m.state.Categories {
		if artist.HasCategory(wanted) {
			return true
		}
	}
	return false
}

// sortArtists sorts in place with a stable sort. Unknown keys leave the order untouched.
func sortArtists(artists []Artist, key SortKey) {
	switch key {
	case SortRating:
		slices.SortStableFunc(artists, func(a, b Artist) int { return cmp.Compare(b.Rating, a.Rating) })
	case SortReviews:
		slices.SortStableFunc(artists, func(a, b Artist) int { return cmp.Compare(b.ReviewCount, a.ReviewCount) })
	case SortName:
		collator := collate.New(language.English)
		slices.SortStableFunc(artists, func(a, b Artist) int { return collator.CompareString(a.Name, b.Name) })
	case SortLocation:
		collator := collate.New(language.English)
		slices.SortStableFunc(artists, func(a, b Artist) int {
			return collator.CompareString(string(a.Location), string(b.Location))
		})
	}
}

// # View

// View is the derived result a client renders.
//
// Empty signals that the client should offer to clear the filters.
type View struct {
	Artists           []Artist   `json:"artists"`
	ResultCount       int        `json:"result_count"`
	ActiveFilterCount int        `json:"active_filter_count"`
	Empty             bool       `json:"empty"`
	State             QueryState `json:"query"`
}

// NewView runs [Query] and wraps the result with its summary counters.
func NewView(catalog []Artist, state QueryState) View {
	artists := Query(catalog, state)
	return View{
		Artists:           artists,
		ResultCount:       len(artists),
		ActiveFilterCount: state.ActiveFilters(),
		Empty:             len(artists) == 0,
		State:             state.clone(),
	}
}
