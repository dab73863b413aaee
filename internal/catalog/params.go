// Copyright (c) 2026 Artistly. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"net/url"
	"strings"

	"github.com/taibuivan/artistly/internal/platform/validate"
	"github.com/taibuivan/artistly/pkg/query"
	"github.com/taibuivan/artistly/pkg/slice"
)

// URL parameter names accepted by [ParseQueryState].
const (
	ParamSearch   = "q"
	ParamCategory = "category"
	ParamLocation = "location"
	ParamPrice    = "price"
	ParamSort     = "sort"
)

/*
ParseQueryState builds a [QueryState] from URL parameters.

Description: Closed enums are checked here, at the boundary. An unknown
category, city, bracket or sort key is a validation error rather than a
filter that silently matches nothing.

Parameters:
  - values: url.Values (q, category, location, price, sort)

Returns:
  - QueryState: Parsed state; sort defaults to rating
  - error: apperr VALIDATION_ERROR naming every bad parameter
*/
func ParseQueryState(values url.Values) (QueryState, error) {
	state := DefaultQueryState()
	state.Search = values.Get(ParamSearch)

	validator := &validate.Validator{}

	for _, raw := range query.Multi(values[ParamCategory]) {
		validator.OneOf(ParamCategory, raw, CategoryIDs(), "Unknown category: "+raw)
		if Category(raw).Valid() {
			state.Categories = append(state.Categories, Category(raw))
		}
	}

	if raw := strings.TrimSpace(values.Get(ParamLocation)); raw != "" {
		validator.OneOf(ParamLocation, raw, LocationNames(), "Unknown location: "+raw)
		state.Location = Location(raw)
	}

	if raw := strings.TrimSpace(values.Get(ParamPrice)); raw != "" {
		validator.OneOf(ParamPrice, raw, BracketValues(), "Unknown price range: "+raw)
		state.PriceRange = PriceBracket(raw)
	}

	if raw := strings.TrimSpace(values.Get(ParamSort)); raw != "" {
		sortKeys := slice.Map(SortKeys, func(k SortKey) string { return string(k) })
		validator.OneOf(ParamSort, raw, sortKeys)
		state.Sort = SortKey(raw)
	}

	if err := validator.Err(); err != nil {
		return QueryState{}, err
	}
	return state, nil
}
