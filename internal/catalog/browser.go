// Copyright (c) 2026 Artistly. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"slices"
	"sync"
)

// Browser owns one [QueryState] over a fixed catalog.
//
// Every setter recomputes the [View] and hands it to each subscriber. Callbacks
// run on the caller's goroutine after the internal lock is released, so a
// subscriber may call back into the Browser.
type Browser struct {
	mu          sync.Mutex
	catalog     []Artist
	state       QueryState
	view        View
	subscribers map[int]func(View)
	nextID      int
}

// NewBrowser creates a Browser over catalog with [DefaultQueryState].
func NewBrowser(catalog []Artist) *Browser {
	state := DefaultQueryState()
	return &Browser{
		catalog:     catalog,
		state:       state,
		view:        NewView(catalog, state),
		subscribers: make(map[int]func(View)),
	}
}

// State returns a copy of the current query state.
func (b *Browser) State() QueryState {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state.clone()
}

// View returns the view computed after the last change.
func (b *Browser) View() View {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.view
}

// Subscribe registers fn to receive every future view. Call the returned
// function to stop receiving updates.
func (b *Browser) Subscribe(fn func(View)) (unsubscribe func()) {
	b.mu.Lock()
	id := b.nextID
	b.nextID++
	b.subscribers[id] = fn
	b.mu.Unlock()

	return func() {
		b.mu.Lock()
		delete(b.subscribers, id)
		b.mu.Unlock()
	}
}

// # Setters

// SetSearch replaces the free-text search.
func (b *Browser) SetSearch(text string) {
	b.update(func(s *QueryState) { s.Search = text })
}

// ToggleCategory adds c to the selected set when selected is true and removes it otherwise.
func (b *Browser) ToggleCategory(c Category, selected bool) {
	b.update(func(s *QueryState) {
		present := slices.Contains(s.Categories, c)
		switch {
		case selected && !present:
			s.Categories = append(s.Categories, c)
		case !selected && present:
			s.Categories = slices.DeleteFunc(s.Categories, func(own Category) bool { return own == c })
		}
	})
}

// SetLocation selects a single city. The empty location removes the filter.
func (b *Browser) SetLocation(l Location) {
	b.update(func(s *QueryState) { s.Location = l })
}

// SetPriceRange selects a single bracket. The empty bracket removes the filter.
func (b *Browser) SetPriceRange(p PriceBracket) {
	b.update(func(s *QueryState) { s.PriceRange = p })
}

// SetSort changes the ordering.
func (b *Browser) SetSort(k SortKey) {
	b.update(func(s *QueryState) { s.Sort = k })
}

// ClearFilters resets search, categories, location and price range. The sort key is kept.
func (b *Browser) ClearFilters() {
	b.update(func(s *QueryState) { *s = s.Cleared() })
}

// Apply replaces the whole query state at once.
func (b *Browser) Apply(state QueryState) {
	b.update(func(s *QueryState) { *s = state.clone() })
}

func (b *Browser) update(mutate func(*QueryState)) {
	b.mu.Lock()
	next := b.state.clone()
	mutate(&next)
	b.state = next
	b.view = NewView(b.catalog, next)

	view := b.view
	listeners := make([]func(View), 0, len(b.subscribers))
	for _, fn := range b.subscribers {
		listeners = append(listeners, fn)
	}
	b.mu.Unlock()

	for _, fn := range listeners {
		fn(view)
	}
}
