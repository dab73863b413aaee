// Copyright (c) 2026 Artistly. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/artistly/internal/catalog"
)

func TestBrowser_SettersRecomputeView(t *testing.T) {
	browser := catalog.NewBrowser(seed(t))
	assert.Equal(t, 8, browser.View().ResultCount)

	browser.ToggleCategory(catalog.CategorySingers, true)
	browser.SetLocation("Mumbai")
	assert.Equal(t, []string{"1"}, ids(browser.View().Artists))

	browser.ToggleCategory(catalog.CategorySingers, true)
	assert.Len(t, browser.State().Categories, 1)

	browser.ToggleCategory(catalog.CategorySingers, false)
	assert.Equal(t, []string{"1", "6"}, ids(browser.View().Artists))
}

func TestBrowser_ClearFiltersKeepsSort(t *testing.T) {
	browser := catalog.NewBrowser(seed(t))
	browser.SetSort(catalog.SortName)
	browser.SetSearch("dj")
	browser.SetPriceRange(catalog.BracketUpTo25K)
	assert.True(t, browser.View().Empty)

	browser.ClearFilters()

	view := browser.View()
	assert.Equal(t, catalog.SortName, browser.State().Sort)
	assert.Equal(t, []string{"6", "1", "4", "7", "2", "3", "8", "5"}, ids(view.Artists))
	assert.Zero(t, view.ActiveFilterCount)
}

func TestBrowser_Subscribe(t *testing.T) {
	browser := catalog.NewBrowser(seed(t))

	var seen []int
	unsubscribe := browser.Subscribe(func(view catalog.View) {
		seen = append(seen, view.ResultCount)
	})

	browser.SetSearch("dj")
	browser.SetSearch("")
	unsubscribe()
	browser.SetSearch("tabla")

	assert.Equal(t, []int{1, 8}, seen)
}

func TestBrowser_SubscriberMayReadState(t *testing.T) {
	browser := catalog.NewBrowser(seed(t))

	var observed catalog.QueryState
	browser.Subscribe(func(catalog.View) { observed = browser.State() })
	browser.SetLocation("Delhi")

	assert.Equal(t, catalog.Location("Delhi"), observed.Location)
}

func TestBrowser_StateIsACopy(t *testing.T) {
	browser := catalog.NewBrowser(seed(t))
	browser.ToggleCategory(catalog.CategoryDJs, true)

	state := browser.State()
	state.Categories[0] = catalog.CategoryComedians

	assert.Equal(t, []catalog.Category{catalog.CategoryDJs}, browser.State().Categories)
}
