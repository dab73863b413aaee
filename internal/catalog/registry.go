// Copyright (c) 2026 Artistly. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import "github.com/taibuivan/artistly/pkg/slice"

// # Categories

// Category is a closed enumeration of performer categories.
type Category string

const (
	CategorySingers   Category = "singers"
	CategoryDancers   Category = "dancers"
	CategorySpeakers  Category = "speakers"
	CategoryDJs       Category = "djs"
	CategoryMusicians Category = "musicians"
	CategoryComedians Category = "comedians"
)

// CategoryInfo carries the display metadata shown on category cards and filters.
type CategoryInfo struct {
	ID          Category `json:"id"`
	Name        string   `json:"name"`
	Icon        string   `json:"icon"`
	Description string   `json:"description"`
}

// Categories lists every category in display order.
var Categories = []CategoryInfo{
	{ID: CategorySingers, Name: "Singers", Icon: "🎤", Description: "Professional vocalists for all genres"},
	{ID: CategoryDancers, Name: "Dancers", Icon: "💃", Description: "Choreographers and dance performers"},
	{ID: CategorySpeakers, Name: "Speakers", Icon: "🎯", Description: "Motivational and keynote speakers"},
	{ID: CategoryDJs, Name: "DJs", Icon: "🎧", Description: "Professional DJs and music mixers"},
	{ID: CategoryMusicians, Name: "Musicians", Icon: "🎸", Description: "Instrumentalists and bands"},
	{ID: CategoryComedians, Name: "Comedians", Icon: "😂", Description: "Stand-up and entertainment comedians"},
}

// Valid reports whether c is a registered category.
func (c Category) Valid() bool {
	for _, info := range Categories {
		if info.ID == c {
			return true
		}
	}
	return false
}

// # Locations

// Location is one of the fixed cities artists perform from.
type Location string

// Locations lists every supported city in display order.
var Locations = []Location{
	"Mumbai", "Delhi", "Bangalore", "Chennai", "Kolkata", "Hyderabad",
	"Pune", "Ahmedabad", "Jaipur", "Lucknow", "Kanpur", "Nagpur",
}

// Valid reports whether l is a registered city.
func (l Location) Valid() bool {
	for _, known := range Locations {
		if known == l {
			return true
		}
	}
	return false
}

// # Price Brackets

// PriceBracket is one of five fixed fee ranges, in rupees.
type PriceBracket string

const (
	BracketUpTo25K    PriceBracket = "0-25000"
	Bracket25KTo50K   PriceBracket = "25000-50000"
	Bracket50KTo100K  PriceBracket = "50000-100000"
	Bracket100KTo200K PriceBracket = "100000-200000"
	BracketAbove200K  PriceBracket = "200000+"
)

// BracketInfo pairs a bracket with its display label.
type BracketInfo struct {
	Value PriceBracket `json:"value"`
	Label string       `json:"label"`
}

// PriceBrackets lists every bracket from cheapest to most expensive.
var PriceBrackets = []BracketInfo{
	{Value: BracketUpTo25K, Label: "₹0 - ₹25,000"},
	{Value: Bracket25KTo50K, Label: "₹25,000 - ₹50,000"},
	{Value: Bracket50KTo100K, Label: "₹50,000 - ₹1,00,000"},
	{Value: Bracket100KTo200K, Label: "₹1,00,000 - ₹2,00,000"},
	{Value: BracketAbove200K, Label: "₹2,00,000+"},
}

// Valid reports whether b is a registered bracket.
func (b PriceBracket) Valid() bool {
	return b.Label() != ""
}

// Label returns the display label of b, or "" for an unknown bracket.
func (b PriceBracket) Label() string {
	for _, info := range PriceBrackets {
		if info.Value == b {
			return info.Label
		}
	}
	return ""
}

// # Languages

// Language is one of the fixed performance languages.
type Language string

// Languages lists every supported language in display order.
var Languages = []Language{
	"Hindi", "English", "Bengali", "Telugu", "Marathi", "Tamil",
	"Gujarati", "Urdu", "Kannada", "Malayalam", "Punjabi", "Assamese",
}

// Valid reports whether l is a registered language.
func (l Language) Valid() bool {
	for _, known := range Languages {
		if known == l {
			return true
		}
	}
	return false
}

// # Experience Levels

// Experience is the self-declared years-of-experience band on an application.
type Experience string

// ExperienceInfo pairs an experience band with its display label.
type ExperienceInfo struct {
	Value Experience `json:"value"`
	Label string     `json:"label"`
}

// ExperienceLevels lists every band from least to most experienced.
var ExperienceLevels = []ExperienceInfo{
	{Value: "0-1", Label: "Less than 1 year"},
	{Value: "1-3", Label: "1-3 years"},
	{Value: "3-5", Label: "3-5 years"},
	{Value: "5-10", Label: "5-10 years"},
	{Value: "10+", Label: "10+ years"},
}

// Valid reports whether e is a registered band.
func (e Experience) Valid() bool {
	for _, info := range ExperienceLevels {
		if info.Value == e {
			return true
		}
	}
	return false
}

// # Registry Snapshot

// Registry bundles every enumerated option list, for clients that populate
// filters and form selects.
type Registry struct {
	Categories       []CategoryInfo   `json:"categories"`
	Locations        []Location       `json:"locations"`
	PriceBrackets    []BracketInfo    `json:"price_brackets"`
	Languages        []Language       `json:"languages"`
	ExperienceLevels []ExperienceInfo `json:"experience_levels"`
	SortKeys         []SortKey        `json:"sort_keys"`
}

// Registries returns the option lists. The slices are shared and must not be modified.
func Registries() Registry {
	return Registry{
		Categories:       Categories,
		Locations:        Locations,
		PriceBrackets:    PriceBrackets,
		Languages:        Languages,
		ExperienceLevels: ExperienceLevels,
		SortKeys:         SortKeys,
	}
}

// # String Views
//
// Validators work on plain strings; these helpers expose each registry in that form.

// CategoryIDs returns the category identifiers as strings.
func CategoryIDs() []string {
	return slice.Map(Categories, func(info CategoryInfo) string { return string(info.ID) })
}

// LocationNames returns the city names as strings.
func LocationNames() []string {
	return slice.Map(Locations, func(l Location) string { return string(l) })
}

// BracketValues returns the bracket identifiers as strings.
func BracketValues() []string {
	return slice.Map(PriceBrackets, func(info BracketInfo) string { return string(info.Value) })
}

// LanguageNames returns the language names as strings.
func LanguageNames() []string {
	return slice.Map(Languages, func(l Language) string { return string(l) })
}

// ExperienceValues returns the experience bands as strings.
func ExperienceValues() []string {
	return slice.Map(ExperienceLevels, func(info ExperienceInfo) string { return string(info.Value) })
}
