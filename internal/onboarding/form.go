// Copyright (c) 2026 Artistly. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package onboarding

import (
	"slices"
	"strings"

	"github.com/taibuivan/artistly/internal/catalog"
	"github.com/taibuivan/artistly/internal/platform/validate"
	"github.com/taibuivan/artistly/pkg/slice"
)

// Form field names, used as keys in [Wizard.Errors] and in error details.
const (
	FieldName         = "name"
	FieldEmail        = "email"
	FieldPhone        = "phone"
	FieldLocation     = "location"
	FieldBio          = "bio"
	FieldCategories   = "categories"
	FieldLanguages    = "languages"
	FieldPriceRange   = "price_range"
	FieldExperience   = "experience"
	FieldPortfolio    = "portfolio"
	FieldProfileImage = "profile_image"
)

// Bio length bounds, in characters.
const (
	BioMinLen = 50
	BioMaxLen = 500
)

// Form holds the values collected across all wizard steps.
type Form struct {
	Name         string               `json:"name"`
	Email        string               `json:"email"`
	Phone        string               `json:"phone"`
	Location     catalog.Location     `json:"location"`
	Bio          string               `json:"bio"`
	Categories   []catalog.Category   `json:"categories"`
	Languages    []catalog.Language   `json:"languages"`
	PriceRange   catalog.PriceBracket `json:"price_range"`
	Experience   catalog.Experience   `json:"experience"`
	Portfolio    string               `json:"portfolio"`
	ProfileImage string               `json:"profile_image"`
}

// Patch is a partial form edit. Nil fields are left unchanged.
type Patch struct {
	Name         *string               `json:"name,omitempty"`
	Email        *string               `json:"email,omitempty"`
	Phone        *string               `json:"phone,omitempty"`
	Location     *catalog.Location     `json:"location,omitempty"`
	Bio          *string               `json:"bio,omitempty"`
	Categories   *[]catalog.Category   `json:"categories,omitempty"`
	Languages    *[]catalog.Language   `json:"languages,omitempty"`
	PriceRange   *catalog.PriceBracket `json:"price_range,omitempty"`
	Experience   *catalog.Experience   `json:"experience,omitempty"`
	Portfolio    *string               `json:"portfolio,omitempty"`
	ProfileImage *string               `json:"profile_image,omitempty"`
}

// apply merges p into f and returns the names of the fields it touched.
func (f *Form) apply(p Patch) []string {
	var changed []string
	set := func(field string, ok bool) {
		if ok {
			changed = append(changed, field)
		}
	}

	set(FieldName, assign(&f.Name, p.Name))
	set(FieldEmail, assign(&f.Email, p.Email))
	set(FieldPhone, assign(&f.Phone, p.Phone))
	set(FieldLocation, assign(&f.Location, p.Location))
	set(FieldBio, assign(&f.Bio, p.Bio))
	set(FieldPriceRange, assign(&f.PriceRange, p.PriceRange))
	set(FieldExperience, assign(&f.Experience, p.Experience))
	set(FieldPortfolio, assign(&f.Portfolio, p.Portfolio))
	set(FieldProfileImage, assign(&f.ProfileImage, p.ProfileImage))

	if p.Categories != nil {
		f.Categories = slice.Unique(*p.Categories)
		changed = append(changed, FieldCategories)
	}
	if p.Languages != nil {
		f.Languages = slice.Unique(*p.Languages)
		changed = append(changed, FieldLanguages)
	}

	return changed
}

func assign[T any](dst *T, src *T) bool {
	if src == nil {
		return false
	}
	*dst = *src
	return true
}

// # Validation
//
// Each field is checked by rules that cannot fail together, so a field
// collects at most one message.

func validatePersonal(f Form, v *validate.Validator) {
	v.MinLen(FieldName, strings.TrimSpace(f.Name), 2, "Name must be at least 2 characters")
	v.Email(FieldEmail, strings.TrimSpace(f.Email), "Please enter a valid email address")
	v.MinDigits(FieldPhone, f.Phone, 10, "Please enter a valid phone number")
	v.OneOf(FieldLocation, string(f.Location), catalog.LocationNames(), "Please select your location")
}

func validateProfessional(f Form, v *validate.Validator) {
	bio := strings.TrimSpace(f.Bio)
	v.MinLen(FieldBio, bio, BioMinLen, "Bio must be at least 50 characters")
	v.MaxLen(FieldBio, bio, BioMaxLen, "Bio must be less than 500 characters")

	v.Custom(FieldCategories, len(f.Categories) == 0, "Please select at least one category")
	v.Custom(FieldCategories, slices.ContainsFunc(f.Categories, func(c catalog.Category) bool { return !c.Valid() }),
		"Please select categories from the list")

	v.Custom(FieldLanguages, len(f.Languages) == 0, "Please select at least one language")
	v.Custom(FieldLanguages, slices.ContainsFunc(f.Languages, func(l catalog.Language) bool { return !l.Valid() }),
		"Please select languages from the list")
}

func validatePricing(f Form, v *validate.Validator) {
	v.OneOf(FieldPriceRange, string(f.PriceRange), catalog.BracketValues(), "Please select your price range")
	v.OneOf(FieldExperience, string(f.Experience), catalog.ExperienceValues(), "Please select your experience level")
}
