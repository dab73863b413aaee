// Copyright (c) 2026 Artistly. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package schema

// IntakeSubmissionTable represents the 'intake.submission' table
type IntakeSubmissionTable struct {
	Table       string
	ID          string
	Name        string
	Email       string
	Phone       string
	Categories  string
	Location    string
	PriceRange  string
	Languages   string
	Bio         string
	ImageURL    string
	Experience  string
	Portfolio   string
	Rating      string
	ReviewCount string
	Verified    string
	Status      string
	SubmittedAt string
	ReviewedAt  string
}

// IntakeSubmission is the schema definition for intake.submission
var IntakeSubmission = IntakeSubmissionTable{
	Table:       "intake.submission",
	ID:          "id",
	Name:        "name",
	Email:       "email",
	Phone:       "phone",
	Categories:  "categories",
	Location:    "location",
	PriceRange:  "pricerange",
	Languages:   "languages",
	Bio:         "bio",
	ImageURL:    "imageurl",
	Experience:  "experience",
	Portfolio:   "portfolio",
	Rating:      "rating",
	ReviewCount: "reviewcount",
	Verified:    "verified",
	Status:      "status",
	SubmittedAt: "submittedat",
	ReviewedAt:  "reviewedat",
}

// Columns returns all standard column names in scan order.
func (t IntakeSubmissionTable) Columns() []string {
	return []string{
		t.ID, t.Name, t.Email, t.Phone, t.Categories, t.Location, t.PriceRange, t.Languages, t.Bio, t.ImageURL,
		t.Experience, t.Portfolio, t.Rating, t.ReviewCount, t.Verified, t.Status, t.SubmittedAt, t.ReviewedAt,
	}
}
