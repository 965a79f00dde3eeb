// Package models defines server-side data models persisted in the database.
package models

import "time"

// Artwork categories accepted by the admin API.
const (
	CategoryPainting = "peinture"
	CategoryCollage  = "collage"
	CategoryPen      = "stylo"
	CategoryModeling = "modelage"
	CategoryCopy     = "copie"
)

// Categories lists every valid artwork category.
var Categories = []string{CategoryPainting, CategoryCollage, CategoryPen, CategoryModeling, CategoryCopy}

type Artwork struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
	Category    string `json:"category"`
	Subcategory string `json:"subcategory"`
	Featured    bool   `json:"featured"`
	// DisplayPriority overrides recency ordering; nil ranks as 0.
	DisplayPriority *int      `json:"displayPriority,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// Priority returns DisplayPriority, treating nil as 0.
func (a *Artwork) Priority() int {
	if a.DisplayPriority == nil {
		return 0
	}
	return *a.DisplayPriority
}

// ArtworkUpdate is a partial update; nil fields are left untouched.
type ArtworkUpdate struct {
	Title           *string
	Description     *string
	ImageURL        *string
	Category        *string
	Subcategory     *string
	Featured        *bool
	DisplayPriority *int
}
