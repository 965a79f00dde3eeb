package rest

import (
	"time"

	"github.com/dmitrijs2005/artfolio/internal/server/models"
)

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type artworkRequest struct {
	Title           string `json:"title" binding:"required,min=3"`
	Description     string `json:"description" binding:"required,min=10"`
	ImageURL        string `json:"imageUrl" binding:"required,imageurl"`
	Category        string `json:"category" binding:"required,oneof=peinture collage stylo modelage copie"`
	Subcategory     string `json:"subcategory"`
	Featured        bool   `json:"featured"`
	DisplayPriority *int   `json:"displayPriority" binding:"omitnil,min=0,max=10"`
}

func (r *artworkRequest) model() *models.Artwork {
	return &models.Artwork{
		Title:           r.Title,
		Description:     r.Description,
		ImageURL:        r.ImageURL,
		Category:        r.Category,
		Subcategory:     r.Subcategory,
		Featured:        r.Featured,
		DisplayPriority: r.DisplayPriority,
	}
}

// artworkUpdateRequest carries the id in the body; absent fields are kept.
type artworkUpdateRequest struct {
	ID              string  `json:"id" binding:"required"`
	Title           *string `json:"title" binding:"omitnil,min=3"`
	Description     *string `json:"description" binding:"omitnil,min=10"`
	ImageURL        *string `json:"imageUrl" binding:"omitnil,imageurl"`
	Category        *string `json:"category" binding:"omitnil,oneof=peinture collage stylo modelage copie"`
	Subcategory     *string `json:"subcategory"`
	Featured        *bool   `json:"featured"`
	DisplayPriority *int    `json:"displayPriority" binding:"omitnil,min=0,max=10"`
}

func (r *artworkUpdateRequest) update() *models.ArtworkUpdate {
	return &models.ArtworkUpdate{
		Title:           r.Title,
		Description:     r.Description,
		ImageURL:        r.ImageURL,
		Category:        r.Category,
		Subcategory:     r.Subcategory,
		Featured:        r.Featured,
		DisplayPriority: r.DisplayPriority,
	}
}

type eventRequest struct {
	Title            string    `json:"title" binding:"required,min=3"`
	Description      string    `json:"description" binding:"required,min=10"`
	MainImageURL     string    `json:"mainImageUrl" binding:"required,imageurl"`
	StartDate        time.Time `json:"startDate" binding:"required"`
	EndDate          time.Time `json:"endDate" binding:"required,gtefield=StartDate"`
	Location         *string   `json:"location"`
	Featured         bool      `json:"featured"`
	AdditionalImages []string  `json:"additionalImages" binding:"omitempty,dive,imageurl"`
}

func (r *eventRequest) model() *models.Event {
	return &models.Event{
		Title:        r.Title,
		Description:  r.Description,
		MainImageURL: r.MainImageURL,
		StartDate:    r.StartDate,
		EndDate:      r.EndDate,
		Location:     r.Location,
		Featured:     r.Featured,
	}
}

// eventUpdateRequest is a partial update. Date order is checked by the
// service against the stored event.
type eventUpdateRequest struct {
	Title        *string    `json:"title" binding:"omitnil,min=3"`
	Description  *string    `json:"description" binding:"omitnil,min=10"`
	MainImageURL *string    `json:"mainImageUrl" binding:"omitnil,imageurl"`
	StartDate    *time.Time `json:"startDate"`
	EndDate      *time.Time `json:"endDate"`
	Location     *string    `json:"location"`
	Featured     *bool      `json:"featured"`
	NewImages    []string   `json:"newImages" binding:"omitempty,dive,imageurl"`
}

func (r *eventUpdateRequest) update() *models.EventUpdate {
	return &models.EventUpdate{
		Title:        r.Title,
		Description:  r.Description,
		MainImageURL: r.MainImageURL,
		StartDate:    r.StartDate,
		EndDate:      r.EndDate,
		Location:     r.Location,
		Featured:     r.Featured,
	}
}
