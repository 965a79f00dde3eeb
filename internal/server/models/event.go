package models

import "time"

type Event struct {
	ID           string       `json:"id"`
	Title        string       `json:"title"`
	Description  string       `json:"description"`
	MainImageURL string       `json:"mainImageUrl"`
	StartDate    time.Time    `json:"startDate"`
	EndDate      time.Time    `json:"endDate"`
	Location     *string      `json:"location,omitempty"`
	Featured     bool         `json:"featured"`
	Images       []EventImage `json:"images"`
	CreatedAt    time.Time    `json:"createdAt"`
	UpdatedAt    time.Time    `json:"updatedAt"`
}

// EventImage is an additional gallery image of an event, shown in Order.
type EventImage struct {
	ID       string    `json:"id"`
	EventID  string    `json:"eventId"`
	ImageURL string    `json:"imageUrl"`
	Order    int       `json:"order"`
	Created  time.Time `json:"createdAt"`
}

type EventUpdate struct {
	Title        *string
	Description  *string
	MainImageURL *string
	StartDate    *time.Time
	EndDate      *time.Time
	Location     *string
	Featured     *bool
}
