package models

import "time"

// User is an admin account allowed to edit content.
type User struct {
	ID           string
	Email        string
	Name         string
	PasswordHash string
	CreatedAt    time.Time
}
