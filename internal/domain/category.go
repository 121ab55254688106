package domain

import "time"

// Category is an admin-managed business category SMEs register under.
type Category struct {
	ID          string
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
